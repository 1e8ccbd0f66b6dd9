package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

// Scope bundles the identity fields every aggregate hangs off.
type Scope struct {
	OrganizationID uuid.UUID
	ProjectID      uuid.UUID
	GameID         uuid.UUID
}

// NewScope returns a fresh organization/project/game identity triple.
// No backing rows exist for these — the accounting core treats them as
// external references.
func NewScope() Scope {
	return Scope{
		OrganizationID: uuid.New(),
		ProjectID:      uuid.New(),
		GameID:         uuid.New(),
	}
}

// SeedKaizen inserts a kaizen in the given status and returns it.
func SeedKaizen(t *testing.T, pool *pgxpool.Pool, scope Scope, status domain.KaizenStatus, points float64) domain.Kaizen {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	k := domain.Kaizen{
		ID:             uuid.New(),
		OrganizationID: scope.OrganizationID,
		ProjectID:      scope.ProjectID,
		GameID:         scope.GameID,
		AuthorID:       uuid.New(),
		Title:          "reduce changeover time",
		Status:         status,
		Points:         points,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO kaizens (id, organization_id, project_id, game_id, author_id,
		                      title, description, status, points, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		k.ID, k.OrganizationID, k.ProjectID, k.GameID, k.AuthorID,
		k.Title, k.Description, string(k.Status), int64(k.Points), k.CreatedAt, k.UpdatedAt,
	)
	require.NoError(t, err, "testhelper: SeedKaizen")

	return k
}

// SeedNotification inserts an unread web notification for the given owner.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, userID, organizationID uuid.UUID) domain.WebNotification {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	n := domain.WebNotification{
		ID:             uuid.New(),
		UserID:         userID,
		OrganizationID: organizationID,
		Title:          "points credited",
		CreatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO web_notifications (id, user_id, organization_id, title, body, read, read_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.UserID, n.OrganizationID, n.Title, n.Body, n.Read, n.ReadAt, n.CreatedAt,
	)
	require.NoError(t, err, "testhelper: SeedNotification")

	return n
}

// SeedUserGamePoints inserts a user aggregate row directly, bypassing the
// repository, for read-path tests.
func SeedUserGamePoints(t *testing.T, pool *pgxpool.Pool, scope Scope, userID uuid.UUID, task, kaizen int64, sequence int64) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := pool.Exec(ctx,
		`INSERT INTO user_game_points (user_id, game_id, organization_id, project_id,
		                               task_points, kaizen_points, total_points, sequence, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		userID, scope.GameID, scope.OrganizationID, scope.ProjectID,
		task, kaizen, task+kaizen, sequence, now,
	)
	require.NoError(t, err, "testhelper: SeedUserGamePoints")
}
