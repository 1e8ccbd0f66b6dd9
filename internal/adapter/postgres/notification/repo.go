// Package notification implements the WebNotification repository using
// PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kaizenly/gamify-backend/internal/adapter/postgres"
	"github.com/kaizenly/gamify-backend/internal/domain"
)

// Repo provides web-notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "user_id", "organization_id", "title", "body", "read", "read_at", "created_at",
}

// Create inserts a notification row.
func (r *Repo) Create(ctx context.Context, n domain.WebNotification) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Insert("web_notifications").
		Columns(columns...).
		Values(n.ID, n.UserID, n.OrganizationID, n.Title, n.Body, n.Read, n.ReadAt, n.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert web_notification: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "web_notification", n.ID.String())
	}
	return nil
}

// GetByID returns a notification by primary key regardless of owner.
// Ownership checks are the service's concern — it decides whether a
// mismatch is an error or a silent skip.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.WebNotification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(columns...).
		From("web_notifications").
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.WebNotification{}, fmt.Errorf("build get web_notification: %w", err)
	}

	n, err := scan(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.WebNotification{}, postgres.MapError(err, "web_notification", id.String())
	}
	return n, nil
}

// MarkRead sets the read flag and read_at timestamp on a notification.
// Returns domain.ErrNotFound when the row is absent.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Update("web_notifications").
		Set("read", true).
		Set("read_at", readAt).
		Where(sq.Eq{"id": id, "read": false})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build mark read: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "web_notification", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("web_notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByUser returns a user's notifications within an organization,
// unread first, then newest first.
func (r *Repo) ListByUser(ctx context.Context, userID, organizationID uuid.UUID, limit, offset int) ([]domain.WebNotification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(columns...).
		From("web_notifications").
		Where(sq.Eq{"user_id": userID, "organization_id": organizationID}).
		OrderBy("read ASC", "created_at DESC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list web_notifications: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list web_notifications: %w", err)
	}
	defer rows.Close()

	items := []domain.WebNotification{}
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan web_notification: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate web_notifications: %w", err)
	}

	return items, nil
}

func scan(row pgx.Row) (domain.WebNotification, error) {
	var n domain.WebNotification
	if err := row.Scan(&n.ID, &n.UserID, &n.OrganizationID, &n.Title, &n.Body,
		&n.Read, &n.ReadAt, &n.CreatedAt); err != nil {
		return domain.WebNotification{}, err
	}
	return n, nil
}
