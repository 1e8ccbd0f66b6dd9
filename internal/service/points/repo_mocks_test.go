package points

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

var _ userPointsRepo = &userPointsRepoMock{}

type userPointsRepoMock struct {
	GetUserFunc    func(ctx context.Context, userID, gameID uuid.UUID) (domain.UserGamePoints, error)
	UpsertUserFunc func(ctx context.Context, p domain.UserGamePoints) error
	ListByGameFunc func(ctx context.Context, gameID uuid.UUID, limit, offset int) ([]domain.UserGamePoints, error)

	calls struct {
		GetUser []struct {
			UserID uuid.UUID
			GameID uuid.UUID
		}
		UpsertUser []struct {
			P domain.UserGamePoints
		}
		ListByGame []struct {
			GameID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockGetUser    sync.RWMutex
	lockUpsertUser sync.RWMutex
	lockListByGame sync.RWMutex
}

func (mock *userPointsRepoMock) GetUser(ctx context.Context, userID, gameID uuid.UUID) (domain.UserGamePoints, error) {
	if mock.GetUserFunc == nil {
		panic("userPointsRepoMock.GetUserFunc: method is nil but userPointsRepo.GetUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		GameID uuid.UUID
	}{UserID: userID, GameID: gameID}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, userID, gameID)
}

func (mock *userPointsRepoMock) GetUserCalls() []struct {
	UserID uuid.UUID
	GameID uuid.UUID
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *userPointsRepoMock) UpsertUser(ctx context.Context, p domain.UserGamePoints) error {
	if mock.UpsertUserFunc == nil {
		panic("userPointsRepoMock.UpsertUserFunc: method is nil but userPointsRepo.UpsertUser was just called")
	}
	callInfo := struct {
		P domain.UserGamePoints
	}{P: p}
	mock.lockUpsertUser.Lock()
	mock.calls.UpsertUser = append(mock.calls.UpsertUser, callInfo)
	mock.lockUpsertUser.Unlock()
	return mock.UpsertUserFunc(ctx, p)
}

func (mock *userPointsRepoMock) UpsertUserCalls() []struct {
	P domain.UserGamePoints
} {
	mock.lockUpsertUser.RLock()
	calls := mock.calls.UpsertUser
	mock.lockUpsertUser.RUnlock()
	return calls
}

func (mock *userPointsRepoMock) ListByGame(ctx context.Context, gameID uuid.UUID, limit, offset int) ([]domain.UserGamePoints, error) {
	if mock.ListByGameFunc == nil {
		panic("userPointsRepoMock.ListByGameFunc: method is nil but userPointsRepo.ListByGame was just called")
	}
	callInfo := struct {
		GameID uuid.UUID
		Limit  int
		Offset int
	}{GameID: gameID, Limit: limit, Offset: offset}
	mock.lockListByGame.Lock()
	mock.calls.ListByGame = append(mock.calls.ListByGame, callInfo)
	mock.lockListByGame.Unlock()
	return mock.ListByGameFunc(ctx, gameID, limit, offset)
}

func (mock *userPointsRepoMock) ListByGameCalls() []struct {
	GameID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByGame.RLock()
	calls := mock.calls.ListByGame
	mock.lockListByGame.RUnlock()
	return calls
}

var _ teamPointsRepo = &teamPointsRepoMock{}

type teamPointsRepoMock struct {
	GetTeamFunc    func(ctx context.Context, teamID, gameID uuid.UUID) (domain.TeamGamePoints, error)
	UpsertTeamFunc func(ctx context.Context, p domain.TeamGamePoints) error

	calls struct {
		GetTeam []struct {
			TeamID uuid.UUID
			GameID uuid.UUID
		}
		UpsertTeam []struct {
			P domain.TeamGamePoints
		}
	}
	lockGetTeam    sync.RWMutex
	lockUpsertTeam sync.RWMutex
}

func (mock *teamPointsRepoMock) GetTeam(ctx context.Context, teamID, gameID uuid.UUID) (domain.TeamGamePoints, error) {
	if mock.GetTeamFunc == nil {
		panic("teamPointsRepoMock.GetTeamFunc: method is nil but teamPointsRepo.GetTeam was just called")
	}
	callInfo := struct {
		TeamID uuid.UUID
		GameID uuid.UUID
	}{TeamID: teamID, GameID: gameID}
	mock.lockGetTeam.Lock()
	mock.calls.GetTeam = append(mock.calls.GetTeam, callInfo)
	mock.lockGetTeam.Unlock()
	return mock.GetTeamFunc(ctx, teamID, gameID)
}

func (mock *teamPointsRepoMock) GetTeamCalls() []struct {
	TeamID uuid.UUID
	GameID uuid.UUID
} {
	mock.lockGetTeam.RLock()
	calls := mock.calls.GetTeam
	mock.lockGetTeam.RUnlock()
	return calls
}

func (mock *teamPointsRepoMock) UpsertTeam(ctx context.Context, p domain.TeamGamePoints) error {
	if mock.UpsertTeamFunc == nil {
		panic("teamPointsRepoMock.UpsertTeamFunc: method is nil but teamPointsRepo.UpsertTeam was just called")
	}
	callInfo := struct {
		P domain.TeamGamePoints
	}{P: p}
	mock.lockUpsertTeam.Lock()
	mock.calls.UpsertTeam = append(mock.calls.UpsertTeam, callInfo)
	mock.lockUpsertTeam.Unlock()
	return mock.UpsertTeamFunc(ctx, p)
}

func (mock *teamPointsRepoMock) UpsertTeamCalls() []struct {
	P domain.TeamGamePoints
} {
	mock.lockUpsertTeam.RLock()
	calls := mock.calls.UpsertTeam
	mock.lockUpsertTeam.RUnlock()
	return calls
}

var _ gamePointsRepo = &gamePointsRepoMock{}

type gamePointsRepoMock struct {
	AddPointsFunc func(ctx context.Context, p domain.GamePoints, delta float64) (domain.GamePoints, error)
	GetFunc       func(ctx context.Context, kind domain.GamePointsKind, gameID uuid.UUID) (domain.GamePoints, error)

	calls struct {
		AddPoints []struct {
			P     domain.GamePoints
			Delta float64
		}
		Get []struct {
			Kind   domain.GamePointsKind
			GameID uuid.UUID
		}
	}
	lockAddPoints sync.RWMutex
	lockGet       sync.RWMutex
}

func (mock *gamePointsRepoMock) AddPoints(ctx context.Context, p domain.GamePoints, delta float64) (domain.GamePoints, error) {
	if mock.AddPointsFunc == nil {
		panic("gamePointsRepoMock.AddPointsFunc: method is nil but gamePointsRepo.AddPoints was just called")
	}
	callInfo := struct {
		P     domain.GamePoints
		Delta float64
	}{P: p, Delta: delta}
	mock.lockAddPoints.Lock()
	mock.calls.AddPoints = append(mock.calls.AddPoints, callInfo)
	mock.lockAddPoints.Unlock()
	return mock.AddPointsFunc(ctx, p, delta)
}

func (mock *gamePointsRepoMock) AddPointsCalls() []struct {
	P     domain.GamePoints
	Delta float64
} {
	mock.lockAddPoints.RLock()
	calls := mock.calls.AddPoints
	mock.lockAddPoints.RUnlock()
	return calls
}

func (mock *gamePointsRepoMock) Get(ctx context.Context, kind domain.GamePointsKind, gameID uuid.UUID) (domain.GamePoints, error) {
	if mock.GetFunc == nil {
		panic("gamePointsRepoMock.GetFunc: method is nil but gamePointsRepo.Get was just called")
	}
	callInfo := struct {
		Kind   domain.GamePointsKind
		GameID uuid.UUID
	}{Kind: kind, GameID: gameID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, kind, gameID)
}

func (mock *gamePointsRepoMock) GetCalls() []struct {
	Kind   domain.GamePointsKind
	GameID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
