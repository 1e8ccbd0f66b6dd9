package prize

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

var _ prizeRepo = &prizeRepoMock{}

type prizeRepoMock struct {
	CreateFunc              func(ctx context.Context, p domain.FinancialPrize) error
	GetByUserAndPeriodFunc  func(ctx context.Context, userID, gameID uuid.UUID, period domain.Period) (domain.FinancialPrize, error)
	ListByGameAndPeriodFunc func(ctx context.Context, gameID uuid.UUID, period domain.Period) ([]domain.FinancialPrize, error)
	ListByUserFunc          func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.FinancialPrize, error)

	calls struct {
		Create []struct {
			P domain.FinancialPrize
		}
		GetByUserAndPeriod []struct {
			UserID uuid.UUID
			GameID uuid.UUID
			Period domain.Period
		}
		ListByGameAndPeriod []struct {
			GameID uuid.UUID
			Period domain.Period
		}
		ListByUser []struct {
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate              sync.RWMutex
	lockGetByUserAndPeriod  sync.RWMutex
	lockListByGameAndPeriod sync.RWMutex
	lockListByUser          sync.RWMutex
}

func (mock *prizeRepoMock) Create(ctx context.Context, p domain.FinancialPrize) error {
	if mock.CreateFunc == nil {
		panic("prizeRepoMock.CreateFunc: method is nil but prizeRepo.Create was just called")
	}
	callInfo := struct {
		P domain.FinancialPrize
	}{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *prizeRepoMock) CreateCalls() []struct {
	P domain.FinancialPrize
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *prizeRepoMock) GetByUserAndPeriod(ctx context.Context, userID, gameID uuid.UUID, period domain.Period) (domain.FinancialPrize, error) {
	if mock.GetByUserAndPeriodFunc == nil {
		panic("prizeRepoMock.GetByUserAndPeriodFunc: method is nil but prizeRepo.GetByUserAndPeriod was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		GameID uuid.UUID
		Period domain.Period
	}{UserID: userID, GameID: gameID, Period: period}
	mock.lockGetByUserAndPeriod.Lock()
	mock.calls.GetByUserAndPeriod = append(mock.calls.GetByUserAndPeriod, callInfo)
	mock.lockGetByUserAndPeriod.Unlock()
	return mock.GetByUserAndPeriodFunc(ctx, userID, gameID, period)
}

func (mock *prizeRepoMock) GetByUserAndPeriodCalls() []struct {
	UserID uuid.UUID
	GameID uuid.UUID
	Period domain.Period
} {
	mock.lockGetByUserAndPeriod.RLock()
	calls := mock.calls.GetByUserAndPeriod
	mock.lockGetByUserAndPeriod.RUnlock()
	return calls
}

func (mock *prizeRepoMock) ListByGameAndPeriod(ctx context.Context, gameID uuid.UUID, period domain.Period) ([]domain.FinancialPrize, error) {
	if mock.ListByGameAndPeriodFunc == nil {
		panic("prizeRepoMock.ListByGameAndPeriodFunc: method is nil but prizeRepo.ListByGameAndPeriod was just called")
	}
	callInfo := struct {
		GameID uuid.UUID
		Period domain.Period
	}{GameID: gameID, Period: period}
	mock.lockListByGameAndPeriod.Lock()
	mock.calls.ListByGameAndPeriod = append(mock.calls.ListByGameAndPeriod, callInfo)
	mock.lockListByGameAndPeriod.Unlock()
	return mock.ListByGameAndPeriodFunc(ctx, gameID, period)
}

func (mock *prizeRepoMock) ListByGameAndPeriodCalls() []struct {
	GameID uuid.UUID
	Period domain.Period
} {
	mock.lockListByGameAndPeriod.RLock()
	calls := mock.calls.ListByGameAndPeriod
	mock.lockListByGameAndPeriod.RUnlock()
	return calls
}

func (mock *prizeRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.FinancialPrize, error) {
	if mock.ListByUserFunc == nil {
		panic("prizeRepoMock.ListByUserFunc: method is nil but prizeRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Limit  int
		Offset int
	}{UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *prizeRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
