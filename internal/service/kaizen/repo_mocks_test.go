package kaizen

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

var _ kaizenRepo = &kaizenRepoMock{}

type kaizenRepoMock struct {
	CreateFunc     func(ctx context.Context, k domain.Kaizen) error
	GetByIDFunc    func(ctx context.Context, organizationID, id uuid.UUID) (domain.Kaizen, error)
	UpdateFunc     func(ctx context.Context, k domain.Kaizen) error
	ListByGameFunc func(ctx context.Context, gameID uuid.UUID, status *domain.KaizenStatus, limit, offset int) ([]domain.Kaizen, error)

	calls struct {
		Create []struct {
			K domain.Kaizen
		}
		GetByID []struct {
			OrganizationID uuid.UUID
			ID             uuid.UUID
		}
		Update []struct {
			K domain.Kaizen
		}
		ListByGame []struct {
			GameID uuid.UUID
			Status *domain.KaizenStatus
			Limit  int
			Offset int
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdate     sync.RWMutex
	lockListByGame sync.RWMutex
}

func (mock *kaizenRepoMock) Create(ctx context.Context, k domain.Kaizen) error {
	if mock.CreateFunc == nil {
		panic("kaizenRepoMock.CreateFunc: method is nil but kaizenRepo.Create was just called")
	}
	callInfo := struct {
		K domain.Kaizen
	}{K: k}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, k)
}

func (mock *kaizenRepoMock) CreateCalls() []struct {
	K domain.Kaizen
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *kaizenRepoMock) GetByID(ctx context.Context, organizationID, id uuid.UUID) (domain.Kaizen, error) {
	if mock.GetByIDFunc == nil {
		panic("kaizenRepoMock.GetByIDFunc: method is nil but kaizenRepo.GetByID was just called")
	}
	callInfo := struct {
		OrganizationID uuid.UUID
		ID             uuid.UUID
	}{OrganizationID: organizationID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, organizationID, id)
}

func (mock *kaizenRepoMock) GetByIDCalls() []struct {
	OrganizationID uuid.UUID
	ID             uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *kaizenRepoMock) Update(ctx context.Context, k domain.Kaizen) error {
	if mock.UpdateFunc == nil {
		panic("kaizenRepoMock.UpdateFunc: method is nil but kaizenRepo.Update was just called")
	}
	callInfo := struct {
		K domain.Kaizen
	}{K: k}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, k)
}

func (mock *kaizenRepoMock) UpdateCalls() []struct {
	K domain.Kaizen
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *kaizenRepoMock) ListByGame(ctx context.Context, gameID uuid.UUID, status *domain.KaizenStatus, limit, offset int) ([]domain.Kaizen, error) {
	if mock.ListByGameFunc == nil {
		panic("kaizenRepoMock.ListByGameFunc: method is nil but kaizenRepo.ListByGame was just called")
	}
	callInfo := struct {
		GameID uuid.UUID
		Status *domain.KaizenStatus
		Limit  int
		Offset int
	}{GameID: gameID, Status: status, Limit: limit, Offset: offset}
	mock.lockListByGame.Lock()
	mock.calls.ListByGame = append(mock.calls.ListByGame, callInfo)
	mock.lockListByGame.Unlock()
	return mock.ListByGameFunc(ctx, gameID, status, limit, offset)
}

func (mock *kaizenRepoMock) ListByGameCalls() []struct {
	GameID uuid.UUID
	Status *domain.KaizenStatus
	Limit  int
	Offset int
} {
	mock.lockListByGame.RLock()
	calls := mock.calls.ListByGame
	mock.lockListByGame.RUnlock()
	return calls
}

var _ kaizenTypeRepo = &kaizenTypeRepoMock{}

type kaizenTypeRepoMock struct {
	CreateFunc             func(ctx context.Context, t domain.KaizenType) error
	GetByIDFunc            func(ctx context.Context, organizationID, id uuid.UUID) (domain.KaizenType, error)
	UpdateFunc             func(ctx context.Context, t domain.KaizenType) error
	ListByOrganizationFunc func(ctx context.Context, organizationID uuid.UUID) ([]domain.KaizenType, error)

	calls struct {
		Create []struct {
			T domain.KaizenType
		}
		GetByID []struct {
			OrganizationID uuid.UUID
			ID             uuid.UUID
		}
		Update []struct {
			T domain.KaizenType
		}
		ListByOrganization []struct {
			OrganizationID uuid.UUID
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockUpdate             sync.RWMutex
	lockListByOrganization sync.RWMutex
}

func (mock *kaizenTypeRepoMock) Create(ctx context.Context, t domain.KaizenType) error {
	if mock.CreateFunc == nil {
		panic("kaizenTypeRepoMock.CreateFunc: method is nil but kaizenTypeRepo.Create was just called")
	}
	callInfo := struct {
		T domain.KaizenType
	}{T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *kaizenTypeRepoMock) CreateCalls() []struct {
	T domain.KaizenType
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *kaizenTypeRepoMock) GetByID(ctx context.Context, organizationID, id uuid.UUID) (domain.KaizenType, error) {
	if mock.GetByIDFunc == nil {
		panic("kaizenTypeRepoMock.GetByIDFunc: method is nil but kaizenTypeRepo.GetByID was just called")
	}
	callInfo := struct {
		OrganizationID uuid.UUID
		ID             uuid.UUID
	}{OrganizationID: organizationID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, organizationID, id)
}

func (mock *kaizenTypeRepoMock) GetByIDCalls() []struct {
	OrganizationID uuid.UUID
	ID             uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *kaizenTypeRepoMock) Update(ctx context.Context, t domain.KaizenType) error {
	if mock.UpdateFunc == nil {
		panic("kaizenTypeRepoMock.UpdateFunc: method is nil but kaizenTypeRepo.Update was just called")
	}
	callInfo := struct {
		T domain.KaizenType
	}{T: t}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *kaizenTypeRepoMock) UpdateCalls() []struct {
	T domain.KaizenType
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *kaizenTypeRepoMock) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]domain.KaizenType, error) {
	if mock.ListByOrganizationFunc == nil {
		panic("kaizenTypeRepoMock.ListByOrganizationFunc: method is nil but kaizenTypeRepo.ListByOrganization was just called")
	}
	callInfo := struct {
		OrganizationID uuid.UUID
	}{OrganizationID: organizationID}
	mock.lockListByOrganization.Lock()
	mock.calls.ListByOrganization = append(mock.calls.ListByOrganization, callInfo)
	mock.lockListByOrganization.Unlock()
	return mock.ListByOrganizationFunc(ctx, organizationID)
}

func (mock *kaizenTypeRepoMock) ListByOrganizationCalls() []struct {
	OrganizationID uuid.UUID
} {
	mock.lockListByOrganization.RLock()
	calls := mock.calls.ListByOrganization
	mock.lockListByOrganization.RUnlock()
	return calls
}

var _ gamePointsCreditor = &gamePointsCreditorMock{}

type gamePointsCreditorMock struct {
	AddPointsFunc func(ctx context.Context, p domain.GamePoints, delta float64) (domain.GamePoints, error)

	calls struct {
		AddPoints []struct {
			P     domain.GamePoints
			Delta float64
		}
	}
	lockAddPoints sync.RWMutex
}

func (mock *gamePointsCreditorMock) AddPoints(ctx context.Context, p domain.GamePoints, delta float64) (domain.GamePoints, error) {
	if mock.AddPointsFunc == nil {
		panic("gamePointsCreditorMock.AddPointsFunc: method is nil but gamePointsCreditor.AddPoints was just called")
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

func (mock *gamePointsCreditorMock) AddPointsCalls() []struct {
	P     domain.GamePoints
	Delta float64
} {
	mock.lockAddPoints.RLock()
	calls := mock.calls.AddPoints
	mock.lockAddPoints.RUnlock()
	return calls
}

var _ notificationCreator = &notificationCreatorMock{}

type notificationCreatorMock struct {
	CreateFunc func(ctx context.Context, n domain.WebNotification) error

	calls struct {
		Create []struct {
			N domain.WebNotification
		}
	}
	lockCreate sync.RWMutex
}

func (mock *notificationCreatorMock) Create(ctx context.Context, n domain.WebNotification) error {
	if mock.CreateFunc == nil {
		panic("notificationCreatorMock.CreateFunc: method is nil but notificationCreator.Create was just called")
	}
	callInfo := struct {
		N domain.WebNotification
	}{N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationCreatorMock) CreateCalls() []struct {
	N domain.WebNotification
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, with no transaction semantics.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
