package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateFunc     func(ctx context.Context, n domain.WebNotification) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.WebNotification, error)
	MarkReadFunc   func(ctx context.Context, id uuid.UUID, readAt time.Time) error
	ListByUserFunc func(ctx context.Context, userID, organizationID uuid.UUID, limit, offset int) ([]domain.WebNotification, error)

	calls struct {
		Create []struct {
			N domain.WebNotification
		}
		GetByID []struct {
			ID uuid.UUID
		}
		MarkRead []struct {
			ID     uuid.UUID
			ReadAt time.Time
		}
		ListByUser []struct {
			UserID         uuid.UUID
			OrganizationID uuid.UUID
			Limit          int
			Offset         int
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockMarkRead   sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *notificationRepoMock) Create(ctx context.Context, n domain.WebNotification) error {
	if mock.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but notificationRepo.Create was just called")
	}
	callInfo := struct {
		N domain.WebNotification
	}{N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationRepoMock) CreateCalls() []struct {
	N domain.WebNotification
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *notificationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.WebNotification, error) {
	if mock.GetByIDFunc == nil {
		panic("notificationRepoMock.GetByIDFunc: method is nil but notificationRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *notificationRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		ReadAt time.Time
	}{ID: id, ReadAt: readAt}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id, readAt)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	ID     uuid.UUID
	ReadAt time.Time
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID, organizationID uuid.UUID, limit, offset int) ([]domain.WebNotification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID         uuid.UUID
		OrganizationID uuid.UUID
		Limit          int
		Offset         int
	}{UserID: userID, OrganizationID: organizationID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, organizationID, limit, offset)
}

func (mock *notificationRepoMock) ListByUserCalls() []struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Limit          int
	Offset         int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
