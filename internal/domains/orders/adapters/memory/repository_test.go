package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/orders/ports"
)

func newOrder(id string, createdAt time.Time) *domain.Order {
	return &domain.Order{
		ID:            id,
		Name:          "Nadia Rahman",
		Email:         "nadia@example.com",
		Phone:         "+880171",
		Address:       "Dhaka",
		Product:       "Passenger Lift PL-600",
		Quantity:      1,
		PaymentMethod: domain.PaymentCreditCard,
		Status:        domain.StatusPending,
		CreatedAt:     createdAt,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepository()

	saved, err := repo.Create(context.Background(), newOrder("ord-1", time.Now()))
	require.NoError(t, err)
	require.Equal(t, "ord-1", saved.ID)

	got, err := repo.GetByID(context.Background(), "ord-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)

	// Mutating what Create returned must not touch the stored copy.
	saved.Status = domain.StatusCancelled
	got, err = repo.GetByID(context.Background(), "ord-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
}

func TestCreate_AssignsID(t *testing.T) {
	repo := NewRepository()
	order := newOrder("", time.Now())
	saved, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
}

func TestCreate_RejectsInvalid(t *testing.T) {
	repo := NewRepository()
	order := newOrder("ord-1", time.Now())
	order.Email = ""
	_, err := repo.Create(context.Background(), order)
	require.ErrorIs(t, err, domain.ErrEmptyEmail)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewRepository()
	_, err := repo.GetByID(context.Background(), "ord-missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	repo := NewRepository()
	base := time.Now()
	for i, id := range []string{"ord-1", "ord-2", "ord-3"} {
		_, err := repo.Create(context.Background(), newOrder(id, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "ord-3", list[0].ID)
	require.Equal(t, "ord-1", list[2].ID)
}

func TestTransitionStatus(t *testing.T) {
	repo := NewRepository()
	_, err := repo.Create(context.Background(), newOrder("ord-1", time.Now()))
	require.NoError(t, err)

	updated, err := repo.TransitionStatus(context.Background(), "ord-1", domain.StatusPending, domain.StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, updated.Status)

	_, err = repo.TransitionStatus(context.Background(), "ord-1", domain.StatusPending, domain.StatusCancelled)
	require.ErrorIs(t, err, ports.ErrConflict)

	_, err = repo.TransitionStatus(context.Background(), "ord-missing", domain.StatusPending, domain.StatusConfirmed)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestTransitionStatus_SingleWinnerUnderContention(t *testing.T) {
	repo := NewRepository()
	_, err := repo.Create(context.Background(), newOrder("ord-1", time.Now()))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		target := domain.StatusConfirmed
		if i%2 == 1 {
			target = domain.StatusCancelled
		}
		wg.Add(1)
		go func(to domain.Status) {
			defer wg.Done()
			if _, err := repo.TransitionStatus(context.Background(), "ord-1", domain.StatusPending, to); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(target)
	}
	wg.Wait()
	require.Equal(t, 1, wins)

	got, err := repo.GetByID(context.Background(), "ord-1")
	require.NoError(t, err)
	require.True(t, got.Status.Terminal())
}
