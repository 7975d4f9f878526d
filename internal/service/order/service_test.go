package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"carameche/internal/domain"
	orderrepo "carameche/internal/repository/order"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	lastCreate    orderrepo.CreateOrderInput
	createErr     error
	orders        []domain.Order
	lastStatusID  string
	lastStatusVal string
	statusCalls   int
	statusErr     error
}

func (s *stubRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	s.lastCreate = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Order{
		ID:           "order-1",
		CustomerName: in.CustomerName,
		TotalCents:   in.TotalCents,
		TotalItems:   in.TotalItems,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now(),
		Items:        in.Items,
	}, nil
}

func (s *stubRepo) ListByCustomer(_ context.Context, name string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.CustomerName == name {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAll(context.Context) ([]domain.Order, error) {
	return s.orders, nil
}

func (s *stubRepo) SetStatus(_ context.Context, id, status string) error {
	s.statusCalls++
	s.lastStatusID = id
	s.lastStatusVal = status
	return s.statusErr
}

func testCart() domain.Cart {
	return domain.Cart{Entries: []domain.CartEntry{
		{Card: domain.Card{ID: "1", NameFR: "Dracaufeu", Number: "4/102", Series: "Set de Base", PriceCents: 24900, Reverse: false}, Quantity: 1},
		{Card: domain.Card{ID: "2", NameFR: "Pikachu", Number: "58/102", Series: "Set de Base", PriceCents: 950, Reverse: true}, Quantity: 2},
	}}
}

func TestSubmit_RejectsShortCustomerName(t *testing.T) {
	svc := New(&stubRepo{}, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "ab", testCart())
	assert.ErrorIs(t, err, domain.ErrCustomerName)

	// Whitespace does not count toward the minimum.
	_, err = svc.Submit(context.Background(), "  a  ", testCart())
	assert.ErrorIs(t, err, domain.ErrCustomerName)
}

func TestSubmit_RejectsEmptyCart(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "Sacha", domain.Cart{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, repo.lastCreate.CustomerName, "no write may happen on validation failure")
}

func TestSubmit_TotalsMatchLineItems(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, zerolog.Nop())

	order, err := svc.Submit(context.Background(), "Sacha", testCart())
	require.NoError(t, err)

	var sum int64
	for _, item := range order.Items {
		sum += item.UnitPriceCents * int64(item.Quantity)
	}
	assert.Equal(t, order.TotalCents, sum)
	assert.Equal(t, int64(26800), order.TotalCents)
	assert.Equal(t, 3, order.TotalItems)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestSubmit_SnapshotsCartEntries(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "Sacha", testCart())
	require.NoError(t, err)

	require.Len(t, repo.lastCreate.Items, 2)
	first := repo.lastCreate.Items[0]
	assert.Equal(t, "1", first.CardID)
	assert.Equal(t, "Dracaufeu", first.CardName)
	assert.Equal(t, "4/102", first.CardNumber)
	assert.Equal(t, "Set de Base", first.CardSeries)
	assert.True(t, repo.lastCreate.Items[1].Reverse)
}

func TestSubmit_RepoErrorSurfaces(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("db down")}
	svc := New(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "Sacha", testCart())
	assert.Error(t, err)
}

func TestSetStatus(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, zerolog.Nop())

	require.NoError(t, svc.SetStatus(context.Background(), "order-1", domain.StatusCompleted))
	assert.Equal(t, "order-1", repo.lastStatusID)
	assert.Equal(t, domain.StatusCompleted, repo.lastStatusVal)

	// Re-applying the same status is idempotent at this level.
	require.NoError(t, svc.SetStatus(context.Background(), "order-1", domain.StatusCompleted))
	assert.Equal(t, 2, repo.statusCalls)

	err := svc.SetStatus(context.Background(), "order-1", "shipped")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestListByCustomer_TrimsHandle(t *testing.T) {
	repo := &stubRepo{orders: []domain.Order{{ID: "o1", CustomerName: "Sacha"}}}
	svc := New(repo, zerolog.Nop())

	orders, err := svc.ListByCustomer(context.Background(), "  Sacha  ")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
