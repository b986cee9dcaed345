package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/colorsense/colorsense-backend/internal/domain/cart"
	"github.com/colorsense/colorsense-backend/internal/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	stored        *Wishlist
	conflictsLeft int
	saveCalls     int
}

func (m *mockRepository) Load(context.Context, uint) (*Wishlist, error) {
	if m.stored == nil {
		return nil, nil
	}
	cp := *m.stored
	cp.Items = append([]Item(nil), m.stored.Items...)
	return &cp, nil
}

func (m *mockRepository) Save(_ context.Context, w *Wishlist) error {
	m.saveCalls++
	if m.conflictsLeft > 0 {
		m.conflictsLeft--
		return ErrConflict
	}
	if m.stored != nil && w.Version != m.stored.Version {
		return ErrConflict
	}
	cp := *w
	cp.Items = append([]Item(nil), w.Items...)
	cp.Version++
	m.stored = &cp
	w.Version++
	return nil
}

type mockCatalog struct {
	products map[uint]product.Snapshot
}

func (m *mockCatalog) ProductSnapshot(_ context.Context, productID uint) (*product.Snapshot, error) {
	snap, ok := m.products[productID]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &snap, nil
}

type mockCartAdder struct {
	requests []cart.AddItemRequest
	err      error
}

func (m *mockCartAdder) AddItem(_ context.Context, _ uint, req *cart.AddItemRequest) (*cart.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.requests = append(m.requests, *req)
	return cart.NewCart(1), nil
}

func testCatalog() *mockCatalog {
	return &mockCatalog{products: map[uint]product.Snapshot{
		10: {ProductID: 10, Name: "Classic Crew Tee", Price: 500, IsActive: true},
		30: {ProductID: 30, Name: "Discontinued Scarf", Price: 900, IsActive: false},
	}}
}

func newTestService(repo *mockRepository, catalog *mockCatalog, carts CartAdder) *Service {
	return NewService(repo, catalog, carts)
}

func TestServiceAddItem(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo, testCatalog(), &mockCartAdder{})

	w, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 10})

	require.NoError(t, err)
	require.Len(t, w.Items, 1)
	assert.Equal(t, uint(10), w.Items[0].ProductID)
	require.NotNil(t, repo.stored)
	assert.Len(t, repo.stored.Items, 1)
}

func TestServiceAddItemDuplicate(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo, testCatalog(), &mockCartAdder{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, &AddItemRequest{ProductID: 10})
	require.NoError(t, err)
	savesBefore := repo.saveCalls

	_, err = svc.AddItem(ctx, 1, &AddItemRequest{ProductID: 10})

	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.Equal(t, savesBefore, repo.saveCalls, "duplicate add must not persist anything")
	assert.Len(t, repo.stored.Items, 1)
}

func TestServiceAddItemUnknownProduct(t *testing.T) {
	svc := newTestService(&mockRepository{}, testCatalog(), &mockCartAdder{})

	_, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 999})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestServiceAddItemInactiveProduct(t *testing.T) {
	svc := newTestService(&mockRepository{}, testCatalog(), &mockCartAdder{})

	_, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 30})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestServiceRemoveByProductIdempotent(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo, testCatalog(), &mockCartAdder{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, &AddItemRequest{ProductID: 10})
	require.NoError(t, err)

	w, err := svc.RemoveByProduct(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, w.Items)

	w, err = svc.RemoveByProduct(ctx, 1, 10)
	require.NoError(t, err, "removing an absent product is a no-op")
	assert.Empty(t, w.Items)
}

func TestServiceHasProduct(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo, testCatalog(), &mockCartAdder{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, &AddItemRequest{ProductID: 10})
	require.NoError(t, err)

	has, err := svc.HasProduct(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.HasProduct(ctx, 1, 20)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestServiceMoveToCart(t *testing.T) {
	repo := &mockRepository{}
	adder := &mockCartAdder{}
	svc := newTestService(repo, testCatalog(), adder)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, &AddItemRequest{ProductID: 10})
	require.NoError(t, err)

	w, err := svc.MoveToCart(ctx, 1, 10, &MoveToCartRequest{Quantity: 2, Size: "M", Color: "Red"})

	require.NoError(t, err)
	assert.Empty(t, w.Items)
	require.Len(t, adder.requests, 1)
	assert.Equal(t, uint(10), adder.requests[0].ProductID)
	assert.Equal(t, 2, adder.requests[0].Quantity)
	assert.Equal(t, "M", adder.requests[0].Size)
}

func TestServiceMoveToCartMissingProduct(t *testing.T) {
	svc := newTestService(&mockRepository{}, testCatalog(), &mockCartAdder{})

	_, err := svc.MoveToCart(context.Background(), 1, 10, &MoveToCartRequest{Quantity: 1})

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestServiceMoveToCartKeepsItemWhenCartAddFails(t *testing.T) {
	repo := &mockRepository{}
	adder := &mockCartAdder{err: errors.New("insufficient stock")}
	svc := newTestService(repo, testCatalog(), adder)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, &AddItemRequest{ProductID: 10})
	require.NoError(t, err)

	_, err = svc.MoveToCart(ctx, 1, 10, &MoveToCartRequest{Quantity: 1})

	require.Error(t, err)
	assert.Len(t, repo.stored.Items, 1, "failed cart add leaves the wishlist untouched")
}

func TestServiceRetriesOnConflict(t *testing.T) {
	repo := &mockRepository{conflictsLeft: 1}
	svc := newTestService(repo, testCatalog(), &mockCartAdder{})

	w, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, repo.saveCalls)
	assert.Len(t, w.Items, 1)
}

func TestServiceSurfacesConflictWhenRetriesExhausted(t *testing.T) {
	repo := &mockRepository{conflictsLeft: maxSaveAttempts}
	svc := newTestService(repo, testCatalog(), &mockCartAdder{})

	_, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 10})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestServiceClearWishlist(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo, testCatalog(), &mockCartAdder{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, &AddItemRequest{ProductID: 10})
	require.NoError(t, err)

	w, err := svc.ClearWishlist(ctx, 1)

	require.NoError(t, err)
	assert.Empty(t, w.Items)
	assert.Zero(t, w.TotalItemCount)
	require.NotNil(t, repo.stored, "clear keeps the aggregate alive")
	assert.Empty(t, repo.stored.Items)
}
