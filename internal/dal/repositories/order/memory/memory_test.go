package memoryrepo_test

import (
	"context"
	"testing"

	memoryrepo "github.com/corray333/cargo-manager/internal/dal/repositories/order/memory"
	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder() order.Order {
	return order.Order{
		ClientID:   1,
		SupplierID: 2,
		Name:       "spare parts",
		Status:     "new",
		Totals:     order.Totals{CNY: 100, RUB: 1200, USD: 13.7},
	}
}

func TestOrderRepository_InsertAssignsSequentialIDs(t *testing.T) {
	repo := memoryrepo.NewOrderRepository()
	ctx := context.Background()

	first, err := repo.Insert(ctx, newOrder())
	require.NoError(t, err)
	second, err := repo.Insert(ctx, newOrder())
	require.NoError(t, err)

	assert.EqualValues(t, 1, first)
	assert.EqualValues(t, 2, second)
}

func TestOrderRepository_GetByID(t *testing.T) {
	repo := memoryrepo.NewOrderRepository()
	ctx := context.Background()

	id, err := repo.Insert(ctx, newOrder())
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "spare parts", stored.Name)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestOrderRepository_Update(t *testing.T) {
	repo := memoryrepo.NewOrderRepository()
	ctx := context.Background()

	id, err := repo.Insert(ctx, newOrder())
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	stored.Status = "confirmed"
	affected, err := repo.Update(ctx, *stored)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	updated, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)
}

func TestOrderRepository_UpdateMissing(t *testing.T) {
	repo := memoryrepo.NewOrderRepository()

	o := newOrder()
	o.ID = 404
	affected, err := repo.Update(context.Background(), o)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestOrderRepository_Delete(t *testing.T) {
	repo := memoryrepo.NewOrderRepository()
	ctx := context.Background()

	id, err := repo.Insert(ctx, newOrder())
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestOrderRepository_Query(t *testing.T) {
	repo := memoryrepo.NewOrderRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, newOrder())
		require.NoError(t, err)
	}

	orders, err := repo.Query(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Less(t, orders[0].ID, orders[1].ID)
}
