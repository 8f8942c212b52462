package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdasif123/SipandSnack/internal/clock"
	"github.com/mhdasif123/SipandSnack/internal/domain"
	"github.com/mhdasif123/SipandSnack/internal/storage/memory"
)

func TestDemo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()

	require.NoError(t, Demo(ctx, store, clock.NewFixed(now)))

	employees, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 5)

	teas, err := store.ListItems(ctx, domain.CatalogTea)
	require.NoError(t, err)
	assert.Len(t, teas, 5)

	snacks, err := store.ListItems(ctx, domain.CatalogSnack)
	require.NoError(t, err)
	assert.Len(t, snacks, 4)

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	// The order log reads newest first: yesterday, two days ago, last week.
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
	assert.Equal(t, "o3", orders[2].ID)
	assert.Equal(t, now.AddDate(0, 0, -1), orders[0].OrderDate)
	assert.Equal(t, now.AddDate(0, 0, -7), orders[2].OrderDate)
}
