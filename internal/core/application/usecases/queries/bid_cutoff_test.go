package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBidCutoff(t *testing.T) {
	t.Run("valid cutoff", func(t *testing.T) {
		cutoff, err := queries.NewBidCutoff(14, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 14, cutoff.Hour)
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := queries.NewBidCutoff(24, 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative minute", func(t *testing.T) {
		_, err := queries.NewBidCutoff(14, -1, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestBidCutoff_Today(t *testing.T) {
	cutoff, err := queries.NewBidCutoff(14, 0, 0)
	require.NoError(t, err)

	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, loc)

	today := cutoff.Today(now)

	assert.Equal(t, time.Date(2024, time.March, 15, 14, 0, 0, 0, loc), today)
	assert.Equal(t, loc, today.Location())
}

func TestNewGetPackerOrdersQuery(t *testing.T) {
	t.Run("valid cutoff", func(t *testing.T) {
		cutoff := time.Now()
		query, err := queries.NewGetPackerOrdersQuery(cutoff)
		require.NoError(t, err)
		assert.Equal(t, cutoff, query.Cutoff())
		assert.NoError(t, query.Validate())
	})

	t.Run("zero cutoff", func(t *testing.T) {
		_, err := queries.NewGetPackerOrdersQuery(time.Time{})
		require.ErrorIs(t, err, queries.ErrCutoffIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetPackerOrdersQuery
		require.Error(t, query.Validate())
	})
}

func TestNewGetSorterOrdersQuery_ZeroCutoff(t *testing.T) {
	_, err := queries.NewGetSorterOrdersQuery(time.Time{})
	require.ErrorIs(t, err, queries.ErrCutoffIsRequired)
}

func TestNewGetShopUserOrdersQuery(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		userID := kernel.NewUUID()
		query, err := queries.NewGetShopUserOrdersQuery(userID)
		require.NoError(t, err)
		assert.Equal(t, userID, query.UserID())
	})

	t.Run("unconstructed user id", func(t *testing.T) {
		_, err := queries.NewGetShopUserOrdersQuery(kernel.UUID{})
		require.Error(t, err)
	})
}
