package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/rims/internal/catalog/domain"
	"github.com/smallbiznis/rims/internal/catalog/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Seed(ctx))
	}

	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestSeedNeverOverwritesExistingRows(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	// operator bumps the car rate; a later startup seed must not undo it
	require.NoError(t, db.Exec(`UPDATE products SET rate_per_day = 2500 WHERE code = 'CAR452'`).Error)
	require.NoError(t, svc.Seed(ctx))

	rate, err := svc.LookupRate(ctx, "CAR452")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), rate)
}

func TestLookupRate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	rate, err := svc.LookupRate(ctx, "VAN775")
	require.NoError(t, err)
	assert.Equal(t, int64(1900), rate)

	_, err = svc.LookupRate(ctx, "BOAT123")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.LookupRate(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	groups, err := svc.ListByType(ctx)
	require.NoError(t, err)

	require.Len(t, groups, 4)
	assert.Equal(t, []domain.TypeGroup{
		{Type: "Car", Codes: []string{"CAR452"}},
		{Type: "Minibus", Codes: []string{"MIN334"}},
		{Type: "Truck", Codes: []string{"TRK7483"}},
		{Type: "Van", Codes: []string{"VAN775"}},
	}, groups)
}
