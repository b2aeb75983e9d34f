package seed

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	catalogdomain "github.com/smallbiznis/rims/internal/catalog/domain"
	"github.com/smallbiznis/rims/internal/catalog/repository"
	catalogservice "github.com/smallbiznis/rims/internal/catalog/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestBootstrapIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	catalogSvc := catalogservice.New(catalogservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, Bootstrap(db, catalogSvc))
	}

	var products int64
	require.NoError(t, db.Model(&catalogdomain.Product{}).Count(&products).Error)
	assert.Equal(t, int64(4), products)

	for _, table := range []string{"customers", "products", "rentals"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrateRequiresHandle(t *testing.T) {
	assert.Error(t, Migrate(nil))
}
