package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rims/internal/catalog"
	catalogdomain "github.com/smallbiznis/rims/internal/catalog/domain"
	"github.com/smallbiznis/rims/internal/config"
	"github.com/smallbiznis/rims/internal/customer"
	"github.com/smallbiznis/rims/internal/pricing"
	"github.com/smallbiznis/rims/internal/providers/pdf"
	"github.com/smallbiznis/rims/internal/receipt"
	"github.com/smallbiznis/rims/internal/rental"
	"github.com/smallbiznis/rims/internal/reporting"
	"github.com/smallbiznis/rims/internal/seed"
	"github.com/smallbiznis/rims/pkg/db"
	"github.com/smallbiznis/rims/pkg/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// rims initializes the rental store: it opens (or creates) the SQLite
// database, migrates the schema and seeds the default catalog, then
// exits. The desktop shell links the internal packages directly.
func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		// Functional Domains
		catalog.Module,
		pricing.Module,
		receipt.Module,
		customer.Module,
		rental.Module,
		reporting.Module,
		pdf.Module,

		fx.Invoke(bootstrap),
	)
	app.Run()
}

func bootstrap(gdb *gorm.DB, catalogSvc catalogdomain.Service, logger *zap.Logger, sd fx.Shutdowner) error {
	if err := seed.Bootstrap(gdb, catalogSvc); err != nil {
		return err
	}
	logger.Info("store initialized")
	return sd.Shutdown()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
