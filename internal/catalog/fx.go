package catalog

import (
	"github.com/smallbiznis/rims/internal/catalog/repository"
	"github.com/smallbiznis/rims/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
