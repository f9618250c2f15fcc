package scenario

import (
	"github.com/flowmetriclabs/aproi/internal/scenario/repository"
	"github.com/flowmetriclabs/aproi/internal/scenario/service"
	"go.uber.org/fx"
)

var Module = fx.Module("scenario.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
