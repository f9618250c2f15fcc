package lead

import (
	"github.com/flowmetriclabs/aproi/internal/lead/repository"
	"github.com/flowmetriclabs/aproi/internal/lead/service"
	"go.uber.org/fx"
)

var Module = fx.Module("lead.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewRecorder),
	fx.Provide(service.NewExportService),
)
