package report

import (
	"github.com/flowmetriclabs/aproi/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(service.New),
)
