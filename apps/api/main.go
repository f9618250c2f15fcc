// @title           APROI API
// @version         1.0
// @description     Accounts-payable automation ROI estimation API

// @host      localhost:8080
// @BasePath  /api/v1
// @Schemes 	http https

package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/flowmetriclabs/aproi/internal/calc"
	"github.com/flowmetriclabs/aproi/internal/clock"
	"github.com/flowmetriclabs/aproi/internal/config"
	"github.com/flowmetriclabs/aproi/internal/lead"
	"github.com/flowmetriclabs/aproi/internal/observability"
	"github.com/flowmetriclabs/aproi/internal/providers/pdf"
	"github.com/flowmetriclabs/aproi/internal/report"
	"github.com/flowmetriclabs/aproi/internal/scenario"
	"github.com/flowmetriclabs/aproi/internal/server"
	"github.com/flowmetriclabs/aproi/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		calc.Module,
		scenario.Module,
		lead.Module,
		pdf.Module,
		report.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server) {
			s.RegisterAPIRoutes()
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
