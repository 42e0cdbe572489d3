package main

import (
	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/di"
	"github.com/Mrithul03/vendroo-server/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
