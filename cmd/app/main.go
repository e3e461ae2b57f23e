package main

import (
	"todos/config"
	"todos/di"
	"todos/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, cleanup := di.InitializeService()
	defer cleanup()

	http.Serve()
}
