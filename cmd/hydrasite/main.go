// cmd/hydrasite/main.go
package main

import (
	"context"
	"os"

	"github.com/dalemusser/hydrasite/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
	"go.uber.org/zap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		logger, _ := zap.NewProduction()
		logger.Error("hydrasite exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
