// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/hydrasite/internal/app/resources"
	"github.com/dalemusser/hydrasite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema setup are complete,
// but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error aborts startup.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// Health checks against the content API share the fetch budget.
	timeouts.Configure(timeouts.Config{Fetch: appCfg.APITimeout})
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n))
	}

	cur := timeouts.Current()
	logger.Info("startup complete",
		zap.Bool("api_enabled", appCfg.APIEnabled),
		zap.String("default_locale", appCfg.DefaultLocale),
		zap.Duration("fetch_timeout", cur.Fetch),
		zap.Duration("short_timeout", cur.Short),
	)
	return nil
}
