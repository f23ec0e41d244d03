package di

import (
	"context"
	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
	"schedule_poll_bot/configs"
	"time"
)

const (
	lokiBatchMaxSize = 1000
	lokiBatchMaxWait = 10 * time.Second
)

// NewLogger builds the process logger. Logs are shipped to Loki when a URL is configured.
func NewLogger(config configs.Logger, app configs.App) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	loki := zaploki.New(context.Background(), zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: lokiBatchMaxSize,
		BatchMaxWait: lokiBatchMaxWait,
		Labels: map[string]string{
			"app":         config.AppName,
			"environment": app.Environment,
		},
	})
	return zap.Must(loki.WithCreateLogger(zapConfig)).Sugar()
}
