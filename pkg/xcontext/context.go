package xcontext

import (
	"context"

	"github.com/guildpoint/moderation/config"
	"github.com/guildpoint/moderation/pkg/logger"
)

type (
	loggerKey  struct{}
	configsKey struct{}
)

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger carried by ctx. A context carrying only configs
// gets a logger at the configured level; a bare context gets the default INFO
// logger, so the engine works with a plain context.Background().
func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}
	if cfg, ok := ctx.Value(configsKey{}).(config.Configs); ok {
		return logger.NewLogger(cfg.Logger.Level)
	}

	return logger.NewLogger(logger.INFO)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	if cfg, ok := ctx.Value(configsKey{}).(config.Configs); ok {
		return cfg
	}

	return config.Configs{}
}
