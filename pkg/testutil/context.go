package testutil

import (
	"context"

	"github.com/guildpoint/moderation/config"
	"github.com/guildpoint/moderation/pkg/logger"
	"github.com/guildpoint/moderation/pkg/xcontext"
)

// MockContext returns a context carrying a silenced logger and default
// configs, the way the hosting application would set one up.
func MockContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithLogger(ctx, logger.Silence())
	ctx = xcontext.WithConfigs(ctx, config.Configs{Env: "testing"})
	return ctx
}
