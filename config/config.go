package config

import (
	"github.com/guildpoint/moderation/pkg/logger"
)

type Configs struct {
	Env string

	Logger LoggerConfigs
	Policy PolicyConfigs
}

type LoggerConfigs struct {
	Level logger.Level
}

type PolicyConfigs struct {
	// AdminBypassesHierarchy lets an administrator actor skip the top-role
	// comparison on member-target actions. The platform itself only grants
	// that bypass to the guild owner, so this defaults to off.
	AdminBypassesHierarchy bool
}
