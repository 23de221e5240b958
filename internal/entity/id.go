package entity

import "github.com/bwmarrin/snowflake"

// ID identifies every guild object. The zero ID means "absent": an optional
// reference that was never set, or an object that no longer exists.
type ID = snowflake.ID
