package idutil

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

// Generate mints a fresh snowflake ID. All IDs in this module are snowflakes,
// so creation time is recoverable from the ID itself.
func Generate() snowflake.ID {
	nodeOnce.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
		node = n
	})

	return node.Generate()
}

func CreationTime(id snowflake.ID) time.Time {
	return time.UnixMilli(id.Time())
}
