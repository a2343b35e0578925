package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Node IDs per process kind. Two processes sharing a node ID can mint duplicate ids.
const (
	NodeServer int64 = 1
	NodeWorker int64 = 2
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new int64 ID. Snapshots, tasks and logs rely on ids being
// time-ordered to break ties in creation order.
func New() int64 {
	return node.Generate().Int64()
}
