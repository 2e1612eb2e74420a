// Package idgen provides the numeric id strategies used for invoices and cost
// entries. Both generators are safe for concurrent use.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"

	"github.com/Abdelrahman10101/Cost-Management/internal/config"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

// Sequence hands out consecutive ids.
type Sequence struct {
	next atomic.Int64
}

var _ interfaces.IIDGenerator = (*Sequence)(nil)

// NewSequence starts at start, or right after the highest taken id when that
// is larger.
func NewSequence(start int64, taken ...int64) *Sequence {
	for _, id := range taken {
		if id >= start {
			start = id + 1
		}
	}
	s := &Sequence{}
	s.next.Store(start)
	return s
}

func (s *Sequence) NextID() int64 {
	return s.next.Add(1) - 1
}

// Snowflake generates time-ordered 63-bit ids from a single node.
type Snowflake struct {
	node *snowflake.Node
}

var _ interfaces.IIDGenerator = (*Snowflake)(nil)

func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", node, err)
	}
	return &Snowflake{node: n}, nil
}

func (s *Snowflake) NextID() int64 {
	return s.node.Generate().Int64()
}

// New builds the generator selected by cfg. taken lists ids already in use
// by the collection; the sequence strategy skips past them.
func New(cfg config.BillingConfig, taken ...int64) (interfaces.IIDGenerator, error) {
	switch cfg.IDStrategy {
	case config.IDStrategySnowflake:
		return NewSnowflake(cfg.SnowflakeNode)
	case config.IDStrategySequence, "":
		return NewSequence(cfg.IDStart, taken...), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", cfg.IDStrategy)
	}
}
