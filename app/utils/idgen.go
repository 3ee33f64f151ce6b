package utils

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out record ids for guests and cleaning tasks.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator returns "1", "2", ... and is safe for concurrent use.
type SequenceGenerator struct {
	n atomic.Uint64
}

func (g *SequenceGenerator) NewID() string {
	return strconv.FormatUint(g.n.Add(1), 10)
}
