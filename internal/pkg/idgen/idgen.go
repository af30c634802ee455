// Package idgen generates identifiers for confirmation prompts.
package idgen

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// NewUUID returns a generator of dashless UUIDs, prefixed with prefix+"_"
// when prefix is set. Prompt IDs end up inside Discord custom IDs, which are
// capped at 100 characters.
func NewUUID(prefix string) Generator {
	return Func(func() string {
		return join(prefix, strings.ReplaceAll(uuid.NewString(), "-", ""))
	})
}

// NewSequential returns a generator of "prefix_1", "prefix_2", ... Safe for
// concurrent use.
func NewSequential(prefix string) Generator {
	var n atomic.Uint64
	return Func(func() string {
		return join(prefix, strconv.FormatUint(n.Add(1), 10))
	})
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
