package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SogeMoge/xwsbot/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("confirm")

	a := gen.Generate()
	b := gen.Generate()

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "confirm_"))
	assert.NotContains(t, a, "-")
	assert.Len(t, a, len("confirm_")+32)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("prompt")
	assert.Equal(t, "prompt_1", gen.Generate())
	assert.Equal(t, "prompt_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestFunc(t *testing.T) {
	var gen idgen.Generator = idgen.Func(func() string { return "fixed" })
	assert.Equal(t, "fixed", gen.Generate())
}
