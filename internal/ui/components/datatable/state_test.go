package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StateLoading, DeriveState(true, 0))
	assert.Equal(t, StateLoading, DeriveState(true, 10))
	assert.Equal(t, StateEmpty, DeriveState(false, 0))
	assert.Equal(t, StatePopulated, DeriveState(false, 1))

	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "populated", StatePopulated.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestParseAlign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AlignCenter, ParseAlign("center"))
	assert.Equal(t, AlignRight, ParseAlign("right"))
	assert.Equal(t, AlignLeft, ParseAlign("left"))
	assert.Equal(t, AlignLeft, ParseAlign("diagonal"))
	assert.Equal(t, "right", AlignRight.String())
}
