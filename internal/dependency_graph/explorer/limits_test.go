package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitsWithDefaults(t *testing.T) {
	got := Limits{}.withDefaults()
	assert.Equal(t, DefaultMaxDepth, got.MaxDepth)
	assert.Equal(t, DefaultMaxParameters, got.MaxParameters)
	assert.Equal(t, DefaultMaxChildren, got.MaxChildren)
	assert.Equal(t, 0, got.AttributeDepth)
	assert.Equal(t, 0, got.ChildDepth)

	got = Limits{AttributeDepth: -1, ChildDepth: -1, MaxComponents: 3}.withDefaults()
	assert.Equal(t, DefaultAttributeDepth, got.AttributeDepth)
	assert.Equal(t, DefaultChildDepth, got.ChildDepth)
	assert.Equal(t, 3, got.MaxComponents)
}
