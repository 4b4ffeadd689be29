package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatorMutualExclusion(t *testing.T) {
	c := newJobCoordinator()

	assert.True(t, c.acquireScan())
	assert.False(t, c.acquireScan())

	// the two kinds run concurrently with each other
	assert.True(t, c.acquireOrganize())
	assert.False(t, c.acquireOrganize())

	c.releaseScan()
	assert.True(t, c.acquireScan())

	c.releaseOrganize()
	assert.True(t, c.acquireOrganize())
}
