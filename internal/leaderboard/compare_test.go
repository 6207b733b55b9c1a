package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Compare:
// - Primary API sorts before non-primary API
// - Earlier primary sorts before later primary
// - Two distinct non-primary APIs compare as equal priority
// - Same API compares descending by numeric version
// - Same API with equal versions compares as a tie
// - Unparseable version sorts below every real release
// - Empty primaries list treats every API as equal priority

func TestCompare_PrimaryBeforeNonPrimary(t *testing.T) {
	t.Parallel()

	primaries := []string{"Vulkan", "OpenGL"}
	vk := newAggregate("Vulkan", "1.2")
	es := newAggregate("OpenGL ES", "3.1")

	assert.Negative(t, Compare(vk, es, primaries), "Vulkan should sort before OpenGL ES")
	assert.Positive(t, Compare(es, vk, primaries), "OpenGL ES should sort after Vulkan")
}

func TestCompare_PrimaryOrderIsListOrder(t *testing.T) {
	t.Parallel()

	primaries := []string{"Vulkan", "OpenGL"}
	vk := newAggregate("Vulkan", "1.0")
	gl := newAggregate("OpenGL", "4.6")

	// Vulkan is listed first, so it outranks OpenGL even at a lower version.
	assert.Negative(t, Compare(vk, gl, primaries))
}

func TestCompare_NonPrimariesAreEqualPriority(t *testing.T) {
	t.Parallel()

	primaries := []string{"Vulkan", "OpenGL"}
	es := newAggregate("OpenGL ES", "3.1")
	egl := newAggregate("EGL", "1.5")

	assert.Zero(t, Compare(es, egl, primaries), "distinct non-primary APIs should tie")
	assert.Zero(t, Compare(egl, es, primaries))
}

func TestCompare_SameAPIDescendingByVersion(t *testing.T) {
	t.Parallel()

	newer := newAggregate("OpenGL", "4.6")
	older := newAggregate("OpenGL", "4.5")

	assert.Negative(t, Compare(newer, older, nil), "4.6 should sort before 4.5")
	assert.Positive(t, Compare(older, newer, nil))
}

func TestCompare_SameAPIEqualVersionTies(t *testing.T) {
	t.Parallel()

	a := newAggregate("OpenGL", "4.6")
	b := newAggregate("OpenGL", "4.6")

	assert.Zero(t, Compare(a, b, nil))
}

func TestCompare_UnparseableVersionSortsLast(t *testing.T) {
	t.Parallel()

	real := newAggregate("OpenGL", "1.0")
	bogus := newAggregate("OpenGL", "n/a")

	assert.Negative(t, Compare(real, bogus, nil))
}

func TestCompare_NoPrimariesEverythingTies(t *testing.T) {
	t.Parallel()

	a := newAggregate("Vulkan", "1.2")
	b := newAggregate("OpenGL", "4.6")

	assert.Zero(t, Compare(a, b, nil))
}
