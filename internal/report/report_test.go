package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfxboard/gfxboard/internal/leaderboard"
	"github.com/gfxboard/gfxboard/internal/matrix"
)

// Test Plan for Renderer:
// - Board renders one row per version in board order
// - Board maps the reference key to its display name
// - Board respects an explicit driver column list
// - Board renders a placeholder for an empty board
// - Ranking lists drivers descending with the tracked total
// - Latest prints a version per API and "none" when absent
// - Plain mode output carries no ANSI escapes

func testBoard() *leaderboard.Leaderboard {
	m := &matrix.Matrix{
		APIs: []matrix.API{
			{
				Name: "OpenGL",
				Vendors: []matrix.Vendor{
					{Name: "AMD", Drivers: []string{"radeonsi"}},
				},
				Versions: []matrix.Version{
					{
						Name: "OpenGL", Version: "4.6",
						Extensions: []matrix.Extension{
							{Name: "GL_ARB_gl_spirv", Status: matrix.StatusDone, Drivers: []string{"radeonsi"}},
							{Name: "GL_ARB_indirect_parameters", Status: matrix.StatusInProgress},
						},
					},
					{Name: "OpenGL", Version: "1.0"},
				},
			},
		},
	}
	return leaderboard.NewBuilder([]string{"OpenGL"}, leaderboard.WithPrimaries("OpenGL")).Build(m)
}

func TestBoard_RendersRowsInOrder(t *testing.T) {
	t.Parallel()

	out := New("mesa", WithPlain()).Board(testBoard(), nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "header + two versions")

	assert.Contains(t, lines[0], "API")
	assert.Contains(t, lines[1], "OpenGL 4.6")
	assert.Contains(t, lines[1], "1/2", "reference completes one of two")
	assert.Contains(t, lines[2], "OpenGL 1.0")
	assert.Contains(t, lines[2], "0/0")
}

func TestBoard_MapsReferenceLabel(t *testing.T) {
	t.Parallel()

	out := New("mesa", WithPlain()).Board(testBoard(), nil)
	assert.Contains(t, out, "mesa")
	assert.NotContains(t, out, leaderboard.ReferenceKey)
}

func TestBoard_ExplicitDriverColumns(t *testing.T) {
	t.Parallel()

	out := New("mesa", WithPlain()).Board(testBoard(), []string{"radeonsi"})
	assert.Contains(t, out, "radeonsi")
	assert.NotContains(t, out, "mesa", "reference column should be absent")
}

func TestBoard_EmptyBoard(t *testing.T) {
	t.Parallel()

	empty := leaderboard.NewBuilder(nil).Build(&matrix.Matrix{})
	out := New("mesa", WithPlain()).Board(empty, nil)
	assert.Contains(t, out, "no versions")
}

func TestRanking_DescendingWithTotal(t *testing.T) {
	t.Parallel()

	out := New("mesa", WithPlain()).Ranking(testBoard())
	assert.Contains(t, out, "2 extensions tracked")

	mesaAt := strings.Index(out, "mesa")
	radeonsiAt := strings.Index(out, "radeonsi")
	require.GreaterOrEqual(t, mesaAt, 0)
	require.GreaterOrEqual(t, radeonsiAt, 0)
	assert.Less(t, mesaAt, radeonsiAt, "tied at 1, mesa encountered first")
}

func TestLatest_VersionOrNone(t *testing.T) {
	t.Parallel()

	r := New("mesa", WithPlain())

	// radeonsi: 1.0 trivially complete, 4.6 incomplete -> 1.0.
	out := r.Latest(testBoard(), []string{"OpenGL", "Vulkan"}, "radeonsi")
	assert.Contains(t, out, "OpenGL")
	assert.Contains(t, out, "1.0")
	assert.Contains(t, out, "none", "Vulkan has no entries")
}

func TestPlainMode_NoANSIEscapes(t *testing.T) {
	t.Parallel()

	r := New("mesa", WithPlain())
	out := r.Board(testBoard(), nil) + r.Ranking(testBoard()) + r.Latest(testBoard(), []string{"OpenGL"}, "radeonsi")
	assert.NotContains(t, out, "\x1b[")
}
