package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfxboard/gfxboard/internal/config"
	"github.com/gfxboard/gfxboard/internal/leaderboard"
	"github.com/gfxboard/gfxboard/internal/matrix"
)

// Test Plan for CLI helpers:
// - driverKey maps the configured reference name to the reserved key
// - driverKey passes ordinary driver names through
// - filterColumns with empty pattern keeps every column
// - filterColumns matches driver names by glob
// - filterColumns matches the reference column by display name
// - filterColumns with no matches returns an empty, non-nil column list
// - filterColumns rejects a malformed pattern

func testCfg() *config.Config {
	cfg := config.Default()
	cfg.Board.APIs = []string{"OpenGL"}
	cfg.Board.Primary = []string{"OpenGL"}
	return cfg
}

func cliTestBoard() *leaderboard.Leaderboard {
	m := &matrix.Matrix{
		APIs: []matrix.API{
			{
				Name: "OpenGL",
				Vendors: []matrix.Vendor{
					{Name: "AMD", Drivers: []string{"radeonsi", "r600"}},
					{Name: "Intel", Drivers: []string{"iris"}},
				},
				Versions: []matrix.Version{
					{Name: "OpenGL", Version: "4.6"},
				},
			},
		},
	}
	return leaderboard.NewBuilder([]string{"OpenGL"}).Build(m)
}

func TestDriverKey_MapsReferenceName(t *testing.T) {
	cfg := testCfg()
	assert.Equal(t, leaderboard.ReferenceKey, driverKey(cfg, "mesa"))
}

func TestDriverKey_PassesDriversThrough(t *testing.T) {
	cfg := testCfg()
	assert.Equal(t, "radeonsi", driverKey(cfg, "radeonsi"))
}

func TestFilterColumns_EmptyPatternKeepsAll(t *testing.T) {
	columns, err := filterColumns(testCfg(), cliTestBoard(), "")
	require.NoError(t, err)
	assert.Nil(t, columns, "nil means every column")
}

func TestFilterColumns_GlobMatchesDrivers(t *testing.T) {
	columns, err := filterColumns(testCfg(), cliTestBoard(), "r*")
	require.NoError(t, err)
	assert.Equal(t, []string{"radeonsi", "r600"}, columns)
}

func TestFilterColumns_ReferenceMatchesByLabel(t *testing.T) {
	columns, err := filterColumns(testCfg(), cliTestBoard(), "mesa")
	require.NoError(t, err)
	assert.Equal(t, []string{leaderboard.ReferenceKey}, columns)
}

func TestFilterColumns_NoMatchesIsEmptyNotNil(t *testing.T) {
	columns, err := filterColumns(testCfg(), cliTestBoard(), "nvidia*")
	require.NoError(t, err)
	require.NotNil(t, columns)
	assert.Empty(t, columns)
}

func TestFilterColumns_MalformedPattern(t *testing.T) {
	_, err := filterColumns(testCfg(), cliTestBoard(), "[")
	assert.Error(t, err)
}
