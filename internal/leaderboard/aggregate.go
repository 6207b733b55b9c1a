package leaderboard

import "strconv"

// ReferenceKey is the reserved driver key under which the reference
// implementation's completed counts are stored. The "@" prefix keeps it
// outside the namespace of real driver names, which are plain identifiers.
const ReferenceKey = "@reference"

// VersionAggregate holds one API version's identity, its total extension
// count, and the completed-extension count for every tracked driver.
// Aggregates are created during a build and immutable afterwards.
type VersionAggregate struct {
	APIName    string // e.g. "OpenGL ES"
	APIVersion string // e.g. "3.1"

	versionNum float64 // APIVersion parsed for ordering
	total      int
	completed  map[string]int
	order      []string // driver keys in first-encounter order
}

func newAggregate(apiName, apiVersion string) *VersionAggregate {
	// A version that does not parse sorts as 0, below every real release.
	num, _ := strconv.ParseFloat(apiVersion, 64)
	return &VersionAggregate{
		APIName:    apiName,
		APIVersion: apiVersion,
		versionNum: num,
		completed:  make(map[string]int),
	}
}

// set records a driver's completed count, remembering encounter order.
// Every tracked driver gets an entry, including explicit zeros.
func (v *VersionAggregate) set(driver string, count int) {
	if _, ok := v.completed[driver]; !ok {
		v.order = append(v.order, driver)
	}
	v.completed[driver] = count
}

// ID returns the composed identity used by Leaderboard.FindVersion,
// e.g. "OpenGL 4.6".
func (v *VersionAggregate) ID() string {
	return v.APIName + " " + v.APIVersion
}

// TotalExtensions returns the version's extension count, sub-extensions
// included.
func (v *VersionAggregate) TotalExtensions() int {
	return v.total
}

// CompletedBy returns the named driver's completed count. Drivers never
// tracked for this version report 0.
func (v *VersionAggregate) CompletedBy(driver string) int {
	return v.completed[driver]
}

// FullySupportedBy reports whether the driver has completed every extension
// of this version. A version with zero extensions is trivially complete.
func (v *VersionAggregate) FullySupportedBy(driver string) bool {
	return v.completed[driver] == v.total
}

// Drivers returns the tracked driver keys in first-encounter order. The
// reference key comes first, then vendor drivers in roster order.
func (v *VersionAggregate) Drivers() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}
