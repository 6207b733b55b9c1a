package leaderboard

import (
	"slices"

	"github.com/gfxboard/gfxboard/internal/matrix"
)

// Builder builds a Leaderboard from a parsed feature matrix.
type Builder interface {
	// Build walks the matrix for the configured APIs and returns a fresh,
	// fully sorted Leaderboard. It never mutates the matrix, and repeated
	// calls on the same input produce identical results.
	Build(m *matrix.Matrix) *Leaderboard
}

// builder implements Builder.
type builder struct {
	apis      []string // ordered API include list; names absent from the matrix are skipped
	primaries []string // API names that rank ahead of the rest
}

// BuilderOption configures a Builder.
type BuilderOption func(*builder)

// WithPrimaries marks API names that sort ahead of all others on the board,
// in the given order. Without it every API carries equal priority.
func WithPrimaries(names ...string) BuilderOption {
	return func(b *builder) {
		b.primaries = names
	}
}

// NewBuilder creates a Builder covering the given APIs, in the given order.
// APIs not listed are excluded entirely, including from rankings and totals.
func NewBuilder(apis []string, opts ...BuilderOption) Builder {
	b := &builder{apis: apis}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces one VersionAggregate per Version node of each requested
// API, then fixes the order with the Compare rule. A requested API missing
// from the matrix contributes nothing.
func (b *builder) Build(m *matrix.Matrix) *Leaderboard {
	var aggs []*VersionAggregate
	for _, name := range b.apis {
		api := m.Find(name)
		if api == nil {
			continue
		}
		drivers := api.AllDrivers()
		for i := range api.Versions {
			aggs = append(aggs, aggregateVersion(&api.Versions[i], drivers))
		}
	}

	slices.SortStableFunc(aggs, func(a, b2 *VersionAggregate) int {
		return Compare(a, b2, b.primaries)
	})

	return &Leaderboard{versions: aggs}
}

// aggregateVersion computes one version's totals: the extension count
// (sub-extensions included), the reference implementation's completed count
// from the status fields, and each vendor driver's completed count from the
// supported-driver markers. Drivers with no matches get an explicit zero.
func aggregateVersion(ver *matrix.Version, drivers []string) *VersionAggregate {
	agg := newAggregate(ver.Name, ver.Version)

	refDone := 0
	for i := range ver.Extensions {
		ext := &ver.Extensions[i]
		agg.total++
		if ext.Status.Done() {
			refDone++
		}
		for j := range ext.SubExtensions {
			agg.total++
			if ext.SubExtensions[j].Status.Done() {
				refDone++
			}
		}
	}
	agg.set(ReferenceKey, refDone)

	for _, d := range drivers {
		count := 0
		for i := range ver.Extensions {
			ext := &ver.Extensions[i]
			if ext.Supports(d) {
				count++
			}
			for j := range ext.SubExtensions {
				if ext.SubExtensions[j].Supports(d) {
					count++
				}
			}
		}
		agg.set(d, count)
	}

	return agg
}
