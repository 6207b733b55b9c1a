package leaderboard

import "slices"

// Leaderboard is the finished, ordered collection of version aggregates.
// It is immutable after Build, so concurrent readers need no locking; a
// changed matrix is handled by building a fresh instance, never by mutating
// a shared one.
type Leaderboard struct {
	versions []*VersionAggregate
}

// DriverScore is one row of the driver ranking.
type DriverScore struct {
	Driver    string
	Completed int
}

// Versions returns the aggregates in board order, most advanced first.
func (l *Leaderboard) Versions() []*VersionAggregate {
	out := make([]*VersionAggregate, len(l.versions))
	copy(out, l.versions)
	return out
}

// Drivers returns every driver key tracked anywhere on the board, in
// first-encounter order. The reference key comes first when present.
func (l *Leaderboard) Drivers() []string {
	seen := make(map[string]bool)
	var drivers []string
	for _, v := range l.versions {
		for _, d := range v.order {
			if seen[d] {
				continue
			}
			seen[d] = true
			drivers = append(drivers, d)
		}
	}
	return drivers
}

// FindVersion returns the first aggregate whose composed identity (see
// VersionAggregate.ID) matches, or nil when there is none.
func (l *Leaderboard) FindVersion(id string) *VersionAggregate {
	for _, v := range l.versions {
		if v.ID() == id {
			return v
		}
	}
	return nil
}

// TotalExtensions returns the extension count summed over every version on
// the board, sub-extensions included.
func (l *Leaderboard) TotalExtensions() int {
	total := 0
	for _, v := range l.versions {
		total += v.total
	}
	return total
}

// TotalCompletedBy returns the driver's completed count summed over every
// version. Drivers never referenced anywhere return 0.
func (l *Leaderboard) TotalCompletedBy(driver string) int {
	total := 0
	for _, v := range l.versions {
		total += v.CompletedBy(driver)
	}
	return total
}

// DriverRanking sums every tracked driver's completed count across the
// board and returns the result descending by count. Ties keep the drivers'
// first-encounter order, which makes the ranking deterministic.
func (l *Leaderboard) DriverRanking() []DriverScore {
	drivers := l.Drivers()
	scores := make([]DriverScore, 0, len(drivers))
	for _, d := range drivers {
		scores = append(scores, DriverScore{Driver: d, Completed: l.TotalCompletedBy(d)})
	}
	slices.SortStableFunc(scores, func(a, b DriverScore) int {
		return b.Completed - a.Completed
	})
	return scores
}

// LatestFullySupported returns the highest version of the named API for
// which the driver has completed every extension, scanning upward from the
// oldest version and stopping at the first incomplete one. The result is
// the longest unbroken prefix of full completion, not the highest complete
// version overall. It returns nil when the oldest version is already
// incomplete, or when the API has no versions on the board.
func (l *Leaderboard) LatestFullySupported(apiName, driver string) *VersionAggregate {
	var best *VersionAggregate
	// Board order is descending, so walk it backwards to go oldest-first.
	for i := len(l.versions) - 1; i >= 0; i-- {
		v := l.versions[i]
		if v.APIName != apiName {
			continue
		}
		if !v.FullySupportedBy(driver) {
			break
		}
		best = v
	}
	return best
}
