package leaderboard

// Compare is the single ordering rule for the leaderboard. It returns a
// negative value when a sorts before b, positive when after, and 0 when the
// pair has no preferred order.
//
// When the API names differ, position in the primaries list decides: every
// primary API sorts ahead of every non-primary one, earlier primaries first.
// Two distinct non-primary APIs carry equal priority, so a stable sort keeps
// their original relative order. When the names are equal, the higher
// numeric version sorts first; equal versions are a tie resolved by stable
// original order.
func Compare(a, b *VersionAggregate, primaries []string) int {
	if a.APIName != b.APIName {
		return priority(a.APIName, primaries) - priority(b.APIName, primaries)
	}
	switch {
	case a.versionNum > b.versionNum:
		return -1
	case a.versionNum < b.versionNum:
		return 1
	default:
		return 0
	}
}

// priority maps an API name to its rank: its index in the primaries list,
// or one past the end for every non-primary name.
func priority(name string, primaries []string) int {
	for i, p := range primaries {
		if p == name {
			return i
		}
	}
	return len(primaries)
}
