// Package trail models tree-shaped paths over peaks: stretches of
// peaks in series with optional forks that rejoin, plus the walkers
// that traverse them.
package trail

import "github.com/hikelab/trailindex/mountain"

type (
	// Store is the tagged content of a trail: nil (end of the
	// stretch), a Series or a Split. Editing operations return new
	// stores; existing trails are never mutated in place.
	Store interface {
		collect(peaks *[]mountain.Peak)
	}

	// Series is a peak followed by the rest of the trail.
	//
	//	--peak--following--
	Series struct {
		Peak      mountain.Peak
		Following Trail
	}

	// Split is a fork whose branches rejoin into a following trail.
	//
	//	   _____top______
	//	  /              \
	//	-<                >--following--
	//	  \____bottom____/
	Split struct {
		Top       Trail
		Bottom    Trail
		Following Trail
	}

	Trail struct {
		Store Store
	}
)

var (
	_ Store = Series{}
	_ Store = Split{}
)

// RemovePeak drops the peak at the start of this series.
func (s Series) RemovePeak() Store {
	return s.Following.Store
}

// AddPeakBefore puts a peak in series before the current one.
func (s Series) AddPeakBefore(p mountain.Peak) Store {
	return Series{Peak: p, Following: Trail{Store: s}}
}

// AddPeakAfter puts a peak after the current one, before the
// following trail.
func (s Series) AddPeakAfter(p mountain.Peak) Store {
	return Series{
		Peak:      s.Peak,
		Following: Trail{Store: Series{Peak: p, Following: s.Following}},
	}
}

// AddEmptyBranchBefore forks before this series; the series becomes
// the rejoined path.
func (s Series) AddEmptyBranchBefore() Store {
	return Split{Following: Trail{Store: s}}
}

// AddEmptyBranchAfter forks after the current peak, before the
// following trail.
func (s Series) AddEmptyBranchAfter() Store {
	return Series{
		Peak:      s.Peak,
		Following: Trail{Store: Split{Following: s.Following}},
	}
}

// RemoveBranch drops both branches, leaving the rejoined path.
func (s Split) RemoveBranch() Store {
	return s.Following.Store
}

// AddPeakBefore puts a peak at the start of the trail.
func (t Trail) AddPeakBefore(p mountain.Peak) Trail {
	return Trail{Store: Series{Peak: p, Following: t}}
}

// AddEmptyBranchBefore forks at the start of the trail.
func (t Trail) AddEmptyBranchBefore() Trail {
	return Trail{Store: Split{Following: t}}
}

// Peaks enumerates every peak on the trail, branches included, in
// walking order (series, then top before bottom at a split, then the
// rejoined path).
func (t Trail) Peaks() []mountain.Peak {
	peaks := make([]mountain.Peak, 0)

	if t.Store != nil {
		t.Store.collect(&peaks)
	}

	return peaks
}

// DifficultyMaximumPaths enumerates every complete route through the
// trail on which no peak reaches the given difficulty. Each split
// doubles the candidate routes; a route that meets a peak at or above
// the bound is dropped whole. The accumulator is fresh per call and
// copied at every fork, so no two routes share storage.
func (t Trail) DifficultyMaximumPaths(maxDifficulty int) [][]mountain.Peak {
	return t.boundedPaths(maxDifficulty, nil)
}

func (t Trail) boundedPaths(maxDifficulty int, walked []mountain.Peak) [][]mountain.Peak {
	switch s := t.Store.(type) {
	case nil:
		return [][]mountain.Peak{walked}
	case Series:
		if s.Peak.Difficulty >= maxDifficulty {
			return nil
		}

		return s.Following.boundedPaths(maxDifficulty, append(walked, s.Peak))
	case Split:
		routes := append(
			s.Top.boundedPaths(maxDifficulty, clonePath(walked)),
			s.Bottom.boundedPaths(maxDifficulty, clonePath(walked))...,
		)

		joined := make([][]mountain.Peak, 0, len(routes))
		for _, route := range routes {
			joined = append(joined, s.Following.boundedPaths(maxDifficulty, route)...)
		}

		return joined
	}

	return nil
}

// clonePath copies with exact capacity so a branch appending onward is
// forced onto its own backing array.
func clonePath(peaks []mountain.Peak) []mountain.Peak {
	c := make([]mountain.Peak, len(peaks))
	copy(c, peaks)

	return c
}

func (s Series) collect(peaks *[]mountain.Peak) {
	*peaks = append(*peaks, s.Peak)

	if s.Following.Store != nil {
		s.Following.Store.collect(peaks)
	}
}

func (s Split) collect(peaks *[]mountain.Peak) {
	for _, branch := range []Trail{s.Top, s.Bottom, s.Following} {
		if branch.Store != nil {
			branch.Store.collect(peaks)
		}
	}
}
