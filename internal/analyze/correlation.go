package analyze

import (
	"sort"

	"github.com/freqcli/freq/internal/history"
)

const (
	// DefaultWindowSeconds is the default correlation time window.
	DefaultWindowSeconds = 300

	// DefaultCorrelationTop is how many correlated commands to report.
	DefaultCorrelationTop = 5

	// correlationNeighbors bounds the positional window: only this many
	// records before and after each target occurrence are examined, which
	// keeps work bounded on dense logs while the time window bounds
	// relevance.
	correlationNeighbors = 10
)

// Correlations finds commands that tend to occur near the target command.
// Records are sorted chronologically; for each occurrence of the target,
// the ±10 neighboring records by sequence position are examined and any
// neighbor within windowSeconds whose command differs from the target is
// tallied. The topN commands by tally are returned, ties broken by
// first-tallied order.
func Correlations(records []history.Record, target string, windowSeconds int64, topN int) []CommandCount {
	if windowSeconds <= 0 {
		windowSeconds = DefaultWindowSeconds
	}
	if topN <= 0 {
		topN = DefaultCorrelationTop
	}

	sorted := make([]history.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	tally := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for i, rec := range sorted {
		if rec.Command != target {
			continue
		}

		lo := i - correlationNeighbors
		if lo < 0 {
			lo = 0
		}
		hi := i + correlationNeighbors
		if hi > len(sorted)-1 {
			hi = len(sorted) - 1
		}

		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			other := sorted[j]
			if other.Command == target {
				continue
			}
			delta := other.Timestamp - rec.Timestamp
			if delta < 0 {
				delta = -delta
			}
			if delta > windowSeconds {
				continue
			}
			if _, seen := tally[other.Command]; !seen {
				firstSeen[other.Command] = order
				order++
			}
			tally[other.Command]++
		}
	}

	ranked := make([]CommandCount, 0, len(tally))
	for cmd, count := range tally {
		ranked = append(ranked, CommandCount{Command: cmd, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Command] < firstSeen[ranked[j].Command]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
