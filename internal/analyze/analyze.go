// Package analyze computes frequency statistics over history records:
// rankings, diversity metrics, daily activity, usage timelines, and
// time-windowed command correlations.
package analyze

import (
	"sort"
	"time"

	"github.com/freqcli/freq/internal/history"
)

// CommandCount is one (command, occurrence count) pair.
type CommandCount struct {
	Command string `json:"command" yaml:"command"`
	Count   int    `json:"count" yaml:"count"`
}

// Ranking returns the top n commands by occurrence count, descending.
// Ties are broken by first-encountered order, so the ranking is stable
// across runs on the same input.
func Ranking(records []history.Record, n int) []CommandCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, rec := range records {
		if _, seen := counts[rec.Command]; !seen {
			firstSeen[rec.Command] = i
		}
		counts[rec.Command]++
	}

	ranked := make([]CommandCount, 0, len(counts))
	for cmd, count := range counts {
		ranked = append(ranked, CommandCount{Command: cmd, Count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Command] < firstSeen[ranked[j].Command]
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DiversityStats describes how varied command usage is.
type DiversityStats struct {
	Total          int     `json:"total" yaml:"total"`                       // total records
	Unique         int     `json:"unique" yaml:"unique"`                     // distinct commands
	MeanPerCommand float64 `json:"mean_per_command" yaml:"mean_per_command"` // Total / Unique
	SingleUse      int     `json:"single_use" yaml:"single_use"`             // commands used exactly once
	SingleUsePct   float64 `json:"single_use_pct" yaml:"single_use_pct"`     // SingleUse as a percentage of Unique
}

// Diversity computes diversity metrics over the record sequence.
func Diversity(records []history.Record) DiversityStats {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Command]++
	}

	stats := DiversityStats{
		Total:  len(records),
		Unique: len(counts),
	}
	for _, count := range counts {
		if count == 1 {
			stats.SingleUse++
		}
	}
	if stats.Unique > 0 {
		stats.MeanPerCommand = float64(stats.Total) / float64(stats.Unique)
		stats.SingleUsePct = float64(stats.SingleUse) / float64(stats.Unique) * 100
	}

	return stats
}

// DailyStats describes per-calendar-day activity.
type DailyStats struct {
	ActiveDays int     `json:"active_days" yaml:"active_days"` // distinct days with at least one record
	Max        int     `json:"max" yaml:"max"`                 // records on the most active day
	Min        int     `json:"min" yaml:"min"`                 // records on the least active day
	Mean       float64 `json:"mean" yaml:"mean"`               // mean records per active day
}

// DailyActivity buckets records by calendar date in the given location
// (nil means the local time zone) and summarizes per-day counts.
func DailyActivity(records []history.Record, loc *time.Location) DailyStats {
	if loc == nil {
		loc = time.Local
	}

	days := make(map[string]int)
	for _, rec := range records {
		date := time.Unix(rec.Timestamp, 0).In(loc).Format("2006-01-02")
		days[date]++
	}

	stats := DailyStats{ActiveDays: len(days)}
	if len(days) == 0 {
		return stats
	}

	total := 0
	first := true
	for _, count := range days {
		total += count
		if first {
			stats.Max, stats.Min = count, count
			first = false
			continue
		}
		if count > stats.Max {
			stats.Max = count
		}
		if count < stats.Min {
			stats.Min = count
		}
	}
	stats.Mean = float64(total) / float64(len(days))

	return stats
}

// TimelineStats describes the usage span of a record sequence.
type TimelineStats struct {
	First  time.Time `json:"first" yaml:"first"`     // earliest record
	Last   time.Time `json:"last" yaml:"last"`       // latest record
	Days   int       `json:"days" yaml:"days"`       // elapsed calendar span, floored at 1
	PerDay float64   `json:"per_day" yaml:"per_day"` // mean occurrences per elapsed day
}

// Timeline computes the usage span and mean daily rate. The second return
// value is false when there are no records.
func Timeline(records []history.Record) (TimelineStats, bool) {
	if len(records) == 0 {
		return TimelineStats{}, false
	}

	earliest, latest := records[0].Timestamp, records[0].Timestamp
	for _, rec := range records[1:] {
		if rec.Timestamp < earliest {
			earliest = rec.Timestamp
		}
		if rec.Timestamp > latest {
			latest = rec.Timestamp
		}
	}

	days := int((latest-earliest)/86400) + 1
	if days < 1 {
		days = 1
	}

	return TimelineStats{
		First:  time.Unix(earliest, 0),
		Last:   time.Unix(latest, 0),
		Days:   days,
		PerDay: float64(len(records)) / float64(days),
	}, true
}
