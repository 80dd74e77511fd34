package analyze

import (
	"testing"
	"time"

	"github.com/freqcli/freq/internal/history"
)

func TestRanking(t *testing.T) {
	records := []history.Record{
		{Command: "git", Timestamp: 1},
		{Command: "git", Timestamp: 2},
		{Command: "ls", Timestamp: 3},
	}

	got := Ranking(records, 10)

	want := []CommandCount{{"git", 2}, {"ls", 1}}
	if len(got) != len(want) {
		t.Fatalf("Ranking() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ranking()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRankingTiesByFirstEncounter(t *testing.T) {
	records := []history.Record{
		{Command: "vim", Timestamp: 1},
		{Command: "make", Timestamp: 2},
		{Command: "vim", Timestamp: 3},
		{Command: "make", Timestamp: 4},
	}

	got := Ranking(records, 10)

	if got[0].Command != "vim" || got[1].Command != "make" {
		t.Errorf("Ranking() tie order = [%s, %s], want [vim, make]",
			got[0].Command, got[1].Command)
	}
}

func TestRankingLimit(t *testing.T) {
	records := []history.Record{
		{Command: "a", Timestamp: 1},
		{Command: "b", Timestamp: 2},
		{Command: "c", Timestamp: 3},
	}

	if got := Ranking(records, 2); len(got) != 2 {
		t.Errorf("Ranking(n=2) returned %d entries", len(got))
	}
	if got := Ranking(records, 0); len(got) != 3 {
		t.Errorf("Ranking(n=0) returned %d entries, want all", len(got))
	}
	if got := Ranking(nil, 5); len(got) != 0 {
		t.Errorf("Ranking(empty) returned %d entries", len(got))
	}
}

func TestDiversity(t *testing.T) {
	records := []history.Record{
		{Command: "git", Timestamp: 1},
		{Command: "git", Timestamp: 2},
		{Command: "git", Timestamp: 3},
		{Command: "ls", Timestamp: 4},
		{Command: "make", Timestamp: 5},
	}

	got := Diversity(records)

	if got.Total != 5 {
		t.Errorf("Total = %d, want 5", got.Total)
	}
	if got.Unique != 3 {
		t.Errorf("Unique = %d, want 3", got.Unique)
	}
	if got.MeanPerCommand < 1.66 || got.MeanPerCommand > 1.67 {
		t.Errorf("MeanPerCommand = %f, want ~1.667", got.MeanPerCommand)
	}
	if got.SingleUse != 2 {
		t.Errorf("SingleUse = %d, want 2", got.SingleUse)
	}
	if got.SingleUsePct < 66.6 || got.SingleUsePct > 66.7 {
		t.Errorf("SingleUsePct = %f, want ~66.67", got.SingleUsePct)
	}
}

func TestDiversityEmpty(t *testing.T) {
	got := Diversity(nil)
	if got.Total != 0 || got.Unique != 0 || got.MeanPerCommand != 0 {
		t.Errorf("Diversity(nil) = %+v, want zeros", got)
	}
}

func TestDailyActivity(t *testing.T) {
	day := func(d, hour int) int64 {
		return time.Date(2024, 6, d, hour, 0, 0, 0, time.UTC).Unix()
	}

	records := []history.Record{
		{Command: "a", Timestamp: day(1, 9)},
		{Command: "b", Timestamp: day(1, 10)},
		{Command: "c", Timestamp: day(1, 11)},
		{Command: "d", Timestamp: day(2, 9)},
		// day 3 has no activity
		{Command: "e", Timestamp: day(4, 9)},
		{Command: "f", Timestamp: day(4, 23)},
	}

	got := DailyActivity(records, time.UTC)

	if got.ActiveDays != 3 {
		t.Errorf("ActiveDays = %d, want 3", got.ActiveDays)
	}
	if got.Max != 3 {
		t.Errorf("Max = %d, want 3", got.Max)
	}
	if got.Min != 1 {
		t.Errorf("Min = %d, want 1", got.Min)
	}
	if got.Mean != 2 {
		t.Errorf("Mean = %f, want 2", got.Mean)
	}
}

func TestDailyActivityEmpty(t *testing.T) {
	got := DailyActivity(nil, time.UTC)
	if got.ActiveDays != 0 || got.Max != 0 || got.Min != 0 {
		t.Errorf("DailyActivity(nil) = %+v, want zeros", got)
	}
}

func TestTimeline(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Unix()

	records := []history.Record{
		{Command: "git", Timestamp: start + 3*86400}, // latest
		{Command: "git", Timestamp: start},           // earliest
		{Command: "git", Timestamp: start + 86400},
	}

	got, ok := Timeline(records)
	if !ok {
		t.Fatal("Timeline() ok = false, want true")
	}

	if got.First.Unix() != start {
		t.Errorf("First = %d, want %d", got.First.Unix(), start)
	}
	if got.Last.Unix() != start+3*86400 {
		t.Errorf("Last = %d, want %d", got.Last.Unix(), start+3*86400)
	}
	if got.Days != 4 {
		t.Errorf("Days = %d, want 4", got.Days)
	}
	if got.PerDay != 0.75 {
		t.Errorf("PerDay = %f, want 0.75", got.PerDay)
	}
}

func TestTimelineSingleRecord(t *testing.T) {
	got, ok := Timeline([]history.Record{{Command: "git", Timestamp: 1616420000}})
	if !ok {
		t.Fatal("Timeline() ok = false, want true")
	}
	if got.Days != 1 {
		t.Errorf("Days = %d, want floor of 1", got.Days)
	}
	if got.PerDay != 1 {
		t.Errorf("PerDay = %f, want 1", got.PerDay)
	}
}

func TestTimelineEmpty(t *testing.T) {
	if _, ok := Timeline(nil); ok {
		t.Error("Timeline(nil) ok = true, want false")
	}
}
