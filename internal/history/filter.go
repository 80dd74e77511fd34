package history

import "strings"

// FilterExcluded drops every record whose leading token is in the exclude
// list. It operates on the leading token even for full-command records,
// and preserves the order of survivors.
func FilterExcluded(records []Record, exclude []string) []Record {
	if len(exclude) == 0 {
		return records
	}

	set := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		set[strings.TrimSpace(name)] = true
	}

	var result []Record
	for _, rec := range records {
		token := rec.Command
		if fields := strings.Fields(rec.Command); len(fields) > 0 {
			token = fields[0]
		}
		if set[token] {
			continue
		}
		result = append(result, rec)
	}

	return result
}

// FilterByRange drops records outside the date range. Applying the same
// range twice is idempotent, and the semantics match the early in-parser
// filtering exactly.
func FilterByRange(records []Record, r DateRange) []Record {
	if r.IsZero() {
		return records
	}

	var result []Record
	for _, rec := range records {
		if r.Contains(rec.Timestamp) {
			result = append(result, rec)
		}
	}

	return result
}

// FilterCommand keeps records matching the target command exactly or as a
// "target " prefix. This is the post-hoc twin of the early in-parser
// command filter.
func FilterCommand(records []Record, target string) []Record {
	if target == "" {
		return records
	}

	var result []Record
	for _, rec := range records {
		if rec.Command == target || strings.HasPrefix(rec.Command, target+" ") {
			result = append(result, rec)
		}
	}

	return result
}
