package report

import (
	"strings"

	"github.com/ukane-philemon/gradeboard/internal/query"
)

// MonitorFilter selects student summaries. All three conditions must hold.
type MonitorFilter struct {
	// IDs restricts the summaries to these IDs. Empty means all.
	IDs []string `json:"selectedIds"`
	// Name is a comma separated list; a summary is kept if its name contains
	// any of the entries. Blank means all, and a name with no entries matches
	// nothing.
	Name       string `json:"nameFilter"`
	ShowPassed bool   `json:"showPassed"`
	ShowFailed bool   `json:"showFailed"`
}

// Apply returns the summaries that pass f, keeping their order.
func (f *MonitorFilter) Apply(summaries []*StudentSummary) []*StudentSummary {
	ids := make(map[string]bool, len(f.IDs))
	for _, id := range f.IDs {
		ids[id] = true
	}

	byName := strings.TrimSpace(f.Name) != ""
	names := query.Tokens(f.Name)

	filtered := make([]*StudentSummary, 0, len(summaries))
	for _, s := range summaries {
		if len(ids) > 0 && !ids[s.ID] {
			continue
		}
		if byName && !query.ContainsAny(strings.ToLower(s.Name), names) {
			continue
		}
		if (s.Status == StatusPassed && f.ShowPassed) || (s.Status == StatusFailed && f.ShowFailed) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// Counts is the pass/fail tally of a set of summaries.
type Counts struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// Tally counts summaries by status.
func Tally(summaries []*StudentSummary) Counts {
	c := Counts{Total: len(summaries)}
	for _, s := range summaries {
		if s.Status == StatusPassed {
			c.Passed++
		} else {
			c.Failed++
		}
	}
	return c
}

// Monitor is one page of the pass/fail roll-up.
type Monitor struct {
	Students   []*StudentSummary `json:"students"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	// Counts covers every student, regardless of the filter.
	Counts Counts `json:"counts"`
	// IDs lists every distinct student ID, for the ID selector.
	IDs []string `json:"availableIds"`
}

// BuildMonitor summarizes summaries, applies f and returns the requested page.
func BuildMonitor(summaries []*StudentSummary, f *MonitorFilter, page, pageSize int) *Monitor {
	page, pageSize = query.Normalize(page, pageSize)
	filtered := f.Apply(summaries)

	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}

	return &Monitor{
		Students:   query.Paginate(filtered, page, pageSize),
		Total:      len(filtered),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: query.TotalPages(len(filtered), pageSize),
		Counts:     Tally(summaries),
		IDs:        ids,
	}
}
