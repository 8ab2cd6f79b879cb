package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukane-philemon/gradeboard/internal/student"
)

// SortOrder is the direction records are sorted by name.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder returns the SortOrder for s, defaulting to Ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Descending)) {
		return Descending
	}
	return Ascending
}

// Result is one page of a roster query.
type Result struct {
	Students   []*student.Student `json:"students"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
	Info       string             `json:"info"`
}

// Run filters records, sorts the matches by name and returns the requested
// page. Total is the number of matches before pagination. A page below 1 is
// treated as the first page and a page size below 1 as
// student.DefaultPageSize. records is not modified.
func Run(records []*student.Student, filter string, order SortOrder, page, pageSize int) *Result {
	page, pageSize = Normalize(page, pageSize)

	matches := Filter(records, filter)
	Sort(matches, order)

	total := len(matches)
	return &Result{
		Students:   Paginate(matches, page, pageSize),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
		Info:       Info(total, page, pageSize),
	}
}

// Filter returns the records matching filter, in their original order.
func Filter(records []*student.Student, filter string) []*student.Student {
	match := Parse(filter)
	matches := make([]*student.Student, 0, len(records))
	for _, s := range records {
		if match(s) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Sort stable sorts records by lowercased name.
func Sort(records []*student.Student, order SortOrder) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := strings.ToLower(records[i].Name), strings.ToLower(records[j].Name)
		if order == Descending {
			return a > b
		}
		return a < b
	})
}

// Normalize applies the defaults Run uses for page and pageSize.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = student.DefaultPageSize
	}
	return page, pageSize
}

// Paginate returns the 1-based page of items. A page past the end is empty.
func Paginate[T any](items []T, page, pageSize int) []T {
	page, pageSize = Normalize(page, pageSize)
	if page-1 >= TotalPages(len(items), pageSize) {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}
	return items[start:end]
}

// TotalPages returns the number of pages needed for total items.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	return (total-1)/pageSize + 1
}

// Info describes the position of a page, e.g. "Showing 11 to 20 of 29 results".
// A page past the end is reported as "Showing 0 to 0 of 29 results".
func Info(total, page, pageSize int) string {
	page, pageSize = Normalize(page, pageSize)
	if page-1 >= TotalPages(total, pageSize) {
		return fmt.Sprintf("Showing 0 to 0 of %d results", total)
	}
	start := (page-1)*pageSize + 1
	end := total
	if pageSize < total-start+1 {
		end = start + pageSize - 1
	}
	return fmt.Sprintf("Showing %d to %d of %d results", start, end, total)
}
