package query

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukane-philemon/gradeboard/internal/student"
)

func ids(records []*student.Student) []string {
	out := make([]string, 0, len(records))
	for _, s := range records {
		out = append(out, s.ID)
	}
	return out
}

func grades(records []*student.Student) []float64 {
	out := make([]float64, 0, len(records))
	for _, s := range records {
		out = append(out, s.Grade)
	}
	return out
}

func TestFilterGrade(t *testing.T) {
	records := []*student.Student{
		{ID: "1", Name: "A", Grade: 85, Date: "01/01/2024"},
		{ID: "2", Name: "B", Grade: 90, Date: "02/01/2024"},
		{ID: "3", Name: "C", Grade: 93, Date: "03/01/2024"},
	}

	assert.Equal(t, []float64{93}, grades(Filter(records, "grade>90")))
	assert.Equal(t, []float64{85}, grades(Filter(records, "grade<90")))
	assert.Equal(t, []float64{90, 93}, grades(Filter(records, " Grade > 89.5 ")))
	assert.Equal(t, []float64{93}, grades(Filter(records, "grade>90abc")))
	assert.Empty(t, Filter(records, "grade>abc"))
	assert.Empty(t, Filter(records, "grade<"))
}

func TestFilterDate(t *testing.T) {
	records := []*student.Student{
		{ID: "1", Name: "A", Date: "15/01/2024"},
		{ID: "2", Name: "B", Date: "20/01/2024"},
		{ID: "3", Name: "C", Date: "not a date"},
		{ID: "4", Name: "D", Date: "01/02/2024"},
	}

	assert.Equal(t, []string{"2", "4"}, ids(Filter(records, "date>15/01/2024")))
	assert.Equal(t, []string{"1"}, ids(Filter(records, "date<20/01/2024")))
	assert.Empty(t, Filter(records, "date>yesterday"))
}

func TestFilterID(t *testing.T) {
	records := student.Seed()
	matches := Filter(records, "id:100000001")
	require.NotEmpty(t, matches)
	for _, s := range matches {
		assert.Contains(t, s.ID, "100000001")
	}
	assert.Len(t, Filter(records, "ID: 100000003"), 2)
	assert.Len(t, Filter(records, "id:"), len(records))
}

func TestFilterNames(t *testing.T) {
	records := student.Seed()
	matches := Filter(records, "sarah, emily,")
	require.Len(t, matches, 3)
	for _, s := range matches {
		name := strings.ToLower(s.Name)
		assert.True(t, strings.Contains(name, "sarah") || strings.Contains(name, "emily"), s.Name)
	}
	assert.Empty(t, Filter(records, ","))
}

func TestFilterFallback(t *testing.T) {
	records := []*student.Student{
		{ID: "100000001", Name: "Morgan Smith", Subject: "Algebra", Email: "morgan@email.com", City: "New York", Country: "USA"},
		{ID: "100000002", Name: "Alex Johnson", Subject: "Physics", City: "Los Angeles", Country: "USA"},
		{ID: "100000003", Name: "Sarah Davis", Subject: "Chemistry", City: "Chicago", Country: "Canada"},
	}

	assert.Equal(t, []string{"100000001"}, ids(Filter(records, "ALGEBRA")))
	assert.Equal(t, []string{"100000002"}, ids(Filter(records, "angeles")))
	assert.Equal(t, []string{"100000003"}, ids(Filter(records, "canada")))
	assert.Equal(t, []string{"100000001"}, ids(Filter(records, "morgan@")))
	assert.Len(t, Filter(records, "usa"), 2)
	assert.Len(t, Filter(records, "   "), 3)
	assert.Len(t, Filter(records, ""), 3)
	// Unknown comparison fields fall back to a plain search.
	assert.Empty(t, Filter(records, "name>a"))
}

func TestRunSortsAndCounts(t *testing.T) {
	records := student.Seed()
	res := Run(records, "", Ascending, 1, 100)
	require.Len(t, res.Students, len(records))
	assert.Equal(t, len(records), res.Total)

	for i := 1; i < len(res.Students); i++ {
		a, b := strings.ToLower(res.Students[i-1].Name), strings.ToLower(res.Students[i].Name)
		assert.LessOrEqual(t, a, b)
	}
	assert.Equal(t, "Alex Johnson", res.Students[0].Name)

	// The input order is left alone.
	assert.Equal(t, "Andrew Young", records[0].Name)

	desc := Run(records, "", Descending, 1, 5)
	assert.Equal(t, "Tyler Nelson", desc.Students[0].Name)
}

func TestRunStableOnTies(t *testing.T) {
	records := []*student.Student{
		{ID: "1", Name: "sam", Grade: 1},
		{ID: "2", Name: "Adam"},
		{ID: "3", Name: "SAM", Grade: 2},
		{ID: "4", Name: "Sam", Grade: 3},
	}
	res := Run(records, "", Ascending, 1, 10)
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(res.Students))
}

func TestRunTotalMatchesFilter(t *testing.T) {
	records := student.Seed()
	for _, f := range []string{"", "grade>90", "date<20/01/2024", "id:10000001", "an, ar", "usa", "zzz", "grade>x"} {
		res := Run(records, f, Ascending, 1, 5)
		filtered := Filter(records, f)
		assert.Equal(t, len(filtered), res.Total, f)

		match := Parse(f)
		for _, s := range res.Students {
			assert.True(t, match(s), "%q: %s", f, s.Name)
		}
	}
}

func TestRunPagination(t *testing.T) {
	records := student.Seed()

	first := Run(records, "", Ascending, 1, 10)
	assert.Len(t, first.Students, 10)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, "Showing 1 to 10 of 29 results", first.Info)

	last := Run(records, "", Ascending, 3, 10)
	assert.Len(t, last.Students, 9)
	assert.Equal(t, "Showing 21 to 29 of 29 results", last.Info)

	beyond := Run(records, "", Ascending, 4, 10)
	assert.NotNil(t, beyond.Students)
	assert.Empty(t, beyond.Students)
	assert.Equal(t, 29, beyond.Total)

	defaults := Run(records, "", Ascending, 0, 0)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, student.DefaultPageSize, defaults.PageSize)
	assert.Len(t, defaults.Students, student.DefaultPageSize)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Equal(t, []int{}, Paginate(items, 4, 2))
	assert.Equal(t, []int{}, Paginate([]int{}, 1, 2))
	assert.Equal(t, items, Paginate(items, 1, math.MaxInt))
}

func TestRunHugePage(t *testing.T) {
	records := student.Seed()

	var res *Result
	require.NotPanics(t, func() {
		res = Run(records, "", Ascending, 100000000000000000, 100)
	})
	assert.NotNil(t, res.Students)
	assert.Empty(t, res.Students)
	assert.Equal(t, 29, res.Total)
	assert.Equal(t, "Showing 0 to 0 of 29 results", res.Info)

	assert.NotPanics(t, func() { Run(records, "", Ascending, math.MaxInt, math.MaxInt) })
	assert.Equal(t, "Showing 1 to 29 of 29 results", Info(29, 1, math.MaxInt))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, Descending, ParseSortOrder(" DESC"))
	assert.Equal(t, Ascending, ParseSortOrder(""))
	assert.Equal(t, Ascending, ParseSortOrder("whatever"))
}
