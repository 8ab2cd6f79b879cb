package pagestate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukane-philemon/gradeboard/internal/db"
)

func TestDefaultChartPositions(t *testing.T) {
	layout := DefaultChartPositions()
	assert.True(t, layout.Visible(ChartStudentTrend))
	assert.False(t, layout.Visible(ChartStudentAverages))
	assert.True(t, layout.Visible(ChartSubjectAverages))

	chart, found := layout.At(PositionBottom)
	require.True(t, found)
	assert.Equal(t, ChartStudentAverages, chart)
}

func TestChartMoveSwaps(t *testing.T) {
	layout, err := DefaultChartPositions().Move(ChartStudentAverages, PositionLeft)
	require.NoError(t, err)
	assert.Equal(t, ChartPositions{
		ChartStudentTrend:    PositionBottom,
		ChartStudentAverages: PositionLeft,
		ChartSubjectAverages: PositionRight,
	}, layout)
	assert.False(t, layout.Visible(ChartStudentTrend))

	// Moving a chart onto its own position changes nothing.
	same, err := layout.Move(ChartSubjectAverages, PositionRight)
	require.NoError(t, err)
	assert.Equal(t, layout, same)

	_, err = layout.Move("chart9", PositionLeft)
	assert.True(t, errors.Is(err, db.ErrorInvalidRequest))
	_, err = layout.Move(ChartStudentTrend, "top")
	assert.True(t, errors.Is(err, db.ErrorInvalidRequest))
}

func TestRestoreChartPositions(t *testing.T) {
	saved := ChartPositions{
		ChartStudentTrend:    PositionRight,
		ChartStudentAverages: PositionLeft,
		ChartSubjectAverages: PositionBottom,
	}
	assert.Equal(t, saved, RestoreChartPositions(saved))

	// Unknown charts and positions are ignored.
	assert.Equal(t, DefaultChartPositions(), RestoreChartPositions(ChartPositions{
		ChartStudentTrend: "top",
		"chart9":          PositionRight,
	}))
	assert.Equal(t, DefaultChartPositions(), RestoreChartPositions(nil))

	// Duplicate positions still yield one chart per position.
	layout := RestoreChartPositions(ChartPositions{
		ChartStudentTrend:    PositionRight,
		ChartSubjectAverages: PositionRight,
	})
	seen := make(map[Position]bool)
	for _, chart := range Charts {
		seen[layout[chart]] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, PositionRight, layout[ChartSubjectAverages])
}

func TestStoreMoveChart(t *testing.T) {
	s := New(context.Background(), NewMemoryBackend(nil), nil)
	require.NoError(t, s.Update(PageAnalysis, map[string]any{"selectedSubjects": []string{"Physics"}}))

	p, err := s.MoveChart(ChartStudentAverages, PositionRight)
	require.NoError(t, err)
	assert.Equal(t, PositionBottom, p.ChartPositions[ChartSubjectAverages])
	assert.Equal(t, []string{"Physics"}, p.SelectedSubjects)
	assert.Equal(t, p, s.AnalysisPage())

	_, err = s.MoveChart(ChartStudentAverages, "")
	assert.Error(t, err)
}
