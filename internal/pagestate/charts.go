package pagestate

import (
	"fmt"

	"github.com/ukane-philemon/gradeboard/internal/db"
)

// Position is a slot of the analysis page a chart can occupy.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
	// PositionBottom holds the hidden chart.
	PositionBottom Position = "bottom"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	switch p {
	case PositionLeft, PositionRight, PositionBottom:
		return true
	}
	return false
}

// Analysis page charts.
const (
	// ChartStudentTrend plots each selected student's grades over time.
	ChartStudentTrend = "chart1"
	// ChartStudentAverages plots the average of each selected student.
	ChartStudentAverages = "chart2"
	// ChartSubjectAverages plots the average of each subject.
	ChartSubjectAverages = "chart3"
)

// Charts lists every chart in layout order.
var Charts = []string{ChartStudentTrend, ChartStudentAverages, ChartSubjectAverages}

// ChartPositions maps a chart to its position. Every chart of a normalized
// layout holds a distinct position.
type ChartPositions map[string]Position

// DefaultChartPositions returns the initial layout.
func DefaultChartPositions() ChartPositions {
	return ChartPositions{
		ChartStudentTrend:    PositionLeft,
		ChartStudentAverages: PositionBottom,
		ChartSubjectAverages: PositionRight,
	}
}

// RestoreChartPositions replays saved onto the default layout, one chart at a
// time in layout order. Each chart with a valid saved position swaps places
// with the chart holding that position. Unknown charts and positions are
// ignored.
func RestoreChartPositions(saved ChartPositions) ChartPositions {
	layout := DefaultChartPositions()
	for _, chart := range Charts {
		pos, found := saved[chart]
		if !found || !pos.Valid() {
			continue
		}
		layout.swap(chart, pos)
	}
	return layout
}

// Move returns a copy of the normalized layout with chart moved to pos. The
// chart previously at pos takes chart's old position.
func (cp ChartPositions) Move(chart string, pos Position) (ChartPositions, error) {
	if !isChart(chart) {
		return nil, fmt.Errorf("%w: unknown chart %q", db.ErrorInvalidRequest, chart)
	}
	if !pos.Valid() {
		return nil, fmt.Errorf("%w: unknown chart position %q", db.ErrorInvalidRequest, pos)
	}

	layout := RestoreChartPositions(cp)
	layout.swap(chart, pos)
	return layout, nil
}

// Visible reports whether chart is shown, which is any position but bottom.
func (cp ChartPositions) Visible(chart string) bool {
	pos, found := cp[chart]
	return found && pos != PositionBottom
}

// At returns the chart at pos.
func (cp ChartPositions) At(pos Position) (string, bool) {
	for _, chart := range Charts {
		if cp[chart] == pos {
			return chart, true
		}
	}
	return "", false
}

func (cp ChartPositions) swap(chart string, pos Position) {
	occupant, found := cp.At(pos)
	if found && occupant != chart {
		cp[occupant] = cp[chart]
	}
	cp[chart] = pos
}

func isChart(chart string) bool {
	for _, c := range Charts {
		if c == chart {
			return true
		}
	}
	return false
}
