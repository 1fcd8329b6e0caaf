// Package chart projects category totals onto proportional donut-chart
// geometry. It knows nothing about currency or categories: values are opaque
// magnitudes and colors pass through untouched.
package chart

import (
	"math"

	"github.com/shopspring/decimal"
)

// fullCircleTolerance is the angular tolerance, in radians, under which a
// slice spanning nearly the whole circle is emitted as a disc. SVG arc paths
// degenerate numerically at exactly 2π.
const fullCircleTolerance = 1e-3

// Slice is one input wedge: a non-negative value and an opaque color tag.
type Slice struct {
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// Arc is a wedge of the ring from StartAngle to EndAngle, in radians,
// measured clockwise from the top of the dial.
type Arc struct {
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	LargeArc   bool    `json:"largeArc"`
	Color      string  `json:"color"`
}

// Disc is a complete circle, used when a single slice covers the whole ring.
type Disc struct {
	Color string `json:"color"`
}

// Ring is the projected donut. Exactly one of the three shapes applies:
// Empty when the total is zero, Full when one slice spans the circle,
// otherwise Arcs.
type Ring struct {
	Empty bool  `json:"empty"`
	Full  *Disc `json:"full,omitempty"`
	Arcs  []Arc `json:"arcs"`
}

// Project walks the slices in order, accumulating a running start angle and
// giving each slice an angular span proportional to its share of the total.
// Zero-value slices produce no arc.
func Project(slices []Slice) Ring {
	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	if !total.IsPositive() {
		return Ring{Empty: true, Arcs: []Arc{}}
	}

	totalF := total.InexactFloat64()
	ring := Ring{Arcs: []Arc{}}
	angle := 0.0
	for _, s := range slices {
		if s.Value.IsZero() {
			continue
		}
		span := s.Value.InexactFloat64() / totalF * 2 * math.Pi

		if math.Abs(span-2*math.Pi) < fullCircleTolerance {
			ring.Full = &Disc{Color: s.Color}
			ring.Arcs = []Arc{}
			return ring
		}

		ring.Arcs = append(ring.Arcs, Arc{
			StartAngle: angle,
			EndAngle:   angle + span,
			LargeArc:   span > math.Pi,
			Color:      s.Color,
		})
		angle += span
	}
	return ring
}
