package models

import "time"

// Point is one sample of a time series.
type Point struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Series is one renderable layer: an ordered sequence of points plus the
// display label and suggested color the presentation side may use. Label and
// Color are opaque annotations, nothing in the engine depends on them.
type Series struct {
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Peak returns the maximum point of the series, ok=false when empty.
func (s *Series) Peak() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	best := s.Points[0]
	for _, p := range s.Points[1:] {
		if p.Value > best.Value {
			best = p
		}
	}
	return best, true
}
