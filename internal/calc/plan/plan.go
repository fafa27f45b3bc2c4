package plan

import (
	"math"

	"github.com/google/uuid"
)

// Plan-view space is normalized to [0,100] on both axes.
const (
	MinCoord = 0.0
	MaxCoord = 100.0

	// MinDrains is the number of downpipes assumed when fewer are placed.
	MinDrains = 2
	// MaxDrains bounds placed or counted downpipes for one house.
	MaxDrains = 50
)

// Schematic house rectangle inside the 400x200 drawing.
const (
	SchematicX      = 100.0
	SchematicY      = 50.0
	SchematicWidth  = 200.0
	SchematicHeight = 100.0
)

type DrainPoint struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Rect is the on-screen bounding box of the clicked schematic.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewPoint(x, y float64) DrainPoint {
	return DrainPoint{
		ID: "drain-" + uuid.NewString(),
		X:  clamp(x),
		Y:  clamp(y),
	}
}

// Add returns a new list with a point appended; the input slice is not modified.
func Add(points []DrainPoint, x, y float64) []DrainPoint {
	out := make([]DrainPoint, 0, len(points)+1)
	out = append(out, points...)
	return append(out, NewPoint(x, y))
}

// Remove drops every point with the given id, keeping insertion order.
func Remove(points []DrainPoint, id string) []DrainPoint {
	out := make([]DrainPoint, 0, len(points))
	for _, p := range points {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// FromClick converts client coordinates of a click into plan-view space.
func FromClick(clientX, clientY float64, r Rect) (float64, float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return MinCoord, MinCoord
	}
	x := (clientX - r.Left) / r.Width * MaxCoord
	y := (clientY - r.Top) / r.Height * MaxCoord
	return clamp(x), clamp(y)
}

// Normalize returns a copy with every point clamped into plan space and
// missing ids assigned.
func Normalize(points []DrainPoint) []DrainPoint {
	if points == nil {
		return nil
	}
	out := make([]DrainPoint, len(points))
	for i, p := range points {
		if p.ID == "" {
			out[i] = NewPoint(p.X, p.Y)
			continue
		}
		out[i] = DrainPoint{ID: p.ID, X: clamp(p.X), Y: clamp(p.Y)}
	}
	return out
}

// Spread places n points evenly along the front (top) edge, at most MaxDrains.
func Spread(n int) []DrainPoint {
	if n > MaxDrains {
		n = MaxDrains
	}
	if n < 0 {
		n = 0
	}
	out := make([]DrainPoint, 0, n)
	for i := 0; i < n; i++ {
		x := MaxCoord * (float64(i) + 0.5) / float64(n)
		out = append(out, NewPoint(x, MinCoord))
	}
	return out
}

func Count(points []DrainPoint) int {
	return len(points)
}

// EffectiveCount is the number of downpipes priced in the estimate.
func EffectiveCount(points []DrainPoint) int {
	if len(points) < MinDrains {
		return MinDrains
	}
	return len(points)
}

// ToSchematic maps a point onto the 400x200 house-plan drawing.
func ToSchematic(p DrainPoint) (cx, cy float64) {
	cx = SchematicX + p.X/MaxCoord*SchematicWidth
	cy = SchematicY + p.Y/MaxCoord*SchematicHeight
	return cx, cy
}

// ToMeters maps a point onto the real house footprint, origin at the front-left corner.
func ToMeters(p DrainPoint, lengthM, widthM float64) (float64, float64) {
	return p.X / MaxCoord * lengthM, p.Y / MaxCoord * widthM
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinCoord
	}
	return math.Max(MinCoord, math.Min(MaxCoord, v))
}
