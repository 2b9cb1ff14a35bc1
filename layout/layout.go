// Package layout assigns plotting coordinates to villages for external
// visualizers. Every layout is a pure function of its arguments; randomness
// comes only from an explicit seed.
package layout

import (
	"math"
	"math/rand"
)

const (
	// MinCoord and MaxCoord bound Random coordinates (inclusive).
	MinCoord = 5
	MaxCoord = 95

	// Center is the midpoint of the plotting canvas.
	Center = 50.0
)

// Point is a 2D plotting position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Random places n villages at integer coordinates in [MinCoord, MaxCoord],
// drawn from a generator seeded with seed. Equal seeds give equal layouts.
func Random(n int, seed int64) []Point {
	if n <= 0 {
		return []Point{}
	}
	r := rand.New(rand.NewSource(seed))
	span := MaxCoord - MinCoord + 1
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			X: float64(MinCoord + r.Intn(span)),
			Y: float64(MinCoord + r.Intn(span)),
		}
	}

	return pts
}

// Circle places n villages evenly on a circle of the given radius around
// (Center, Center), starting at angle 0 and going counter-clockwise.
func Circle(n int, radius float64) []Point {
	if n <= 0 {
		return []Point{}
	}
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Point{
			X: Center + radius*math.Cos(a),
			Y: Center + radius*math.Sin(a),
		}
	}

	return pts
}
