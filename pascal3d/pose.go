package pascal3d

import (
	"fmt"
	"math"
)

// Pose is an object orientation in radians.
type Pose struct {
	Pan  float64 // azimuth
	Tilt float64 // elevation
	Roll float64 // in-plane rotation
}

// Biternion encodes theta as (cos θ, sin θ).
func Biternion(theta float64) [2]float64 {
	return [2]float64{math.Cos(theta), math.Sin(theta)}
}

// Angle decodes a biternion. The pair need not be unit length.
// The result lies in (-π, π].
func Angle(cos, sin float64) float64 {
	return math.Atan2(sin, cos)
}

// EncodePose returns the 6-element label row for p.
func EncodePose(p Pose) []float64 {
	row := make([]float64, 0, LabelColumns)
	for _, theta := range []float64{p.Pan, p.Tilt, p.Roll} {
		b := Biternion(theta)
		row = append(row, b[0], b[1])
	}
	return row
}

// DecodeLabel converts a label row back to angles.
func DecodeLabel(row []float64) (Pose, error) {
	if len(row) != LabelColumns {
		return Pose{}, fmt.Errorf("label has %d values, want %d: %w", len(row), LabelColumns, ErrShapeMismatch)
	}
	return Pose{
		Pan:  Angle(row[0], row[1]),
		Tilt: Angle(row[2], row[3]),
		Roll: Angle(row[4], row[5]),
	}, nil
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
