package surface

import "math"

// Projection is an orthographic view of the data box. Elev is the angle
// of the eye above the x-y plane and Azim its rotation about the z axis,
// both in degrees.
type Projection struct {
	Elev, Azim float64
}

// DefaultProjection looks down 30 degrees with the eye on the -y side of
// the box.
var DefaultProjection = Projection{Elev: 30, Azim: -60}

// Project maps a point of the normalized box to screen coordinates u
// (right) and v (up). depth grows toward the eye.
func (p Projection) Project(x, y, z float64) (u, v, depth float64) {
	se, ce := math.Sincos(p.Elev * math.Pi / 180)
	sa, ca := math.Sincos(p.Azim * math.Pi / 180)
	u = -x*sa + y*ca
	v = -x*se*ca - y*se*sa + z*ce
	depth = x*ce*ca + y*ce*sa + z*se
	return u, v, depth
}
