package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Geometry is an ordered list of atoms and their Cartesian
// coordinates in angstroms. The length and ordering are fixed over a
// relaxation; atoms are only ever displaced.
type Geometry struct {
	Names  []string
	Coords []float64
}

func (g Geometry) Len() int {
	return len(g.Names)
}

// At returns the coordinates of atom i
func (g Geometry) At(i int) []float64 {
	return g.Coords[3*i : 3*i+3]
}

func (g Geometry) String() string {
	var buf strings.Builder
	for i := range g.Names {
		fmt.Fprintf(&buf, "%-4s%20.12f%20.12f%20.12f\n",
			g.Names[i],
			g.Coords[3*i],
			g.Coords[3*i+1],
			g.Coords[3*i+2],
		)
	}
	return buf.String()
}

// LoadXYZ reads an xyz file, skipping the atom count and comment
// lines
func LoadXYZ(filename string) (Geometry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Geometry{}, err
	}
	defer f.Close()
	var g Geometry
	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan(); i++ {
		if i < 2 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			continue
		}
		coords, err := toFloat(fields[1:])
		if err != nil {
			return Geometry{}, &ParseError{File: filename, Field: "coordinates"}
		}
		g.Names = append(g.Names, fields[0])
		g.Coords = append(g.Coords, coords...)
	}
	if g.Len() == 0 {
		return Geometry{}, &ParseError{File: filename, Field: "atoms"}
	}
	return g, nil
}

// WriteXYZ writes g to w in xyz format with comment as the second
// line
func WriteXYZ(w io.Writer, g Geometry, comment string) {
	fmt.Fprintf(w, "%d\n%s\n%s", g.Len(), comment, g.String())
}

// Bond returns the distance between points a and b
func Bond(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// cosAngle clamps the normalized dot product of v1 and v2 to the
// domain of acos to absorb floating point error
func cosAngle(v1, v2 []float64) float64 {
	arg := floats.Dot(v1, v2) / (floats.Norm(v1, 2) * floats.Norm(v2, 2))
	switch {
	case arg > 1:
		arg = 1
	case arg < -1:
		arg = -1
	}
	return arg
}

// Angle returns the angle p-origin-q in degrees. The result is
// undefined if either ray has zero length.
func Angle(origin, p, q []float64) float64 {
	return deg(math.Acos(cosAngle(Sub(p, origin), Sub(q, origin))))
}

// OutOfPlane returns the deviation in degrees of the ray origin-p3
// from the plane spanned by origin-p1 and origin-p2, with 0 meaning
// coplanar. The deviation is unsigned in the sense that it does not
// tell which side of the plane p3 lies on.
func OutOfPlane(origin, p1, p2, p3 []float64) float64 {
	n := cross(Sub(p1, origin), Sub(p2, origin))
	return deg(math.Acos(cosAngle(n, Sub(p3, origin)))) - 90
}

func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
