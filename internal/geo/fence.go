package geo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type FenceType string

const (
	FencePolygon   FenceType = "polygon"
	FenceCircle    FenceType = "circle"
	FenceRectangle FenceType = "rectangle"
	FenceEllipse   FenceType = "ellipse"
)

func (t FenceType) String() string {
	return string(t)
}

// Fence is a delivery-eligibility shape. Every variant carries its own
// geometry; lengths are in meters.
type Fence interface {
	Type() FenceType
	Contains(p Point) bool
	Validate() error
}

type Polygon struct {
	Vertices []Point `json:"vertices"`
}

func (Polygon) Type() FenceType { return FencePolygon }

// Contains casts a ray from p towards increasing longitude and counts the
// polygon edges it crosses.
func (pg Polygon) Contains(p Point) bool {
	n := len(pg.Vertices)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := pg.Vertices[i], pg.Vertices[j]
		if vi.Lat.GreaterThan(p.Lat) == vj.Lat.GreaterThan(p.Lat) {
			continue
		}

		crossLng := vj.Lng.Sub(vi.Lng).
			Mul(p.Lat.Sub(vi.Lat)).
			DivRound(vj.Lat.Sub(vi.Lat), ratioScale).
			Add(vi.Lng)
		if p.Lng.LessThan(crossLng) {
			inside = !inside
		}
	}
	return inside
}

func (pg Polygon) Validate() error {
	if len(pg.Vertices) < 3 {
		return fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidFence, len(pg.Vertices))
	}
	for _, v := range pg.Vertices {
		if !v.Valid() {
			return fmt.Errorf("%w: polygon vertex out of range", ErrInvalidFence)
		}
	}
	return nil
}

type Circle struct {
	Center Point           `json:"center"`
	Radius decimal.Decimal `json:"radius"`
}

func (Circle) Type() FenceType { return FenceCircle }

// Contains includes the boundary.
func (c Circle) Contains(p Point) bool {
	return DistanceMeters(p, c.Center).LessThanOrEqual(c.Radius)
}

func (c Circle) Validate() error {
	if !c.Center.Valid() {
		return fmt.Errorf("%w: circle center out of range", ErrInvalidFence)
	}
	if c.Radius.IsNegative() {
		return fmt.Errorf("%w: circle radius must not be negative", ErrInvalidFence)
	}
	return nil
}

// Rectangle is axis aligned. Width is the east-west extent and Height the
// north-south extent.
type Rectangle struct {
	Center Point           `json:"center"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

func (Rectangle) Type() FenceType { return FenceRectangle }

func (r Rectangle) Contains(p Point) bool {
	two := decimal.NewFromInt(2)
	halfLat := latDegrees(r.Height.Div(two))
	halfLng := lngDegrees(r.Width.Div(two), r.Center.Lat)

	dLat := p.Lat.Sub(r.Center.Lat).Abs()
	dLng := p.Lng.Sub(r.Center.Lng).Abs()
	return dLat.LessThanOrEqual(halfLat) && dLng.LessThanOrEqual(halfLng)
}

func (r Rectangle) Validate() error {
	if !r.Center.Valid() {
		return fmt.Errorf("%w: rectangle center out of range", ErrInvalidFence)
	}
	if !r.Width.IsPositive() || !r.Height.IsPositive() {
		return fmt.Errorf("%w: rectangle width and height must be positive", ErrInvalidFence)
	}
	return nil
}

// Ellipse is axis aligned: MajorAxis is the east-west semi-axis and
// MinorAxis the north-south semi-axis.
type Ellipse struct {
	Center    Point           `json:"center"`
	MajorAxis decimal.Decimal `json:"major_axis"`
	MinorAxis decimal.Decimal `json:"minor_axis"`
}

func (Ellipse) Type() FenceType { return FenceEllipse }

func (e Ellipse) Contains(p Point) bool {
	majorDeg := lngDegrees(e.MajorAxis, e.Center.Lat)
	minorDeg := latDegrees(e.MinorAxis)
	if majorDeg.IsZero() || minorDeg.IsZero() {
		return false
	}

	y := p.Lat.Sub(e.Center.Lat).DivRound(minorDeg, ratioScale)
	x := p.Lng.Sub(e.Center.Lng).DivRound(majorDeg, ratioScale)
	return y.Mul(y).Add(x.Mul(x)).LessThanOrEqual(decimal.NewFromInt(1))
}

func (e Ellipse) Validate() error {
	if !e.Center.Valid() {
		return fmt.Errorf("%w: ellipse center out of range", ErrInvalidFence)
	}
	if !e.MajorAxis.IsPositive() || !e.MinorAxis.IsPositive() {
		return fmt.Errorf("%w: ellipse axes must be positive", ErrInvalidFence)
	}
	return nil
}
