package geo

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Point is a WGS84 coordinate. Lat and Lng are kept as decimals so that
// persisted values compare exactly after a round trip.
type Point struct {
	Lat decimal.Decimal `json:"lat"`
	Lng decimal.Decimal `json:"lng"`
}

func NewPoint(lat, lng float64) Point {
	return Point{
		Lat: decimal.NewFromFloat(lat),
		Lng: decimal.NewFromFloat(lng),
	}
}

func (p Point) IsZero() bool {
	return p.Lat.IsZero() && p.Lng.IsZero()
}

func (p Point) Valid() bool {
	return p.Lat.GreaterThanOrEqual(decimal.NewFromInt(-90)) &&
		p.Lat.LessThanOrEqual(decimal.NewFromInt(90)) &&
		p.Lng.GreaterThanOrEqual(decimal.NewFromInt(-180)) &&
		p.Lng.LessThanOrEqual(decimal.NewFromInt(180))
}

// Translate shifts the point by the given degrees.
func (p Point) Translate(dLat, dLng decimal.Decimal) Point {
	return Point{Lat: p.Lat.Add(dLat), Lng: p.Lng.Add(dLng)}
}

// Region is an administrative area triple. Zero ids are "any" for the
// trailing levels, so {province, city, 0} covers a whole city.
type Region struct {
	ProvinceID int64 `json:"province_id"`
	CityID     int64 `json:"city_id"`
	DistrictID int64 `json:"district_id"`
}

// Key joins the non-zero leading ids with commas, e.g. "310000,310100".
func (r Region) Key() string {
	ids := []int64{r.ProvinceID, r.CityID, r.DistrictID}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			break
		}
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

// Address is a destination as captured at checkout. Point is set when the
// client already supplied coordinates; otherwise it is geocoded.
type Address struct {
	Province string
	City     string
	District string
	Detail   string
	Region   Region
	Point    *Point
}

func (a Address) String() string {
	return a.Province + a.City + a.District + a.Detail
}
