package geo

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	earthRadiusKM = 6371.0

	// metersPerDegree is the length of one degree of latitude.
	metersPerDegree = 111320

	distanceScale = 6
	ratioScale    = 12
)

// Distance returns the great-circle distance in kilometers.
func Distance(a, b Point) decimal.Decimal {
	return decimal.NewFromFloat(haversine(a, b)).Round(distanceScale)
}

// DistanceMeters returns the great-circle distance in meters.
func DistanceMeters(a, b Point) decimal.Decimal {
	return decimal.NewFromFloat(haversine(a, b) * 1000).Round(distanceScale - 3)
}

func haversine(a, b Point) float64 {
	lat1 := toRadians(a.Lat.InexactFloat64())
	lat2 := toRadians(b.Lat.InexactFloat64())
	dLat := lat2 - lat1
	dLng := toRadians(b.Lng.InexactFloat64() - a.Lng.InexactFloat64())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// latDegrees converts a north-south length in meters to degrees.
func latDegrees(meters decimal.Decimal) decimal.Decimal {
	return meters.DivRound(decimal.NewFromInt(metersPerDegree), ratioScale)
}

// lngDegrees converts an east-west length in meters to degrees at the given
// latitude.
func lngDegrees(meters decimal.Decimal, atLat decimal.Decimal) decimal.Decimal {
	cos := decimal.NewFromFloat(math.Cos(toRadians(atLat.InexactFloat64()))).Round(ratioScale)
	perDegree := decimal.NewFromInt(metersPerDegree).Mul(cos)
	if !perDegree.IsPositive() {
		return decimal.Zero
	}
	return meters.DivRound(perDegree, ratioScale)
}
