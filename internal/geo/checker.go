package geo

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IsWithinRadius reports whether dest lies within radiusKM of center,
// boundary included.
func IsWithinRadius(center Point, radiusKM decimal.Decimal, dest Point) bool {
	return Distance(center, dest).LessThanOrEqual(radiusKM)
}

// IsWithinRegion reports whether any configured region key is a prefix of
// the destination's region key.
func IsWithinRegion(regions []Region, dest Region) bool {
	destKey := dest.Key()
	if destKey == "" {
		return false
	}
	for _, r := range regions {
		key := r.Key()
		if key != "" && strings.HasPrefix(destKey, key) {
			return true
		}
	}
	return false
}

// IsWithinFence reports whether any of the fences contains dest.
func IsWithinFence(fences []Fence, dest Point) bool {
	for _, f := range fences {
		if f.Contains(dest) {
			return true
		}
	}
	return false
}
