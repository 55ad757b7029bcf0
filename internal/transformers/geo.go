package transformers

import (
	"fmt"
	"strconv"
	"strings"

	"leasehub-admin/internal/models"
)

// DeriveGeoPoint recomputes the GeoJSON point for a property address.
// GeoJSON puts longitude first, so the coordinate order is [lng, lat] —
// the reverse of how the address stores them. Validation rejects absent
// coordinates before any write; a nil coordinate here falls back to 0.
func DeriveGeoPoint(addr models.Address) models.GeoPoint {
	return models.GeoPoint{
		Type:        "Point",
		Coordinates: [2]float64{coord(addr.Lng), coord(addr.Lat)},
	}
}

// GeoPointMatches reports whether the stored geo point agrees with the
// address coordinates.
func GeoPointMatches(addr models.Address, point models.GeoPoint) bool {
	return point.Type == "Point" &&
		point.Coordinates[0] == coord(addr.Lng) &&
		point.Coordinates[1] == coord(addr.Lat)
}

func coord(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// FormatAddress renders the single-line display address.
func FormatAddress(addr models.Address) string {
	return fmt.Sprintf("%s, %s, %s %s", addr.Address1, addr.City, addr.State, addr.Zip)
}

// DisplayPrice renders the price with its currency symbol, with
// thousands separators.
func DisplayPrice(price float64, currency string) string {
	symbol := "$"
	if currency == "CAD" {
		symbol = "C"
	}
	return symbol + groupThousands(price)
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart := s
	var fracPart string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
