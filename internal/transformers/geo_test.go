package transformers

import (
	"testing"

	"leasehub-admin/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestDeriveGeoPoint(t *testing.T) {
	addr := models.Address{Lat: f64(39.7392), Lng: f64(-104.9903)}

	point := DeriveGeoPoint(addr)

	if point.Type != "Point" {
		t.Errorf("expected type Point, got %q", point.Type)
	}
	// GeoJSON order: longitude first.
	if point.Coordinates[0] != -104.9903 {
		t.Errorf("expected coordinates[0] to be lng -104.9903, got %v", point.Coordinates[0])
	}
	if point.Coordinates[1] != 39.7392 {
		t.Errorf("expected coordinates[1] to be lat 39.7392, got %v", point.Coordinates[1])
	}
}

func TestGeoPointMatches(t *testing.T) {
	addr := models.Address{Lat: f64(40.0), Lng: f64(-105.0)}

	cases := []struct {
		name   string
		point  models.GeoPoint
		expect bool
	}{
		{"derived point matches", DeriveGeoPoint(addr), true},
		{"swapped coordinates mismatch", models.GeoPoint{Type: "Point", Coordinates: [2]float64{40.0, -105.0}}, false},
		{"stale point mismatch", models.GeoPoint{Type: "Point", Coordinates: [2]float64{-106.0, 40.0}}, false},
		{"wrong type mismatch", models.GeoPoint{Type: "Polygon", Coordinates: [2]float64{-105.0, 40.0}}, false},
	}
	for _, c := range cases {
		if got := GeoPointMatches(addr, c.point); got != c.expect {
			t.Errorf("%s: GeoPointMatches == %v, expected %v", c.name, got, c.expect)
		}
	}
}

func TestFormatAddress(t *testing.T) {
	addr := models.Address{
		Address1: "754 E 7th Ave",
		City:     "Denver",
		State:    "CO",
		Zip:      "80203",
	}
	got := FormatAddress(addr)
	want := "754 E 7th Ave, Denver, CO 80203"
	if got != want {
		t.Errorf("FormatAddress == %q, expected %q", got, want)
	}
}

func TestDisplayPrice(t *testing.T) {
	cases := []struct {
		price    float64
		currency string
		expect   string
	}{
		{1850, "USD", "$1,850"},
		{1850, "CAD", "C1,850"},
		{999, "USD", "$999"},
		{1234567.5, "USD", "$1,234,567.5"},
	}
	for _, c := range cases {
		if got := DisplayPrice(c.price, c.currency); got != c.expect {
			t.Errorf("DisplayPrice(%v, %s) == %q, expected %q", c.price, c.currency, got, c.expect)
		}
	}
}
