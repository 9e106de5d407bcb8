package errors

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewReportOmitsLocationWhenUnset(t *testing.T) {
	e := NewInvalidCode(ENV001, "unknown %q", "x")
	r := NewReport(e)
	if r.Schema != "bcl.error/v1" || r.Code != ENV001 {
		t.Fatalf("NewReport() = %+v, want schema bcl.error/v1 and code %s", r, ENV001)
	}
	if r.File != "" || r.Line != 0 || r.Column != 0 {
		t.Fatalf("NewReport() = %+v, want no location set", r)
	}
}

func TestNewReportIncludesLocationWhenSet(t *testing.T) {
	e := NewInvalidCode(ENV001, "x").WithLocation(Location{File: "a.bcl", Line: 3, Column: 4})
	r := NewReport(e)
	if r.File != "a.bcl" || r.Line != 3 || r.Column != 4 {
		t.Fatalf("NewReport() = %+v, want location a.bcl:3:4", r)
	}
}

func TestToJSONCompactAndPretty(t *testing.T) {
	e := NewInvalidCode(ENV001, "x")
	r := NewReport(e)

	compact, err := r.ToJSON(true)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(compact, "\n") {
		t.Fatalf("ToJSON(true) = %q, want single line", compact)
	}
	var roundTrip Report
	if err := json.Unmarshal([]byte(compact), &roundTrip); err != nil || roundTrip.Code != ENV001 {
		t.Fatalf("ToJSON(true) did not round-trip: %v, %+v", err, roundTrip)
	}

	pretty, err := r.ToJSON(false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty, "\n") {
		t.Fatalf("ToJSON(false) = %q, want multi-line", pretty)
	}
}
