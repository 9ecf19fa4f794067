package tests

import (
	"net/http"
	"testing"
)

func TestMissingParameterReturns400(t *testing.T) {
	ts := newTestServer(t, 1000)
	resp, out := getError(t, ts, "")
	if resp.StatusCode != http.StatusBadRequest { t.Fatalf("status=%d", resp.StatusCode) }
	if out.Error != "Invalid input" { t.Fatalf("error=%q", out.Error) }
	if out.Details != "This field is required." { t.Fatalf("details=%q", out.Details) }
}

func TestZeroReturns400(t *testing.T) {
	ts := newTestServer(t, 1000)
	resp, out := getError(t, ts, "?n=0")
	if resp.StatusCode != http.StatusBadRequest { t.Fatalf("status=%d", resp.StatusCode) }
	if out.Details != "Parameter 'n' must be greater than 0" { t.Fatalf("details=%q", out.Details) }
}

func TestNegativeReturns400(t *testing.T) {
	ts := newTestServer(t, 1000)
	for _, q := range []string{"?n=-1", "?n=-100"} {
		resp, out := getError(t, ts, q)
		if resp.StatusCode != http.StatusBadRequest { t.Fatalf("q=%s status=%d", q, resp.StatusCode) }
		if out.Details != "Parameter 'n' must be greater than 0" { t.Fatalf("q=%s details=%q", q, out.Details) }
	}
}

func TestStringReturns400(t *testing.T) {
	ts := newTestServer(t, 1000)
	resp, out := getError(t, ts, "?n=abc")
	if resp.StatusCode != http.StatusBadRequest { t.Fatalf("status=%d", resp.StatusCode) }
	if out.Details != "A valid integer is required." { t.Fatalf("details=%q", out.Details) }
}

func TestFloatReturns400(t *testing.T) {
	ts := newTestServer(t, 1000)
	resp, out := getError(t, ts, "?n=10.5")
	if resp.StatusCode != http.StatusBadRequest { t.Fatalf("status=%d", resp.StatusCode) }
	if out.Details != "A valid integer is required." { t.Fatalf("details=%q", out.Details) }
}

func TestErrorResponseStructureConsistency(t *testing.T) {
	ts := newTestServer(t, 1000)
	for _, q := range []string{"", "?n=0", "?n=-5", "?n=xyz", "?n=3.14"} {
		resp, out := getError(t, ts, q)
		if resp.StatusCode != http.StatusBadRequest { t.Fatalf("q=%q status=%d", q, resp.StatusCode) }
		if out.Error == "" || out.Details == "" { t.Fatalf("q=%q body=%+v", q, out) }
	}
}
