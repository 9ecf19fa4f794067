package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/example/nigelapi/internal/prime"
)

func TestNigelNumberResponse_JSON(t *testing.T) {
	resp := NewNigelNumberResponse(10, prime.Result{Primes: []int{2, 3, 5, 7}, Sum: 17})
	b, err := json.Marshal(resp)
	if err != nil { t.Fatalf("marshal: %v", err) }
	var back NigelNumberResponse
	if err := json.Unmarshal(b, &back); err != nil { t.Fatalf("unmarshal: %v", err) }
	if back.Input != 10 || back.NigelNumber != 17 || back.PrimeCount() != 4 {
		t.Fatalf("unexpected decode: %+v", back)
	}
	for _, field := range []string{`"input"`, `"nigel_number"`, `"primes_found"`} {
		if !strings.Contains(string(b), field) { t.Fatalf("missing field %s in %s", field, b) }
	}
}

func TestNigelNumberResponse_EmptyPrimesNotNull(t *testing.T) {
	resp := NewNigelNumberResponse(1, prime.Result{})
	b, err := json.Marshal(resp)
	if err != nil { t.Fatalf("marshal: %v", err) }
	if !strings.Contains(string(b), `"primes_found":[]`) {
		t.Fatalf("primes_found should be an empty array: %s", b)
	}
}

func TestErrorResponse_JSON(t *testing.T) {
	e := ErrorResponse{Error: "Invalid input", Details: "A valid integer is required."}
	b, err := json.Marshal(e)
	if err != nil { t.Fatalf("marshal: %v", err) }
	var back ErrorResponse
	if err := json.Unmarshal(b, &back); err != nil { t.Fatalf("unmarshal: %v", err) }
	if back != e { t.Fatalf("roundtrip mismatch: %+v", back) }
}
