package types

import "github.com/example/nigelapi/internal/prime"

// NigelNumberResponse is the JSON body for a successful calculation.
type NigelNumberResponse struct {
	Input       int   `json:"input"`
	NigelNumber int64 `json:"nigel_number"`
	PrimesFound []int `json:"primes_found"`
}

// ErrorResponse is the JSON body for any failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// NewNigelNumberResponse builds the response envelope for n.
// PrimesFound always serializes as an array, never null.
func NewNigelNumberResponse(n int, result prime.Result) NigelNumberResponse {
	primes := result.Primes
	if primes == nil {
		primes = []int{}
	}
	return NigelNumberResponse{
		Input:       n,
		NigelNumber: result.Sum,
		PrimesFound: primes,
	}
}

// PrimeCount returns the number of primes in the response.
func (r NigelNumberResponse) PrimeCount() int { return len(r.PrimesFound) }
