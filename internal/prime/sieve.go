// Package prime computes the Nigel Number: the sum of all primes <= N,
// together with the ordered list of those primes.
package prime

import "errors"

// ErrInvalidInput is returned when the input is not a positive integer.
var ErrInvalidInput = errors.New("input must be a positive integer")

// Result holds the primes <= N in ascending order and their sum.
// Sum is int64 so it cannot overflow for any n the server accepts.
type Result struct {
	Primes []int
	Sum    int64
}

// Compute returns the Nigel Number for n. The only failure mode is a
// precondition violation (n < 1); callers are expected to validate first.
func Compute(n int) (Result, error) {
	if n < 1 {
		return Result{}, ErrInvalidInput
	}
	primes := Sieve(n)
	var sum int64
	for _, p := range primes {
		sum += int64(p)
	}
	return Result{Primes: primes, Sum: sum}, nil
}

// Sieve returns all primes <= n in ascending order using the Sieve of
// Eratosthenes. O(n log log n) time, one marker byte per integer in range.
// Returns an empty slice for n < 2.
func Sieve(n int) []int {
	if n < 2 {
		return []int{}
	}
	// composite[i] == false means i is still possibly prime.
	composite := make([]bool, n+1)
	composite[0], composite[1] = true, true
	for p := 2; p*p <= n; p++ {
		if composite[p] {
			continue
		}
		// Multiples below p*p were already marked by smaller prime factors.
		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}
	primes := make([]int, 0, n/2)
	for i := 2; i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}
