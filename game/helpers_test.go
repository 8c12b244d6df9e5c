package game_test

import "testing"

// neverSpawn is an RNG whose spawn roll always fails.
type neverSpawn struct{}

func (neverSpawn) IntN(n int) int { return n - 1 }

// scriptedRNG returns its values in order and records every bound it was asked for.
type scriptedRNG struct {
	t      *testing.T
	values []int
	bounds []int
}

func (r *scriptedRNG) IntN(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		r.t.Fatalf("scriptedRNG exhausted (bound %d)", n)
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}
