package split

import "github.com/katalvlaran/graphprep/graphview"

// Assignment is an N x k boolean table: At(i, s) reports whether position i
// belongs to set s.
type Assignment struct {
	n, k  int
	cells []bool
}

func newAssignment(n, k int) *Assignment {
	return &Assignment{n: n, k: k, cells: make([]bool, n*k)}
}

// Rows returns N.
func (a *Assignment) Rows() int { return a.n }

// Sets returns k.
func (a *Assignment) Sets() int { return a.k }

// At reports whether position i is in set s.
func (a *Assignment) At(i, s int) bool { return a.cells[i*a.k+s] }

func (a *Assignment) set(i, s int) { a.cells[i*a.k+s] = true }

// Column returns set s as a mask over all N positions.
func (a *Assignment) Column(s int) graphview.Mask {
	m := make(graphview.Mask, a.n)
	for i := 0; i < a.n; i++ {
		m[i] = a.cells[i*a.k+s]
	}
	return m
}

// Counts returns the number of positions in each set.
func (a *Assignment) Counts() []int {
	out := make([]int, a.k)
	for i := 0; i < a.n; i++ {
		for s := 0; s < a.k; s++ {
			if a.cells[i*a.k+s] {
				out[s]++
			}
		}
	}
	return out
}

// Set returns the set of position i, or -1 when i is unassigned.
func (a *Assignment) Set(i int) int {
	for s := 0; s < a.k; s++ {
		if a.cells[i*a.k+s] {
			return s
		}
	}
	return -1
}
