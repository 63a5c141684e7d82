// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// Operator names the binary operations supported by Apply. The core only
// needs AND, OR and XOR: NOT has its own walk next to Ite, sharing the ITE
// cache (see Manager.Not), so that Apply never has to handle negation.
type Operator int

const (
	OPand Operator = iota
	OPor
	OPxor
	// opnot is never passed to Apply and keys no cache entry (Not stores
	// its results in the ITE cache); it only gives negation a name.
	opnot
)

var opnames = [4]string{
	OPand: "and",
	OPor:  "or",
	OPxor: "xor",
	opnot: "not",
}

func (op Operator) String() string {
	return opnames[op]
}

// opres gives the truth table for each operator, indexed [left][right].
var opres = [4][2][2]int{
	OPand: {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 1}},
	OPor:  {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 1}},
	OPxor: {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 0}},
}
