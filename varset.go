// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// VarSet is an immutable-looking set of variables, used to describe the set
// quantified away by Exist/ForAll/AppEx/RelProd and the sliced variables of
// a View. It is backed by a compressed Roaring bitmap so that large,
// sparse variable sets (the common case once a formula has thousands of
// variables but a query only quantifies a handful of them) are cheap to
// build, copy and hash.
type VarSet struct {
	bits *roaring.Bitmap
}

// NewVarSet builds a VarSet containing exactly the given variables.
func NewVarSet(vars ...VarID) VarSet {
	bm := roaring.New()
	for _, v := range vars {
		bm.Add(uint32(v))
	}
	return VarSet{bits: bm}
}

// Contains reports whether v is a member of the set.
func (s VarSet) Contains(v VarID) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.Contains(uint32(v))
}

// Len returns the number of variables in the set.
func (s VarSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.GetCardinality())
}

// Slice returns the set's variables in ascending order.
func (s VarSet) Slice() []VarID {
	if s.bits == nil {
		return nil
	}
	out := make([]VarID, 0, s.bits.GetCardinality())
	it := s.bits.Iterator()
	for it.HasNext() {
		out = append(out, VarID(it.Next()))
	}
	return out
}

// Union returns a new VarSet containing every variable in s or other.
func (s VarSet) Union(other VarSet) VarSet {
	if s.bits == nil {
		return other.clone()
	}
	if other.bits == nil {
		return s.clone()
	}
	return VarSet{bits: roaring.Or(s.bits, other.bits)}
}

// Equal reports whether s and other contain exactly the same variables.
func (s VarSet) Equal(other VarSet) bool {
	switch {
	case s.bits == nil && other.bits == nil:
		return true
	case s.bits == nil:
		return other.bits.GetCardinality() == 0
	case other.bits == nil:
		return s.bits.GetCardinality() == 0
	default:
		return s.bits.Equals(other.bits)
	}
}

func (s VarSet) clone() VarSet {
	if s.bits == nil {
		return VarSet{bits: roaring.New()}
	}
	return VarSet{bits: s.bits.Clone()}
}

// hashcode folds the set into a single int, used as the generation-free
// cache key component for quantification caches when a stable int per
// distinct set is good enough (see quantify.go).
func (s VarSet) hashcode() int {
	if s.bits == nil {
		return 0
	}
	h := uint64(1469598103934665603) // FNV offset basis
	it := s.bits.Iterator()
	for it.HasNext() {
		h ^= uint64(it.Next())
		h *= 1099511628211
	}
	return int(h & 0x7fffffff)
}

func (s VarSet) String() string {
	vars := s.Slice()
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
