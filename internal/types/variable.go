package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Variable is an opaque type-variable handle. It carries no type until the
// solver assigns one.
type Variable uint32

// NoVariable marks the absence of a variable (zero is sentinel).
const NoVariable Variable = 0

// Reserved variables shared by every synthesis in the process.
const (
	// VarNat is the canonical collection-size variable. Every length and index
	// slot that must share one size representation reuses it.
	VarNat Variable = iota + 1
	// VarNatural is the precision variable paired with VarNat literals.
	VarNatural
	// VarEmptyRecord types the `{}` value stored in set-backed dictionaries.
	VarEmptyRecord

	reservedEnd
)

// FirstFresh is the first variable a store hands out.
const FirstFresh = reservedEnd

// IsValid reports whether the variable is non-zero.
func (v Variable) IsValid() bool { return v != NoVariable }

// IsReserved reports whether the variable belongs to the process-reserved set.
func (v Variable) IsReserved() bool { return v >= VarNat && v < reservedEnd }

func (v Variable) String() string {
	switch v {
	case NoVariable:
		return "v?"
	case VarNat:
		return "Nat"
	case VarNatural:
		return "Natural"
	case VarEmptyRecord:
		return "EmptyRecord"
	default:
		return fmt.Sprintf("v%d", uint32(v))
	}
}

// VarStore mints fresh variables for one compilation. It is not safe for
// concurrent use; each compilation owns its own store.
type VarStore struct {
	start Variable
	next  Variable
}

// NewVarStore creates a store whose first fresh variable is FirstFresh.
func NewVarStore() *VarStore {
	return NewVarStoreAt(FirstFresh)
}

// NewVarStoreAt creates a store seeded at the given variable. Seeds inside the
// reserved range are clamped to FirstFresh.
func NewVarStoreAt(seed Variable) *VarStore {
	if seed < FirstFresh {
		seed = FirstFresh
	}
	return &VarStore{start: seed, next: seed}
}

// Fresh returns a variable never returned before by this store.
func (s *VarStore) Fresh() Variable {
	v := s.next
	if v == ^Variable(0) {
		panic(fmt.Errorf("variable store overflow at %d", uint32(v)))
	}
	s.next++
	return v
}

// FreshN mints n consecutive fresh variables.
func (s *VarStore) FreshN(n int) []Variable {
	if n <= 0 {
		return nil
	}
	count, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("fresh batch overflow: %w", err))
	}
	if uint64(s.next)+uint64(count) > uint64(^Variable(0)) {
		panic(fmt.Errorf("variable store overflow: %d + %d", uint32(s.next), count))
	}
	out := make([]Variable, n)
	for i := range out {
		out[i] = s.Fresh()
	}
	return out
}

// Peek returns the variable the next Fresh call will mint.
func (s *VarStore) Peek() Variable { return s.next }

// Start returns the seed of the store.
func (s *VarStore) Start() Variable { return s.start }

// Minted reports how many variables the store has handed out.
func (s *VarStore) Minted() int {
	n, err := safecast.Conv[int](uint32(s.next - s.start))
	if err != nil {
		panic(fmt.Errorf("minted count overflow: %w", err))
	}
	return n
}

// Owns reports whether v was minted by this store or is reserved.
func (s *VarStore) Owns(v Variable) bool {
	if v.IsReserved() {
		return true
	}
	return v >= s.start && v < s.next
}
