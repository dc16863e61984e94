package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
// If future releases of Go add new predeclared unsigned integer types,
// this constraint will be modified to include them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
// If future releases of Go add new predeclared integer types,
// this constraint will be modified to include them.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// If future releases of Go add new predeclared floating-point types,
// this constraint will be modified to include them.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// KeyComparator reports the order between lhs and rhs under an opaque
// ordering context. The ctx is stored by the container at construction
// time and handed back verbatim on every comparison, so one comparator
// function can serve many containers with different parameters
// (collations, sort directions and so on).
// Assume lhs is the new key.
//  1. lhs == rhs (return 0)
//  2. lhs > rhs (return a positive int64), turn to right part.
//  3. lhs < rhs (return a negative int64), turn to left part.
//
// The result only carries its sign. Any magnitude is accepted, which
// lets integer comparators return a plain difference.
type KeyComparator[K any] func(ctx any, lhs, rhs K) int64

// OrderedKeyCompare is the stock ascending comparator for keys that
// carry a natural order. It ignores ctx.
func OrderedKeyCompare[K OrderedKey](ctx any, lhs, rhs K) int64 {
	_ = ctx
	if lhs == rhs {
		return 0
	} else if lhs > rhs {
		return 1
	}
	return -1
}

// ReverseOrderedKeyCompare flips OrderedKeyCompare, yielding a
// descending container.
func ReverseOrderedKeyCompare[K OrderedKey](ctx any, lhs, rhs K) int64 {
	return -OrderedKeyCompare(ctx, lhs, rhs)
}
