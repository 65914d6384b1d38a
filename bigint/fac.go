package bigint

import "fmt"

// Factorial returns n! for n >= 0, or ErrNegativeFactorial for n < 0.
// 0! and 1! are both 1.
//
// For n >= 2 the product 2*3*...*n is built by a product tree:
// recursively split the range at its midpoint and multiply the two
// subproducts, rather than folding left to right. The tree halves the
// number of multiplications performed on the largest operands, which
// matters once the partial products grow to many limbs; both
// strategies are mathematically equivalent. This mirrors the
// recursive splitting in robpike.io/ivy's value/fac.go product1
// helper, generalized here from a slice of int factors to a
// contiguous integer range so no factor list needs to be materialized
// up front.
func Factorial(n Int) (Int, error) {
	if IsNegative(n) {
		return Int{}, ErrNegativeFactorial
	}
	if CmpAbs(n, one) <= 0 {
		return one, nil
	}
	lo := uint64(2)
	hi, ok := toUint64(n)
	if !ok {
		return Int{}, fmt.Errorf("bigint: factorial argument too large")
	}
	return rangeProduct(lo, hi), nil
}

// rangeProduct returns the product lo*(lo+1)*...*hi (hi >= lo >= 1).
func rangeProduct(lo, hi uint64) Int {
	if lo == hi {
		return FromInt64(int64(lo))
	}
	if hi-lo == 1 {
		return Mul(FromInt64(int64(lo)), FromInt64(int64(hi)))
	}
	mid := lo + (hi-lo)/2
	left := rangeProduct(lo, mid)
	right := rangeProduct(mid+1, hi)
	return Mul(left, right)
}
