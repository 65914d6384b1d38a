package bigint

var two = FromInt64(2)

// Power returns base^exp using binary (square-and-multiply)
// exponentiation for non-negative exp. Negative exponents are
// truncated as integers: |base|>1 truncates to 0, base==1 stays 1,
// base==-1 alternates with the parity of exp, and base==0 with a
// negative exponent is a division by zero. This mirrors the case
// table bignum_math.c's power() special-cases for base in {0,1}
// before falling into its square-and-multiply loop, extended here to
// cover the negative-exponent truncation semantics the original
// rejected outright.
func Power(base, exp Int) (Int, error) {
	if IsNegative(exp) {
		switch {
		case IsZero(base):
			return Int{}, ErrDivByZero
		case CmpAbs(base, one) == 0:
			if !IsNegative(base) {
				return one, nil
			}
			if isEven(exp) {
				return one, nil
			}
			return Negate(one), nil
		default:
			return Int{}, nil
		}
	}
	return powBinary(base, exp), nil
}

// powBinary computes base^exp for exp >= 0 by repeated squaring.
func powBinary(base, exp Int) Int {
	result := one
	b := base
	e := Copy(exp)
	for !IsZero(e) {
		if !isEven(e) {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		e, _ = Div(e, two)
	}
	return result
}

// isEven reports whether x's low bit is clear.
func isEven(x Int) bool {
	if len(x.mag) == 0 {
		return true
	}
	return x.mag[0]&1 == 0
}
