package bigint

// Add returns a+b. If the signs match, magnitudes are summed and the
// common sign retained; otherwise the smaller magnitude is
// subtracted from the larger and the result takes the sign of the
// larger magnitude. A zero result is always positive.
func Add(a, b Int) Int {
	if len(a.mag) == 0 {
		return Copy(b)
	}
	if len(b.mag) == 0 {
		return Copy(a)
	}
	if a.neg == b.neg {
		return Int{neg: a.neg, mag: addMag(a.mag, b.mag)}
	}
	switch cmpMag(a.mag, b.mag) {
	case 0:
		return Int{}
	case 1:
		return Int{neg: a.neg, mag: subMag(a.mag, b.mag)}
	default:
		return Int{neg: b.neg, mag: subMag(b.mag, a.mag)}
	}
}

// Sub returns a-b.
func Sub(a, b Int) Int {
	return Add(a, Negate(b))
}

// Negate returns -a; zero is returned unchanged (still positive).
func Negate(a Int) Int {
	if len(a.mag) == 0 {
		return Int{}
	}
	return Int{neg: !a.neg, mag: a.mag}
}

// Mul returns a*b. The result sign is the XOR of the operand signs;
// a zero operand forces a zero (positive) result.
func Mul(a, b Int) Int {
	if len(a.mag) == 0 || len(b.mag) == 0 {
		return Int{}
	}
	return Int{neg: a.neg != b.neg, mag: mulMag(a.mag, b.mag)}
}

// Div returns the integer quotient of a/b, truncated toward zero.
// It returns ErrDivByZero when b is zero.
func Div(a, b Int) (Int, error) {
	q, _, err := divMod(a, b)
	return q, err
}

// Mod returns a - b*Div(a,b): the remainder takes the sign of the
// dividend a (or is zero). It returns ErrDivByZero when b is zero.
func Mod(a, b Int) (Int, error) {
	_, r, err := divMod(a, b)
	return r, err
}

// divMod computes both quotient and remainder in one pass, since
// division and modulo share the same long division.
func divMod(a, b Int) (q, r Int, err error) {
	if len(b.mag) == 0 {
		return Int{}, Int{}, ErrDivByZero
	}
	if len(a.mag) == 0 {
		return Int{}, Int{}, nil
	}
	qm, rm := divModMag(a.mag, b.mag)
	q = Int{neg: a.neg != b.neg, mag: qm}
	r = Int{neg: a.neg, mag: rm}
	if len(q.mag) == 0 {
		q.neg = false
	}
	if len(r.mag) == 0 {
		r.neg = false
	}
	return q, r, nil
}
