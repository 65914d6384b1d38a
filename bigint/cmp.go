package bigint

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater
// than b. Mixed signs resolve by sign; matching signs resolve by
// CmpAbs (inverted when both are negative).
func Cmp(a, b Int) int {
	as, bs := a.sign(), b.sign()
	if as != bs {
		if as < bs {
			return -1
		}
		return 1
	}
	if as == 0 {
		return 0
	}
	c := cmpMag(a.mag, b.mag)
	if as < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |a| and |b|, ignoring sign.
func CmpAbs(a, b Int) int {
	return cmpMag(a.mag, b.mag)
}
