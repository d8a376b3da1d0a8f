package dig10

// Int is an unsigned, multi-precision base-10 integer stored one decimal
// digit per element, least significant digit first: z[i] is the 10^i
// place. The high end never carries zero padding, so zero is the empty
// (or nil) slice and len(z) is exactly the written digit count.
type Int []Word

// Word is a single base-10 digit.
type Word uint8

const base = 10

// NewInt makes a new Int with value x.
func NewInt(x uint64) Int {
	var z Int
	for ; x > 0; x /= base {
		z = append(z, Word(x%base))
	}
	return z
}

// NewInt64 makes a new Int with value abs(x).
func NewInt64(x int64) Int {
	if x < 0 {
		// -(x+1)+1 reaches abs(MinInt64) without overflowing.
		return NewInt(uint64(-(x + 1)) + 1)
	}
	return NewInt(uint64(x))
}

// NewIntString makes a new Int with value s. s must contain only the
// characters 0-9; the second return value is false otherwise.
func NewIntString(s string) (Int, bool) {
	z := make(Int, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		z = append(z, Word(c-'0'))
	}
	return z.trim(), true
}

// Set sets z to the value of x and returns z.
func (z *Int) Set(x Int) *Int {
	*z = append((*z)[:0], x...)
	return z
}

// Uint64 returns a as a uint64. If a cannot be represented in a uint64,
// it is undefined.
func (a Int) Uint64() uint64 {
	var v uint64
	for i := len(a) - 1; i >= 0; i-- {
		v = v*base + uint64(a[i])
	}
	return v
}

// Int64 returns a as an int64. If a cannot be represented in an int64,
// it is undefined.
func (a Int) Int64() int64 {
	var v int64
	for i := len(a) - 1; i >= 0; i-- {
		v = v*base + int64(a[i])
	}
	return v
}

// Len returns the number of digits of a. Zero has zero digits.
func (a Int) Len() int {
	return len(a)
}

// Digit returns the digit of a in the 10^i place. Positions past either
// end read as zero.
func (a Int) Digit(i int) Word {
	if i < 0 || i >= len(a) {
		return 0
	}
	return a[i]
}

// Zero reports whether z is 0. The no-high-zeros invariant makes this a
// length check.
func (z Int) Zero() bool {
	return len(z) == 0
}

// Cmp compares a and b by magnitude. A wider number is always larger;
// equal widths compare digit by digit from the high end.
func (a Int) Cmp(b Int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if d := int(a[i]) - int(b[i]); d != 0 {
			if d < 0 {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a == b.
func (a Int) Equal(b Int) bool {
	return a.Cmp(b) == 0
}

func (z Int) String() string {
	if len(z) == 0 {
		return "0"
	}
	b := make([]byte, 0, len(z))
	for i := len(z) - 1; i >= 0; i-- {
		b = append(b, '0'+byte(z[i]))
	}
	return string(b)
}

// Add sets z to x+y. Either operand may alias z; the sum is built in
// fresh storage.
func (z *Int) Add(x, y Int) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	sum := make(Int, 0, n+1)
	var carry Word
	for i := 0; i < n; i++ {
		t := x.Digit(i) + y.Digit(i) + carry
		if t >= base {
			t -= base
			carry = 1
		} else {
			carry = 0
		}
		sum = append(sum, t)
	}
	if carry != 0 {
		sum = append(sum, carry)
	}
	*z = sum
}

// Sub sets z to x-y. The caller must ensure x >= y; either operand may
// alias z.
func (z *Int) Sub(x, y Int) {
	diff := make(Int, 0, len(x))
	var borrow int8
	for i := 0; i < len(x); i++ {
		t := int8(x[i]) - int8(y.Digit(i)) - borrow
		if t < 0 {
			t += base
			borrow = 1
		} else {
			borrow = 0
		}
		diff = append(diff, Word(t))
	}
	*z = diff.trim()
}

// Diff sets z to |x-y| and reports whether x < y. The operands are
// ordered by comparison first, so the subtraction itself never borrows
// off the top.
func (z *Int) Diff(x, y Int) bool {
	if x.Cmp(y) < 0 {
		z.Sub(y, x)
		return true
	}
	z.Sub(x, y)
	return false
}

// Mul returns a*b by schoolbook multiplication: every digit pair lands
// in a flat column accumulator, and a single carry pass at the end
// renormalizes the columns to digits.
func (a Int) Mul(b Int) Int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	cols := make([]uint32, len(a)+len(b))
	for i, da := range a {
		for j, db := range b {
			cols[i+j] += uint32(da) * uint32(db)
		}
	}
	z := make(Int, 0, len(cols)+1)
	var carry uint32
	for _, v := range cols {
		v += carry
		z = append(z, Word(v%base))
		carry = v / base
	}
	for carry > 0 {
		z = append(z, Word(carry%base))
		carry /= base
	}
	return z.trim()
}

// MulWord returns a*b for a small factor b.
func (a Int) MulWord(b Word) Int {
	if len(a) == 0 || b == 0 {
		return nil
	}
	z := make(Int, 0, len(a)+2)
	var carry uint16
	for _, d := range a {
		t := uint16(d)*uint16(b) + carry
		z = append(z, Word(t%base))
		carry = t / base
	}
	for carry > 0 {
		z = append(z, Word(carry%base))
		carry /= base
	}
	return z.trim()
}

// Mul10 multiplies a by 10^n in place and returns a. A negative n
// truncates the low digits.
func (a *Int) Mul10(n int) *Int {
	switch {
	case len(*a) == 0 || n == 0:
	case n > 0:
		z := make(Int, len(*a)+n)
		copy(z[n:], *a)
		*a = z
	case -n >= len(*a):
		*a = nil
	default:
		// The surviving high digits may be all zero; re-trim.
		*a = append(Int(nil), (*a)[-n:]...).trim()
	}
	return a
}

// QuoRem returns the quotient and remainder of x/y. y must not be zero.
// Long division: for each dividend digit from the high end, the running
// remainder is shifted up one place and the next quotient digit found by
// repeated subtraction of y.
func QuoRem(x, y Int) (q, r Int) {
	if len(x) == 0 {
		return nil, nil
	}
	q = make(Int, len(x))
	r = make(Int, 0, len(y)+1)
	for i := len(x) - 1; i >= 0; i-- {
		r.Mul10(1)
		if d := x[i]; d != 0 {
			if len(r) == 0 {
				r = append(r, d)
			} else {
				r[0] = d
			}
		}
		var d Word
		for r.Cmp(y) >= 0 {
			r.Sub(r, y)
			d++
		}
		q[i] = d
	}
	return q.trim(), r
}

// QuoRemUint returns the quotient and remainder of a/v for a small
// divisor v. v must not be zero and must be less than 2^32.
func (a Int) QuoRemUint(v uint64) (Int, uint64) {
	if len(a) == 0 {
		return nil, 0
	}
	q := make(Int, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem*base + uint64(a[i])
		q[i] = Word(cur / v)
		rem = cur % v
	}
	return q.trim(), rem
}

// Split sets frac to the lowest n digits of a and integ to the
// remainder. If n >= len(a), frac is set to a and integ is nil. integ
// and frac are shallow copies of a.
func (a Int) Split(n int) (integ, frac Int) {
	if n >= len(a) {
		return nil, a
	}
	return a[n:], a[:n]
}

// Low returns the lowest digit of a.
func (a Int) Low() Word {
	if len(a) == 0 {
		return 0
	}
	return a[0]
}

func (a Int) trim() Int {
	i := len(a)
	for i > 0 && a[i-1] == 0 {
		i--
	}
	return a[:i]
}
