package decimal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Decimal type is a representation of an arbitrary-range decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Coefficient: an arbitrary-precision non-negative integer magnitude.
//   - Exponent: a signed integer, the power-of-ten scale applied to
//     the coefficient.
//
// The represented value is sign * coefficient * 10^exponent.
// Every constructor normalizes the triple into canonical form: the
// coefficient of a nonzero decimal is never divisible by 10 (trailing zeros
// are folded into the exponent), and zero is always (positive, 0, 0).
// Canonical form gives a unique representation per value, so two decimals
// are numerically equal if and only if their triples are identical.
//
// Special values such as NaN, Infinity, or signed zeros are not supported.
type Decimal struct {
	neg  bool    // indicates whether the decimal is negative
	exp  int     // the power-of-ten scale applied to the coefficient
	coef big.Int // the coefficient of the decimal, always non-negative
}

const (
	DivPrec     = 40 // default number of significant digits for Quo and Pow
	SciDigits   = 20 // default number of significant digits for String
	FixedDigits = 20 // default number of fractional digits for Fixed
	guardDigits = 5  // extra digits carried by Quo to absorb rounding error
)

// maxParseExp bounds the explicit exponent accepted by Parse.
// The coefficient itself is unbounded.
const maxParseExp = math.MaxInt32

var (
	ErrInvalidDecimal   = errors.New("invalid decimal")
	ErrEmptyInput       = errors.New("empty input")
	ErrExponentRange    = errors.New("exponent out of range")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidExponent  = errors.New("invalid exponent")
	ErrUnsupportedInput = errors.New("unsupported input")
)

var one = New(1, 0)

// newFromBint constructs a canonical decimal from a non-negative coefficient
// and an exponent.
// The coefficient is copied, so callers may reuse it afterwards.
func newFromBint(neg bool, coef *bint, exp int) Decimal {
	if coef.sign() == 0 {
		return Decimal{}
	}
	if t := coef.tzeros(); t > 0 {
		coef.rshDown(coef, t)
		exp += t
	}
	var d Decimal
	d.neg = neg
	d.exp = exp
	d.coef.Set((*big.Int)(coef))
	return d
}

// New returns a decimal equal to coef * 10^exp.
func New(coef int64, exp int) Decimal {
	return NewFromBigInt(big.NewInt(coef), exp)
}

// NewFromBigInt returns a decimal equal to coef * 10^exp.
// The sign of coef becomes the sign of the decimal.
// coef is not retained or mutated.
func NewFromBigInt(coef *big.Int, exp int) Decimal {
	b := getBint()
	defer putBint(b)
	(*big.Int)(b).Abs(coef)
	return newFromBint(coef.Sign() < 0, b, exp)
}

// NewFromFloat64 converts a float64 to a (possibly rounded) decimal.
// The conversion goes through the float's shortest decimal representation
// that round-trips, so no digits representable in a float64 are lost.
//
// NewFromFloat64 returns an error if f is NaN or Infinity.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, ErrUnsupportedInput)
	}
	d, err := Parse(strconv.FormatFloat(f, 'e', -1, 64))
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}

// Parse converts a string to a canonical decimal.
// Surrounding whitespace is ignored.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//	1e1000
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse returns an error:
//   - if the string is empty or contains only whitespace;
//   - if the string does not represent a valid decimal number;
//   - if the explicit exponent does not fit in 32 bits.
func Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, ErrEmptyInput
	}

	var (
		pos     int
		width   int
		neg     bool
		scale   int
		hascoef bool
		eneg    bool
		exp     int
		hasexp  bool
		hasesym bool
	)

	coef := getBint()
	defer putBint(coef)
	coef.setUint64(0)
	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef.fsa(coef, 1, uint64(s[pos]-'0'))
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			coef.fsa(coef, 1, uint64(s[pos]-'0'))
			scale++
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasesym = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxParseExp {
				return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrExponentRange)
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidDecimal)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("no coefficient: %w", ErrInvalidDecimal)
	}
	if hasesym && !hasexp {
		return Decimal{}, fmt.Errorf("no exponent: %w", ErrInvalidDecimal)
	}

	if eneg {
		exp = -exp
	}
	return newFromBint(neg, coef, exp-scale), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// Prec returns the number of digits in the coefficient.
// Prec assumes that 0 has no digits.
func (d Decimal) Prec() int {
	return (*bint)(&d.coef).prec()
}

// Coef returns the coefficient of the decimal.
// The returned value is a copy and may be freely mutated.
func (d Decimal) Coef() *big.Int {
	return new(big.Int).Set(&d.coef)
}

// Exp returns the power-of-ten exponent applied to the coefficient.
func (d Decimal) Exp() int {
	return d.exp
}

// IsInt returns true if there are no digits after the decimal point.
func (d Decimal) IsInt() bool {
	return d.exp >= 0
}

// IsOne returns true if d == -1 or d == 1.
func (d Decimal) IsOne() bool {
	return d.exp == 0 && (*bint)(&d.coef).cmp(bpow10[0]) == 0
}

// Int returns the value of d as a big integer.
// If d has a fractional part, ok is false.
func (d Decimal) Int() (z *big.Int, ok bool) {
	if !d.IsInt() {
		return nil, false
	}
	z = new(big.Int).Set(&d.coef)
	if d.exp > 0 {
		b := (*bint)(z)
		b.lsh(b, d.exp)
	}
	if d.neg {
		z.Neg(z)
	}
	return z, true
}

// Float64 returns the nearest binary floating-point number to d.
// The conversion goes through the decimal text of d, so magnitudes outside
// the float64 range saturate to ±Inf; in that case ok is false and the
// saturated value is still returned.
func (d Decimal) Float64() (f float64, ok bool) {
	digits := d.Prec()
	if digits < 1 {
		digits = 1
	}
	f, err := strconv.ParseFloat(d.SciString(digits), 64)
	if err != nil {
		return f, false
	}
	return f, true
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// The encoded form is scientific notation carrying every coefficient digit,
// so the value round-trips exactly.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	digits := d.Prec()
	if digits < 1 {
		digits = 1
	}
	return []byte(d.SciString(digits)), nil
}

// Neg returns d with the opposite sign.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.neg != e.neg:
		return d.Neg()
	default:
		return d
	}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef.Sign() == 0:
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.Sign() == 0
}

// Add returns the exact sum of d and e.
// No precision is lost regardless of the exponent disparity of the operands.
func (d Decimal) Add(e Decimal) Decimal {
	var (
		neg bool
		exp int
	)

	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	dcoef.setBig(&d.coef)
	ecoef.setBig(&e.coef)

	// Alignment and exponent
	exp = d.exp
	switch {
	case d.exp == e.exp:
		// skip
	case e.exp < d.exp:
		dcoef.lsh(dcoef, d.exp-e.exp)
		exp = e.exp
	case d.exp < e.exp:
		ecoef.lsh(ecoef, e.exp-d.exp)
	}

	// Sign
	if dcoef.cmp(ecoef) > 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	if d.neg != e.neg {
		dcoef.dist(dcoef, ecoef)
	} else {
		dcoef.add(dcoef, ecoef)
	}

	return newFromBint(neg, dcoef, exp)
}

// Sub returns the exact difference of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the exact product of d and e.
func (d Decimal) Mul(e Decimal) Decimal {
	if d.IsZero() || e.IsZero() {
		return Decimal{}
	}

	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	dcoef.setBig(&d.coef)
	ecoef.setBig(&e.coef)

	dcoef.mul(dcoef, ecoef)

	return newFromBint(d.neg != e.neg, dcoef, d.exp+e.exp)
}

// Quo returns the quotient of d and e computed to [DivPrec] significant
// digits.
// Also see method [Decimal.QuoPrec].
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	return d.QuoPrec(e, DivPrec)
}

// QuoPrec returns the quotient of d and e computed to the given number of
// significant digits.
// The quotient carries [guard digits] of extra precision before it is
// rounded half away from zero to exactly prec significant digits, which
// bounds the error to about one unit in the last requested digit but is not
// a provably exact rounding scheme.
// If prec is less than 1, it is treated as 1.
//
// QuoPrec returns an error if e is zero.
//
// [guard digits]: https://en.wikipedia.org/wiki/Guard_digit
func (d Decimal) QuoPrec(e Decimal, prec int) (Decimal, error) {
	if prec < 1 {
		prec = 1
	}

	// Special case: zero divisor
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("%v / %v: %w", d, e, ErrDivisionByZero)
	}

	// Special case: zero dividend
	if d.IsZero() {
		return Decimal{}, nil
	}

	guard := prec + guardDigits

	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	dcoef.setBig(&d.coef)
	ecoef.setBig(&e.coef)

	// Coefficient
	dcoef.lsh(dcoef, guard)
	dcoef.quo(dcoef, ecoef)
	exp := d.exp - e.exp - guard

	// Rounding to prec significant digits
	if drop := dcoef.prec() - prec; drop > 0 {
		dcoef.rshHalfUp(dcoef, drop)
		exp += drop
	}

	return newFromBint(d.neg != e.neg, dcoef, exp), nil
}

// Inv returns 1 / d computed to [DivPrec] significant digits.
//
// Inv returns an error if d is zero.
func (d Decimal) Inv() (Decimal, error) {
	return one.Quo(d)
}

// Pow returns d raised to the given integer power, computed to [DivPrec]
// significant digits when the power is negative.
// Also see method [Decimal.PowPrec].
func (d Decimal) Pow(power int) (Decimal, error) {
	return d.PowPrec(power, DivPrec)
}

// PowPrec returns d raised to the given integer power.
// A non-negative power is computed exactly by binary exponentiation.
// A negative power is the reciprocal of the exact positive power, computed
// to the given number of significant digits under the rounding contract of
// [Decimal.QuoPrec].
//
// PowPrec returns an error if d is zero and the power is negative.
func (d Decimal) PowPrec(power, prec int) (Decimal, error) {
	// Special case: power of zero
	if power == 0 {
		return one, nil
	}

	// Negative power: reciprocal of the positive power
	if power < 0 {
		if power == math.MinInt {
			return Decimal{}, fmt.Errorf("power %v: %w", power, ErrExponentRange)
		}
		f, err := d.PowPrec(-power, prec)
		if err != nil {
			return Decimal{}, err
		}
		if f.IsZero() {
			return Decimal{}, fmt.Errorf("%v ** %v: %w", d, power, ErrDivisionByZero)
		}
		return one.QuoPrec(f, prec)
	}

	// General case: exact square-and-multiply
	f, _ := d.PowPrec(power/2, prec)
	f = f.Mul(f)
	if power%2 != 0 {
		f = f.Mul(d)
	}
	return f, nil
}

// PowDec is like [Decimal.PowPrec] but accepts the power as a decimal.
//
// PowDec returns an error if e has a fractional part or does not fit
// in an int.
func (d Decimal) PowDec(e Decimal, prec int) (Decimal, error) {
	n, ok := e.Int()
	if !ok {
		return Decimal{}, fmt.Errorf("power %v: %w", e, ErrInvalidExponent)
	}
	if !n.IsInt64() || int64(int(n.Int64())) != n.Int64() {
		return Decimal{}, fmt.Errorf("power %v: %w", e, ErrInvalidExponent)
	}
	return d.PowPrec(int(n.Int64()), prec)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d.Sign() == 0:
		return 0
	}

	// General case
	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	dcoef.setBig(&d.coef)
	ecoef.setBig(&e.coef)

	// Alignment
	switch {
	case e.exp < d.exp:
		dcoef.lsh(dcoef, d.exp-e.exp)
	case d.exp < e.exp:
		ecoef.lsh(ecoef, e.exp-d.exp)
	}

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	}
	return 0
}

// Equal returns true if d and e are numerically equal.
// Canonical form makes this equivalent to field-by-field equality.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Decimal) LessOrEqual(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Greater returns true if d > e.
func (d Decimal) Greater(e Decimal) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Decimal) GreaterOrEqual(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// Max returns the maximum of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the minimum of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Round returns d rounded half away from zero to the given number of
// significant digits.
// If d already has that many digits or fewer, d is returned unchanged.
// If digits is less than 1, it is treated as 1.
func (d Decimal) Round(digits int) Decimal {
	if digits < 1 {
		digits = 1
	}
	drop := d.Prec() - digits
	if drop <= 0 {
		return d
	}
	coef := getBint()
	defer putBint(coef)
	coef.setBig(&d.coef)
	coef.rshHalfUp(coef, drop)
	return newFromBint(d.neg, coef, d.exp+drop)
}

// Trunc returns d truncated towards zero to the given number of significant
// digits.
// If d already has that many digits or fewer, d is returned unchanged.
// If digits is less than 1, it is treated as 1.
func (d Decimal) Trunc(digits int) Decimal {
	if digits < 1 {
		digits = 1
	}
	drop := d.Prec() - digits
	if drop <= 0 {
		return d
	}
	coef := getBint()
	defer putBint(coef)
	coef.setBig(&d.coef)
	coef.rshDown(coef, drop)
	return newFromBint(d.neg, coef, d.exp+drop)
}

// String method implements the [fmt.Stringer] interface and returns
// d in scientific notation with [SciDigits] significant digits.
// Also see method [Decimal.SciString].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.SciString(SciDigits)
}

// SciString returns d in scientific notation, rounded half away from zero
// to the given number of significant digits:
//
//	1.23e+400
//	-5e+0
//	6.674e-11
//
// The exponent is the base-10 order of magnitude of the leading digit and
// always carries an explicit sign.
// Trailing zeros of the mantissa are not rendered.
// Zero is rendered as "0".
// If digits is less than 1, it is treated as 1.
func (d Decimal) SciString(digits int) string {
	if digits < 1 {
		digits = 1
	}

	// Special case: zero
	if d.IsZero() {
		return "0"
	}

	coef := getBint()
	defer putBint(coef)
	coef.setBig(&d.coef)
	sciexp := d.exp + coef.prec() - 1

	// Rounding to the requested significant digits
	if drop := coef.prec() - digits; drop > 0 {
		coef.rshHalfUp(coef, drop)
		// A carry out of rounding, e.g. 9.99 -> 10.0, shifts the order
		// of magnitude up by one.
		if coef.hasPrec(digits + 1) {
			coef.rshDown(coef, 1)
			sciexp++
		}
		if t := coef.tzeros(); t > 0 {
			coef.rshDown(coef, t)
		}
	}

	mant := coef.string()
	var b strings.Builder
	b.Grow(len(mant) + 8)
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(mant[:1])
	if len(mant) > 1 {
		b.WriteByte('.')
		b.WriteString(mant[1:])
	}
	b.WriteByte('e')
	if sciexp < 0 {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(-sciexp))
	} else {
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(sciexp))
	}
	return b.String()
}

// Fixed returns d in fixed-point notation with [FixedDigits] digits after
// the decimal point.
// Also see method [Decimal.FixedString].
func (d Decimal) Fixed() string {
	return d.FixedString(FixedDigits)
}

// FixedString returns d in fixed-point notation with the given number of
// digits after the decimal point:
//
//	12345.678900
//	-0.500
//	0.000
//
// The fractional part is truncated, not rounded, and zero-padded to exactly
// the requested width.
// If digits is 0, the integer part is rendered without a decimal point.
// If digits is negative, it is treated as 0.
func (d Decimal) FixedString(digits int) string {
	if digits < 0 {
		digits = 0
	}

	var ipart, fpart string
	mant := d.coef.String()
	switch {
	case d.IsZero():
		ipart = "0"
	case d.exp >= 0:
		ipart = mant + strings.Repeat("0", d.exp)
	case -d.exp >= len(mant):
		ipart = "0"
		fpart = strings.Repeat("0", -d.exp-len(mant)) + mant
	default:
		ipart = mant[:len(mant)+d.exp]
		fpart = mant[len(mant)+d.exp:]
	}

	// Truncation and padding
	switch {
	case len(fpart) > digits:
		fpart = fpart[:digits]
	case len(fpart) < digits:
		fpart = fpart + strings.Repeat("0", digits-len(fpart))
	}

	var b strings.Builder
	b.Grow(len(ipart) + len(fpart) + 2)
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(ipart)
	if digits > 0 {
		b.WriteByte('.')
		b.WriteString(fpart)
	}
	return b.String()
}
