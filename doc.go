/*
Package decimal implements immutable arbitrary-range decimal numbers.
It is designed for exact integer-scaled decimal arithmetic far beyond the
native floating-point range, for values up to and beyond 10^1000, without
adopting a full arbitrary-precision rational library.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an arbitrary-precision non-negative integer magnitude.
  - Exponent: a signed integer, the power of ten applied to the coefficient.

The numerical value of a decimal is calculated as:

  - -Coefficient * 10^Exponent, if Sign is true.
  - Coefficient * 10^Exponent, if Sign is false.

Unlike scale-preserving decimal types, every constructor normalizes the
triple into canonical form: trailing zeros of the coefficient are folded
into the exponent, and zero is always represented as (positive, 0, 0).
Canonical form gives each value a unique representation, so structural
equality of the triples coincides with numerical equality.

Special values such as [NaN], [Infinity], or [negative zeros] are not
supported.

# Conversions

The package provides functions and methods for converting decimals:

  - from/to string:
    [Parse], [MustParse], [Decimal.String], [Decimal.SciString],
    [Decimal.Fixed], [Decimal.FixedString].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].
  - from/to big integers:
    [New], [NewFromBigInt], [Decimal.Int].

Float conversions bridge through decimal text in both directions:
[NewFromFloat64] parses the float's shortest round-tripping representation,
so no digits representable in a float64 are lost, and [Decimal.Float64]
saturates to ±Inf for magnitudes outside the float64 range.

# Operations

[Decimal.Add], [Decimal.Sub], and [Decimal.Mul] are exact: the result
carries every digit of the mathematically correct answer, bounded only by
available memory.

[Decimal.Quo] and [Decimal.Pow] (for negative powers) are precision-bounded.
The quotient is computed with five extra guard digits and then rounded
half away from zero to the requested number of significant digits
([DivPrec] by default). The guard digits bound the error to about one unit
in the last requested digit; this is a pragmatic approximation, not a
provably minimal-error rounding scheme.

Decimals are immutable: every operation returns a new value and never
mutates an operand, which makes values safe to share across goroutines
without synchronization.

The cost of an operation is proportional to the digit count of the
coefficients involved, which can grow without bound under repeated exact
multiplication. Bounding coefficient growth is a caller concern.

# Errors

All methods are panic-free (except the Must variants) and pure.
Errors are returned in the following cases:

  - Invalid input. [Parse] returns [ErrEmptyInput] for empty or
    whitespace-only input and [ErrInvalidDecimal] for anything outside the
    accepted grammar. [NewFromFloat64] returns [ErrUnsupportedInput] for
    NaN and infinities.

  - Division by zero. [Decimal.Quo], [Decimal.Inv], and the reciprocal path
    of [Decimal.Pow] return [ErrDivisionByZero] instead of panicking.

  - Invalid exponent. [Decimal.PowDec] returns [ErrInvalidExponent] when
    the power has a fractional part or does not fit in an int.

The package performs no I/O, never logs, and has no transient failure
modes; callers are expected to handle errors at the boundary.

[NaN]: https://en.wikipedia.org/wiki/NaN
[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package decimal
