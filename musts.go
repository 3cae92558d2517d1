package decimal

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustQuoPrec is like [Decimal.QuoPrec] but panics if computing error.
func (d Decimal) MustQuoPrec(e Decimal, prec int) Decimal {
	f, err := d.QuoPrec(e, prec)
	if err != nil {
		panic(fmt.Sprintf("MustQuoPrec(%v, %v) failed: %v", e, prec, err))
	}
	return f
}

// MustInv is like [Decimal.Inv] but panics if computing error.
func (d Decimal) MustInv() Decimal {
	f, err := d.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(power int) Decimal {
	f, err := d.Pow(power)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", power, err))
	}
	return f
}

// MustPowPrec is like [Decimal.PowPrec] but panics if computing error.
func (d Decimal) MustPowPrec(power, prec int) Decimal {
	f, err := d.PowPrec(power, prec)
	if err != nil {
		panic(fmt.Sprintf("MustPowPrec(%v, %v) failed: %v", power, prec, err))
	}
	return f
}

// MustPowDec is like [Decimal.PowDec] but panics if computing error.
func (d Decimal) MustPowDec(e Decimal, prec int) Decimal {
	f, err := d.PowDec(e, prec)
	if err != nil {
		panic(fmt.Sprintf("MustPowDec(%v, %v) failed: %v", e, prec, err))
	}
	return f
}
