package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/smallbiznis/rims/internal/config"
)

// ErrInvalidInput rejects negative rates or day counts and discounts
// outside [0,100].
var ErrInvalidInput = errors.New("invalid_input")

// Quote is the result of one billing computation. All amounts are cents.
type Quote struct {
	RatePerDay      int64
	Days            int
	DiscountPercent float64

	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// Engine turns a (rate, duration, discount) selection into a quote.
// It holds no state besides the pricing-rules holder and is safe for
// concurrent use.
type Engine struct {
	rules *config.PricingConfigHolder
}

func NewEngine(rules *config.PricingConfigHolder) *Engine {
	return &Engine{rules: rules}
}

// Quote computes subtotal, tax and total for the given selection.
//
// The arithmetic stays on an integer cent grid: the discounted subtotal
// and the tax are each rounded half-up to the nearest cent, and the
// total is the exact sum of the two. Given identical inputs and tax
// rate the result is deterministic, and total == subtotal + tax always
// holds at cent precision.
//
// days == 0 is a valid input and yields an all-zero quote; warning the
// operator about it is the form's business, not the engine's.
func (e *Engine) Quote(ratePerDayCents int64, days int, discountPercent float64) (Quote, error) {
	if ratePerDayCents < 0 {
		return Quote{}, fmt.Errorf("%w: negative rate per day", ErrInvalidInput)
	}
	if days < 0 {
		return Quote{}, fmt.Errorf("%w: negative day count", ErrInvalidInput)
	}
	if math.IsNaN(discountPercent) || discountPercent < 0 || discountPercent > 100 {
		return Quote{}, fmt.Errorf("%w: discount must be within [0,100]", ErrInvalidInput)
	}

	discountBps := int64(math.Round(discountPercent * 100))
	taxBps := e.rules.Get().TaxBasisPoints()

	base := ratePerDayCents * int64(days)
	subtotal := roundHalfUp(base*(10000-discountBps), 10000)
	tax := roundHalfUp(subtotal*taxBps, 10000)

	return Quote{
		RatePerDay:      ratePerDayCents,
		Days:            days,
		DiscountPercent: discountPercent,
		SubtotalCents:   subtotal,
		TaxCents:        tax,
		TotalCents:      subtotal + tax,
	}, nil
}

// roundHalfUp divides num by den rounding half-cent values away from
// zero, so 12.005 lands on 12.01 rather than whichever side the binary
// float representation happens to fall. num is never negative here.
func roundHalfUp(num, den int64) int64 {
	return (num + den/2) / den
}
