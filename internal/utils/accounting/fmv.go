package accounting

import (
	"github.com/shopspring/decimal"
)

// DefaultFMVTolerancePct is the default mismatch tolerance between the two
// declared fair-market values of a barter exchange, in percent.
var DefaultFMVTolerancePct = decimal.NewFromInt(5)

var oneHundred = decimal.NewFromInt(100)

// FMVMismatchWarning is the informational (never blocking) signal that the
// two declared fair-market values of a barter exchange disagree beyond
// tolerance. Pct expresses the delta relative to the lower declared value,
// i.e. how far the higher valuation overshoots the lower one.
type FMVMismatchWarning struct {
	Delta decimal.Decimal `json:"delta"`
	Pct   decimal.Decimal `json:"pct"`
}

// CheckFMVMismatch compares the two declared values against tolerancePct and
// returns a warning when |received-provided| / max(received, provided)
// exceeds it, nil otherwise. A non-positive tolerancePct falls back to the
// default.
func CheckFMVMismatch(fmvReceived, fmvProvided, tolerancePct decimal.Decimal) *FMVMismatchWarning {
	if tolerancePct.LessThanOrEqual(decimal.Zero) {
		tolerancePct = DefaultFMVTolerancePct
	}

	delta := fmvReceived.Sub(fmvProvided).Abs()
	if delta.IsZero() {
		return nil
	}

	higher := decimal.Max(fmvReceived, fmvProvided)
	lower := decimal.Min(fmvReceived, fmvProvided)
	if higher.LessThanOrEqual(decimal.Zero) || lower.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	if delta.Div(higher).Mul(oneHundred).LessThanOrEqual(tolerancePct) {
		return nil
	}

	return &FMVMismatchWarning{
		Delta: delta,
		Pct:   delta.Div(lower).Mul(oneHundred),
	}
}
