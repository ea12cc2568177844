package calculator

import (
	"math"

	"btis/internal/model"
)

// LogRangePercentile returns where the log of the most recent close sits
// between the min and max log price across the whole series, as a 0~100
// percentile. Raw price spans orders of magnitude over multi-year history,
// so the position is taken in the log domain. Non-positive closes are
// skipped; a flat log range yields 0; a series with no usable closes yields
// nil.
func LogRangePercentile(closes model.PriceSeries) *float64 {
	last := closes.Last()
	if last <= 0 {
		return nil
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, p := range closes {
		if p <= 0 {
			continue
		}
		l := math.Log(p)
		if l < lo {
			lo = l
		}
		if l > hi {
			hi = l
		}
	}
	if hi == lo {
		return model.Float(0)
	}

	pct := 100 * (math.Log(last) - lo) / (hi - lo)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return model.Float(pct)
}
