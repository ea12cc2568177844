package composite

import "btis/internal/model"

// Normalize maps value into a 0~100 scale over the [lo, hi] domain. A nil
// value stays nil: absence propagates, it is never replaced by an invented
// number. A flat domain (hi == lo) yields exactly 0 rather than dividing by
// zero. With clip set the result is bounded to [0,100].
func Normalize(value *float64, lo, hi float64, clip bool) *float64 {
	if value == nil {
		return nil
	}
	if hi == lo {
		return model.Float(0)
	}
	x := 100 * (*value - lo) / (hi - lo)
	if clip {
		if x < 0 {
			x = 0
		}
		if x > 100 {
			x = 100
		}
	}
	return model.Float(x)
}
