package calculator

import "btis/internal/model"

// RSI computes the Wilder-smoothed RSI over the given period and returns the
// most recent value. Requires at least period+1 closes; returns nil when the
// series is too short, never a placeholder number. A zero average loss maps
// to RSI 100 (infinite RS).
func RSI(closes model.PriceSeries, period int) *float64 {
	if period <= 0 || len(closes) < period+1 {
		return nil
	}

	// Seed average gain/loss over the first `period` changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing for the remaining closes. The recurrence is
	// path-dependent, so the whole window must be walked even though only
	// the final value is reported.
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return model.Float(100.0)
	}
	rs := avgGain / avgLoss
	return model.Float(100.0 - 100.0/(1.0+rs))
}
