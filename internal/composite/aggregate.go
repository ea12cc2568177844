package composite

import "btis/internal/model"

// WeightedValue pairs an optional indicator value with its configured weight.
type WeightedValue struct {
	Value  *float64
	Weight float64
}

// WeightedMean combines the pairs into one scalar. Pairs with a nil value or
// a non-positive weight are dropped and the remaining weights are implicitly
// renormalized: a missing indicator redistributes its weight share across
// the survivors instead of pulling the score down. When nothing survives the
// result is nil, which is a valid output state, not an error.
func WeightedMean(pairs []WeightedValue) *float64 {
	var sum, totalW float64
	for _, p := range pairs {
		if p.Value == nil || p.Weight <= 0 {
			continue
		}
		sum += *p.Value * p.Weight
		totalW += p.Weight
	}
	if totalW == 0 {
		return nil
	}
	return model.Float(sum / totalW)
}
