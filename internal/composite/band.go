package composite

// Bands maps index score floors to operator-facing temperature labels. Used
// for logs and notifications only; the persisted artifact carries the raw
// score.
var Bands = []struct {
	MinScore float64
	Label    string
}{
	{90, "Overheated"},
	{75, "Hot"},
	{60, "Warm"},
	{40, "Neutral"},
	{25, "Cool"},
	{10, "Cold"},
}

// DefaultBand is the label for scores below every band floor.
const DefaultBand = "Frozen"

// Band maps a composite score to its temperature label. A nil score (every
// indicator absent) reads as "unknown".
func Band(score *float64) string {
	if score == nil {
		return "unknown"
	}
	for _, b := range Bands {
		if *score >= b.MinScore {
			return b.Label
		}
	}
	return DefaultBand
}
