// Package strength maps an ELO-like rating to search parameters.
package strength

// Params controls how strongly the engine plays one decision.
type Params struct {
	// Depth is the fixed search depth in plies. Always at least 1.
	Depth int

	// BlunderProbability is the chance, in [0,1], that the engine discards
	// the best move and plays a shallowly-chosen alternative instead.
	BlunderProbability float64
}

// Band is one row of the strength table. Min is inclusive; the band extends
// to the next band's Min. The last band is unbounded above.
type Band struct {
	Min    int
	Params Params
}

// bands must stay sorted ascending by Min. Depth never decreases and
// BlunderProbability never increases as rating climbs.
var bands = []Band{
	{Min: 0, Params: Params{Depth: 1, BlunderProbability: 0.70}},
	{Min: 900, Params: Params{Depth: 2, BlunderProbability: 0.50}},
	{Min: 1100, Params: Params{Depth: 2, BlunderProbability: 0.35}},
	{Min: 1400, Params: Params{Depth: 3, BlunderProbability: 0.20}},
	{Min: 1700, Params: Params{Depth: 4, BlunderProbability: 0.12}},
	{Min: 2000, Params: Params{Depth: 5, BlunderProbability: 0.06}},
	{Min: 2300, Params: Params{Depth: 6, BlunderProbability: 0.02}},
}

// ForElo returns the search parameters for an ELO-like rating. The function
// is total: ratings below the lowest band or above the highest clamp to the
// nearest band, so any integer is a valid input.
func ForElo(elo int) Params {
	for i := len(bands) - 1; i > 0; i-- {
		if elo >= bands[i].Min {
			return bands[i].Params
		}
	}
	return bands[0].Params
}

// Bands returns a copy of the strength table, weakest band first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}
