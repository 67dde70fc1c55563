package valuation

// Basis selects where the reference metrics come from.
type Basis string

const (
	// BasisHistorical uses a single historical year.
	BasisHistorical Basis = "historical"

	// BasisProjected uses a single projected year.
	BasisProjected Basis = "projected"

	// BasisMixed blends one historical and one projected year.
	BasisMixed Basis = "mixed"

	// BasisAverage takes the arithmetic mean across a user-chosen set of
	// years spanning historical and projected data.
	BasisAverage Basis = "average"
)

// YearMetrics is the metrics triple for one calendar year.
type YearMetrics struct {
	Year    int
	Revenue float64
	Ebitda  float64
	Ebit    float64
}

// BasisSelection parameterizes SelectMetrics.
type BasisSelection struct {
	Basis           Basis
	HistoricalYear  int
	ProjectedYear   int
	HistoricalShare float64 // mixed basis: weight on the historical year, 0..1
	AverageYears    []int   // average basis: years drawn from either series
}

// SelectMetrics resolves the reference metrics triple from historical and
// projected per-year data. Years absent from both series contribute zero,
// consistent with the engine-wide lenient-default policy.
func SelectMetrics(sel BasisSelection, historical, projected []YearMetrics) Metrics {
	switch sel.Basis {
	case BasisProjected:
		return lookup(sel.ProjectedYear, projected, historical)
	case BasisMixed:
		share := sel.HistoricalShare
		if share < 0 {
			share = 0
		}
		if share > 1 {
			share = 1
		}
		h := lookup(sel.HistoricalYear, historical, nil)
		p := lookup(sel.ProjectedYear, projected, nil)
		return Metrics{
			Revenue: h.Revenue*share + p.Revenue*(1-share),
			Ebitda:  h.Ebitda*share + p.Ebitda*(1-share),
			Ebit:    h.Ebit*share + p.Ebit*(1-share),
		}
	case BasisAverage:
		if len(sel.AverageYears) == 0 {
			return Metrics{}
		}
		var sum Metrics
		for _, year := range sel.AverageYears {
			m := lookup(year, historical, projected)
			sum.Revenue += m.Revenue
			sum.Ebitda += m.Ebitda
			sum.Ebit += m.Ebit
		}
		n := float64(len(sel.AverageYears))
		return Metrics{Revenue: sum.Revenue / n, Ebitda: sum.Ebitda / n, Ebit: sum.Ebit / n}
	default: // BasisHistorical
		return lookup(sel.HistoricalYear, historical, projected)
	}
}

// lookup finds a year in the primary series, falling back to the secondary,
// and returns zero metrics when absent from both.
func lookup(year int, primary, secondary []YearMetrics) Metrics {
	for _, m := range primary {
		if m.Year == year {
			return Metrics{Revenue: m.Revenue, Ebitda: m.Ebitda, Ebit: m.Ebit}
		}
	}
	for _, m := range secondary {
		if m.Year == year {
			return Metrics{Revenue: m.Revenue, Ebitda: m.Ebitda, Ebit: m.Ebit}
		}
	}
	return Metrics{}
}
