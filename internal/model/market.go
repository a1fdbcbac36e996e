package model

// Market identifies an electricity market product a flexible asset can
// monetize. The engine treats codes as opaque lookup keys; the enumeration
// below is what the dashboard offers for selection.
type Market string

const (
	MarketDayAhead Market = "DA"
	MarketIntraday Market = "ID"
	MarketFCR      Market = "FCR"
	MarketAFRR     Market = "aFRR"
	MarketMFRR     Market = "mFRR"
)

// DefaultMarketFactor applies to any code outside the known enumeration.
// Unknown markets are priced conservatively rather than rejected.
const DefaultMarketFactor = 0.5

// marketFactors weights the flex value per market. Day-ahead is the
// reference (1.0); reserve markets monetize a smaller share of the value.
var marketFactors = map[Market]float64{
	MarketDayAhead: 1.0,
	MarketIntraday: 0.7,
	MarketFCR:      0.5,
	MarketAFRR:     0.6,
	MarketMFRR:     0.4,
}

var marketLabels = map[Market]string{
	MarketDayAhead: "Day-ahead",
	MarketIntraday: "Intraday",
	MarketFCR:      "Frequency containment reserve",
	MarketAFRR:     "Automatic frequency restoration reserve",
	MarketMFRR:     "Manual frequency restoration reserve",
}

// AllMarkets returns the selectable markets in canonical display order.
func AllMarkets() []Market {
	return []Market{MarketDayAhead, MarketIntraday, MarketFCR, MarketAFRR, MarketMFRR}
}

// Factor returns the revenue weight for the market. Codes outside the
// enumeration fall back to DefaultMarketFactor.
func (m Market) Factor() float64 {
	if f, ok := marketFactors[m]; ok {
		return f
	}
	return DefaultMarketFactor
}

// Known reports whether m is part of the fixed enumeration.
func (m Market) Known() bool {
	_, ok := marketFactors[m]
	return ok
}

// Label returns a human-readable market name for display surfaces.
// Unknown codes are labeled with the code itself.
func (m Market) Label() string {
	if l, ok := marketLabels[m]; ok {
		return l
	}
	return string(m)
}

// ParseMarkets converts raw market codes into the Market type, dropping
// duplicates while preserving selection order. Selection order is
// display-relevant (table and CSV columns follow it) but has no effect on
// the computed values.
func ParseMarkets(codes []string) []Market {
	out := make([]Market, 0, len(codes))
	seen := make(map[Market]bool, len(codes))
	for _, c := range codes {
		m := Market(c)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
