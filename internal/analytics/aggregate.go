// Package analytics computes rollups, period deltas, and trend
// extrapolations over stored metric facts.
package analytics

// MetricRow is one metric fact restricted to the fields the aggregation
// engine reads. Nil means the source did not report the value.
type MetricRow struct {
	Clicks      *int
	Impressions *int
	CTR         *float64
	Position    *float64
}

// Rollup is the aggregate over a set of metric facts. AvgPosition and
// AvgCTR are nil, not 0, when no fact carries the value.
type Rollup struct {
	Clicks      int64    `json:"clicks"`
	Impressions int64    `json:"impressions"`
	AvgPosition *float64 `json:"avgPosition"`
	AvgCTR      *float64 `json:"avgCtr"`
}

// Aggregate sums clicks and impressions (nil counts as 0) and averages
// position and CTR over the facts that carry them. Position facts with a
// value of 0 or less are excluded from the average.
func Aggregate(rows []MetricRow) Rollup {
	var agg Rollup
	var posSum, ctrSum float64
	var posN, ctrN int

	for _, row := range rows {
		if row.Clicks != nil {
			agg.Clicks += int64(*row.Clicks)
		}
		if row.Impressions != nil {
			agg.Impressions += int64(*row.Impressions)
		}
		if row.Position != nil && *row.Position > 0 {
			posSum += *row.Position
			posN++
		}
		if row.CTR != nil {
			ctrSum += *row.CTR
			ctrN++
		}
	}

	if posN > 0 {
		avg := posSum / float64(posN)
		agg.AvgPosition = &avg
	}
	if ctrN > 0 {
		avg := ctrSum / float64(ctrN)
		agg.AvgCTR = &avg
	}
	return agg
}

// PercentChange returns (current-previous)/previous*100, or nil when the
// change is undefined. A zero base is special-cased: any growth from 0
// reads as 100%, while 0 to 0 has no defined percent change. Callers
// depend on that asymmetry; do not collapse the two cases.
func PercentChange(current, previous float64) *float64 {
	if previous == 0 {
		if current > 0 {
			v := 100.0
			return &v
		}
		return nil
	}
	v := (current - previous) / previous * 100
	return &v
}

// PositionDelta returns previous - current so that a positive delta always
// means the position improved (rank moved toward 1).
func PositionDelta(previous, current float64) float64 {
	return previous - current
}
