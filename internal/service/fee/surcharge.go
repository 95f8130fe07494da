package fee

import (
	"github.com/shopspring/decimal"
	"samecity/internal/entities"
)

// Surcharge evaluates a tiered rule for metric. Stairs below the metric
// contribute their full length, the stair containing it contributes the
// part up to the metric, and the tail adds per step above its threshold.
// Every partial step is charged as a whole one. The result is not rounded.
func Surcharge(rule entities.TieredRule, metric decimal.Decimal) decimal.Decimal {
	if metric.LessThanOrEqual(rule.First) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, s := range rule.Stairs {
		switch {
		case metric.GreaterThanOrEqual(s.End):
			total = total.Add(steps(s.End.Sub(s.Start), s.Step).Mul(s.Amount))
		case metric.GreaterThan(s.Start):
			total = total.Add(steps(metric.Sub(s.Start), s.Step).Mul(s.Amount))
		}
	}

	if metric.GreaterThan(rule.Last.Threshold) {
		total = total.Add(steps(metric.Sub(rule.Last.Threshold), rule.Last.Step).Mul(rule.Last.Amount))
	}

	return total
}

func steps(length, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() || !length.IsPositive() {
		return decimal.Zero
	}
	return length.Div(step).Ceil()
}
