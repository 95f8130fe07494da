package fee

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"samecity/internal/entities"
)

// ValidateConfig rejects fee configs the tiered algorithm cannot price:
// negative amounts, non-positive steps, and stairs that overlap or are not
// ascending.
func ValidateConfig(cfg entities.FeeConfig) error {
	if cfg.MinDeliveryAmount.IsNegative() || cfg.FreeShippingAmount.IsNegative() || cfg.BaseShippingFee.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidFeeConfig)
	}

	if err := validateRule(cfg.DistancePremium); err != nil {
		return fmt.Errorf("%w: distance premium: %w", ErrInvalidFeeConfig, err)
	}
	if err := validateRule(cfg.WeightPremium); err != nil {
		return fmt.Errorf("%w: weight premium: %w", ErrInvalidFeeConfig, err)
	}
	return nil
}

func validateRule(rule entities.TieredRule) error {
	if rule.First.IsNegative() {
		return fmt.Errorf("first threshold %s is negative", rule.First)
	}

	bound := rule.First
	for i, s := range rule.Stairs {
		if !s.Start.LessThan(s.End) {
			return fmt.Errorf("stair %d: start %s must be below end %s", i, s.Start, s.End)
		}
		if s.Start.LessThan(bound) {
			return fmt.Errorf("stair %d: start %s overlaps previous tier ending at %s", i, s.Start, bound)
		}
		if !s.Step.IsPositive() {
			return fmt.Errorf("stair %d: step must be positive", i)
		}
		if s.Amount.IsNegative() {
			return fmt.Errorf("stair %d: amount must not be negative", i)
		}
		bound = s.End
	}

	tail := rule.Last
	if tail.Amount.IsNegative() {
		return errors.New("tail amount must not be negative")
	}
	if tail.Amount.IsZero() && tail.Step.IsZero() {
		return nil
	}
	if !tail.Step.IsPositive() {
		return errors.New("tail step must be positive")
	}
	if tail.Threshold.LessThan(bound) {
		return fmt.Errorf("tail threshold %s overlaps previous tier ending at %s", tail.Threshold, bound)
	}
	return nil
}

func isValidRequest(orderTotal, totalWeight decimal.Decimal) bool {
	return !orderTotal.IsNegative() && !totalWeight.IsNegative()
}
