package merchant

import (
	"encoding/json"
	"fmt"

	"samecity/internal/entities"
	"samecity/internal/repository"
)

func ToDomain(c *ConfigDB) (*entities.MerchantConfig, error) {
	if c == nil {
		return nil, nil
	}

	minAmount, err := repository.ParseDecimal(c.MinDeliveryAmount)
	if err != nil {
		return nil, err
	}
	freeAmount, err := repository.ParseDecimal(c.FreeShippingAmount)
	if err != nil {
		return nil, err
	}
	baseFee, err := repository.ParseDecimal(c.BaseShippingFee)
	if err != nil {
		return nil, err
	}

	distance, err := decodeRule(c.DistancePremium)
	if err != nil {
		return nil, fmt.Errorf("decode distance premium: %w", err)
	}
	weight, err := decodeRule(c.WeightPremium)
	if err != nil {
		return nil, fmt.Errorf("decode weight premium: %w", err)
	}

	return &entities.MerchantConfig{
		MerID:      c.MerID,
		FeeEnabled: c.FeeEnabled,
		Fee: entities.FeeConfig{
			MinDeliveryAmount:  minAmount,
			FreeShippingAmount: freeAmount,
			BaseShippingFee:    baseFee,
			PremiumEnabled:     c.PremiumEnabled,
			DistancePremium:    distance,
			WeightPremium:      weight,
		},
		CourierClaimEnabled: c.CourierClaimEnabled,
		UpdatedAt:           c.UpdatedAt,
	}, nil
}

func FromDomainFee(merID int64, enabled bool, cfg entities.FeeConfig) (*ConfigDB, error) {
	distance, err := encodeRule(cfg.DistancePremium)
	if err != nil {
		return nil, fmt.Errorf("encode distance premium: %w", err)
	}
	weight, err := encodeRule(cfg.WeightPremium)
	if err != nil {
		return nil, fmt.Errorf("encode weight premium: %w", err)
	}

	return &ConfigDB{
		MerID:              merID,
		FeeEnabled:         enabled,
		MinDeliveryAmount:  cfg.MinDeliveryAmount.String(),
		FreeShippingAmount: cfg.FreeShippingAmount.String(),
		BaseShippingFee:    cfg.BaseShippingFee.String(),
		PremiumEnabled:     cfg.PremiumEnabled,
		DistancePremium:    distance,
		WeightPremium:      weight,
	}, nil
}

func encodeRule(rule entities.TieredRule) ([]byte, error) {
	if rule.IsZero() {
		return []byte("{}"), nil
	}

	model := tieredRuleDB{
		First:  rule.First.String(),
		Stairs: make([]stairDB, 0, len(rule.Stairs)),
		Last: &tailDB{
			Threshold: rule.Last.Threshold.String(),
			Step:      rule.Last.Step.String(),
			Amount:    rule.Last.Amount.String(),
		},
	}
	for _, s := range rule.Stairs {
		model.Stairs = append(model.Stairs, stairDB{
			Start:  s.Start.String(),
			End:    s.End.String(),
			Step:   s.Step.String(),
			Amount: s.Amount.String(),
		})
	}
	return json.Marshal(model)
}

func decodeRule(data []byte) (entities.TieredRule, error) {
	var rule entities.TieredRule
	if len(data) == 0 {
		return rule, nil
	}

	var model tieredRuleDB
	if err := json.Unmarshal(data, &model); err != nil {
		return rule, err
	}

	var err error
	if rule.First, err = repository.ParseDecimal(model.First); err != nil {
		return rule, err
	}

	for _, s := range model.Stairs {
		var stair entities.Stair
		if stair.Start, err = repository.ParseDecimal(s.Start); err != nil {
			return rule, err
		}
		if stair.End, err = repository.ParseDecimal(s.End); err != nil {
			return rule, err
		}
		if stair.Step, err = repository.ParseDecimal(s.Step); err != nil {
			return rule, err
		}
		if stair.Amount, err = repository.ParseDecimal(s.Amount); err != nil {
			return rule, err
		}
		rule.Stairs = append(rule.Stairs, stair)
	}

	if model.Last != nil {
		if rule.Last.Threshold, err = repository.ParseDecimal(model.Last.Threshold); err != nil {
			return rule, err
		}
		if rule.Last.Step, err = repository.ParseDecimal(model.Last.Step); err != nil {
			return rule, err
		}
		if rule.Last.Amount, err = repository.ParseDecimal(model.Last.Amount); err != nil {
			return rule, err
		}
	}
	return rule, nil
}
