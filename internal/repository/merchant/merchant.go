package merchant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"samecity/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetConfig(ctx context.Context, merID int64) (*entities.MerchantConfig, error) {
	query := `
		SELECT mer_id, fee_enabled, min_delivery_amount::text, free_shipping_amount::text,
			base_shipping_fee::text, premium_enabled, distance_premium_config,
			weight_premium_config, courier_claim_enabled, updated_at
		FROM merchant_delivery_configs
		WHERE mer_id = $1`

	var model ConfigDB
	err := r.querier.QueryRow(ctx, query, merID).Scan(
		&model.MerID,
		&model.FeeEnabled,
		&model.MinDeliveryAmount,
		&model.FreeShippingAmount,
		&model.BaseShippingFee,
		&model.PremiumEnabled,
		&model.DistancePremium,
		&model.WeightPremium,
		&model.CourierClaimEnabled,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMerchantConfigNotFound
		}
		return nil, fmt.Errorf("unexpected merchant repository getconfig error: %w", err)
	}

	cfg, err := ToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("unexpected merchant repository getconfig error: %w", err)
	}
	return cfg, nil
}

// SaveFeeConfig upserts the fee columns and leaves courier_claim_enabled as is.
func (r *Repository) SaveFeeConfig(ctx context.Context, merID int64, enabled bool, cfg entities.FeeConfig) error {
	model, err := FromDomainFee(merID, enabled, cfg)
	if err != nil {
		return fmt.Errorf("unexpected merchant repository savefeeconfig error: %w", err)
	}

	query := `
		INSERT INTO merchant_delivery_configs (
			mer_id, fee_enabled, min_delivery_amount, free_shipping_amount, base_shipping_fee,
			premium_enabled, distance_premium_config, weight_premium_config
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (mer_id) DO UPDATE SET
			fee_enabled             = EXCLUDED.fee_enabled,
			min_delivery_amount     = EXCLUDED.min_delivery_amount,
			free_shipping_amount    = EXCLUDED.free_shipping_amount,
			base_shipping_fee       = EXCLUDED.base_shipping_fee,
			premium_enabled         = EXCLUDED.premium_enabled,
			distance_premium_config = EXCLUDED.distance_premium_config,
			weight_premium_config   = EXCLUDED.weight_premium_config,
			updated_at              = NOW()`

	_, err = r.querier.Exec(ctx, query,
		model.MerID,
		model.FeeEnabled,
		model.MinDeliveryAmount,
		model.FreeShippingAmount,
		model.BaseShippingFee,
		model.PremiumEnabled,
		model.DistancePremium,
		model.WeightPremium,
	)
	if err != nil {
		return fmt.Errorf("unexpected merchant repository savefeeconfig error: %w", err)
	}
	return nil
}

func (r *Repository) SetCourierClaim(ctx context.Context, merID int64, enabled bool) error {
	query := `
		INSERT INTO merchant_delivery_configs (mer_id, courier_claim_enabled)
		VALUES ($1, $2)
		ON CONFLICT (mer_id) DO UPDATE SET
			courier_claim_enabled = EXCLUDED.courier_claim_enabled,
			updated_at            = NOW()`

	if _, err := r.querier.Exec(ctx, query, merID, enabled); err != nil {
		return fmt.Errorf("unexpected merchant repository setcourierclaim error: %w", err)
	}
	return nil
}
