package pricing

import (
	"fmt"
	"math"

	"github.com/orincore/glitzfusion/internal/domain"
)

type Service struct{}

func New() *Service {
	return &Service{}
}

// Quote validates the tier and dynamic-pricing configuration up front
// and returns the price to quote for the next booking. Validation
// failures are hard precondition violations and propagate to the
// caller; they must never surface as NaN or infinite prices deeper in
// the flow.
func (s *Service) Quote(
	tier domain.PricingTier,
	cfg domain.DynamicPricingConfig,
	bookedCount int,
) (int, error) {
	const op = "service.pricing.Quote"

	if err := ValidateTier(tier); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	if bookedCount < 0 {
		return 0, fmt.Errorf("%s:%w", op, ErrNegativeBookings)
	}

	return EvaluateTierPrice(tier, cfg, bookedCount), nil
}

// EvaluateTierPrice is pure and idempotent: it always recomputes from
// the base price, so a quote falls back to base if occupancy later
// drops under the threshold. There is no one-way ratchet.
//
// Inputs are assumed validated (see ValidateTier, ValidateConfig).
func EvaluateTierPrice(
	tier domain.PricingTier,
	cfg domain.DynamicPricingConfig,
	bookedCount int,
) int {
	if !cfg.Enabled {
		return tier.BasePrice
	}

	occupancy := float64(bookedCount) / float64(tier.MaxTickets) * 100

	if occupancy >= float64(cfg.ThresholdPercentage) {
		factor := 1 + float64(cfg.PriceIncreasePercentage)/100
		return int(math.Round(float64(tier.BasePrice) * factor))
	}

	return tier.BasePrice
}

func ValidateTier(tier domain.PricingTier) error {
	switch tier.Category {
	case domain.TierEarlyBird, domain.TierRegular, domain.TierVIP,
		domain.TierPremium, domain.TierStudent, domain.TierGroup:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTierCategory, tier.Category)
	}

	if tier.MaxTickets <= 0 {
		return ErrInvalidCapacity
	}

	if tier.BasePrice < 0 {
		return ErrNegativeBasePrice
	}

	return nil
}

func ValidateConfig(cfg domain.DynamicPricingConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.ThresholdPercentage < 1 || cfg.ThresholdPercentage > 100 {
		return ErrInvalidThreshold
	}

	if cfg.PriceIncreasePercentage < 1 || cfg.PriceIncreasePercentage > 200 {
		return ErrInvalidIncrease
	}

	return nil
}
