package pricing

import (
	"testing"

	"github.com/orincore/glitzfusion/internal/domain"
	"github.com/stretchr/testify/assert"
)

func vipTier() domain.PricingTier {
	return domain.PricingTier{
		Category:   domain.TierVIP,
		BasePrice:  2500,
		MaxTickets: 100,
	}
}

func steppedConfig() domain.DynamicPricingConfig {
	return domain.DynamicPricingConfig{
		Enabled:                 true,
		ThresholdPercentage:     80,
		PriceIncreasePercentage: 20,
	}
}

func TestEvaluateTierPrice_DisabledReturnsBase(t *testing.T) {
	cfg := steppedConfig()
	cfg.Enabled = false

	price := EvaluateTierPrice(vipTier(), cfg, 99)

	assert.Equal(t, 2500, price)
}

func TestEvaluateTierPrice_BelowThresholdReturnsBase(t *testing.T) {
	price := EvaluateTierPrice(vipTier(), steppedConfig(), 79)

	assert.Equal(t, 2500, price)
}

func TestEvaluateTierPrice_AtThresholdStepsUp(t *testing.T) {
	price := EvaluateTierPrice(vipTier(), steppedConfig(), 80)

	assert.Equal(t, 3000, price)
}

func TestEvaluateTierPrice_RoundsSteppedPrice(t *testing.T) {
	tier := vipTier()
	tier.BasePrice = 999

	cfg := steppedConfig()
	cfg.PriceIncreasePercentage = 15

	// 999 * 1.15 = 1148.85 -> 1149
	price := EvaluateTierPrice(tier, cfg, 100)

	assert.Equal(t, 1149, price)
}

func TestEvaluateTierPrice_NeverBelowBase(t *testing.T) {
	tier := vipTier()
	cfg := steppedConfig()

	for booked := 0; booked <= tier.MaxTickets; booked++ {
		price := EvaluateTierPrice(tier, cfg, booked)
		assert.GreaterOrEqual(t, price, tier.BasePrice)
	}
}

func TestEvaluateTierPrice_Deterministic(t *testing.T) {
	tier := vipTier()
	cfg := steppedConfig()

	first := EvaluateTierPrice(tier, cfg, 85)
	second := EvaluateTierPrice(tier, cfg, 85)

	assert.Equal(t, first, second)
}

func TestEvaluateTierPrice_NoRatchetOnOccupancyDrop(t *testing.T) {
	tier := vipTier()
	cfg := steppedConfig()

	stepped := EvaluateTierPrice(tier, cfg, 90)
	dropped := EvaluateTierPrice(tier, cfg, 50)

	assert.Equal(t, 3000, stepped)
	assert.Equal(t, 2500, dropped)
}

func TestQuote_RejectsZeroCapacity(t *testing.T) {
	tier := vipTier()
	tier.MaxTickets = 0

	_, err := New().Quote(tier, steppedConfig(), 10)

	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestQuote_RejectsThresholdOutOfRange(t *testing.T) {
	cfg := steppedConfig()
	cfg.ThresholdPercentage = 101

	_, err := New().Quote(vipTier(), cfg, 10)

	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestQuote_RejectsIncreaseOutOfRange(t *testing.T) {
	cfg := steppedConfig()
	cfg.PriceIncreasePercentage = 201

	_, err := New().Quote(vipTier(), cfg, 10)

	assert.ErrorIs(t, err, ErrInvalidIncrease)
}

func TestQuote_RejectsNegativeBookings(t *testing.T) {
	_, err := New().Quote(vipTier(), steppedConfig(), -1)

	assert.ErrorIs(t, err, ErrNegativeBookings)
}

func TestQuote_DisabledConfigSkipsRangeChecks(t *testing.T) {
	cfg := domain.DynamicPricingConfig{Enabled: false}

	price, err := New().Quote(vipTier(), cfg, 10)

	assert.NoError(t, err)
	assert.Equal(t, 2500, price)
}

func TestValidateTier_UnknownCategory(t *testing.T) {
	tier := vipTier()
	tier.Category = "platinum"

	assert.ErrorIs(t, ValidateTier(tier), ErrUnknownTierCategory)
}
