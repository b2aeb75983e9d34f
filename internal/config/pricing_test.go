package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPricingConfig(t *testing.T) {
	cfg := DefaultPricingConfig()

	assert.Equal(t, 0.15, cfg.TaxRate)
	assert.Equal(t, int64(1500), cfg.TaxBasisPoints())
	assert.Len(t, cfg.DurationBuckets, 5)
	require.NoError(t, validatePricingConfig(cfg))
}

func TestDaysForBucketUpperBound(t *testing.T) {
	cfg := DefaultPricingConfig()

	cases := map[string]int{
		"1-3":   3,
		"4-7":   7,
		"8-14":  14,
		"15-30": 30,
		"31-90": 90,
	}
	for label, want := range cases {
		got, err := cfg.DaysForBucket(label)
		require.NoError(t, err)
		assert.Equal(t, want, got, label)
	}

	_, err := cfg.DaysForBucket("91-180")
	assert.Error(t, err)
}

func TestValidatePricingConfig(t *testing.T) {
	bad := DefaultPricingConfig()
	bad.TaxRate = 1.5
	assert.Error(t, validatePricingConfig(bad))

	bad = DefaultPricingConfig()
	bad.DurationBuckets = nil
	assert.Error(t, validatePricingConfig(bad))

	bad = DefaultPricingConfig()
	bad.DurationBuckets[0].MaxDays = 0
	assert.Error(t, validatePricingConfig(bad))
}
