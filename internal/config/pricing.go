package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PricingConfig carries the billing rules the pricing engine and the
// presentation layer read: the tax rate, the discount options offered in
// the rental form, and the duration buckets some form revisions use in
// place of an exact day count.
type PricingConfig struct {
	// TaxRate is a fraction, e.g. 0.15 for 15%.
	TaxRate float64 `mapstructure:"taxRate"`
	// DiscountOptions are the percentages offered by the rental form.
	DiscountOptions []float64 `mapstructure:"discountOptions"`
	// DurationBuckets map a form label to a representative day count
	// (the bucket's upper bound).
	DurationBuckets []DurationBucket `mapstructure:"durationBuckets"`
}

type DurationBucket struct {
	Label   string `mapstructure:"label"`
	MinDays int    `mapstructure:"minDays"`
	MaxDays int    `mapstructure:"maxDays"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TaxRate:         0.15,
		DiscountOptions: []float64{0, 5, 10, 15},
		DurationBuckets: []DurationBucket{
			{Label: "1-3", MinDays: 1, MaxDays: 3},
			{Label: "4-7", MinDays: 4, MaxDays: 7},
			{Label: "8-14", MinDays: 8, MaxDays: 14},
			{Label: "15-30", MinDays: 15, MaxDays: 30},
			{Label: "31-90", MinDays: 31, MaxDays: 90},
		},
	}
}

// TaxBasisPoints returns the tax rate as basis points of the taxable
// amount, e.g. 0.15 -> 1500. The pricing engine works on an integer cent
// grid and never touches the raw float.
func (c PricingConfig) TaxBasisPoints() int64 {
	return int64(math.Round(c.TaxRate * 10000))
}

// DaysForBucket resolves a duration-bucket label to its representative
// day count (the bucket's upper bound, by convention).
func (c PricingConfig) DaysForBucket(label string) (int, error) {
	label = strings.TrimSpace(label)
	for _, b := range c.DurationBuckets {
		if strings.EqualFold(b.Label, label) {
			return b.MaxDays, nil
		}
	}
	return 0, fmt.Errorf("unknown duration bucket %q", label)
}

type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

// NewPricingConfigHolder loads pricing.yml if present, falling back to
// the coded defaults, and hot-reloads edits so rate changes do not need
// an application restart.
func NewPricingConfigHolder() (*PricingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/rims")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPricingConfig()
	v.SetDefault("pricing.taxRate", defaults.TaxRate)
	v.SetDefault("pricing.discountOptions", defaults.DiscountOptions)
	v.SetDefault("pricing.durationBuckets", defaults.DurationBuckets)

	haveFile := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		haveFile = false
	}

	var cfg PricingConfig
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}
	if err := validatePricingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)

	if haveFile {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			var updated PricingConfig
			if err := v.UnmarshalKey("pricing", &updated); err != nil {
				log.Printf("[pricing-config] reload failed: %v", err)
				return
			}
			if err := validatePricingConfig(updated); err != nil {
				log.Printf("[pricing-config] invalid config ignored: %v", err)
				return
			}
			holder.current.Store(updated)
			log.Printf("[pricing-config] reloaded from %s", e.Name)
		})
	}

	return holder, nil
}

// NewStaticPricingConfigHolder wraps a fixed config with no file
// watching. Embedders and tests use it to pin the rules.
func NewStaticPricingConfigHolder(cfg PricingConfig) *PricingConfigHolder {
	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PricingConfigHolder) Get() PricingConfig {
	return h.current.Load().(PricingConfig)
}

func validatePricingConfig(cfg PricingConfig) error {
	if cfg.TaxRate < 0 || cfg.TaxRate > 1 {
		return errors.New("pricing.taxRate must be within [0,1]")
	}
	if len(cfg.DurationBuckets) == 0 {
		return errors.New("pricing.durationBuckets cannot be empty")
	}
	for _, b := range cfg.DurationBuckets {
		if b.MaxDays < b.MinDays || b.MinDays < 0 {
			return fmt.Errorf("pricing bucket %q has an invalid day range", b.Label)
		}
	}
	return nil
}
