package types

import "errors"

// Configuration defaults. The low-stock threshold drives both the "low"
// stock-state filter and row highlighting; they are intentionally one value.
const (
	DefaultLowStockThreshold = 10
	DefaultLocale            = "en-IN"
	DefaultCurrency          = "INR"
)

// Config validation errors.
var (
	ErrThresholdInvalid = errors.New("low stock threshold must be positive")
	ErrCurrencyInvalid  = errors.New("currency must be a three-letter ISO code")
	ErrLocaleEmpty      = errors.New("locale must not be empty")
)

// Config holds the parameters for opening a Store and rendering views.
type Config struct {
	DataDir           string `json:"data_dir" yaml:"data_dir"`
	LowStockThreshold int    `json:"low_stock_threshold" yaml:"low_stock_threshold"`
	Locale            string `json:"locale" yaml:"locale"`
	Currency          string `json:"currency" yaml:"currency"`
}

// WithDefaults returns a copy of the config with zero-valued fields replaced
// by their defaults.
func (c Config) WithDefaults() Config {
	if c.LowStockThreshold == 0 {
		c.LowStockThreshold = DefaultLowStockThreshold
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.LowStockThreshold <= 0 {
		return ErrThresholdInvalid
	}
	if len(c.Currency) != 3 {
		return ErrCurrencyInvalid
	}
	if c.Locale == "" {
		return ErrLocaleEmpty
	}
	return nil
}
