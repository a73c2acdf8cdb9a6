package gen

import "fmt"

// EmissionStrategy selects how generated constants receive their values.
type EmissionStrategy int

const (
	// StrategyPlain assigns each constant directly from a string literal.
	StrategyPlain EmissionStrategy = iota

	// StrategyStaticInit declares the constants and assigns them inside a
	// static initializer block, which keeps javac from inlining the values
	// into consuming classes.
	StrategyStaticInit
)

// String returns the configuration spelling of the strategy.
func (s EmissionStrategy) String() string {
	switch s {
	case StrategyPlain:
		return "plain"
	case StrategyStaticInit:
		return "static-init"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a configuration value to an EmissionStrategy.
func ParseStrategy(s string) (EmissionStrategy, error) {
	switch s {
	case "plain":
		return StrategyPlain, nil
	case "static-init":
		return StrategyStaticInit, nil
	default:
		return StrategyPlain, fmt.Errorf("unknown emission strategy %q (want plain or static-init)", s)
	}
}
