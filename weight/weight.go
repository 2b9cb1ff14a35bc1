// Package weight maps the raw attributes of a proposed road (cost, benefit,
// distance) to the single scalar weight the MST solver minimizes.
//
// Modes:
//
//	ratio    (default) weight = cost / EffectiveBenefit(benefit)
//	cost     weight = cost
//	distance weight = distance
//
// Any other mode string is rejected with ErrUnknownMode; there is no silent
// fallback to ratio.
package weight

import (
	"errors"
	"fmt"
	"strings"
)

// Mode names a weighting policy.
type Mode string

const (
	// ModeRatio minimizes cost per unit of benefit.
	ModeRatio Mode = "ratio"

	// ModeCost minimizes raw construction cost.
	ModeCost Mode = "cost"

	// ModeDistance minimizes total road length.
	ModeDistance Mode = "distance"

	// DefaultMode is used when no mode is given.
	DefaultMode = ModeRatio
)

// ZeroBenefitEpsilon replaces a zero benefit in ratio mode so zero-benefit
// proposals rank last instead of dividing by zero.
const ZeroBenefitEpsilon = 0.001

// ErrUnknownMode indicates a mode string outside Modes().
var ErrUnknownMode = errors.New("weight: unknown mode")

// Func computes a weight from raw proposal attributes.
type Func func(cost, benefit, distance float64) float64

// Modes returns the supported modes in a stable order.
func Modes() []Mode {
	return []Mode{ModeRatio, ModeCost, ModeDistance}
}

// ParseMode normalizes s (trimmed, case-insensitive) into a Mode.
// The empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultMode, nil
	}
	m := Mode(s)
	if _, err := Lookup(m); err != nil {
		return "", err
	}

	return m, nil
}

// Lookup returns the weight function for m, or ErrUnknownMode.
func Lookup(m Mode) (Func, error) {
	switch m {
	case ModeDistance:
		return byDistance, nil
	case ModeCost:
		return byCost, nil
	case ModeRatio:
		return byRatio, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
	}
}

// Compute is a one-shot Lookup followed by the call.
func Compute(m Mode, cost, benefit, distance float64) (float64, error) {
	fn, err := Lookup(m)
	if err != nil {
		return 0, err
	}

	return fn(cost, benefit, distance), nil
}

// EffectiveBenefit returns b, or ZeroBenefitEpsilon when b == 0.
func EffectiveBenefit(b float64) float64 {
	if b == 0 {
		return ZeroBenefitEpsilon
	}

	return b
}

func byDistance(_, _, distance float64) float64 { return distance }

func byCost(cost, _, _ float64) float64 { return cost }

func byRatio(cost, benefit, _ float64) float64 { return cost / EffectiveBenefit(benefit) }
