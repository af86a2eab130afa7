// Package config loads optional YAML overrides for the engine's tuned
// parameters. Every parameter has a compiled-in default; files only override.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mirrorwell/insight/pkg/insight/bridge"
	"github.com/mirrorwell/insight/pkg/insight/distribution"
	"github.com/mirrorwell/insight/pkg/insight/internalerr"
	"github.com/mirrorwell/insight/pkg/insight/lexical"
)

// Stoplist is the stopword override file shape.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadWeights reads bridge scoring weights from a YAML file. Fields absent
// from the file keep their defaults.
func LoadWeights(path string) (bridge.Weights, error) {
	w := bridge.DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, err
	}
	if err := validateWeights(w); err != nil {
		return bridge.Weights{}, err
	}
	return w, nil
}

// LoadThresholds reads distribution classification thresholds from YAML.
func LoadThresholds(path string) (distribution.Thresholds, error) {
	th := distribution.DefaultThresholds()
	data, err := os.ReadFile(path)
	if err != nil {
		return th, err
	}
	if err := yaml.Unmarshal(data, &th); err != nil {
		return th, err
	}
	if err := validateThresholds(th); err != nil {
		return distribution.Thresholds{}, err
	}
	return th, nil
}

// LoadStoplist reads extra stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

func validateWeights(w bridge.Weights) error {
	if w.MinWeightThreshold < 0 || w.MinWeightThreshold > 1 {
		return fmt.Errorf("%w: min_weight_threshold %v outside [0,1]", internalerr.ErrInvalidConfig, w.MinWeightThreshold)
	}
	for name, v := range map[string]float64{
		"sequence": w.Sequence, "scale": w.Scale, "systemic": w.Systemic,
		"media": w.Media, "contrast": w.Contrast,
		"sequence_decay_exponent": w.SequenceDecayExponent,
	} {
		if v < 0 {
			return fmt.Errorf("%w: weight %s is negative", internalerr.ErrInvalidConfig, name)
		}
	}
	return nil
}

func validateThresholds(th distribution.Thresholds) error {
	for name, v := range map[string]float64{
		"powerlaw_concentration":  th.PowerlawConcentration,
		"powerlaw_skew":           th.PowerlawSkew,
		"powerlaw_gap_variance":   th.PowerlawGapVariance,
		"lognormal_skew":          th.LognormalSkew,
		"lognormal_concentration": th.LognormalConcentration,
		"lognormal_gap_variance":  th.LognormalGapVariance,
		"normal_skew":             th.NormalSkew,
		"normal_concentration":    th.NormalConcentration,
		"normal_gap_variance":     th.NormalGapVariance,
	} {
		if v < 0 {
			return fmt.Errorf("%w: threshold %s is negative", internalerr.ErrInvalidConfig, name)
		}
	}
	return nil
}

// Loader bundles the optional config file paths.
type Loader struct {
	WeightsPath    string
	ThresholdsPath string
	StoplistPath   string
}

// Components holds everything Load produces.
type Components struct {
	Weights    bridge.Weights
	Thresholds distribution.Thresholds
	Tokenizer  *lexical.Tokenizer
}

// Load reads whichever paths are set and fills the rest with defaults.
func (l Loader) Load() (Components, error) {
	c := Components{
		Weights:    bridge.DefaultWeights(),
		Thresholds: distribution.DefaultThresholds(),
		Tokenizer:  lexical.NewTokenizer(),
	}

	if l.WeightsPath != "" {
		w, err := LoadWeights(l.WeightsPath)
		if err != nil {
			return Components{}, fmt.Errorf("load weights: %w", err)
		}
		c.Weights = w
	}
	if l.ThresholdsPath != "" {
		th, err := LoadThresholds(l.ThresholdsPath)
		if err != nil {
			return Components{}, fmt.Errorf("load thresholds: %w", err)
		}
		c.Thresholds = th
	}
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return Components{}, fmt.Errorf("load stoplist: %w", err)
		}
		c.Tokenizer = lexical.NewTokenizer(sl.Terms...)
	}

	return c, nil
}
