// Package config holds the tunable configuration of the analysis
// pipeline. The linker's weights and acceptance floor are empirical
// constants, so they live here rather than in linking logic.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognitext/relgraph/pkg/relgraph/internalerr"
)

// Linker configures entity linking.
type Linker struct {
	// Endpoint is the base URL of the entity search/fetch API.
	Endpoint string `yaml:"endpoint"`

	// MaxCandidates caps the deduplicated candidate list per phrase.
	MaxCandidates int `yaml:"max_candidates"`

	// Floor is the minimum score an accepted match needs.
	Floor float64 `yaml:"floor"`

	// Scoring weights.
	LabelWeight         float64 `yaml:"label_weight"`
	DescriptionWeight   float64 `yaml:"description_weight"`
	HasDescriptionBonus float64 `yaml:"has_description_bonus"`
	ResonanceWeight     float64 `yaml:"resonance_weight"`
	ClassMatchWeight    float64 `yaml:"class_match_weight"`
	ClassMismatchWeight float64 `yaml:"class_mismatch_weight"`

	// ActionClasses and ObjectClasses are the canonical type-label
	// word sets for the semantic class filter: verb-phrase sourced
	// phrases expect action/event types, noun-phrase sourced phrases
	// expect object/artifact types.
	ActionClasses []string `yaml:"action_classes"`
	ObjectClasses []string `yaml:"object_classes"`

	// Cache bounds for the shared lookup cache.
	CacheSize       int `yaml:"cache_size"`
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// DefaultLinker returns the default linker configuration.
func DefaultLinker() Linker {
	return Linker{
		Endpoint:            "https://www.wikidata.org/w/api.php",
		MaxCandidates:       7,
		Floor:               10,
		LabelWeight:         10,
		DescriptionWeight:   3,
		HasDescriptionBonus: 1,
		ResonanceWeight:     15,
		ClassMatchWeight:    10,
		ClassMismatchWeight: -20,
		ActionClasses: []string{
			"occurrence", "event", "action", "activity", "process",
			"phenomenon",
		},
		ObjectClasses: []string{
			"object", "artifact", "product", "organization", "concept",
			"entity", "substance", "work",
		},
		CacheSize:       4096,
		CacheTTLSeconds: 3600,
	}
}

// LoadLinker loads a linker configuration from a YAML file, filling
// unset numeric fields with defaults.
func LoadLinker(path string) (Linker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Linker{}, err
	}

	cfg := DefaultLinker()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Linker{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Linker{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would disable
// linking entirely.
func (l Linker) Validate() error {
	if l.Endpoint == "" {
		return fmt.Errorf("%w: empty endpoint", internalerr.ErrInvalidConfig)
	}
	if l.MaxCandidates <= 0 {
		return fmt.Errorf("%w: max_candidates must be positive", internalerr.ErrInvalidConfig)
	}
	if l.CacheSize <= 0 {
		return fmt.Errorf("%w: cache_size must be positive", internalerr.ErrInvalidConfig)
	}
	return nil
}
