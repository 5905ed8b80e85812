package fixture

import (
	"gopkg.in/yaml.v3"

	"pddlcore/internal/errors"
)

// Manifest names the ordered pruner stages cmd/pddl-prune's --pipeline
// flag loads, e.g.:
//
//	stages:
//	  - irrelevance
//	  - unreachable-in-dtgs
//	  - deduplicate-ops
type Manifest struct {
	Stages []string `yaml:"stages"`
}

// ParseManifest decodes a YAML pipeline manifest.
func ParseManifest(src []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(src, &m); err != nil {
		return nil, errors.New(errors.ErrorPipelineBadManifest, "pipeline", err.Error()).Build()
	}
	if len(m.Stages) == 0 {
		return nil, errors.New(errors.ErrorPipelineBadManifest, "pipeline", "manifest names no pruner stages").Build()
	}
	return &m, nil
}
