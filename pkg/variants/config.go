package variants

import (
	"github.com/alexisbeaulieu97/classy/pkg/classes"
	"github.com/alexisbeaulieu97/classy/pkg/logging"
)

// Config tunes how a definition merges its resolved fragments.
type Config struct {
	// MergeConflicting toggles conflict-aware merging. Nil means enabled.
	MergeConflicting *bool
	// Resolver overrides the conflict resolver used when merging is
	// enabled. Nil means the shared classes.Default() handle.
	Resolver classes.Resolver
	// Logger, when set, receives debug traces of each resolution.
	Logger *logging.Logger
}

// resolvedConfig is Config with defaults applied at build time.
type resolvedConfig struct {
	mergeConflicting bool
	resolver         classes.Resolver
	logger           *logging.Logger
}

func resolveConfig(cfg *Config) resolvedConfig {
	resolved := resolvedConfig{mergeConflicting: true}
	if cfg == nil {
		return resolved
	}

	if cfg.MergeConflicting != nil {
		resolved.mergeConflicting = *cfg.MergeConflicting
	}
	resolved.resolver = cfg.Resolver
	resolved.logger = cfg.Logger
	return resolved
}

// merge joins fragments according to the configured mode. The shared
// resolver is only touched when conflict merging is enabled, so plain-join
// definitions never initialize it.
func (c resolvedConfig) merge(fragments ...any) string {
	if !c.mergeConflicting {
		return classes.Join(fragments...)
	}

	resolver := c.resolver
	if resolver == nil {
		resolver = classes.Default()
	}
	return classes.Merge(resolver, fragments...)
}
