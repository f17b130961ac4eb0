package mapping

import (
	"fmt"

	"record-flattener/internal/diagnostic"
	"record-flattener/internal/schema"
)

// Validate checks a configuration for problems that must be fixed before
// any input is read. It expects defaults to have been applied.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.Add(diagnostic.Errorf("config_is_nil", "configuration is nil"))
		return res
	}

	if cfg.Version != CurrentVersion {
		res.Add(diagnostic.Errorf("unsupported_version",
			"unsupported config version %q (want %q)", cfg.Version, CurrentVersion).At("version"))
	}

	switch cfg.Mode {
	case schema.ModeUser:
		if _, err := schema.FromUser(cfg.Columns); err != nil {
			res.Add(diagnostic.Errorf("no_columns", "%v", err).At("columns"))
		}
	case schema.ModeFixed, schema.ModeAuto:
		if !cfg.Columns.IsEmpty() {
			res.Add(diagnostic.Warningf("columns_ignored", "columns are ignored in %s mode", cfg.Mode).At("columns"))
		}
	default:
		res.Add(diagnostic.Errorf("unknown_mode", "unknown mode %d", int(cfg.Mode)).At("mode"))
	}

	if cfg.Workers < 0 {
		res.Add(diagnostic.Errorf("invalid_workers", "workers must be positive, got %d", cfg.Workers).At("workers"))
	}

	validateRules(res, cfg)

	return res
}

func validateRules(res *diagnostic.Diagnostics, cfg *Config) {
	seen := map[string]struct{}{}

	var known schema.Schema

	checkColumns := false

	switch cfg.Mode {
	case schema.ModeFixed:
		known, checkColumns = schema.Fixed(), true
	case schema.ModeUser:
		if s, err := schema.FromUser(cfg.Columns); err == nil {
			known, checkColumns = s, true
		}
	}

	for i, def := range cfg.Rules {
		field := fmt.Sprintf("rules[%d]", i)

		if def.Column == "" {
			res.Add(diagnostic.Errorf("missing_rule_column", "rule must name the column it derives").At(field))
			continue
		}

		if _, dup := seen[def.Column]; dup {
			res.Add(diagnostic.Errorf("duplicate_rule", "duplicate rule for column %q", def.Column).At(field))
			continue
		}

		seen[def.Column] = struct{}{}

		if !def.Kind.IsValid() {
			res.Add(diagnostic.Errorf("invalid_rule_kind",
				"invalid rule kind %q (want %s or %s)", def.Kind, RulePrefixScan, RuleStripLabel).At(field))

			continue
		}

		if def.Prefix == "" {
			res.Add(diagnostic.Errorf("missing_rule_prefix", "%s rule needs a prefix", def.Kind).At(field))
		}

		if checkColumns {
			if _, ok := known.Index(def.Column); !ok {
				res.Add(diagnostic.Warningf("rule_column_unused", "rule column %q is not in the schema", def.Column).At(field))
			}
		}
	}
}
