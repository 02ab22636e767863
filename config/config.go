package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DefaultFile is the config filename looked up in the working
// directory when no --config flag is given.
const DefaultFile = ".jscheck.hcl"

// DefaultTarget preserves the original checker's fixed-filename
// convenience: with no argument and no config, scan script.js.
const DefaultTarget = "script.js"

// DefaultMaxReport is how many issues the text reporter prints before
// truncating with an "... and N more issues" line.
const DefaultMaxReport = 20

// Config is the optional run configuration, decoded from HCL:
//
//	target = "app.js"
//	max_report = 50
//	disabled_rules = ["no_trailing_whitespace"]
type Config struct {
	Target        string   `hcl:"target,optional"`
	MaxReport     int      `hcl:"max_report,optional"`
	DisabledRules []string `hcl:"disabled_rules,optional"`
}

func Default() *Config {
	return &Config{
		Target:    DefaultTarget,
		MaxReport: DefaultMaxReport,
	}
}

// Load reads HCL configuration from path. A missing file is not an
// error unless explicit is set (the user named the file on the command
// line); it just yields the defaults.
func Load(path string, explicit bool) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	if cfg.MaxReport <= 0 {
		cfg.MaxReport = DefaultMaxReport
	}
	return &cfg, nil
}

// RuleEnabled reports whether a rule name is absent from
// disabled_rules.
func (c *Config) RuleEnabled(rule string) bool {
	for _, r := range c.DisabledRules {
		if r == rule {
			return false
		}
	}
	return true
}
