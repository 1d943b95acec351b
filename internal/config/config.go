// Package config loads the per-run YAML configuration: extract locations,
// duplicate-key policy, expected extract sizes, and audit knobs. The graph
// connection itself comes from the environment (see platform/neo4jdb).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baysidedata/parcelgraph/internal/audit"
	"github.com/baysidedata/parcelgraph/internal/domain"
)

type Extracts struct {
	Owners     string `yaml:"owners"`
	Properties string `yaml:"properties"`
	Ownerships string `yaml:"ownerships"`
}

type Load struct {
	// Mode is reject (default) or upsert.
	Mode string `yaml:"mode"`
}

// Expected holds the caller-known extract sizes; nil means no expectation
// and the corresponding audit count is informational.
type Expected struct {
	Owners     *int64 `yaml:"owners"`
	Properties *int64 `yaml:"properties"`
	Ownerships *int64 `yaml:"ownerships"`
}

type Audit struct {
	Sentinel            string  `yaml:"sentinel"`
	ExpectJointTenancy  bool    `yaml:"expectJointTenancy"`
	ExpectMultiOwner    bool    `yaml:"expectMultiOwner"`
	PercentTolerance    float64 `yaml:"percentTolerance"`
	SuspiciousSaleBelow int64   `yaml:"suspiciousSaleBelow"`
	YearBuiltMin        int64   `yaml:"yearBuiltMin"`
	YearBuiltMax        int64   `yaml:"yearBuiltMax"`
}

type Config struct {
	Extracts Extracts `yaml:"extracts"`
	Load     Load     `yaml:"load"`
	Expected Expected `yaml:"expected"`
	Audit    Audit    `yaml:"audit"`
}

func Read(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if _, err := cfg.Mode(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// ValidateExtracts checks that all three extract paths are set; only the
// load command needs them.
func (c *Config) ValidateExtracts() error {
	for name, path := range map[string]string{
		"owners":     c.Extracts.Owners,
		"properties": c.Extracts.Properties,
		"ownerships": c.Extracts.Ownerships,
	} {
		if path == "" {
			return fmt.Errorf("config: extracts.%s is required", name)
		}
	}
	return nil
}

func (c *Config) Mode() (domain.LoadMode, error) {
	return domain.ParseLoadMode(c.Load.Mode)
}

// AuditConfig converts the YAML knobs into the battery's config.
func (c *Config) AuditConfig() audit.Config {
	return audit.Config{
		Sentinel:            c.Audit.Sentinel,
		ExpectedOwners:      c.Expected.Owners,
		ExpectedProperties:  c.Expected.Properties,
		ExpectedOwnerships:  c.Expected.Ownerships,
		ExpectJointTenancy:  c.Audit.ExpectJointTenancy,
		ExpectMultiOwner:    c.Audit.ExpectMultiOwner,
		PercentTolerance:    c.Audit.PercentTolerance,
		SuspiciousSaleBelow: c.Audit.SuspiciousSaleBelow,
		YearBuiltMin:        c.Audit.YearBuiltMin,
		YearBuiltMax:        c.Audit.YearBuiltMax,
	}
}
