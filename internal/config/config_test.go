package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/baysidedata/parcelgraph/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parcelgraph.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeConfig(t, `
extracts:
  owners: data/owners.csv
  properties: data/properties.csv
  ownerships: data/ownerships.csv
load:
  mode: upsert
expected:
  owners: 1200
audit:
  sentinel: "INVALID ADDRESS"
  expectJointTenancy: true
  percentTolerance: 0.5
`)
	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if err := cfg.ValidateExtracts(); err != nil {
		t.Fatalf("ValidateExtracts: %v", err)
	}
	mode, err := cfg.Mode()
	if err != nil || mode != domain.ModeUpsert {
		t.Fatalf("Mode = %v, %v", mode, err)
	}

	ac := cfg.AuditConfig()
	if ac.ExpectedOwners == nil || *ac.ExpectedOwners != 1200 {
		t.Fatalf("ExpectedOwners = %#v", ac.ExpectedOwners)
	}
	if ac.ExpectedProperties != nil {
		t.Fatal("unset expectation should stay nil")
	}
	if !ac.ExpectJointTenancy || ac.PercentTolerance != 0.5 {
		t.Fatalf("audit knobs: %+v", ac)
	}
}

func TestRead_DefaultModeIsReject(t *testing.T) {
	path := writeConfig(t, "extracts:\n  owners: a\n  properties: b\n  ownerships: c\n")
	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	mode, err := cfg.Mode()
	if err != nil || mode != domain.ModeReject {
		t.Fatalf("Mode = %v, %v", mode, err)
	}
}

func TestRead_BadMode(t *testing.T) {
	path := writeConfig(t, "load:\n  mode: replace\n")
	if _, err := Read(path); err == nil {
		t.Fatal("unknown mode should fail")
	}
}

func TestValidateExtracts_Missing(t *testing.T) {
	path := writeConfig(t, "extracts:\n  owners: a\n")
	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if err := cfg.ValidateExtracts(); err == nil {
		t.Fatal("missing extract paths should fail validation")
	}
}
