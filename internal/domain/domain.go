// Package domain holds the graph vocabulary shared by ingestion, storage
// and audit: entity kinds, load modes, ownership types, and the field maps
// that bind extract columns to graph attributes.
package domain

import (
	"fmt"
	"strings"
)

// Kind names a vertex label or edge relationship type in the graph.
type Kind string

const (
	KindOwner    Kind = "Owner"
	KindProperty Kind = "Property"
	// KindOwnership is the Owner->Property relationship type.
	KindOwnership Kind = "OWNS"
)

// Ownership types carried on the ownershipType edge attribute. The set is
// open; these are the values the audit battery knows about.
const (
	OwnershipSole            = "SOLE"
	OwnershipJointTenancy    = "JOINT_TENANCY"
	OwnershipTenancyInCommon = "TENANCY_IN_COMMON"
	OwnershipTrust           = "TRUST"
	OwnershipOther           = "OTHER"
)

// OwnerIDPattern is the required owner-identifier format: ENT_ followed by
// a fixed-width six-digit sequence.
const OwnerIDPattern = `ENT_[0-9]{6}`

// Provenance attribute names stamped onto every loaded entity.
const (
	AttrSourceSystem = "sourceSystem"
	AttrImportDate   = "importDate"
	AttrLoadID       = "loadId"
)

// LoadMode selects what happens when a record's key already exists.
type LoadMode string

const (
	// ModeReject treats an existing key as a schema violation for the
	// offending record and leaves the existing vertex untouched.
	ModeReject LoadMode = "reject"
	// ModeUpsert merges on the key and overwrites attributes.
	ModeUpsert LoadMode = "upsert"
)

func ParseLoadMode(s string) (LoadMode, error) {
	switch LoadMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeReject, "":
		return ModeReject, nil
	case ModeUpsert:
		return ModeUpsert, nil
	}
	return "", fmt.Errorf("unknown load mode %q (want reject or upsert)", s)
}

// EdgeSpec is one resolved-by-key directed edge to be created.
type EdgeSpec struct {
	FromKey string
	ToKey   string
	Props   map[string]any
}
