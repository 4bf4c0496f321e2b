// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package workflow

// Parameters is the fully resolved, internally consistent value set consumed
// by the script template. Every placeholder in the template corresponds to a
// field here, so a missing substitution cannot survive compilation of a
// complete template against this type. Parameters are computed once per
// resolution and not mutated afterwards.
type Parameters struct {
	// RunID namespaces all transient local and remote paths for one
	// invocation so concurrent runs never collide.
	RunID string

	ImageName string
	ProjectID string
	Zone      string

	// Family tag applied to the created image.
	Family string

	MachineType        string
	DiskSizeGB         int
	ShutdownTimerInSec int

	// BucketName is the storage bucket with any gs:// prefix stripped.
	BucketName string

	// Derived paths, each scoped under RunID.
	CustomSourcesPath string
	LogDir            string
	GCSLogDir         string

	// Sources in upload order: the two fixed entries followed by extras.
	Sources []Source

	// Index-aligned single-quoted shell array literals encoding Sources.
	SourcesKeyArray   string
	SourcesValueArray string

	// Conditional flag fragments; each is a complete flag or empty.
	ImageSourceFlag     string
	NetworkFlag         string
	SubnetworkFlag      string
	NoExternalIPFlag    string
	AcceleratorFlag     string
	ServiceAccountFlag  string
	StorageLocationFlag string
	MetadataFlag        string
}
