// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package workflow generates the shell workflow that builds a custom Compute
// Engine image: it resolves a loosely structured set of build options into a
// fully specified parameter set and renders those parameters into a fixed
// script template. The package performs no I/O; executing the generated
// script (gcloud/gsutil on a machine with credentials) is the caller's
// business.
package workflow

import "fmt"

// Source maps a destination file name inside the run's sources path to the
// local or gs:// path it is copied from.
type Source struct {
	Name string
	Path string
}

// BuildOptions is the raw input to the resolver. Optional fields left empty
// resolve to omitted command-line flags, never to empty-valued ones.
type BuildOptions struct {
	// Name of the custom image to create. Also used to name the transient
	// installation disk and VM (<image_name>-install).
	ImageName string

	// Image family to tag the custom image with. Defaults to ImageName.
	ImageFamily string

	ProjectID string
	Zone      string

	// Base image selection. BaseImageFamily takes precedence when both are
	// set; at least one is required. The literal string "None" is treated
	// as unset for compatibility with callers that stringify a null.
	BaseImage       string
	BaseImageFamily string

	// Network selection. Subnetwork takes precedence when both are set; when
	// neither is set both flags are omitted and the platform default applies.
	Network    string
	Subnetwork string

	MachineType    string
	Accelerator    string
	ServiceAccount string
	NoExternalIP   bool
	DiskSizeGB     int

	// Bucket receiving uploaded sources and logs, with or without the gs://
	// scheme prefix.
	GCSBucket       string
	StorageLocation string

	// Seconds the bootstrap script arms as a shutdown fallback on the VM.
	ShutdownTimerInSec int

	// Extra metadata appended verbatim to the instance metadata flag as
	// comma-separated key=value pairs.
	Metadata string

	// Path of the user's customization script, uploaded to the sources path
	// under a fixed name and executed on the VM.
	CustomizationScript string

	// ExtraSources is merged after the two fixed entries, in order. An entry
	// reusing a fixed name (run.sh, init_actions.sh) overwrites that entry's
	// source path: last write wins.
	ExtraSources []Source

	// RunID overrides the derived per-invocation identifier. Callers issuing
	// several runs for the same image name within one second must supply
	// distinct values here.
	RunID string
}

// MissingFieldError reports a required build option that was left unset.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("workflow: required option %q is not set", e.Field)
}
