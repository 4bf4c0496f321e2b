// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package workflow

import (
	"fmt"
	"strings"
	"time"

	gcloudcommon "github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common"
)

const (
	// The bootstrap script is uploaded under this name and supplied to the VM
	// as its startup script; it fetches the rest of the sources and runs the
	// customization script.
	BootstrapScriptName = "run.sh"
	BootstrapScriptPath = "startup_script/run.sh"

	// The user's customization script is always uploaded under this name.
	CustomizationScriptName = "init_actions.sh"

	defaultMachineType        = "n1-standard-1"
	defaultDiskSizeGB         = 15
	defaultShutdownTimerInSec = 300

	runIDTimestampLayout = "20060102150405"
)

type diskSource int

const (
	diskSourceImage diskSource = iota
	diskSourceImageFamily
)

// Resolver derives Parameters from BuildOptions. Resolution is pure: no
// network or filesystem access, no retries, no partial state.
type Resolver struct {
	// Now supplies the wall clock used for the default run id. Tests inject a
	// fixed clock for deterministic output.
	Now func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{Now: time.Now}
}

// Resolve computes the complete parameter set for opts, or a
// *MissingFieldError naming the first unconditionally required option that is
// absent. Absent optional options degrade to empty flag fragments.
func (r *Resolver) Resolve(opts BuildOptions) (*Parameters, error) {
	required := []struct {
		name  string
		value string
	}{
		{"image_name", opts.ImageName},
		{"project_id", opts.ProjectID},
		{"zone", opts.Zone},
		{"gcs_bucket", opts.GCSBucket},
		{"customization_script", opts.CustomizationScript},
	}
	for _, req := range required {
		if req.value == "" {
			return nil, &MissingFieldError{Field: req.name}
		}
	}

	source := diskSourceImageFamily
	if baseImageFamily(opts) == "" {
		if opts.BaseImage == "" {
			return nil, &MissingFieldError{Field: "base_image"}
		}
		source = diskSourceImage
	}

	p := &Parameters{
		ImageName:          opts.ImageName,
		ProjectID:          opts.ProjectID,
		Zone:               opts.Zone,
		Family:             opts.ImageFamily,
		MachineType:        opts.MachineType,
		DiskSizeGB:         opts.DiskSizeGB,
		ShutdownTimerInSec: opts.ShutdownTimerInSec,
	}

	if p.Family == "" {
		p.Family = opts.ImageName
	}
	if p.MachineType == "" {
		p.MachineType = defaultMachineType
	}
	if p.DiskSizeGB == 0 {
		p.DiskSizeGB = defaultDiskSizeGB
	}
	if p.ShutdownTimerInSec == 0 {
		p.ShutdownTimerInSec = defaultShutdownTimerInSec
	}

	p.RunID = opts.RunID
	if p.RunID == "" {
		now := r.Now
		if now == nil {
			now = time.Now
		}
		p.RunID = fmt.Sprintf("custom-image-%s-%s",
			opts.ImageName, now().Format(runIDTimestampLayout))
	}

	p.BucketName = strings.TrimPrefix(opts.GCSBucket, "gs://")
	p.CustomSourcesPath = fmt.Sprintf("gs://%s/%s/sources", p.BucketName, p.RunID)
	p.LogDir = fmt.Sprintf("/tmp/%s/logs", p.RunID)
	p.GCSLogDir = fmt.Sprintf("gs://%s/%s/logs", p.BucketName, p.RunID)

	p.Sources = mergeSources(opts)
	p.SourcesKeyArray, p.SourcesValueArray = encodeSources(p.Sources)

	switch source {
	case diskSourceImageFamily:
		p.ImageSourceFlag = "--image-family=" + baseImageFamily(opts)
	default:
		p.ImageSourceFlag = "--image=" + opts.BaseImage
	}

	// A subnetwork always wins over a network: shared-VPC builds supply only
	// the subnetwork and must not emit a network flag.
	switch {
	case opts.Subnetwork != "":
		p.SubnetworkFlag = "--subnet=" + opts.Subnetwork
	case opts.Network != "":
		p.NetworkFlag = "--network=" + expandNetworkPath(opts.Network, opts.ProjectID)
	}

	if opts.ServiceAccount != "" {
		p.ServiceAccountFlag = "--service-account=" + opts.ServiceAccount
	}
	if opts.NoExternalIP {
		p.NoExternalIPFlag = "--no-address"
	}
	if opts.Accelerator != "" {
		p.AcceleratorFlag = "--accelerator=" + opts.Accelerator + " --maintenance-policy terminate"
	}
	if opts.StorageLocation != "" {
		p.StorageLocationFlag = "--storage-location=" + opts.StorageLocation
	}

	p.MetadataFlag = fmt.Sprintf("--metadata=shutdown-timer-in-sec=%d,custom-sources-path=%s",
		p.ShutdownTimerInSec, p.CustomSourcesPath)
	if opts.Metadata != "" {
		p.MetadataFlag += "," + opts.Metadata
	}

	return p, nil
}

// baseImageFamily returns the effective base image family, treating the
// literal "None" as unset.
func baseImageFamily(opts BuildOptions) string {
	if opts.BaseImageFamily == "None" {
		return ""
	}
	return opts.BaseImageFamily
}

// expandNetworkPath turns the global/networks/<name> form, which gcloud does
// not accept, into a full projects/<project>/global/networks/<name> path.
func expandNetworkPath(network, projectID string) string {
	if strings.HasPrefix(network, "global/networks/") {
		return fmt.Sprintf("projects/%s/%s", projectID, network)
	}
	return network
}

// mergeSources builds the ordered upload list: the fixed bootstrap and
// customization entries first, then extras in caller order. An extra that
// reuses a fixed name overwrites its path in place rather than appending.
func mergeSources(opts BuildOptions) []Source {
	sources := []Source{
		{Name: BootstrapScriptName, Path: BootstrapScriptPath},
		{Name: CustomizationScriptName, Path: opts.CustomizationScript},
	}
	for _, extra := range opts.ExtraSources {
		replaced := false
		for i := range sources {
			if sources[i].Name == extra.Name {
				sources[i].Path = extra.Path
				replaced = true
				break
			}
		}
		if !replaced {
			sources = append(sources, extra)
		}
	}
	return sources
}

// encodeSources renders the sources as two index-aligned shell array
// literals. Ordering is significant: index i of the key array names the
// destination of the path at index i of the value array.
func encodeSources(sources []Source) (keys, values string) {
	k := make([]string, len(sources))
	v := make([]string, len(sources))
	for i, s := range sources {
		k[i] = fmt.Sprintf("[%d]=%s", i, gcloudcommon.ShellQuote(s.Name))
		v[i] = fmt.Sprintf("[%d]=%s", i, gcloudcommon.ShellQuote(s.Path))
	}
	return strings.Join(k, " "), strings.Join(v, " ")
}
