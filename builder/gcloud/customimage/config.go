// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:generate packer-sdc struct-markdown
//go:generate packer-sdc mapstructure-to-hcl2 -type Config

package customimage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/packer-plugin-sdk/common"
	packersdk "github.com/hashicorp/packer-plugin-sdk/packer"
	"github.com/hashicorp/packer-plugin-sdk/template/config"
	"github.com/hashicorp/packer-plugin-sdk/template/interpolate"

	gcloudcommon "github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common"
	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/workflow"
)

type Config struct {
	common.PackerConfig `mapstructure:",squash"`

	gcloudcommon.Config `mapstructure:",squash"`

	// The name of the custom image to create. The transient installation
	// disk and VM are named `<image_name>-install`.
	ImageName string `mapstructure:"image_name" required:"true"`
	// The image family to tag the custom image with. Defaults to
	// `image_name`.
	ImageFamily string `mapstructure:"image_family"`
	// The project to create the image in.
	ProjectID string `mapstructure:"project_id" required:"true"`
	// The zone for the transient disk and VM.
	Zone string `mapstructure:"zone" required:"true"`
	// The base image to customize. One of `base_image` or
	// `base_image_family` must be set; `base_image_family` takes precedence
	// when both are.
	BaseImage string `mapstructure:"base_image"`
	// The base image family to customize; resolves to the family's latest
	// non-deprecated image at disk-creation time.
	BaseImageFamily string `mapstructure:"base_image_family"`
	// The network to attach the installation VM to. Ignored when
	// `subnetwork` is set. A `global/networks/<name>` value is expanded to
	// the full `projects/<project>/global/networks/<name>` path.
	Network string `mapstructure:"network"`
	// The subnetwork to attach the installation VM to. For a shared VPC,
	// supply only the subnetwork and leave `network` empty.
	Subnetwork string `mapstructure:"subnetwork"`
	// Machine type of the installation VM. Defaults to `n1-standard-1`.
	MachineType string `mapstructure:"machine_type"`
	// Accelerator spec, e.g. `type=nvidia-tesla-t4,count=1`. Forces the
	// maintenance policy to terminate.
	Accelerator string `mapstructure:"accelerator"`
	// Service account attached to the installation VM.
	ServiceAccount string `mapstructure:"service_account"`
	// Do not assign an external IP to the installation VM.
	NoExternalIP bool `mapstructure:"no_external_ip"`
	// Size of the installation disk in GB. Defaults to 15.
	DiskSizeGB int `mapstructure:"disk_size_gb"`
	// The bucket that receives uploaded sources and run logs, with or
	// without the gs:// prefix.
	GCSBucket string `mapstructure:"gcs_bucket" required:"true"`
	// Storage location for the created image, e.g. `us`.
	StorageLocation string `mapstructure:"storage_location"`
	// Seconds before the installation VM shuts itself down as a fallback.
	// Defaults to 300.
	ShutdownTimerInSec int `mapstructure:"shutdown_timer_in_sec"`
	// Extra instance metadata, appended to the generated metadata flag as
	// comma-separated key=value pairs.
	Metadata string `mapstructure:"metadata"`
	// Path of the customization script executed on the installation VM. It
	// must print `BuildSucceeded:` or `BuildFailed:` to signal its outcome.
	CustomizationScript string `mapstructure:"customization_script" required:"true"`
	// Additional files to upload next to the customization script, keyed by
	// destination file name. HCL maps carry no order, so entries are
	// uploaded in sorted key order. A key equal to `run.sh` or
	// `init_actions.sh` overwrites that fixed entry: last write wins.
	ExtraSources map[string]string `mapstructure:"extra_sources"`
	// Identifier namespacing this run's transient paths. Defaults to
	// `custom-image-<image_name>-<timestamp>`. Supply distinct values when
	// starting several builds for the same image name within one second.
	RunID string `mapstructure:"run_id"`
	// Path the workflow script is written to. Defaults to
	// `<image_name>-workflow.sh`.
	ScriptOutput string `mapstructure:"script_output"`

	ctx interpolate.Context
}

func (c *Config) Prepare(raws ...interface{}) ([]string, error) {
	err := config.Decode(c, &config.DecodeOpts{
		PluginType:         BuilderID,
		Interpolate:        true,
		InterpolateContext: &c.ctx,
	}, raws...)
	if err != nil {
		return nil, err
	}

	var errs *packersdk.MultiError
	var warns []string

	if c.ScriptOutput == "" && c.ImageName != "" {
		c.ScriptOutput = c.ImageName + "-workflow.sh"
	}

	for _, req := range []struct {
		name  string
		value string
	}{
		{"image_name", c.ImageName},
		{"project_id", c.ProjectID},
		{"zone", c.Zone},
		{"gcs_bucket", c.GCSBucket},
		{"customization_script", c.CustomizationScript},
	} {
		if req.value == "" {
			errs = packersdk.MultiErrorAppend(errs,
				fmt.Errorf("a %s must be specified", req.name))
		}
	}

	if c.BaseImage == "" && c.BaseImageFamily == "" {
		errs = packersdk.MultiErrorAppend(errs,
			errors.New("one of base_image or base_image_family must be specified"))
	}
	if c.BaseImage != "" && c.BaseImageFamily != "" {
		warns = append(warns,
			"both base_image and base_image_family are set; base_image_family takes precedence")
	}

	if c.Network != "" && c.Subnetwork != "" {
		warns = append(warns,
			"both network and subnetwork are set; subnetwork takes precedence and the network flag is dropped")
	}

	if c.DiskSizeGB < 0 {
		errs = packersdk.MultiErrorAppend(errs,
			fmt.Errorf("disk_size_gb must not be negative, got %d", c.DiskSizeGB))
	}
	if c.ShutdownTimerInSec < 0 {
		errs = packersdk.MultiErrorAppend(errs,
			fmt.Errorf("shutdown_timer_in_sec must not be negative, got %d", c.ShutdownTimerInSec))
	}

	if errs != nil && len(errs.Errors) > 0 {
		return warns, errs
	}

	return warns, nil
}

// buildOptions maps the decoded config onto the resolver's input record.
func (c *Config) buildOptions() workflow.BuildOptions {
	names := make([]string, 0, len(c.ExtraSources))
	for name := range c.ExtraSources {
		names = append(names, name)
	}
	sort.Strings(names)

	extras := make([]workflow.Source, 0, len(names))
	for _, name := range names {
		extras = append(extras, workflow.Source{Name: name, Path: c.ExtraSources[name]})
	}

	return workflow.BuildOptions{
		ImageName:           c.ImageName,
		ImageFamily:         c.ImageFamily,
		ProjectID:           c.ProjectID,
		Zone:                c.Zone,
		BaseImage:           c.BaseImage,
		BaseImageFamily:     c.BaseImageFamily,
		Network:             c.Network,
		Subnetwork:          c.Subnetwork,
		MachineType:         c.MachineType,
		Accelerator:         c.Accelerator,
		ServiceAccount:      c.ServiceAccount,
		NoExternalIP:        c.NoExternalIP,
		DiskSizeGB:          c.DiskSizeGB,
		GCSBucket:           c.GCSBucket,
		StorageLocation:     c.StorageLocation,
		ShutdownTimerInSec:  c.ShutdownTimerInSec,
		Metadata:            c.Metadata,
		CustomizationScript: c.CustomizationScript,
		ExtraSources:        extras,
		RunID:               c.RunID,
	}
}
