// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:generate packer-sdc struct-markdown
//go:generate packer-sdc mapstructure-to-hcl2 -type DatasourceOutput,Config

package imageuri

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/hashicorp/packer-plugin-sdk/hcl2helper"
	"github.com/hashicorp/packer-plugin-sdk/template/config"
	"github.com/zclconf/go-cty/cty"

	packersdk "github.com/hashicorp/packer-plugin-sdk/packer"
)

var (
	imageURI = regexp.MustCompile(
		`^(https://(www|compute)\.googleapis\.com/compute/([^/]+)/)?projects/([^/]+)/global/images/([^/]+)$`)
	imageFamilyURI = regexp.MustCompile(
		`^(https://(www|compute)\.googleapis\.com/compute/([^/]+)/)?projects/([^/]+)/global/images/family/([^/]+)$`)
)

type Config struct {
	// A compute image or image family URI, either as a bare
	// `projects/<project>/global/images/...` path or prefixed with a
	// googleapis.com endpoint.
	URI string `mapstructure:"uri" required:"true"`
}

type Datasource struct {
	config Config
}

type DatasourceOutput struct {
	// The project owning the image.
	Project string `mapstructure:"project"`
	// The image or image family name.
	Name string `mapstructure:"name"`
	// The endpoint-independent resource path, suitable for the builder's
	// `base_image` or `base_image_family` option.
	Path string `mapstructure:"path"`
	// Whether the URI names an image family rather than a single image.
	IsFamily bool `mapstructure:"is_family"`
}

func (d *Datasource) ConfigSpec() hcldec.ObjectSpec {
	return d.config.FlatMapstructure().HCL2Spec()
}

func (d *Datasource) Configure(raws ...interface{}) error {
	err := config.Decode(&d.config, nil, raws...)
	if err != nil {
		return err
	}

	var errs *packersdk.MultiError
	if d.config.URI == "" {
		errs = packersdk.MultiErrorAppend(errs, fmt.Errorf("a 'uri' must be provided"))
	}

	if errs != nil && len(errs.Errors) > 0 {
		return errs
	}

	return nil
}

func (d *Datasource) OutputSpec() hcldec.ObjectSpec {
	return (&DatasourceOutput{}).FlatMapstructure().HCL2Spec()
}

func (d *Datasource) Execute() (cty.Value, error) {
	var output DatasourceOutput

	// The family pattern is checked first: the image pattern cannot match a
	// family URI because its trailing segment must not contain a slash.
	if m := imageFamilyURI.FindStringSubmatch(d.config.URI); m != nil {
		output = DatasourceOutput{
			Project:  m[4],
			Name:     m[5],
			Path:     fmt.Sprintf("projects/%s/global/images/family/%s", m[4], m[5]),
			IsFamily: true,
		}
	} else if m := imageURI.FindStringSubmatch(d.config.URI); m != nil {
		output = DatasourceOutput{
			Project: m[4],
			Name:    m[5],
			Path:    fmt.Sprintf("projects/%s/global/images/%s", m[4], m[5]),
		}
	} else {
		return cty.NullVal(cty.EmptyObject),
			fmt.Errorf("invalid image or image family URI: %q", d.config.URI)
	}

	return hcl2helper.HCL2ValueFromConfig(output, d.OutputSpec()), nil
}
