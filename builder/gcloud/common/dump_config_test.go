// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpConfig(t *testing.T) {
	type nested struct {
		Zone string `mapstructure:"zone"`
	}
	type config struct {
		ImageName   string `mapstructure:"image_name"`
		DiskSizeGB  int    `mapstructure:"disk_size_gb"`
		NoIP        bool   `mapstructure:"no_external_ip"`
		AccessToken string `mapstructure:"access_token"`
		Untagged    string
		Nested      nested `mapstructure:",squash"`
	}

	var lines []string
	DumpConfig(&config{
		ImageName:   "demo",
		DiskSizeGB:  30,
		NoIP:        true,
		AccessToken: "hunter2",
		Untagged:    "raw",
		Nested:      nested{Zone: "us-central1-a"},
	}, func(s string) { lines = append(lines, s) })

	assert.Contains(t, lines, "image_name=demo")
	assert.Contains(t, lines, "disk_size_gb=30")
	assert.Contains(t, lines, "no_external_ip=true")
	assert.Contains(t, lines, "access_token=<sensitive>")
	assert.Contains(t, lines, "Untagged=raw")
	assert.Contains(t, lines, "zone=us-central1-a")
	assert.NotContains(t, lines, "access_token=hunter2")
}
