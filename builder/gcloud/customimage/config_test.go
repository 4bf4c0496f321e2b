// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package customimage

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/workflow"
)

// List of configuration parameters that are required by the builder.
var requiredConfigValues = []string{
	"image_name",
	"project_id",
	"zone",
	"gcs_bucket",
	"customization_script",
}

func getGcloudBuilderConfiguration() map[string]string {
	m := make(map[string]string)
	for _, v := range requiredConfigValues {
		m[v] = "ignored00"
	}
	m["base_image"] = "debian-11"

	return m
}

func getPackerConfiguration() interface{} {
	config := map[string]interface{}{
		"packer_build_name":   "gcloud",
		"packer_builder_type": "gcloudimage.custom-image",
		"packer_debug":        "false",
		"packer_force":        "false",
	}

	return config
}

func TestConfigShouldProvideReasonableDefaultValues(t *testing.T) {
	var c Config
	_, err := c.Prepare(getGcloudBuilderConfiguration(), getPackerConfiguration())

	if err != nil {
		t.Error("Expected configuration creation to succeed, but it failed!\n")
		t.Fatalf(" errors: %s\n", err)
	}

	if c.ScriptOutput != "ignored00-workflow.sh" {
		t.Errorf("Expected 'ScriptOutput' to default to '<image_name>-workflow.sh', but got '%s'!", c.ScriptOutput)
	}
}

func TestConfigShouldBeAbleToOverrideDefaultedValues(t *testing.T) {
	builderValues := getGcloudBuilderConfiguration()
	builderValues["script_output"] = "/tmp/override.sh"

	var c Config
	_, err := c.Prepare(builderValues, getPackerConfiguration())
	if err != nil {
		t.Fatalf("Expected configuration creation to succeed: %s", err)
	}

	if c.ScriptOutput != "/tmp/override.sh" {
		t.Errorf("Expected 'ScriptOutput' to be '/tmp/override.sh', but got '%s'!", c.ScriptOutput)
	}
}

func TestConfigShouldRejectMissingRequiredValues(t *testing.T) {
	for _, v := range requiredConfigValues {
		builderValues := getGcloudBuilderConfiguration()
		delete(builderValues, v)

		var c Config
		_, err := c.Prepare(builderValues, getPackerConfiguration())
		if err == nil {
			t.Fatalf("Expected configuration creation to fail when '%s' is missing, but it succeeded!", v)
		}
		if !strings.Contains(err.Error(), v) {
			t.Errorf("Expected the error to name '%s', but got: %s", v, err)
		}
	}
}

func TestConfigShouldRejectMissingBaseImageAndFamily(t *testing.T) {
	builderValues := getGcloudBuilderConfiguration()
	delete(builderValues, "base_image")

	var c Config
	_, err := c.Prepare(builderValues, getPackerConfiguration())
	if err == nil {
		t.Fatal("Expected configuration creation to fail when neither base_image nor base_image_family is set, but it succeeded!")
	}
	if !strings.Contains(err.Error(), "base_image") {
		t.Errorf("Expected the error to mention base_image, but got: %s", err)
	}
}

func TestConfigShouldAcceptBaseImageFamilyAlone(t *testing.T) {
	builderValues := getGcloudBuilderConfiguration()
	delete(builderValues, "base_image")
	builderValues["base_image_family"] = "debian-11"

	var c Config
	warns, err := c.Prepare(builderValues, getPackerConfiguration())
	if err != nil {
		t.Fatalf("Expected configuration creation to succeed: %s", err)
	}
	if len(warns) != 0 {
		t.Errorf("Expected no warnings, but got: %v", warns)
	}
}

func TestConfigShouldWarnWhenBothBaseImageAndFamilyAreSet(t *testing.T) {
	builderValues := getGcloudBuilderConfiguration()
	builderValues["base_image_family"] = "debian-11"

	var c Config
	warns, err := c.Prepare(builderValues, getPackerConfiguration())
	if err != nil {
		t.Fatalf("Expected configuration creation to succeed: %s", err)
	}
	if len(warns) != 1 || !strings.Contains(warns[0], "base_image_family takes precedence") {
		t.Errorf("Expected a precedence warning, but got: %v", warns)
	}
}

func TestConfigShouldWarnWhenBothNetworkAndSubnetworkAreSet(t *testing.T) {
	builderValues := getGcloudBuilderConfiguration()
	builderValues["network"] = "my-net"
	builderValues["subnetwork"] = "my-subnet"

	var c Config
	warns, err := c.Prepare(builderValues, getPackerConfiguration())
	if err != nil {
		t.Fatalf("Expected configuration creation to succeed: %s", err)
	}
	if len(warns) != 1 || !strings.Contains(warns[0], "subnetwork takes precedence") {
		t.Errorf("Expected a precedence warning, but got: %v", warns)
	}
}

func TestConfigShouldRejectNegativeSizes(t *testing.T) {
	testCases := []map[string]string{
		{"disk_size_gb": "-1"},
		{"shutdown_timer_in_sec": "-30"},
	}

	for _, tc := range testCases {
		builderValues := getGcloudBuilderConfiguration()
		for k, v := range tc {
			builderValues[k] = v
		}

		var c Config
		_, err := c.Prepare(builderValues, getPackerConfiguration())
		if err == nil {
			t.Errorf("Expected configuration creation to fail for %v, but it succeeded!", tc)
		}
	}
}

func TestConfigBuildOptionsSortsExtraSources(t *testing.T) {
	builderValues := getGcloudBuilderConfiguration()

	var c Config
	_, err := c.Prepare(builderValues, getPackerConfiguration())
	if err != nil {
		t.Fatalf("Expected configuration creation to succeed: %s", err)
	}
	c.ExtraSources = map[string]string{
		"zz.sh": "/local/zz.sh",
		"aa.sh": "/local/aa.sh",
		"mm.sh": "/local/mm.sh",
	}

	opts := c.buildOptions()

	expected := []workflow.Source{
		{Name: "aa.sh", Path: "/local/aa.sh"},
		{Name: "mm.sh", Path: "/local/mm.sh"},
		{Name: "zz.sh", Path: "/local/zz.sh"},
	}
	if diff := cmp.Diff(expected, opts.ExtraSources); diff != "" {
		t.Errorf("Unexpected extra source ordering (-want +got):\n%s", diff)
	}
}

func TestConfigBuildOptionsCarriesAllFields(t *testing.T) {
	builderValues := getGcloudBuilderConfiguration()
	builderValues["image_family"] = "demo-family"
	builderValues["subnetwork"] = "projects/p/regions/us-central1/subnetworks/s"
	builderValues["no_external_ip"] = "true"
	builderValues["disk_size_gb"] = "40"
	builderValues["storage_location"] = "us"
	builderValues["metadata"] = "key1=value1"
	builderValues["run_id"] = "custom-image-ignored00-20230517103005"

	var c Config
	_, err := c.Prepare(builderValues, getPackerConfiguration())
	if err != nil {
		t.Fatalf("Expected configuration creation to succeed: %s", err)
	}

	opts := c.buildOptions()

	if opts.ImageFamily != "demo-family" {
		t.Errorf("Expected 'ImageFamily' to be carried over, but got '%s'!", opts.ImageFamily)
	}
	if opts.Subnetwork != "projects/p/regions/us-central1/subnetworks/s" {
		t.Errorf("Expected 'Subnetwork' to be carried over, but got '%s'!", opts.Subnetwork)
	}
	if !opts.NoExternalIP {
		t.Error("Expected 'NoExternalIP' to be carried over, but it was false!")
	}
	if opts.DiskSizeGB != 40 {
		t.Errorf("Expected 'DiskSizeGB' to be 40, but got '%d'!", opts.DiskSizeGB)
	}
	if opts.RunID != "custom-image-ignored00-20230517103005" {
		t.Errorf("Expected 'RunID' to be carried over, but got '%s'!", opts.RunID)
	}
}
