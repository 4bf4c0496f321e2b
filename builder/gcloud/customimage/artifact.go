// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package customimage

import (
	"fmt"
	"os"

	registryimage "github.com/hashicorp/packer-plugin-sdk/packer/registry/image"
)

// Artifact is the generated workflow script together with the identifiers a
// downstream consumer needs to locate the run's logs and resulting image.
type Artifact struct {
	// Path the script was written to; empty when the write was skipped.
	ScriptPath string

	RunID     string
	ImageName string
	ProjectID string
	Zone      string

	// StateData should store data such as GeneratedData
	// to be shared with post-processors
	StateData map[string]interface{}
}

func (a *Artifact) BuilderId() string {
	return BuilderID
}

func (a *Artifact) Files() []string {
	if a.ScriptPath == "" {
		return nil
	}
	return []string{a.ScriptPath}
}

func (a *Artifact) Id() string {
	return a.RunID
}

func (a *Artifact) String() string {
	if a.ScriptPath == "" {
		return fmt.Sprintf("Custom image workflow for '%s' (run id '%s')", a.ImageName, a.RunID)
	}
	return fmt.Sprintf("Custom image workflow for '%s' written to '%s' (run id '%s')",
		a.ImageName, a.ScriptPath, a.RunID)
}

func (a *Artifact) State(name string) interface{} {
	if name == registryimage.ArtifactStateURI {
		return a.hcpPackerRegistryMetadata()
	}

	if a.StateData == nil {
		return nil
	}
	return a.StateData[name]
}

func (a *Artifact) hcpPackerRegistryMetadata() *registryimage.Image {
	labels := map[string]interface{}{
		"run_id": a.RunID,
	}
	if v, ok := a.StateData["gcs_log_dir"].(string); ok {
		labels["gcs_log_dir"] = v
	}

	var sourceID string
	if v, ok := a.StateData["disk_source"].(string); ok {
		sourceID = v
	}

	img, _ := registryimage.FromArtifact(a,
		registryimage.WithID(fmt.Sprintf("projects/%s/global/images/%s", a.ProjectID, a.ImageName)),
		registryimage.WithRegion(a.Zone),
		registryimage.WithProvider("gcp"),
		registryimage.WithSourceID(sourceID),
		registryimage.SetLabels(labels),
	)
	return img
}

func (a *Artifact) Destroy() error {
	if a.ScriptPath == "" {
		return nil
	}
	err := os.Remove(a.ScriptPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
