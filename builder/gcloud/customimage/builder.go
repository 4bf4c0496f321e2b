// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package customimage

import (
	"context"
	"errors"

	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/hashicorp/packer-plugin-sdk/multistep"
	"github.com/hashicorp/packer-plugin-sdk/multistep/commonsteps"
	packersdk "github.com/hashicorp/packer-plugin-sdk/packer"

	gcloudcommon "github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common"
	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/constants"
	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/log"
	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/logutil"
	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/workflow"
)

const BuilderID = "gcloudimage.custom-image"

// Builder generates the custom image build workflow. It never talks to the
// cloud itself: Run resolves the configured options, renders the workflow
// script, and emits it as the build artifact for an operator (or a later
// pipeline stage with credentials) to execute.
type Builder struct {
	config Config
	runner multistep.Runner
}

// verify interface implementation
var _ packersdk.Builder = &Builder{}

func (b *Builder) ConfigSpec() hcldec.ObjectSpec { return b.config.FlatMapstructure().HCL2Spec() }

func (b *Builder) Prepare(raws ...interface{}) ([]string, []string, error) {
	warnings, errs := b.config.Prepare(raws...)
	if errs != nil {
		return nil, warnings, errs
	}

	return nil, warnings, nil
}

func (b *Builder) Run(ctx context.Context, ui packersdk.Ui, hook packersdk.Hook) (packersdk.Artifact, error) {
	log.Print(":: Configuration")
	gcloudcommon.DumpConfig(&b.config, func(s string) { log.Print(s) })

	state := new(multistep.BasicStateBag)
	state.Put("config", &b.config)
	state.Put("hook", hook)
	state.Put(constants.Ui, ui)
	state.Put(constants.GcloudBuildOptions, b.config.buildOptions())

	steps := []multistep.Step{
		NewStepResolveParameters(ui),
		NewStepRenderWorkflow(ui),
	}
	steps = append(steps, b.config.WriteSteps(ui.Say, NewStepWriteScript(ui))...)

	b.runner = commonsteps.NewRunner(steps, b.config.PackerConfig, ui)
	b.runner.Run(ctx, state)

	if rawErr, ok := state.GetOk(constants.Error); ok {
		return nil, rawErr.(error)
	}
	if gcloudcommon.IsStateCancelled(state) {
		return nil, errors.New("build was cancelled")
	}

	params := state.Get(constants.GcloudWorkflowParameters).(*workflow.Parameters)
	script := state.Get(constants.GcloudWorkflowScript).(string)

	if gcloudcommon.IsDebugEnabled() {
		log.Print("rendered workflow", logutil.Fields{
			"runID": params.RunID,
			"size":  len(script),
		})
		log.Print(script)
	}

	artifact := &Artifact{
		RunID:     params.RunID,
		ImageName: params.ImageName,
		ProjectID: params.ProjectID,
		Zone:      params.Zone,
		StateData: map[string]interface{}{
			"run_id":      params.RunID,
			"image_name":  params.ImageName,
			"disk_source": params.ImageSourceFlag,
			"gcs_log_dir": params.GCSLogDir,
			"script":      script,
		},
	}
	if v, ok := state.GetOk(constants.GcloudScriptPath); ok {
		artifact.ScriptPath = v.(string)
	}

	return artifact, nil
}
