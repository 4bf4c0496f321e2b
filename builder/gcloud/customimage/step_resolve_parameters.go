// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package customimage

import (
	"context"
	"fmt"

	"github.com/hashicorp/packer-plugin-sdk/multistep"
	packersdk "github.com/hashicorp/packer-plugin-sdk/packer"

	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/constants"
	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/workflow"
)

type StepResolveParameters struct {
	resolve func(workflow.BuildOptions) (*workflow.Parameters, error)
	say     func(message string)
	error   func(e error)
}

func NewStepResolveParameters(ui packersdk.Ui) *StepResolveParameters {
	var step = &StepResolveParameters{
		say: func(message string) {
			ui.Say(message)
		},
		error: func(e error) {
			ui.Error(e.Error())
		},
	}

	step.resolve = workflow.NewResolver().Resolve
	return step
}

func (s *StepResolveParameters) Run(ctx context.Context, state multistep.StateBag) multistep.StepAction {
	s.say("Resolving workflow parameters ...")

	opts := state.Get(constants.GcloudBuildOptions).(workflow.BuildOptions)

	params, err := s.resolve(opts)
	if err != nil {
		state.Put(constants.Error, err)
		s.error(err)

		return multistep.ActionHalt
	}

	s.say(fmt.Sprintf(" -> Run ID       : '%s'", params.RunID))
	s.say(fmt.Sprintf(" -> Image Name   : '%s'", params.ImageName))
	s.say(fmt.Sprintf(" -> Disk Source  : '%s'", params.ImageSourceFlag))
	s.say(fmt.Sprintf(" -> Log Bucket   : '%s'", params.GCSLogDir))

	state.Put(constants.GcloudWorkflowParameters, params)
	return multistep.ActionContinue
}

func (s *StepResolveParameters) Cleanup(multistep.StateBag) {}
