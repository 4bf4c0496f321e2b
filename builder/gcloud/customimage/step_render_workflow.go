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

type StepRenderWorkflow struct {
	render func(*workflow.Parameters) (string, error)
	say    func(message string)
	error  func(e error)
}

func NewStepRenderWorkflow(ui packersdk.Ui) *StepRenderWorkflow {
	var step = &StepRenderWorkflow{
		say: func(message string) {
			ui.Say(message)
		},
		error: func(e error) {
			ui.Error(e.Error())
		},
	}

	step.render = workflow.Render
	return step
}

func (s *StepRenderWorkflow) Run(ctx context.Context, state multistep.StateBag) multistep.StepAction {
	s.say("Rendering workflow script ...")

	params := state.Get(constants.GcloudWorkflowParameters).(*workflow.Parameters)

	script, err := s.render(params)
	if err != nil {
		state.Put(constants.Error, err)
		s.error(err)

		return multistep.ActionHalt
	}

	s.say(fmt.Sprintf(" -> Script Size  : %d bytes", len(script)))

	state.Put(constants.GcloudWorkflowScript, script)
	return multistep.ActionContinue
}

func (s *StepRenderWorkflow) Cleanup(multistep.StateBag) {}
