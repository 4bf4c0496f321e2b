// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package customimage

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/packer-plugin-sdk/multistep"
	packersdk "github.com/hashicorp/packer-plugin-sdk/packer"

	"github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/common/constants"
)

type StepWriteScript struct {
	write func(path string, script string) error
	say   func(message string)
	error func(e error)
}

func NewStepWriteScript(ui packersdk.Ui) *StepWriteScript {
	var step = &StepWriteScript{
		say: func(message string) {
			ui.Say(message)
		},
		error: func(e error) {
			ui.Error(e.Error())
		},
	}

	step.write = func(path string, script string) error {
		// The script is meant to be handed straight to a shell.
		return os.WriteFile(path, []byte(script), 0o755)
	}
	return step
}

func (s *StepWriteScript) Run(ctx context.Context, state multistep.StateBag) multistep.StepAction {
	config := state.Get("config").(*Config)
	script := state.Get(constants.GcloudWorkflowScript).(string)

	s.say(fmt.Sprintf("Writing workflow script to '%s' ...", config.ScriptOutput))

	if err := s.write(config.ScriptOutput, script); err != nil {
		err = fmt.Errorf("error writing workflow script: %w", err)
		state.Put(constants.Error, err)
		s.error(err)

		return multistep.ActionHalt
	}

	state.Put(constants.GcloudScriptPath, config.ScriptOutput)
	return multistep.ActionContinue
}

func (s *StepWriteScript) Cleanup(multistep.StateBag) {}
