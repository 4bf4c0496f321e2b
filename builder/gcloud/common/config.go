// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:generate packer-sdc struct-markdown

package common

import (
	"github.com/hashicorp/packer-plugin-sdk/multistep"
)

const (
	SkippingScriptWrite = "Skipping workflow script write..."
)

type Config struct {
	// Skip writing the generated workflow script to disk.
	// Useful for setting to `true` during a build test stage, where only the
	// rendered script held in the artifact state is of interest.
	// Defaults to `false`.
	SkipWriteScript bool `mapstructure:"skip_write_script" required:"false"`
}

// WriteSteps returns the steps unless `SkipWriteScript` is `true`. In that
// case it returns a step that informs the user the script write is skipped.
func (config Config) WriteSteps(say func(string), steps ...multistep.Step) []multistep.Step {
	if !config.SkipWriteScript {
		return steps
	}

	return []multistep.Step{
		&StepNotify{
			message: SkippingScriptWrite,
			say:     say,
		},
	}
}
