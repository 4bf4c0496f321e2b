// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package common

import "github.com/hashicorp/packer-plugin-sdk/multistep"

// IsStateCancelled reports whether the runner recorded a cancellation. The
// builder checks it after the generation steps so an interrupted build is not
// mistaken for a rendered workflow with no artifact.
func IsStateCancelled(stateBag multistep.StateBag) bool {
	_, ok := stateBag.GetOk(multistep.StateCancelled)
	return ok
}
