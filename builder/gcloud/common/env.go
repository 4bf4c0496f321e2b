// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package common

import "os"

const GcloudDebugLogsEnvVar string = "PACKER_GCLOUD_DEBUG_LOG"

func IsDebugEnabled() bool {
	debug, defined := os.LookupEnv(GcloudDebugLogsEnvVar)
	if !defined {
		return false
	}

	return debug != ""
}
