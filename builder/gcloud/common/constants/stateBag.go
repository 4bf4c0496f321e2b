// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package constants

// complete flags
const (
	Error string = "error"
	Ui    string = "ui"
)

const (
	GcloudBuildOptions       string = "gcloud.BuildOptions"
	GcloudWorkflowParameters string = "gcloud.WorkflowParameters"
	GcloudWorkflowScript     string = "gcloud.WorkflowScript"
	GcloudScriptPath         string = "gcloud.ScriptPath"
)
