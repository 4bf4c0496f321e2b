// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package workflow

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests execute the rendered workflow under bash with stub gcloud and
// gsutil binaries on PATH, exercising the marker-file cleanup protocol and
// the sentinel-based result detection end to end.

const gcloudStub = `#!/usr/bin/env bash
echo "gcloud $*" >> "$CALLS_LOG"
case "$*" in
  *tail-serial-port-output*)
    printf '%s\n' "$TAIL_OUTPUT"
    ;;
  *"instances create"*)
    exit "${INSTANCE_CREATE_EXIT:-0}"
    ;;
esac
exit 0
`

const gsutilStub = `#!/usr/bin/env bash
echo "gsutil $*" >> "$CALLS_LOG"
exit 0
`

type scriptRun struct {
	exitCode int
	calls    string
}

func runWorkflowScript(t *testing.T, suffix, tailOutput, instanceCreateExit string) scriptRun {
	t.Helper()

	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	runID := fmt.Sprintf("custom-image-demo-test-%s-%d", suffix, time.Now().UnixNano())
	t.Cleanup(func() { _ = os.RemoveAll("/tmp/" + runID) })

	opts := testOptions()
	opts.RunID = runID

	p, err := testResolver().Resolve(opts)
	require.NoError(t, err)
	script, err := Render(p)
	require.NoError(t, err)

	dir := t.TempDir()
	for name, body := range map[string]string{
		"gcloud":      gcloudStub,
		"gsutil":      gsutilStub,
		"workflow.sh": script,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o755))
	}
	callsLog := filepath.Join(dir, "calls.log")

	cmd := exec.Command("bash", filepath.Join(dir, "workflow.sh"))
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"PATH="+dir+string(os.PathListSeparator)+os.Getenv("PATH"),
		"CALLS_LOG="+callsLog,
		"TAIL_OUTPUT="+tailOutput,
		"INSTANCE_CREATE_EXIT="+instanceCreateExit,
	)

	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "script did not run: %v\n%s", err, out)
		exitCode = exitErr.ExitCode()
	}

	calls, err := os.ReadFile(callsLog)
	require.NoError(t, err, "no cloud command was invoked\n%s", out)

	return scriptRun{exitCode: exitCode, calls: string(calls)}
}

func TestScriptSucceedsOnBuildSucceeded(t *testing.T) {
	run := runWorkflowScript(t, "ok",
		"serial: startup-script: BuildSucceeded: customization done", "0")

	assert.Equal(t, 0, run.exitCode)
	assert.Contains(t, run.calls, "images create demo")
	assert.Contains(t, run.calls, "instances delete demo-install")
	assert.NotContains(t, run.calls, "disks delete")
	assert.Contains(t, run.calls, "rsync")
}

func TestScriptFailsOnBuildFailed(t *testing.T) {
	run := runWorkflowScript(t, "failed",
		"serial: startup-script: BuildFailed: customization exploded", "0")

	assert.Equal(t, 1, run.exitCode)
	assert.NotContains(t, run.calls, "images create")
	assert.Contains(t, run.calls, "instances delete demo-install")
	assert.Contains(t, run.calls, "rsync")
}

// Absence of a positive signal is not success.
func TestScriptFailsWhenResultUndetermined(t *testing.T) {
	run := runWorkflowScript(t, "undetermined",
		"serial: startup-script: no sentinel here", "0")

	assert.Equal(t, 1, run.exitCode)
	assert.NotContains(t, run.calls, "images create")
	assert.Contains(t, run.calls, "rsync")
}

// When VM creation fails only the disk marker exists, so cleanup must delete
// the disk directly instead of the instance.
func TestScriptCleanupDeletesDiskWhenVMNeverCreated(t *testing.T) {
	run := runWorkflowScript(t, "novm", "", "1")

	assert.Equal(t, 1, run.exitCode)
	assert.Contains(t, run.calls, "disks delete demo-install")
	assert.NotContains(t, run.calls, "instances delete")
	assert.Contains(t, run.calls, "rsync")

	// Lines are ordered: the failed create precedes the cleanup deletion.
	createAt := strings.Index(run.calls, "instances create")
	deleteAt := strings.Index(run.calls, "disks delete")
	require.NotEqual(t, -1, createAt)
	require.NotEqual(t, -1, deleteAt)
	assert.Less(t, createAt, deleteAt)
}
