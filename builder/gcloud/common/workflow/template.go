// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package workflow

import (
	"bytes"
	"fmt"
	"text/template"
)

// The generated workflow drives one linear pass over the cloud resources:
// upload sources, create the installation disk, boot the installation VM,
// watch its serial console until shutdown, classify the result from the
// startup-script log, and capture the image. Marker files under
// /tmp/<run_id>/ record how far the run got; the EXIT trap reads them to
// decide what to tear down, syncs logs to the bucket on every exit path, and
// derives the final exit code from the image_created marker alone.
const scriptTemplate = `#!/usr/bin/env bash

# Workflow for building a custom Compute Engine image.

set -euxo pipefail

RED='\e[0;31m'
GREEN='\e[0;32m'
NC='\e[0m'

function exit_handler() {
  echo 'Cleaning up before exiting.'

  if [[ -f /tmp/{{.RunID}}/vm_created ]]; then
    echo 'Deleting VM instance.'
    gcloud compute instances delete {{.ImageName}}-install \
        --project={{.ProjectID}} --zone={{.Zone}} -q
  elif [[ -f /tmp/{{.RunID}}/disk_created ]]; then
    echo 'Deleting disk.'
    gcloud compute disks delete {{.ImageName}}-install --project={{.ProjectID}} --zone={{.Zone}} -q
  fi

  echo 'Uploading local logs to GCS bucket.'
  gsutil -m rsync -r {{.LogDir}}/ {{.GCSLogDir}}/

  if [[ -f /tmp/{{.RunID}}/image_created ]]; then
    echo -e "${GREEN}Workflow succeeded, check logs at {{.LogDir}}/ or {{.GCSLogDir}}/${NC}"
    exit 0
  else
    echo -e "${RED}Workflow failed, check logs at {{.LogDir}}/ or {{.GCSLogDir}}/${NC}"
    exit 1
  fi
}

function main() {
  echo 'Uploading files to GCS bucket.'
  declare -a sources_k=({{.SourcesKeyArray}})
  declare -a sources_v=({{.SourcesValueArray}})
  for i in "${!sources_k[@]}"; do
    gsutil cp "${sources_v[i]}" "{{.CustomSourcesPath}}/${sources_k[i]}"
  done

  echo 'Creating disk.'
  gcloud compute disks create {{.ImageName}}-install \
      --project={{.ProjectID}} \
      --zone={{.Zone}} \
      {{.ImageSourceFlag}} \
      --type=pd-ssd \
      --size={{.DiskSizeGB}}GB
  touch /tmp/{{.RunID}}/disk_created

  echo 'Creating VM instance to run the customization script.'
  gcloud compute instances create {{.ImageName}}-install \
      --project={{.ProjectID}} \
      --zone={{.Zone}} \
      {{.NetworkFlag}} \
      {{.SubnetworkFlag}} \
      {{.NoExternalIPFlag}} \
      --machine-type={{.MachineType}} \
      --disk=auto-delete=yes,boot=yes,mode=rw,name={{.ImageName}}-install \
      {{.AcceleratorFlag}} \
      {{.ServiceAccountFlag}} \
      --scopes=cloud-platform \
      {{.MetadataFlag}} \
      --metadata-from-file startup-script=startup_script/run.sh
  touch /tmp/{{.RunID}}/vm_created

  echo 'Waiting for the customization script to finish and the VM to shut down.'
  gcloud compute instances tail-serial-port-output {{.ImageName}}-install \
      --project={{.ProjectID}} \
      --zone={{.Zone}} \
      --port=1 2>&1 \
      | grep 'startup-script' \
      | tee {{.LogDir}}/startup-script.log \
      || true

  echo 'Checking the customization script result.'
  if grep 'BuildFailed:' {{.LogDir}}/startup-script.log; then
    echo -e "${RED}Customization script failed.${NC}"
    exit 1
  elif grep 'BuildSucceeded:' {{.LogDir}}/startup-script.log; then
    echo -e "${GREEN}Customization script succeeded.${NC}"
  else
    echo 'Unable to determine the customization script result.'
    exit 1
  fi

  echo 'Creating custom image.'
  gcloud compute images create {{.ImageName}} \
      --project={{.ProjectID}} \
      --source-disk-zone={{.Zone}} \
      --source-disk={{.ImageName}}-install \
      {{.StorageLocationFlag}} \
      --family={{.Family}}
  touch /tmp/{{.RunID}}/image_created
}

trap exit_handler EXIT
mkdir -p {{.LogDir}}
main "$@" 2>&1 | tee {{.LogDir}}/workflow.log
`

var parsedTemplate = template.Must(
	template.New("workflow").Option("missingkey=error").Parse(scriptTemplate))

// SubstitutionError reports a template placeholder with no corresponding
// resolved value. Parameters is a closed struct covering every placeholder,
// so hitting this indicates a bug in the template or the resolver, not bad
// user input.
type SubstitutionError struct {
	Err error
}

func (e *SubstitutionError) Error() string {
	return fmt.Sprintf("workflow: template substitution failed: %s", e.Err)
}

func (e *SubstitutionError) Unwrap() error { return e.Err }

// Render substitutes the resolved parameters into the workflow template and
// returns the complete script text. It performs no computation of its own.
func Render(p *Parameters) (string, error) {
	var buf bytes.Buffer
	if err := parsedTemplate.Execute(&buf, p); err != nil {
		return "", &SubstitutionError{Err: err}
	}
	return buf.String(), nil
}
