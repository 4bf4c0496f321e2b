// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package common

import "strings"

// ShellQuote returns s as a single-quoted shell word. Embedded single quotes
// are encoded with the '\'' close-escape-reopen idiom so the result stays a
// single word for arbitrary file names and paths.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
