// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package common

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/reflectwalk"
)

// DumpConfig walks the primitive fields of a config struct and hands each one
// to say as name=value, masking fields whose name suggests a credential.
// Nested and squashed structs are walked recursively.
func DumpConfig(config interface{}, say func(string)) {
	walker := &configWalker{say: say}
	_ = reflectwalk.Walk(config, walker)
}

type configWalker struct {
	say func(string)
}

func (w *configWalker) Struct(reflect.Value) error { return nil }

func (w *configWalker) StructField(f reflect.StructField, v reflect.Value) error {
	if !v.CanInterface() {
		return nil
	}

	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return nil
	}

	name := strings.Split(f.Tag.Get("mapstructure"), ",")[0]
	if name == "" {
		name = f.Name
	}

	value := fmt.Sprintf("%v", v.Interface())
	if isSensitiveName(name) {
		value = "<sensitive>"
	}

	w.say(fmt.Sprintf("%s=%s", name, value))
	return nil
}

func isSensitiveName(name string) bool {
	lower := strings.ToLower(name)
	for _, fragment := range []string{"secret", "password", "token", "credential"} {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
