// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// FlagsFromParams returns a flag set named name whose flags write into
// the tagged fields of params, a pointer to a struct. A malformed
// params struct is a programming error and panics.
//
//	var params compressParams
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        return cli.FlagsFromParams("compress", &params)
//	    },
//	    Run: func(args []string) error {
//	        // params is populated here
//	    },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers one flag per tagged field of params, which must
// be a pointer to a struct.
//
// A field opts in with flag:"name" or flag:"name,n" (long name and
// one-letter shorthand). desc:"..." is the help text and default:"..."
// the default, parsed per the field's type; an absent default is the
// zero value. Supported field types are string, bool, int, int64,
// float64, [time.Duration] and []string (default is comma-separated).
//
// Embedded structs are walked recursively so flag groups like
// [JSONOutput] can be shared. Declaring a name twice panics in pflag.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(value.Elem(), flagSet)
}

// flagSpec is one parsed field tag.
type flagSpec struct {
	name         string
	shorthand    string
	description  string
	defaultValue string
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	for i := range structValue.NumField() {
		field := structValue.Type().Field(i)
		fieldValue := structValue.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStruct(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag, ok := field.Tag.Lookup("flag")
		if !ok || tag == "" {
			continue
		}
		name, shorthand, _ := strings.Cut(tag, ",")
		spec := flagSpec{
			name:         name,
			shorthand:    shorthand,
			description:  field.Tag.Get("desc"),
			defaultValue: field.Tag.Get("default"),
		}

		bind, supported := binders[field.Type]
		if !supported {
			return fmt.Errorf("field %s: unsupported type %s for flag --%s", field.Name, field.Type, spec.name)
		}
		if err := bind(flagSet, fieldValue.Addr().Interface(), spec); err != nil {
			return fmt.Errorf("field %s: default for --%s: %w", field.Name, spec.name, err)
		}
	}
	return nil
}

// binders registers a flag for a field of the keyed type. target is a
// pointer to the field.
var binders = map[reflect.Type]func(flagSet *pflag.FlagSet, target any, spec flagSpec) error{
	reflect.TypeFor[string](): func(flagSet *pflag.FlagSet, target any, spec flagSpec) error {
		flagSet.StringVarP(target.(*string), spec.name, spec.shorthand, spec.defaultValue, spec.description)
		return nil
	},
	reflect.TypeFor[bool](): func(flagSet *pflag.FlagSet, target any, spec flagSpec) error {
		return bindParsed(spec, strconv.ParseBool, func(value bool) {
			flagSet.BoolVarP(target.(*bool), spec.name, spec.shorthand, value, spec.description)
		})
	},
	reflect.TypeFor[int](): func(flagSet *pflag.FlagSet, target any, spec flagSpec) error {
		return bindParsed(spec, strconv.Atoi, func(value int) {
			flagSet.IntVarP(target.(*int), spec.name, spec.shorthand, value, spec.description)
		})
	},
	reflect.TypeFor[int64](): func(flagSet *pflag.FlagSet, target any, spec flagSpec) error {
		parse := func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
		return bindParsed(spec, parse, func(value int64) {
			flagSet.Int64VarP(target.(*int64), spec.name, spec.shorthand, value, spec.description)
		})
	},
	reflect.TypeFor[float64](): func(flagSet *pflag.FlagSet, target any, spec flagSpec) error {
		parse := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
		return bindParsed(spec, parse, func(value float64) {
			flagSet.Float64VarP(target.(*float64), spec.name, spec.shorthand, value, spec.description)
		})
	},
	reflect.TypeFor[time.Duration](): func(flagSet *pflag.FlagSet, target any, spec flagSpec) error {
		return bindParsed(spec, time.ParseDuration, func(value time.Duration) {
			flagSet.DurationVarP(target.(*time.Duration), spec.name, spec.shorthand, value, spec.description)
		})
	},
	reflect.TypeFor[[]string](): func(flagSet *pflag.FlagSet, target any, spec flagSpec) error {
		var value []string
		if spec.defaultValue != "" {
			value = strings.Split(spec.defaultValue, ",")
		}
		flagSet.StringSliceVarP(target.(*[]string), spec.name, spec.shorthand, value, spec.description)
		return nil
	},
}

// bindParsed parses the spec's default (empty means the zero value)
// and hands it to register.
func bindParsed[T any](spec flagSpec, parse func(string) (T, error), register func(T)) error {
	var value T
	if spec.defaultValue != "" {
		parsed, err := parse(spec.defaultValue)
		if err != nil {
			return err
		}
		value = parsed
	}
	register(value)
	return nil
}
