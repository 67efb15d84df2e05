// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values, recursing into nested
// structs. Errors are automatically logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(setFromDefaultTags(reflect.ValueOf(cfg)))
}

func setFromDefaultTags(v reflect.Value) error {
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaults: expected struct, got %s", v.Kind())
	}
	typ := v.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		fv := v.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaultTags(fv.Addr()))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaults: field %s.%s: %w", typ.Name(), f.Name, err))
		}
	}
	return errors.Join(errs...)
}

func setString(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(x)
	default:
		return fmt.Errorf("unsupported kind %s", fv.Kind())
	}
	return nil
}

// CheckRanges returns an error for every numeric field whose value
// lies outside its `min:` / `max:` struct tag bounds, and for every
// float field that is NaN or infinite.
func CheckRanges(cfg any) error {
	return checkRanges(reflect.ValueOf(cfg), "")
}

func checkRanges(v reflect.Value, path string) error {
	v = reflect.Indirect(v)
	typ := v.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		name := f.Name
		if tn, ok := f.Tag.Lookup("toml"); ok {
			name = tn
		}
		if path != "" {
			name = path + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, checkRanges(fv, name))
			continue
		}
		var x float64
		switch fv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			x = float64(fv.Int())
		case reflect.Float32, reflect.Float64:
			x = fv.Float()
			if math.IsNaN(x) || math.IsInf(x, 0) {
				errs = append(errs, fmt.Errorf("%s = %v is not a finite number", name, x))
				continue
			}
		default:
			continue
		}
		if mn, ok := f.Tag.Lookup("min"); ok {
			if lim, err := strconv.ParseFloat(mn, 64); err == nil && !(x >= lim) {
				errs = append(errs, fmt.Errorf("%s = %v is below the minimum %s", name, x, mn))
			}
		}
		if mx, ok := f.Tag.Lookup("max"); ok {
			if lim, err := strconv.ParseFloat(mx, 64); err == nil && !(x <= lim) {
				errs = append(errs, fmt.Errorf("%s = %v is above the maximum %s", name, x, mx))
			}
		}
	}
	return errors.Join(errs...)
}
