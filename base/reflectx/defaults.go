// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for setting
// struct fields from their `default:` tags.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/prim/base/errors"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct
// based on their `default:` field tags. Nested struct fields without
// a tag are processed recursively. obj must be a pointer to a struct.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a pointer to a struct, not %T", obj)
	}
	if ov.IsNil() {
		return nil
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a pointer to a struct, not %T", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if fv.Kind() == reflect.Struct && !ok {
			if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value from the given string,
// converting it to the value's kind. Supported kinds are strings, bools,
// integers (including [time.Duration]), floats and string slices
// (comma separated).
func SetFromString(v reflect.Value, s string) error {
	if !v.CanSet() {
		return fmt.Errorf("value of type %s is not settable", v.Type())
	}
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", v.Type())
		}
		var parts []string
		if s != "" {
			parts = strings.Split(s, ",")
		}
		v.Set(reflect.ValueOf(parts).Convert(v.Type()))
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
