// Package jsonbind binds a parsed value.Value tree into caller-defined Go
// structs via reflection, the way encoding/json binds into structs from raw
// bytes. It is a separate, opt-in package: importing jlex or jlex/value
// alone never pulls reflection in, so a caller who only needs jlex's
// no-allocation traversal primitives doesn't pay for it.
package jsonbind

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/streamjson/jlex/value"
)

// Bind decodes v into dst, which must be a non-nil pointer. Struct fields
// are matched by a "json" tag if present, falling back to a
// case-insensitive match on the field name; a tag of "-" skips the field
// the same way encoding/json does.
func Bind(v value.Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("jsonbind: Bind requires a non-nil pointer, got %T", dst)
	}
	return bindValue(v, rv.Elem())
}

func bindValue(v value.Value, dst reflect.Value) error {
	if dst.Kind() == reflect.Ptr {
		if v.Kind == value.KindNull {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return bindValue(v, dst.Elem())
	}

	if dst.Type() == reflect.TypeOf(value.Value{}) {
		dst.Set(reflect.ValueOf(v))
		return nil
	}

	switch v.Kind {
	case value.KindNull:
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	case value.KindBool:
		return bindBool(v, dst)
	case value.KindNumber:
		return bindNumber(v, dst)
	case value.KindString:
		return bindString(v, dst)
	case value.KindArray:
		return bindArray(v, dst)
	case value.KindObject:
		return bindObject(v, dst)
	default:
		return fmt.Errorf("jsonbind: value with unknown kind %v", v.Kind)
	}
}

func bindBool(v value.Value, dst reflect.Value) error {
	if dst.Kind() != reflect.Bool {
		return typeErr(v, dst)
	}
	dst.SetBool(v.Bool)
	return nil
}

func bindNumber(v value.Value, dst reflect.Value) error {
	s := string(v.Num)
	switch dst.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("jsonbind: number %q: %w", s, err)
		}
		dst.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !v.Parts.IsInt() {
			return fmt.Errorf("jsonbind: number %q is not an integer", s)
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("jsonbind: number %q: %w", s, err)
		}
		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !v.Parts.IsInt() {
			return fmt.Errorf("jsonbind: number %q is not an integer", s)
		}
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("jsonbind: number %q: %w", s, err)
		}
		dst.SetUint(u)
	default:
		return typeErr(v, dst)
	}
	return nil
}

func bindString(v value.Value, dst reflect.Value) error {
	if dst.Kind() != reflect.String {
		return typeErr(v, dst)
	}
	dst.SetString(v.Str)
	return nil
}

func bindArray(v value.Value, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(dst.Type(), len(v.Array), len(v.Array))
		for i, e := range v.Array {
			if err := bindValue(e, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Array:
		if dst.Len() != len(v.Array) {
			return fmt.Errorf("jsonbind: array length %d does not match [%d]%s", len(v.Array), dst.Len(), dst.Type().Elem())
		}
		for i, e := range v.Array {
			if err := bindValue(e, dst.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return typeErr(v, dst)
	}
}

func bindObject(v value.Value, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Struct:
		fields := structFields(dst.Type())
		for _, m := range v.Object {
			fi, ok := fields[strings.ToLower(m.Key)]
			if !ok {
				log.Debug().Str("field", m.Key).Msg("jsonbind: ignoring unknown object field")
				continue
			}
			if err := bindValue(m.Value, dst.Field(fi)); err != nil {
				return fmt.Errorf("jsonbind: field %q: %w", m.Key, err)
			}
		}
		return nil
	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return typeErr(v, dst)
		}
		out := reflect.MakeMapWithSize(dst.Type(), len(v.Object))
		elemType := dst.Type().Elem()
		for _, m := range v.Object {
			ev := reflect.New(elemType).Elem()
			if err := bindValue(m.Value, ev); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(m.Key).Convert(dst.Type().Key()), ev)
		}
		dst.Set(out)
		return nil
	default:
		return typeErr(v, dst)
	}
}

// structFields maps a lower-cased JSON name to a field index, honoring a
// "json" struct tag (with its "-" skip convention) over the field's own
// name.
func structFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			if comma := strings.IndexByte(tag, ','); comma >= 0 {
				tag = tag[:comma]
			}
			if tag != "" {
				name = tag
			}
		}
		fields[strings.ToLower(name)] = i
	}
	return fields
}

func typeErr(v value.Value, dst reflect.Value) error {
	return fmt.Errorf("jsonbind: cannot bind %s into %s", v.Kind, dst.Type())
}
