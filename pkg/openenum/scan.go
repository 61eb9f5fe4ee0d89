package openenum

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Unknown is an open enum value found by Scan that is not in its type's
// known table.
type Unknown struct {
	Path  string `json:"path" yaml:"path"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

type knower interface {
	IsKnown() bool
}

// Scan walks a decoded value and reports every open enum value that its type
// does not recognize. Paths use JSON field names, e.g.
// "properties.severity" or "value[2].kind". Unexported fields are skipped.
func Scan(v any) []Unknown {
	var out []Unknown
	scan(reflect.ValueOf(v), "", &out)
	return out
}

func scan(v reflect.Value, path string, out *[]Unknown) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			scan(v.Elem(), path, out)
		}
	case reflect.String:
		if !v.CanInterface() || v.Len() == 0 {
			return
		}
		if k, ok := v.Interface().(knower); ok && !k.IsKnown() {
			*out = append(*out, Unknown{Path: path, Type: v.Type().Name(), Value: v.String()})
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, skip := jsonName(f)
			if skip {
				continue
			}
			if f.Anonymous && name == "" {
				scan(v.Field(i), path, out)
				continue
			}
			if name == "" {
				name = f.Name
			}
			scan(v.Field(i), join(path, name), out)
		}
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return
		}
		for i := 0; i < v.Len(); i++ {
			scan(v.Index(i), fmt.Sprintf("%s[%d]", path, i), out)
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
		for _, k := range keys {
			scan(v.MapIndex(k), join(path, fmt.Sprint(k)), out)
		}
	}
}

func jsonName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}
	return name, false
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
