package descriptor

import (
	"reflect"
	"strings"
)

// ContainsNUL reports whether any string reachable from v holds a U+0000 character.
// PostgreSQL cannot store that character in text or jsonb values.
func ContainsNUL(v any) bool {
	return containsNUL(reflect.ValueOf(v))
}

func containsNUL(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.ContainsRune(v.String(), 0)
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil() && containsNUL(v.Elem())
	case reflect.Struct:
		for i := range v.NumField() {
			if v.Type().Field(i).IsExported() && containsNUL(v.Field(i)) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			if containsNUL(v.Index(i)) {
				return true
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if containsNUL(iter.Key()) || containsNUL(iter.Value()) {
				return true
			}
		}
	}
	return false
}
