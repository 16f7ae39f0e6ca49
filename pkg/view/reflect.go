package view

import (
	"fmt"
	"reflect"
)

func structID(target any) (string, bool) {
	value := reflect.ValueOf(target)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return "", false
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return "", false
	}

	field := value.FieldByName("ID")
	if !field.IsValid() || !field.CanInterface() {
		return "", false
	}
	id := field.Interface()
	if id == nil {
		return "", false
	}
	return fmt.Sprintf("%v", id), true
}
