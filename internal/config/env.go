package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// processStructFields walks a struct recursively and overrides any field
// carrying an `env` tag with the value of that environment variable.
func processStructFields(target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("config target must be a non-nil pointer")
	}
	return processValue(v.Elem())
}

func processValue(v reflect.Value) error {
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		structField := t.Field(i)

		// Recurse into nested config sections
		if field.Kind() == reflect.Struct {
			if err := processValue(field); err != nil {
				return err
			}
			continue
		}

		envName := structField.Tag.Get("env")
		if envName == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envName)
		if !exists || envValue == "" {
			continue
		}

		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(envValue)
		case reflect.Int, reflect.Int64:
			intValue, err := strconv.ParseInt(envValue, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value for %s: %w", envName, err)
			}
			field.SetInt(intValue)
		case reflect.Bool:
			boolValue, err := strconv.ParseBool(envValue)
			if err != nil {
				return fmt.Errorf("invalid boolean value for %s: %w", envName, err)
			}
			field.SetBool(boolValue)
		default:
			return fmt.Errorf("unsupported config field type %s for %s", field.Kind(), envName)
		}
	}

	return nil
}
