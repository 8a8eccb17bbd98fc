package configx

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// EnvOptions configures which environment variables are collected.
type EnvOptions struct {
	Prefix  string          // Only variables with this prefix are collected
	Environ func() []string // Source of KEY=VALUE pairs (default: os.Environ)
}

// EnvSnapshot collects environment variables matching opts.Prefix. Keys keep
// their full name, prefix included.
func EnvSnapshot(opts EnvOptions) map[string]string {
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ
	}

	snapshot := make(map[string]string)
	for _, kv := range environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, opts.Prefix) {
			continue
		}
		snapshot[key] = value
	}
	return snapshot
}

// BindEnv fills fields tagged with `env:"NAME"` from snapshot. Only fields that
// still hold their zero value are set, so explicit flags and file values win.
// Slices of strings are split on whitespace.
func BindEnv(snapshot map[string]string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to struct")
	}
	return bindStructFields(snapshot, rv.Elem())
}

func bindStructFields(snapshot map[string]string, structValue reflect.Value) error {
	structType := structValue.Type()

	for i := 0; i < structValue.NumField(); i++ {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := bindStructFields(snapshot, field); err != nil {
				return fmt.Errorf("failed to bind nested struct %s: %w", fieldType.Name, err)
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" || !field.IsZero() {
			continue
		}

		value, ok := snapshot[envTag]
		if !ok || value == "" {
			continue
		}

		if err := setFieldValue(field, value); err != nil {
			return fmt.Errorf("failed to set field %s from %s: %w", fieldType.Name, envTag, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type())
		}
		parts := strings.Fields(value)
		field.Set(reflect.ValueOf(parts).Convert(field.Type()))
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}
