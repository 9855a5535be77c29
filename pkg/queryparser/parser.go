package queryparser

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	timeType            = reflect.TypeOf(time.Time{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// ParseQueryParams parses URL query parameters into a struct using reflection.
// Fields are matched by their `query:"param_name"` tag. Supported kinds are
// strings, ints, uints, floats, bools, slices of those, time.Time (RFC 3339
// or YYYY-MM-DD) and any type implementing encoding.TextUnmarshaler.
func ParseQueryParams(values url.Values, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to struct")
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		queryTag := fieldType.Tag.Get("query")
		if queryTag == "" {
			continue
		}

		raw, ok := values[queryTag]
		if !ok {
			continue
		}

		if err := setField(field, raw); err != nil {
			return fmt.Errorf("invalid %s: %w", queryTag, err)
		}
	}

	return nil
}

func setField(field reflect.Value, raw []string) error {
	if field.Kind() == reflect.Slice && field.Type().Elem().Kind() != reflect.Uint8 {
		return setSlice(field, raw)
	}

	value := strings.TrimSpace(raw[0])
	if value == "" {
		return nil
	}

	elem, err := parseScalar(field.Type(), value)
	if err != nil {
		return err
	}
	field.Set(elem)
	return nil
}

// setSlice accepts repeated params and comma separated values, skipping blanks.
func setSlice(field reflect.Value, raw []string) error {
	elemType := field.Type().Elem()
	slice := reflect.MakeSlice(field.Type(), 0, len(raw))

	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			elem, err := parseScalar(elemType, part)
			if err != nil {
				return err
			}
			slice = reflect.Append(slice, elem)
		}
	}

	if slice.Len() > 0 {
		field.Set(slice)
	}
	return nil
}

func parseScalar(typ reflect.Type, value string) (reflect.Value, error) {
	if typ == timeType {
		return parseTime(value)
	}

	if reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		ptr := reflect.New(typ)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value)); err != nil {
			return reflect.Value{}, err
		}
		return ptr.Elem(), nil
	}

	switch typ.Kind() {
	case reflect.String:
		return reflect.ValueOf(value).Convert(typ), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid integer value: %s", value)
		}
		return reflect.ValueOf(val).Convert(typ), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(value, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid unsigned integer value: %s", value)
		}
		return reflect.ValueOf(val).Convert(typ), nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(value, typ.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid float value: %s", value)
		}
		return reflect.ValueOf(val).Convert(typ), nil

	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid boolean value: %s", value)
		}
		return reflect.ValueOf(val).Convert(typ), nil

	default:
		return reflect.Value{}, fmt.Errorf("unsupported field type: %s", typ)
	}
}

func parseTime(value string) (reflect.Value, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return reflect.ValueOf(t), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("invalid time value: %s", value)
	}
	return reflect.ValueOf(t), nil
}

// ParseQueryParamsWithDefaults parses query parameters and applies default values
// to fields left at their zero value. defaults is keyed by query tag.
func ParseQueryParamsWithDefaults(values url.Values, target any, defaults map[string]any) error {
	if err := ParseQueryParams(values, target); err != nil {
		return err
	}

	rv := reflect.ValueOf(target).Elem()
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() || !field.IsZero() {
			continue
		}

		defaultValue, exists := defaults[rt.Field(i).Tag.Get("query")]
		if !exists {
			continue
		}

		defaultVal := reflect.ValueOf(defaultValue)
		if defaultVal.Type().ConvertibleTo(field.Type()) {
			field.Set(defaultVal.Convert(field.Type()))
		}
	}

	return nil
}
