package common

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// IsEmptyPayload reports whether data counts as "no data": nil, a nil
// pointer, map or slice, false, "" or a numeric zero.
func IsEmptyPayload(data any) bool {
	if data == nil {
		return true
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0 || math.IsNaN(rv.Float())
	}
	return false
}

// IsListPayload reports whether data holds a list of records.
func IsListPayload(data any) bool {
	if data == nil {
		return false
	}
	kind := reflect.ValueOf(data).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// TypedPayload returns the records of a payload that already holds T, *T,
// []T or []*T. ok is false for any other payload.
func TypedPayload[T any](data any) (records []T, list bool, ok bool) {
	switch p := data.(type) {
	case T:
		return []T{p}, false, true
	case *T:
		if p == nil {
			return nil, false, false
		}
		return []T{*p}, false, true
	case []T:
		return p, true, true
	case []*T:
		records = make([]T, len(p))
		for i, r := range p {
			if r != nil {
				records[i] = *r
			}
		}
		return records, true, true
	}
	return nil, false, false
}

// DecodePayload converts a fragment payload into records of type T.
//
// The payload may already hold T, *T, []T or []*T, or it may be generic
// decoded JSON/YAML (map[string]any, []any). Keys without a field in T are
// ignored, so T can be a projection of just the fields a caller reads.
// list reports whether the payload was a list; for a single payload
// records has exactly one element.
func DecodePayload[T any](data any) (records []T, list bool, err error) {
	if data == nil {
		return nil, false, fmt.Errorf("%w: payload is empty", ErrMalformedInput)
	}
	if records, list, ok := TypedPayload[T](data); ok {
		return records, list, nil
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		records = make([]T, 0, rv.Len())
		if err := decode(data, &records); err != nil {
			return nil, true, err
		}
		return records, true, nil
	case reflect.Map, reflect.Struct:
		var record T
		if err := decode(data, &record); err != nil {
			return nil, false, err
		}
		return []T{record}, false, nil
	default:
		return nil, false, fmt.Errorf("%w: unsupported payload type %T", ErrMalformedInput, data)
	}
}

func decode(input any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   result,
	})
	if err != nil {
		return fmt.Errorf("%w: could not create payload decoder: %v", ErrMalformedInput, err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: could not decode payload: %v", ErrMalformedInput, err)
	}
	return nil
}
