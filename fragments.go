package issuerid

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"

	"github.com/axent-pl/issuerid/common"
	"github.com/axent-pl/issuerid/mapx"
)

// ParseFragments decodes a JSON array of verification fragments.
func ParseFragments(data []byte) ([]common.Fragment, error) {
	var fragments []common.Fragment
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("%w: could not parse fragments: %v", common.ErrMalformedInput, err)
	}
	return fragments, nil
}

// ParseFragmentsYAML decodes a YAML sequence of verification fragments.
func ParseFragmentsYAML(data []byte) ([]common.Fragment, error) {
	var fragments []common.Fragment
	if err := yaml.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("%w: could not parse fragments: %v", common.ErrMalformedInput, err)
	}
	return fragments, nil
}

// SelectFragments locates the fragment list inside a decoded document using
// a jq-like path (see mapx) and decodes it. An empty path treats doc itself
// as the list. A path matching several values (e.g. ".checks[*]") yields one
// fragment per value.
func SelectFragments(doc any, path string) ([]common.Fragment, error) {
	var raw any = doc
	if path != "" {
		vals, err := mapx.Get(doc, path)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid path %q: %v", common.ErrInvalidArgument, path, err)
		}
		switch {
		case len(vals) == 0:
			return nil, fmt.Errorf("%w: path %q matched nothing", common.ErrNotFound, path)
		case len(vals) == 1 && reflect.ValueOf(vals[0]).Kind() == reflect.Slice:
			raw = vals[0]
		default:
			raw = vals
		}
	}

	var fragments []common.Fragment
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &fragments,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fragment decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: could not decode fragments: %v", common.ErrMalformedInput, err)
	}
	return fragments, nil
}
