package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/axent-pl/issuerid"
	"github.com/axent-pl/issuerid/common"
)

type inputFormat string

const (
	formatAuto inputFormat = "auto"
	formatJSON inputFormat = "json"
	formatYAML inputFormat = "yaml"
)

// readFragments loads fragments from the file named by args[0], or stdin
// when no file or "-" is given.
func readFragments(v *viper.Viper, stdin io.Reader, args []string) ([]common.Fragment, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var data []byte
	var err error
	if name == "-" {
		log.Debug().Msg("reading fragments from stdin")
		data, err = io.ReadAll(stdin)
	} else {
		log.Debug().Str("file", name).Msg("reading fragments")
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	format, err := detectFormat(inputFormat(v.GetString(FormatKey)), name, data)
	if err != nil {
		return nil, err
	}

	path := v.GetString(PathKey)
	if path == "" {
		if format == formatYAML {
			return issuerid.ParseFragmentsYAML(data)
		}
		return issuerid.ParseFragments(data)
	}

	var doc any
	if format == formatYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse %s document: %v", common.ErrMalformedInput, format, err)
	}
	return issuerid.SelectFragments(doc, path)
}

func detectFormat(requested inputFormat, name string, data []byte) (inputFormat, error) {
	switch requested {
	case formatJSON, formatYAML:
		return requested, nil
	case formatAuto, "":
	default:
		return "", fmt.Errorf("%w: unknown input format %q", common.ErrInvalidArgument, requested)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return formatJSON, nil
	}
	return formatYAML, nil
}
