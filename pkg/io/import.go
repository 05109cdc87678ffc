package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kaptinlin/jsonrepair"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/graph"
)

// Format is a graph file encoding.
type Format string

// Supported graph file formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer graph format from %q (use .json or .toml)", path)
	}
}

// ReadOption configures graph decoding.
type ReadOption func(*reader)

type reader struct {
	repair bool
}

// WithRepair lets [ReadGraph] fix malformed JSON (trailing commas, single
// quotes, unquoted keys, missing brackets) before giving up. It has no
// effect on TOML.
func WithRepair() ReadOption { return func(r *reader) { r.repair = true } }

// ReadGraph decodes a graph from r and validates it.
//
// Validation rejects duplicate node ids (ErrCodeInvalidGraph), unknown
// shapes (ErrCodeInvalidShape) and unsafe color or width values
// (ErrCodeInvalidInput). Dangling edges are accepted; they are dropped at
// render time. ReadGraph does not close r.
func ReadGraph(r io.Reader, f Format, opts ...ReadOption) (graph.Graph, error) {
	cfg := reader{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		g   graph.Graph
		err error
	)
	switch f {
	case FormatJSON:
		g, err = decodeJSON(r, cfg.repair)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&g)
		if err != nil {
			err = errs.Wrap(errs.ErrCodeInvalidInput, err, "decode toml")
		}
	default:
		return graph.Graph{}, errs.New(errs.ErrCodeInvalidFormat, "unsupported graph format %q", f)
	}
	if err != nil {
		return graph.Graph{}, err
	}

	if err := g.Validate(); err != nil {
		return graph.Graph{}, err
	}
	return g, nil
}

func decodeJSON(r io.Reader, repair bool) (graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return graph.Graph{}, fmt.Errorf("read: %w", err)
	}

	g, err := graph.UnmarshalGraph(data)
	if err == nil || !repair {
		if err != nil {
			return graph.Graph{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode json")
		}
		return g, nil
	}

	repaired, repairErr := RepairJSON(data)
	if repairErr != nil {
		return graph.Graph{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode json (repair failed: %v)", repairErr)
	}
	g, err = graph.UnmarshalGraph(repaired)
	if err != nil {
		return graph.Graph{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode repaired json")
	}
	return g, nil
}

// RepairJSON rewrites malformed JSON into valid JSON where it can.
func RepairJSON(data []byte) ([]byte, error) {
	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "repair json")
	}
	return []byte(repaired), nil
}

// ImportFile reads and validates a graph file. The format comes from the
// extension. A missing file is reported with ErrCodeFileNotFound.
func ImportFile(path string, opts ...ReadOption) (graph.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return graph.Graph{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return graph.Graph{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "graph file %s not found", path)
		}
		return graph.Graph{}, fmt.Errorf("open %s: %w", path, err)
	}

	g, err := ReadGraph(bytes.NewReader(data), f, opts...)
	if err != nil {
		return graph.Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ReadOptions decodes render options (canvas size and style defaults) from
// a JSON or TOML file. The result is not validated here because hosts merge
// it with flags first; the pipeline validates the merged options.
func ReadOptions(path string) (graph.Options, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return graph.Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return graph.Options{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "options file %s not found", path)
		}
		return graph.Options{}, fmt.Errorf("open %s: %w", path, err)
	}

	var opts graph.Options
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &opts)
	case FormatTOML:
		err = toml.Unmarshal(data, &opts)
	}
	if err != nil {
		return graph.Options{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode %s", path)
	}
	return opts, nil
}
