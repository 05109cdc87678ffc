package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/graph"
)

// WriteGraph encodes g in format f and writes it to w.
// The output can be re-imported with [ReadGraph].
func WriteGraph(g graph.Graph, w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return graph.WriteGraph(g, w)
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(g); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unsupported graph format %q", f)
	}
}

// WriteJSON encodes g as indented JSON.
func WriteJSON(g graph.Graph, w io.Writer) error {
	return WriteGraph(g, w, FormatJSON)
}

// ExportFile writes g to path, choosing the format from the extension.
func ExportFile(g graph.Graph, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return WriteGraph(g, out, f)
}
