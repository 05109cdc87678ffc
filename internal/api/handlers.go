package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/ringgraph/pkg/buildinfo"
	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/graph"
	pkgio "github.com/matzehuels/ringgraph/pkg/io"
	"github.com/matzehuels/ringgraph/pkg/pipeline"
)

// Request is the body of the layout and render endpoints.
type Request struct {
	Graph   graph.Graph      `json:"graph"`
	Options pipeline.Options `json:"options"`
}

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:      "image/svg+xml",
	pipeline.FormatJSON:     "application/json",
	pipeline.FormatPDF:      "application/pdf",
	pipeline.FormatPNG:      "image/png",
	pipeline.FormatDOT:      "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatGraphviz: "image/svg+xml",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string][]string{"formats": pipeline.FormatNames()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := req.Options
	opts.Logger = s.logger.With("request_id", requestIDFrom(r.Context()))
	l, err := s.runner.Layout(r.Context(), req.Graph.Nodes, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, l.Export())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := req.Options
	format := r.URL.Query().Get("format")
	if format == "" && len(opts.Formats) > 0 {
		format = opts.Formats[0]
	}
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Logger = s.logger.With("request_id", requestIDFrom(r.Context()))

	result, err := s.runner.Execute(r.Context(), req.Graph, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data := result.Artifacts[format]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Ringgraph-Nodes", strconv.Itoa(result.Stats.NodeCount))
	w.Header().Set("X-Ringgraph-Edges", strconv.Itoa(result.Stats.DrawnEdges))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeRequest reads and validates a request body. With ?repair=true a
// malformed body is repaired before decoding.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return Request{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return Request{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "read request body")
	}

	if repair, _ := strconv.ParseBool(r.URL.Query().Get("repair")); repair {
		if data, err = pkgio.RepairJSON(data); err != nil {
			return Request{}, err
		}
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request body")
	}
	if err := req.Graph.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}
