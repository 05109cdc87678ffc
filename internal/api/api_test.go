package api

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/observability"
)

const sampleBody = `{
  "graph": {
    "nodes": [
      {"id": 1, "label": "core", "tier": 1},
      {"id": 2, "label": "api", "tier": 2, "on_click": "open-api"},
      {"id": 3, "label": "web"}
    ],
    "edges": [{"from": 1, "to": 2}, {"from": 2, "to": 3}, {"from": 3, "to": 99}]
  },
  "options": {"height": "200"}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := NewServer(Config{Logger: log.New(io.Discard)})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("response has no request id")
	}
	if body := readBody(t, resp); !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/formats", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
	var body struct{ Formats []string }
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Formats) != 6 {
		t.Errorf("formats = %v, want 6 entries", body.Formats)
	}
}

func TestRenderSVG(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/render?format=svg", sampleBody)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, readBody(t, resp))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if got := resp.Header.Get("X-Ringgraph-Edges"); got != "2" {
		t.Errorf("drawn edges = %q, want 2", got)
	}
	body := readBody(t, resp)
	for _, want := range []string{`viewBox="0 0 200 200"`, `id="node-2"`, `data-action="open-api"`} {
		if !strings.Contains(body, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderDefaultsToSVG(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/render", sampleBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q, want svg", ct)
	}
}

func TestRenderJSONAndDOT(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/render?format=json", sampleBody)
	var out struct {
		Canvas struct {
			Width    float64
			Elements []json.RawMessage
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if out.Canvas.Width != 200 || len(out.Canvas.Elements) != 5 {
		t.Errorf("canvas width %v, %d elements; want 200, 5", out.Canvas.Width, len(out.Canvas.Elements))
	}

	resp = post(t, ts.URL+"/v1/render?format=dot", sampleBody)
	if body := readBody(t, resp); !strings.Contains(body, `"n1" -- "n2"`) {
		t.Errorf("dot output missing edge:\n%s", body)
	}
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/layout", sampleBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var l graph.Layout
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		t.Fatal(err)
	}
	if l.Width != 200 || l.Radius != 50 || len(l.Rings) != 3 {
		t.Errorf("layout = %+v", l)
	}
	x, y, ok := l.Nodes[0].Position()
	if !ok || x != 100 || y < 83.33 || y > 83.34 {
		t.Errorf("core at (%v, %v), want (100, 83.33)", x, y)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		status   int
		wantCode string
	}{
		{"bad format", "/v1/render?format=gif", sampleBody, 400, "INVALID_FORMAT"},
		{"malformed json", "/v1/render", `{"graph": {`, 400, "INVALID_INPUT"},
		{"missing height", "/v1/render", `{"graph": {"nodes": []}}`, 400, "INVALID_DIMENSION"},
		{"duplicate ids", "/v1/layout", `{"graph": {"nodes": [{"id": 1}, {"id": 1}]}, "options": {"height": "100"}}`, 400, "INVALID_GRAPH"},
		{"bad shape", "/v1/render", `{"graph": {"nodes": [{"id": 1, "shape_type": "star"}]}, "options": {"height": "100"}}`, 400, "INVALID_SHAPE"},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if string(body.Error.Code) != tt.wantCode {
				t.Errorf("code = %q, want %q (message %q)", body.Error.Code, tt.wantCode, body.Error.Message)
			}
			if body.RequestID == "" {
				t.Error("error body has no request id")
			}
		})
	}
}

func TestOverflowingTierIsRejected(t *testing.T) {
	body := `{"graph": {"nodes": [{"id": 1, "tier": 1}, {"id": 2, "tier": 1e308}]}, "options": {"height": "200"}}`

	ts := newTestServer(t)
	for _, path := range []string{"/v1/layout", "/v1/render?format=json", "/v1/render?format=svg"} {
		t.Run(path, func(t *testing.T) {
			resp := post(t, ts.URL+path, body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			var eb errorBody
			if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if eb.Error.Code != errs.ErrCodeInvalidInput {
				t.Errorf("code = %q, want %q", eb.Error.Code, errs.ErrCodeInvalidInput)
			}
		})
	}
}

func TestRespondUnencodable(t *testing.T) {
	s := NewServer(Config{Logger: log.New(io.Discard)})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	s.respond(rec, req, http.StatusOK, map[string]float64{"x": math.Inf(1)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var eb errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &eb); err != nil {
		t.Fatalf("body %q is not an error object: %v", rec.Body.String(), err)
	}
	if eb.Error.Code != errs.ErrCodeInternal {
		t.Errorf("code = %q, want %q", eb.Error.Code, errs.ErrCodeInternal)
	}
}

func TestRepair(t *testing.T) {
	ts := newTestServer(t)
	broken := `{"graph": {"nodes": [{"id": 1, "label": "a",},]}, "options": {"height": "100"},}`

	if resp := post(t, ts.URL+"/v1/render", broken); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("without repair: status = %d, want 400", resp.StatusCode)
	}
	if resp := post(t, ts.URL+"/v1/render?repair=true", broken); resp.StatusCode != http.StatusOK {
		t.Errorf("with repair: status = %d, want 200 (%s)", resp.StatusCode, readBody(t, resp))
	}
}

func TestBodyLimit(t *testing.T) {
	s := NewServer(Config{Logger: log.New(io.Discard), MaxBodyBytes: 16})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp := post(t, ts.URL+"/v1/render", sampleBody)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"INVALID_INPUT", 400},
		{"NOT_FOUND", 404},
		{"UNSUPPORTED", 501},
		{"INTERNAL_ERROR", 500},
		{"", 500},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := statusFor(errs.Code(tt.code)); got != tt.want {
				t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

type httpRecorder struct {
	mu     sync.Mutex
	paths  []string
	status []int
}

func (h *httpRecorder) OnRequest(context.Context, string, string) {}

func (h *httpRecorder) OnResponse(_ context.Context, _, path string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = append(h.paths, path)
	h.status = append(h.status, status)
}

func TestHTTPHooks(t *testing.T) {
	rec := &httpRecorder{}
	observability.SetHTTPHooks(rec)
	t.Cleanup(observability.Reset)

	ts := newTestServer(t)
	post(t, ts.URL+"/v1/layout", sampleBody)

	// The hook runs after the handler returns; give it a moment.
	deadline := time.Now().Add(time.Second)
	for {
		rec.mu.Lock()
		n := len(rec.paths)
		rec.mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.paths) != 1 || rec.paths[0] != "/v1/layout" || rec.status[0] != 200 {
		t.Errorf("hooks saw paths %v statuses %v", rec.paths, rec.status)
	}
}
