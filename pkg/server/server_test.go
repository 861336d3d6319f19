package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flowdeck/flowdeck/pkg/diagram"
	"github.com/flowdeck/flowdeck/pkg/pipeline"
	"github.com/flowdeck/flowdeck/pkg/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	srv := New(pipeline.NewRunner(nil, nil, nil), st, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func testDiagram() diagram.Diagram {
	return diagram.Diagram{
		Name:        "approval",
		Orientation: diagram.Horizontal,
		Nodes: []diagram.Node{
			{ID: "a", Type: diagram.TypeStart, Label: "Start"},
			{ID: "b", Type: diagram.TypeEnd, Label: "Done"},
		},
		Edges: []diagram.Edge{
			{ID: "e1", Source: "a", Target: "b"},
		},
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestLayoutEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/layout", map[string]any{
		"diagram": testDiagram(),
		"options": map[string]any{"orientation": "horizontal"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var got struct {
		Diagram     diagram.Diagram `json:"diagram"`
		Layers      [][]string      `json:"layers"`
		DiagramHash string          `json:"diagram_hash"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Layers) != 2 {
		t.Errorf("layers = %v, want 2 layers", got.Layers)
	}
	if got.DiagramHash == "" {
		t.Error("diagram_hash missing")
	}
	if len(got.Diagram.Nodes) != 2 {
		t.Errorf("laid-out diagram has %d nodes, want 2", len(got.Diagram.Nodes))
	}
}

func TestLayoutEndpoint_BadBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/layout", "application/json",
		strings.NewReader(`{"diagram": {"orientation": "diagonal"}}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	var got struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if got.Error.Code != "INVALID_ORIENTATION" {
		t.Errorf("error code = %q, want INVALID_ORIENTATION", got.Error.Code)
	}
}

func TestRenderEndpoint_SVG(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/render?format=svg", map[string]any{
		"diagram": testDiagram(),
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(body, []byte("<svg")) {
		t.Errorf("body does not start with <svg: %.60s", body)
	}
}

func TestRenderEndpoint_BadFormat(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/render?format=gif", map[string]any{
		"diagram": testDiagram(),
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestProjectLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Create
	resp := postJSON(t, ts.URL+"/api/projects", map[string]any{
		"name":    "onboarding",
		"diagram": testDiagram(),
	})
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("create status = %d, body = %s", resp.StatusCode, body)
	}
	var created diagram.Project
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created project: %v", err)
	}
	resp.Body.Close()
	if created.ID == "" {
		t.Fatal("created project has no ID")
	}

	// Get
	resp, err := http.Get(ts.URL + "/api/projects/" + created.ID)
	if err != nil {
		t.Fatalf("GET project: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var fetched diagram.Project
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode fetched project: %v", err)
	}
	resp.Body.Close()
	if fetched.Name != "onboarding" || len(fetched.Diagram.Nodes) != 2 {
		t.Errorf("fetched project = %+v", fetched)
	}

	// List
	resp, err = http.Get(ts.URL + "/api/projects")
	if err != nil {
		t.Fatalf("GET projects: %v", err)
	}
	var listed []diagram.Project
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode project list: %v", err)
	}
	resp.Body.Close()
	if len(listed) != 1 {
		t.Errorf("listed %d projects, want 1", len(listed))
	}

	// Update
	d := testDiagram()
	d.Name = "renamed"
	data, _ := json.Marshal(map[string]any{"name": "renamed", "diagram": d})
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/projects/"+created.ID, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT project: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Delete
	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/api/projects/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE project: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	// Get after delete is 404
	resp, err = http.Get(ts.URL + "/api/projects/" + created.ID)
	if err != nil {
		t.Fatalf("GET deleted project: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get deleted status = %d, want 404", resp.StatusCode)
	}
}

func TestProjectEndpoints_NoStore(t *testing.T) {
	srv := New(pipeline.NewRunner(nil, nil, nil), nil, nil)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/projects")
	if err != nil {
		t.Fatalf("GET projects: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestCreateProject_InvalidName(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/projects", map[string]any{
		"name":    "../escape",
		"diagram": testDiagram(),
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func ExampleServer() {
	srv := New(pipeline.NewRunner(nil, nil, nil), nil, nil)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Print(string(body))
	// Output: {"status":"ok"}
}
