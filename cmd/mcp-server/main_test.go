package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/njchilds90/gograph"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(newMux())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("want 200, got %d", resp.StatusCode)
	}
}

func TestToolCall(t *testing.T) {
	srv := httptest.NewServer(newMux())
	defer srv.Close()

	body := `{"tool":"simplify","params":{"input":"2x + 3x"}}`
	resp, err := http.Post(srv.URL+"/tool", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /tool: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var out gograph.ToolResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.String != "5x" {
		t.Errorf("want 5x, got %q (error %q)", out.String, out.Error)
	}
}

func TestToolCall_BadRequests(t *testing.T) {
	srv := httptest.NewServer(newMux())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/tool")
	if err != nil {
		t.Fatalf("GET /tool: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("want 405, got %d", resp.StatusCode)
	}

	for _, body := range []string{
		`{"tool":"simplify","extra":1}`,
		`{"tool":"simplify"} {"tool":"parse"}`,
		`not json`,
	} {
		resp, err := http.Post(srv.URL+"/tool", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST /tool: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: want 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestSchema(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))
	var spec map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if _, ok := spec["tools"]; !ok {
		t.Errorf("schema has no tools")
	}
}
