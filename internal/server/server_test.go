package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/models"
)

func testServer() *httptest.Server {
	cat := catalog.New([]models.Prompt{
		{ID: "zeta", Title: "Zeta", Tags: []string{"x"}, Body: "zeta body"},
		{ID: "alpha", Title: "Alpha", Tags: []string{"y"}, Body: "alpha body"},
	})
	return httptest.NewServer(New(cat, 0).Handler())
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("failed to decode %s response: %v", url, err)
		}
	}
	return resp
}

func TestPromptsDefault(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var prompts []models.Prompt
	getJSON(t, srv.URL+"/prompts", &prompts)
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(prompts))
	}
	if prompts[0].Title != "Alpha" || prompts[1].Title != "Zeta" {
		t.Errorf("expected title order, got %s then %s", prompts[0].Title, prompts[1].Title)
	}
}

func TestPromptsFiltered(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var prompts []models.Prompt
	getJSON(t, srv.URL+"/prompts?tags=x", &prompts)
	if len(prompts) != 1 || prompts[0].ID != "zeta" {
		t.Errorf("tags=x should yield only zeta, got %+v", prompts)
	}

	getJSON(t, srv.URL+"/prompts?q=alpha+body", &prompts)
	if len(prompts) != 1 || prompts[0].ID != "alpha" {
		t.Errorf("body query should yield only alpha, got %+v", prompts)
	}

	getJSON(t, srv.URL+"/prompts?sort=recency", &prompts)
	if len(prompts) != 2 || prompts[0].ID != "alpha" {
		t.Errorf("recency should put the later prompt first, got %+v", prompts)
	}
}

func TestPromptsTextFormat(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/prompts?format=text&tags=x")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	if !strings.Contains(body, "zeta\tZeta\t[x]") {
		t.Errorf("unexpected text output: %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRootServesPrompts(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var prompts []models.Prompt
	resp := getJSON(t, srv.URL+"/?q=zeta", &prompts)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(prompts) != 1 || prompts[0].ID != "zeta" {
		t.Errorf("root should serve the filtered view, got %+v", prompts)
	}
}

func TestPromptByID(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var p models.Prompt
	getJSON(t, srv.URL+"/prompts/alpha", &p)
	if p.Title != "Alpha" {
		t.Errorf("unexpected prompt: %+v", p)
	}

	resp := getJSON(t, srv.URL+"/prompts/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown id should 404, got %d", resp.StatusCode)
	}
}

func TestTags(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var tags []string
	getJSON(t, srv.URL+"/tags", &tags)
	if len(tags) != 2 || tags[0] != "x" || tags[1] != "y" {
		t.Errorf("tags = %v", tags)
	}
}

func TestExport(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var prompts []models.Prompt
	resp := getJSON(t, srv.URL+"/export", &prompts)
	if len(prompts) != 2 {
		t.Errorf("export should include the full store, got %d", len(prompts))
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "promptdeck-export.json") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestHealth(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var body map[string]string
	resp := getJSON(t, srv.URL+"/health", &body)
	if body["status"] != "ok" {
		t.Errorf("health = %v", body)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("health should carry the same CORS headers as the other endpoints")
	}
}

func TestUnknownPath(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp := getJSON(t, srv.URL+"/nowhere", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
