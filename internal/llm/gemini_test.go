package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGemini_Generate_ParsesReply(t *testing.T) {
	var gotPath, gotKey, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{{"text": "Contractor: Acme"}},
				}},
			},
		})
	}))
	defer srv.Close()

	g := &Gemini{BaseURL: srv.URL, APIKey: "secret", HTTPClient: srv.Client()}
	reply, err := g.Generate(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if reply != "Contractor: Acme" {
		t.Errorf("reply = %q", reply)
	}
	if gotKey != "secret" {
		t.Errorf("key query param = %q, want secret", gotKey)
	}
	if !strings.HasSuffix(gotPath, "/models/"+DefaultGeminiModel+":generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if gotPrompt != "analyze this" {
		t.Errorf("prompt in body = %q", gotPrompt)
	}
}

func TestGemini_Generate_ServerErrorIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := &Gemini{BaseURL: srv.URL, APIKey: "k", HTTPClient: srv.Client()}
	if _, err := g.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

func TestGemini_Generate_MissingKeysDegradeToEmpty(t *testing.T) {
	cases := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{}}]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
	}
	for _, body := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))
		g := &Gemini{BaseURL: srv.URL, APIKey: "k", HTTPClient: srv.Client()}
		reply, err := g.Generate(context.Background(), "p")
		srv.Close()
		if err != nil {
			t.Errorf("body %s: unexpected error %v", body, err)
		}
		if reply != "" {
			t.Errorf("body %s: reply = %q, want empty", body, reply)
		}
	}
}

func TestGemini_Generate_MalformedJSONIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := &Gemini{BaseURL: srv.URL, APIKey: "k", HTTPClient: srv.Client()}
	if _, err := g.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGemini_Generate_RequiresKey(t *testing.T) {
	g := &Gemini{BaseURL: "http://localhost:0"}
	if _, err := g.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
