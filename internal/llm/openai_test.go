package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIProvider_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Trade: HVAC"}},
			},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.URL+"/v1", "test-key", "test-model")
	reply, err := p.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if reply != "Trade: HVAC" {
		t.Errorf("reply = %q", reply)
	}
}

func TestOpenAIProvider_RequiresModel(t *testing.T) {
	p := NewOpenAIProvider("", "k", "")
	if _, err := p.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error when model is unset")
	}
}
