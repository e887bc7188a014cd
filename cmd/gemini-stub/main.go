// gemini-stub is a local stand-in for the generateContent endpoint so the
// pipeline can be exercised end to end without a real credential. It echoes
// a fixed, well-formed analysis reply regardless of the prompt.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func main() {
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8082"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/models/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("key") == "" {
			http.Error(w, "missing key", http.StatusUnauthorized)
			return
		}
		defer r.Body.Close()
		var req generateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) == 0 || len(req.Contents[0].Parts) == 0 {
			http.Error(w, "empty contents", http.StatusBadRequest)
			return
		}

		reply := "Contractor: Acme Builders\n" +
			"Architect: Jane Roe\n" +
			"Designer: Studio North\n" +
			"Client: Harbor Development\n" +
			"Start Date: 1/15/2025\n" +
			"End Date: 12/1/2025\n" +
			"Trade: Electrical\n" +
			"Resources: wiring, panels, conduit\n" +
			"Trade: Plumbing\n" +
			"Resources: pipes, fixtures\n"

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{{"text": reply}},
				}},
			},
		})
	})

	log.Printf("gemini-stub listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
