package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected float64
		delta    float64
	}{
		{"identical", Vector{1, 0, 0}, Vector{1, 0, 0}, 1.0, 0.001},
		{"orthogonal", Vector{1, 0, 0}, Vector{0, 1, 0}, 0.0, 0.001},
		{"opposite", Vector{1, 0, 0}, Vector{-1, 0, 0}, -1.0, 0.001},
		{"similar", Vector{1, 1, 0}, Vector{1, 0, 0}, 0.707, 0.01},
		{"empty", Vector{}, Vector{}, 0.0, 0.001},
		{"different lengths", Vector{1, 0}, Vector{1, 0, 0}, 0.0, 0.001},
		{"zero vector", Vector{0, 0, 0}, Vector{1, 0, 0}, 0.0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("CosineSimilarity(%v, %v) = %f, want %f (±%f)", tt.a, tt.b, got, tt.expected, tt.delta)
			}
		})
	}
}

func TestNew(t *testing.T) {
	e, err := New(Config{})
	if err != nil || e != nil {
		t.Errorf("disabled provider: got %v, %v", e, err)
	}

	if _, err := New(Config{Provider: "word2vec"}); err == nil {
		t.Error("expected error for unknown provider")
	}

	tests := []struct {
		cfg  Config
		name string
		dims int
	}{
		{Config{Provider: "ollama"}, "ollama/nomic-embed-text", 768},
		{Config{Provider: "ollama", Model: "all-minilm"}, "ollama/all-minilm", 384},
		{Config{Provider: "openai"}, "openai/text-embedding-3-small", 1536},
		{Config{Provider: "hash", Dims: 64}, "hash/64", 64},
	}
	for _, tt := range tests {
		e, err := New(tt.cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", tt.cfg, err)
		}
		if e.Name() != tt.name || e.Dims() != tt.dims {
			t.Errorf("New(%+v) = %s/%d, want %s/%d", tt.cfg, e.Name(), e.Dims(), tt.name, tt.dims)
		}
	}
}

func TestOllamaEmbedder_Embed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Model != "all-minilm" || req.Prompt != "Qətnamə" {
			t.Errorf("unexpected request %+v", req)
		}
		json.NewEncoder(w).Encode(ollamaResponse{Embedding: []float32{0.1, 0.2, 0.3}})
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(srv.URL, "all-minilm", 3, 0)
	v, err := e.Embed(context.Background(), "Qətnamə")
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 3 || v[2] != 0.3 {
		t.Errorf("got %v", v)
	}
}

func TestOpenAIEmbedder_Embed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"data":[{"embedding":[1,0]}]}`))
	}))
	defer srv.Close()

	e := NewOpenAIEmbedder(srv.URL, "sk-test", "m", 2, 0)
	v, err := e.Embed(context.Background(), "hakim")
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 2 || v[0] != 1 {
		t.Errorf("got %v", v)
	}
}

func TestOpenAIEmbedder_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewOpenAIEmbedder(srv.URL, "", "m", 2, 0).Embed(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("expected 429 error, got %v", err)
	}
}

func TestHashEmbedder(t *testing.T) {
	e := NewHashEmbedder(128)
	ctx := context.Background()

	a, _ := e.Embed(ctx, "Ağdam rayon məhkəməsi mülki iş")
	b, _ := e.Embed(ctx, "AĞDAM RAYON MƏHKƏMƏSİ")
	c, _ := e.Embed(ctx, "kommersiya mübahisəsi Bakı")

	if len(a) != 128 {
		t.Fatalf("dims = %d", len(a))
	}
	if CosineSimilarity(a, b) <= CosineSimilarity(a, c) {
		t.Errorf("related texts should score higher: ab=%f ac=%f",
			CosineSimilarity(a, b), CosineSimilarity(a, c))
	}

	var norm float64
	for _, x := range a {
		norm += float64(x) * float64(x)
	}
	if math.Abs(norm-1) > 1e-5 {
		t.Errorf("vector not normalized: |v|^2 = %f", norm)
	}

	z, _ := e.Embed(ctx, "  ... ")
	if CosineSimilarity(z, a) != 0 {
		t.Error("empty text should embed to the zero vector")
	}
}
