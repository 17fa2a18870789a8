package embed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

type mockEmbedder struct {
	embedFn func(ctx context.Context, text string) ([]float32, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return m.embedFn(ctx, text)
}

func (m *mockEmbedder) Dimension() int    { return 384 }
func (m *mockEmbedder) ModelName() string { return "mock" }

func makeVector(dim int) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = float32(i) * 0.001
	}
	return v
}

func TestBatch_CountAndOrder(t *testing.T) {
	mock := &mockEmbedder{
		embedFn: func(_ context.Context, text string) ([]float32, error) {
			return []float32{float32(len(text))}, nil
		},
	}

	vecs, err := Batch(context.Background(), mock, []string{"a", "bb", "ccc"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(vecs))
	assert.Equal(t, float32(1), vecs[0][0])
	assert.Equal(t, float32(2), vecs[1][0])
	assert.Equal(t, float32(3), vecs[2][0])
}

func TestBatch_EmptyInput(t *testing.T) {
	mock := &mockEmbedder{
		embedFn: func(_ context.Context, _ string) ([]float32, error) {
			t.Fatal("should not be called for empty input")
			return nil, nil
		},
	}

	vecs, err := Batch(context.Background(), mock, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(vecs))
}

func TestBatch_Error(t *testing.T) {
	mock := &mockEmbedder{
		embedFn: func(_ context.Context, text string) ([]float32, error) {
			if text == "bad" {
				return nil, errors.New("embedding failed")
			}
			return makeVector(384), nil
		},
	}

	_, err := Batch(context.Background(), mock, []string{"ok", "bad"})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "embedding failed"))
}

func TestTruncateInput_HeadKept(t *testing.T) {
	long := strings.Repeat("x", maxInputRunes) + "TAIL"

	got := truncateInput(long)

	assert.Equal(t, maxInputRunes, len([]rune(got)))
	assert.Equal(t, false, strings.Contains(got, "TAIL"))

	assert.Equal(t, "short text", truncateInput("short text"))
}

func TestOllamaEmbedder(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)
		calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"model":      "nomic-embed-text",
			"embeddings": [][]float32{{0.1, 0.2, 0.3}},
		})
	}))
	defer srv.Close()

	e, err := NewOllamaEmbedder("", srv.URL)
	assert.Equal(t, nil, err)
	assert.Equal(t, DefaultModel, e.ModelName())
	assert.Equal(t, 0, e.Dimension())

	vec, err := e.Embed(context.Background(), "hello world")
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(vec))
	assert.Equal(t, 3, e.Dimension())

	// Warm-up plus the embed itself.
	assert.Equal(t, 2, calls)

	_, err = e.Embed(context.Background(), "second")
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, calls)
}

func TestOllamaEmbedder_WarmRetriesAfterFailure(t *testing.T) {
	var fail bool = true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, "model not found", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"embeddings": [][]float32{{0.5, 0.5}},
		})
	}))
	defer srv.Close()

	e, err := NewOllamaEmbedder("nomic-embed-text", srv.URL)
	assert.Equal(t, nil, err)

	_, err = e.Embed(context.Background(), "text")
	assert.NotEqual(t, nil, err)

	fail = false
	vec, err := e.Embed(context.Background(), "text")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(vec))
}
