package rank

import (
	"math"
	"testing"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/news"
	"github.com/go-playground/assert/v2"
)

func candidate(headline string, vec ...float32) Candidate {
	return Candidate{
		Article: news.Article{Headline: headline},
		Vector:  vec,
	}
}

func TestRank_DescendingOrder(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		candidate("orthogonal", 0, 1),
		candidate("aligned", 2, 0),
		candidate("diagonal", 1, 1),
	}

	results := Rank(query, candidates, 3)

	assert.Equal(t, 3, len(results))
	assert.Equal(t, "aligned", results[0].Article.Headline)
	assert.Equal(t, "diagonal", results[1].Article.Headline)
	assert.Equal(t, "orthogonal", results[2].Article.Headline)

	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Errorf("results not in descending order at %d: %f < %f", i, results[i-1].Score, results[i].Score)
		}
	}
}

func TestRank_SelfSimilarityIsOne(t *testing.T) {
	v := []float32{0.3, -0.7, 0.2}
	results := Rank(v, []Candidate{candidate("self", 0.3, -0.7, 0.2)}, 1)

	if math.Abs(results[0].Score-1.0) > 1e-6 {
		t.Errorf("self similarity = %f, want 1.0", results[0].Score)
	}
}

func TestRank_EmptyCandidates(t *testing.T) {
	results := Rank([]float32{1, 0}, nil, 5)
	assert.Equal(t, 0, len(results))

	results = Rank([]float32{1, 0}, []Candidate{}, 0)
	assert.Equal(t, 0, len(results))
}

func TestRank_KLargerThanCandidates(t *testing.T) {
	candidates := []Candidate{
		candidate("a", 1, 0),
		candidate("b", 0, 1),
	}

	results := Rank([]float32{1, 0}, candidates, 10)
	assert.Equal(t, 2, len(results))
}

func TestRank_ReturnsMinKCandidates(t *testing.T) {
	candidates := []Candidate{
		candidate("a", 1, 0),
		candidate("b", 0, 1),
		candidate("c", 1, 1),
	}

	assert.Equal(t, 2, len(Rank([]float32{1, 0}, candidates, 2)))
	assert.Equal(t, 0, len(Rank([]float32{1, 0}, candidates, 0)))
	assert.Equal(t, 0, len(Rank([]float32{1, 0}, candidates, -1)))
}

func TestRank_ZeroNormScoresZero(t *testing.T) {
	candidates := []Candidate{
		candidate("zero vector", 0, 0),
		candidate("aligned", 1, 0),
	}

	results := Rank([]float32{1, 0}, candidates, 2)

	assert.Equal(t, "aligned", results[0].Article.Headline)
	assert.Equal(t, float64(0), results[1].Score)

	// Zero-norm query: everything scores 0, fetch order preserved.
	results = Rank([]float32{0, 0}, candidates, 2)
	assert.Equal(t, "zero vector", results[0].Article.Headline)
	assert.Equal(t, float64(0), results[0].Score)
	assert.Equal(t, float64(0), results[1].Score)
}

func TestRank_TiesKeepFetchOrder(t *testing.T) {
	candidates := []Candidate{
		candidate("first", 1, 0),
		candidate("second", 2, 0),
		candidate("third", 3, 0),
	}

	results := Rank([]float32{1, 0}, candidates, 3)

	assert.Equal(t, "first", results[0].Article.Headline)
	assert.Equal(t, "second", results[1].Article.Headline)
	assert.Equal(t, "third", results[2].Article.Headline)
}

func TestRank_DimensionMismatchScoresZero(t *testing.T) {
	results := Rank([]float32{1, 0}, []Candidate{candidate("bad dims", 1, 0, 0)}, 1)
	assert.Equal(t, float64(0), results[0].Score)
}
