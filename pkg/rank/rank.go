// Package rank orders candidate articles by cosine similarity between their
// embeddings and a query embedding.
package rank

import (
	"math"
	"sort"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/news"
)

// Candidate pairs an article with its embedding.
type Candidate struct {
	Article news.Article
	Vector  []float32
}

// Result is a candidate scored against the query, score in [-1, 1].
type Result struct {
	Article news.Article
	Score   float64
}

// Rank returns the top k candidates by cosine similarity to the query,
// descending. The sort is stable, so equal scores keep their fetch order.
// k larger than the candidate count returns everything ranked; an empty
// candidate list or k <= 0 returns an empty slice. Rank never fails: a
// zero-norm or length-mismatched vector scores 0 instead of erroring.
func Rank(query []float32, candidates []Candidate, k int) []Result {
	if k < 0 {
		k = 0
	}

	results := make([]Result, len(candidates))
	queryNorm := norm(query)

	for i, c := range candidates {
		results[i] = Result{
			Article: c.Article,
			Score:   cosine(query, queryNorm, c.Vector),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k < len(results) {
		results = results[:k]
	}
	return results
}

// cosine computes dot(a,b) / (aNorm * norm(b)). aNorm is the precomputed
// L2 norm of a. Zero-norm vectors and length mismatches score 0.
func cosine(a []float32, aNorm float64, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	bNorm := norm(b)
	if aNorm == 0 || bNorm == 0 {
		return 0
	}

	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (aNorm * bNorm)
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
