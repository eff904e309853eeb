// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vector is a sparse weighted-term vector. Indices are ascending vocabulary
// positions; Values holds the weight for each.
type Vector struct {
	Indices []int
	Values  []float64
}

// NNZ returns the number of stored terms.
func (v Vector) NNZ() int { return len(v.Indices) }

// IsZero reports whether the vector has no terms.
func (v Vector) IsZero() bool { return len(v.Indices) == 0 }

// Dot returns the inner product of v and w.
func (v Vector) Dot(w Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(w.Indices) {
		switch {
		case v.Indices[i] == w.Indices[j]:
			sum += v.Values[i] * w.Values[j]
			i++
			j++
		case v.Indices[i] < w.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of v and w. A zero vector has
// similarity 0 with everything, itself included.
func Cosine(v, w Vector) float64 {
	nv, nw := v.Norm(), w.Norm()
	if nv == 0 || nw == 0 {
		return 0
	}
	return v.Dot(w) / (nv * nw)
}

// Tokenize lowercases text and returns its tokens in order: maximal runs of
// two or more letters, digits or underscores.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	var tokens []string
	start := -1
	runes := 0
	flush := func(end int) {
		if start >= 0 && runes >= 2 {
			tokens = append(tokens, text[start:end])
		}
		start, runes = -1, 0
	}
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(text))
	return tokens
}

// isWordRune is a letter, number or underscore. Combining marks are not word
// runes, so decomposed accents split a token.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// analyze tokenizes text and removes stop words.
func analyze(text string) []string {
	tokens := Tokenize(text)
	out := tokens[:0]
	for _, t := range tokens {
		if !IsStopWord(t) {
			out = append(out, t)
		}
	}
	return out
}

// Vectorizer holds a fitted TF-IDF vocabulary. It is immutable after Fit.
type Vectorizer struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// Fit learns the vocabulary and smoothed inverse document frequencies from
// docs and returns the vectorizer along with the transformed docs, one
// L2-normalized vector per doc in input order.
//
// idf(t) = ln((1+N) / (1+df(t))) + 1
func Fit(docs []string) (*Vectorizer, []Vector) {
	analyzed := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := analyze(doc)
		analyzed[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, t := range terms {
		v.vocabulary[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, tokens := range analyzed {
		vectors[i] = v.weigh(tokens)
	}
	return v, vectors
}

// Transform vectorizes text against the fitted vocabulary. Unknown terms
// are ignored.
func (v *Vectorizer) Transform(text string) Vector {
	return v.weigh(analyze(text))
}

// weigh builds the L2-normalized count*idf vector for tokens.
func (v *Vectorizer) weigh(tokens []string) Vector {
	counts := make(map[int]int, len(tokens))
	for _, t := range tokens {
		if idx, ok := v.vocabulary[t]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	vec := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var sum float64
	for _, idx := range vec.Indices {
		w := float64(counts[idx]) * v.idf[idx]
		vec.Values = append(vec.Values, w)
		sum += w * w
	}
	norm := math.Sqrt(sum)
	for i := range vec.Values {
		vec.Values[i] /= norm
	}
	return vec
}

// Size returns the vocabulary size.
func (v *Vectorizer) Size() int { return len(v.terms) }

// Term returns the vocabulary term at index i.
func (v *Vectorizer) Term(i int) string { return v.terms[i] }

// IDF returns the weight for term and whether it is in the vocabulary.
func (v *Vectorizer) IDF(term string) (float64, bool) {
	idx, ok := v.vocabulary[term]
	if !ok {
		return 0, false
	}
	return v.idf[idx], true
}
