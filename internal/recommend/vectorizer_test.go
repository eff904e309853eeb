// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "dune herbert", []string{"dune", "herbert"}},
		{"punctuation and case", "The Lord of the Rings: J.R.R. Tolkien", []string{"the", "lord", "of", "the", "rings", "tolkien"}},
		{"single characters dropped", "a b cd", []string{"cd"}},
		{"digits and underscore", "1984 snake_case x2", []string{"1984", "snake_case", "x2"}},
		{"unicode letters", "Ärger über Ñandú", []string{"ärger", "über", "ñandú"}},
		{"combining marks split tokens", "cafe\u0301 na\u0308ive", []string{"cafe", "na", "ive"}},
		{"empty", "", nil},
		{"separators only", " -- / ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "of", "and", "yourselves", "amoungst"} {
		if !IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = false", w)
		}
	}
	for _, w := range []string{"dune", "herbert", "rings", ""} {
		if IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = true", w)
		}
	}
}

func TestFit_VocabularyAndIDF(t *testing.T) {
	v, vectors := Fit([]string{"dune herbert", "dune messiah herbert", "the foundation of asimov"})

	wantTerms := []string{"asimov", "dune", "foundation", "herbert", "messiah"}
	if v.Size() != len(wantTerms) {
		t.Fatalf("Size = %d, want %d", v.Size(), len(wantTerms))
	}
	for i, term := range wantTerms {
		if v.Term(i) != term {
			t.Errorf("Term(%d) = %q, want %q", i, v.Term(i), term)
		}
	}

	if _, ok := v.IDF("the"); ok {
		t.Error("stop word in vocabulary")
	}
	idf, ok := v.IDF("dune")
	if !ok || math.Abs(idf-(math.Log(4.0/3.0)+1)) > epsilon {
		t.Errorf("IDF(dune) = %v, %v", idf, ok)
	}
	idf, _ = v.IDF("messiah")
	if math.Abs(idf-(math.Log(4.0/2.0)+1)) > epsilon {
		t.Errorf("IDF(messiah) = %v", idf)
	}

	if len(vectors) != 3 {
		t.Fatalf("len(vectors) = %d", len(vectors))
	}
	for i, vec := range vectors {
		if math.Abs(vec.Norm()-1) > epsilon {
			t.Errorf("vector %d norm = %v, want 1", i, vec.Norm())
		}
		for j := 1; j < len(vec.Indices); j++ {
			if vec.Indices[j] <= vec.Indices[j-1] {
				t.Errorf("vector %d indices not ascending: %v", i, vec.Indices)
			}
		}
	}
}

func TestFit_TermCounts(t *testing.T) {
	v, vectors := Fit([]string{"dune dune herbert", "emma austen"})

	dune, _ := v.IDF("dune")
	herbert, _ := v.IDF("herbert")
	norm := math.Sqrt(4*dune*dune + herbert*herbert)

	vec := vectors[0]
	if vec.NNZ() != 2 {
		t.Fatalf("NNZ = %d, want 2", vec.NNZ())
	}
	// "dune" sorts before "herbert".
	if math.Abs(vec.Values[0]-2*dune/norm) > epsilon {
		t.Errorf("dune weight = %v, want %v", vec.Values[0], 2*dune/norm)
	}
	if math.Abs(vec.Values[1]-herbert/norm) > epsilon {
		t.Errorf("herbert weight = %v, want %v", vec.Values[1], herbert/norm)
	}
}

func TestFit_StopWordOnlyDocument(t *testing.T) {
	_, vectors := Fit([]string{"the it", "dune herbert"})

	if !vectors[0].IsZero() {
		t.Errorf("expected zero vector, got %+v", vectors[0])
	}
	if got := Cosine(vectors[0], vectors[0]); got != 0 {
		t.Errorf("Cosine(zero, zero) = %v, want 0", got)
	}
	if got := Cosine(vectors[0], vectors[1]); got != 0 {
		t.Errorf("Cosine(zero, v) = %v, want 0", got)
	}
}

func TestTransform(t *testing.T) {
	v, vectors := Fit([]string{"dune herbert", "emma austen"})

	got := v.Transform("DUNE by Herbert and unknownword")
	if math.Abs(Cosine(got, vectors[0])-1) > epsilon {
		t.Errorf("Cosine(transform, doc0) = %v, want 1", Cosine(got, vectors[0]))
	}
	if !v.Transform("nothing known").IsZero() {
		t.Error("expected zero vector for unknown terms")
	}
}

func TestCosine(t *testing.T) {
	a := Vector{Indices: []int{0, 2}, Values: []float64{3, 4}}
	b := Vector{Indices: []int{2, 5}, Values: []float64{1, 1}}

	if got := a.Dot(b); got != 4 {
		t.Errorf("Dot = %v, want 4", got)
	}
	want := 4 / (5 * math.Sqrt2)
	if got := Cosine(a, b); math.Abs(got-want) > epsilon {
		t.Errorf("Cosine = %v, want %v", got, want)
	}
	if got := Cosine(a, a); math.Abs(got-1) > epsilon {
		t.Errorf("Cosine(a, a) = %v, want 1", got)
	}
	if got := Cosine(a, Vector{}); got != 0 {
		t.Errorf("Cosine(a, zero) = %v, want 0", got)
	}
}
