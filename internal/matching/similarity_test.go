package matching

import "testing"

func TestSimilarityIdentity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"go", "Software Engineer", "c++", "remote"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Fatalf("expected similarity 1.0 for %q, got %v", s, got)
		}
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"software engineer", "software developer"},
		{"Remote", "Berlin"},
		{"python", "typescript"},
		{"Full-Time", "full time"},
	}
	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Fatalf("similarity is not symmetric for %q/%q: %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestSimilarityNormalizesCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	if got := Similarity("  Hello ", "hello"); got != 1.0 {
		t.Fatalf("expected 1.0 after normalization, got %v", got)
	}
}

func TestSimilarityDisjointStrings(t *testing.T) {
	t.Parallel()

	if got := Similarity("aaaa", "bbbb"); got != 0 {
		t.Fatalf("expected 0 for disjoint strings, got %v", got)
	}
}

func TestSimilarityMonotonicWithEditProximity(t *testing.T) {
	t.Parallel()

	near := Similarity("software engineer", "software enginee")
	far := Similarity("software engineer", "gardener")
	if near <= far {
		t.Fatalf("expected %v > %v", near, far)
	}
	if near >= 1.0 {
		t.Fatalf("expected a near-miss to stay below 1.0, got %v", near)
	}
}
