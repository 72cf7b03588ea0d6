package matching

import (
	"sort"
	"testing"

	"voicekiosk/internal/catalog"
)

func demoProducts() []catalog.Product {
	return catalog.Demo().Products
}

func TestMatchExactName(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "와퍼", EngName: "Whopper", Price: 6500, Type: catalog.TypeSingle},
	}

	res := Match("Whopper", products, "en")
	if len(res.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(res.Candidates))
	}
	if got := res.Candidates[0].Product.ID; got != 1 {
		t.Errorf("expected product 1, got %d", got)
	}
	if res.Candidates[0].Score < 100 {
		t.Errorf("expected exact-match score >= 100, got %.1f", res.Candidates[0].Score)
	}
}

func TestMatchSingleSetPairDisambiguation(t *testing.T) {
	// No serving qualifier and two products sharing a base name must both
	// come back so the dialog layer can ask which one.
	res := Match("불고기 와퍼", demoProducts(), "ko")
	if len(res.Candidates) != 2 {
		t.Fatalf("expected single/set pair, got %d candidates", len(res.Candidates))
	}
	ids := []int64{res.Candidates[0].Product.ID, res.Candidates[1].Product.ID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if ids[0] != 3 || ids[1] != 4 {
		t.Errorf("expected products 3 and 4, got %v", ids)
	}
}

func TestMatchServingQualifierResolvesPair(t *testing.T) {
	res := Match("불고기 와퍼 세트", demoProducts(), "ko")
	if len(res.Candidates) != 1 {
		t.Fatalf("expected 1 candidate with set qualifier, got %d", len(res.Candidates))
	}
	if got := res.Candidates[0].Product.ID; got != 4 {
		t.Errorf("expected set product 4, got %d", got)
	}
	if !res.Keywords.IsSet {
		t.Error("expected IsSet keyword")
	}
}

func TestMatchNoCandidates(t *testing.T) {
	res := Match("피자 주세요", demoProducts(), "ko")
	if len(res.Candidates) != 0 {
		t.Errorf("expected no candidates for off-menu item, got %d", len(res.Candidates))
	}
}

func TestMatchCandidatesSortedDescending(t *testing.T) {
	res := Match("치킨버거", demoProducts(), "ko")
	if len(res.Candidates) == 0 {
		t.Fatal("expected candidates")
	}
	for i := 1; i < len(res.Candidates); i++ {
		if res.Candidates[i].Score > res.Candidates[i-1].Score {
			t.Errorf("candidates not sorted: %.1f before %.1f",
				res.Candidates[i-1].Score, res.Candidates[i].Score)
		}
	}
}

func TestMatchSkipsNamelessProducts(t *testing.T) {
	products := []catalog.Product{
		{ID: 9, Price: 1000},
		{ID: 1, Name: "와퍼", Price: 6500},
	}
	res := Match("와퍼", products, "ko")
	for _, c := range res.Candidates {
		if c.Product.ID == 9 {
			t.Error("nameless product must not match")
		}
	}
}

func TestMatchReturnsAtMostTwo(t *testing.T) {
	res := Match("버거", demoProducts(), "ko")
	if len(res.Candidates) > 2 {
		t.Errorf("reduction must cap candidates at 2, got %d", len(res.Candidates))
	}
}

func TestPhoneticSkeleton(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"와퍼", "ㅇㅍ"},
		{"불고기", "ㅂㄱㄱ"},
		{"치킨버거", "ㅊㅋㅂㄱ"},
		{"whopper", ""},
		{"와퍼 세트", "ㅇㅍㅅㅌ"},
	}
	for _, tc := range cases {
		if got := phoneticSkeleton(tc.in); got != tc.want {
			t.Errorf("phoneticSkeleton(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"와퍼", "와퍼", 0},
		{"와퍼", "와퍼 세트", 3},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilarityBounds(t *testing.T) {
	if got := similarity("와퍼", "와퍼"); got != 1.0 {
		t.Errorf("identical strings: got %.2f, want 1.0", got)
	}
	if got := similarity("", ""); got != 1.0 {
		t.Errorf("empty strings: got %.2f, want 1.0", got)
	}
	if got := similarity("abcd", "wxyz"); got != 0.0 {
		t.Errorf("disjoint strings: got %.2f, want 0.0", got)
	}
}
