package matching

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractKeywordsDigits(t *testing.T) {
	kw := ExtractKeywords("2번이랑 3번 주세요", "ko")
	if diff := cmp.Diff([]int{2, 3}, kw.Numbers); diff != "" {
		t.Errorf("numbers mismatch (-want +got):\n%s", diff)
	}
	if kw.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", kw.Quantity)
	}
}

func TestExtractKeywordsKoreanOrdinals(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"첫번째로 주세요", 1},
		{"두 번째", 2},
		{"세번째 메뉴", 3},
		{"네번째", 4},
		{"다섯번째요", 5},
	}
	for _, tc := range cases {
		kw := ExtractKeywords(tc.in, "ko")
		if len(kw.Numbers) == 0 || kw.Numbers[0] != tc.want {
			t.Errorf("ExtractKeywords(%q).Numbers = %v, want first %d", tc.in, kw.Numbers, tc.want)
		}
	}
}

func TestExtractKeywordsSetHomophoneExclusion(t *testing.T) {
	// "세트" contains the "세"=3 sound; with the reserved word present the
	// syllable must not be read as a number.
	kw := ExtractKeywords("와퍼 세트 주세요", "ko")
	for _, n := range kw.Numbers {
		if n == 3 {
			t.Errorf("homophone inside 세트 misread as 3: %v", kw.Numbers)
		}
	}
	if !kw.IsSet {
		t.Error("expected IsSet for 세트")
	}
}

func TestExtractKeywordsEnglishWordBoundary(t *testing.T) {
	// "one" embedded in another word must not parse as a number.
	kw := ExtractKeywords("onion rings please", "en")
	if len(kw.Numbers) != 0 {
		t.Errorf("expected no numbers, got %v", kw.Numbers)
	}

	kw = ExtractKeywords("number one please", "en")
	if len(kw.Numbers) != 1 || kw.Numbers[0] != 1 {
		t.Errorf("expected [1], got %v", kw.Numbers)
	}
}

func TestExtractKeywordsServingQualifiers(t *testing.T) {
	if kw := ExtractKeywords("단품으로 주세요", "ko"); !kw.IsSingle || kw.IsSet {
		t.Errorf("expected single qualifier, got %+v", kw)
	}
	if kw := ExtractKeywords("a whopper combo", "en"); !kw.IsSet {
		t.Errorf("expected set qualifier, got %+v", kw)
	}
}

func TestCleanTextStripsGenericWords(t *testing.T) {
	cases := []struct {
		in, lang, want string
	}{
		{"불고기 와퍼 세트", "ko", "불고기"},
		{"몬스터와퍼", "ko", "몬스터"},
		{"bulgogi whopper set", "en", "bulgogi"},
	}
	for _, tc := range cases {
		if got := cleanText(tc.in, tc.lang); got != tc.want {
			t.Errorf("cleanText(%q, %s) = %q, want %q", tc.in, tc.lang, got, tc.want)
		}
	}
}
