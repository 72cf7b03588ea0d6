package matching

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Keywords are the structured signals extracted from an utterance before
// any product or option scoring happens.
type Keywords struct {
	// IsSet / IsSingle report serving qualifiers ("세트", "단품", "combo"...).
	IsSet    bool
	IsSingle bool

	// Quantity is the first number ≤ 10, defaulting to 1.
	Quantity int

	// Numbers holds every parsed number in utterance order, deduplicated.
	// Used for 1-based ordinal selection of candidates and options.
	Numbers []int
}

// Generic catalog words that carry no discriminating power; they are
// stripped before the higher-weighted containment test.
var genericWords = map[string][]string{
	"ko": {"와퍼", "버거", "세트", "단품", "메뉴"},
	"en": {"whopper", "burger", "set", "single", "combo", "meal", "menu"},
}

// Serving-suffix words stripped when comparing base names of a
// single/set pair.
var servingWords = map[string][]string{
	"ko": {"세트", "단품"},
	"en": {"set", "single", "combo", "meal"},
}

// cleanText removes generic words from text, replacing them with spaces so
// neighboring words do not fuse, then collapses whitespace.
func cleanText(text, lang string) string {
	cleaned := strings.ToLower(text)
	for _, w := range wordsFor(genericWords, lang) {
		cleaned = strings.ReplaceAll(cleaned, w, " ")
	}
	return strings.Join(strings.Fields(cleaned), " ")
}

// baseName strips serving-suffix words from a product name, for detecting
// single/set pairs of the same item.
func baseName(name, lang string) string {
	base := strings.ToLower(name)
	for _, w := range wordsFor(servingWords, lang) {
		base = strings.ReplaceAll(base, w, " ")
	}
	return strings.Join(strings.Fields(base), " ")
}

func wordsFor(m map[string][]string, lang string) []string {
	if ws, ok := m[lang]; ok {
		return ws
	}
	return m["ko"]
}

type numberWord struct {
	word  string
	value int
}

// Korean ordinals and cardinals. Sorted longest-first at init so "세번째"
// wins before its "세" substring is considered.
var koNumberWords = []numberWord{
	{"첫번째", 1}, {"첫 번째", 1}, {"첫째", 1},
	{"두번째", 2}, {"두 번째", 2}, {"둘째", 2},
	{"세번째", 3}, {"세 번째", 3}, {"셋째", 3},
	{"네번째", 4}, {"네 번째", 4}, {"넷째", 4},
	{"다섯번째", 5}, {"다섯 번째", 5},
	{"하나", 1}, {"한", 1}, {"일", 1},
	{"둘", 2}, {"두", 2}, {"이", 2},
	{"셋", 3}, {"세", 3}, {"삼", 3},
	{"넷", 4}, {"네", 4}, {"사", 4},
	{"다섯", 5}, {"오", 5},
	{"여섯", 6}, {"육", 6},
	{"일곱", 7}, {"칠", 7},
	{"여덟", 8}, {"팔", 8},
	{"아홉", 9}, {"구", 9},
	{"열", 10}, {"십", 10},
}

// English ordinals/cardinals are matched per token, so no ordering games.
var enNumberWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Reserved catalog terms that embed number homophones. When one of these is
// present, the single-syllable readings below must not be taken as numbers
// ("세트" contains the "세"=3 sound, "네이버" contains "네"=4).
var koNumberExcludeWords = []string{"세트", "세트메뉴", "이벤트", "네이버", "네트워크"}

var koAmbiguousSyllables = map[string]bool{
	"세": true, "이": true, "네": true, "한": true, "두": true,
}

func init() {
	sort.SliceStable(koNumberWords, func(i, j int) bool {
		return len([]rune(koNumberWords[i].word)) > len([]rune(koNumberWords[j].word))
	})
}

// ExtractKeywords parses serving qualifiers and numeric/ordinal references
// out of an utterance. Digit sequences are read first, then native number
// words longest-match-first.
func ExtractKeywords(text, lang string) Keywords {
	text = strings.ToLower(strings.TrimSpace(text))
	kw := Keywords{Quantity: 1}

	if lang == "en" {
		tokens := tokenize(text)
		kw.IsSet = hasAnyToken(tokens, "set", "combo", "meal")
		kw.IsSingle = hasAnyToken(tokens, "single", "only")
	} else {
		kw.IsSet = strings.Contains(text, "세트") || strings.Contains(text, "셋트")
		kw.IsSingle = strings.Contains(text, "단품")
	}

	kw.Numbers = append(kw.Numbers, parseDigits(text)...)

	if lang == "en" {
		for _, tok := range tokenize(text) {
			if n, ok := enNumberWords[tok]; ok {
				kw.Numbers = appendNumber(kw.Numbers, n)
			}
		}
	} else {
		excluded := false
		for _, w := range koNumberExcludeWords {
			if strings.Contains(text, w) {
				excluded = true
				break
			}
		}
		for _, nw := range koNumberWords {
			if !strings.Contains(text, nw.word) {
				continue
			}
			if excluded && koAmbiguousSyllables[nw.word] {
				continue
			}
			kw.Numbers = appendNumber(kw.Numbers, nw.value)
		}
	}

	if len(kw.Numbers) > 0 && kw.Numbers[0] <= 10 {
		kw.Quantity = kw.Numbers[0]
	}
	return kw
}

func parseDigits(text string) []int {
	var nums []int
	rs := []rune(text)
	for i := 0; i < len(rs); {
		if !unicode.IsDigit(rs[i]) {
			i++
			continue
		}
		j := i
		for j < len(rs) && unicode.IsDigit(rs[j]) {
			j++
		}
		if n, err := strconv.Atoi(string(rs[i:j])); err == nil {
			nums = appendNumber(nums, n)
		}
		i = j
	}
	return nums
}

func appendNumber(nums []int, n int) []int {
	for _, have := range nums {
		if have == n {
			return nums
		}
	}
	return append(nums, n)
}

// tokenize splits on anything that is not a letter or digit; used for
// word-boundary matching of English keywords.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func hasAnyToken(tokens []string, wanted ...string) bool {
	for _, tok := range tokens {
		for _, w := range wanted {
			if tok == w {
				return true
			}
		}
	}
	return false
}

// containsKeyword matches a single keyword against an utterance. Korean
// keywords match by substring (agglutinative suffixes), English ones by
// token, with multi-word phrases matched by containment.
func containsKeyword(text string, tokens []string, keyword string, wordBound bool) bool {
	if !wordBound {
		return strings.Contains(text, keyword)
	}
	if strings.ContainsAny(keyword, " '") {
		return strings.Contains(text, keyword)
	}
	return hasAnyToken(tokens, keyword)
}
