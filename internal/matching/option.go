package matching

import (
	"strings"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/logging"
)

// Confidence buckets for option matches. Low-confidence results must never
// be auto-committed by the caller; they require a re-prompt.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchKind records which resolution path produced an option match.
type MatchKind string

const (
	KindNumber  MatchKind = "number"
	KindDefault MatchKind = "default"
	KindSize    MatchKind = "size"
	KindAlias   MatchKind = "alias"
	KindText    MatchKind = "text"
)

// OptionResult is the outcome of matching one utterance against the options
// of a single group. Option is nil when nothing matched at all.
type OptionResult struct {
	Option     *catalog.Option
	Confidence Confidence
	Kind       MatchKind
	Score      float64
}

// Option fallback scoring.
const (
	optionContainScore  = 100.0
	optionSimWeight     = 50.0
	minOptionScore      = 20.0
	highConfidenceScore = 90.0
	medConfidenceScore  = 60.0
)

// Keyword shortcut tables. Bilingual on purpose: speech recognizers mix
// scripts freely ("라지로 주세요", "large로 해줘").
var defaultPhrases = []string{
	"기본", "그냥", "그대로", "기본으로",
	"default", "as it is", "no change", "keep it",
}

var largePhrases = []string{
	"큰거", "큰 거", "라지", "엘", "큰", "크게", "업사이즈", "업",
	"large", "big", "upsize", "l",
}

var regularPhrases = []string{
	"작은거", "작은 거", "레귤러", "알", "작은", "작게", "기본 사이즈",
	"regular", "small", "r",
}

// aliasTable maps colloquial terms to the catalog vocabulary that option
// names actually use. Checked in declaration order; the first alias found in
// the utterance whose target matches an option wins.
var aliasTable = []struct {
	alias   string
	targets []string
}{
	{"감자", []string{"프렌치프라이", "감자튀김", "fries"}},
	{"포테이토", []string{"프렌치프라이", "감자튀김"}},
	{"콜라", []string{"코카콜라", "coca cola", "coke"}},
	{"사이다", []string{"스프라이트", "sprite"}},
	{"어니언", []string{"양파", "onion", "어니언링"}},
	{"치즈", []string{"cheese", "치즈스틱"}},
	{"fries", []string{"프렌치프라이", "감자튀김"}},
	{"coke", []string{"코카콜라"}},
	{"cola", []string{"코카콜라"}},
	{"sprite", []string{"사이다", "스프라이트"}},
	{"onion", []string{"어니언링", "양파"}},
}

// MatchOption resolves an utterance against one option group's options.
// Resolution order: 1-based numeric/ordinal index (when allowed), keyword
// shortcuts (default phrase, size words, aliases), then fallback text
// scoring. A spoken index outside the list falls through to the later
// stages; if nothing matches there either, Option is nil with low
// confidence and the caller re-prompts.
func MatchOption(utterance string, options []catalog.Option, allowNumbers bool, lang string) OptionResult {
	log := logging.Get(logging.CategoryMatcher)
	text := strings.ToLower(strings.TrimSpace(utterance))

	if allowNumbers {
		kw := ExtractKeywords(text, lang)
		if len(kw.Numbers) > 0 {
			idx := kw.Numbers[0] - 1
			if idx >= 0 && idx < len(options) {
				opt := options[idx]
				log.Debug("option %q -> #%d %q", utterance, kw.Numbers[0], opt.Name)
				return OptionResult{Option: &opt, Confidence: ConfidenceHigh, Kind: KindNumber}
			}
			log.Debug("option %q -> index %d out of range (1..%d)", utterance, kw.Numbers[0], len(options))
		}
	}

	if r, ok := matchOptionKeywords(text, options); ok {
		log.Debug("option %q -> %q via %s", utterance, r.Option.Name, r.Kind)
		return r
	}

	return matchOptionText(text, options, log)
}

func matchOptionKeywords(text string, options []catalog.Option) (OptionResult, bool) {
	tokens := tokenize(text)

	for _, phrase := range defaultPhrases {
		if !containsKeyword(text, tokens, phrase, isLatin(phrase)) {
			continue
		}
		for i := range options {
			if options[i].IsDefault {
				return OptionResult{Option: &options[i], Confidence: ConfidenceHigh, Kind: KindDefault}, true
			}
		}
	}

	for _, phrase := range largePhrases {
		if containsKeyword(text, tokens, phrase, isLatin(phrase)) {
			if opt := findSized(options, "(L)", "large"); opt != nil {
				return OptionResult{Option: opt, Confidence: ConfidenceHigh, Kind: KindSize}, true
			}
		}
	}
	for _, phrase := range regularPhrases {
		if containsKeyword(text, tokens, phrase, isLatin(phrase)) {
			if opt := findSized(options, "(R)", "regular"); opt != nil {
				return OptionResult{Option: opt, Confidence: ConfidenceHigh, Kind: KindSize}, true
			}
		}
	}

	for _, entry := range aliasTable {
		if !containsKeyword(text, tokens, entry.alias, isLatin(entry.alias)) {
			continue
		}
		for _, target := range entry.targets {
			for i := range options {
				if strings.Contains(strings.ToLower(options[i].Name), strings.ToLower(target)) {
					return OptionResult{Option: &options[i], Confidence: ConfidenceMedium, Kind: KindAlias}, true
				}
			}
		}
	}

	return OptionResult{}, false
}

// findSized returns the first option whose name encodes the size marker,
// either as an explicit "(L)"/"(R)" suffix or as a spelled-out word.
func findSized(options []catalog.Option, marker, word string) *catalog.Option {
	for i := range options {
		name := options[i].Name
		if strings.Contains(name, marker) || strings.Contains(strings.ToLower(name), word) {
			return &options[i]
		}
	}
	return nil
}

func matchOptionText(text string, options []catalog.Option, log *logging.Logger) OptionResult {
	best := OptionResult{Confidence: ConfidenceLow, Kind: KindText}
	for i := range options {
		name := strings.ToLower(options[i].Name)
		if name == "" {
			continue
		}
		var score float64
		if strings.Contains(text, name) || strings.Contains(name, text) {
			score += optionContainScore
		}
		score += optionSimWeight * similarity(text, name)
		if score <= minOptionScore {
			continue
		}
		if best.Option == nil || score > best.Score {
			best.Option = &options[i]
			best.Score = score
		}
	}

	if best.Option == nil {
		log.Debug("option %q -> no match", text)
		return best
	}

	switch {
	case best.Score >= highConfidenceScore:
		best.Confidence = ConfidenceHigh
	case best.Score >= medConfidenceScore:
		best.Confidence = ConfidenceMedium
	default:
		best.Confidence = ConfidenceLow
	}
	log.Debug("option %q -> %q score %.1f (%s)", text, best.Option.Name, best.Score, best.Confidence)
	return best
}

// isLatin reports whether a keyword is ASCII and therefore should be
// matched on word boundaries rather than by raw substring; "l" or "r"
// inside a Korean string would otherwise match any Latin letter.
func isLatin(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
