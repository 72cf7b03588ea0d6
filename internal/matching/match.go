// Package matching scores free-text utterances against catalog subsets and
// resolves menu items, options, and coarse intents. It is deliberately
// deterministic: fixed weights, fixed keyword tables, no learned components.
// The thresholds below are load-bearing; the candidate reduction policy and
// the dialog layer's disambiguation behavior are tuned around them.
package matching

import (
	"sort"
	"strings"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/logging"
)

// Candidate pairs a product with its match score.
type Candidate struct {
	Product catalog.Product
	Score   float64
}

// Result is the outcome of matching one utterance against a product set.
type Result struct {
	Candidates []Candidate
	Keywords   Keywords
}

// Scoring weights and reduction thresholds.
const (
	rawContainScore     = 100.0 // utterance/name containment, raw strings
	cleanedContainScore = 120.0 // containment after generic-word removal
	skeletonBonus       = 50.0  // phonetic lead-sound containment
	cleanedSimWeight    = 40.0  // edit-distance similarity, cleaned strings
	rawSimWeight        = 20.0  // edit-distance similarity, raw strings
	wordBonus           = 25.0  // per contained word of length >= 2
	servingBonus        = 30.0  // set/single qualifier alignment
	minCandidateScore   = 10.0  // candidates at or below are discarded

	exactThreshold = 100.0 // top score at or above: treat as exact match
	clearGap       = 30.0  // rank1-rank2 gap at or above: rank-1 only
	pairGap        = 50.0  // max gap for the single/set pair special case
)

// Match scores the utterance against every product and applies the
// candidate reduction policy. Candidates come back sorted by descending
// score; zero, one, or two candidates are returned, never more.
func Match(utterance string, products []catalog.Product, lang string) Result {
	log := logging.Get(logging.CategoryMatcher)

	text := strings.ToLower(strings.TrimSpace(utterance))
	kw := ExtractKeywords(text, lang)
	cleanedInput := cleanText(text, lang)
	inputSkeleton := phoneticSkeleton(text)

	var candidates []Candidate
	for _, p := range products {
		if p.Name == "" {
			continue
		}
		score := scoreProduct(text, cleanedInput, inputSkeleton, p, kw, lang)
		if score > minCandidateScore {
			candidates = append(candidates, Candidate{Product: p, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	reduced := reduceCandidates(candidates, kw, lang)
	if len(reduced) > 0 {
		log.Debug("match %q -> %d candidates, top %q (%.1f)",
			utterance, len(reduced), reduced[0].Product.Name, reduced[0].Score)
	} else {
		log.Debug("match %q -> no candidates", utterance)
	}
	return Result{Candidates: reduced, Keywords: kw}
}

func scoreProduct(text, cleanedInput, inputSkeleton string, p catalog.Product, kw Keywords, lang string) float64 {
	name := strings.ToLower(p.DisplayName(lang))
	cleanedName := cleanText(name, lang)
	nameSkeleton := phoneticSkeleton(p.Name)

	var score float64

	if strings.Contains(text, name) || strings.Contains(name, text) {
		score += rawContainScore
	}

	if cleanedInput != "" && cleanedName != "" {
		if strings.Contains(cleanedInput, cleanedName) || strings.Contains(cleanedName, cleanedInput) {
			score += cleanedContainScore
		}
		score += cleanedSimWeight * similarity(cleanedInput, cleanedName)
	}

	if inputSkeleton != "" && strings.Contains(nameSkeleton, inputSkeleton) {
		score += skeletonBonus
	}

	score += rawSimWeight * similarity(text, name)

	for _, word := range strings.Fields(cleanedInput) {
		if len([]rune(word)) < 2 {
			continue
		}
		if strings.Contains(cleanedName, word) {
			score += wordBonus
		}
	}

	if kw.IsSet && p.IsSet() {
		score += servingBonus
	} else if kw.IsSingle && !p.IsSet() {
		score += servingBonus
	}

	return score
}

// reduceCandidates applies the deterministic reduction policy:
//  1. no serving qualifier and the top-2 are a single/set pair of the same
//     base item within pairGap: keep both for disambiguation
//  2. top score at or above exactThreshold: rank-1 only
//  3. rank1-rank2 gap at or above clearGap: rank-1 only
//  4. otherwise the top-2
func reduceCandidates(candidates []Candidate, kw Keywords, lang string) []Candidate {
	if len(candidates) == 0 {
		return nil
	}

	top := candidates[0]
	if len(candidates) >= 2 && !kw.IsSet && !kw.IsSingle {
		second := candidates[1]
		gap := top.Score - second.Score
		if gap < pairGap &&
			baseName(top.Product.DisplayName(lang), lang) == baseName(second.Product.DisplayName(lang), lang) {
			return candidates[:2]
		}
	}

	if top.Score >= exactThreshold {
		return candidates[:1]
	}
	if len(candidates) > 1 && top.Score-candidates[1].Score >= clearGap {
		return candidates[:1]
	}
	if len(candidates) > 2 {
		return candidates[:2]
	}
	return candidates
}
