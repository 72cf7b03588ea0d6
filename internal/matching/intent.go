package matching

import "strings"

// Answer is a yes/no classification of a confirmation utterance.
type Answer string

const (
	AnswerYes     Answer = "yes"
	AnswerNo      Answer = "no"
	AnswerUnknown Answer = "unknown"
)

// MoreOrder classifies the reply to "anything else?". Both explicit
// "nothing more" and explicit "pay now" phrasing resolve to MoreOrderPay:
// either way the session proceeds to payment. That merging is a product
// decision, not an accident.
type MoreOrder string

const (
	MoreOrderYes     MoreOrder = "yes"
	MoreOrderPay     MoreOrder = "pay"
	MoreOrderUnknown MoreOrder = "unknown"
)

var confirmPositive = map[string][]string{
	"ko": {"네", "예", "응", "좋아", "맞아", "그래", "오케이", "ㅇㅋ", "ok", "확인"},
	"en": {"yes", "yeah", "yep", "sure", "ok", "okay", "confirm", "correct", "right"},
}

var confirmNegative = map[string][]string{
	"ko": {"아니", "아뇨", "싫어", "다시", "취소", "안"},
	"en": {"no", "nope", "cancel", "wrong", "not", "again"},
}

var payKeywords = map[string][]string{
	"ko": {"결제", "계산", "지불"},
	"en": {"pay", "checkout", "payment", "pay now", "check out"},
}

var noMoreKeywords = map[string][]string{
	"ko": {"없어", "없습니다", "됐어", "됐습니다", "끝", "괜찮", "아니", "아니요"},
	"en": {"no", "nope", "done", "finish", "finished", "that's all", "thats all", "nothing", "no more"},
}

var moreKeywords = map[string][]string{
	"ko": {"추가", "더", "또", "그리고", "네", "예", "응", "있어", "주세요", "주문"},
	"en": {"more", "add", "another", "also", "yes", "yeah", "and", "plus"},
}

var recommendKeywords = map[string][]string{
	"ko": {"추천", "뭐가 좋아", "뭐가 좋을까", "뭐 먹을까", "인기", "베스트", "맛있는거", "맛있는 거"},
	"en": {"recommend", "suggestion", "what do you recommend", "what should i get", "what is good", "best", "popular"},
}

// DetectConfirmation classifies an utterance as yes, no, or unknown.
// Fixed keyword sets per language; positives are checked before negatives.
func DetectConfirmation(utterance, lang string) Answer {
	text, tokens, bound := prepare(utterance, lang)
	if matchAny(text, tokens, wordsFor(confirmPositive, lang), bound) {
		return AnswerYes
	}
	if matchAny(text, tokens, wordsFor(confirmNegative, lang), bound) {
		return AnswerNo
	}
	return AnswerUnknown
}

// DetectMoreOrder classifies the reply to the "anything else?" prompt.
// Payment phrasing is checked first, then "nothing more" phrasing (which
// also proceeds to payment), then additional-order phrasing. Unknown
// usually means the customer named a menu item directly; the dispatcher
// retries the utterance as a menu match.
func DetectMoreOrder(utterance, lang string) MoreOrder {
	text, tokens, bound := prepare(utterance, lang)
	if matchAny(text, tokens, wordsFor(payKeywords, lang), bound) {
		return MoreOrderPay
	}
	if matchAny(text, tokens, wordsFor(noMoreKeywords, lang), bound) {
		return MoreOrderPay
	}
	if matchAny(text, tokens, wordsFor(moreKeywords, lang), bound) {
		return MoreOrderYes
	}
	return MoreOrderUnknown
}

// DetectRecommendation reports whether the customer is asking for a menu
// recommendation rather than naming an item.
func DetectRecommendation(utterance, lang string) bool {
	text, tokens, bound := prepare(utterance, lang)
	return matchAny(text, tokens, wordsFor(recommendKeywords, lang), bound)
}

func prepare(utterance, lang string) (text string, tokens []string, wordBound bool) {
	text = strings.ToLower(strings.TrimSpace(utterance))
	wordBound = lang == "en"
	if wordBound {
		tokens = tokenize(text)
	}
	return text, tokens, wordBound
}

func matchAny(text string, tokens []string, keywords []string, wordBound bool) bool {
	for _, kw := range keywords {
		if containsKeyword(text, tokens, kw, wordBound) {
			return true
		}
	}
	return false
}
