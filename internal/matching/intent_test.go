package matching

import "testing"

func TestDetectConfirmation(t *testing.T) {
	cases := []struct {
		in, lang string
		want     Answer
	}{
		{"네 맞아요", "ko", AnswerYes},
		{"아니요", "ko", AnswerNo},
		{"음...", "ko", AnswerUnknown},
		{"yes please", "en", AnswerYes},
		{"sure", "en", AnswerYes},
		{"no, cancel that", "en", AnswerNo},
		{"hmm", "en", AnswerUnknown},
		// "know" must not trip the "no" keyword on word boundaries.
		{"I don't know", "en", AnswerUnknown},
	}
	for _, tc := range cases {
		if got := DetectConfirmation(tc.in, tc.lang); got != tc.want {
			t.Errorf("DetectConfirmation(%q, %s) = %s, want %s", tc.in, tc.lang, got, tc.want)
		}
	}
}

func TestDetectMoreOrder(t *testing.T) {
	cases := []struct {
		in, lang string
		want     MoreOrder
	}{
		// Explicit payment phrasing and explicit "nothing more" phrasing
		// both proceed to payment.
		{"no more, thanks", "en", MoreOrderPay},
		{"pay now", "en", MoreOrderPay},
		{"that's all", "en", MoreOrderPay},
		{"add a coke", "en", MoreOrderYes},
		{"another one please", "en", MoreOrderYes},
		{"a bulgogi whopper", "en", MoreOrderUnknown},
		{"결제할게요", "ko", MoreOrderPay},
		{"없어요", "ko", MoreOrderPay},
		{"더 주문할게요", "ko", MoreOrderYes},
		{"불고기 와퍼", "ko", MoreOrderUnknown},
	}
	for _, tc := range cases {
		if got := DetectMoreOrder(tc.in, tc.lang); got != tc.want {
			t.Errorf("DetectMoreOrder(%q, %s) = %s, want %s", tc.in, tc.lang, got, tc.want)
		}
	}
}

func TestDetectRecommendation(t *testing.T) {
	cases := []struct {
		in, lang string
		want     bool
	}{
		{"뭐가 좋을까요?", "ko", true},
		{"추천해 주세요", "ko", true},
		{"와퍼 주세요", "ko", false},
		{"what do you recommend", "en", true},
		{"whats popular", "en", true},
		{"a whopper please", "en", false},
	}
	for _, tc := range cases {
		if got := DetectRecommendation(tc.in, tc.lang); got != tc.want {
			t.Errorf("DetectRecommendation(%q, %s) = %v, want %v", tc.in, tc.lang, got, tc.want)
		}
	}
}
