package dialog

import (
	"strings"
	"testing"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/matching"
	"voicekiosk/internal/order"
)

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		123:     "123",
		6500:    "6,500",
		8900:    "8,900",
		1234567: "1,234,567",
	}
	for n, want := range cases {
		if got := FormatPrice(n); got != want {
			t.Errorf("FormatPrice(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestOptionPromptSmallGroupEnumerates(t *testing.T) {
	g := catalog.OptionGroup{Name: "음료", Options: []catalog.Option{
		{ID: 21, Name: "코카콜라(R)"},
		{ID: 22, Name: "사이다(R)"},
	}}
	got := OptionPrompt(g, true, "ko")
	if !strings.Contains(got, "1번 코카콜라(R)") || !strings.Contains(got, "2번 사이다(R)") {
		t.Errorf("prompt = %q", got)
	}
}

func TestOptionPromptLargeGroupBoilerplateOnlyFirst(t *testing.T) {
	opts := make([]catalog.Option, 6)
	for i := range opts {
		opts[i] = catalog.Option{ID: int64(i + 1), Name: "옵션"}
	}
	g := catalog.OptionGroup{Name: "사이드", Options: opts}

	first := OptionPrompt(g, true, "ko")
	if !strings.Contains(first, "화면에서") {
		t.Errorf("first prompt should carry the touch boilerplate: %q", first)
	}
	later := OptionPrompt(g, false, "ko")
	if strings.Contains(later, "화면에서") {
		t.Errorf("later prompt should omit the boilerplate: %q", later)
	}
	if later == first {
		t.Error("later prompt should be the short form")
	}
}

func TestConfirmPromptItemizesAndTotals(t *testing.T) {
	cart := []order.CartItem{
		{
			Product:    catalog.Product{ID: 2, Name: "와퍼 세트", Price: 8900},
			Options:    []catalog.Option{{ID: 12, Name: "어니언링", Price: 500}},
			TotalPrice: 9400,
		},
		{
			Product:    catalog.Product{ID: 1, Name: "와퍼", Price: 6500},
			TotalPrice: 6500,
		},
	}
	got := ConfirmPrompt(cart, "ko")
	if !strings.Contains(got, "와퍼 세트 (어니언링)") {
		t.Errorf("missing itemized options: %q", got)
	}
	if !strings.Contains(got, "15,900원") {
		t.Errorf("missing grand total: %q", got)
	}

	if got := ConfirmPrompt(nil, "ko"); !strings.Contains(got, "주문하신 내역이 없어요") {
		t.Errorf("empty-cart prompt = %q", got)
	}
}

func TestDisambiguationPromptCapsAtThree(t *testing.T) {
	cands := []matching.Candidate{
		{Product: catalog.Product{ID: 1, Name: "와퍼"}},
		{Product: catalog.Product{ID: 2, Name: "와퍼 세트"}},
		{Product: catalog.Product{ID: 3, Name: "불고기 와퍼"}},
		{Product: catalog.Product{ID: 4, Name: "불고기 와퍼 세트"}},
	}
	got := DisambiguationPrompt(cands, "ko")
	if !strings.Contains(got, "3번 불고기 와퍼") {
		t.Errorf("third candidate missing: %q", got)
	}
	if strings.Contains(got, "4번") {
		t.Errorf("prompt should list at most three candidates: %q", got)
	}
}
