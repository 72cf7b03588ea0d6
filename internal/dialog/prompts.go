package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/matching"
	"voicekiosk/internal/order"
)

// maxListedCandidates caps how many candidates a disambiguation prompt reads
// aloud. The screen may show more but spoken prompts stay short.
const maxListedCandidates = 3

// maxListedOptions caps enumerated options inside an option prompt.
const maxListedOptions = 4

// DisambiguationPrompt enumerates the leading candidates with 1-based
// position markers so the customer can answer by number or by name.
func DisambiguationPrompt(candidates []matching.Candidate, lang string) string {
	var b strings.Builder
	for i, c := range candidates {
		if i >= maxListedCandidates {
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		if lang == LangEnglish {
			fmt.Fprintf(&b, "number %d %s", i+1, c.Product.DisplayName(lang))
		} else {
			fmt.Fprintf(&b, "%d번 %s", i+1, c.Product.DisplayName(lang))
		}
	}
	if lang == LangEnglish {
		return fmt.Sprintf("Which menu would you like? %s. %s", b.String(), tr("chooseByNumber", lang))
	}
	return fmt.Sprintf("다음 중 어떤 메뉴를 원하시나요? %s. %s", b.String(), tr("chooseByNumber", lang))
}

// OptionPrompt builds the question for one option group. For large groups the
// options are listed on screen, so the spoken prompt carries the
// number-or-touch boilerplate only on the first group of a product's
// sequence; later groups get the short form. Small groups are enumerated
// with ordinal markers.
func OptionPrompt(group catalog.OptionGroup, first bool, lang string) string {
	name := group.Name
	if len(group.Options) >= 5 {
		if first {
			if lang == LangEnglish {
				return fmt.Sprintf("Please choose %s. Say the number or touch the screen.", name)
			}
			return fmt.Sprintf("%s%s %s", name, tr("selectOptionPrefix", lang), tr("optionTouchHint", lang))
		}
		if lang == LangEnglish {
			return fmt.Sprintf("Please choose %s as well.", name)
		}
		return fmt.Sprintf("%s%s", name, tr("optionShortPrefix", lang))
	}

	var b strings.Builder
	for i, opt := range group.Options {
		if i >= maxListedOptions {
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		if lang == LangEnglish {
			fmt.Fprintf(&b, "number %d %s", i+1, opt.Name)
		} else {
			fmt.Fprintf(&b, "%d번 %s", i+1, opt.Name)
		}
	}
	if lang == LangEnglish {
		return fmt.Sprintf("Please choose %s: %s.", name, b.String())
	}
	return fmt.Sprintf("%s을(를) 골라주세요. %s 중에 말씀해주세요.", name, b.String())
}

// ConfirmPrompt itemizes the cart and reads the grand total.
func ConfirmPrompt(cart []order.CartItem, lang string) string {
	if len(cart) == 0 {
		return tr("noOrders", lang)
	}
	var items []string
	var total int64
	for _, item := range cart {
		line := item.Product.DisplayName(lang)
		if len(item.Options) > 0 {
			names := make([]string, len(item.Options))
			for i, opt := range item.Options {
				names[i] = opt.Name
			}
			line = fmt.Sprintf("%s (%s)", line, strings.Join(names, ", "))
		}
		items = append(items, line)
		total += item.TotalPrice
	}
	if lang == LangEnglish {
		return fmt.Sprintf("Your order is %s. The total is %s won. Shall I place the order?",
			strings.Join(items, ", "), FormatPrice(total))
	}
	return fmt.Sprintf("주문 내역은 %s입니다. 총 %s원입니다. 주문하시겠습니까?",
		strings.Join(items, ", "), FormatPrice(total))
}

// FormatPrice renders a won amount with thousand separators.
func FormatPrice(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
