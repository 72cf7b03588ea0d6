package dialog

// Language codes accepted throughout the package. Anything other than "en"
// falls back to Korean, which is the kiosk's primary locale.
const (
	LangKorean  = "ko"
	LangEnglish = "en"
)

var koMessages = map[string]string{
	"welcome":             "안녕하세요! 주문을 도와드릴게요. 무엇을 드시겠어요?",
	"howCanIHelp":         "주문하실 메뉴를 말씀해주세요.",
	"menuNotFound":        "죄송해요, 말씀하신 메뉴를 찾지 못했어요. 다시 말씀해주시겠어요?",
	"selectedSuffix":      " 선택하셨습니다.",
	"whichMenu":           "어떤 메뉴를 말씀하시는 걸까요?",
	"chooseByNumber":      "번호나 이름으로 말씀해주세요.",
	"selectOptionPrefix":  "을(를) 선택해주세요.",
	"optionTouchHint":     "화면에서 직접 선택하시거나 말씀해주세요.",
	"optionShortPrefix":   "도 선택해주세요.",
	"additionalOrder":     "추가로 주문하실 게 있으신가요?",
	"yesPleaseSpeak":      "네, 말씀해주세요.",
	"noOrders":            "주문하신 내역이 없어요. 메뉴를 말씀해주세요.",
	"orderDetails":        "주문 내역을 확인해주세요.",
	"totalIsPrefix":       "총 ",
	"totalIsSuffix":       "원입니다.",
	"orderConfirm":        "이대로 주문할까요?",
	"proceedPayment":      "결제를 진행할게요. 카드를 넣어주세요.",
	"modifyOrder":         "주문을 변경하실 메뉴를 말씀해주세요.",
	"paymentCompleted":    "결제가 완료되었습니다. 주문번호를 확인해주세요. 감사합니다!",
	"paymentFailed":       "결제에 실패했어요. 다시 시도해주세요.",
	"pleaseOrderAgain":    "처음부터 다시 주문해주세요.",
	"currency":            "원",
}

var enMessages = map[string]string{
	"welcome":             "Hello! I can help you order. What would you like?",
	"howCanIHelp":         "Please tell me the menu you would like to order.",
	"menuNotFound":        "Sorry, I couldn't find that menu. Could you say it again?",
	"selectedSuffix":      " selected.",
	"whichMenu":           "Which menu do you mean?",
	"chooseByNumber":      "Please answer with a number or a name.",
	"selectOptionPrefix":  ", please choose one.",
	"optionTouchHint":     "You can also pick directly on the screen.",
	"optionShortPrefix":   " as well, please.",
	"additionalOrder":     "Would you like to order anything else?",
	"yesPleaseSpeak":      "Sure, go ahead.",
	"noOrders":            "Your cart is empty. Please tell me a menu.",
	"orderDetails":        "Please check your order.",
	"totalIsPrefix":       "The total is ",
	"totalIsSuffix":       " won.",
	"orderConfirm":        "Shall I place this order?",
	"proceedPayment":      "Proceeding to payment. Please insert your card.",
	"modifyOrder":         "Please tell me the menu you would like to change.",
	"paymentCompleted":    "Payment completed. Please check your order number. Thank you!",
	"paymentFailed":       "Payment failed. Please try again.",
	"pleaseOrderAgain":    "Please start your order again.",
	"currency":            " won",
}

// tr returns the localized message for key, falling back to Korean and then
// to the key itself so a missing entry never yields an empty prompt.
func tr(key, lang string) string {
	if lang == LangEnglish {
		if s, ok := enMessages[key]; ok {
			return s
		}
	}
	if s, ok := koMessages[key]; ok {
		return s
	}
	return key
}
