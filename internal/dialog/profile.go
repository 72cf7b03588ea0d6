package dialog

// AgeGroup buckets the detected customer age.
type AgeGroup string

const (
	AgeChild    AgeGroup = "child"
	AgeTeen     AgeGroup = "teen"
	AgeTwenties AgeGroup = "20s"
	AgeThirties AgeGroup = "30s"
	AgeForties  AgeGroup = "40s"
	AgeSenior   AgeGroup = "senior"
)

// Profile carries detected customer traits used to personalize prompts.
// A nil Profile means no detection ran and generic wording is used.
type Profile struct {
	AgeGroup AgeGroup
	Gender   string // "male" or "female"
}

// WelcomeMessage picks the greeting for the detected customer.
func WelcomeMessage(p *Profile, lang string) string {
	if p == nil {
		return tr("welcome", lang)
	}
	if lang == LangEnglish {
		switch p.AgeGroup {
		case AgeChild:
			return "Hi there! Let's find something yummy!"
		case AgeTeen:
			return "Welcome! Check out our popular items!"
		case AgeTwenties:
			if p.Gender == "male" {
				return "Welcome! Try our hearty combo meals!"
			}
			return "Welcome! Don't miss our new menu!"
		case AgeThirties, AgeForties:
			return "Welcome! We have great meal options for you!"
		default:
			return "Welcome! Please take your time ordering!"
		}
	}
	switch p.AgeGroup {
	case AgeChild:
		return "안녕! 어서와~ 맛있는 거 골라볼까?"
	case AgeTeen:
		if p.Gender == "male" {
			return "어서와! 인기 메뉴 확인해볼래?"
		}
		return "어서와! 맛있는 거 많아~"
	case AgeTwenties:
		if p.Gender == "male" {
			return "어서오세요! 푸짐한 세트 어때요?"
		}
		return "어서오세요! 신메뉴도 있어요~"
	case AgeThirties, AgeForties:
		if p.Gender == "male" {
			return "어서오세요! 든든한 메뉴 준비됐어요!"
		}
		return "어서오세요! 건강한 메뉴도 있답니다~"
	default:
		return "어서오세요! 편하게 주문하세요~"
	}
}

// MoreOrderMessage asks whether the customer wants anything else.
func MoreOrderMessage(p *Profile, lang string) string {
	if p == nil {
		return tr("additionalOrder", lang)
	}
	young := p.AgeGroup == AgeChild || p.AgeGroup == AgeTeen
	if lang == LangEnglish {
		if young {
			return "How about dessert or drinks?"
		}
		return "Any additional orders? We have side menus too!"
	}
	if young {
		return "디저트나 음료 더 드릴까?"
	}
	return "더 주문하실 거 있어요? 사이드 메뉴도 맛있어요!"
}

// RecommendationHint returns a suggestion line for the detected customer,
// or "" when no profile is available.
func RecommendationHint(p *Profile, lang string) string {
	if p == nil {
		return ""
	}
	young := p.AgeGroup == AgeTeen || p.AgeGroup == AgeTwenties
	if lang == LangEnglish {
		switch {
		case p.AgeGroup == AgeChild:
			return "We have Kids Menu!"
		case young && p.Gender == "male":
			return "Double Whopper is popular!"
		case young:
			return "Try our Chicken Burger Set!"
		default:
			return "How about a combo meal?"
		}
	}
	switch {
	case p.AgeGroup == AgeChild:
		return "키즈 메뉴도 있어요!"
	case young && p.Gender == "male":
		return "와퍼 더블이 인기예요!"
	case young:
		return "치킨버거 세트 추천드려요!"
	default:
		return "든든한 세트 메뉴 어떠세요?"
	}
}
