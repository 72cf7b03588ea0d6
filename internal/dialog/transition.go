package dialog

import (
	"voicekiosk/internal/catalog"
	"voicekiosk/internal/matching"
	"voicekiosk/internal/order"
)

// Payload carries the data an action needs. Only the fields relevant to a
// given action are read; the rest stay zero.
type Payload struct {
	Candidates []matching.Candidate  // MENU_MATCHED
	Product    *catalog.Product      // PRODUCT_CLARIFIED, CHECK_OPTIONS
	Option     *catalog.Option       // OPTION_SELECTED
	Remaining  []catalog.OptionGroup // OPTION_SELECTED, groups still unresolved
	Cart       []order.CartItem      // NO_MORE_ORDER
}

// Result describes the outcome of a transition. Slice fields use nil to mean
// "leave the session field alone" and a non-nil (possibly empty) slice to
// mean "replace"; Product follows the same convention with nil.
type Result struct {
	NewState       State
	Message        string
	Product        *catalog.Product
	Candidates     []matching.Candidate
	PendingOptions []catalog.OptionGroup
}

// Transition maps (state, action, payload) to its result. It never panics:
// an unhandled pair returns the current state with no message and no field
// updates, so callers can dispatch freely without pre-filtering.
func Transition(state State, action Action, p Payload, lang string, profile *Profile) Result {
	switch state {
	case StateIdle:
		if action == ActionCustomerDetected {
			return Result{NewState: StateGreeting, Message: WelcomeMessage(profile, lang)}
		}

	case StateGreeting:
		if action == ActionTTSCompleted {
			return Result{NewState: StateListening, Message: tr("howCanIHelp", lang)}
		}

	case StateListening:
		if action == ActionSpeechReceived {
			return Result{NewState: StateProcessing}
		}

	case StateProcessing:
		if action == ActionMenuMatched {
			return matchedResult(p.Candidates, lang, tr("menuNotFound", lang), StateListening)
		}

	case StateAskDisambiguation:
		if action == ActionProductClarified && p.Product != nil {
			return Result{
				NewState:   StateProductSelected,
				Message:    p.Product.DisplayName(lang) + tr("selectedSuffix", lang),
				Product:    p.Product,
				Candidates: []matching.Candidate{},
			}
		}

	case StateProductSelected:
		if action == ActionCheckOptions && p.Product != nil {
			if len(p.Product.OptionGroups) > 0 {
				pending := make([]catalog.OptionGroup, len(p.Product.OptionGroups))
				copy(pending, p.Product.OptionGroups)
				return Result{
					NewState:       StateAskOptions,
					Message:        OptionPrompt(pending[0], true, lang),
					PendingOptions: pending,
				}
			}
			return Result{NewState: StateAskMore, Message: MoreOrderMessage(profile, lang)}
		}

	case StateAskOptions:
		if action == ActionOptionSelected {
			if len(p.Remaining) > 0 {
				return Result{
					NewState:       StateAskOptions,
					Message:        OptionPrompt(p.Remaining[0], false, lang),
					PendingOptions: p.Remaining,
				}
			}
			return Result{
				NewState:       StateAskMore,
				Message:        MoreOrderMessage(profile, lang),
				PendingOptions: []catalog.OptionGroup{},
			}
		}

	case StateAskMore:
		switch action {
		case ActionMenuMatched:
			// Re-entry ordering: the customer may name a new menu directly
			// instead of answering yes or no.
			notFound := tr("menuNotFound", lang) + " " + tr("additionalOrder", lang)
			return matchedResult(p.Candidates, lang, notFound, StateAskMore)
		case ActionMoreOrder:
			return Result{NewState: StateListening, Message: tr("yesPleaseSpeak", lang)}
		case ActionNoMoreOrder:
			return Result{NewState: StateConfirm, Message: ConfirmPrompt(p.Cart, lang)}
		}

	case StateConfirm:
		switch action {
		case ActionConfirmed:
			return Result{NewState: StatePayment, Message: tr("proceedPayment", lang)}
		case ActionCancelled:
			return Result{NewState: StateListening, Message: tr("modifyOrder", lang)}
		}

	case StatePayment:
		switch action {
		case ActionPaymentCompleted:
			return Result{NewState: StateComplete, Message: tr("paymentCompleted", lang)}
		case ActionPaymentFailed:
			return Result{NewState: StateError, Message: tr("paymentFailed", lang)}
		}

	case StateComplete:
		if action == ActionReset {
			return Result{NewState: StateIdle}
		}

	case StateError:
		if action == ActionRetry {
			return Result{NewState: StateListening, Message: tr("pleaseOrderAgain", lang)}
		}
	}

	return Result{NewState: state}
}

// matchedResult handles MENU_MATCHED from any state that accepts it. An
// unambiguous match advances silently; the next prompt comes from the option
// check so the customer does not hear two sentences back to back.
func matchedResult(candidates []matching.Candidate, lang, notFound string, fallback State) Result {
	switch len(candidates) {
	case 0:
		return Result{NewState: fallback, Message: notFound}
	case 1:
		chosen := candidates[0].Product
		return Result{
			NewState:   StateProductSelected,
			Product:    &chosen,
			Candidates: []matching.Candidate{},
		}
	default:
		return Result{
			NewState:   StateAskDisambiguation,
			Message:    DisambiguationPrompt(candidates, lang),
			Candidates: candidates,
		}
	}
}
