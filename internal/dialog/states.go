// Package dialog implements the kiosk conversation as a pure state machine:
// Transition maps (state, action, payload) to a next state and prompt text
// without touching any session storage. The session package owns the single
// dispatcher that applies transition results.
package dialog

// State is a conversation phase.
type State string

const (
	StateIdle              State = "IDLE"
	StateGreeting          State = "GREETING"
	StateListening         State = "LISTENING"
	StateProcessing        State = "PROCESSING"
	StateProductSelected   State = "PRODUCT_SELECTED"
	StateAskDisambiguation State = "ASK_DISAMBIGUATION"
	StateAskOptions        State = "ASK_OPTIONS"
	StateAskMore           State = "ASK_MORE"
	StateConfirm           State = "CONFIRM"
	StatePayment           State = "PAYMENT"
	StateComplete          State = "COMPLETE"
	StateError             State = "ERROR"
)

// Action is an event fed into Transition.
type Action string

const (
	ActionCustomerDetected Action = "CUSTOMER_DETECTED"
	ActionTTSCompleted     Action = "TTS_COMPLETED"
	ActionSpeechReceived   Action = "SPEECH_RECEIVED"
	ActionMenuMatched      Action = "MENU_MATCHED"
	ActionProductClarified Action = "PRODUCT_CLARIFIED"
	ActionCheckOptions     Action = "CHECK_OPTIONS"
	ActionOptionSelected   Action = "OPTION_SELECTED"
	ActionMoreOrder        Action = "MORE_ORDER"
	ActionNoMoreOrder      Action = "NO_MORE_ORDER"
	ActionConfirmed        Action = "CONFIRMED"
	ActionCancelled        Action = "CANCELLED"
	ActionPaymentCompleted Action = "PAYMENT_COMPLETED"
	ActionPaymentFailed    Action = "PAYMENT_FAILED"
	ActionReset            Action = "RESET"
	ActionRetry            Action = "RETRY"
)
