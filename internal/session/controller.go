package session

import (
	"sync"
	"sync/atomic"
	"time"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/dialog"
	"voicekiosk/internal/logging"
	"voicekiosk/internal/matching"
	"voicekiosk/internal/order"
)

// Config tunes a Controller. Zero values fall back to Korean, the default
// duplicate-add window, and the wall clock.
type Config struct {
	Language    string
	Profile     *dialog.Profile
	DedupWindow time.Duration
	Now         func() time.Time
}

// Outcome is what a dispatch or transcript produced: the state the session
// ended in and the prompt to speak or render. Dropped marks a transcript
// that was discarded because another one was still being interpreted.
type Outcome struct {
	State   dialog.State
	Message string
	Dropped bool
}

// Controller is the single writer over a Session. All mutation funnels
// through dispatchLocked under mu; HandleTranscript additionally carries a
// compare-and-swap in-flight guard so a second transcript arriving while the
// first is still being interpreted is dropped instead of interleaved.
type Controller struct {
	mu   sync.Mutex
	sess *Session

	catalog     *catalog.Snapshot
	dedupWindow time.Duration
	now         func() time.Time

	interpreting atomic.Bool
	orderSeq     int
}

// New builds a controller over an immutable catalog snapshot.
func New(snap *catalog.Snapshot, cfg Config) *Controller {
	if cfg.Language == "" {
		cfg.Language = dialog.LangKorean
	}
	if cfg.DedupWindow == 0 {
		cfg.DedupWindow = order.DefaultDedupWindow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	c := &Controller{
		sess:        newSession(cfg.Language, cfg.Profile),
		catalog:     snap,
		dedupWindow: cfg.DedupWindow,
		now:         cfg.Now,
	}
	logging.Get(logging.CategorySession).Info("session created: id=%s lang=%s", c.sess.ID, cfg.Language)
	return c
}

// ============================================================
// Dispatch
// ============================================================

// Dispatch feeds one action through the state machine and applies the
// result. Collaborators that produce their own actions (UI events, payment
// terminal callbacks) use this directly; voice input goes through
// HandleTranscript instead.
//
// Dispatch only transitions state; it carries no cart side effects. In
// particular, the commit of a zero-group product happens in the transcript
// and touch routes (HandleTranscript, SelectCandidate, SelectOption) before
// they fire CHECK_OPTIONS, so a raw Dispatch(ActionCheckOptions, ...)
// reaches ASK_MORE without adding anything to the cart.
func (c *Controller) Dispatch(action dialog.Action, p dialog.Payload) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(action, p)
}

func (c *Controller) dispatchLocked(action dialog.Action, p dialog.Payload) Outcome {
	prev := c.sess.State
	r := dialog.Transition(prev, action, p, c.sess.Language, c.sess.Profile)
	c.applyLocked(r)
	if r.NewState != prev {
		logging.Get(logging.CategoryDialog).Info("%s + %s -> %s", prev, action, r.NewState)
	} else {
		logging.Get(logging.CategoryDialog).Debug("%s + %s ignored", prev, action)
	}
	return Outcome{State: c.sess.State, Message: r.Message}
}

// applyLocked folds a transition result into the session. Nil slice or
// pointer fields mean "unchanged".
func (c *Controller) applyLocked(r dialog.Result) {
	c.sess.State = r.NewState
	if r.Product != nil {
		c.sess.CurrentProduct = r.Product
	}
	if r.Candidates != nil {
		c.sess.Candidates = r.Candidates
	}
	if r.PendingOptions != nil {
		c.sess.PendingOptions = r.PendingOptions
	}
	if r.Message != "" {
		c.sess.LastMessage = r.Message
	}
}

// ============================================================
// Transcript routing
// ============================================================

// HandleTranscript interprets one recognized utterance according to the
// current state. If a previous transcript is still in flight the new one is
// dropped, never queued; the recognizer will produce a fresh one.
func (c *Controller) HandleTranscript(text string) Outcome {
	if !c.interpreting.CompareAndSwap(false, true) {
		logging.Get(logging.CategoryDispatch).Warn("transcript dropped, interpreter busy: %q", text)
		return Outcome{Dropped: true}
	}
	defer c.interpreting.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sess.LastInput = text
	logging.Get(logging.CategoryDispatch).Info("state=%s transcript=%q", c.sess.State, text)

	switch c.sess.State {
	case dialog.StateListening:
		return c.handleMenuLocked(text, true)
	case dialog.StateProcessing:
		return c.handleMenuLocked(text, false)
	case dialog.StateAskDisambiguation:
		return c.handleDisambiguationLocked(text)
	case dialog.StateAskOptions:
		return c.handleOptionLocked(text)
	case dialog.StateAskMore:
		return c.handleMoreLocked(text)
	case dialog.StateConfirm:
		return c.handleConfirmLocked(text)
	default:
		logging.Get(logging.CategoryDispatch).Debug("transcript in %s ignored", c.sess.State)
		return Outcome{State: c.sess.State}
	}
}

func (c *Controller) handleMenuLocked(text string, fromListening bool) Outcome {
	lang := c.sess.Language
	if fromListening {
		if matching.DetectRecommendation(text, lang) {
			if hint := dialog.RecommendationHint(c.sess.Profile, lang); hint != "" {
				c.sess.LastMessage = hint
				return Outcome{State: c.sess.State, Message: hint}
			}
		}
		c.dispatchLocked(dialog.ActionSpeechReceived, dialog.Payload{})
	}

	res := matching.Match(text, c.catalog.Products, lang)
	out := c.dispatchLocked(dialog.ActionMenuMatched, dialog.Payload{Candidates: res.Candidates})
	if c.sess.State == dialog.StateProductSelected {
		return c.checkOptionsLocked()
	}
	return out
}

func (c *Controller) handleDisambiguationLocked(text string) Outcome {
	lang := c.sess.Language

	kw := matching.ExtractKeywords(text, lang)
	if len(kw.Numbers) > 0 {
		return c.selectCandidateLocked(kw.Numbers[0])
	}

	// No ordinal given; the customer answered by name. Re-match against the
	// candidate set only so qualifiers like "the set" can settle the pair.
	pool := make([]catalog.Product, len(c.sess.Candidates))
	for i, cand := range c.sess.Candidates {
		pool[i] = cand.Product
	}
	res := matching.Match(text, pool, lang)
	if len(res.Candidates) == 1 {
		return c.clarifyLocked(res.Candidates[0].Product)
	}

	msg := dialog.DisambiguationPrompt(c.sess.Candidates, lang)
	c.sess.LastMessage = msg
	return Outcome{State: c.sess.State, Message: msg}
}

func (c *Controller) selectCandidateLocked(k int) Outcome {
	if k < 1 || k > len(c.sess.Candidates) {
		msg := dialog.DisambiguationPrompt(c.sess.Candidates, c.sess.Language)
		c.sess.LastMessage = msg
		return Outcome{State: c.sess.State, Message: msg}
	}
	return c.clarifyLocked(c.sess.Candidates[k-1].Product)
}

func (c *Controller) clarifyLocked(p catalog.Product) Outcome {
	c.dispatchLocked(dialog.ActionProductClarified, dialog.Payload{Product: &p})
	return c.checkOptionsLocked()
}

// checkOptionsLocked advances a freshly selected product. A product without
// option groups is committed to the cart here, before the state machine
// moves to ASK_MORE, so the session is never in ASK_MORE with an uncommitted
// product.
func (c *Controller) checkOptionsLocked() Outcome {
	p := c.sess.CurrentProduct
	if p == nil {
		return Outcome{State: c.sess.State}
	}
	if len(p.OptionGroups) == 0 {
		c.addToCartLocked(*p, nil)
	}
	return c.dispatchLocked(dialog.ActionCheckOptions, dialog.Payload{Product: p})
}

func (c *Controller) handleOptionLocked(text string) Outcome {
	if len(c.sess.PendingOptions) == 0 {
		return Outcome{State: c.sess.State}
	}
	lang := c.sess.Language
	group := c.sess.PendingOptions[0]

	r := matching.MatchOption(text, group.Options, true, lang)
	if r.Option == nil || r.Confidence == matching.ConfidenceLow {
		logging.Get(logging.CategoryDispatch).Info("option unresolved for group=%q input=%q", group.Name, text)
		msg := dialog.OptionPrompt(group, false, lang)
		c.sess.LastMessage = msg
		return Outcome{State: c.sess.State, Message: msg}
	}
	return c.commitOptionLocked(*r.Option)
}

// commitOptionLocked records one resolved option and advances the queue.
// The last group triggers exactly one cart commit, before the transition to
// ASK_MORE fires.
func (c *Controller) commitOptionLocked(opt catalog.Option) Outcome {
	c.sess.SelectedOptions = append(c.sess.SelectedOptions, opt)
	remaining := c.sess.PendingOptions[1:]

	if len(remaining) == 0 {
		if p := c.sess.CurrentProduct; p != nil {
			c.addToCartLocked(*p, c.sess.SelectedOptions)
		}
		return c.dispatchLocked(dialog.ActionOptionSelected, dialog.Payload{Option: &opt})
	}
	return c.dispatchLocked(dialog.ActionOptionSelected, dialog.Payload{Option: &opt, Remaining: remaining})
}

func (c *Controller) addToCartLocked(p catalog.Product, opts []catalog.Option) {
	item, ok := c.sess.Cart.Add(p, opts, c.now(), c.dedupWindow)
	if ok {
		logging.Get(logging.CategoryCart).Info("added item=%d product=%d total=%d", item.ID, p.ID, item.TotalPrice)
	}
	c.sess.SelectedOptions = nil
	c.sess.CurrentProduct = nil
}

func (c *Controller) handleMoreLocked(text string) Outcome {
	lang := c.sess.Language
	switch matching.DetectMoreOrder(text, lang) {
	case matching.MoreOrderPay:
		if c.sess.Cart.Count() == 0 {
			msg := dialog.ConfirmPrompt(nil, lang)
			c.sess.LastMessage = msg
			return Outcome{State: c.sess.State, Message: msg}
		}
		return c.dispatchLocked(dialog.ActionNoMoreOrder, dialog.Payload{Cart: c.sess.Cart.Items})
	case matching.MoreOrderYes:
		return c.dispatchLocked(dialog.ActionMoreOrder, dialog.Payload{})
	default:
		// Neither yes nor no: the customer likely named a menu directly.
		res := matching.Match(text, c.catalog.Products, lang)
		out := c.dispatchLocked(dialog.ActionMenuMatched, dialog.Payload{Candidates: res.Candidates})
		if c.sess.State == dialog.StateProductSelected {
			return c.checkOptionsLocked()
		}
		return out
	}
}

func (c *Controller) handleConfirmLocked(text string) Outcome {
	switch matching.DetectConfirmation(text, c.sess.Language) {
	case matching.AnswerYes:
		return c.dispatchLocked(dialog.ActionConfirmed, dialog.Payload{})
	case matching.AnswerNo:
		return c.dispatchLocked(dialog.ActionCancelled, dialog.Payload{})
	default:
		return Outcome{State: c.sess.State}
	}
}

// ============================================================
// Collaborator entry points
// ============================================================

// CustomerDetected starts a conversation for a newly detected customer.
func (c *Controller) CustomerDetected() Outcome {
	return c.Dispatch(dialog.ActionCustomerDetected, dialog.Payload{})
}

// TTSCompleted signals that the greeting finished playing.
func (c *Controller) TTSCompleted() Outcome {
	return c.Dispatch(dialog.ActionTTSCompleted, dialog.Payload{})
}

// PaymentCompleted assigns the order number and finishes the order.
func (c *Controller) PaymentCompleted() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess.State == dialog.StatePayment {
		c.orderSeq++
		c.sess.OrderNumber = c.orderSeq
	}
	return c.dispatchLocked(dialog.ActionPaymentCompleted, dialog.Payload{})
}

// PaymentFailed moves the session into the recoverable error state.
func (c *Controller) PaymentFailed() Outcome {
	return c.Dispatch(dialog.ActionPaymentFailed, dialog.Payload{})
}

// Retry leaves the error state and lets the customer order again.
func (c *Controller) Retry() Outcome {
	return c.Dispatch(dialog.ActionRetry, dialog.Payload{})
}

// Reset clears the session for the next customer. Language, profile, and
// catalog survive; everything else is dropped and a fresh session id issued.
func (c *Controller) Reset() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.sess.ID
	c.sess.reset()
	logging.Get(logging.CategorySession).Info("session reset: old=%s new=%s", old, c.sess.ID)
	return Outcome{State: c.sess.State}
}

// SelectCandidate resolves a disambiguation by touch, 1-based.
func (c *Controller) SelectCandidate(k int) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess.State != dialog.StateAskDisambiguation {
		return Outcome{State: c.sess.State}
	}
	return c.selectCandidateLocked(k)
}

// SelectOption resolves the current option group by touch, by option id.
func (c *Controller) SelectOption(optionID int64) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess.State != dialog.StateAskOptions || len(c.sess.PendingOptions) == 0 {
		return Outcome{State: c.sess.State}
	}
	for _, opt := range c.sess.PendingOptions[0].Options {
		if opt.ID == optionID {
			return c.commitOptionLocked(opt)
		}
	}
	return Outcome{State: c.sess.State}
}

// RemoveFromCart deletes a committed line by item id.
func (c *Controller) RemoveFromCart(itemID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.Cart.Remove(itemID)
}

// ============================================================
// Read model
// ============================================================

func (c *Controller) State() dialog.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.State
}

func (c *Controller) LastMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.LastMessage
}

func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.ID
}

func (c *Controller) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.Language
}

func (c *Controller) OrderNumber() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.OrderNumber
}

// CurrentProduct returns a copy of the product being configured, if any.
func (c *Controller) CurrentProduct() (catalog.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess.CurrentProduct == nil {
		return catalog.Product{}, false
	}
	return *c.sess.CurrentProduct, true
}

// Candidates returns a copy of the ranked disambiguation candidates.
func (c *Controller) Candidates() []matching.Candidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]matching.Candidate, len(c.sess.Candidates))
	copy(out, c.sess.Candidates)
	return out
}

// PendingOptions returns a copy of the unresolved option groups.
func (c *Controller) PendingOptions() []catalog.OptionGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]catalog.OptionGroup, len(c.sess.PendingOptions))
	copy(out, c.sess.PendingOptions)
	return out
}

// CartItems returns a copy of the committed cart lines.
func (c *Controller) CartItems() []order.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]order.CartItem, len(c.sess.Cart.Items))
	copy(out, c.sess.Cart.Items)
	return out
}

// CartTotal returns the current grand total.
func (c *Controller) CartTotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.Cart.Total()
}
