package session

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/dialog"
	"voicekiosk/internal/matching"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func whopperOnly() *catalog.Snapshot {
	return catalog.NewSnapshot([]catalog.Product{
		{ID: 1, Name: "와퍼", EngName: "Whopper", Price: 6500, Type: catalog.TypeSingle, CategoryID: 1},
	}, []catalog.Category{{ID: 1, Name: "버거", EngName: "Burgers"}})
}

func driveToListening(t *testing.T, c *Controller) {
	t.Helper()
	if out := c.CustomerDetected(); out.State != dialog.StateGreeting {
		t.Fatalf("after CUSTOMER_DETECTED state = %q", out.State)
	}
	if out := c.TTSCompleted(); out.State != dialog.StateListening {
		t.Fatalf("after TTS_COMPLETED state = %q", out.State)
	}
}

func TestOrderFlowWithoutOptions(t *testing.T) {
	c := New(whopperOnly(), Config{Language: "en"})
	driveToListening(t, c)

	out := c.HandleTranscript("Whopper")
	if out.Dropped {
		t.Fatal("transcript dropped unexpectedly")
	}
	if out.State != dialog.StateAskMore {
		t.Fatalf("end state = %q, want ASK_MORE", out.State)
	}

	items := c.CartItems()
	if len(items) != 1 {
		t.Fatalf("cart length = %d, want 1", len(items))
	}
	if items[0].Product.ID != 1 || items[0].TotalPrice != 6500 {
		t.Errorf("cart line = product %d total %d", items[0].Product.ID, items[0].TotalPrice)
	}
}

func TestDuplicateCommitWithinWindow(t *testing.T) {
	fixed := time.Now()
	c := New(whopperOnly(), Config{Language: "en", Now: func() time.Time { return fixed }})
	driveToListening(t, c)

	c.HandleTranscript("Whopper")
	// In ASK_MORE an unrecognized yes/no reply is retried as a menu match,
	// so a stuttered repeat lands on the same product immediately.
	out := c.HandleTranscript("Whopper")
	if out.State != dialog.StateAskMore {
		t.Fatalf("state = %q", out.State)
	}
	if got := len(c.CartItems()); got != 1 {
		t.Fatalf("cart length = %d, duplicate within window should be suppressed", got)
	}
}

func TestFullKoreanFlowWithOptions(t *testing.T) {
	fixed := time.Now()
	c := New(catalog.Demo(), Config{Now: func() time.Time { return fixed }})
	driveToListening(t, c)

	// Ambiguous between 불고기 와퍼 and 불고기 와퍼 세트.
	out := c.HandleTranscript("불고기 와퍼")
	if out.State != dialog.StateAskDisambiguation {
		t.Fatalf("state = %q, want ASK_DISAMBIGUATION", out.State)
	}
	cands := c.Candidates()
	if len(cands) != 2 || cands[0].Product.ID != 3 || cands[1].Product.ID != 4 {
		t.Fatalf("candidates = %+v", cands)
	}

	out = c.HandleTranscript("2번")
	if out.State != dialog.StateAskOptions {
		t.Fatalf("after ordinal state = %q", out.State)
	}
	if pending := c.PendingOptions(); len(pending) != 2 {
		t.Fatalf("pending groups = %d, want 2", len(pending))
	}

	// Side group.
	out = c.HandleTranscript("어니언링")
	if out.State != dialog.StateAskOptions {
		t.Fatalf("after side option state = %q", out.State)
	}
	if pending := c.PendingOptions(); len(pending) != 1 || pending[0].Name != "음료" {
		t.Fatalf("pending after side = %+v", pending)
	}

	// Drink group by ordinal; commits exactly one cart line.
	out = c.HandleTranscript("1번")
	if out.State != dialog.StateAskMore {
		t.Fatalf("after drink option state = %q", out.State)
	}
	items := c.CartItems()
	if len(items) != 1 {
		t.Fatalf("cart length = %d, want 1", len(items))
	}
	if items[0].TotalPrice != 9900 {
		t.Errorf("line total = %d, want 9900", items[0].TotalPrice)
	}
	if len(items[0].Options) != 2 {
		t.Errorf("options on line = %d, want 2", len(items[0].Options))
	}

	out = c.HandleTranscript("결제할게요")
	if out.State != dialog.StateConfirm {
		t.Fatalf("after pay request state = %q", out.State)
	}
	if !strings.Contains(out.Message, "9,900원") {
		t.Errorf("confirm prompt = %q", out.Message)
	}

	out = c.HandleTranscript("네")
	if out.State != dialog.StatePayment {
		t.Fatalf("after yes state = %q", out.State)
	}

	out = c.PaymentCompleted()
	if out.State != dialog.StateComplete {
		t.Fatalf("after payment state = %q", out.State)
	}
	if c.OrderNumber() != 1 {
		t.Errorf("order number = %d, want 1", c.OrderNumber())
	}

	oldID := c.SessionID()
	out = c.Reset()
	if out.State != dialog.StateIdle {
		t.Fatalf("after reset state = %q", out.State)
	}
	if len(c.CartItems()) != 0 {
		t.Error("cart should be empty after reset")
	}
	if c.SessionID() == oldID {
		t.Error("reset should issue a fresh session id")
	}
	if c.Language() != "ko" {
		t.Errorf("language should survive reset, got %q", c.Language())
	}
}

func TestRawDispatchCarriesNoCartSideEffect(t *testing.T) {
	c := New(whopperOnly(), Config{Language: "en"})
	driveToListening(t, c)

	c.Dispatch(dialog.ActionSpeechReceived, dialog.Payload{})
	whopper, _ := c.catalog.Product(1)
	c.Dispatch(dialog.ActionMenuMatched, dialog.Payload{
		Candidates: []matching.Candidate{{Product: whopper, Score: 120}},
	})
	out := c.Dispatch(dialog.ActionCheckOptions, dialog.Payload{Product: &whopper})
	if out.State != dialog.StateAskMore {
		t.Fatalf("state = %q, want ASK_MORE", out.State)
	}
	if got := len(c.CartItems()); got != 0 {
		t.Fatalf("cart length = %d, raw dispatch must not commit", got)
	}

	// The transcript route drives the same product into the cart.
	c2 := New(whopperOnly(), Config{Language: "en"})
	driveToListening(t, c2)
	c2.HandleTranscript("Whopper")
	if got := len(c2.CartItems()); got != 1 {
		t.Fatalf("cart length = %d, transcript route must commit once", got)
	}
}

func TestLowConfidenceOptionReprompts(t *testing.T) {
	c := New(catalog.Demo(), Config{})
	driveToListening(t, c)

	out := c.HandleTranscript("불고기 와퍼 세트")
	if out.State != dialog.StateAskOptions {
		t.Fatalf("state = %q, want ASK_OPTIONS", out.State)
	}

	out = c.HandleTranscript("음 아무거나요")
	if out.State != dialog.StateAskOptions {
		t.Fatalf("unresolved option should stay in ASK_OPTIONS, got %q", out.State)
	}
	if out.Message == "" {
		t.Error("expected a re-prompt message")
	}
	if pending := c.PendingOptions(); len(pending) != 2 {
		t.Errorf("pending groups = %d, low confidence must not consume a group", len(pending))
	}
}

func TestOutOfRangeOrdinalReprompts(t *testing.T) {
	c := New(catalog.Demo(), Config{})
	driveToListening(t, c)

	c.HandleTranscript("불고기 와퍼")
	out := c.HandleTranscript("5번")
	if out.State != dialog.StateAskDisambiguation {
		t.Fatalf("state = %q, want ASK_DISAMBIGUATION", out.State)
	}
	if !strings.Contains(out.Message, "1번") {
		t.Errorf("re-prompt = %q", out.Message)
	}
	if len(c.Candidates()) != 2 {
		t.Error("candidates must survive an out-of-range answer")
	}
}

func TestDisambiguationByQualifier(t *testing.T) {
	c := New(catalog.Demo(), Config{})
	driveToListening(t, c)

	c.HandleTranscript("불고기 와퍼")
	out := c.HandleTranscript("세트로 주세요")
	if out.State != dialog.StateAskOptions {
		t.Fatalf("state = %q, want ASK_OPTIONS", out.State)
	}
	p, ok := c.CurrentProduct()
	if !ok || p.ID != 4 {
		t.Fatalf("current product = %+v ok=%v, want id 4", p, ok)
	}
}

func TestBusyInterpreterDropsTranscript(t *testing.T) {
	c := New(catalog.Demo(), Config{})
	driveToListening(t, c)

	c.interpreting.Store(true)
	out := c.HandleTranscript("와퍼")
	if !out.Dropped {
		t.Fatal("transcript should be dropped while another is in flight")
	}
	c.interpreting.Store(false)

	if out := c.HandleTranscript("불고기 와퍼 세트"); out.Dropped {
		t.Fatal("guard should release after the in-flight transcript finishes")
	}
}

func TestUnknownConfirmationIsNoOp(t *testing.T) {
	c := New(whopperOnly(), Config{Language: "en"})
	driveToListening(t, c)
	c.HandleTranscript("Whopper")
	c.HandleTranscript("pay please")
	if c.State() != dialog.StateConfirm {
		t.Fatalf("state = %q, want CONFIRM", c.State())
	}

	out := c.HandleTranscript("hmm let me think")
	if out.State != dialog.StateConfirm {
		t.Fatalf("unknown answer moved state to %q", out.State)
	}
}

func TestRecommendationStaysListening(t *testing.T) {
	profile := &dialog.Profile{AgeGroup: dialog.AgeTwenties, Gender: "female"}
	c := New(catalog.Demo(), Config{Profile: profile})
	driveToListening(t, c)

	out := c.HandleTranscript("추천 메뉴 있어요?")
	if out.State != dialog.StateListening {
		t.Fatalf("state = %q, want LISTENING", out.State)
	}
	if !strings.Contains(out.Message, "치킨버거") {
		t.Errorf("hint = %q", out.Message)
	}
}

func TestPaymentFailureAndRetry(t *testing.T) {
	c := New(whopperOnly(), Config{Language: "en"})
	driveToListening(t, c)
	c.HandleTranscript("Whopper")
	c.HandleTranscript("no thanks")
	c.HandleTranscript("yes")
	if c.State() != dialog.StatePayment {
		t.Fatalf("state = %q, want PAYMENT", c.State())
	}

	if out := c.PaymentFailed(); out.State != dialog.StateError {
		t.Fatalf("after failure state = %q", out.State)
	}
	if c.OrderNumber() != 0 {
		t.Error("failed payment must not assign an order number")
	}
	if out := c.Retry(); out.State != dialog.StateListening {
		t.Fatalf("after retry state = %q", out.State)
	}
}

func TestRemoveFromCart(t *testing.T) {
	c := New(whopperOnly(), Config{Language: "en"})
	driveToListening(t, c)
	c.HandleTranscript("Whopper")

	items := c.CartItems()
	if len(items) != 1 {
		t.Fatalf("cart length = %d", len(items))
	}
	if !c.RemoveFromCart(items[0].ID) {
		t.Fatal("remove returned false")
	}
	if len(c.CartItems()) != 0 {
		t.Error("cart should be empty")
	}
	if c.RemoveFromCart(items[0].ID) {
		t.Error("second remove should return false")
	}
}
