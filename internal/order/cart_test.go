package order

import (
	"testing"
	"time"

	"voicekiosk/internal/catalog"
)

var (
	whopper = catalog.Product{ID: 1, Name: "와퍼", Price: 6500}
	set     = catalog.Product{ID: 2, Name: "와퍼 세트", Price: 8900}

	friesR = catalog.Option{ID: 11, Name: "프렌치프라이(R)", Price: 0}
	friesL = catalog.Option{ID: 12, Name: "프렌치프라이(L)", Price: 500}
	coke   = catalog.Option{ID: 21, Name: "코카콜라(R)", Price: 0}
)

func TestAddComputesTotal(t *testing.T) {
	var c Cart
	now := time.Now()

	item, ok := c.Add(set, []catalog.Option{friesL, coke}, now, DefaultDedupWindow)
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if item.TotalPrice != 9400 {
		t.Errorf("total = %d, want 9400 (8900 base + 500 option)", item.TotalPrice)
	}
	if c.Total() != 9400 || c.Count() != 1 {
		t.Errorf("cart total=%d count=%d, want 9400/1", c.Total(), c.Count())
	}
}

func TestDuplicateAddWithinWindowRejected(t *testing.T) {
	var c Cart
	now := time.Now()

	if _, ok := c.Add(set, []catalog.Option{friesR, coke}, now, DefaultDedupWindow); !ok {
		t.Fatal("first add must succeed")
	}
	// Identical product and option set, 500ms later: duplicate.
	if _, ok := c.Add(set, []catalog.Option{coke, friesR}, now.Add(500*time.Millisecond), DefaultDedupWindow); ok {
		t.Error("duplicate within window must be rejected")
	}
	if c.Count() != 1 {
		t.Fatalf("expected exactly one line, got %d", c.Count())
	}

	// Outside the window the same order is a legitimate repeat.
	if _, ok := c.Add(set, []catalog.Option{friesR, coke}, now.Add(3*time.Second), DefaultDedupWindow); !ok {
		t.Error("add outside window must succeed")
	}
	if c.Count() != 2 {
		t.Errorf("expected two lines, got %d", c.Count())
	}
}

func TestDifferentOptionSetIsNotDuplicate(t *testing.T) {
	var c Cart
	now := time.Now()

	c.Add(set, []catalog.Option{friesR, coke}, now, DefaultDedupWindow)
	if _, ok := c.Add(set, []catalog.Option{friesL, coke}, now.Add(100*time.Millisecond), DefaultDedupWindow); !ok {
		t.Error("different option set must not be treated as duplicate")
	}
}

func TestIDsMonotonic(t *testing.T) {
	var c Cart
	now := time.Now()

	a, _ := c.Add(whopper, nil, now, 0)
	b, _ := c.Add(set, []catalog.Option{friesR}, now, 0)
	if b.ID <= a.ID {
		t.Errorf("ids must be strictly increasing: %d then %d", a.ID, b.ID)
	}
}

func TestRemove(t *testing.T) {
	var c Cart
	item, _ := c.Add(whopper, nil, time.Now(), DefaultDedupWindow)

	if !c.Remove(item.ID) {
		t.Error("expected removal of existing item")
	}
	if c.Remove(item.ID) {
		t.Error("second removal must report missing")
	}
	if c.Count() != 0 {
		t.Errorf("expected empty cart, got %d items", c.Count())
	}
}
