// Package order holds the in-memory cart: committed line items, derived
// totals, and the duplicate-submission guard that keeps a stuttering
// recognizer (or a double-fired UI event) from charging twice.
package order

import (
	"sort"
	"time"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/logging"
)

// DefaultDedupWindow bounds how long a resubmission of the same
// (product, option set) is treated as a duplicate of an existing line.
const DefaultDedupWindow = 2 * time.Second

// CartItem is one committed order line. ID doubles as the creation
// timestamp in Unix milliseconds; ids are strictly increasing even when two
// lines land in the same millisecond.
type CartItem struct {
	ID         int64
	Product    catalog.Product
	Options    []catalog.Option
	TotalPrice int64
}

// Cart accumulates order lines. Totals and counts are always derived from
// Items, never stored.
type Cart struct {
	Items  []CartItem
	lastID int64
}

// Add commits a line for the product with the chosen options. It returns
// false without appending when an identical line (same product id, same
// sorted option-id set) was created within window of now; that rejection is
// the duplicate-submission guard and is logged, not surfaced.
func (c *Cart) Add(p catalog.Product, options []catalog.Option, now time.Time, window time.Duration) (CartItem, bool) {
	log := logging.Get(logging.CategoryCart)

	optIDs := optionIDs(options)
	nowMs := now.UnixMilli()
	for i := len(c.Items) - 1; i >= 0; i-- {
		item := c.Items[i]
		if nowMs-item.ID > window.Milliseconds() {
			break
		}
		if item.Product.ID == p.ID && sameIDs(optionIDs(item.Options), optIDs) {
			log.Warn("duplicate add suppressed: product=%d options=%v within %s", p.ID, optIDs, window)
			return CartItem{}, false
		}
	}

	id := nowMs
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	total := p.Price
	for _, opt := range options {
		total += opt.Price
	}

	item := CartItem{
		ID:         id,
		Product:    p,
		Options:    append([]catalog.Option(nil), options...),
		TotalPrice: total,
	}
	c.Items = append(c.Items, item)
	log.Info("added: product=%d %q total=%d options=%v", p.ID, p.Name, total, optIDs)
	return item, true
}

// Remove deletes the line with the given id. Returns false when absent.
func (c *Cart) Remove(id int64) bool {
	for i, item := range c.Items {
		if item.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			logging.Get(logging.CategoryCart).Info("removed: item=%d product=%d", id, item.Product.ID)
			return true
		}
	}
	return false
}

// Total sums the line totals.
func (c Cart) Total() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.TotalPrice
	}
	return sum
}

// Count returns the number of lines.
func (c Cart) Count() int {
	return len(c.Items)
}

// Clear drops every line. The id high-water mark survives so ids stay
// monotonic across a session reset.
func (c *Cart) Clear() {
	c.Items = nil
}

func optionIDs(options []catalog.Option) []int64 {
	ids := make([]int64, len(options))
	for i, opt := range options {
		ids[i] = opt.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
