// Package session owns the mutable order session and the dispatcher that is
// its single writer. Everything below it (catalog, matching, dialog, order)
// is pure or append-only; this package serializes the mutations.
package session

import (
	"github.com/google/uuid"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/dialog"
	"voicekiosk/internal/matching"
	"voicekiosk/internal/order"
)

// Session is the per-customer conversation state. It is never shared
// directly; the Controller hands out copies of its fields.
type Session struct {
	ID       string
	State    dialog.State
	Language string
	Profile  *dialog.Profile

	CurrentProduct  *catalog.Product
	Candidates      []matching.Candidate
	PendingOptions  []catalog.OptionGroup
	SelectedOptions []catalog.Option
	Cart            order.Cart

	LastInput   string
	LastMessage string
	OrderNumber int
}

func newSession(language string, profile *dialog.Profile) *Session {
	return &Session{
		ID:       uuid.NewString(),
		State:    dialog.StateIdle,
		Language: language,
		Profile:  profile,
	}
}

// reset returns the session to IDLE for the next customer. Language and
// profile configuration survive; everything order-specific is dropped and a
// fresh id is issued.
func (s *Session) reset() {
	s.ID = uuid.NewString()
	s.State = dialog.StateIdle
	s.CurrentProduct = nil
	s.Candidates = nil
	s.PendingOptions = nil
	s.SelectedOptions = nil
	s.Cart.Clear()
	s.LastInput = ""
	s.LastMessage = ""
	s.OrderNumber = 0
}
