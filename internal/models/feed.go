package models

import "fmt"

// FeedEntry is a single rendered event. Payment is nil for friendship
// events; Text is fixed at append time and never re-derived.
type FeedEntry struct {
	Payment *Payment
	Text    string
}

// Feed is an append-only, insertion-ordered log of events owned by
// exactly one user. Entries are never removed or reordered.
type Feed struct {
	entries []FeedEntry
}

func NewFeed() *Feed {
	return &Feed{}
}

// AddPaymentEntry appends an entry for a completed payment.
func (f *Feed) AddPaymentEntry(p *Payment) {
	text := fmt.Sprintf("%s paid %s $%.2f for %s",
		p.Actor.Username, p.Target.Username, p.Amount, p.Note)
	f.entries = append(f.entries, FeedEntry{Payment: p, Text: text})
}

// AddFriendEntry appends an entry for a new friendship between a and b.
func (f *Feed) AddFriendEntry(a, b *User) {
	text := fmt.Sprintf("%s and %s are now friends", a.Username, b.Username)
	f.entries = append(f.entries, FeedEntry{Text: text})
}

// Entries returns a snapshot of the feed in append order. Mutating the
// returned slice does not affect the feed.
func (f *Feed) Entries() []FeedEntry {
	out := make([]FeedEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of entries in the feed.
func (f *Feed) Len() int {
	return len(f.entries)
}
