package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_AddPaymentEntry(t *testing.T) {
	actor := NewUser("Bobby", 5, "")
	target := NewUser("Carol", 10, "")
	p := NewPayment(5, actor, target, "Coffee")

	feed := NewFeed()
	feed.AddPaymentEntry(p)

	entries := feed.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Bobby paid Carol $5.00 for Coffee", entries[0].Text)
	assert.Same(t, p, entries[0].Payment)
}

func TestFeed_AddPaymentEntry_FormatsTwoDecimals(t *testing.T) {
	actor := NewUser("Bobby", 20, "")
	target := NewUser("Carol", 0, "")

	feed := NewFeed()
	feed.AddPaymentEntry(NewPayment(15.5, actor, target, "Lunch"))

	assert.Equal(t, "Bobby paid Carol $15.50 for Lunch", feed.Entries()[0].Text)
}

func TestFeed_AddFriendEntry(t *testing.T) {
	a := NewUser("Bobby", 0, "")
	b := NewUser("Carol", 0, "")

	feed := NewFeed()
	feed.AddFriendEntry(a, b)

	entries := feed.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Bobby and Carol are now friends", entries[0].Text)
	assert.Nil(t, entries[0].Payment)
}

func TestFeed_AppendOrder(t *testing.T) {
	a := NewUser("Bobby", 100, "")
	b := NewUser("Carol", 100, "")

	feed := NewFeed()
	feed.AddPaymentEntry(NewPayment(1, a, b, "first"))
	feed.AddFriendEntry(a, b)
	feed.AddPaymentEntry(NewPayment(2, b, a, "third"))

	entries := feed.Entries()
	require.Equal(t, 3, feed.Len())
	assert.Equal(t, "Bobby paid Carol $1.00 for first", entries[0].Text)
	assert.Equal(t, "Bobby and Carol are now friends", entries[1].Text)
	assert.Equal(t, "Carol paid Bobby $2.00 for third", entries[2].Text)
}

func TestFeed_EntriesReturnsSnapshot(t *testing.T) {
	a := NewUser("Bobby", 0, "")
	b := NewUser("Carol", 0, "")

	feed := NewFeed()
	feed.AddFriendEntry(a, b)

	entries := feed.Entries()
	entries[0].Text = "tampered"

	assert.Equal(t, "Bobby and Carol are now friends", feed.Entries()[0].Text)
}

func TestNewPayment_UniqueIDs(t *testing.T) {
	a := NewUser("Bobby", 0, "")
	b := NewUser("Carol", 0, "")

	p1 := NewPayment(1, a, b, "one")
	p2 := NewPayment(1, a, b, "two")

	assert.NotEmpty(t, p1.ID)
	assert.NotEqual(t, p1.ID, p2.ID)
}
