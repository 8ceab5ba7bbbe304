// Package notify scans the ledger for due-soon bills and subscription
// renewals. The scan is pure; emitting notifications and recording
// de-duplication state is the executor's job.
package notify

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/walletplus-dev/walletplus/internal/model"
	"github.com/walletplus-dev/walletplus/internal/store"
)

// Kind distinguishes the two event sources.
type Kind string

const (
	KindBill         Kind = "bill"
	KindSubscription Kind = "subscription"
)

// Event is one due notification to emit.
type Event struct {
	Kind     Kind
	EntityID string
	Title    string
	Body     string
}

// subscriptionWindow is the fixed reminder horizon for renewals.
const subscriptionWindow = 3

const dayFormat = "2006-01-02"

// Scan returns the events eligible today that have not already fired today.
// It never mutates state.
func Scan(l model.Ledger, now time.Time, state State) []Event {
	today := now.Format(dayFormat)
	var events []Event

	for _, bill := range l.Bills {
		if bill.Status == model.BillPaid || bill.ReminderDays <= 0 {
			continue
		}
		days := daysUntil(now, bill.DueDate)
		if days < 0 || days > bill.ReminderDays {
			continue
		}
		if state.Bills[bill.ID] == today {
			continue
		}
		events = append(events, Event{
			Kind:     KindBill,
			EntityID: bill.ID,
			Title:    "Upcoming Bill",
			Body:     fmt.Sprintf("%s is due in %d day(s). Amount: %s", bill.Name, days, bill.Amount.StringFixed(2)),
		})
	}

	for _, sub := range l.Subscriptions {
		days := daysUntil(now, sub.NextPaymentDate)
		if days < 0 || days > subscriptionWindow {
			continue
		}
		if state.Subs[sub.ID] == today {
			continue
		}
		events = append(events, Event{
			Kind:     KindSubscription,
			EntityID: sub.ID,
			Title:    "Upcoming Subscription Payment",
			Body:     fmt.Sprintf("%s renews in %d day(s). Amount: %s", sub.Name, days, sub.Amount.StringFixed(2)),
		})
	}

	return events
}

// daysUntil counts whole days from now to due, rounding partial days up the
// way a "due in N days" banner is expected to.
func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// Notifier is the effect executor for scan results.
type Notifier interface {
	Notify(title, body string) error
}

// Run scans, emits each event through the notifier, and records the
// per-entity per-day de-duplication state so a bill fires at most once a day.
func Run(st store.Store, l model.Ledger, now time.Time, n Notifier, log zerolog.Logger) ([]Event, error) {
	state, err := LoadState(st)
	if err != nil {
		return nil, err
	}

	events := Scan(l, now, state)
	for _, ev := range events {
		if err := n.Notify(ev.Title, ev.Body); err != nil {
			// Best effort: a failed emission is logged and still recorded so
			// it does not repeat within the day.
			log.Warn().Err(err).Str("entity", ev.EntityID).Msg("notification failed")
		}
		state.Mark(ev, now)
	}

	if len(events) > 0 {
		if err := SaveState(st, state); err != nil {
			return events, err
		}
	}
	return events, nil
}
