package notify

import (
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"focusring/internal/core/reminder"
)

// Deliver shows one notification.
type Deliver func(title, content string)

// Notifier keeps one timer armed per pending reminder.
type Notifier struct {
	mu      sync.Mutex
	deliver Deliver
	pending map[uuid.UUID]*time.Timer
	enabled bool
}

// New creates a notifier that delivers through deliver.
func New(deliver Deliver) *Notifier {
	return &Notifier{
		deliver: deliver,
		pending: make(map[uuid.UUID]*time.Timer),
		enabled: true,
	}
}

// NewForApp creates a notifier that delivers desktop notifications.
func NewForApp(app fyne.App) *Notifier {
	return New(func(title, content string) {
		app.SendNotification(fyne.NewNotification(title, content))
	})
}

// SetEnabled turns delivery on or off. Disabling cancels pending reminders.
func (notifier *Notifier) SetEnabled(enabled bool) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.enabled = enabled
	if !enabled {
		notifier.cancelLocked(nil)
	}
}

// Replace cancels reminders that are no longer scheduled and arms the new
// ones relative to now. Reminders already armed under the same identifier
// keep their timer.
func (notifier *Notifier) Replace(descriptors []reminder.Descriptor, now time.Time) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if !notifier.enabled {
		return
	}

	keep := make(map[uuid.UUID]struct{}, len(descriptors))
	for _, descriptor := range descriptors {
		keep[descriptor.ID] = struct{}{}
	}
	notifier.cancelLocked(keep)

	for _, descriptor := range descriptors {
		if _, armed := notifier.pending[descriptor.ID]; armed {
			continue
		}
		delay := descriptor.FireAt(now).Sub(now)
		notifier.pending[descriptor.ID] = time.AfterFunc(delay, notifier.fire(descriptor))
	}
}

// Cancel drops every pending reminder.
func (notifier *Notifier) Cancel() {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.cancelLocked(nil)
}

// Pending returns the number of armed reminders.
func (notifier *Notifier) Pending() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.pending)
}

func (notifier *Notifier) fire(descriptor reminder.Descriptor) func() {
	return func() {
		notifier.mu.Lock()
		if _, armed := notifier.pending[descriptor.ID]; !armed {
			notifier.mu.Unlock()
			return
		}
		delete(notifier.pending, descriptor.ID)
		notifier.mu.Unlock()

		if notifier.deliver != nil {
			notifier.deliver(descriptor.Title(), Content(descriptor))
		}
	}
}

func (notifier *Notifier) cancelLocked(keep map[uuid.UUID]struct{}) {
	for id, timer := range notifier.pending {
		if _, ok := keep[id]; ok {
			continue
		}
		timer.Stop()
		delete(notifier.pending, id)
	}
}

// Content joins the subtitle and body of a reminder.
func Content(descriptor reminder.Descriptor) string {
	lines := make([]string, 0, 2)
	if subtitle := descriptor.Subtitle(); subtitle != "" {
		lines = append(lines, subtitle)
	}
	if body := descriptor.Body(); body != "" {
		lines = append(lines, body)
	}
	return strings.Join(lines, "\n")
}
