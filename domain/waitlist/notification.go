package waitlist

import (
	"context"
	"sync"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient toast shown to the visitor.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Alerter raises a blocking, must-acknowledge message.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// RequestFeedback collects what one request wants to show the visitor. It is
// both the Notifier and the Alerter for that request.
type RequestFeedback struct {
	mu            sync.Mutex
	notifications []Notification
	alerts        []string
}

func NewRequestFeedback() *RequestFeedback {
	return &RequestFeedback{}
}

func (f *RequestFeedback) Notify(_ context.Context, n Notification) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}

	f.mu.Lock()
	f.notifications = append(f.notifications, n)
	f.mu.Unlock()
}

func (f *RequestFeedback) Alert(_ context.Context, message string) {
	f.mu.Lock()
	f.alerts = append(f.alerts, message)
	f.mu.Unlock()
}

func (f *RequestFeedback) Notifications() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.notifications))
	copy(out, f.notifications)
	return out
}

func (f *RequestFeedback) Alerts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.alerts))
	copy(out, f.alerts)
	return out
}

// LastAlert returns "" when nothing was raised.
func (f *RequestFeedback) LastAlert() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.alerts) == 0 {
		return ""
	}
	return f.alerts[len(f.alerts)-1]
}
