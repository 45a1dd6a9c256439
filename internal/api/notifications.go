package api

import (
	"sync"
	"time"

	"github.com/rxtech-lab/flowforge/internal/wizard"
)

// Notification is an out-of-band message raised by a wizard, rendered next
// to its state rather than as part of it.
type Notification struct {
	Level     wizard.NotificationLevel `json:"level"`
	Title     string                   `json:"title"`
	Message   string                   `json:"message"`
	CreatedAt time.Time                `json:"created_at"`
}

// notificationCollector implements wizard.Notifier, buffering notifications
// for the presentation layer to drain.
type notificationCollector struct {
	mu            sync.Mutex
	notifications []Notification
}

func newNotificationCollector() *notificationCollector {
	return &notificationCollector{}
}

func (c *notificationCollector) Notify(level wizard.NotificationLevel, title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append(c.notifications, Notification{
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// Drain returns the buffered notifications and clears the buffer.
func (c *notificationCollector) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notifications
	c.notifications = nil
	return out
}
