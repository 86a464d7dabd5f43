package model

import "time"

// Notification type constants.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
)

// Notification is an append-only event log entry describing a task mutation.
// Notifications are inserted at the head of the list, so list order is
// creation order descending. They are never deleted.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// Type is one of the Notification* constants.
	Type string `json:"type"`

	// TaskID optionally links this notification to a task. It is a weak
	// reference: the task may have been deleted since. Empty means none.
	TaskID string `json:"taskId,omitempty"`

	// Seen indicates whether the user has viewed this notification.
	Seen bool `json:"seen"`

	// CreatedAt is when this notification was generated.
	CreatedAt time.Time `json:"createdAt"`
}
