package model

import "time"

// Task status constants. StatusPending appears in list filters but no code
// path ever sets it; the only reachable transition is
// In Progress <-> Completed.
const (
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusPending    = "Pending"
)

// Task is a single tracked work item belonging to a folder.
type Task struct {
	// ID is the unique identifier for this task.
	ID string `json:"id"`

	// Title is the human-readable summary.
	Title string `json:"title"`

	// DueDate is the raw date string entered by the user.
	DueDate string `json:"dueDate"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// FolderID is a weak reference to a Folder.ID. No referential-integrity
	// check is performed against the folder list.
	FolderID string `json:"folderId"`

	// User is the display name of whoever created the task.
	User string `json:"user"`

	// Attachments is the ordered list of files attached to this task.
	Attachments []Attachment `json:"attachments"`

	// CreatedAt is when the task was added.
	CreatedAt time.Time `json:"createdAt"`
}

// Attachment is a file stored inline with its task.
type Attachment struct {
	// Name is the original file name.
	Name string `json:"name"`

	// Data is a self-contained data URL (data:<mime>;base64,<payload>)
	// holding the full file content.
	Data string `json:"data"`
}

// ArchivedTask is a snapshot of a task taken when it was moved off the live
// list. Archived tasks are append-only; nothing mutates or deletes them.
type ArchivedTask struct {
	Task

	// ArchivedAt is when the snapshot was taken.
	ArchivedAt time.Time `json:"archivedAt"`
}
