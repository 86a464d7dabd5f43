package model

// Folder is a named grouping ("company") that owns zero or more tasks.
// Folders are never edited or deleted once created.
type Folder struct {
	// ID is derived from the creation timestamp in milliseconds. Uniqueness
	// is coarse: two folders created within the same millisecond collide.
	ID string `json:"id"`

	// Name is the user-entered label. Uniqueness is enforced only at the
	// input layer, never here.
	Name string `json:"name"`
}
