package model

// User is a registered account. Users are created on registration and never
// mutated afterward; there is no delete operation.
type User struct {
	// ID is the unique identifier for this user.
	ID string `json:"id"`

	// Name is the display name entered at registration.
	Name string `json:"name"`

	// Email identifies the account. Unique across all registered users,
	// compared case-sensitively.
	Email string `json:"email"`

	// Password is stored exactly as entered and matched case-sensitively
	// on login.
	Password string `json:"password"`
}
