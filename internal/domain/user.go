package domain

// User represents a persisted user record.
type User struct {
	ID       string
	Name     string
	Username string
	Email    string
	// Password is kept as submitted; hashing is not handled by this service.
	Password string
}

// UserFields carries every writable column of a user. Create and Update
// always supply the full set.
type UserFields struct {
	Name     string
	Username string
	Email    string
	Password string
}
