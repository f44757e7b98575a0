package users

// User is a row of the users table. Optional columns are pointers; nil is NULL.
type User struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	Password  *string `json:"-"`
	Activated *bool   `json:"activated"`
}

// Anonymous returns the id-only stub created for a session that has not
// registered.
func Anonymous(id string) User {
	return User{ID: id}
}

// IsAnonymous reports whether no profile field has been set.
func (u User) IsAnonymous() bool {
	return u.Username == nil && u.Password == nil && u.Activated == nil
}

// IsActivated reports whether activated is set and true. NULL counts as false.
func (u User) IsActivated() bool {
	return u.Activated != nil && *u.Activated
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for filling optional fields.
func Bool(b bool) *bool {
	return &b
}
