package domain

// User represents a registered account on the board.
// LoginID is the unique handle the user signs in with; Name is the display
// name shown next to their questions. Password holds whatever the configured
// password scheme stores (plaintext or a bcrypt hash) and must never be
// exposed through the API.
type User struct {
	ID       int64  `json:"id"`
	LoginID  string `json:"user_id"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// NewUser creates an unpersisted User with the given fields.
// Returns a validation error if a required field is empty.
func NewUser(loginID, password, name, email string) (*User, error) {
	u := &User{
		LoginID:  loginID,
		Password: password,
		Name:     name,
		Email:    email,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.LoginID == "" {
		return ErrEmptyLoginID
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
