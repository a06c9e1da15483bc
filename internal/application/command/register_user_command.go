package command

// RegisterUserCommand carries a password-registration request. FirstName and
// LastName are optional; they default to empty strings in every response.
type RegisterUserCommand struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
