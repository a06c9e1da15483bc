package common

// UserResult is the public view of a user. The password hash never appears
// here; mapping from the entity is the only way results are built.
type UserResult struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthResult is the register/login response payload.
type AuthResult struct {
	User  *UserResult `json:"user"`
	Token string      `json:"token"`
}
