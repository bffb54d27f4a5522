package profile

// UserCookie identifies a logged-in account to the client. Empty strings
// signal failure: registration with a taken username returns an empty
// account id next to the requested username; login with an unknown code
// returns both fields empty.
type UserCookie struct {
	AccountID string
	Username  string
}
