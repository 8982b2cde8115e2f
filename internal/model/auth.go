package model

// AccessToken is the object embedded in the jwt claims of a logged-in user.
type AccessToken struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
