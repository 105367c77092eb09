package models

// User is a stored account record.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don't expose hash
	Picture      string `json:"picture,omitempty"`
	Description  string `json:"description,omitempty"`
	Firstname    string `json:"firstname,omitempty"`
	Surname      string `json:"surname,omitempty"`
}
