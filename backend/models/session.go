package models

// Session is the ephemeral identity carried in the JWT. It is never
// persisted; the completed-class set is reconstructed from ProgressMarks
// at login time.
type Session struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}
