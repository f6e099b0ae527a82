package models

// AllowedEmail is a single authorized student address, stored lower-cased and
// trimmed. The administrator address is implicitly a member of the roster and
// never appears here unless explicitly added.
type AllowedEmail struct {
	Email string `json:"email" gorm:"primaryKey"`
}

func (AllowedEmail) TableName() string {
	return "allowed_emails"
}
