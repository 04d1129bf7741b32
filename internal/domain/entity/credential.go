package entity

// Credential is the single shared operator credential for the back-office.
// The password is stored as a bcrypt hash; there is no multi-user support,
// token issuance or expiry.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
