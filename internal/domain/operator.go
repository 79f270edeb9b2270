package domain

// Operator is a dashboard user. Operators are provisioned out of band in
// a JSON roster file; the server never writes them.
type Operator struct {
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"password_hash"` // argon2id encoded hash
	Role         Role   `json:"role"`
	Region       Region `json:"region"`
}
