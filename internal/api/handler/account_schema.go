package handler

// --- Request / Response types ---

type createAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	// Roles holds role names; empty means the default role is assigned.
	Roles             []string `json:"roles"`
	Enabled           *bool    `json:"enabled"`
	Locked            bool     `json:"locked"`
	Expired           bool     `json:"expired"`
	CredentialExpired bool     `json:"credential_expired"`
}

type roleResponse struct {
	RoleID uint   `json:"role_id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// accountResponse is the external account representation. The credential
// hash is write-only: it rides along for internal mapping but is never
// serialized.
type accountResponse struct {
	ID                uint           `json:"id"`
	Username          string         `json:"username"`
	PasswordHash      string         `json:"-"`
	Enabled           bool           `json:"enabled"`
	Locked            bool           `json:"locked"`
	Expired           bool           `json:"expired"`
	CredentialExpired bool           `json:"credential_expired"`
	Roles             []roleResponse `json:"roles"`
}
