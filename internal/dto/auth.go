package dto

// SetPINRequest sets or changes the lock PIN. OldPIN is required once a PIN
// exists.
type SetPINRequest struct {
	PIN    string `json:"pin" binding:"required,min=4,max=8,numeric"`
	OldPIN string `json:"oldPin"`
}

// UnlockRequest verifies the PIN to obtain a session token.
type UnlockRequest struct {
	PIN string `json:"pin"`
}

// TokenResponse carries a session token for the API group.
type TokenResponse struct {
	Token string `json:"token"`
}
