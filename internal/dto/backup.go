package dto

// BackupRequest asks for an encrypted export of the whole state document.
type BackupRequest struct {
	Password string `json:"password" binding:"required,min=4"`
}

// BackupResponse carries the encrypted envelope string.
type BackupResponse struct {
	Payload string `json:"payload"`
}

// RestoreRequest replaces the state document from an encrypted envelope or a
// legacy raw-JSON export. Password may be empty for legacy payloads.
type RestoreRequest struct {
	Payload  string `json:"payload" binding:"required"`
	Password string `json:"password"`
}
