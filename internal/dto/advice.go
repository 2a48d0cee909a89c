package dto

// AdviceResponse carries the advisor's text. Fallback is true when the
// advisor failed and the fixed degraded message is returned instead.
type AdviceResponse struct {
	Advice   string `json:"advice"`
	Fallback bool   `json:"fallback"`
}
