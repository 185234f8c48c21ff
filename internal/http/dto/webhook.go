package dto

// WebhookAck is the only body Gorgias ever sees from an authorized request.
// Any non-2xx makes Gorgias retry, so failures are logged and acknowledged.
type WebhookAck struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
