package resend

type SendEmailInput struct {
	To      []string
	Subject string
	Text    string
}

// --- payloads: what goes over the wire to Resend ---

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}
