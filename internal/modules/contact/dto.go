package contact

// SubmitMessageRequest carries the public contact form. Phone is optional
// and, unlike the booking form, never format-checked.
type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"required,emailshape"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"notblank"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
