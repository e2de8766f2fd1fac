package booking

// CreateBookingRequest carries the public booking form. Validation rules
// mirror the client-side form exactly; messages live in
// validationMessages. Field order here fixes the order of collected
// violation messages.
type CreateBookingRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Phone   string `json:"phone" validate:"phone10"`
	Email   string `json:"email" validate:"omitempty,emailshape"`
	Service string `json:"service" validate:"notblank"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Notes   string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
