package request

// FindOrderByConfirmationRequest is the public kiosk-style lookup: the
// confirmation number shown to the purchaser plus the lookup pass derived
// from their telephone number.
type FindOrderByConfirmationRequest struct {
	ConfirmationNumber int64  `json:"confirmation_number" binding:"required"`
	Pass               string `json:"pass" binding:"required"`
}
