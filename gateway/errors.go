package gateway

import "fmt"

// InvalidGatewayAPIResponse is returned when a non-OK status is returned from the vendor api
type InvalidGatewayAPIResponse struct {
	status int
}

// Error provides a consistent error when receiving an invalid response status from the vendor api
func (e *InvalidGatewayAPIResponse) Error() string {
	return fmt.Sprintf("invalid status returned from vendor api: [%d]", e.status)
}

// ProcessingError covers system and API connection failures.
type ProcessingError struct {
	Message string
}

func (e *ProcessingError) Error() string {
	return e.Message
}

// PaymentError is returned when the vendor declines a purchase,
// pre-authorization or capture.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string {
	return e.Message
}

// RefundError is returned when the vendor declines a refund.
type RefundError struct {
	Message string
}

func (e *RefundError) Error() string {
	return e.Message
}

// VerificationError is returned when the vendor declines a card verification.
type VerificationError struct {
	Message string
}

func (e *VerificationError) Error() string {
	return e.Message
}

// TokenSaveProcessingError is returned when a token save is attempted without
// the identity references the vault requires.
type TokenSaveProcessingError struct {
	Message string
}

func (e *TokenSaveProcessingError) Error() string {
	return e.Message
}
