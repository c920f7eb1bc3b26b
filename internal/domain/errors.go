package domain

type ErrorKind int

const (
	KindInvalid ErrorKind = iota + 1
	KindNotFound
	KindConflict
)

// FieldViolation names a request field that failed validation.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is a caller-visible failure. Anything that is not an *Error is an
// internal failure and must not leak its message to clients.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldViolation
}

func (e *Error) Error() string {
	return e.Message
}

// Invalid builds an invalid-input error with the violated fields.
func Invalid(message string, fields ...FieldViolation) *Error {
	return &Error{Kind: KindInvalid, Message: message, Fields: fields}
}

// Common errors used across the application
var (
	ErrCustomerNotFound = &Error{Kind: KindNotFound, Message: "customer not found"}
	ErrGameNotFound     = &Error{Kind: KindNotFound, Message: "game not found"}
	ErrRentalNotFound   = &Error{Kind: KindNotFound, Message: "rental not found"}

	ErrCPFTaken      = &Error{Kind: KindConflict, Message: "cpf is already registered"}
	ErrGameNameTaken = &Error{Kind: KindConflict, Message: "there is already a game with this name"}

	ErrGameOutOfStock = &Error{Kind: KindConflict, Message: "game is out of stock"}
	ErrRentalFinished = &Error{Kind: KindConflict, Message: "rental is already finished"}
	ErrRentalActive   = &Error{Kind: KindConflict, Message: "cannot delete an active rental"}
)
