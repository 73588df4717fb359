package models

import "time"

// Exchange statuses. An exchange starts pending and is moved to accepted or
// rejected by an explicit action.
const (
	ExchangeStatusPending  = "pending"
	ExchangeStatusAccepted = "accepted"
	ExchangeStatusRejected = "rejected"
)

// Action tokens recognized by ApplyAction.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// Exchange is a proposal by one user to trade for a book. Timestamp is set
// at creation and never updated.
type Exchange struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	BookID    uint      `gorm:"not null;index" json:"book_id"`
	Place     string    `json:"place"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Status    string    `gorm:"not null" json:"status"`
}

// ApplyAction transitions the exchange status for the given action token:
// "accept" sets the status to accepted, "reject" to rejected. Any other
// token fails with an InvalidActionError and leaves the status unchanged.
// Applying an action to an already accepted or rejected exchange is
// permitted and simply overwrites the status.
func (e *Exchange) ApplyAction(action string) error {
	switch action {
	case ActionAccept:
		e.Status = ExchangeStatusAccepted
	case ActionReject:
		e.Status = ExchangeStatusRejected
	default:
		return NewInvalidActionError(action)
	}
	return nil
}

// ExchangeResponse is the stable wire shape for an exchange.
type ExchangeResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	BookID    uint      `json:"book_id"`
	Place     string    `json:"place"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// ExchangeStatusResponse is returned by the action endpoint.
type ExchangeStatusResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// NewExchangeResponse maps an Exchange to its wire shape.
func NewExchangeResponse(e *Exchange) ExchangeResponse {
	return ExchangeResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		BookID:    e.BookID,
		Place:     e.Place,
		Timestamp: e.Timestamp,
		Status:    e.Status,
	}
}

// NewExchangeResponses maps a slice of exchanges, always returning a non-nil slice.
func NewExchangeResponses(exchanges []Exchange) []ExchangeResponse {
	out := make([]ExchangeResponse, 0, len(exchanges))
	for i := range exchanges {
		out = append(out, NewExchangeResponse(&exchanges[i]))
	}
	return out
}
