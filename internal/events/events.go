package events

// AccountCreatedEvent is published to account.created.
type AccountCreatedEvent struct {
	AccountID   string `json:"account_id"`
	Email       string `json:"email"`
	IsPassenger bool   `json:"is_passenger"`
	IsDriver    bool   `json:"is_driver"`
	CreatedAt   string `json:"created_at"`
}
