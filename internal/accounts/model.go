package accounts

import (
	"errors"
	"time"
)

// ErrorCode is the negative code returned to clients for a rejected signup.
type ErrorCode int

// Rejection codes. The values are part of the public API.
const (
	InvalidCPF         ErrorCode = -1
	InvalidEmail       ErrorCode = -2
	InvalidName        ErrorCode = -3
	EmailAlreadyExists ErrorCode = -4
	InvalidCarPlate    ErrorCode = -5
)

func (c ErrorCode) String() string {
	switch c {
	case InvalidCPF:
		return "invalid_cpf"
	case InvalidEmail:
		return "invalid_email"
	case InvalidName:
		return "invalid_name"
	case EmailAlreadyExists:
		return "email_already_exists"
	case InvalidCarPlate:
		return "invalid_car_plate"
	default:
		return "unknown"
	}
}

var (
	// ErrEmailTaken is returned by stores when the email uniqueness
	// constraint rejects an insert.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("account not found")
)

// Account is a registered passenger and/or driver.
type Account struct {
	ID          string    `json:"accountId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CPF         string    `json:"cpf"`
	CarPlate    string    `json:"carPlate"`
	IsPassenger bool      `json:"isPassenger"`
	IsDriver    bool      `json:"isDriver"`
	Password    string    `json:"-"` // stored as received
	CreatedAt   time.Time `json:"createdAt"`
}

// RegisterRequest is the body for POST /signup.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CPF         string `json:"cpf"`
	CarPlate    string `json:"carPlate"`
	IsPassenger bool   `json:"isPassenger"`
	IsDriver    bool   `json:"isDriver"`
	Password    string `json:"password"`
}

// SignupResponse is returned on a successful signup.
type SignupResponse struct {
	AccountID string `json:"accountId"`
}

// RejectionResponse carries the rejection code of a failed signup.
type RejectionResponse struct {
	Message ErrorCode `json:"message"`
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	Accepted OutcomeKind = iota
	Rejected
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "failed"
	}
}

// Outcome is the single result of a signup attempt. Account is set when
// Kind is Accepted, Code when Rejected and Err when Failed.
type Outcome struct {
	Kind    OutcomeKind
	Account *Account
	Code    ErrorCode
	Err     error
}

func accepted(a *Account) Outcome { return Outcome{Kind: Accepted, Account: a} }
func rejected(c ErrorCode) Outcome { return Outcome{Kind: Rejected, Code: c} }
func failed(err error) Outcome     { return Outcome{Kind: Failed, Err: err} }
