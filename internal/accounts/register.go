package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"signup-service/pkg/validation"
)

// ExistsByEmailFunc reports whether an account already uses email.
type ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)

// InsertAccountFunc persists a new account. It must return an error
// wrapping ErrEmailTaken when the email is already stored.
type InsertAccountFunc func(ctx context.Context, a *Account) error

// Register validates req and, when every check passes, persists a new account.
//
// Checks run in a fixed order and the first failure decides the code:
// email uniqueness, name, email shape, CPF, then car plate for drivers.
// exists is called at most once and insert only after all checks pass.
// Lookup and insert errors other than ErrEmailTaken yield a Failed outcome.
func Register(ctx context.Context, req RegisterRequest, exists ExistsByEmailFunc, insert InsertAccountFunc) Outcome {
	taken, err := exists(ctx, req.Email)
	if err != nil {
		return failed(fmt.Errorf("check email: %w", err))
	}
	if taken {
		return rejected(EmailAlreadyExists)
	}
	if code, ok := validate(req); !ok {
		return rejected(code)
	}

	acc := &Account{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		CPF:         req.CPF,
		CarPlate:    req.CarPlate,
		IsPassenger: req.IsPassenger,
		IsDriver:    req.IsDriver,
		Password:    req.Password,
		CreatedAt:   time.Now().UTC(),
	}
	if err := insert(ctx, acc); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// lost the race against a concurrent signup
			return rejected(EmailAlreadyExists)
		}
		return failed(fmt.Errorf("insert account: %w", err))
	}
	return accepted(acc)
}

// validate runs the field checks that need no I/O.
func validate(req RegisterRequest) (ErrorCode, bool) {
	switch {
	case !validation.ValidateName(req.Name):
		return InvalidName, false
	case !validation.ValidateEmail(req.Email):
		return InvalidEmail, false
	case !validation.ValidateCPF(req.CPF):
		return InvalidCPF, false
	case req.IsDriver && !validation.ValidateCarPlate(req.CarPlate):
		return InvalidCarPlate, false
	}
	return 0, true
}
