package accounts

import (
	"context"
	"log/slog"
	"time"

	"signup-service/internal/events"
	"signup-service/internal/metrics"
	"signup-service/pkg/kafka"
)

// Publisher sends domain events. *kafka.Client satisfies it.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// Service contains account business logic.
type Service struct {
	store     Store
	publisher Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher enables account.created events.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithMetrics records signup outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates an account service backed by store.
func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register runs the signup pipeline against the store.
func (s *Service) Register(ctx context.Context, req RegisterRequest) Outcome {
	start := time.Now()
	out := Register(ctx, req, s.store.ExistsByEmail, s.store.Insert)
	s.metrics.ObserveSignup(out.Kind.String(), int(out.Code), time.Since(start))

	switch out.Kind {
	case Accepted:
		s.logger.InfoContext(ctx, "account registered",
			"account_id", out.Account.ID, "is_driver", out.Account.IsDriver)
		s.publishCreated(out.Account)
	case Rejected:
		s.logger.InfoContext(ctx, "signup rejected", "code", int(out.Code), "reason", out.Code.String())
	case Failed:
		s.logger.ErrorContext(ctx, "signup failed", "error", out.Err)
	}
	return out
}

// GetByID fetches a single account by primary key.
func (s *Service) GetByID(ctx context.Context, id string) (*Account, error) {
	return s.store.GetByID(ctx, id)
}

// publishCreated runs in the background; a failed publish is only logged.
func (s *Service) publishCreated(a *Account) {
	if s.publisher == nil {
		return
	}
	ev := events.AccountCreatedEvent{
		AccountID:   a.ID,
		Email:       a.Email,
		IsPassenger: a.IsPassenger,
		IsDriver:    a.IsDriver,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.publisher.Publish(ctx, kafka.TopicAccountCreated, a.ID, ev); err != nil {
			s.logger.Error("failed to publish account.created", "account_id", a.ID, "error", err)
			return
		}
		s.logger.Debug("published account.created", "account_id", a.ID)
	}()
}
