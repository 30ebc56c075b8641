package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"signup-service/internal/events"
	"signup-service/internal/metrics"
	"signup-service/pkg/kafka"
)

type ServiceSuite struct {
	suite.Suite
	store     *memoryStore
	publisher *fakePublisher
	metrics   *metrics.Metrics
	svc       *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = newMemoryStore()
	s.publisher = newFakePublisher()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = NewService(s.store, discardLogger(),
		WithPublisher(s.publisher), WithMetrics(s.metrics))
}

func (s *ServiceSuite) waitPublished() publishedMessage {
	select {
	case msg := <-s.publisher.sent:
		return msg
	case <-time.After(2 * time.Second):
		s.FailNow("account.created was not published")
		return publishedMessage{}
	}
}

func (s *ServiceSuite) TestAcceptedPublishesAccountCreated() {
	out := s.svc.Register(context.Background(), driverRequest("driver@gmail.com", "ABC1234"))
	s.Require().Equal(Accepted, out.Kind)

	msg := s.waitPublished()
	s.Equal(kafka.TopicAccountCreated, msg.topic)
	s.Equal(out.Account.ID, msg.key)
	ev, ok := msg.value.(events.AccountCreatedEvent)
	s.Require().True(ok)
	s.Equal(out.Account.ID, ev.AccountID)
	s.True(ev.IsDriver)
	s.False(ev.IsPassenger)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Outcomes.WithLabelValues("accepted")))
}

func (s *ServiceSuite) TestRejectedDoesNotPublish() {
	out := s.svc.Register(context.Background(), RegisterRequest{Name: "John"})
	s.Require().Equal(Rejected, out.Kind)
	s.Equal(InvalidName, out.Code)

	select {
	case <-s.publisher.sent:
		s.Fail("rejected signup must not publish")
	case <-time.After(50 * time.Millisecond):
	}
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Rejections.WithLabelValues("-3")))
}

func (s *ServiceSuite) TestPublishFailureKeepsAccount() {
	s.publisher.err = errors.New("broker down")

	out := s.svc.Register(context.Background(), passengerRequest("john.doe@gmail.com"))
	s.Require().Equal(Accepted, out.Kind)
	s.waitPublished()

	got, err := s.svc.GetByID(context.Background(), out.Account.ID)
	s.Require().NoError(err)
	s.Equal("john.doe@gmail.com", got.Email)
}

func (s *ServiceSuite) TestFailedOutcomeIsCounted() {
	s.store.insertErr = errors.New("disk full")

	out := s.svc.Register(context.Background(), passengerRequest("john.doe@gmail.com"))

	s.Equal(Failed, out.Kind)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Outcomes.WithLabelValues("failed")))
}

func TestService_WithoutOptions(t *testing.T) {
	svc := NewService(newMemoryStore(), discardLogger())

	out := svc.Register(context.Background(), passengerRequest("plain@gmail.com"))
	require.Equal(t, Accepted, out.Kind)

	_, err := svc.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}
