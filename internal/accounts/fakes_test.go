package accounts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore enforces email uniqueness on insert like the accounts table.
type memoryStore struct {
	mu        sync.Mutex
	byID      map[string]*Account
	byEmail   map[string]string
	existsErr error
	insertErr error

	existsCalls int
	insertCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byID: map[string]*Account{}, byEmail: map[string]string{}}
}

func (m *memoryStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.existsCalls++
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryStore) Insert(_ context.Context, a *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls++
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.byEmail[a.Email]; ok {
		return fmt.Errorf("insert %s: %w", a.Email, ErrEmailTaken)
	}
	cp := *a
	m.byID[a.ID] = &cp
	m.byEmail[a.Email] = a.ID
	return nil
}

func (m *memoryStore) GetByID(_ context.Context, id string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

type publishedMessage struct {
	topic string
	key   string
	value any
}

type fakePublisher struct {
	err  error
	sent chan publishedMessage
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{sent: make(chan publishedMessage, 8)}
}

func (p *fakePublisher) Publish(_ context.Context, topic, key string, value any) error {
	p.sent <- publishedMessage{topic: topic, key: key, value: value}
	return p.err
}

func passengerRequest(email string) RegisterRequest {
	return RegisterRequest{
		Name:        "John Doe",
		Email:       email,
		CPF:         "95818705552",
		IsPassenger: true,
		Password:    "123456",
	}
}

func driverRequest(email, plate string) RegisterRequest {
	req := passengerRequest(email)
	req.IsPassenger = false
	req.IsDriver = true
	req.CarPlate = plate
	return req
}
