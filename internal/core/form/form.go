// Package form is the caller-side layer between user input and the property
// store: it validates raw form data and owns the edit submission lifecycle.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/propertydesk/propertydesk/internal/core/property"
	"github.com/propertydesk/propertydesk/internal/core/validation"
)

var (
	ErrSessionClosed = errors.New("edit session closed")
	ErrSubmitting    = errors.New("submission already in progress")
)

// DefaultEditDelay is the simulated round trip before an edit is applied.
const DefaultEditDelay = 500 * time.Millisecond

// Store is the subset of the property store the forms write to.
type Store interface {
	Add(ctx context.Context, d property.Draft) (property.Property, error)
	Update(ctx context.Context, p property.Property) (property.Property, bool, error)
}

type Service struct {
	store     Store
	validator *validation.Validator
	editDelay time.Duration
}

func NewService(store Store, validator *validation.Validator, editDelay time.Duration) *Service {
	if editDelay < 0 {
		editDelay = 0
	}
	return &Service{
		store:     store,
		validator: validator,
		editDelay: editDelay,
	}
}

// Create validates f and adds the resulting record.
func (s *Service) Create(ctx context.Context, f validation.FormData) (property.Property, error) {
	draft, err := s.validator.ValidateForm(f)
	if err != nil {
		return property.Property{}, err
	}
	return s.store.Add(ctx, draft)
}

// Edit opens an edit session for p.
func (s *Service) Edit(p property.Property) *EditSession {
	return &EditSession{
		svc:      s,
		original: p,
		closed:   make(chan struct{}),
	}
}

// EditSession is one open edit form. A submission waits for the edit delay
// before it is applied; closing the session or cancelling the submission's
// context during that pause discards the update.
type EditSession struct {
	svc      *Service
	original property.Property

	mu         sync.Mutex
	submitting bool
	closeOnce  sync.Once
	closed     chan struct{}
}

// Original returns the record the session was opened for.
func (e *EditSession) Original() property.Property {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.original
}

// Submitting reports whether a submission is waiting to be applied.
func (e *EditSession) Submitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitting
}

// Close discards any pending submission. An update already being applied
// finishes before Close returns. It is safe to call more than once.
func (e *EditSession) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeOnce.Do(func() { close(e.closed) })
}

func (e *EditSession) isClosed() bool {
	select {
	case <-e.closed:
		return true
	default:
		return false
	}
}

// Submit validates f, waits for the edit delay and then replaces the mutable
// fields of the original record. It returns property.ErrNotFound when the
// record was deleted while the session was open.
func (e *EditSession) Submit(ctx context.Context, f validation.FormData) (property.Property, error) {
	draft, err := e.svc.validator.ValidateForm(f)
	if err != nil {
		return property.Property{}, err
	}

	e.mu.Lock()
	if e.isClosed() {
		e.mu.Unlock()
		return property.Property{}, ErrSessionClosed
	}
	if e.submitting {
		e.mu.Unlock()
		return property.Property{}, ErrSubmitting
	}
	e.submitting = true
	original := e.original
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.submitting = false
		e.mu.Unlock()
	}()

	timer := time.NewTimer(e.svc.editDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-e.closed:
		return property.Property{}, ErrSessionClosed
	case <-ctx.Done():
		return property.Property{}, fmt.Errorf("%w: %w", ErrSessionClosed, ctx.Err())
	}

	// The closed check and the update share e.mu with Close.
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.isClosed() {
		return property.Property{}, ErrSessionClosed
	}

	updated, ok, err := e.svc.store.Update(ctx, original.WithDraft(draft))
	if err != nil {
		return property.Property{}, err
	}
	if !ok {
		return property.Property{}, property.ErrNotFound
	}
	e.original = updated
	return updated, nil
}
