package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/propertydesk/propertydesk/internal/storage"
)

var ErrNotFound = errors.New("property not found")

// LoadErrorMessage is retained in the store state when the snapshot could not
// be restored.
const LoadErrorMessage = "Failed to load properties"

// Store owns the record sequence and the active filters. Every operation
// holds the store lock for its whole duration, so no caller ever observes a
// partially applied mutation.
type Store struct {
	mu    sync.RWMutex
	state State

	slot   storage.Slot
	key    string
	now    func() time.Time
	newID  func() string
	logger *slog.Logger

	loaded    bool
	persisted uint64
	warning   string
}

type Option func(*Store)

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source used by Add.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithKey overrides the slot key holding the snapshot.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func NewStore(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		state:  InitialState(),
		slot:   slot,
		key:    SnapshotKey,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  newUUID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Load restores the persisted snapshot. When no snapshot exists, or it cannot
// be read or decoded, the sample records are installed instead. Only the
// first call has any effect.
//
// The slot is read without holding the store lock, so Status reports Loading
// while the read is in flight. Mutations issued before Load returns are
// replaced by the restored records.
//
// Samples are written back only when the slot has no snapshot at all. After a
// failed read or a corrupt snapshot the stored value is left untouched until
// the next mutation.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return
	}
	s.loaded = true
	s.dispatch(SetLoadingCommand{Loading: true})
	s.mu.Unlock()

	properties, err := s.restore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.logger.Info("no saved properties, installing samples", "key", s.key)
		s.dispatch(LoadCommand{Properties: Samples()})
		s.persist(ctx)
	case err != nil:
		s.logger.Error("failed to load properties", "key", s.key, "error", err)
		s.dispatch(SetErrorCommand{Message: LoadErrorMessage})
		s.dispatch(LoadCommand{Properties: Samples()})
		s.persisted = s.state.Revision
	default:
		s.logger.Info("restored properties", "key", s.key, "count", len(properties))
		s.dispatch(LoadCommand{Properties: properties})
		s.persisted = s.state.Revision
	}
}

func (s *Store) restore(ctx context.Context) ([]Property, error) {
	data, err := s.slot.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(data)
}

// Reset replaces the record sequence with the sample records and clears any
// load error.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.dispatch(SetErrorCommand{Message: ""})
	s.dispatch(LoadCommand{Properties: Samples()})
	s.persist(ctx)
	return nil
}

// Add appends a new record built from d. The store does not validate d.
func (s *Store) Add(ctx context.Context, d Draft) (Property, error) {
	if err := ctx.Err(); err != nil {
		return Property{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(AddCommand{Draft: d, ID: s.uniqueID(), At: s.now()})
	s.persist(ctx)
	return s.state.Properties[len(s.state.Properties)-1], nil
}

// Update replaces the mutable fields of the record with p.ID. The boolean
// result is false, and nothing changes, when no such record exists.
func (s *Store) Update(ctx context.Context, p Property) (Property, bool, error) {
	if err := ctx.Err(); err != nil {
		return Property{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(UpdateCommand{Property: p, At: s.now()})
	i := indexOf(s.state.Properties, p.ID)
	if i < 0 {
		return Property{}, false, nil
	}
	s.persist(ctx)
	return s.state.Properties[i], true, nil
}

// Delete removes the record with the given id. The boolean result is false
// when no such record exists.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state.Revision
	s.dispatch(DeleteCommand{ID: id})
	if s.state.Revision == before {
		return false, nil
	}
	s.persist(ctx)
	return true, nil
}

// SetFilters merges patch into the current filters.
func (s *Store) SetFilters(patch FilterPatch) Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(SetFiltersCommand{Patch: patch})
	return s.state.Filters
}

// ClearFilters resets the filters to match every record.
func (s *Store) ClearFilters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(ClearFiltersCommand{})
	return s.state.Filters
}

// Properties returns a copy of the full record sequence.
func (s *Store) Properties() []Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Property, len(s.state.Properties))
	copy(out, s.state.Properties)
	return out
}

// FilteredView returns the records matching the current filters. It is
// recomputed on every call.
func (s *Store) FilteredView() []Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filter(s.state.Properties, s.state.Filters)
}

func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Filters
}

func (s *Store) Get(id string) (Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.state.Properties, id)
	if i < 0 {
		return Property{}, ErrNotFound
	}
	return s.state.Properties[i], nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.state.Properties)
}

// Status reports loading, load error and write warning feedback. Loading is
// true only while Load is reading the slot.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		Loading: s.state.Loading,
		Error:   s.state.Error,
		Warning: s.warning,
		Total:   len(s.state.Properties),
		Visible: len(Filter(s.state.Properties, s.state.Filters)),
	}
}

func (s *Store) dispatch(cmd Command) {
	s.state = Reduce(s.state, cmd)
}

// uniqueID asks the generator for an id not held by any record. Generators
// that repeat themselves get a numeric suffix.
func (s *Store) uniqueID() string {
	id := s.newID()
	if indexOf(s.state.Properties, id) < 0 {
		return id
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if indexOf(s.state.Properties, candidate) < 0 {
			return candidate
		}
	}
}

// persist writes the snapshot if the record sequence changed since the last
// successful write. Failures are kept as a warning and never returned.
func (s *Store) persist(ctx context.Context) {
	if s.state.Revision == s.persisted {
		return
	}

	data, err := EncodeSnapshot(s.state.Properties)
	if err == nil {
		err = s.slot.Put(context.WithoutCancel(ctx), s.key, data)
	}
	if err != nil {
		s.logger.Warn("failed to save properties", "key", s.key, "error", err)
		s.warning = fmt.Sprintf("Failed to save properties: %v", err)
		return
	}

	s.persisted = s.state.Revision
	s.warning = ""
}
