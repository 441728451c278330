package property

import "time"

// State is everything the store owns. Revision increases whenever the record
// sequence changes.
type State struct {
	Properties []Property
	Filters    Filters
	Loading    bool
	Error      string
	Revision   uint64
}

// InitialState is the state before the snapshot is restored.
func InitialState() State {
	return State{
		Properties: []Property{},
		Filters:    DefaultFilters(),
	}
}

// Command is a mutation processed by Reduce.
type Command interface {
	command()
}

type AddCommand struct {
	Draft Draft
	ID    string
	At    time.Time
}

type UpdateCommand struct {
	Property Property
	At       time.Time
}

type DeleteCommand struct {
	ID string
}

type SetFiltersCommand struct {
	Patch FilterPatch
}

type ClearFiltersCommand struct{}

type LoadCommand struct {
	Properties []Property
}

type SetLoadingCommand struct {
	Loading bool
}

type SetErrorCommand struct {
	Message string
}

func (AddCommand) command()          {}
func (UpdateCommand) command()       {}
func (DeleteCommand) command()       {}
func (SetFiltersCommand) command()   {}
func (ClearFiltersCommand) command() {}
func (LoadCommand) command()         {}
func (SetLoadingCommand) command()   {}
func (SetErrorCommand) command()     {}

// Reduce returns the state that results from applying cmd to s. The slices
// of s are never modified.
func Reduce(s State, cmd Command) State {
	switch c := cmd.(type) {
	case AddCommand:
		p := Property{ID: c.ID, CreatedAt: c.At, UpdatedAt: c.At}.WithDraft(c.Draft)
		next := make([]Property, 0, len(s.Properties)+1)
		next = append(next, s.Properties...)
		s.Properties = append(next, p)
		s.Revision++

	case UpdateCommand:
		i := indexOf(s.Properties, c.Property.ID)
		if i < 0 {
			return s
		}
		prev := s.Properties[i]
		updated := prev.WithDraft(c.Property.Draft())
		updated.UpdatedAt = c.At
		if updated.UpdatedAt.Before(prev.UpdatedAt) {
			updated.UpdatedAt = prev.UpdatedAt
		}
		next := make([]Property, len(s.Properties))
		copy(next, s.Properties)
		next[i] = updated
		s.Properties = next
		s.Revision++

	case DeleteCommand:
		i := indexOf(s.Properties, c.ID)
		if i < 0 {
			return s
		}
		next := make([]Property, 0, len(s.Properties)-1)
		next = append(next, s.Properties[:i]...)
		s.Properties = append(next, s.Properties[i+1:]...)
		s.Revision++

	case SetFiltersCommand:
		s.Filters = c.Patch.Apply(s.Filters)

	case ClearFiltersCommand:
		s.Filters = DefaultFilters()

	case LoadCommand:
		next := make([]Property, len(c.Properties))
		copy(next, c.Properties)
		s.Properties = next
		s.Loading = false
		s.Revision++

	case SetLoadingCommand:
		s.Loading = c.Loading

	case SetErrorCommand:
		s.Error = c.Message
	}
	return s
}

func indexOf(properties []Property, id string) int {
	for i := range properties {
		if properties[i].ID == id {
			return i
		}
	}
	return -1
}
