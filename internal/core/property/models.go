package property

import (
	"fmt"
	"time"
)

// Type is the kind of listing.
type Type string

const (
	TypeApartment  Type = "Apartment"
	TypeHouse      Type = "House"
	TypeCondo      Type = "Condo"
	TypeTownhouse  Type = "Townhouse"
	TypeCommercial Type = "Commercial"
)

// Types lists every property type in display order.
var Types = []Type{
	TypeApartment,
	TypeHouse,
	TypeCondo,
	TypeTownhouse,
	TypeCommercial,
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// ParseType returns the Type with the given name.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown property type %q", s)
	}
	return t, nil
}

// TypeFilter is a Type or All.
type TypeFilter string

const TypeAll TypeFilter = "All"

// ParseTypeFilter accepts "All" or any valid Type. An empty string means All.
func ParseTypeFilter(s string) (TypeFilter, error) {
	if s == "" || s == string(TypeAll) {
		return TypeAll, nil
	}
	t, err := ParseType(s)
	if err != nil {
		return "", err
	}
	return TypeFilter(t), nil
}

func (f TypeFilter) Matches(t Type) bool {
	return f == TypeAll || f == "" || Type(f) == t
}

type Property struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Type        Type      `json:"type" yaml:"type"`
	Price       float64   `json:"price" yaml:"price"`
	Location    string    `json:"location" yaml:"location"`
	Description string    `json:"description" yaml:"description"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Draft holds the caller-supplied fields of a new record.
type Draft struct {
	Name        string  `json:"name"`
	Type        Type    `json:"type"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
}

// Draft returns the mutable fields of p.
func (p Property) Draft() Draft {
	return Draft{
		Name:        p.Name,
		Type:        p.Type,
		Price:       p.Price,
		Location:    p.Location,
		Description: p.Description,
	}
}

// WithDraft returns a copy of p whose mutable fields are replaced by d.
func (p Property) WithDraft(d Draft) Property {
	p.Name = d.Name
	p.Type = d.Type
	p.Price = d.Price
	p.Location = d.Location
	p.Description = d.Description
	return p
}

type Filters struct {
	Search string     `json:"search"`
	Type   TypeFilter `json:"type"`
}

// DefaultFilters matches every record.
func DefaultFilters() Filters {
	return Filters{Search: "", Type: TypeAll}
}

// FilterPatch carries the filter fields to merge. Nil fields are left unchanged.
type FilterPatch struct {
	Search *string     `json:"search,omitempty"`
	Type   *TypeFilter `json:"type,omitempty"`
}

// Apply merges the patch into f.
func (p FilterPatch) Apply(f Filters) Filters {
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.Type != nil {
		f.Type = *p.Type
	}
	return f
}

// Status is the loading/error feedback exposed to the presentation layer.
type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
	Total   int    `json:"total"`
	Visible int    `json:"visible"`
}
