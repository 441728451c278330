package property

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// SnapshotKey is the slot key holding the serialized record sequence.
const SnapshotKey = "properties"

// ErrCorruptSnapshot is returned when a stored snapshot does not have the
// expected shape.
var ErrCorruptSnapshot = errors.New("corrupt property snapshot")

type snapshotRecord struct {
	ID          *string  `json:"id"`
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	CreatedAt   *string  `json:"createdAt"`
	UpdatedAt   *string  `json:"updatedAt"`
}

// EncodeSnapshot serializes the full record sequence. Timestamps are written
// as RFC 3339 with nanoseconds in UTC.
func EncodeSnapshot(properties []Property) ([]byte, error) {
	records := make([]snapshotRecord, len(properties))
	for i := range properties {
		p := properties[i]
		createdAt := p.CreatedAt.UTC().Format(time.RFC3339Nano)
		updatedAt := p.UpdatedAt.UTC().Format(time.RFC3339Nano)
		typ := string(p.Type)
		records[i] = snapshotRecord{
			ID:          &p.ID,
			Name:        &p.Name,
			Type:        &typ,
			Price:       &p.Price,
			Location:    &p.Location,
			Description: &p.Description,
			CreatedAt:   &createdAt,
			UpdatedAt:   &updatedAt,
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot written by EncodeSnapshot. Missing fields,
// unknown fields, unknown types, malformed timestamps and duplicate ids all
// fail the whole snapshot with ErrCorruptSnapshot.
func DecodeSnapshot(data []byte) ([]Property, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []*snapshotRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrCorruptSnapshot)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: not an array", ErrCorruptSnapshot)
	}

	properties := make([]Property, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		p, err := rec.property()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptSnapshot, i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: record %d: duplicate id %q", ErrCorruptSnapshot, i, p.ID)
		}
		seen[p.ID] = struct{}{}
		properties = append(properties, p)
	}
	return properties, nil
}

func (r *snapshotRecord) property() (Property, error) {
	if r == nil {
		return Property{}, errors.New("null record")
	}
	switch {
	case r.ID == nil:
		return Property{}, errors.New("missing id")
	case r.Name == nil:
		return Property{}, errors.New("missing name")
	case r.Type == nil:
		return Property{}, errors.New("missing type")
	case r.Price == nil:
		return Property{}, errors.New("missing price")
	case r.Location == nil:
		return Property{}, errors.New("missing location")
	case r.Description == nil:
		return Property{}, errors.New("missing description")
	case r.CreatedAt == nil:
		return Property{}, errors.New("missing createdAt")
	case r.UpdatedAt == nil:
		return Property{}, errors.New("missing updatedAt")
	}

	typ, err := ParseType(*r.Type)
	if err != nil {
		return Property{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, *r.CreatedAt)
	if err != nil {
		return Property{}, fmt.Errorf("createdAt: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, *r.UpdatedAt)
	if err != nil {
		return Property{}, fmt.Errorf("updatedAt: %w", err)
	}
	if updatedAt.Before(createdAt) {
		return Property{}, errors.New("updatedAt precedes createdAt")
	}

	return Property{
		ID:          *r.ID,
		Name:        *r.Name,
		Type:        typ,
		Price:       *r.Price,
		Location:    *r.Location,
		Description: *r.Description,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   updatedAt.UTC(),
	}, nil
}
