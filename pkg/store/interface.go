// Package store keeps snapshots of decoded ARM resources, keyed by their
// resource ID.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rzbill/armkit/pkg/arm"
)

var (
	// ErrMissingID is returned by Put for a resource without an id.
	ErrMissingID = errors.New("resource has no id")

	// ErrInvalidID is returned for an id that is not an ARM resource ID.
	ErrInvalidID = errors.New("invalid resource id")

	// ErrNotFound is returned when no snapshot exists for an id.
	ErrNotFound = errors.New("resource not found")
)

// Store holds resource snapshots. ARM resource IDs are case-insensitive, and
// so are the IDs and types accepted here.
type Store interface {
	// Open initializes the store at path.
	Open(path string) error

	// Close releases the store.
	Close() error

	// Put stores rec as the current snapshot of its resource. The previous
	// snapshot, if any, is kept in the resource's history.
	Put(ctx context.Context, rec *Record) error

	// Get returns the current snapshot of id.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns the current snapshots of every resource of resourceType,
	// or of every resource when resourceType is empty, ordered by key.
	List(ctx context.Context, resourceType string) ([]*Record, error)

	// Delete removes the current snapshot and history of id.
	Delete(ctx context.Context, id string) error

	// History returns every snapshot ever put for id, most recently put
	// first, whatever their ImportedAt times.
	History(ctx context.Context, id string) ([]*Record, error)
}

// Record is one stored snapshot.
type Record struct {
	// ID is the ARM resource ID as it appeared in the payload.
	ID string `json:"id" yaml:"id"`

	// Type is the ARM resource type derived from ID.
	Type string `json:"type" yaml:"type"`

	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Entry names the catalog entry the resource was decoded with.
	Entry string `json:"entry" yaml:"entry"`

	ImportedAt time.Time `json:"importedAt" yaml:"importedAt"`

	// Resource is the canonical JSON of the decoded resource.
	Resource json.RawMessage `json:"resource" yaml:"-"`
}

type enveloped interface {
	GetResource() *arm.Resource
}

// NewRecord snapshots a decoded resource. v must carry the common ARM
// envelope; its id becomes the record ID.
func NewRecord(entry string, v any) (*Record, error) {
	env, ok := v.(enveloped)
	if !ok {
		return nil, fmt.Errorf("%T is not an ARM resource", v)
	}
	res := env.GetResource()
	if res == nil || res.ID == nil || *res.ID == "" {
		return nil, ErrMissingID
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resource: %w", err)
	}

	rec := &Record{
		ID:         *res.ID,
		Entry:      entry,
		ImportedAt: time.Now().UTC(),
		Resource:   data,
	}
	if res.Name != nil {
		rec.Name = *res.Name
	}
	return rec, nil
}

func (r *Record) clone() *Record {
	c := *r
	c.Resource = append(json.RawMessage(nil), r.Resource...)
	return &c
}
