// Package catalog names every payload type armkit can decode and picks the
// right one for a payload.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rzbill/armkit/pkg/arm"
	"github.com/rzbill/armkit/pkg/healthbot"
	"github.com/rzbill/armkit/pkg/openenum"
	"github.com/rzbill/armkit/pkg/securityinsights"
)

// Entry describes one decodable payload type.
type Entry struct {
	// Name is "<provider>/<type>", e.g. "securityinsights/alertRule".
	Name string `json:"name" yaml:"name"`

	// Provider is the package short name.
	Provider string `json:"provider" yaml:"provider"`

	// ResourceType is the ARM type of the resource, or of the list items.
	// Empty for payloads that are not resources.
	ResourceType string `json:"resourceType,omitempty" yaml:"resourceType,omitempty"`

	// List is set for list envelopes.
	List bool `json:"list" yaml:"list"`

	// Decode decodes and validates a payload. List entries return a value
	// implementing Listing.
	Decode func(data []byte) (any, error) `json:"-" yaml:"-"`
}

// Listing is implemented by the decoded value of every list entry.
type Listing interface {
	arm.Continuable
	Len() int

	// Members returns the items as untyped values.
	Members() []any
}

// Provider groups the metadata of one resource provider package.
type Provider struct {
	Name       string
	Namespace  string
	APIVersion string
	Enums      *openenum.Set
	Unions     []arm.UnionDescriptor
}

// Catalog is an immutable set of entries.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// New builds a catalog. Entry names must be unique.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.Name == "" || e.Decode == nil {
			return nil, fmt.Errorf("catalog entry %q is incomplete", e.Name)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", e.Name)
		}
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Lookup returns the entry named name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Names returns every entry name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every entry in registration order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// ForResourceType returns the entry of a single resource of the ARM type
// armType, or its list entry when list is set. Types compare
// case-insensitively.
func (c *Catalog) ForResourceType(armType string, list bool) (Entry, bool) {
	for _, e := range c.entries {
		if e.List == list && e.ResourceType != "" && strings.EqualFold(e.ResourceType, armType) {
			return e, true
		}
	}
	return Entry{}, false
}

// Detect picks an entry from the payload's "type" field, or for a list
// envelope from the "type" of its first item.
func (c *Catalog) Detect(data []byte) (Entry, error) {
	var head struct {
		Type  string `json:"type"`
		Value []struct {
			Type string `json:"type"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Entry{}, fmt.Errorf("cannot detect payload type: %w", err)
	}

	if head.Type != "" {
		if e, ok := c.ForResourceType(head.Type, false); ok {
			return e, nil
		}
		return Entry{}, fmt.Errorf("no catalog entry for resource type %q", head.Type)
	}
	if len(head.Value) > 0 && head.Value[0].Type != "" {
		if e, ok := c.ForResourceType(head.Value[0].Type, true); ok {
			return e, nil
		}
		return Entry{}, fmt.Errorf("no catalog entry for lists of %q", head.Value[0].Type)
	}
	return Entry{}, fmt.Errorf("payload has no type; name one of: %s", strings.Join(c.Names(), ", "))
}

// Default returns the catalog of every type in the healthbot and
// securityinsights packages.
var Default = sync.OnceValue(func() *Catalog {
	c, err := New(defaultEntries()...)
	if err != nil {
		panic(err)
	}
	return c
})

// Providers returns the metadata of every provider package.
func Providers() []Provider {
	return []Provider{
		{
			Name:       "arm",
			Namespace:  "",
			APIVersion: "",
			Enums:      arm.Enums(),
		},
		{
			Name:       "healthbot",
			Namespace:  healthbot.ProviderNamespace,
			APIVersion: healthbot.APIVersion,
			Enums:      healthbot.Enums(),
		},
		{
			Name:       "securityinsights",
			Namespace:  securityinsights.ProviderNamespace,
			APIVersion: securityinsights.APIVersion,
			Enums:      securityinsights.Enums(),
			Unions:     securityinsights.Unions(),
		},
	}
}
