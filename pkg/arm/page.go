package arm

import (
	"encoding/json"
	"fmt"
)

// Continuable is implemented by every list envelope. Continuation returns the
// token for the next page, or nil when the listing is complete.
type Continuable interface {
	Continuation() *string
}

// Page is one page of a server-paginated listing.
type Page[T any] struct {
	// Value holds the page's items in server order.
	Value []T `json:"value,omitzero"`

	// NextLink is the continuation token. Empty means no further pages.
	NextLink *string `json:"nextLink,omitempty"`
}

// Continuation returns the next-page token. An empty next link is treated
// exactly like an absent one.
func (p Page[T]) Continuation() *string {
	if p.NextLink == nil || *p.NextLink == "" {
		return nil
	}
	next := *p.NextLink
	return &next
}

// HasMore reports whether another page can be fetched.
func (p Page[T]) HasMore() bool {
	return p.Continuation() != nil
}

// Items returns the page's items.
func (p Page[T]) Items() []T {
	return p.Value
}

// Len returns the number of items on the page.
func (p Page[T]) Len() int {
	return len(p.Value)
}

// Validate validates every item that has required fields.
func (p Page[T]) Validate() error {
	return validateItems(p.Value)
}

// List is a complete, non-paginated listing. Its continuation is always nil.
type List[T any] struct {
	Value []T `json:"value,omitzero"`
}

// Continuation always returns nil.
func (l List[T]) Continuation() *string {
	return nil
}

// Items returns the list's items.
func (l List[T]) Items() []T {
	return l.Value
}

// Len returns the number of items in the list.
func (l List[T]) Len() int {
	return len(l.Value)
}

// Validate validates every item that has required fields.
func (l List[T]) Validate() error {
	return validateItems(l.Value)
}

func validateItems[T any](items []T) error {
	for i, item := range items {
		if v, ok := any(item).(Validator); ok {
			if err := Nested(fmt.Sprintf("value[%d]", i), v); err != nil {
				return err
			}
		}
	}
	return nil
}

type rawPage struct {
	Value    []json.RawMessage `json:"value"`
	NextLink *string           `json:"nextLink"`
}

// DecodeUnionPage decodes a page whose items are members of a polymorphic
// union.
func DecodeUnionPage[T any](data []byte, u *Union[T]) (Page[T], error) {
	var raw rawPage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Page[T]{}, classify(u.Name()+"List", err)
	}
	items, err := u.DecodeList(raw.Value)
	if err != nil {
		return Page[T]{}, WrapDecodeError(err, "value")
	}
	return Page[T]{Value: items, NextLink: raw.NextLink}, nil
}

// DecodeUnionList decodes a non-paginated list of union members.
func DecodeUnionList[T any](data []byte, u *Union[T]) (List[T], error) {
	page, err := DecodeUnionPage(data, u)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{Value: page.Value}, nil
}

var (
	_ Continuable = Page[int]{}
	_ Continuable = List[int]{}
)
