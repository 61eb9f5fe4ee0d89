package securityinsights

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzbill/armkit/pkg/arm"
)

// Watchlist is a named set of rows, such as high-value assets, that queries
// can join against.
type Watchlist struct {
	arm.ResourceWithEtag
	Properties *WatchlistProperties `json:"properties,omitempty"`
}

func (w *Watchlist) Validate() error {
	if w == nil {
		return nil
	}
	return arm.Nested("properties", w.Properties)
}

// WatchlistProperties are the fields of a watchlist.
type WatchlistProperties struct {
	ContentType *string    `json:"contentType,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	CreatedBy   *UserInfo  `json:"createdBy,omitempty"`

	// DefaultDuration is an ISO 8601 duration after which rows expire.
	DefaultDuration *string `json:"defaultDuration,omitempty"`
	Description     *string `json:"description,omitempty"`
	DisplayName     *string `json:"displayName,omitempty"`
	IsDeleted       *bool   `json:"isDeleted,omitempty"`

	// ItemsSearchKey is the column used to look rows up.
	ItemsSearchKey      *string     `json:"itemsSearchKey,omitempty"`
	Labels              []string    `json:"labels,omitzero"`
	NumberOfLinesToSkip *int32      `json:"numberOfLinesToSkip,omitempty"`
	Provider            *string     `json:"provider,omitempty"`
	RawContent          *string     `json:"rawContent,omitempty"`
	Source              *SourceType `json:"source,omitempty"`
	TenantID            *string     `json:"tenantId,omitempty"`
	Updated             *time.Time  `json:"updated,omitempty"`
	UpdatedBy           *UserInfo   `json:"updatedBy,omitempty"`
	UploadStatus        *string     `json:"uploadStatus,omitempty"`
	WatchlistAlias      *string     `json:"watchlistAlias,omitempty"`
	WatchlistID         *string     `json:"watchlistId,omitempty"`
	WatchlistType       *string     `json:"watchlistType,omitempty"`
}

func (p *WatchlistProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("WatchlistProperties",
		arm.Req("displayName", p.DisplayName),
		arm.Req("provider", p.Provider),
		arm.Req("source", p.Source),
		arm.Req("itemsSearchKey", p.ItemsSearchKey),
	)
}

// WatchlistList is one page of watchlists.
type WatchlistList = arm.Page[*Watchlist]

// WatchlistItem is one row of a watchlist.
type WatchlistItem struct {
	arm.ResourceWithEtag
	Properties *WatchlistItemProperties `json:"properties,omitempty"`
}

// NewWatchlistItemName returns a fresh item name. Watchlist item names are
// GUIDs chosen by the client.
func NewWatchlistItemName() string {
	return uuid.NewString()
}

func (w *WatchlistItem) Validate() error {
	if w == nil {
		return nil
	}
	return arm.Nested("properties", w.Properties)
}

// WatchlistItemProperties are the fields of a watchlist row.
type WatchlistItemProperties struct {
	Created   *time.Time `json:"created,omitempty"`
	CreatedBy *UserInfo  `json:"createdBy,omitempty"`

	// EntityMapping is free-form and service-defined.
	EntityMapping any   `json:"entityMapping,omitempty"`
	IsDeleted     *bool `json:"isDeleted,omitempty"`

	// ItemsKeyValue holds the row's columns.
	ItemsKeyValue     any        `json:"itemsKeyValue,omitempty"`
	TenantID          *string    `json:"tenantId,omitempty"`
	Updated           *time.Time `json:"updated,omitempty"`
	UpdatedBy         *UserInfo  `json:"updatedBy,omitempty"`
	WatchlistItemID   *string    `json:"watchlistItemId,omitempty"`
	WatchlistItemType *string    `json:"watchlistItemType,omitempty"`
}

func (p *WatchlistItemProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("WatchlistItemProperties", arm.ReqAny("itemsKeyValue", p.ItemsKeyValue))
}

// WatchlistItemList is one page of watchlist items.
type WatchlistItemList = arm.Page[*WatchlistItem]
