package securityinsights

import (
	"time"

	"github.com/rzbill/armkit/pkg/arm"
)

// Bookmark saves a hunting query result for later investigation.
type Bookmark struct {
	arm.ResourceWithEtag
	Properties *BookmarkProperties `json:"properties,omitempty"`
}

func (b *Bookmark) Validate() error {
	if b == nil {
		return nil
	}
	return arm.Nested("properties", b.Properties)
}

// BookmarkProperties are the fields of a bookmark.
type BookmarkProperties struct {
	Created        *time.Time    `json:"created,omitempty"`
	CreatedBy      *UserInfo     `json:"createdBy,omitempty"`
	DisplayName    *string       `json:"displayName,omitempty"`
	EventTime      *time.Time    `json:"eventTime,omitempty"`
	IncidentInfo   *IncidentInfo `json:"incidentInfo,omitempty"`
	Labels         []string      `json:"labels,omitzero"`
	Notes          *string       `json:"notes,omitempty"`
	Query          *string       `json:"query,omitempty"`
	QueryEndTime   *time.Time    `json:"queryEndTime,omitempty"`
	QueryResult    *string       `json:"queryResult,omitempty"`
	QueryStartTime *time.Time    `json:"queryStartTime,omitempty"`
	Updated        *time.Time    `json:"updated,omitempty"`
	UpdatedBy      *UserInfo     `json:"updatedBy,omitempty"`
}

func (p *BookmarkProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("BookmarkProperties",
		arm.Req("displayName", p.DisplayName),
		arm.Req("query", p.Query),
	)
}

// IncidentInfo is the incident a bookmark was added to.
type IncidentInfo struct {
	IncidentID   *string           `json:"incidentId,omitempty"`
	RelationName *string           `json:"relationName,omitempty"`
	Severity     *IncidentSeverity `json:"severity,omitempty"`
	Title        *string           `json:"title,omitempty"`
}

// BookmarkList is one page of bookmarks.
type BookmarkList = arm.Page[*Bookmark]
