package securityinsights

import (
	"time"

	"github.com/rzbill/armkit/pkg/arm"
)

// Incident is a triaged group of alerts.
type Incident struct {
	arm.ResourceWithEtag
	Properties *IncidentProperties `json:"properties,omitempty"`
}

func (i *Incident) Validate() error {
	if i == nil {
		return nil
	}
	return arm.Nested("properties", i.Properties)
}

// IncidentProperties are the fields of an incident.
type IncidentProperties struct {
	AdditionalData         *IncidentAdditionalData       `json:"additionalData,omitempty"`
	Classification         *IncidentClassification       `json:"classification,omitempty"`
	ClassificationComment  *string                       `json:"classificationComment,omitempty"`
	ClassificationReason   *IncidentClassificationReason `json:"classificationReason,omitempty"`
	CreatedTimeUTC         *time.Time                    `json:"createdTimeUtc,omitempty"`
	Description            *string                       `json:"description,omitempty"`
	FirstActivityTimeUTC   *time.Time                    `json:"firstActivityTimeUtc,omitempty"`
	IncidentNumber         *int32                        `json:"incidentNumber,omitempty"`
	IncidentURL            *string                       `json:"incidentUrl,omitempty"`
	Labels                 []*IncidentLabel              `json:"labels,omitzero"`
	LastActivityTimeUTC    *time.Time                    `json:"lastActivityTimeUtc,omitempty"`
	LastModifiedTimeUTC    *time.Time                    `json:"lastModifiedTimeUtc,omitempty"`
	Owner                  *IncidentOwnerInfo            `json:"owner,omitempty"`
	ProviderIncidentID     *string                       `json:"providerIncidentId,omitempty"`
	ProviderName           *string                       `json:"providerName,omitempty"`
	RelatedAnalyticRuleIDs []string                      `json:"relatedAnalyticRuleIds,omitzero"`
	Severity               *IncidentSeverity             `json:"severity,omitempty"`
	Status                 *IncidentStatus               `json:"status,omitempty"`
	TeamInformation        *TeamInformation              `json:"teamInformation,omitempty"`
	Title                  *string                       `json:"title,omitempty"`
}

func (p *IncidentProperties) Validate() error {
	if p == nil {
		return nil
	}
	err := arm.CheckRequired("IncidentProperties",
		arm.Req("severity", p.Severity),
		arm.Req("status", p.Status),
		arm.Req("title", p.Title),
	)
	if err != nil {
		return err
	}
	return arm.NestedList("labels", p.Labels)
}

// IncidentAdditionalData holds counters and aggregates computed by the service.
type IncidentAdditionalData struct {
	AlertProductNames   []string       `json:"alertProductNames,omitzero"`
	AlertsCount         *int32         `json:"alertsCount,omitempty"`
	BookmarksCount      *int32         `json:"bookmarksCount,omitempty"`
	CommentsCount       *int32         `json:"commentsCount,omitempty"`
	ProviderIncidentURL *string        `json:"providerIncidentUrl,omitempty"`
	Tactics             []AttackTactic `json:"tactics,omitzero"`
	Techniques          []string       `json:"techniques,omitzero"`
}

// IncidentLabel is a label attached to an incident.
type IncidentLabel struct {
	LabelName *string            `json:"labelName,omitempty"`
	LabelType *IncidentLabelType `json:"labelType,omitempty"`
}

func (l *IncidentLabel) Validate() error {
	if l == nil {
		return nil
	}
	return arm.CheckRequired("IncidentLabel", arm.Req("labelName", l.LabelName))
}

// IncidentOwnerInfo is the principal an incident is assigned to.
type IncidentOwnerInfo struct {
	AssignedTo        *string    `json:"assignedTo,omitempty"`
	Email             *string    `json:"email,omitempty"`
	ObjectID          *string    `json:"objectId,omitempty"`
	OwnerType         *OwnerType `json:"ownerType,omitempty"`
	UserPrincipalName *string    `json:"userPrincipalName,omitempty"`
}

// TeamInformation describes the Microsoft Teams team created for an incident.
type TeamInformation struct {
	Description         *string    `json:"description,omitempty"`
	Name                *string    `json:"name,omitempty"`
	PrimaryChannelURL   *string    `json:"primaryChannelUrl,omitempty"`
	TeamCreationTimeUTC *time.Time `json:"teamCreationTimeUtc,omitempty"`
	TeamID              *string    `json:"teamId,omitempty"`
}

// ClientInfo identifies the client that made a change.
type ClientInfo struct {
	Email             *string `json:"email,omitempty"`
	Name              *string `json:"name,omitempty"`
	ObjectID          *string `json:"objectId,omitempty"`
	UserPrincipalName *string `json:"userPrincipalName,omitempty"`
}

// UserInfo identifies a user.
type UserInfo struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	ObjectID *string `json:"objectId,omitempty"`
}

// IncidentList is one page of incidents.
type IncidentList = arm.Page[*Incident]

// IncidentComment is a comment on an incident.
type IncidentComment struct {
	arm.ResourceWithEtag
	Properties *IncidentCommentProperties `json:"properties,omitempty"`
}

func (c *IncidentComment) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// IncidentCommentProperties are the fields of a comment.
type IncidentCommentProperties struct {
	Author              *ClientInfo `json:"author,omitempty"`
	CreatedTimeUTC      *time.Time  `json:"createdTimeUtc,omitempty"`
	LastModifiedTimeUTC *time.Time  `json:"lastModifiedTimeUtc,omitempty"`
	Message             *string     `json:"message,omitempty"`
}

func (p *IncidentCommentProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("IncidentCommentProperties", arm.Req("message", p.Message))
}

// IncidentCommentList is one page of incident comments.
type IncidentCommentList = arm.Page[*IncidentComment]

// Relation links an incident to another resource, such as a bookmark.
type Relation struct {
	arm.ResourceWithEtag
	Properties *RelationProperties `json:"properties,omitempty"`
}

func (r *Relation) Validate() error {
	if r == nil {
		return nil
	}
	return arm.Nested("properties", r.Properties)
}

// RelationProperties are the fields of a relation.
type RelationProperties struct {
	RelatedResourceID   *string `json:"relatedResourceId,omitempty"`
	RelatedResourceKind *string `json:"relatedResourceKind,omitempty"`
	RelatedResourceName *string `json:"relatedResourceName,omitempty"`
	RelatedResourceType *string `json:"relatedResourceType,omitempty"`
}

func (p *RelationProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("RelationProperties", arm.Req("relatedResourceId", p.RelatedResourceID))
}

// RelationList is one page of relations.
type RelationList = arm.Page[*Relation]
