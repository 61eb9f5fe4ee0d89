// Package arm holds the building blocks shared by every Azure Resource
// Manager model package: resource envelopes, system metadata, polymorphic
// dispatch, pagination envelopes and structural decode errors.
//
// Nothing in this package performs I/O or logs.
package arm

import (
	"errors"
	"time"

	azarm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/rzbill/armkit/pkg/openenum"
)

// CreatedByType is the kind of identity that created or last modified a resource.
type CreatedByType string

const (
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeKey             CreatedByType = "Key"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeUser            CreatedByType = "User"
)

var createdByTypes = openenum.New("CreatedByType",
	CreatedByTypeUser,
	CreatedByTypeApplication,
	CreatedByTypeManagedIdentity,
	CreatedByTypeKey,
)

// PossibleCreatedByTypeValues returns the known values for CreatedByType.
func PossibleCreatedByTypeValues() []CreatedByType {
	return createdByTypes.Values()
}

// IsKnown reports whether c is a value this package knows about.
func (c CreatedByType) IsKnown() bool {
	return createdByTypes.IsKnown(c)
}

// SystemData is the creation and last-modification audit trail of a resource.
type SystemData struct {
	// CreatedAt is the UTC timestamp of resource creation.
	CreatedAt *time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`

	// CreatedBy is the identity that created the resource.
	CreatedBy *string `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`

	// CreatedByType is the kind of identity that created the resource.
	CreatedByType *CreatedByType `json:"createdByType,omitempty" yaml:"createdByType,omitempty"`

	// LastModifiedAt is the UTC timestamp of the last modification.
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty" yaml:"lastModifiedAt,omitempty"`

	// LastModifiedBy is the identity that last modified the resource.
	LastModifiedBy *string `json:"lastModifiedBy,omitempty" yaml:"lastModifiedBy,omitempty"`

	// LastModifiedByType is the kind of identity that last modified the resource.
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty" yaml:"lastModifiedByType,omitempty"`
}

// Resource is the identity envelope common to every ARM resource. All of
// its fields are assigned by the service; client-built values leave them nil.
type Resource struct {
	// ID is the fully qualified resource ID.
	ID *string `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is the resource name.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	// Type is the resource type, e.g. "Microsoft.HealthBot/healthBots".
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`

	// SystemData holds creation and modification metadata.
	SystemData *SystemData `json:"systemData,omitempty" yaml:"systemData,omitempty"`
}

// ErrNoResourceID is returned when a resource carries no ID.
var ErrNoResourceID = errors.New("resource has no id")

// GetResource returns the envelope itself. Resource types that embed the
// envelope inherit this method.
func (r *Resource) GetResource() *Resource {
	return r
}

// ResourceID parses the resource's ID.
func (r *Resource) ResourceID() (*azarm.ResourceID, error) {
	if r == nil || r.ID == nil || *r.ID == "" {
		return nil, ErrNoResourceID
	}
	return azarm.ParseResourceID(*r.ID)
}

// ProxyResource is a resource that has no location or tags of its own.
type ProxyResource struct {
	Resource
}

// ResourceWithEtag is a resource envelope carrying an optimistic concurrency
// token.
type ResourceWithEtag struct {
	Resource

	// Etag is the opaque entity tag of the resource.
	Etag *string `json:"etag,omitempty" yaml:"etag,omitempty"`
}

// GetResourceWithEtag returns the envelope itself, like GetResource.
func (r *ResourceWithEtag) GetResourceWithEtag() *ResourceWithEtag {
	return r
}

// TrackedResource is a resource deployed into a region.
type TrackedResource struct {
	Resource

	// Location is the geo-location where the resource lives. Required.
	Location *string `json:"location,omitempty" yaml:"location,omitempty"`

	// Tags are free-form resource tags.
	Tags map[string]string `json:"tags,omitzero" yaml:"tags,omitempty"`
}

// Validate checks the envelope's required fields.
func (r *TrackedResource) Validate() error {
	if r == nil {
		return nil
	}
	return CheckRequired("TrackedResource", Req("location", r.Location))
}
