package arm

import "github.com/rzbill/armkit/pkg/openenum"

// Origin is the intended executor of an operation.
type Origin string

const (
	OriginSystem     Origin = "system"
	OriginUser       Origin = "user"
	OriginUserSystem Origin = "user,system"
)

var origins = openenum.New("Origin", OriginUser, OriginSystem, OriginUserSystem)

// PossibleOriginValues returns the known values for Origin.
func PossibleOriginValues() []Origin {
	return origins.Values()
}

// IsKnown reports whether o is a value this package knows about.
func (o Origin) IsKnown() bool {
	return origins.IsKnown(o)
}

// ActionType marks operations that are for internal use only.
type ActionType string

const (
	ActionTypeInternal ActionType = "Internal"
)

var actionTypes = openenum.New("ActionType", ActionTypeInternal)

// PossibleActionTypeValues returns the known values for ActionType.
func PossibleActionTypeValues() []ActionType {
	return actionTypes.Values()
}

// IsKnown reports whether a is a value this package knows about.
func (a ActionType) IsKnown() bool {
	return actionTypes.IsKnown(a)
}

// OperationDisplay is the localized display information of an operation.
type OperationDisplay struct {
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Operation   *string `json:"operation,omitempty" yaml:"operation,omitempty"`
	Provider    *string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Resource    *string `json:"resource,omitempty" yaml:"resource,omitempty"`
}

// Operation is one REST operation exposed by a resource provider.
type Operation struct {
	ActionType   *ActionType       `json:"actionType,omitempty" yaml:"actionType,omitempty"`
	Display      *OperationDisplay `json:"display,omitempty" yaml:"display,omitempty"`
	IsDataAction *bool             `json:"isDataAction,omitempty" yaml:"isDataAction,omitempty"`
	Name         *string           `json:"name,omitempty" yaml:"name,omitempty"`
	Origin       *Origin           `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// OperationList is a page of provider operations.
type OperationList = Page[*Operation]

// Enums returns every open enum declared by this package.
func Enums() *openenum.Set {
	return openenum.NewSet(createdByTypes, origins, actionTypes)
}
