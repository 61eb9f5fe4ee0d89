package healthbot

import "github.com/rzbill/armkit/pkg/openenum"

// SkuName is the pricing tier of a Health Bot.
type SkuName string

const (
	SkuNameC0  SkuName = "C0"
	SkuNameC1  SkuName = "C1"
	SkuNameF0  SkuName = "F0"
	SkuNamePES SkuName = "PES"
	SkuNameS1  SkuName = "S1"
)

var skuNames = openenum.New("SkuName",
	SkuNameF0,
	SkuNameS1,
	SkuNameC0,
	SkuNamePES,
	SkuNameC1,
)

// PossibleSkuNameValues returns the known values for SkuName.
func PossibleSkuNameValues() []SkuName {
	return skuNames.Values()
}

// IsKnown reports whether s is a value this package knows about.
func (s SkuName) IsKnown() bool {
	return skuNames.IsKnown(s)
}

// ResourceIdentityType is the kind of managed identity attached to a bot.
type ResourceIdentityType string

const (
	ResourceIdentityTypeNone                       ResourceIdentityType = "None"
	ResourceIdentityTypeSystemAssigned             ResourceIdentityType = "SystemAssigned"
	ResourceIdentityTypeSystemAssignedUserAssigned ResourceIdentityType = "SystemAssigned, UserAssigned"
	ResourceIdentityTypeUserAssigned               ResourceIdentityType = "UserAssigned"
)

var identityTypes = openenum.New("ResourceIdentityType",
	ResourceIdentityTypeSystemAssigned,
	ResourceIdentityTypeUserAssigned,
	ResourceIdentityTypeSystemAssignedUserAssigned,
	ResourceIdentityTypeNone,
)

// PossibleResourceIdentityTypeValues returns the known values for ResourceIdentityType.
func PossibleResourceIdentityTypeValues() []ResourceIdentityType {
	return identityTypes.Values()
}

// IsKnown reports whether r is a value this package knows about.
func (r ResourceIdentityType) IsKnown() bool {
	return identityTypes.IsKnown(r)
}

// Enums returns every open enum declared by this package.
func Enums() *openenum.Set {
	return openenum.NewSet(skuNames, identityTypes)
}
