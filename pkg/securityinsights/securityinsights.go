// Package securityinsights contains the data model of the
// Microsoft.SecurityInsights (Microsoft Sentinel) resource provider.
//
// Polymorphic resources (alert rules, alert rule templates, data connectors,
// settings, and the actions and conditions of automation rules) are Go
// interfaces. Each concrete variant writes its discriminator on encode, and
// the Unmarshal* functions and list types select the variant on decode.
package securityinsights

import "github.com/rzbill/armkit/pkg/arm"

const (
	// ProviderNamespace is the resource provider namespace.
	ProviderNamespace = "Microsoft.SecurityInsights"

	// APIVersion is the REST API version these models follow.
	APIVersion = "2023-02-01"
)

// ARM resource types of this provider.
const (
	ResourceTypeActions            = ProviderNamespace + "/alertRules/actions"
	ResourceTypeAlertRuleTemplates = ProviderNamespace + "/alertRuleTemplates"
	ResourceTypeAlertRules         = ProviderNamespace + "/alertRules"
	ResourceTypeAutomationRules    = ProviderNamespace + "/automationRules"
	ResourceTypeBookmarks          = ProviderNamespace + "/bookmarks"
	ResourceTypeDataConnectors     = ProviderNamespace + "/dataConnectors"
	ResourceTypeIncidentComments   = ProviderNamespace + "/incidents/comments"
	ResourceTypeIncidentRelations  = ProviderNamespace + "/incidents/relations"
	ResourceTypeIncidents          = ProviderNamespace + "/incidents"
	ResourceTypeOnboardingStates   = ProviderNamespace + "/onboardingStates"
	ResourceTypeSettings           = ProviderNamespace + "/settings"
	ResourceTypeWatchlistItems     = ProviderNamespace + "/watchlists/watchlistItems"
	ResourceTypeWatchlists         = ProviderNamespace + "/watchlists"
)

// OperationsList is one page of provider operations.
type OperationsList = arm.OperationList

// Unions describes every polymorphic type of this package.
func Unions() []arm.UnionDescriptor {
	return []arm.UnionDescriptor{
		alertRules.Describe(),
		alertRuleTemplates.Describe(),
		automationRuleActions.Describe(),
		automationRuleConditions.Describe(),
		dataConnectors.Describe(),
		settings.Describe(),
	}
}
