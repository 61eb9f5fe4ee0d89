package securityinsights

import "github.com/rzbill/armkit/pkg/arm"

// SentinelOnboardingState records that Sentinel is enabled on a workspace.
type SentinelOnboardingState struct {
	arm.ResourceWithEtag
	Properties *SentinelOnboardingStateProperties `json:"properties,omitempty"`
}

// SentinelOnboardingStateProperties are the onboarding options.
type SentinelOnboardingStateProperties struct {
	// CustomerManagedKey is whether the workspace uses a customer-managed key.
	CustomerManagedKey *bool `json:"customerManagedKey,omitempty"`
}

// SentinelOnboardingStatesList holds every onboarding state of a workspace.
// It is not paginated.
type SentinelOnboardingStatesList struct {
	arm.List[*SentinelOnboardingState]
}

func (l *SentinelOnboardingStatesList) Validate() error {
	if err := arm.CheckRequired("SentinelOnboardingStatesList", arm.ReqSlice("value", l.Value)); err != nil {
		return err
	}
	return l.List.Validate()
}
