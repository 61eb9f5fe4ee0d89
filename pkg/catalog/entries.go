package catalog

import (
	"encoding/json"

	"github.com/rzbill/armkit/pkg/arm"
	"github.com/rzbill/armkit/pkg/healthbot"
	si "github.com/rzbill/armkit/pkg/securityinsights"
)

func resource[T any](name, provider, resourceType string) Entry {
	return Entry{
		Name:         name,
		Provider:     provider,
		ResourceType: resourceType,
		Decode: func(data []byte) (any, error) {
			v := new(T)
			if err := arm.Unmarshal(data, v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func union[T any](name, provider, resourceType string, decode func([]byte) (T, error)) Entry {
	return Entry{
		Name:         name,
		Provider:     provider,
		ResourceType: resourceType,
		Decode: func(data []byte) (any, error) {
			v, err := decode(data)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

type listEnvelope[I any] interface {
	arm.Continuable
	Items() []I
}

func list[L any, P interface {
	*L
	listEnvelope[I]
}, I any](name, provider, resourceType string) Entry {
	return Entry{
		Name:         name,
		Provider:     provider,
		ResourceType: resourceType,
		List:         true,
		Decode: func(data []byte) (any, error) {
			p := P(new(L))
			if err := arm.Unmarshal(data, p); err != nil {
				return nil, err
			}
			return &listValue[I]{list: p}, nil
		},
	}
}

// listValue adapts a decoded list envelope to Listing. It encodes as the
// envelope itself.
type listValue[I any] struct {
	list listEnvelope[I]
}

func (v *listValue[I]) Continuation() *string { return v.list.Continuation() }
func (v *listValue[I]) Len() int              { return len(v.list.Items()) }

func (v *listValue[I]) Members() []any {
	items := v.list.Items()
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Envelope returns the decoded list type, e.g. *securityinsights.IncidentList.
func (v *listValue[I]) Envelope() any { return v.list }

func (v *listValue[I]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.list)
}

const (
	hb  = "healthbot"
	sip = "securityinsights"
)

func defaultEntries() []Entry {
	return []Entry{
		resource[healthbot.HealthBot](hb+"/bot", hb, healthbot.ResourceType),
		list[healthbot.BotResponseList, *healthbot.BotResponseList, *healthbot.HealthBot](hb+"/botList", hb, healthbot.ResourceType),
		resource[healthbot.UpdateParameters](hb+"/updateParameters", hb, ""),
		resource[healthbot.KeysResponse](hb+"/keys", hb, ""),
		resource[healthbot.ValidationResult](hb+"/validationResult", hb, ""),
		list[healthbot.AvailableOperations, *healthbot.AvailableOperations, *healthbot.OperationDetail](hb+"/operations", hb, ""),

		union(sip+"/alertRule", sip, si.ResourceTypeAlertRules, si.UnmarshalAlertRule),
		list[si.AlertRulesList, *si.AlertRulesList, si.AlertRule](sip+"/alertRuleList", sip, si.ResourceTypeAlertRules),
		union(sip+"/alertRuleTemplate", sip, si.ResourceTypeAlertRuleTemplates, si.UnmarshalAlertRuleTemplate),
		list[si.AlertRuleTemplatesList, *si.AlertRuleTemplatesList, si.AlertRuleTemplate](sip+"/alertRuleTemplateList", sip, si.ResourceTypeAlertRuleTemplates),
		resource[si.ActionRequest](sip+"/actionRequest", sip, ""),
		resource[si.ActionResponse](sip+"/action", sip, si.ResourceTypeActions),
		list[si.ActionsList, *si.ActionsList, *si.ActionResponse](sip+"/actionList", sip, si.ResourceTypeActions),
		resource[si.AutomationRule](sip+"/automationRule", sip, si.ResourceTypeAutomationRules),
		list[si.AutomationRulesList, *si.AutomationRulesList, *si.AutomationRule](sip+"/automationRuleList", sip, si.ResourceTypeAutomationRules),
		resource[si.Bookmark](sip+"/bookmark", sip, si.ResourceTypeBookmarks),
		list[si.BookmarkList, *si.BookmarkList, *si.Bookmark](sip+"/bookmarkList", sip, si.ResourceTypeBookmarks),
		union(sip+"/dataConnector", sip, si.ResourceTypeDataConnectors, si.UnmarshalDataConnector),
		list[si.DataConnectorList, *si.DataConnectorList, si.DataConnector](sip+"/dataConnectorList", sip, si.ResourceTypeDataConnectors),
		resource[si.Incident](sip+"/incident", sip, si.ResourceTypeIncidents),
		list[si.IncidentList, *si.IncidentList, *si.Incident](sip+"/incidentList", sip, si.ResourceTypeIncidents),
		resource[si.IncidentComment](sip+"/incidentComment", sip, si.ResourceTypeIncidentComments),
		list[si.IncidentCommentList, *si.IncidentCommentList, *si.IncidentComment](sip+"/incidentCommentList", sip, si.ResourceTypeIncidentComments),
		resource[si.Relation](sip+"/relation", sip, si.ResourceTypeIncidentRelations),
		list[si.RelationList, *si.RelationList, *si.Relation](sip+"/relationList", sip, si.ResourceTypeIncidentRelations),
		resource[si.SentinelOnboardingState](sip+"/onboardingState", sip, si.ResourceTypeOnboardingStates),
		list[si.SentinelOnboardingStatesList, *si.SentinelOnboardingStatesList, *si.SentinelOnboardingState](sip+"/onboardingStateList", sip, si.ResourceTypeOnboardingStates),
		union(sip+"/setting", sip, si.ResourceTypeSettings, si.UnmarshalSetting),
		list[si.SettingList, *si.SettingList, si.Setting](sip+"/settingList", sip, si.ResourceTypeSettings),
		resource[si.Watchlist](sip+"/watchlist", sip, si.ResourceTypeWatchlists),
		list[si.WatchlistList, *si.WatchlistList, *si.Watchlist](sip+"/watchlistList", sip, si.ResourceTypeWatchlists),
		resource[si.WatchlistItem](sip+"/watchlistItem", sip, si.ResourceTypeWatchlistItems),
		list[si.WatchlistItemList, *si.WatchlistItemList, *si.WatchlistItem](sip+"/watchlistItemList", sip, si.ResourceTypeWatchlistItems),
		list[si.OperationsList, *si.OperationsList, *arm.Operation](sip+"/operations", sip, ""),
	}
}
