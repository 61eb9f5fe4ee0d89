package securityinsights

import (
	"time"

	"github.com/rzbill/armkit/pkg/arm"
)

// AlertRuleTemplate is a built-in template alert rules are created from.
// The concrete type is selected by the "kind" field and dispatch is closed,
// as for AlertRule.
type AlertRuleTemplate interface {
	Kind() AlertRuleKind
	GetResource() *arm.Resource
}

var alertRuleTemplates = arm.NewUnion("AlertRuleTemplate", "kind", map[string]func() AlertRuleTemplate{
	string(AlertRuleKindFusion):                            func() AlertRuleTemplate { return &FusionAlertRuleTemplate{} },
	string(AlertRuleKindMicrosoftSecurityIncidentCreation): func() AlertRuleTemplate { return &MicrosoftSecurityIncidentCreationAlertRuleTemplate{} },
	string(AlertRuleKindScheduled):                         func() AlertRuleTemplate { return &ScheduledAlertRuleTemplate{} },
	string(AlertRuleKindNRT):                               func() AlertRuleTemplate { return &NrtAlertRuleTemplate{} },
	string(AlertRuleKindMLBehaviorAnalytics):               func() AlertRuleTemplate { return &MLBehaviorAnalyticsAlertRuleTemplate{} },
	string(AlertRuleKindThreatIntelligence):                func() AlertRuleTemplate { return &ThreatIntelligenceAlertRuleTemplate{} },
})

// UnmarshalAlertRuleTemplate decodes one template of any registered kind.
func UnmarshalAlertRuleTemplate(data []byte) (AlertRuleTemplate, error) {
	return alertRuleTemplates.Decode(data)
}

// AlertRuleTemplatesList is one page of alert rule templates.
type AlertRuleTemplatesList struct {
	arm.Page[AlertRuleTemplate]
}

func (l *AlertRuleTemplatesList) UnmarshalJSON(data []byte) error {
	page, err := arm.DecodeUnionPage(data, alertRuleTemplates)
	if err != nil {
		return err
	}
	l.Page = page
	return nil
}

func (l *AlertRuleTemplatesList) Validate() error {
	return arm.CheckRequired("AlertRuleTemplatesList", arm.ReqSlice("value", l.Value))
}

// AlertRuleTemplateDataSource is a connector and the data types a template
// needs from it.
type AlertRuleTemplateDataSource struct {
	ConnectorID *string  `json:"connectorId,omitempty"`
	DataTypes   []string `json:"dataTypes,omitzero"`
}

// AlertRuleTemplateProperties are the fields every template carries.
type AlertRuleTemplateProperties struct {
	AlertRulesCreatedByTemplateCount *int32                         `json:"alertRulesCreatedByTemplateCount,omitempty"`
	CreatedDateUTC                   *time.Time                     `json:"createdDateUTC,omitempty"`
	Description                      *string                        `json:"description,omitempty"`
	DisplayName                      *string                        `json:"displayName,omitempty"`
	LastUpdatedDateUTC               *time.Time                     `json:"lastUpdatedDateUTC,omitempty"`
	RequiredDataConnectors           []*AlertRuleTemplateDataSource `json:"requiredDataConnectors,omitzero"`
	Status                           *TemplateStatus                `json:"status,omitempty"`
}

// AlertRuleTemplateWithMitreProperties adds severity and MITRE data.
type AlertRuleTemplateWithMitreProperties struct {
	AlertRuleTemplateProperties

	Severity   *AlertSeverity `json:"severity,omitempty"`
	Tactics    []AttackTactic `json:"tactics,omitzero"`
	Techniques []string       `json:"techniques,omitzero"`
}

// QueryAlertRuleTemplateProperties are the fields of query-based templates.
type QueryAlertRuleTemplateProperties struct {
	AlertRuleTemplateWithMitreProperties

	AlertDetailsOverride *AlertDetailsOverride `json:"alertDetailsOverride,omitempty"`
	CustomDetails        map[string]string     `json:"customDetails,omitzero"`
	EntityMappings       []*EntityMapping      `json:"entityMappings,omitzero"`
	Query                *string               `json:"query,omitempty"`
	Version              *string               `json:"version,omitempty"`
}

// FusionAlertRuleTemplate is a Fusion rule template.
type FusionAlertRuleTemplate struct {
	arm.Resource
	Properties *AlertRuleTemplateWithMitreProperties `json:"properties,omitempty"`
}

func (t *FusionAlertRuleTemplate) Kind() AlertRuleKind { return AlertRuleKindFusion }

func (t *FusionAlertRuleTemplate) MarshalJSON() ([]byte, error) {
	type alias FusionAlertRuleTemplate
	return arm.MarshalTagged("kind", string(t.Kind()), (*alias)(t))
}

func (t *FusionAlertRuleTemplate) UnmarshalJSON(data []byte) error {
	type alias FusionAlertRuleTemplate
	return arm.UnmarshalTagged(data, "kind", string(t.Kind()), "FusionAlertRuleTemplate", (*alias)(t))
}

// MicrosoftSecurityIncidentCreationAlertRuleTemplate is a template for
// incident creation rules.
type MicrosoftSecurityIncidentCreationAlertRuleTemplate struct {
	arm.Resource
	Properties *MicrosoftSecurityIncidentCreationAlertRuleTemplateProperties `json:"properties,omitempty"`
}

// MicrosoftSecurityIncidentCreationAlertRuleTemplateProperties are the
// fields of an incident creation template.
type MicrosoftSecurityIncidentCreationAlertRuleTemplateProperties struct {
	AlertRuleTemplateProperties

	DisplayNamesExcludeFilter []string                      `json:"displayNamesExcludeFilter,omitzero"`
	DisplayNamesFilter        []string                      `json:"displayNamesFilter,omitzero"`
	ProductFilter             *MicrosoftSecurityProductName `json:"productFilter,omitempty"`
	SeveritiesFilter          []AlertSeverity               `json:"severitiesFilter,omitzero"`
}

func (t *MicrosoftSecurityIncidentCreationAlertRuleTemplate) Kind() AlertRuleKind {
	return AlertRuleKindMicrosoftSecurityIncidentCreation
}

func (t *MicrosoftSecurityIncidentCreationAlertRuleTemplate) MarshalJSON() ([]byte, error) {
	type alias MicrosoftSecurityIncidentCreationAlertRuleTemplate
	return arm.MarshalTagged("kind", string(t.Kind()), (*alias)(t))
}

func (t *MicrosoftSecurityIncidentCreationAlertRuleTemplate) UnmarshalJSON(data []byte) error {
	type alias MicrosoftSecurityIncidentCreationAlertRuleTemplate
	return arm.UnmarshalTagged(data, "kind", string(t.Kind()), "MicrosoftSecurityIncidentCreationAlertRuleTemplate", (*alias)(t))
}

// ScheduledAlertRuleTemplate is a scheduled rule template.
type ScheduledAlertRuleTemplate struct {
	arm.Resource
	Properties *ScheduledAlertRuleTemplateProperties `json:"properties,omitempty"`
}

// ScheduledAlertRuleTemplateProperties are the fields of a scheduled template.
type ScheduledAlertRuleTemplateProperties struct {
	QueryAlertRuleTemplateProperties

	EventGroupingSettings *EventGroupingSettings `json:"eventGroupingSettings,omitempty"`
	QueryFrequency        *string                `json:"queryFrequency,omitempty"`
	QueryPeriod           *string                `json:"queryPeriod,omitempty"`
	TriggerOperator       *TriggerOperator       `json:"triggerOperator,omitempty"`
	TriggerThreshold      *int32                 `json:"triggerThreshold,omitempty"`
}

func (t *ScheduledAlertRuleTemplate) Kind() AlertRuleKind { return AlertRuleKindScheduled }

func (t *ScheduledAlertRuleTemplate) MarshalJSON() ([]byte, error) {
	type alias ScheduledAlertRuleTemplate
	return arm.MarshalTagged("kind", string(t.Kind()), (*alias)(t))
}

func (t *ScheduledAlertRuleTemplate) UnmarshalJSON(data []byte) error {
	type alias ScheduledAlertRuleTemplate
	return arm.UnmarshalTagged(data, "kind", string(t.Kind()), "ScheduledAlertRuleTemplate", (*alias)(t))
}

// NrtAlertRuleTemplate is a near-real-time rule template.
type NrtAlertRuleTemplate struct {
	arm.Resource
	Properties *QueryAlertRuleTemplateProperties `json:"properties,omitempty"`
}

func (t *NrtAlertRuleTemplate) Kind() AlertRuleKind { return AlertRuleKindNRT }

func (t *NrtAlertRuleTemplate) MarshalJSON() ([]byte, error) {
	type alias NrtAlertRuleTemplate
	return arm.MarshalTagged("kind", string(t.Kind()), (*alias)(t))
}

func (t *NrtAlertRuleTemplate) UnmarshalJSON(data []byte) error {
	type alias NrtAlertRuleTemplate
	return arm.UnmarshalTagged(data, "kind", string(t.Kind()), "NrtAlertRuleTemplate", (*alias)(t))
}

// MLBehaviorAnalyticsAlertRuleTemplate is an ML behavior analytics template.
type MLBehaviorAnalyticsAlertRuleTemplate struct {
	arm.Resource
	Properties *AlertRuleTemplateWithMitreProperties `json:"properties,omitempty"`
}

func (t *MLBehaviorAnalyticsAlertRuleTemplate) Kind() AlertRuleKind {
	return AlertRuleKindMLBehaviorAnalytics
}

func (t *MLBehaviorAnalyticsAlertRuleTemplate) MarshalJSON() ([]byte, error) {
	type alias MLBehaviorAnalyticsAlertRuleTemplate
	return arm.MarshalTagged("kind", string(t.Kind()), (*alias)(t))
}

func (t *MLBehaviorAnalyticsAlertRuleTemplate) UnmarshalJSON(data []byte) error {
	type alias MLBehaviorAnalyticsAlertRuleTemplate
	return arm.UnmarshalTagged(data, "kind", string(t.Kind()), "MLBehaviorAnalyticsAlertRuleTemplate", (*alias)(t))
}

// ThreatIntelligenceAlertRuleTemplate is a threat intelligence template.
type ThreatIntelligenceAlertRuleTemplate struct {
	arm.Resource
	Properties *AlertRuleTemplateWithMitreProperties `json:"properties,omitempty"`
}

func (t *ThreatIntelligenceAlertRuleTemplate) Kind() AlertRuleKind {
	return AlertRuleKindThreatIntelligence
}

func (t *ThreatIntelligenceAlertRuleTemplate) MarshalJSON() ([]byte, error) {
	type alias ThreatIntelligenceAlertRuleTemplate
	return arm.MarshalTagged("kind", string(t.Kind()), (*alias)(t))
}

func (t *ThreatIntelligenceAlertRuleTemplate) UnmarshalJSON(data []byte) error {
	type alias ThreatIntelligenceAlertRuleTemplate
	return arm.UnmarshalTagged(data, "kind", string(t.Kind()), "ThreatIntelligenceAlertRuleTemplate", (*alias)(t))
}
