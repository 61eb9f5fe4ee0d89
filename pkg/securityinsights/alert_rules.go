package securityinsights

import (
	"time"

	"github.com/rzbill/armkit/pkg/arm"
)

// AlertRule is an analytics rule. The concrete type is selected by the
// "kind" field.
//
// Kind dispatch is closed: an unknown kind fails to decode even though
// AlertRuleKind itself accepts unknown values.
type AlertRule interface {
	Kind() AlertRuleKind
	GetResourceWithEtag() *arm.ResourceWithEtag
}

var alertRules = arm.NewUnion("AlertRule", "kind", map[string]func() AlertRule{
	string(AlertRuleKindFusion):                            func() AlertRule { return &FusionAlertRule{} },
	string(AlertRuleKindMicrosoftSecurityIncidentCreation): func() AlertRule { return &MicrosoftSecurityIncidentCreationAlertRule{} },
	string(AlertRuleKindScheduled):                         func() AlertRule { return &ScheduledAlertRule{} },
	string(AlertRuleKindNRT):                               func() AlertRule { return &NrtAlertRule{} },
	string(AlertRuleKindMLBehaviorAnalytics):               func() AlertRule { return &MLBehaviorAnalyticsAlertRule{} },
	string(AlertRuleKindThreatIntelligence):                func() AlertRule { return &ThreatIntelligenceAlertRule{} },
})

// UnmarshalAlertRule decodes one alert rule of any registered kind.
func UnmarshalAlertRule(data []byte) (AlertRule, error) {
	return alertRules.Decode(data)
}

// AlertRulesList is one page of alert rules.
type AlertRulesList struct {
	arm.Page[AlertRule]
}

func (l *AlertRulesList) UnmarshalJSON(data []byte) error {
	page, err := arm.DecodeUnionPage(data, alertRules)
	if err != nil {
		return err
	}
	l.Page = page
	return nil
}

func (l *AlertRulesList) Validate() error {
	return arm.CheckRequired("AlertRulesList", arm.ReqSlice("value", l.Value))
}

// IncidentConfiguration controls incident creation from alerts.
type IncidentConfiguration struct {
	CreateIncident        *bool                  `json:"createIncident,omitempty"`
	GroupingConfiguration *GroupingConfiguration `json:"groupingConfiguration,omitempty"`
}

func (c *IncidentConfiguration) Validate() error {
	if c == nil {
		return nil
	}
	if err := arm.CheckRequired("IncidentConfiguration", arm.Req("createIncident", c.CreateIncident)); err != nil {
		return err
	}
	return arm.Nested("groupingConfiguration", c.GroupingConfiguration)
}

// GroupingConfiguration groups alerts into incidents.
type GroupingConfiguration struct {
	Enabled              *bool               `json:"enabled,omitempty"`
	GroupByAlertDetails  []AlertDetail       `json:"groupByAlertDetails,omitzero"`
	GroupByCustomDetails []string            `json:"groupByCustomDetails,omitzero"`
	GroupByEntities      []EntityMappingType `json:"groupByEntities,omitzero"`

	// LookbackDuration is an ISO 8601 duration, e.g. "PT5H".
	LookbackDuration     *string         `json:"lookbackDuration,omitempty"`
	MatchingMethod       *MatchingMethod `json:"matchingMethod,omitempty"`
	ReopenClosedIncident *bool           `json:"reopenClosedIncident,omitempty"`
}

func (g *GroupingConfiguration) Validate() error {
	if g == nil {
		return nil
	}
	return arm.CheckRequired("GroupingConfiguration",
		arm.Req("enabled", g.Enabled),
		arm.Req("reopenClosedIncident", g.ReopenClosedIncident),
		arm.Req("lookbackDuration", g.LookbackDuration),
		arm.Req("matchingMethod", g.MatchingMethod),
	)
}

// EventGroupingSettings controls how query results are turned into alerts.
type EventGroupingSettings struct {
	AggregationKind *EventGroupingAggregationKind `json:"aggregationKind,omitempty"`
}

// AlertDetailsOverride takes alert fields from query result columns.
type AlertDetailsOverride struct {
	AlertDescriptionFormat  *string `json:"alertDescriptionFormat,omitempty"`
	AlertDisplayNameFormat  *string `json:"alertDisplayNameFormat,omitempty"`
	AlertSeverityColumnName *string `json:"alertSeverityColumnName,omitempty"`
	AlertTacticsColumnName  *string `json:"alertTacticsColumnName,omitempty"`
}

// EntityMapping maps query columns to an entity.
type EntityMapping struct {
	EntityType    *EntityMappingType `json:"entityType,omitempty"`
	FieldMappings []*FieldMapping    `json:"fieldMappings,omitzero"`
}

// FieldMapping maps one column to one entity identifier.
type FieldMapping struct {
	ColumnName *string `json:"columnName,omitempty"`
	Identifier *string `json:"identifier,omitempty"`
}

// FusionAlertRule correlates low-fidelity signals into high-fidelity incidents.
type FusionAlertRule struct {
	arm.ResourceWithEtag
	Properties *FusionAlertRuleProperties `json:"properties,omitempty"`
}

// FusionAlertRuleProperties are the settings of a Fusion rule.
type FusionAlertRuleProperties struct {
	AlertRuleTemplateName *string        `json:"alertRuleTemplateName,omitempty"`
	Description           *string        `json:"description,omitempty"`
	DisplayName           *string        `json:"displayName,omitempty"`
	Enabled               *bool          `json:"enabled,omitempty"`
	LastModifiedUTC       *time.Time     `json:"lastModifiedUtc,omitempty"`
	Severity              *AlertSeverity `json:"severity,omitempty"`
	Tactics               []AttackTactic `json:"tactics,omitzero"`
	Techniques            []string       `json:"techniques,omitzero"`
}

func (p *FusionAlertRuleProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("FusionAlertRuleProperties",
		arm.Req("alertRuleTemplateName", p.AlertRuleTemplateName),
		arm.Req("enabled", p.Enabled),
	)
}

func (r *FusionAlertRule) Kind() AlertRuleKind { return AlertRuleKindFusion }

func (r *FusionAlertRule) MarshalJSON() ([]byte, error) {
	type alias FusionAlertRule
	return arm.MarshalTagged("kind", string(r.Kind()), (*alias)(r))
}

func (r *FusionAlertRule) UnmarshalJSON(data []byte) error {
	type alias FusionAlertRule
	return arm.UnmarshalTagged(data, "kind", string(r.Kind()), "FusionAlertRule", (*alias)(r))
}

func (r *FusionAlertRule) Validate() error {
	if r == nil {
		return nil
	}
	return arm.Nested("properties", r.Properties)
}

// MicrosoftSecurityIncidentCreationAlertRule raises incidents from alerts of
// other Microsoft security products.
type MicrosoftSecurityIncidentCreationAlertRule struct {
	arm.ResourceWithEtag
	Properties *MicrosoftSecurityIncidentCreationAlertRuleProperties `json:"properties,omitempty"`
}

// MicrosoftSecurityIncidentCreationAlertRuleProperties are the settings of a
// Microsoft security incident creation rule.
type MicrosoftSecurityIncidentCreationAlertRuleProperties struct {
	AlertRuleTemplateName     *string                       `json:"alertRuleTemplateName,omitempty"`
	Description               *string                       `json:"description,omitempty"`
	DisplayName               *string                       `json:"displayName,omitempty"`
	DisplayNamesExcludeFilter []string                      `json:"displayNamesExcludeFilter,omitzero"`
	DisplayNamesFilter        []string                      `json:"displayNamesFilter,omitzero"`
	Enabled                   *bool                         `json:"enabled,omitempty"`
	LastModifiedUTC           *time.Time                    `json:"lastModifiedUtc,omitempty"`
	ProductFilter             *MicrosoftSecurityProductName `json:"productFilter,omitempty"`
	SeveritiesFilter          []AlertSeverity               `json:"severitiesFilter,omitzero"`
}

func (p *MicrosoftSecurityIncidentCreationAlertRuleProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("MicrosoftSecurityIncidentCreationAlertRuleProperties",
		arm.Req("displayName", p.DisplayName),
		arm.Req("enabled", p.Enabled),
		arm.Req("productFilter", p.ProductFilter),
	)
}

func (r *MicrosoftSecurityIncidentCreationAlertRule) Kind() AlertRuleKind {
	return AlertRuleKindMicrosoftSecurityIncidentCreation
}

func (r *MicrosoftSecurityIncidentCreationAlertRule) MarshalJSON() ([]byte, error) {
	type alias MicrosoftSecurityIncidentCreationAlertRule
	return arm.MarshalTagged("kind", string(r.Kind()), (*alias)(r))
}

func (r *MicrosoftSecurityIncidentCreationAlertRule) UnmarshalJSON(data []byte) error {
	type alias MicrosoftSecurityIncidentCreationAlertRule
	return arm.UnmarshalTagged(data, "kind", string(r.Kind()), "MicrosoftSecurityIncidentCreationAlertRule", (*alias)(r))
}

func (r *MicrosoftSecurityIncidentCreationAlertRule) Validate() error {
	if r == nil {
		return nil
	}
	return arm.Nested("properties", r.Properties)
}

// ScheduledAlertRule runs a query on a schedule.
type ScheduledAlertRule struct {
	arm.ResourceWithEtag
	Properties *ScheduledAlertRuleProperties `json:"properties,omitempty"`
}

// QueryAlertRuleProperties are the settings shared by query-based rules.
type QueryAlertRuleProperties struct {
	AlertDetailsOverride  *AlertDetailsOverride  `json:"alertDetailsOverride,omitempty"`
	AlertRuleTemplateName *string                `json:"alertRuleTemplateName,omitempty"`
	CustomDetails         map[string]string      `json:"customDetails,omitzero"`
	Description           *string                `json:"description,omitempty"`
	DisplayName           *string                `json:"displayName,omitempty"`
	Enabled               *bool                  `json:"enabled,omitempty"`
	EntityMappings        []*EntityMapping       `json:"entityMappings,omitzero"`
	IncidentConfiguration *IncidentConfiguration `json:"incidentConfiguration,omitempty"`
	LastModifiedUTC       *time.Time             `json:"lastModifiedUtc,omitempty"`
	Query                 *string                `json:"query,omitempty"`
	Severity              *AlertSeverity         `json:"severity,omitempty"`

	// SuppressionDuration is an ISO 8601 duration.
	SuppressionDuration *string        `json:"suppressionDuration,omitempty"`
	SuppressionEnabled  *bool          `json:"suppressionEnabled,omitempty"`
	Tactics             []AttackTactic `json:"tactics,omitzero"`
	Techniques          []string       `json:"techniques,omitzero"`
	TemplateVersion     *string        `json:"templateVersion,omitempty"`
}

func (p *QueryAlertRuleProperties) validate(typeName string) error {
	err := arm.CheckRequired(typeName,
		arm.Req("displayName", p.DisplayName),
		arm.Req("enabled", p.Enabled),
		arm.Req("suppressionDuration", p.SuppressionDuration),
		arm.Req("suppressionEnabled", p.SuppressionEnabled),
	)
	if err != nil {
		return err
	}
	return arm.Nested("incidentConfiguration", p.IncidentConfiguration)
}

// ScheduledAlertRuleProperties are the settings of a scheduled rule.
type ScheduledAlertRuleProperties struct {
	QueryAlertRuleProperties

	EventGroupingSettings *EventGroupingSettings `json:"eventGroupingSettings,omitempty"`

	// QueryFrequency and QueryPeriod are ISO 8601 durations.
	QueryFrequency   *string          `json:"queryFrequency,omitempty"`
	QueryPeriod      *string          `json:"queryPeriod,omitempty"`
	TriggerOperator  *TriggerOperator `json:"triggerOperator,omitempty"`
	TriggerThreshold *int32           `json:"triggerThreshold,omitempty"`
}

func (p *ScheduledAlertRuleProperties) Validate() error {
	if p == nil {
		return nil
	}
	return p.validate("ScheduledAlertRuleProperties")
}

func (r *ScheduledAlertRule) Kind() AlertRuleKind { return AlertRuleKindScheduled }

func (r *ScheduledAlertRule) MarshalJSON() ([]byte, error) {
	type alias ScheduledAlertRule
	return arm.MarshalTagged("kind", string(r.Kind()), (*alias)(r))
}

func (r *ScheduledAlertRule) UnmarshalJSON(data []byte) error {
	type alias ScheduledAlertRule
	return arm.UnmarshalTagged(data, "kind", string(r.Kind()), "ScheduledAlertRule", (*alias)(r))
}

func (r *ScheduledAlertRule) Validate() error {
	if r == nil {
		return nil
	}
	return arm.Nested("properties", r.Properties)
}

// NrtAlertRule is a near-real-time rule. Its wire kind is "NRT".
type NrtAlertRule struct {
	arm.ResourceWithEtag
	Properties *NrtAlertRuleProperties `json:"properties,omitempty"`
}

// NrtAlertRuleProperties are the settings of a near-real-time rule.
type NrtAlertRuleProperties struct {
	QueryAlertRuleProperties
}

func (p *NrtAlertRuleProperties) Validate() error {
	if p == nil {
		return nil
	}
	return p.validate("NrtAlertRuleProperties")
}

func (r *NrtAlertRule) Kind() AlertRuleKind { return AlertRuleKindNRT }

func (r *NrtAlertRule) MarshalJSON() ([]byte, error) {
	type alias NrtAlertRule
	return arm.MarshalTagged("kind", string(r.Kind()), (*alias)(r))
}

func (r *NrtAlertRule) UnmarshalJSON(data []byte) error {
	type alias NrtAlertRule
	return arm.UnmarshalTagged(data, "kind", string(r.Kind()), "NrtAlertRule", (*alias)(r))
}

func (r *NrtAlertRule) Validate() error {
	if r == nil {
		return nil
	}
	return arm.Nested("properties", r.Properties)
}

// MLBehaviorAnalyticsAlertRule raises alerts from machine-learning anomaly
// detection.
type MLBehaviorAnalyticsAlertRule struct {
	arm.ResourceWithEtag
	Properties *TemplateBasedAlertRuleProperties `json:"properties,omitempty"`
}

// TemplateBasedAlertRuleProperties are the settings of rules that are always
// created from a template: ML behavior analytics and threat intelligence.
type TemplateBasedAlertRuleProperties struct {
	AlertRuleTemplateName *string        `json:"alertRuleTemplateName,omitempty"`
	Description           *string        `json:"description,omitempty"`
	DisplayName           *string        `json:"displayName,omitempty"`
	Enabled               *bool          `json:"enabled,omitempty"`
	LastModifiedUTC       *time.Time     `json:"lastModifiedUtc,omitempty"`
	Severity              *AlertSeverity `json:"severity,omitempty"`
	Tactics               []AttackTactic `json:"tactics,omitzero"`
	Techniques            []string       `json:"techniques,omitzero"`
}

func (p *TemplateBasedAlertRuleProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("TemplateBasedAlertRuleProperties",
		arm.Req("alertRuleTemplateName", p.AlertRuleTemplateName),
		arm.Req("enabled", p.Enabled),
	)
}

func (r *MLBehaviorAnalyticsAlertRule) Kind() AlertRuleKind { return AlertRuleKindMLBehaviorAnalytics }

func (r *MLBehaviorAnalyticsAlertRule) MarshalJSON() ([]byte, error) {
	type alias MLBehaviorAnalyticsAlertRule
	return arm.MarshalTagged("kind", string(r.Kind()), (*alias)(r))
}

func (r *MLBehaviorAnalyticsAlertRule) UnmarshalJSON(data []byte) error {
	type alias MLBehaviorAnalyticsAlertRule
	return arm.UnmarshalTagged(data, "kind", string(r.Kind()), "MLBehaviorAnalyticsAlertRule", (*alias)(r))
}

func (r *MLBehaviorAnalyticsAlertRule) Validate() error {
	if r == nil {
		return nil
	}
	return arm.Nested("properties", r.Properties)
}

// ThreatIntelligenceAlertRule matches logs against threat intelligence
// indicators.
type ThreatIntelligenceAlertRule struct {
	arm.ResourceWithEtag
	Properties *TemplateBasedAlertRuleProperties `json:"properties,omitempty"`
}

func (r *ThreatIntelligenceAlertRule) Kind() AlertRuleKind { return AlertRuleKindThreatIntelligence }

func (r *ThreatIntelligenceAlertRule) MarshalJSON() ([]byte, error) {
	type alias ThreatIntelligenceAlertRule
	return arm.MarshalTagged("kind", string(r.Kind()), (*alias)(r))
}

func (r *ThreatIntelligenceAlertRule) UnmarshalJSON(data []byte) error {
	type alias ThreatIntelligenceAlertRule
	return arm.UnmarshalTagged(data, "kind", string(r.Kind()), "ThreatIntelligenceAlertRule", (*alias)(r))
}

func (r *ThreatIntelligenceAlertRule) Validate() error {
	if r == nil {
		return nil
	}
	return arm.Nested("properties", r.Properties)
}
