package securityinsights

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rzbill/armkit/pkg/arm"
)

// AutomationRule runs actions when incidents or alerts are created or
// updated.
type AutomationRule struct {
	arm.ResourceWithEtag
	Properties *AutomationRuleProperties `json:"properties,omitempty"`
}

// NewAutomationRuleName returns a fresh rule name. Automation rule names are
// GUIDs chosen by the client.
func NewAutomationRuleName() string {
	return uuid.NewString()
}

func (r *AutomationRule) Validate() error {
	if r == nil {
		return nil
	}
	if err := arm.CheckRequired("AutomationRule", arm.Req("properties", r.Properties)); err != nil {
		return err
	}
	return arm.Nested("properties", r.Properties)
}

// AutomationRuleProperties are the settings of an automation rule.
type AutomationRuleProperties struct {
	Actions             []AutomationRuleAction         `json:"actions,omitzero"`
	CreatedBy           *ClientInfo                    `json:"createdBy,omitempty"`
	CreatedTimeUTC      *time.Time                     `json:"createdTimeUtc,omitempty"`
	DisplayName         *string                        `json:"displayName,omitempty"`
	LastModifiedBy      *ClientInfo                    `json:"lastModifiedBy,omitempty"`
	LastModifiedTimeUTC *time.Time                     `json:"lastModifiedTimeUtc,omitempty"`
	Order               *int32                         `json:"order,omitempty"`
	TriggeringLogic     *AutomationRuleTriggeringLogic `json:"triggeringLogic,omitempty"`
}

func (p *AutomationRuleProperties) UnmarshalJSON(data []byte) error {
	type alias AutomationRuleProperties
	aux := struct {
		*alias
		Actions []json.RawMessage `json:"actions"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	actions, err := automationRuleActions.DecodeList(aux.Actions)
	if err != nil {
		return arm.WrapDecodeError(err, "actions")
	}
	p.Actions = actions
	return nil
}

func (p *AutomationRuleProperties) Validate() error {
	if p == nil {
		return nil
	}
	err := arm.CheckRequired("AutomationRuleProperties",
		arm.Req("displayName", p.DisplayName),
		arm.Req("order", p.Order),
		arm.Req("triggeringLogic", p.TriggeringLogic),
		arm.ReqSlice("actions", p.Actions),
	)
	if err != nil {
		return err
	}
	return arm.Nested("triggeringLogic", p.TriggeringLogic)
}

// AutomationRuleTriggeringLogic decides when a rule fires.
type AutomationRuleTriggeringLogic struct {
	Conditions        []AutomationRuleCondition `json:"conditions,omitzero"`
	ExpirationTimeUTC *time.Time                `json:"expirationTimeUtc,omitempty"`
	IsEnabled         *bool                     `json:"isEnabled,omitempty"`
	TriggersOn        *TriggersOn               `json:"triggersOn,omitempty"`
	TriggersWhen      *TriggersWhen             `json:"triggersWhen,omitempty"`
}

func (l *AutomationRuleTriggeringLogic) UnmarshalJSON(data []byte) error {
	type alias AutomationRuleTriggeringLogic
	aux := struct {
		*alias
		Conditions []json.RawMessage `json:"conditions"`
	}{alias: (*alias)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	conditions, err := automationRuleConditions.DecodeList(aux.Conditions)
	if err != nil {
		return arm.WrapDecodeError(err, "conditions")
	}
	l.Conditions = conditions
	return nil
}

func (l *AutomationRuleTriggeringLogic) Validate() error {
	if l == nil {
		return nil
	}
	return arm.CheckRequired("AutomationRuleTriggeringLogic",
		arm.Req("isEnabled", l.IsEnabled),
		arm.Req("triggersOn", l.TriggersOn),
		arm.Req("triggersWhen", l.TriggersWhen),
	)
}

// AutomationRulesList is one page of automation rules.
type AutomationRulesList = arm.Page[*AutomationRule]

// AutomationRuleAction is one step of an automation rule. The concrete type
// is selected by the "actionType" field and dispatch is closed.
type AutomationRuleAction interface {
	ActionType() ActionType
	GetOrder() *int32
}

var automationRuleActions = arm.NewUnion("AutomationRuleAction", "actionType", map[string]func() AutomationRuleAction{
	string(ActionTypeModifyProperties): func() AutomationRuleAction { return &AutomationRuleModifyPropertiesAction{} },
	string(ActionTypeRunPlaybook):      func() AutomationRuleAction { return &AutomationRuleRunPlaybookAction{} },
})

// UnmarshalAutomationRuleAction decodes one action of any registered type.
func UnmarshalAutomationRuleAction(data []byte) (AutomationRuleAction, error) {
	return automationRuleActions.Decode(data)
}

// AutomationRuleModifyPropertiesAction changes incident properties.
type AutomationRuleModifyPropertiesAction struct {
	ActionConfiguration *IncidentPropertiesAction `json:"actionConfiguration,omitempty"`
	Order               *int32                    `json:"order,omitempty"`
}

// IncidentPropertiesAction is the set of incident changes to apply.
type IncidentPropertiesAction struct {
	Classification        *IncidentClassification       `json:"classification,omitempty"`
	ClassificationComment *string                       `json:"classificationComment,omitempty"`
	ClassificationReason  *IncidentClassificationReason `json:"classificationReason,omitempty"`
	Labels                []*IncidentLabel              `json:"labels,omitzero"`
	Owner                 *IncidentOwnerInfo            `json:"owner,omitempty"`
	Severity              *IncidentSeverity             `json:"severity,omitempty"`
	Status                *IncidentStatus               `json:"status,omitempty"`
}

func (a *AutomationRuleModifyPropertiesAction) ActionType() ActionType {
	return ActionTypeModifyProperties
}

func (a *AutomationRuleModifyPropertiesAction) GetOrder() *int32 { return a.Order }

func (a *AutomationRuleModifyPropertiesAction) MarshalJSON() ([]byte, error) {
	type alias AutomationRuleModifyPropertiesAction
	return arm.MarshalTagged("actionType", string(a.ActionType()), (*alias)(a))
}

func (a *AutomationRuleModifyPropertiesAction) UnmarshalJSON(data []byte) error {
	type alias AutomationRuleModifyPropertiesAction
	return arm.UnmarshalTagged(data, "actionType", string(a.ActionType()), "AutomationRuleModifyPropertiesAction", (*alias)(a))
}

func (a *AutomationRuleModifyPropertiesAction) Validate() error {
	if a == nil {
		return nil
	}
	if err := arm.CheckRequired("AutomationRuleModifyPropertiesAction", arm.Req("order", a.Order)); err != nil {
		return err
	}
	if a.ActionConfiguration == nil {
		return nil
	}
	return arm.NestedList("actionConfiguration.labels", a.ActionConfiguration.Labels)
}

// AutomationRuleRunPlaybookAction runs a Logic App playbook.
type AutomationRuleRunPlaybookAction struct {
	ActionConfiguration *PlaybookActionProperties `json:"actionConfiguration,omitempty"`
	Order               *int32                    `json:"order,omitempty"`
}

// PlaybookActionProperties identifies the playbook to run.
type PlaybookActionProperties struct {
	LogicAppResourceID *string `json:"logicAppResourceId,omitempty"`
	TenantID           *string `json:"tenantId,omitempty"`
}

func (a *AutomationRuleRunPlaybookAction) ActionType() ActionType { return ActionTypeRunPlaybook }

func (a *AutomationRuleRunPlaybookAction) GetOrder() *int32 { return a.Order }

func (a *AutomationRuleRunPlaybookAction) MarshalJSON() ([]byte, error) {
	type alias AutomationRuleRunPlaybookAction
	return arm.MarshalTagged("actionType", string(a.ActionType()), (*alias)(a))
}

func (a *AutomationRuleRunPlaybookAction) UnmarshalJSON(data []byte) error {
	type alias AutomationRuleRunPlaybookAction
	return arm.UnmarshalTagged(data, "actionType", string(a.ActionType()), "AutomationRuleRunPlaybookAction", (*alias)(a))
}

func (a *AutomationRuleRunPlaybookAction) Validate() error {
	if a == nil {
		return nil
	}
	return arm.CheckRequired("AutomationRuleRunPlaybookAction", arm.Req("order", a.Order))
}

// AutomationRuleCondition is one trigger condition. The concrete type is
// selected by the "conditionType" field and dispatch is closed.
type AutomationRuleCondition interface {
	ConditionType() ConditionType
}

var automationRuleConditions = arm.NewUnion("AutomationRuleCondition", "conditionType", map[string]func() AutomationRuleCondition{
	string(ConditionTypeProperty):             func() AutomationRuleCondition { return &PropertyConditionProperties{} },
	string(ConditionTypePropertyChanged):      func() AutomationRuleCondition { return &PropertyChangedConditionProperties{} },
	string(ConditionTypePropertyArrayChanged): func() AutomationRuleCondition { return &PropertyArrayChangedConditionProperties{} },
})

// UnmarshalAutomationRuleCondition decodes one condition of any registered
// type.
func UnmarshalAutomationRuleCondition(data []byte) (AutomationRuleCondition, error) {
	return automationRuleConditions.Decode(data)
}

// PropertyConditionProperties tests a property against a list of values.
type PropertyConditionProperties struct {
	ConditionProperties *AutomationRulePropertyValuesCondition `json:"conditionProperties,omitempty"`
}

// AutomationRulePropertyValuesCondition is a property, an operator and the
// values to compare with.
type AutomationRulePropertyValuesCondition struct {
	Operator       *AutomationRulePropertyConditionSupportedOperator `json:"operator,omitempty"`
	PropertyName   *AutomationRulePropertyConditionSupportedProperty `json:"propertyName,omitempty"`
	PropertyValues []string                                          `json:"propertyValues,omitzero"`
}

func (c *PropertyConditionProperties) ConditionType() ConditionType { return ConditionTypeProperty }

func (c *PropertyConditionProperties) MarshalJSON() ([]byte, error) {
	type alias PropertyConditionProperties
	return arm.MarshalTagged("conditionType", string(c.ConditionType()), (*alias)(c))
}

func (c *PropertyConditionProperties) UnmarshalJSON(data []byte) error {
	type alias PropertyConditionProperties
	return arm.UnmarshalTagged(data, "conditionType", string(c.ConditionType()), "PropertyConditionProperties", (*alias)(c))
}

// PropertyChangedConditionProperties tests the old or new value of a changed
// property.
type PropertyChangedConditionProperties struct {
	ConditionProperties *AutomationRulePropertyValuesChangedCondition `json:"conditionProperties,omitempty"`
}

// AutomationRulePropertyValuesChangedCondition is a changed property, the
// side of the change to test and the values to compare with.
type AutomationRulePropertyValuesChangedCondition struct {
	ChangeType     *AutomationRulePropertyChangedConditionSupportedChangedType `json:"changeType,omitempty"`
	Operator       *AutomationRulePropertyConditionSupportedOperator           `json:"operator,omitempty"`
	PropertyName   *AutomationRulePropertyChangedSupportedPropertyType         `json:"propertyName,omitempty"`
	PropertyValues []string                                                    `json:"propertyValues,omitzero"`
}

func (c *PropertyChangedConditionProperties) ConditionType() ConditionType {
	return ConditionTypePropertyChanged
}

func (c *PropertyChangedConditionProperties) MarshalJSON() ([]byte, error) {
	type alias PropertyChangedConditionProperties
	return arm.MarshalTagged("conditionType", string(c.ConditionType()), (*alias)(c))
}

func (c *PropertyChangedConditionProperties) UnmarshalJSON(data []byte) error {
	type alias PropertyChangedConditionProperties
	return arm.UnmarshalTagged(data, "conditionType", string(c.ConditionType()), "PropertyChangedConditionProperties", (*alias)(c))
}

// PropertyArrayChangedConditionProperties fires when an incident collection
// changes.
type PropertyArrayChangedConditionProperties struct {
	ConditionProperties *AutomationRulePropertyArrayChangedValuesCondition `json:"conditionProperties,omitempty"`
}

// AutomationRulePropertyArrayChangedValuesCondition is a collection and the
// kind of change to it.
type AutomationRulePropertyArrayChangedValuesCondition struct {
	ArrayType  *AutomationRulePropertyArrayChangedSupportedArrayType  `json:"arrayType,omitempty"`
	ChangeType *AutomationRulePropertyArrayChangedSupportedChangeType `json:"changeType,omitempty"`
}

func (c *PropertyArrayChangedConditionProperties) ConditionType() ConditionType {
	return ConditionTypePropertyArrayChanged
}

func (c *PropertyArrayChangedConditionProperties) MarshalJSON() ([]byte, error) {
	type alias PropertyArrayChangedConditionProperties
	return arm.MarshalTagged("conditionType", string(c.ConditionType()), (*alias)(c))
}

func (c *PropertyArrayChangedConditionProperties) UnmarshalJSON(data []byte) error {
	type alias PropertyArrayChangedConditionProperties
	return arm.UnmarshalTagged(data, "conditionType", string(c.ConditionType()), "PropertyArrayChangedConditionProperties", (*alias)(c))
}
