package securityinsights

import "github.com/rzbill/armkit/pkg/arm"

// ActionRequest attaches a Logic App playbook to an alert rule.
type ActionRequest struct {
	arm.ResourceWithEtag
	Properties *ActionRequestProperties `json:"properties,omitempty"`
}

func (a *ActionRequest) Validate() error {
	if a == nil {
		return nil
	}
	return arm.Nested("properties", a.Properties)
}

// ActionRequestProperties identifies the playbook and its trigger.
type ActionRequestProperties struct {
	LogicAppResourceID *string `json:"logicAppResourceId,omitempty"`

	// TriggerURI is the Logic App trigger callback. It is write-only.
	TriggerURI *string `json:"triggerUri,omitempty"`
}

func (p *ActionRequestProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("ActionRequestProperties",
		arm.Req("logicAppResourceId", p.LogicAppResourceID),
		arm.Req("triggerUri", p.TriggerURI),
	)
}

// ActionResponse is an action as the service returns it.
type ActionResponse struct {
	arm.ResourceWithEtag
	Properties *ActionResponseProperties `json:"properties,omitempty"`
}

func (a *ActionResponse) Validate() error {
	if a == nil {
		return nil
	}
	return arm.Nested("properties", a.Properties)
}

// ActionResponseProperties are the fields of a returned action.
type ActionResponseProperties struct {
	LogicAppResourceID *string `json:"logicAppResourceId,omitempty"`
	WorkflowID         *string `json:"workflowId,omitempty"`
}

func (p *ActionResponseProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("ActionResponseProperties", arm.Req("logicAppResourceId", p.LogicAppResourceID))
}

// ActionsList is one page of actions of an alert rule.
type ActionsList = arm.Page[*ActionResponse]
