package securityinsights

import (
	"encoding/json"
	"testing"

	"github.com/rzbill/armkit/pkg/arm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alertRulePayloads = map[AlertRuleKind]string{
	AlertRuleKindFusion: `{
		"kind": "Fusion", "id": "/subscriptions/s/resourceGroups/rg/providers/Microsoft.OperationalInsights/workspaces/ws/providers/Microsoft.SecurityInsights/alertRules/fusion",
		"name": "fusion", "type": "Microsoft.SecurityInsights/alertRules", "etag": "\"260097e0-0000-0d00-0000-5d6fa88f0000\"",
		"properties": {"enabled": true, "alertRuleTemplateName": "f71aba3d-28fb-450b-b192-4e76a83015c8", "displayName": "Advanced Multistage Attack Detection",
			"severity": "High", "tactics": ["Persistence", "LateralMovement"], "techniques": ["T1098"], "lastModifiedUtc": "2019-01-01T13:15:30Z"}
	}`,
	AlertRuleKindMicrosoftSecurityIncidentCreation: `{
		"kind": "MicrosoftSecurityIncidentCreation", "name": "msic", "etag": "\"e1\"",
		"properties": {"productFilter": "Microsoft Cloud App Security", "displayName": "testing displayname", "enabled": true,
			"severitiesFilter": ["High", "Medium"], "displayNamesFilter": ["alert"], "displayNamesExcludeFilter": []}
	}`,
	AlertRuleKindScheduled: `{
		"kind": "Scheduled", "name": "sched",
		"properties": {"displayName": "My scheduled rule", "enabled": true, "query": "ProtectionStatus | where Status == 'Off'",
			"queryFrequency": "PT1H", "queryPeriod": "P2DT1H30M", "severity": "High", "suppressionDuration": "PT1H", "suppressionEnabled": false,
			"triggerOperator": "GreaterThan", "triggerThreshold": 0, "tactics": ["Persistence"], "templateVersion": "1.0.2",
			"eventGroupingSettings": {"aggregationKind": "AlertPerResult"},
			"customDetails": {"OperatingSystemName": "OSName"},
			"entityMappings": [{"entityType": "Host", "fieldMappings": [{"identifier": "FullName", "columnName": "Computer"}]}],
			"alertDetailsOverride": {"alertDisplayNameFormat": "Alert from {{Computer}}"},
			"incidentConfiguration": {"createIncident": true, "groupingConfiguration": {"enabled": true, "reopenClosedIncident": false,
				"lookbackDuration": "PT5H", "matchingMethod": "Selected", "groupByEntities": ["Host"], "groupByAlertDetails": ["DisplayName"]}}}
	}`,
	AlertRuleKindNRT: `{
		"kind": "NRT", "name": "nrt",
		"properties": {"displayName": "Rule2", "enabled": true, "query": "ProtectionStatus", "severity": "High",
			"suppressionDuration": "PT1H", "suppressionEnabled": false, "techniques": ["T1037", "T1021"]}
	}`,
	AlertRuleKindMLBehaviorAnalytics: `{
		"kind": "MLBehaviorAnalytics", "name": "ml",
		"properties": {"alertRuleTemplateName": "fa118b98-de46-4e94-87f9-8e6d5060b60b", "enabled": true, "severity": "Low"}
	}`,
	AlertRuleKindThreatIntelligence: `{
		"kind": "ThreatIntelligence", "name": "ti",
		"properties": {"alertRuleTemplateName": "0000-ti", "enabled": false}
	}`,
}

func TestAlertRule_RoundTripEveryKind(t *testing.T) {
	require.Len(t, alertRulePayloads, len(PossibleAlertRuleKindValues()))

	for kind, payload := range alertRulePayloads {
		t.Run(string(kind), func(t *testing.T) {
			rule, err := UnmarshalAlertRule([]byte(payload))
			require.NoError(t, err)
			assert.Equal(t, kind, rule.Kind())

			data, err := json.Marshal(rule)
			require.NoError(t, err)
			assert.JSONEq(t, payload, string(data))

			var head struct {
				Kind string `json:"kind"`
			}
			require.NoError(t, json.Unmarshal(data, &head))
			assert.Equal(t, string(kind), head.Kind)

			again, err := UnmarshalAlertRule(data)
			require.NoError(t, err)
			assert.Equal(t, rule, again)
		})
	}
}

func TestAlertRule_NRTTagIsUppercase(t *testing.T) {
	data, err := json.Marshal(&NrtAlertRule{})
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"NRT"}`, string(data))

	_, err = UnmarshalAlertRule([]byte(`{"kind":"Nrt"}`))
	assert.Equal(t, arm.UnknownDiscriminator, arm.DecodeErrorKindOf(err))
}

func TestAlertRule_ScheduledDetails(t *testing.T) {
	rule, err := UnmarshalAlertRule([]byte(alertRulePayloads[AlertRuleKindScheduled]))
	require.NoError(t, err)

	sched, ok := rule.(*ScheduledAlertRule)
	require.True(t, ok)
	p := sched.Properties
	assert.Equal(t, "PT1H", *p.QueryFrequency)
	assert.Equal(t, TriggerOperatorGreaterThan, *p.TriggerOperator)
	assert.Equal(t, int32(0), *p.TriggerThreshold)
	assert.Equal(t, MatchingMethodSelected, *p.IncidentConfiguration.GroupingConfiguration.MatchingMethod)
	assert.Equal(t, EntityMappingTypeHost, *p.EntityMappings[0].EntityType)
	assert.Nil(t, p.Description)
	assert.Nil(t, sched.Etag)
	assert.Equal(t, "sched", *rule.GetResourceWithEtag().Name)
}

func TestAlertRule_UnknownKindIsAnErrorButUnknownEnumIsNot(t *testing.T) {
	_, err := UnmarshalAlertRule([]byte(`{"kind":"Anomaly","properties":{}}`))
	var de *arm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, arm.UnknownDiscriminator, de.Kind)
	assert.Equal(t, "Anomaly", de.Value)

	var k AlertRuleKind
	require.NoError(t, json.Unmarshal([]byte(`"Anomaly"`), &k))
	assert.False(t, k.IsKnown())

	rule, err := UnmarshalAlertRule([]byte(`{"kind":"NRT","properties":{"displayName":"x","enabled":true,"suppressionDuration":"PT1H","suppressionEnabled":true,"severity":"Critical","tactics":["Hovering"]}}`))
	require.NoError(t, err)
	nrt := rule.(*NrtAlertRule)
	assert.Equal(t, AlertSeverity("Critical"), *nrt.Properties.Severity)
	assert.Equal(t, []AttackTactic{"Hovering"}, nrt.Properties.Tactics)
}

func TestAlertRule_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		path    string
	}{
		{name: "fusion enabled", payload: `{"kind":"Fusion","properties":{"alertRuleTemplateName":"t"}}`, path: "properties.enabled"},
		{name: "msic product", payload: `{"kind":"MicrosoftSecurityIncidentCreation","properties":{"displayName":"d","enabled":true}}`, path: "properties.productFilter"},
		{name: "scheduled suppression", payload: `{"kind":"Scheduled","properties":{"displayName":"d","enabled":true,"suppressionEnabled":false}}`, path: "properties.suppressionDuration"},
		{name: "grouping", payload: `{"kind":"NRT","properties":{"displayName":"d","enabled":true,"suppressionDuration":"PT1H","suppressionEnabled":false,"incidentConfiguration":{"createIncident":true,"groupingConfiguration":{"enabled":true}}}}`, path: "properties.incidentConfiguration.groupingConfiguration.reopenClosedIncident"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalAlertRule([]byte(tt.payload))
			var de *arm.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, arm.MissingField, de.Kind)
			assert.Equal(t, tt.path, de.Path)
		})
	}
}

func TestAlertRulesList(t *testing.T) {
	payload := `{"value":[` + alertRulePayloads[AlertRuleKindFusion] + `,` + alertRulePayloads[AlertRuleKindNRT] + `],"nextLink":""}`

	var list AlertRulesList
	require.NoError(t, arm.Unmarshal([]byte(payload), &list))
	require.Equal(t, 2, list.Len())
	assert.Equal(t, AlertRuleKindFusion, list.Value[0].Kind())
	assert.Equal(t, AlertRuleKindNRT, list.Value[1].Kind())
	assert.False(t, list.HasMore())

	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":[`+alertRulePayloads[AlertRuleKindFusion]+`,`+alertRulePayloads[AlertRuleKindNRT]+`],"nextLink":""}`, string(data))

	err = arm.Unmarshal([]byte(`{"nextLink":"x"}`), &AlertRulesList{})
	assert.Equal(t, arm.MissingField, arm.DecodeErrorKindOf(err))

	err = arm.Unmarshal([]byte(`{"value":[{"kind":"Fusion"},{"kind":"Bogus"}]}`), &AlertRulesList{})
	var de *arm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "value[1].kind", de.Path)
}

func TestAlertRuleTemplate_RoundTripEveryKind(t *testing.T) {
	payloads := map[AlertRuleKind]string{
		AlertRuleKindFusion: `{"kind":"Fusion","name":"f","properties":{"displayName":"Advanced Multistage Attack Detection","status":"Available",
			"alertRulesCreatedByTemplateCount":1,"severity":"High","tactics":["Collection"],
			"requiredDataConnectors":[{"connectorId":"AzureActiveDirectory","dataTypes":["SigninLogs"]}],"createdDateUTC":"2019-07-25T00:00:00Z"}}`,
		AlertRuleKindMicrosoftSecurityIncidentCreation: `{"kind":"MicrosoftSecurityIncidentCreation","name":"m","properties":{"productFilter":"Azure Security Center for IoT","displayNamesFilter":[]}}`,
		AlertRuleKindScheduled: `{"kind":"Scheduled","name":"s","properties":{"query":"T | take 1","queryFrequency":"P1D","queryPeriod":"P1D","triggerOperator":"GreaterThan","triggerThreshold":0,
			"version":"1.0.0","status":"Available","lastUpdatedDateUTC":"2021-02-27T00:00:00Z","eventGroupingSettings":{"aggregationKind":"SingleAlert"}}}`,
		AlertRuleKindNRT:                 `{"kind":"NRT","name":"n","properties":{"query":"T","version":"1.0.1","customDetails":{"k":"v"}}}`,
		AlertRuleKindMLBehaviorAnalytics: `{"kind":"MLBehaviorAnalytics","name":"ml","properties":{"severity":"Medium","status":"NotAvailable"}}`,
		AlertRuleKindThreatIntelligence:  `{"kind":"ThreatIntelligence","name":"ti","properties":{"techniques":[]}}`,
	}

	for kind, payload := range payloads {
		t.Run(string(kind), func(t *testing.T) {
			tmpl, err := UnmarshalAlertRuleTemplate([]byte(payload))
			require.NoError(t, err)
			assert.Equal(t, kind, tmpl.Kind())
			assert.NotNil(t, tmpl.GetResource().Name)

			data, err := json.Marshal(tmpl)
			require.NoError(t, err)
			assert.JSONEq(t, payload, string(data))
		})
	}

	var list AlertRuleTemplatesList
	require.NoError(t, arm.Unmarshal([]byte(`{"value":[`+payloads[AlertRuleKindNRT]+`],"nextLink":"https://next"}`), &list))
	assert.Equal(t, "https://next", *list.Continuation())
}

func TestSetting_RoundTripEveryKind(t *testing.T) {
	payloads := map[SettingKind]string{
		SettingKindAnomalies:       `{"kind":"Anomalies","name":"Anomalies","etag":"\"e\"","properties":{"isEnabled":true}}`,
		SettingKindEyesOn:          `{"kind":"EyesOn","name":"EyesOn","properties":{"isEnabled":false}}`,
		SettingKindEntityAnalytics: `{"kind":"EntityAnalytics","name":"EntityAnalytics","properties":{"entityProviders":["ActiveDirectory","AzureActiveDirectory"]}}`,
		SettingKindUeba:            `{"kind":"Ueba","name":"Ueba","properties":{"dataSources":["AuditLogs","SigninLogs","NewSource"]}}`,
	}
	require.Len(t, payloads, len(PossibleSettingKindValues()))

	for kind, payload := range payloads {
		t.Run(string(kind), func(t *testing.T) {
			s, err := UnmarshalSetting([]byte(payload))
			require.NoError(t, err)
			assert.Equal(t, kind, s.Kind())

			data, err := json.Marshal(s)
			require.NoError(t, err)
			assert.JSONEq(t, payload, string(data))
		})
	}
}

func TestSettingList_NeverContinues(t *testing.T) {
	var list SettingList
	payload := `{"value":[{"kind":"EyesOn","properties":{"isEnabled":true}},{"kind":"Ueba","properties":{"dataSources":[]}}]}`
	require.NoError(t, arm.Unmarshal([]byte(payload), &list))
	require.Equal(t, 2, list.Len())
	assert.Nil(t, list.Continuation())
	ueba := list.Value[1].(*Ueba)
	assert.NotNil(t, ueba.Properties.DataSources)
	assert.Empty(t, ueba.Properties.DataSources)

	err := arm.Unmarshal([]byte(`{}`), &SettingList{})
	assert.Equal(t, arm.MissingField, arm.DecodeErrorKindOf(err))
}

func TestUnions(t *testing.T) {
	byName := map[string]arm.UnionDescriptor{}
	for _, u := range Unions() {
		byName[u.Name] = u
	}
	require.Len(t, byName, 6)

	assert.Equal(t, "kind", byName["AlertRule"].Discriminator)
	assert.Len(t, byName["AlertRule"].Tags, 6)
	assert.Equal(t, "actionType", byName["AutomationRuleAction"].Discriminator)
	assert.Equal(t, []string{"ModifyProperties", "RunPlaybook"}, byName["AutomationRuleAction"].Tags)
	assert.Equal(t, "conditionType", byName["AutomationRuleCondition"].Discriminator)
	assert.Len(t, byName["DataConnector"].Tags, 8)
	assert.Len(t, byName["Setting"].Tags, 4)

	for _, tag := range byName["AlertRule"].Tags {
		assert.True(t, AlertRuleKind(tag).IsKnown(), tag)
	}
	for _, tag := range byName["DataConnector"].Tags {
		assert.True(t, DataConnectorKind(tag).IsKnown(), tag)
	}
}
