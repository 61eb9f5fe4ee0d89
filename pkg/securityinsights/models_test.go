package securityinsights

import (
	"encoding/json"
	"testing"

	"github.com/rzbill/armkit/pkg/arm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incidentJSON = `{
  "id": "/subscriptions/s/resourceGroups/rg/providers/Microsoft.OperationalInsights/workspaces/ws/providers/Microsoft.SecurityInsights/incidents/73e01a99",
  "name": "73e01a99",
  "type": "Microsoft.SecurityInsights/incidents",
  "etag": "\"0300bf09-0000-0000-0000-5c37296e0000\"",
  "properties": {
    "title": "My incident",
    "description": "This is a demo incident",
    "severity": "High",
    "status": "Closed",
    "classification": "FalsePositive",
    "classificationReason": "IncorrectAlertLogic",
    "classificationComment": "Not a malicious activity",
    "incidentNumber": 3177,
    "incidentUrl": "https://portal.azure.com/#asset/Microsoft_Azure_Security_Insights/Incident/73e01a99",
    "firstActivityTimeUtc": "2019-01-01T13:00:30Z",
    "lastActivityTimeUtc": "2019-01-01T13:05:30Z",
    "createdTimeUtc": "2019-01-01T13:15:30Z",
    "labels": [{"labelName": "phishing", "labelType": "User"}],
    "owner": {"objectId": "2046feea", "email": "john.doe@contoso.com", "assignedTo": "john doe", "userPrincipalName": "john@contoso.com", "ownerType": "User"},
    "relatedAnalyticRuleIds": ["/subscriptions/s/rule1"],
    "additionalData": {"alertsCount": 0, "bookmarksCount": 0, "commentsCount": 3, "alertProductNames": [], "tactics": ["InitialAccess", "Persistence"], "techniques": []}
  }
}`

func TestIncident_DecodeAndRoundTrip(t *testing.T) {
	var inc Incident
	require.NoError(t, arm.Unmarshal([]byte(incidentJSON), &inc))

	p := inc.Properties
	assert.Equal(t, IncidentSeverityHigh, *p.Severity)
	assert.Equal(t, IncidentStatusClosed, *p.Status)
	assert.Equal(t, IncidentClassificationFalsePositive, *p.Classification)
	assert.Equal(t, int32(3177), *p.IncidentNumber)
	assert.Equal(t, []AttackTactic{AttackTacticInitialAccess, AttackTacticPersistence}, p.AdditionalData.Tactics)
	assert.NotNil(t, p.AdditionalData.AlertProductNames)
	assert.Empty(t, p.AdditionalData.AlertProductNames)

	data, err := json.Marshal(&inc)
	require.NoError(t, err)
	assert.JSONEq(t, incidentJSON, string(data))
}

func TestIncident_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		path    string
	}{
		{name: "title", payload: `{"properties":{"severity":"Low","status":"New"}}`, path: "properties.title"},
		{name: "severity", payload: `{"properties":{"title":"t","status":"New"}}`, path: "properties.severity"},
		{name: "label", payload: `{"properties":{"title":"t","severity":"Low","status":"New","labels":[{"labelName":"a"},{"labelType":"User"}]}}`, path: "properties.labels[1].labelName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := arm.Unmarshal([]byte(tt.payload), &Incident{})
			var de *arm.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, arm.MissingField, de.Kind)
			assert.Equal(t, tt.path, de.Path)
		})
	}
}

func TestIncident_UnknownStatusIsKept(t *testing.T) {
	var inc Incident
	require.NoError(t, arm.Unmarshal([]byte(`{"properties":{"title":"t","severity":"Critical","status":"Archived"}}`), &inc))
	assert.Equal(t, IncidentStatus("Archived"), *inc.Properties.Status)
	assert.False(t, inc.Properties.Status.IsKnown())
	assert.False(t, inc.Properties.Severity.IsKnown())
}

func TestIncidentComments_AndRelations(t *testing.T) {
	comments := `{"value":[{"name":"c1","etag":"\"e\"","properties":{"message":"Some message","createdTimeUtc":"2019-01-01T13:15:30Z","author":{"email":"john.doe@contoso.com","name":"john doe","objectId":"o"}}}]}`
	var cl IncidentCommentList
	require.NoError(t, arm.Unmarshal([]byte(comments), &cl))
	require.Equal(t, 1, cl.Len())
	assert.Equal(t, "Some message", *cl.Value[0].Properties.Message)
	assert.False(t, cl.HasMore())

	err := arm.Unmarshal([]byte(`{"value":[{"properties":{}}]}`), &IncidentCommentList{})
	var de *arm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "value[0].properties.message", de.Path)

	relations := `{"value":[{"name":"r1","properties":{"relatedResourceId":"/subscriptions/s/bookmarks/b1","relatedResourceName":"b1","relatedResourceType":"Microsoft.SecurityInsights/Bookmarks","relatedResourceKind":""}}],"nextLink":""}`
	var rl RelationList
	require.NoError(t, arm.Unmarshal([]byte(relations), &rl))
	assert.Equal(t, "b1", *rl.Value[0].Properties.RelatedResourceName)
	assert.Nil(t, rl.Continuation())
}

func TestBookmark(t *testing.T) {
	payload := `{"name":"b1","etag":"\"e\"","properties":{"displayName":"My bookmark","query":"SecurityEvent | where TimeGenerated > ago(1d)","labels":["Tag1"],"notes":"Found a suspicious activity","incidentInfo":{"incidentId":"i1","severity":"Low","title":"New case 1","relationName":"rel"}}}`
	var b Bookmark
	require.NoError(t, arm.Unmarshal([]byte(payload), &b))
	assert.Equal(t, IncidentSeverityLow, *b.Properties.IncidentInfo.Severity)

	data, err := json.Marshal(&b)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))

	err = arm.Unmarshal([]byte(`{"properties":{"displayName":"d"}}`), &Bookmark{})
	var de *arm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "properties.query", de.Path)
}

func TestWatchlist(t *testing.T) {
	payload := `{"name":"highValueAsset","etag":"\"e\"","properties":{"displayName":"High Value Assets Watchlist","provider":"Microsoft","source":"Local file","itemsSearchKey":"header1","description":"Watchlist from CSV content","numberOfLinesToSkip":1,"rawContent":"This line will be skipped\nheader1,header2\nvalue1,value2","contentType":"text/csv","labels":[]}}`
	var w Watchlist
	require.NoError(t, arm.Unmarshal([]byte(payload), &w))
	assert.Equal(t, SourceTypeLocalFile, *w.Properties.Source)
	assert.True(t, w.Properties.Source.IsKnown())

	data, err := json.Marshal(&w)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))

	err = arm.Unmarshal([]byte(`{"properties":{"displayName":"d","provider":"p","source":"Remote storage"}}`), &Watchlist{})
	var de *arm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "properties.itemsSearchKey", de.Path)
}

func TestWatchlistItem(t *testing.T) {
	payload := `{"name":"82ba292c","properties":{"itemsKeyValue":{"Gateway subnet":"10.0.255.224/27","Web Tier":"10.0.1.0/24"},"entityMapping":{}}}`
	var item WatchlistItem
	require.NoError(t, arm.Unmarshal([]byte(payload), &item))

	kv, ok := item.Properties.ItemsKeyValue.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "10.0.1.0/24", kv["Web Tier"])

	data, err := json.Marshal(&item)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))

	err = arm.Unmarshal([]byte(`{"properties":{"entityMapping":{}}}`), &WatchlistItem{})
	var de *arm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, arm.MissingField, de.Kind)
	assert.Equal(t, "properties.itemsKeyValue", de.Path)

	_, err = json.Marshal(&WatchlistItem{Properties: &WatchlistItemProperties{ItemsKeyValue: map[string]string{"k": "v"}}})
	assert.NoError(t, err)
	assert.NotEmpty(t, NewWatchlistItemName())
}

func TestSentinelOnboardingStatesList(t *testing.T) {
	var list SentinelOnboardingStatesList
	require.NoError(t, arm.Unmarshal([]byte(`{"value":[{"name":"default","etag":"\"e\"","properties":{"customerManagedKey":false}}]}`), &list))
	require.Equal(t, 1, list.Len())
	assert.False(t, *list.Value[0].Properties.CustomerManagedKey)
	assert.Nil(t, list.Continuation())

	// A nextLink on a non-paged list is ignored.
	require.NoError(t, arm.Unmarshal([]byte(`{"value":[],"nextLink":"https://x"}`), &list))
	assert.Nil(t, list.Continuation())

	err := arm.Unmarshal([]byte(`{}`), &SentinelOnboardingStatesList{})
	assert.Equal(t, arm.MissingField, arm.DecodeErrorKindOf(err))
}

func TestActions(t *testing.T) {
	req := `{"etag":"\"e\"","properties":{"logicAppResourceId":"/subscriptions/s/resourceGroups/rg/providers/Microsoft.Logic/workflows/MyAlerts","triggerUri":"https://prod-31.northcentralus.logic.azure.com:443/workflows/cd3765391efd48549fd7681ded1d48d7/triggers/manual/paths/invoke"}}`
	var ar ActionRequest
	require.NoError(t, arm.Unmarshal([]byte(req), &ar))

	data, err := json.Marshal(&ar)
	require.NoError(t, err)
	assert.JSONEq(t, req, string(data))

	err = arm.Unmarshal([]byte(`{"properties":{"logicAppResourceId":"x"}}`), &ActionRequest{})
	var de *arm.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "properties.triggerUri", de.Path)

	var list ActionsList
	require.NoError(t, arm.Unmarshal([]byte(`{"value":[{"name":"a1","properties":{"logicAppResourceId":"x","workflowId":"w"}}]}`), &list))
	assert.Equal(t, "w", *list.Value[0].Properties.WorkflowID)
}

func TestOperationsList(t *testing.T) {
	payload := `{"value":[{"name":"Microsoft.SecurityInsights/incidents/read","origin":"user","isDataAction":false,"display":{"provider":"Microsoft Security Insights","resource":"Incidents","operation":"Read incidents","description":"Gets an incident"}}]}`
	var ops OperationsList
	require.NoError(t, arm.Unmarshal([]byte(payload), &ops))
	require.Equal(t, 1, ops.Len())
	assert.Equal(t, "Read incidents", *ops.Value[0].Display.Operation)
}

func TestEnums(t *testing.T) {
	set := Enums()
	assert.Equal(t, 32, set.Len())

	d, ok := set.Get("SourceType")
	require.True(t, ok)
	assert.Equal(t, []string{"Local file", "Remote storage"}, d.Values)

	d, ok = set.Get("AlertRuleKind")
	require.True(t, ok)
	assert.True(t, d.Known("NRT"))
	assert.False(t, d.Known("Nrt"))

	var src SourceType
	require.NoError(t, json.Unmarshal([]byte(`"Remote storage"`), &src))
	assert.Equal(t, SourceTypeRemoteStorage, src)
}

func TestResourceTypes(t *testing.T) {
	assert.Equal(t, "Microsoft.SecurityInsights/incidents/comments", ResourceTypeIncidentComments)
	assert.Equal(t, "Microsoft.SecurityInsights/watchlists/watchlistItems", ResourceTypeWatchlistItems)
}
