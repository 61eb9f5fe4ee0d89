package healthbot

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/rzbill/armkit/pkg/arm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const botJSON = `{
  "id": "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.HealthBot/healthBots/samplebot",
  "name": "samplebot",
  "type": "Microsoft.HealthBot/healthBots",
  "location": "East US",
  "tags": {"team": "care"},
  "sku": {"name": "F0"},
  "identity": {
    "type": "SystemAssigned, UserAssigned",
    "principalId": "p1",
    "tenantId": "t1",
    "userAssignedIdentities": {
      "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.ManagedIdentity/userAssignedIdentities/mi": {"clientId": "c1", "principalId": "p2"}
    }
  },
  "systemData": {
    "createdBy": "jdoe@contoso.com",
    "createdByType": "User",
    "createdAt": "2020-05-05T17:18:19.1234567Z"
  },
  "properties": {
    "provisioningState": "Succeeded",
    "botManagementPortalLink": "https://us.healthbot.microsoft.com/account/samplebot-1234",
    "accessControlMethod": "BotRbac",
    "keyVaultProperties": {
      "keyName": "key1",
      "keyVaultUri": "https://vault.vault.azure.net/",
      "userIdentity": "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.ManagedIdentity/userAssignedIdentities/mi"
    }
  }
}`

func TestHealthBot_Decode(t *testing.T) {
	var bot HealthBot
	require.NoError(t, arm.Unmarshal([]byte(botJSON), &bot))

	assert.Equal(t, "samplebot", *bot.Name)
	assert.Equal(t, "East US", *bot.Location)
	assert.Equal(t, SkuNameF0, *bot.Sku.Name)
	assert.Equal(t, ResourceIdentityTypeSystemAssignedUserAssigned, *bot.Identity.Type)
	assert.True(t, bot.Identity.Type.IsKnown())
	assert.Len(t, bot.Identity.UserAssignedIdentities, 1)
	assert.Equal(t, arm.CreatedByTypeUser, *bot.SystemData.CreatedByType)
	assert.Equal(t, "key1", *bot.Properties.KeyVaultProperties.KeyName)
	assert.Nil(t, bot.Properties.KeyVaultProperties.KeyVersion)

	id, err := bot.ResourceID()
	require.NoError(t, err)
	assert.Equal(t, "rg1", id.ResourceGroupName)
}

func TestHealthBot_RoundTrip(t *testing.T) {
	var bot HealthBot
	require.NoError(t, arm.Unmarshal([]byte(botJSON), &bot))

	data, err := json.Marshal(&bot)
	require.NoError(t, err)
	assert.JSONEq(t, botJSON, string(data))
}

func TestHealthBot_FlatKeySet(t *testing.T) {
	bot := NewHealthBot("westus", SkuNameS1)
	bot.Properties = &Properties{}

	data, err := json.Marshal(bot)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	got := make([]string, 0, len(m))
	for k := range m {
		got = append(got, k)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"location", "properties", "sku"}, got)
	assert.JSONEq(t, `{"location":"westus","sku":{"name":"S1"},"properties":{}}`, string(data))
}

func TestHealthBot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		path    string
	}{
		{name: "missing location", payload: `{"sku":{"name":"F0"}}`, path: "location"},
		{name: "missing sku", payload: `{"location":"x"}`, path: "sku"},
		{name: "missing sku name", payload: `{"location":"x","sku":{}}`, path: "sku.name"},
		{name: "missing key vault uri", payload: `{"location":"x","sku":{"name":"F0"},"properties":{"keyVaultProperties":{"keyName":"k"}}}`, path: "properties.keyVaultProperties.keyVaultUri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bot HealthBot
			err := arm.Unmarshal([]byte(tt.payload), &bot)
			var de *arm.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, arm.MissingField, de.Kind)
			assert.Equal(t, tt.path, de.Path)
		})
	}
}

func TestSkuName_UnknownPreserved(t *testing.T) {
	var bot HealthBot
	require.NoError(t, arm.Unmarshal([]byte(`{"location":"x","sku":{"name":"G9"}}`), &bot))
	assert.False(t, bot.Sku.Name.IsKnown())

	data, err := json.Marshal(bot.Sku)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"G9"}`, string(data))
}

func TestEnums_Values(t *testing.T) {
	assert.Equal(t, []SkuName{"F0", "S1", "C0", "PES", "C1"}, PossibleSkuNameValues())
	assert.Len(t, PossibleResourceIdentityTypeValues(), 4)
}

func TestBotResponseList(t *testing.T) {
	var list BotResponseList
	payload := `{"value":[{"name":"a","location":"x","sku":{"name":"F0"}},{"name":"b","location":"x","sku":{"name":"S1"}}],"nextLink":""}`
	require.NoError(t, arm.Unmarshal([]byte(payload), &list))
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "a", *list.Value[0].Name)
	assert.False(t, list.HasMore())
}

func TestUpdateParameters_OmitsAbsent(t *testing.T) {
	u := UpdateParameters{Sku: &Sku{Name: to.Ptr(SkuNameC1)}}
	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `{"sku":{"name":"C1"}}`, string(data))
}

func TestKeysResponse(t *testing.T) {
	var keys KeysResponse
	require.NoError(t, json.Unmarshal([]byte(`{"secrets":[{"keyName":"APP_SECRET","value":"s"}]}`), &keys))
	require.Len(t, keys.Secrets, 1)
	assert.Equal(t, "APP_SECRET", *keys.Secrets[0].KeyName)
}
