package securityinsights

import (
	"time"

	"github.com/rzbill/armkit/pkg/arm"
)

// DataConnector ingests data from one source into the workspace. The
// concrete type is selected by the "kind" field.
//
// Kind dispatch is closed: an unknown kind fails to decode even though
// DataConnectorKind itself accepts unknown values.
type DataConnector interface {
	Kind() DataConnectorKind
	GetResourceWithEtag() *arm.ResourceWithEtag
}

var dataConnectors = arm.NewUnion("DataConnector", "kind", map[string]func() DataConnector{
	string(DataConnectorKindAzureActiveDirectory):                      func() DataConnector { return &AADDataConnector{} },
	string(DataConnectorKindAzureAdvancedThreatProtection):             func() DataConnector { return &AATPDataConnector{} },
	string(DataConnectorKindAzureSecurityCenter):                       func() DataConnector { return &ASCDataConnector{} },
	string(DataConnectorKindAmazonWebServicesCloudTrail):               func() DataConnector { return &AwsCloudTrailDataConnector{} },
	string(DataConnectorKindMicrosoftCloudAppSecurity):                 func() DataConnector { return &MCASDataConnector{} },
	string(DataConnectorKindMicrosoftDefenderAdvancedThreatProtection): func() DataConnector { return &MDATPDataConnector{} },
	string(DataConnectorKindOffice365):                                 func() DataConnector { return &OfficeDataConnector{} },
	string(DataConnectorKindThreatIntelligence):                        func() DataConnector { return &TIDataConnector{} },
})

// UnmarshalDataConnector decodes one data connector of any registered kind.
func UnmarshalDataConnector(data []byte) (DataConnector, error) {
	return dataConnectors.Decode(data)
}

// DataConnectorList is one page of data connectors.
type DataConnectorList struct {
	arm.Page[DataConnector]
}

func (l *DataConnectorList) UnmarshalJSON(data []byte) error {
	page, err := arm.DecodeUnionPage(data, dataConnectors)
	if err != nil {
		return err
	}
	l.Page = page
	return nil
}

func (l *DataConnectorList) Validate() error {
	return arm.CheckRequired("DataConnectorList", arm.ReqSlice("value", l.Value))
}

// DataConnectorDataTypeCommon is the ingestion state of one data type.
type DataConnectorDataTypeCommon struct {
	State *DataTypeState `json:"state,omitempty"`
}

func (d *DataConnectorDataTypeCommon) Validate() error {
	if d == nil {
		return nil
	}
	return arm.CheckRequired("DataConnectorDataTypeCommon", arm.Req("state", d.State))
}

// AlertsDataTypeOfDataConnector is the data type set of alert-only connectors.
type AlertsDataTypeOfDataConnector struct {
	Alerts *DataConnectorDataTypeCommon `json:"alerts,omitempty"`
}

func (d *AlertsDataTypeOfDataConnector) Validate() error {
	if d == nil {
		return nil
	}
	return arm.Nested("alerts", d.Alerts)
}

// TenantAlertsConnectorProperties are the properties of connectors that pull
// alerts from a tenant: Azure AD, Azure ATP and Microsoft Defender ATP.
//
// Some payloads carry the alert data type directly under properties instead
// of under dataTypes. Both shapes are kept as they arrive.
type TenantAlertsConnectorProperties struct {
	Alerts    *DataConnectorDataTypeCommon   `json:"alerts,omitempty"`
	DataTypes *AlertsDataTypeOfDataConnector `json:"dataTypes,omitempty"`
	TenantID  *string                        `json:"tenantId,omitempty"`
}

// AlertsState returns the alert data type state from either shape,
// preferring dataTypes.alerts.
func (p *TenantAlertsConnectorProperties) AlertsState() *DataTypeState {
	if p == nil {
		return nil
	}
	if p.DataTypes != nil && p.DataTypes.Alerts != nil {
		return p.DataTypes.Alerts.State
	}
	if p.Alerts != nil {
		return p.Alerts.State
	}
	return nil
}

func (p *TenantAlertsConnectorProperties) Validate() error {
	if p == nil {
		return nil
	}
	if err := arm.CheckRequired("TenantAlertsConnectorProperties", arm.Req("tenantId", p.TenantID)); err != nil {
		return err
	}
	if err := arm.Nested("alerts", p.Alerts); err != nil {
		return err
	}
	return arm.Nested("dataTypes", p.DataTypes)
}

// AADDataConnector ingests Azure Active Directory Identity Protection alerts.
type AADDataConnector struct {
	arm.ResourceWithEtag
	Properties *TenantAlertsConnectorProperties `json:"properties,omitempty"`
}

func (c *AADDataConnector) Kind() DataConnectorKind { return DataConnectorKindAzureActiveDirectory }

func (c *AADDataConnector) MarshalJSON() ([]byte, error) {
	type alias AADDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *AADDataConnector) UnmarshalJSON(data []byte) error {
	type alias AADDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "AADDataConnector", (*alias)(c))
}

func (c *AADDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// AATPDataConnector ingests Azure Advanced Threat Protection alerts.
type AATPDataConnector struct {
	arm.ResourceWithEtag
	Properties *TenantAlertsConnectorProperties `json:"properties,omitempty"`
}

func (c *AATPDataConnector) Kind() DataConnectorKind {
	return DataConnectorKindAzureAdvancedThreatProtection
}

func (c *AATPDataConnector) MarshalJSON() ([]byte, error) {
	type alias AATPDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *AATPDataConnector) UnmarshalJSON(data []byte) error {
	type alias AATPDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "AATPDataConnector", (*alias)(c))
}

func (c *AATPDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// MDATPDataConnector ingests Microsoft Defender ATP alerts.
type MDATPDataConnector struct {
	arm.ResourceWithEtag
	Properties *TenantAlertsConnectorProperties `json:"properties,omitempty"`
}

func (c *MDATPDataConnector) Kind() DataConnectorKind {
	return DataConnectorKindMicrosoftDefenderAdvancedThreatProtection
}

func (c *MDATPDataConnector) MarshalJSON() ([]byte, error) {
	type alias MDATPDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *MDATPDataConnector) UnmarshalJSON(data []byte) error {
	type alias MDATPDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "MDATPDataConnector", (*alias)(c))
}

func (c *MDATPDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// ASCDataConnector ingests Azure Security Center alerts of one subscription.
type ASCDataConnector struct {
	arm.ResourceWithEtag
	Properties *ASCDataConnectorProperties `json:"properties,omitempty"`
}

// ASCDataConnectorProperties are the properties of an ASC connector.
type ASCDataConnectorProperties struct {
	DataTypes      *AlertsDataTypeOfDataConnector `json:"dataTypes,omitempty"`
	SubscriptionID *string                        `json:"subscriptionId,omitempty"`
}

func (p *ASCDataConnectorProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.Nested("dataTypes", p.DataTypes)
}

func (c *ASCDataConnector) Kind() DataConnectorKind { return DataConnectorKindAzureSecurityCenter }

func (c *ASCDataConnector) MarshalJSON() ([]byte, error) {
	type alias ASCDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *ASCDataConnector) UnmarshalJSON(data []byte) error {
	type alias ASCDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "ASCDataConnector", (*alias)(c))
}

func (c *ASCDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// AwsCloudTrailDataConnector ingests Amazon Web Services CloudTrail logs.
type AwsCloudTrailDataConnector struct {
	arm.ResourceWithEtag
	Properties *AwsCloudTrailDataConnectorProperties `json:"properties,omitempty"`
}

// AwsCloudTrailDataConnectorProperties are the properties of a CloudTrail
// connector.
type AwsCloudTrailDataConnectorProperties struct {
	// AwsRoleArn is the role Sentinel assumes to read the trail.
	AwsRoleArn *string                              `json:"awsRoleArn,omitempty"`
	DataTypes  *AwsCloudTrailDataConnectorDataTypes `json:"dataTypes,omitempty"`
}

// AwsCloudTrailDataConnectorDataTypes is the data type set of a CloudTrail
// connector.
type AwsCloudTrailDataConnectorDataTypes struct {
	Logs *DataConnectorDataTypeCommon `json:"logs,omitempty"`
}

func (p *AwsCloudTrailDataConnectorProperties) Validate() error {
	if p == nil {
		return nil
	}
	if err := arm.CheckRequired("AwsCloudTrailDataConnectorProperties", arm.Req("dataTypes", p.DataTypes)); err != nil {
		return err
	}
	return arm.Nested("dataTypes.logs", p.DataTypes.Logs)
}

func (c *AwsCloudTrailDataConnector) Kind() DataConnectorKind {
	return DataConnectorKindAmazonWebServicesCloudTrail
}

func (c *AwsCloudTrailDataConnector) MarshalJSON() ([]byte, error) {
	type alias AwsCloudTrailDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *AwsCloudTrailDataConnector) UnmarshalJSON(data []byte) error {
	type alias AwsCloudTrailDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "AwsCloudTrailDataConnector", (*alias)(c))
}

func (c *AwsCloudTrailDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// MCASDataConnector ingests Microsoft Cloud App Security alerts and
// discovery logs.
type MCASDataConnector struct {
	arm.ResourceWithEtag
	Properties *MCASDataConnectorProperties `json:"properties,omitempty"`
}

// MCASDataConnectorProperties are the properties of an MCAS connector.
type MCASDataConnectorProperties struct {
	DataTypes *MCASDataConnectorDataTypes `json:"dataTypes,omitempty"`
	TenantID  *string                     `json:"tenantId,omitempty"`
}

// MCASDataConnectorDataTypes is the data type set of an MCAS connector.
type MCASDataConnectorDataTypes struct {
	Alerts        *DataConnectorDataTypeCommon `json:"alerts,omitempty"`
	DiscoveryLogs *DataConnectorDataTypeCommon `json:"discoveryLogs,omitempty"`
}

func (p *MCASDataConnectorProperties) Validate() error {
	if p == nil {
		return nil
	}
	err := arm.CheckRequired("MCASDataConnectorProperties",
		arm.Req("tenantId", p.TenantID),
		arm.Req("dataTypes", p.DataTypes),
	)
	if err != nil {
		return err
	}
	if err := arm.Nested("dataTypes.alerts", p.DataTypes.Alerts); err != nil {
		return err
	}
	return arm.Nested("dataTypes.discoveryLogs", p.DataTypes.DiscoveryLogs)
}

func (c *MCASDataConnector) Kind() DataConnectorKind {
	return DataConnectorKindMicrosoftCloudAppSecurity
}

func (c *MCASDataConnector) MarshalJSON() ([]byte, error) {
	type alias MCASDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *MCASDataConnector) UnmarshalJSON(data []byte) error {
	type alias MCASDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "MCASDataConnector", (*alias)(c))
}

func (c *MCASDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// OfficeDataConnector ingests Office 365 activity.
type OfficeDataConnector struct {
	arm.ResourceWithEtag
	Properties *OfficeDataConnectorProperties `json:"properties,omitempty"`
}

// OfficeDataConnectorProperties are the properties of an Office 365 connector.
type OfficeDataConnectorProperties struct {
	DataTypes *OfficeDataConnectorDataTypes `json:"dataTypes,omitempty"`
	TenantID  *string                       `json:"tenantId,omitempty"`
}

// OfficeDataConnectorDataTypes is the data type set of an Office 365 connector.
type OfficeDataConnectorDataTypes struct {
	Exchange   *DataConnectorDataTypeCommon `json:"exchange,omitempty"`
	SharePoint *DataConnectorDataTypeCommon `json:"sharePoint,omitempty"`
	Teams      *DataConnectorDataTypeCommon `json:"teams,omitempty"`
}

func (p *OfficeDataConnectorProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("OfficeDataConnectorProperties",
		arm.Req("tenantId", p.TenantID),
		arm.Req("dataTypes", p.DataTypes),
	)
}

func (c *OfficeDataConnector) Kind() DataConnectorKind { return DataConnectorKindOffice365 }

func (c *OfficeDataConnector) MarshalJSON() ([]byte, error) {
	type alias OfficeDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *OfficeDataConnector) UnmarshalJSON(data []byte) error {
	type alias OfficeDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "OfficeDataConnector", (*alias)(c))
}

func (c *OfficeDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}

// TIDataConnector ingests threat intelligence indicators.
type TIDataConnector struct {
	arm.ResourceWithEtag
	Properties *TIDataConnectorProperties `json:"properties,omitempty"`
}

// TIDataConnectorProperties are the properties of a threat intelligence
// connector.
type TIDataConnectorProperties struct {
	DataTypes *TIDataConnectorDataTypes `json:"dataTypes,omitempty"`
	TenantID  *string                   `json:"tenantId,omitempty"`

	// TipLookbackPeriod is the earliest indicator time to import.
	TipLookbackPeriod *time.Time `json:"tipLookbackPeriod,omitempty"`
}

// TIDataConnectorDataTypes is the data type set of a threat intelligence
// connector.
type TIDataConnectorDataTypes struct {
	Indicators *DataConnectorDataTypeCommon `json:"indicators,omitempty"`
}

func (p *TIDataConnectorProperties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.CheckRequired("TIDataConnectorProperties",
		arm.Req("tenantId", p.TenantID),
		arm.Req("dataTypes", p.DataTypes),
	)
}

func (c *TIDataConnector) Kind() DataConnectorKind { return DataConnectorKindThreatIntelligence }

func (c *TIDataConnector) MarshalJSON() ([]byte, error) {
	type alias TIDataConnector
	return arm.MarshalTagged("kind", string(c.Kind()), (*alias)(c))
}

func (c *TIDataConnector) UnmarshalJSON(data []byte) error {
	type alias TIDataConnector
	return arm.UnmarshalTagged(data, "kind", string(c.Kind()), "TIDataConnector", (*alias)(c))
}

func (c *TIDataConnector) Validate() error {
	if c == nil {
		return nil
	}
	return arm.Nested("properties", c.Properties)
}
