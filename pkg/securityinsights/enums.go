package securityinsights

import "github.com/rzbill/armkit/pkg/openenum"

// AlertRuleKind is the discriminator of alert rules and alert rule templates.
type AlertRuleKind string

const (
	AlertRuleKindFusion                            AlertRuleKind = "Fusion"
	AlertRuleKindMLBehaviorAnalytics               AlertRuleKind = "MLBehaviorAnalytics"
	AlertRuleKindMicrosoftSecurityIncidentCreation AlertRuleKind = "MicrosoftSecurityIncidentCreation"
	AlertRuleKindNRT                               AlertRuleKind = "NRT"
	AlertRuleKindScheduled                         AlertRuleKind = "Scheduled"
	AlertRuleKindThreatIntelligence                AlertRuleKind = "ThreatIntelligence"
)

var alertRuleKinds = openenum.New("AlertRuleKind",
	AlertRuleKindScheduled,
	AlertRuleKindMicrosoftSecurityIncidentCreation,
	AlertRuleKindFusion,
	AlertRuleKindMLBehaviorAnalytics,
	AlertRuleKindThreatIntelligence,
	AlertRuleKindNRT,
)

func PossibleAlertRuleKindValues() []AlertRuleKind { return alertRuleKinds.Values() }
func (v AlertRuleKind) IsKnown() bool             { return alertRuleKinds.IsKnown(v) }

// AlertSeverity is the severity of alerts created by a rule.
type AlertSeverity string

const (
	AlertSeverityHigh          AlertSeverity = "High"
	AlertSeverityInformational AlertSeverity = "Informational"
	AlertSeverityLow           AlertSeverity = "Low"
	AlertSeverityMedium        AlertSeverity = "Medium"
)

var alertSeverities = openenum.New("AlertSeverity",
	AlertSeverityHigh,
	AlertSeverityMedium,
	AlertSeverityLow,
	AlertSeverityInformational,
)

func PossibleAlertSeverityValues() []AlertSeverity { return alertSeverities.Values() }
func (v AlertSeverity) IsKnown() bool             { return alertSeverities.IsKnown(v) }

// AttackTactic is a MITRE ATT&CK tactic.
type AttackTactic string

const (
	AttackTacticCollection              AttackTactic = "Collection"
	AttackTacticCommandAndControl       AttackTactic = "CommandAndControl"
	AttackTacticCredentialAccess        AttackTactic = "CredentialAccess"
	AttackTacticDefenseEvasion          AttackTactic = "DefenseEvasion"
	AttackTacticDiscovery               AttackTactic = "Discovery"
	AttackTacticExecution               AttackTactic = "Execution"
	AttackTacticExfiltration            AttackTactic = "Exfiltration"
	AttackTacticImpact                  AttackTactic = "Impact"
	AttackTacticImpairProcessControl    AttackTactic = "ImpairProcessControl"
	AttackTacticInhibitResponseFunction AttackTactic = "InhibitResponseFunction"
	AttackTacticInitialAccess           AttackTactic = "InitialAccess"
	AttackTacticLateralMovement         AttackTactic = "LateralMovement"
	AttackTacticPersistence             AttackTactic = "Persistence"
	AttackTacticPreAttack               AttackTactic = "PreAttack"
	AttackTacticPrivilegeEscalation     AttackTactic = "PrivilegeEscalation"
	AttackTacticReconnaissance          AttackTactic = "Reconnaissance"
	AttackTacticResourceDevelopment     AttackTactic = "ResourceDevelopment"
)

var attackTactics = openenum.New("AttackTactic",
	AttackTacticReconnaissance,
	AttackTacticResourceDevelopment,
	AttackTacticInitialAccess,
	AttackTacticExecution,
	AttackTacticPersistence,
	AttackTacticPrivilegeEscalation,
	AttackTacticDefenseEvasion,
	AttackTacticCredentialAccess,
	AttackTacticDiscovery,
	AttackTacticLateralMovement,
	AttackTacticCollection,
	AttackTacticExfiltration,
	AttackTacticCommandAndControl,
	AttackTacticImpact,
	AttackTacticPreAttack,
	AttackTacticImpairProcessControl,
	AttackTacticInhibitResponseFunction,
)

func PossibleAttackTacticValues() []AttackTactic { return attackTactics.Values() }
func (v AttackTactic) IsKnown() bool            { return attackTactics.IsKnown(v) }

// TriggerOperator compares a scheduled query's result count to its threshold.
type TriggerOperator string

const (
	TriggerOperatorEqual       TriggerOperator = "Equal"
	TriggerOperatorGreaterThan TriggerOperator = "GreaterThan"
	TriggerOperatorLessThan    TriggerOperator = "LessThan"
	TriggerOperatorNotEqual    TriggerOperator = "NotEqual"
)

var triggerOperators = openenum.New("TriggerOperator",
	TriggerOperatorGreaterThan,
	TriggerOperatorLessThan,
	TriggerOperatorEqual,
	TriggerOperatorNotEqual,
)

func PossibleTriggerOperatorValues() []TriggerOperator { return triggerOperators.Values() }
func (v TriggerOperator) IsKnown() bool               { return triggerOperators.IsKnown(v) }

// EventGroupingAggregationKind controls how query results become alerts.
type EventGroupingAggregationKind string

const (
	EventGroupingAggregationKindAlertPerResult EventGroupingAggregationKind = "AlertPerResult"
	EventGroupingAggregationKindSingleAlert    EventGroupingAggregationKind = "SingleAlert"
)

var aggregationKinds = openenum.New("EventGroupingAggregationKind",
	EventGroupingAggregationKindSingleAlert,
	EventGroupingAggregationKindAlertPerResult,
)

func PossibleEventGroupingAggregationKindValues() []EventGroupingAggregationKind {
	return aggregationKinds.Values()
}
func (v EventGroupingAggregationKind) IsKnown() bool { return aggregationKinds.IsKnown(v) }

// AlertDetail is an alert property that incident grouping can match on.
type AlertDetail string

const (
	AlertDetailDisplayName AlertDetail = "DisplayName"
	AlertDetailSeverity    AlertDetail = "Severity"
)

var alertDetails = openenum.New("AlertDetail", AlertDetailDisplayName, AlertDetailSeverity)

func PossibleAlertDetailValues() []AlertDetail { return alertDetails.Values() }
func (v AlertDetail) IsKnown() bool           { return alertDetails.IsKnown(v) }

// EntityMappingType is the type of entity a query column maps to.
type EntityMappingType string

const (
	EntityMappingTypeAccount          EntityMappingType = "Account"
	EntityMappingTypeAzureResource    EntityMappingType = "AzureResource"
	EntityMappingTypeCloudApplication EntityMappingType = "CloudApplication"
	EntityMappingTypeDNS              EntityMappingType = "DNS"
	EntityMappingTypeFile             EntityMappingType = "File"
	EntityMappingTypeFileHash         EntityMappingType = "FileHash"
	EntityMappingTypeHost             EntityMappingType = "Host"
	EntityMappingTypeIP               EntityMappingType = "IP"
	EntityMappingTypeMailCluster      EntityMappingType = "MailCluster"
	EntityMappingTypeMailMessage      EntityMappingType = "MailMessage"
	EntityMappingTypeMailbox          EntityMappingType = "Mailbox"
	EntityMappingTypeMalware          EntityMappingType = "Malware"
	EntityMappingTypeProcess          EntityMappingType = "Process"
	EntityMappingTypeRegistryKey      EntityMappingType = "RegistryKey"
	EntityMappingTypeRegistryValue    EntityMappingType = "RegistryValue"
	EntityMappingTypeSecurityGroup    EntityMappingType = "SecurityGroup"
	EntityMappingTypeSubmissionMail   EntityMappingType = "SubmissionMail"
	EntityMappingTypeURL              EntityMappingType = "URL"
)

var entityMappingTypes = openenum.New("EntityMappingType",
	EntityMappingTypeAccount,
	EntityMappingTypeHost,
	EntityMappingTypeIP,
	EntityMappingTypeMalware,
	EntityMappingTypeFile,
	EntityMappingTypeProcess,
	EntityMappingTypeCloudApplication,
	EntityMappingTypeDNS,
	EntityMappingTypeAzureResource,
	EntityMappingTypeFileHash,
	EntityMappingTypeRegistryKey,
	EntityMappingTypeRegistryValue,
	EntityMappingTypeSecurityGroup,
	EntityMappingTypeURL,
	EntityMappingTypeMailbox,
	EntityMappingTypeMailCluster,
	EntityMappingTypeMailMessage,
	EntityMappingTypeSubmissionMail,
)

func PossibleEntityMappingTypeValues() []EntityMappingType { return entityMappingTypes.Values() }
func (v EntityMappingType) IsKnown() bool                 { return entityMappingTypes.IsKnown(v) }

// MatchingMethod decides which alerts are grouped into the same incident.
type MatchingMethod string

const (
	MatchingMethodAllEntities MatchingMethod = "AllEntities"
	MatchingMethodAnyAlert    MatchingMethod = "AnyAlert"
	MatchingMethodSelected    MatchingMethod = "Selected"
)

var matchingMethods = openenum.New("MatchingMethod",
	MatchingMethodAllEntities,
	MatchingMethodAnyAlert,
	MatchingMethodSelected,
)

func PossibleMatchingMethodValues() []MatchingMethod { return matchingMethods.Values() }
func (v MatchingMethod) IsKnown() bool              { return matchingMethods.IsKnown(v) }

// MicrosoftSecurityProductName is a Microsoft security product whose alerts
// can raise incidents.
type MicrosoftSecurityProductName string

const (
	MicrosoftSecurityProductNameAzureActiveDirectoryIdentityProtection    MicrosoftSecurityProductName = "Azure Active Directory Identity Protection"
	MicrosoftSecurityProductNameAzureAdvancedThreatProtection             MicrosoftSecurityProductName = "Azure Advanced Threat Protection"
	MicrosoftSecurityProductNameAzureSecurityCenter                       MicrosoftSecurityProductName = "Azure Security Center"
	MicrosoftSecurityProductNameAzureSecurityCenterForIoT                 MicrosoftSecurityProductName = "Azure Security Center for IoT"
	MicrosoftSecurityProductNameMicrosoftCloudAppSecurity                 MicrosoftSecurityProductName = "Microsoft Cloud App Security"
	MicrosoftSecurityProductNameMicrosoftDefenderAdvancedThreatProtection MicrosoftSecurityProductName = "Microsoft Defender Advanced Threat Protection"
	MicrosoftSecurityProductNameOffice365AdvancedThreatProtection         MicrosoftSecurityProductName = "Office 365 Advanced Threat Protection"
)

var productNames = openenum.New("MicrosoftSecurityProductName",
	MicrosoftSecurityProductNameMicrosoftCloudAppSecurity,
	MicrosoftSecurityProductNameAzureSecurityCenter,
	MicrosoftSecurityProductNameAzureAdvancedThreatProtection,
	MicrosoftSecurityProductNameAzureActiveDirectoryIdentityProtection,
	MicrosoftSecurityProductNameAzureSecurityCenterForIoT,
	MicrosoftSecurityProductNameOffice365AdvancedThreatProtection,
	MicrosoftSecurityProductNameMicrosoftDefenderAdvancedThreatProtection,
)

func PossibleMicrosoftSecurityProductNameValues() []MicrosoftSecurityProductName {
	return productNames.Values()
}
func (v MicrosoftSecurityProductName) IsKnown() bool { return productNames.IsKnown(v) }

// TemplateStatus is the installation status of an alert rule template.
type TemplateStatus string

const (
	TemplateStatusAvailable    TemplateStatus = "Available"
	TemplateStatusInstalled    TemplateStatus = "Installed"
	TemplateStatusNotAvailable TemplateStatus = "NotAvailable"
)

var templateStatuses = openenum.New("TemplateStatus",
	TemplateStatusInstalled,
	TemplateStatusAvailable,
	TemplateStatusNotAvailable,
)

func PossibleTemplateStatusValues() []TemplateStatus { return templateStatuses.Values() }
func (v TemplateStatus) IsKnown() bool              { return templateStatuses.IsKnown(v) }

// DataConnectorKind is the discriminator of data connectors.
type DataConnectorKind string

const (
	DataConnectorKindAmazonWebServicesCloudTrail               DataConnectorKind = "AmazonWebServicesCloudTrail"
	DataConnectorKindAzureActiveDirectory                      DataConnectorKind = "AzureActiveDirectory"
	DataConnectorKindAzureAdvancedThreatProtection             DataConnectorKind = "AzureAdvancedThreatProtection"
	DataConnectorKindAzureSecurityCenter                       DataConnectorKind = "AzureSecurityCenter"
	DataConnectorKindMicrosoftCloudAppSecurity                 DataConnectorKind = "MicrosoftCloudAppSecurity"
	DataConnectorKindMicrosoftDefenderAdvancedThreatProtection DataConnectorKind = "MicrosoftDefenderAdvancedThreatProtection"
	DataConnectorKindOffice365                                 DataConnectorKind = "Office365"
	DataConnectorKindThreatIntelligence                        DataConnectorKind = "ThreatIntelligence"
)

var dataConnectorKinds = openenum.New("DataConnectorKind",
	DataConnectorKindAzureActiveDirectory,
	DataConnectorKindAzureSecurityCenter,
	DataConnectorKindMicrosoftCloudAppSecurity,
	DataConnectorKindThreatIntelligence,
	DataConnectorKindOffice365,
	DataConnectorKindAmazonWebServicesCloudTrail,
	DataConnectorKindAzureAdvancedThreatProtection,
	DataConnectorKindMicrosoftDefenderAdvancedThreatProtection,
)

func PossibleDataConnectorKindValues() []DataConnectorKind { return dataConnectorKinds.Values() }
func (v DataConnectorKind) IsKnown() bool                 { return dataConnectorKinds.IsKnown(v) }

// DataTypeState is whether a connector data type is being ingested.
type DataTypeState string

const (
	DataTypeStateDisabled DataTypeState = "Disabled"
	DataTypeStateEnabled  DataTypeState = "Enabled"
)

var dataTypeStates = openenum.New("DataTypeState", DataTypeStateEnabled, DataTypeStateDisabled)

func PossibleDataTypeStateValues() []DataTypeState { return dataTypeStates.Values() }
func (v DataTypeState) IsKnown() bool             { return dataTypeStates.IsKnown(v) }

// TriggersOn is the object type that fires an automation rule.
type TriggersOn string

const (
	TriggersOnAlerts    TriggersOn = "Alerts"
	TriggersOnIncidents TriggersOn = "Incidents"
)

var triggersOn = openenum.New("TriggersOn", TriggersOnIncidents, TriggersOnAlerts)

func PossibleTriggersOnValues() []TriggersOn { return triggersOn.Values() }
func (v TriggersOn) IsKnown() bool          { return triggersOn.IsKnown(v) }

// TriggersWhen is the lifecycle event that fires an automation rule.
type TriggersWhen string

const (
	TriggersWhenCreated TriggersWhen = "Created"
	TriggersWhenUpdated TriggersWhen = "Updated"
)

var triggersWhen = openenum.New("TriggersWhen", TriggersWhenCreated, TriggersWhenUpdated)

func PossibleTriggersWhenValues() []TriggersWhen { return triggersWhen.Values() }
func (v TriggersWhen) IsKnown() bool            { return triggersWhen.IsKnown(v) }

// ActionType is the discriminator of automation rule actions.
type ActionType string

const (
	ActionTypeModifyProperties ActionType = "ModifyProperties"
	ActionTypeRunPlaybook      ActionType = "RunPlaybook"
)

var actionTypes = openenum.New("ActionType", ActionTypeModifyProperties, ActionTypeRunPlaybook)

func PossibleActionTypeValues() []ActionType { return actionTypes.Values() }
func (v ActionType) IsKnown() bool          { return actionTypes.IsKnown(v) }

// ConditionType is the discriminator of automation rule conditions.
type ConditionType string

const (
	ConditionTypeProperty             ConditionType = "Property"
	ConditionTypePropertyArrayChanged ConditionType = "PropertyArrayChanged"
	ConditionTypePropertyChanged      ConditionType = "PropertyChanged"
)

var conditionTypes = openenum.New("ConditionType",
	ConditionTypeProperty,
	ConditionTypePropertyArrayChanged,
	ConditionTypePropertyChanged,
)

func PossibleConditionTypeValues() []ConditionType { return conditionTypes.Values() }
func (v ConditionType) IsKnown() bool             { return conditionTypes.IsKnown(v) }

// AutomationRulePropertyConditionSupportedOperator compares a property to a
// list of values.
type AutomationRulePropertyConditionSupportedOperator string

const (
	OperatorContains      AutomationRulePropertyConditionSupportedOperator = "Contains"
	OperatorEndsWith      AutomationRulePropertyConditionSupportedOperator = "EndsWith"
	OperatorEquals        AutomationRulePropertyConditionSupportedOperator = "Equals"
	OperatorNotContains   AutomationRulePropertyConditionSupportedOperator = "NotContains"
	OperatorNotEndsWith   AutomationRulePropertyConditionSupportedOperator = "NotEndsWith"
	OperatorNotEquals     AutomationRulePropertyConditionSupportedOperator = "NotEquals"
	OperatorNotStartsWith AutomationRulePropertyConditionSupportedOperator = "NotStartsWith"
	OperatorStartsWith    AutomationRulePropertyConditionSupportedOperator = "StartsWith"
)

var conditionOperators = openenum.New("AutomationRulePropertyConditionSupportedOperator",
	OperatorEquals,
	OperatorNotEquals,
	OperatorContains,
	OperatorNotContains,
	OperatorStartsWith,
	OperatorNotStartsWith,
	OperatorEndsWith,
	OperatorNotEndsWith,
)

func PossibleAutomationRulePropertyConditionSupportedOperatorValues() []AutomationRulePropertyConditionSupportedOperator {
	return conditionOperators.Values()
}
func (v AutomationRulePropertyConditionSupportedOperator) IsKnown() bool {
	return conditionOperators.IsKnown(v)
}

// AutomationRulePropertyConditionSupportedProperty is an incident or alert
// property an automation rule condition can test.
type AutomationRulePropertyConditionSupportedProperty string

const (
	PropertyAccountAadTenantID             AutomationRulePropertyConditionSupportedProperty = "AccountAadTenantId"
	PropertyAccountAadUserID               AutomationRulePropertyConditionSupportedProperty = "AccountAadUserId"
	PropertyAccountName                    AutomationRulePropertyConditionSupportedProperty = "AccountName"
	PropertyAccountNTDomain                AutomationRulePropertyConditionSupportedProperty = "AccountNTDomain"
	PropertyAccountPUID                    AutomationRulePropertyConditionSupportedProperty = "AccountPUID"
	PropertyAccountSid                     AutomationRulePropertyConditionSupportedProperty = "AccountSid"
	PropertyAccountObjectGUID              AutomationRulePropertyConditionSupportedProperty = "AccountObjectGuid"
	PropertyAccountUPNSuffix               AutomationRulePropertyConditionSupportedProperty = "AccountUPNSuffix"
	PropertyAlertProductNames              AutomationRulePropertyConditionSupportedProperty = "AlertProductNames"
	PropertyAzureResourceResourceID        AutomationRulePropertyConditionSupportedProperty = "AzureResourceResourceId"
	PropertyAzureResourceSubscriptionID    AutomationRulePropertyConditionSupportedProperty = "AzureResourceSubscriptionId"
	PropertyCloudApplicationAppID          AutomationRulePropertyConditionSupportedProperty = "CloudApplicationAppId"
	PropertyCloudApplicationAppName        AutomationRulePropertyConditionSupportedProperty = "CloudApplicationAppName"
	PropertyDNSDomainName                  AutomationRulePropertyConditionSupportedProperty = "DNSDomainName"
	PropertyFileDirectory                  AutomationRulePropertyConditionSupportedProperty = "FileDirectory"
	PropertyFileHashValue                  AutomationRulePropertyConditionSupportedProperty = "FileHashValue"
	PropertyFileName                       AutomationRulePropertyConditionSupportedProperty = "FileName"
	PropertyHostAzureID                    AutomationRulePropertyConditionSupportedProperty = "HostAzureID"
	PropertyHostName                       AutomationRulePropertyConditionSupportedProperty = "HostName"
	PropertyHostNetBiosName                AutomationRulePropertyConditionSupportedProperty = "HostNetBiosName"
	PropertyHostNTDomain                   AutomationRulePropertyConditionSupportedProperty = "HostNTDomain"
	PropertyHostOSVersion                  AutomationRulePropertyConditionSupportedProperty = "HostOSVersion"
	PropertyIncidentCustomDetailsKey       AutomationRulePropertyConditionSupportedProperty = "IncidentCustomDetailsKey"
	PropertyIncidentCustomDetailsValue     AutomationRulePropertyConditionSupportedProperty = "IncidentCustomDetailsValue"
	PropertyIncidentDescription            AutomationRulePropertyConditionSupportedProperty = "IncidentDescription"
	PropertyIncidentLabel                  AutomationRulePropertyConditionSupportedProperty = "IncidentLabel"
	PropertyIncidentProviderName           AutomationRulePropertyConditionSupportedProperty = "IncidentProviderName"
	PropertyIncidentRelatedAnalyticRuleIDs AutomationRulePropertyConditionSupportedProperty = "IncidentRelatedAnalyticRuleIds"
	PropertyIncidentSeverity               AutomationRulePropertyConditionSupportedProperty = "IncidentSeverity"
	PropertyIncidentStatus                 AutomationRulePropertyConditionSupportedProperty = "IncidentStatus"
	PropertyIncidentTactics                AutomationRulePropertyConditionSupportedProperty = "IncidentTactics"
	PropertyIncidentTitle                  AutomationRulePropertyConditionSupportedProperty = "IncidentTitle"
	PropertyIncidentUpdatedBySource        AutomationRulePropertyConditionSupportedProperty = "IncidentUpdatedBySource"
	PropertyIoTDeviceID                    AutomationRulePropertyConditionSupportedProperty = "IoTDeviceId"
	PropertyIoTDeviceModel                 AutomationRulePropertyConditionSupportedProperty = "IoTDeviceModel"
	PropertyIoTDeviceName                  AutomationRulePropertyConditionSupportedProperty = "IoTDeviceName"
	PropertyIoTDeviceOperatingSystem       AutomationRulePropertyConditionSupportedProperty = "IoTDeviceOperatingSystem"
	PropertyIoTDeviceType                  AutomationRulePropertyConditionSupportedProperty = "IoTDeviceType"
	PropertyIoTDeviceVendor                AutomationRulePropertyConditionSupportedProperty = "IoTDeviceVendor"
	PropertyIPAddress                      AutomationRulePropertyConditionSupportedProperty = "IPAddress"
	PropertyMailboxDisplayName             AutomationRulePropertyConditionSupportedProperty = "MailboxDisplayName"
	PropertyMailboxPrimaryAddress          AutomationRulePropertyConditionSupportedProperty = "MailboxPrimaryAddress"
	PropertyMailboxUPN                     AutomationRulePropertyConditionSupportedProperty = "MailboxUPN"
	PropertyMailMessageDeliveryAction      AutomationRulePropertyConditionSupportedProperty = "MailMessageDeliveryAction"
	PropertyMailMessageDeliveryLocation    AutomationRulePropertyConditionSupportedProperty = "MailMessageDeliveryLocation"
	PropertyMailMessageP1Sender            AutomationRulePropertyConditionSupportedProperty = "MailMessageP1Sender"
	PropertyMailMessageP2Sender            AutomationRulePropertyConditionSupportedProperty = "MailMessageP2Sender"
	PropertyMailMessageRecipient           AutomationRulePropertyConditionSupportedProperty = "MailMessageRecipient"
	PropertyMailMessageSenderIP            AutomationRulePropertyConditionSupportedProperty = "MailMessageSenderIP"
	PropertyMailMessageSubject             AutomationRulePropertyConditionSupportedProperty = "MailMessageSubject"
	PropertyMalwareCategory                AutomationRulePropertyConditionSupportedProperty = "MalwareCategory"
	PropertyMalwareName                    AutomationRulePropertyConditionSupportedProperty = "MalwareName"
	PropertyProcessCommandLine             AutomationRulePropertyConditionSupportedProperty = "ProcessCommandLine"
	PropertyProcessID                      AutomationRulePropertyConditionSupportedProperty = "ProcessId"
	PropertyRegistryKey                    AutomationRulePropertyConditionSupportedProperty = "RegistryKey"
	PropertyRegistryValueData              AutomationRulePropertyConditionSupportedProperty = "RegistryValueData"
	PropertyURL                            AutomationRulePropertyConditionSupportedProperty = "Url"
)

var conditionProperties = openenum.New("AutomationRulePropertyConditionSupportedProperty",
	PropertyIncidentTitle,
	PropertyIncidentDescription,
	PropertyIncidentSeverity,
	PropertyIncidentStatus,
	PropertyIncidentRelatedAnalyticRuleIDs,
	PropertyIncidentTactics,
	PropertyIncidentLabel,
	PropertyIncidentProviderName,
	PropertyIncidentUpdatedBySource,
	PropertyIncidentCustomDetailsKey,
	PropertyIncidentCustomDetailsValue,
	PropertyAccountAadTenantID,
	PropertyAccountAadUserID,
	PropertyAccountName,
	PropertyAccountNTDomain,
	PropertyAccountPUID,
	PropertyAccountSid,
	PropertyAccountObjectGUID,
	PropertyAccountUPNSuffix,
	PropertyAlertProductNames,
	PropertyAzureResourceResourceID,
	PropertyAzureResourceSubscriptionID,
	PropertyCloudApplicationAppID,
	PropertyCloudApplicationAppName,
	PropertyDNSDomainName,
	PropertyFileDirectory,
	PropertyFileName,
	PropertyFileHashValue,
	PropertyHostAzureID,
	PropertyHostName,
	PropertyHostNetBiosName,
	PropertyHostNTDomain,
	PropertyHostOSVersion,
	PropertyIoTDeviceID,
	PropertyIoTDeviceName,
	PropertyIoTDeviceType,
	PropertyIoTDeviceVendor,
	PropertyIoTDeviceModel,
	PropertyIoTDeviceOperatingSystem,
	PropertyIPAddress,
	PropertyMailboxDisplayName,
	PropertyMailboxPrimaryAddress,
	PropertyMailboxUPN,
	PropertyMailMessageDeliveryAction,
	PropertyMailMessageDeliveryLocation,
	PropertyMailMessageRecipient,
	PropertyMailMessageSenderIP,
	PropertyMailMessageSubject,
	PropertyMailMessageP1Sender,
	PropertyMailMessageP2Sender,
	PropertyMalwareCategory,
	PropertyMalwareName,
	PropertyProcessCommandLine,
	PropertyProcessID,
	PropertyRegistryKey,
	PropertyRegistryValueData,
	PropertyURL,
)

func PossibleAutomationRulePropertyConditionSupportedPropertyValues() []AutomationRulePropertyConditionSupportedProperty {
	return conditionProperties.Values()
}
func (v AutomationRulePropertyConditionSupportedProperty) IsKnown() bool {
	return conditionProperties.IsKnown(v)
}

// AutomationRulePropertyChangedSupportedPropertyType is an incident property
// whose change can fire an automation rule.
type AutomationRulePropertyChangedSupportedPropertyType string

const (
	ChangedPropertyIncidentOwner    AutomationRulePropertyChangedSupportedPropertyType = "IncidentOwner"
	ChangedPropertyIncidentSeverity AutomationRulePropertyChangedSupportedPropertyType = "IncidentSeverity"
	ChangedPropertyIncidentStatus   AutomationRulePropertyChangedSupportedPropertyType = "IncidentStatus"
)

var changedPropertyTypes = openenum.New("AutomationRulePropertyChangedSupportedPropertyType",
	ChangedPropertyIncidentSeverity,
	ChangedPropertyIncidentStatus,
	ChangedPropertyIncidentOwner,
)

func PossibleAutomationRulePropertyChangedSupportedPropertyTypeValues() []AutomationRulePropertyChangedSupportedPropertyType {
	return changedPropertyTypes.Values()
}
func (v AutomationRulePropertyChangedSupportedPropertyType) IsKnown() bool {
	return changedPropertyTypes.IsKnown(v)
}

// AutomationRulePropertyChangedConditionSupportedChangedType selects the old
// or the new value of a changed property.
type AutomationRulePropertyChangedConditionSupportedChangedType string

const (
	ChangedTypeChangedFrom AutomationRulePropertyChangedConditionSupportedChangedType = "ChangedFrom"
	ChangedTypeChangedTo   AutomationRulePropertyChangedConditionSupportedChangedType = "ChangedTo"
)

var changedTypes = openenum.New("AutomationRulePropertyChangedConditionSupportedChangedType",
	ChangedTypeChangedFrom,
	ChangedTypeChangedTo,
)

func PossibleAutomationRulePropertyChangedConditionSupportedChangedTypeValues() []AutomationRulePropertyChangedConditionSupportedChangedType {
	return changedTypes.Values()
}
func (v AutomationRulePropertyChangedConditionSupportedChangedType) IsKnown() bool {
	return changedTypes.IsKnown(v)
}

// AutomationRulePropertyArrayChangedSupportedArrayType is an incident
// collection whose change can fire an automation rule.
type AutomationRulePropertyArrayChangedSupportedArrayType string

const (
	ArrayTypeAlerts   AutomationRulePropertyArrayChangedSupportedArrayType = "Alerts"
	ArrayTypeComments AutomationRulePropertyArrayChangedSupportedArrayType = "Comments"
	ArrayTypeLabels   AutomationRulePropertyArrayChangedSupportedArrayType = "Labels"
	ArrayTypeTactics  AutomationRulePropertyArrayChangedSupportedArrayType = "Tactics"
)

var arrayTypes = openenum.New("AutomationRulePropertyArrayChangedSupportedArrayType",
	ArrayTypeAlerts,
	ArrayTypeLabels,
	ArrayTypeTactics,
	ArrayTypeComments,
)

func PossibleAutomationRulePropertyArrayChangedSupportedArrayTypeValues() []AutomationRulePropertyArrayChangedSupportedArrayType {
	return arrayTypes.Values()
}
func (v AutomationRulePropertyArrayChangedSupportedArrayType) IsKnown() bool {
	return arrayTypes.IsKnown(v)
}

// AutomationRulePropertyArrayChangedSupportedChangeType is the kind of change
// to an incident collection.
type AutomationRulePropertyArrayChangedSupportedChangeType string

const (
	ArrayChangeTypeAdded AutomationRulePropertyArrayChangedSupportedChangeType = "Added"
)

var arrayChangeTypes = openenum.New("AutomationRulePropertyArrayChangedSupportedChangeType", ArrayChangeTypeAdded)

func PossibleAutomationRulePropertyArrayChangedSupportedChangeTypeValues() []AutomationRulePropertyArrayChangedSupportedChangeType {
	return arrayChangeTypes.Values()
}
func (v AutomationRulePropertyArrayChangedSupportedChangeType) IsKnown() bool {
	return arrayChangeTypes.IsKnown(v)
}

// IncidentSeverity is the severity of an incident.
type IncidentSeverity string

const (
	IncidentSeverityHigh          IncidentSeverity = "High"
	IncidentSeverityInformational IncidentSeverity = "Informational"
	IncidentSeverityLow           IncidentSeverity = "Low"
	IncidentSeverityMedium        IncidentSeverity = "Medium"
)

var incidentSeverities = openenum.New("IncidentSeverity",
	IncidentSeverityHigh,
	IncidentSeverityMedium,
	IncidentSeverityLow,
	IncidentSeverityInformational,
)

func PossibleIncidentSeverityValues() []IncidentSeverity { return incidentSeverities.Values() }
func (v IncidentSeverity) IsKnown() bool                { return incidentSeverities.IsKnown(v) }

// IncidentStatus is the triage status of an incident.
type IncidentStatus string

const (
	IncidentStatusActive IncidentStatus = "Active"
	IncidentStatusClosed IncidentStatus = "Closed"
	IncidentStatusNew    IncidentStatus = "New"
)

var incidentStatuses = openenum.New("IncidentStatus",
	IncidentStatusNew,
	IncidentStatusActive,
	IncidentStatusClosed,
)

func PossibleIncidentStatusValues() []IncidentStatus { return incidentStatuses.Values() }
func (v IncidentStatus) IsKnown() bool              { return incidentStatuses.IsKnown(v) }

// IncidentClassification is the verdict recorded when an incident is closed.
type IncidentClassification string

const (
	IncidentClassificationBenignPositive IncidentClassification = "BenignPositive"
	IncidentClassificationFalsePositive  IncidentClassification = "FalsePositive"
	IncidentClassificationTruePositive   IncidentClassification = "TruePositive"
	IncidentClassificationUndetermined   IncidentClassification = "Undetermined"
)

var incidentClassifications = openenum.New("IncidentClassification",
	IncidentClassificationUndetermined,
	IncidentClassificationTruePositive,
	IncidentClassificationBenignPositive,
	IncidentClassificationFalsePositive,
)

func PossibleIncidentClassificationValues() []IncidentClassification {
	return incidentClassifications.Values()
}
func (v IncidentClassification) IsKnown() bool { return incidentClassifications.IsKnown(v) }

// IncidentClassificationReason refines an incident classification.
type IncidentClassificationReason string

const (
	IncidentClassificationReasonInaccurateData        IncidentClassificationReason = "InaccurateData"
	IncidentClassificationReasonIncorrectAlertLogic   IncidentClassificationReason = "IncorrectAlertLogic"
	IncidentClassificationReasonSuspiciousActivity    IncidentClassificationReason = "SuspiciousActivity"
	IncidentClassificationReasonSuspiciousButExpected IncidentClassificationReason = "SuspiciousButExpected"
)

var classificationReasons = openenum.New("IncidentClassificationReason",
	IncidentClassificationReasonSuspiciousActivity,
	IncidentClassificationReasonSuspiciousButExpected,
	IncidentClassificationReasonIncorrectAlertLogic,
	IncidentClassificationReasonInaccurateData,
)

func PossibleIncidentClassificationReasonValues() []IncidentClassificationReason {
	return classificationReasons.Values()
}
func (v IncidentClassificationReason) IsKnown() bool { return classificationReasons.IsKnown(v) }

// IncidentLabelType is who applied a label.
type IncidentLabelType string

const (
	IncidentLabelTypeAutoAssigned IncidentLabelType = "AutoAssigned"
	IncidentLabelTypeUser         IncidentLabelType = "User"
)

var labelTypes = openenum.New("IncidentLabelType", IncidentLabelTypeUser, IncidentLabelTypeAutoAssigned)

func PossibleIncidentLabelTypeValues() []IncidentLabelType { return labelTypes.Values() }
func (v IncidentLabelType) IsKnown() bool                 { return labelTypes.IsKnown(v) }

// OwnerType is the kind of principal an incident is assigned to.
type OwnerType string

const (
	OwnerTypeGroup   OwnerType = "Group"
	OwnerTypeUnknown OwnerType = "Unknown"
	OwnerTypeUser    OwnerType = "User"
)

var ownerTypes = openenum.New("OwnerType", OwnerTypeUnknown, OwnerTypeUser, OwnerTypeGroup)

func PossibleOwnerTypeValues() []OwnerType { return ownerTypes.Values() }
func (v OwnerType) IsKnown() bool         { return ownerTypes.IsKnown(v) }

// SettingKind is the discriminator of workspace settings.
type SettingKind string

const (
	SettingKindAnomalies       SettingKind = "Anomalies"
	SettingKindEntityAnalytics SettingKind = "EntityAnalytics"
	SettingKindEyesOn          SettingKind = "EyesOn"
	SettingKindUeba            SettingKind = "Ueba"
)

var settingKinds = openenum.New("SettingKind",
	SettingKindAnomalies,
	SettingKindEyesOn,
	SettingKindEntityAnalytics,
	SettingKindUeba,
)

func PossibleSettingKindValues() []SettingKind { return settingKinds.Values() }
func (v SettingKind) IsKnown() bool           { return settingKinds.IsKnown(v) }

// EntityProviders is a directory that entity analytics syncs from.
type EntityProviders string

const (
	EntityProvidersActiveDirectory      EntityProviders = "ActiveDirectory"
	EntityProvidersAzureActiveDirectory EntityProviders = "AzureActiveDirectory"
)

var entityProviders = openenum.New("EntityProviders",
	EntityProvidersActiveDirectory,
	EntityProvidersAzureActiveDirectory,
)

func PossibleEntityProvidersValues() []EntityProviders { return entityProviders.Values() }
func (v EntityProviders) IsKnown() bool               { return entityProviders.IsKnown(v) }

// UebaDataSources is a log source used by user and entity behavior analytics.
type UebaDataSources string

const (
	UebaDataSourcesAuditLogs     UebaDataSources = "AuditLogs"
	UebaDataSourcesAzureActivity UebaDataSources = "AzureActivity"
	UebaDataSourcesSecurityEvent UebaDataSources = "SecurityEvent"
	UebaDataSourcesSigninLogs    UebaDataSources = "SigninLogs"
)

var uebaDataSources = openenum.New("UebaDataSources",
	UebaDataSourcesAuditLogs,
	UebaDataSourcesAzureActivity,
	UebaDataSourcesSecurityEvent,
	UebaDataSourcesSigninLogs,
)

func PossibleUebaDataSourcesValues() []UebaDataSources { return uebaDataSources.Values() }
func (v UebaDataSources) IsKnown() bool               { return uebaDataSources.IsKnown(v) }

// SourceType is where watchlist content was uploaded from.
type SourceType string

const (
	SourceTypeLocalFile     SourceType = "Local file"
	SourceTypeRemoteStorage SourceType = "Remote storage"
)

var sourceTypes = openenum.New("SourceType", SourceTypeLocalFile, SourceTypeRemoteStorage)

func PossibleSourceTypeValues() []SourceType { return sourceTypes.Values() }
func (v SourceType) IsKnown() bool          { return sourceTypes.IsKnown(v) }

// Enums returns every open enum declared by this package.
func Enums() *openenum.Set {
	return openenum.NewSet(
		alertRuleKinds,
		alertSeverities,
		attackTactics,
		triggerOperators,
		aggregationKinds,
		alertDetails,
		entityMappingTypes,
		matchingMethods,
		productNames,
		templateStatuses,
		dataConnectorKinds,
		dataTypeStates,
		triggersOn,
		triggersWhen,
		actionTypes,
		conditionTypes,
		conditionOperators,
		conditionProperties,
		changedPropertyTypes,
		changedTypes,
		arrayTypes,
		arrayChangeTypes,
		incidentSeverities,
		incidentStatuses,
		incidentClassifications,
		classificationReasons,
		labelTypes,
		ownerTypes,
		settingKinds,
		entityProviders,
		uebaDataSources,
		sourceTypes,
	)
}
