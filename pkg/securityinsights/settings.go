package securityinsights

import "github.com/rzbill/armkit/pkg/arm"

// Setting is a workspace-level Sentinel setting. The concrete type is
// selected by the "kind" field and dispatch is closed.
type Setting interface {
	Kind() SettingKind
	GetResourceWithEtag() *arm.ResourceWithEtag
}

var settings = arm.NewUnion("Setting", "kind", map[string]func() Setting{
	string(SettingKindAnomalies):       func() Setting { return &Anomalies{} },
	string(SettingKindEyesOn):          func() Setting { return &EyesOn{} },
	string(SettingKindEntityAnalytics): func() Setting { return &EntityAnalytics{} },
	string(SettingKindUeba):            func() Setting { return &Ueba{} },
})

// UnmarshalSetting decodes one setting of any registered kind.
func UnmarshalSetting(data []byte) (Setting, error) {
	return settings.Decode(data)
}

// SettingList holds every setting of a workspace. It is not paginated.
type SettingList struct {
	arm.List[Setting]
}

func (l *SettingList) UnmarshalJSON(data []byte) error {
	list, err := arm.DecodeUnionList(data, settings)
	if err != nil {
		return err
	}
	l.List = list
	return nil
}

func (l *SettingList) Validate() error {
	return arm.CheckRequired("SettingList", arm.ReqSlice("value", l.Value))
}

// ToggleSettingProperties is the state of an on/off setting. IsEnabled is
// read-only.
type ToggleSettingProperties struct {
	IsEnabled *bool `json:"isEnabled,omitempty"`
}

// Anomalies turns anomaly detection on or off.
type Anomalies struct {
	arm.ResourceWithEtag
	Properties *ToggleSettingProperties `json:"properties,omitempty"`
}

func (s *Anomalies) Kind() SettingKind { return SettingKindAnomalies }

func (s *Anomalies) MarshalJSON() ([]byte, error) {
	type alias Anomalies
	return arm.MarshalTagged("kind", string(s.Kind()), (*alias)(s))
}

func (s *Anomalies) UnmarshalJSON(data []byte) error {
	type alias Anomalies
	return arm.UnmarshalTagged(data, "kind", string(s.Kind()), "Anomalies", (*alias)(s))
}

// EyesOn lets Microsoft security researchers review the workspace's data.
type EyesOn struct {
	arm.ResourceWithEtag
	Properties *ToggleSettingProperties `json:"properties,omitempty"`
}

func (s *EyesOn) Kind() SettingKind { return SettingKindEyesOn }

func (s *EyesOn) MarshalJSON() ([]byte, error) {
	type alias EyesOn
	return arm.MarshalTagged("kind", string(s.Kind()), (*alias)(s))
}

func (s *EyesOn) UnmarshalJSON(data []byte) error {
	type alias EyesOn
	return arm.UnmarshalTagged(data, "kind", string(s.Kind()), "EyesOn", (*alias)(s))
}

// EntityAnalytics configures the directories entities are synced from.
type EntityAnalytics struct {
	arm.ResourceWithEtag
	Properties *EntityAnalyticsProperties `json:"properties,omitempty"`
}

// EntityAnalyticsProperties lists the entity providers.
type EntityAnalyticsProperties struct {
	EntityProviders []EntityProviders `json:"entityProviders,omitzero"`
}

func (s *EntityAnalytics) Kind() SettingKind { return SettingKindEntityAnalytics }

func (s *EntityAnalytics) MarshalJSON() ([]byte, error) {
	type alias EntityAnalytics
	return arm.MarshalTagged("kind", string(s.Kind()), (*alias)(s))
}

func (s *EntityAnalytics) UnmarshalJSON(data []byte) error {
	type alias EntityAnalytics
	return arm.UnmarshalTagged(data, "kind", string(s.Kind()), "EntityAnalytics", (*alias)(s))
}

// Ueba configures user and entity behavior analytics.
type Ueba struct {
	arm.ResourceWithEtag
	Properties *UebaProperties `json:"properties,omitempty"`
}

// UebaProperties lists the UEBA data sources.
type UebaProperties struct {
	DataSources []UebaDataSources `json:"dataSources,omitzero"`
}

func (s *Ueba) Kind() SettingKind { return SettingKindUeba }

func (s *Ueba) MarshalJSON() ([]byte, error) {
	type alias Ueba
	return arm.MarshalTagged("kind", string(s.Kind()), (*alias)(s))
}

func (s *Ueba) UnmarshalJSON(data []byte) error {
	type alias Ueba
	return arm.UnmarshalTagged(data, "kind", string(s.Kind()), "Ueba", (*alias)(s))
}
