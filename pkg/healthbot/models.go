// Package healthbot contains the data model of the Microsoft.HealthBot
// resource provider.
package healthbot

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/rzbill/armkit/pkg/arm"
)

const (
	// ProviderNamespace is the resource provider namespace.
	ProviderNamespace = "Microsoft.HealthBot"

	// ResourceType is the ARM type of a Health Bot.
	ResourceType = ProviderNamespace + "/healthBots"

	// APIVersion is the REST API version these models follow.
	APIVersion = "2024-02-01"
)

// HealthBot is a tracked Health Bot resource.
type HealthBot struct {
	arm.TrackedResource

	// Sku is the pricing tier. Required.
	Sku *Sku `json:"sku,omitempty"`

	// Identity is the managed identity of the bot.
	Identity *Identity `json:"identity,omitempty"`

	// Properties holds the bot's settings.
	Properties *Properties `json:"properties,omitempty"`
}

// NewHealthBot returns a bot ready to be sent in a create request.
func NewHealthBot(location string, sku SkuName) *HealthBot {
	return &HealthBot{
		TrackedResource: arm.TrackedResource{Location: to.Ptr(location)},
		Sku:             &Sku{Name: to.Ptr(sku)},
	}
}

// Validate checks required fields, including the nested ones.
func (h *HealthBot) Validate() error {
	if h == nil {
		return nil
	}
	err := arm.CheckRequired("HealthBot",
		arm.Req("location", h.Location),
		arm.Req("sku", h.Sku),
	)
	if err != nil {
		return err
	}
	if err := arm.Nested("sku", h.Sku); err != nil {
		return err
	}
	return arm.Nested("properties", h.Properties)
}

// Properties are the settings of a Health Bot.
type Properties struct {
	// AccessControlMethod is how access to the bot is controlled. Read-only.
	AccessControlMethod *string `json:"accessControlMethod,omitempty"`

	// BotManagementPortalLink is the link to the management portal. Read-only.
	BotManagementPortalLink *string `json:"botManagementPortalLink,omitempty"`

	// KeyVaultProperties configures customer-managed key encryption.
	KeyVaultProperties *KeyVaultProperties `json:"keyVaultProperties,omitempty"`

	// ProvisioningState is the provisioning state of the bot. Read-only.
	ProvisioningState *string `json:"provisioningState,omitempty"`
}

func (p *Properties) Validate() error {
	if p == nil {
		return nil
	}
	return arm.Nested("keyVaultProperties", p.KeyVaultProperties)
}

// KeyVaultProperties points at the customer-managed key.
type KeyVaultProperties struct {
	KeyName     *string `json:"keyName,omitempty"`
	KeyVaultURI *string `json:"keyVaultUri,omitempty"`
	KeyVersion  *string `json:"keyVersion,omitempty"`

	// UserIdentity is the user-assigned identity used to reach the vault.
	UserIdentity *string `json:"userIdentity,omitempty"`
}

func (k *KeyVaultProperties) Validate() error {
	if k == nil {
		return nil
	}
	return arm.CheckRequired("KeyVaultProperties",
		arm.Req("keyName", k.KeyName),
		arm.Req("keyVaultUri", k.KeyVaultURI),
	)
}

// Sku is the pricing tier wrapper.
type Sku struct {
	Name *SkuName `json:"name,omitempty"`
}

func (s *Sku) Validate() error {
	if s == nil {
		return nil
	}
	return arm.CheckRequired("Sku", arm.Req("name", s.Name))
}

// Identity is the managed identity configuration of a bot.
type Identity struct {
	// PrincipalID is the service principal of the system identity. Read-only.
	PrincipalID *string `json:"principalId,omitempty"`

	// TenantID is the tenant of the system identity. Read-only.
	TenantID *string `json:"tenantId,omitempty"`

	Type *ResourceIdentityType `json:"type,omitempty"`

	// UserAssignedIdentities is keyed by the identities' ARM resource IDs.
	UserAssignedIdentities map[string]*UserAssignedIdentity `json:"userAssignedIdentities,omitzero"`
}

// UserAssignedIdentity is one user-assigned identity. Both fields are read-only.
type UserAssignedIdentity struct {
	ClientID    *string `json:"clientId,omitempty"`
	PrincipalID *string `json:"principalId,omitempty"`
}

// UpdateParameters is the PATCH body of a bot.
type UpdateParameters struct {
	Identity   *Identity         `json:"identity,omitempty"`
	Location   *string           `json:"location,omitempty"`
	Properties *Properties       `json:"properties,omitempty"`
	Sku        *Sku              `json:"sku,omitempty"`
	Tags       map[string]string `json:"tags,omitzero"`
}

func (u *UpdateParameters) Validate() error {
	if u == nil {
		return nil
	}
	if err := arm.Nested("sku", u.Sku); err != nil {
		return err
	}
	return arm.Nested("properties", u.Properties)
}

// BotResponseList is one page of bots.
type BotResponseList = arm.Page[*HealthBot]

// KeysResponse holds the bot's secrets.
type KeysResponse struct {
	Secrets []*Key `json:"secrets,omitzero"`
}

// Key is one named secret.
type Key struct {
	KeyName *string `json:"keyName,omitempty"`
	Value   *string `json:"value,omitempty"`
}

// ValidationResult is the outcome of a bot validation.
type ValidationResult struct {
	Status *string `json:"status,omitempty"`
}

// OperationDetail is a provider operation as the Health Bot API reports it.
type OperationDetail struct {
	Display      *arm.OperationDisplay `json:"display,omitempty"`
	IsDataAction *bool                 `json:"isDataAction,omitempty"`
	Name         *string               `json:"name,omitempty"`
	Origin       *string               `json:"origin,omitempty"`
	Properties   any                   `json:"properties,omitempty"`
}

// AvailableOperations is one page of provider operations.
type AvailableOperations = arm.Page[*OperationDetail]
