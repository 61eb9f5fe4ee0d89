package store

import (
	"fmt"
	"strings"

	azarm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

const (
	resourcePrefix = "res|"
	versionPrefix  = "ver|"
)

// ResourceTypeOf returns the ARM resource type named by id, such as
// "Microsoft.SecurityInsights/incidents/comments".
func ResourceTypeOf(id string) (string, error) {
	if id == "" {
		return "", ErrMissingID
	}
	rid, err := azarm.ParseResourceID(id)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	return rid.ResourceType.String(), nil
}

// MakeKey returns the storage key of the resource id:
// res|<lowercased type>|<lowercased id>.
func MakeKey(id string) ([]byte, error) {
	rt, err := ResourceTypeOf(id)
	if err != nil {
		return nil, err
	}
	return []byte(resourcePrefix + strings.ToLower(rt) + "|" + strings.ToLower(id)), nil
}

// MakePrefix returns the key prefix of every resource of resourceType, or of
// every resource when resourceType is empty.
func MakePrefix(resourceType string) []byte {
	if resourceType == "" {
		return []byte(resourcePrefix)
	}
	return []byte(resourcePrefix + strings.ToLower(resourceType) + "|")
}

// MakeVersionPrefix returns the key prefix of every snapshot of id given its
// resource key.
func MakeVersionPrefix(key []byte) []byte {
	return []byte(versionPrefix + strings.TrimPrefix(string(key), resourcePrefix) + "|")
}

// MakeVersionKey returns the key of one snapshot. seq sorts lexically in
// numeric order.
func MakeVersionKey(key []byte, seq int64) []byte {
	return append(MakeVersionPrefix(key), fmt.Sprintf("%020d", seq)...)
}

// ParseKey splits a resource key into its lowercased type and id.
func ParseKey(key []byte) (resourceType, id string, ok bool) {
	s, found := strings.CutPrefix(string(key), resourcePrefix)
	if !found {
		return "", "", false
	}
	resourceType, id, ok = strings.Cut(s, "|")
	return resourceType, id, ok
}
