package arm

import (
	"fmt"
)

// ErrorResponse is the common ARM error body.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorDetail describes a service-side failure. It implements error so it
// can be returned directly by a transport layer.
type ErrorDetail struct {
	AdditionalInfo []*ErrorAdditionalInfo `json:"additionalInfo,omitzero" yaml:"additionalInfo,omitempty"`
	Code           *string                `json:"code,omitempty" yaml:"code,omitempty"`
	Details        []*ErrorDetail         `json:"details,omitzero" yaml:"details,omitempty"`
	Message        *string                `json:"message,omitempty" yaml:"message,omitempty"`
	Target         *string                `json:"target,omitempty" yaml:"target,omitempty"`
}

// ErrorAdditionalInfo carries service-specific error context.
type ErrorAdditionalInfo struct {
	Info any     `json:"info,omitempty" yaml:"info,omitempty"`
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Error returns "code: message", falling back to whichever part is present.
func (e *ErrorDetail) Error() string {
	code, msg := deref(e.Code), deref(e.Message)
	switch {
	case code != "" && msg != "":
		return fmt.Sprintf("%s: %s", code, msg)
	case code != "":
		return code
	case msg != "":
		return msg
	default:
		return "unknown service error"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
