package log

// RedactionHook replaces the values of the named fields. Snapshot imports
// can carry secrets such as Logic App trigger URIs.
type RedactionHook struct {
	fields map[string]struct{}
}

func NewRedactionHook(fields []string) *RedactionHook {
	h := &RedactionHook{fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		h.fields[f] = struct{}{}
	}
	return h
}

func (h *RedactionHook) Fire(entry *Entry) error {
	for k := range entry.Fields {
		if _, ok := h.fields[k]; ok {
			entry.Fields[k] = "[REDACTED]"
		}
	}
	return nil
}
