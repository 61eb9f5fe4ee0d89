package log

import "time"

// Field is one structured key/value pair of an entry.
type Field struct {
	Key   string
	Value interface{}
}

// Err records err under the "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: ErrorKey, Value: nil}
	}
	return Field{Key: ErrorKey, Value: err.Error()}
}

func Str(key, value string) Field                   { return Field{Key: key, Value: value} }
func Int(key string, value int) Field               { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field           { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field             { return Field{Key: key, Value: value} }
func Time(key string, value time.Time) Field        { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }
func Any(key string, value interface{}) Field       { return Field{Key: key, Value: value} }

// Component tags an entry with the subsystem that produced it.
func Component(value string) Field {
	return Field{Key: ComponentKey, Value: value}
}

// Resource tags an entry with an ARM resource ID.
func Resource(id string) Field {
	return Field{Key: ResourceKey, Value: id}
}
