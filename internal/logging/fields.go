package logging

import "go.uber.org/zap"

// Field aliases zap.Field so callers do not import zap directly.
type Field = zap.Field

// String constructs a string field.
func String(key, value string) Field { return zap.String(key, value) }

// Int constructs an int field.
func Int(key string, value int) Field { return zap.Int(key, value) }

// Int64 constructs an int64 field.
func Int64(key string, value int64) Field { return zap.Int64(key, value) }

// Float64 constructs a float64 field.
func Float64(key string, value float64) Field { return zap.Float64(key, value) }

// Bool constructs a bool field.
func Bool(key string, value bool) Field { return zap.Bool(key, value) }

// Strings constructs a string slice field.
func Strings(key string, value []string) Field { return zap.Strings(key, value) }

// Err constructs an error field.
func Err(err error) Field { return zap.Error(err) }
