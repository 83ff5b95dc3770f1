package binder

import "github.com/dmitrymomot/bindkit/config"

// Config controls how a binder treats the target instance. Configs are
// passed by value and must never be mutated by a binder.
type Config struct {
	// OverwriteExisting allows binding to replace non-zero fields of an
	// existing instance. When false, only zero-valued fields are filled.
	OverwriteExisting bool

	// IgnoreErrors skips request values that cannot be converted to the
	// field type instead of failing the whole bind.
	IgnoreErrors bool
}

// Default is the configuration used when a bind call supplies none.
var Default = Config{OverwriteExisting: true}

// Options carries the per-call binding parameters handed to a Binder.
type Options struct {
	Config Config

	// Blacklist lists Go field names that must be neither read from
	// request data nor written into the model. Names that do not match
	// any field on the target type are ignored.
	Blacklist []string
}

// excluded reports whether the field name is blacklisted.
func (o Options) excluded(fieldName string) bool {
	for _, name := range o.Blacklist {
		if name == fieldName {
			return true
		}
	}
	return false
}

// Limits bounds how much request data binders buffer in memory.
//
// Example:
//
//	BINDER_MAX_MULTIPART_MEMORY=52428800
//	BINDER_MAX_BODY_BYTES=2097152
type Limits struct {
	MaxMultipartMemory int64 `env:"BINDER_MAX_MULTIPART_MEMORY" envDefault:"10485760"`
	MaxBodyBytes       int64 `env:"BINDER_MAX_BODY_BYTES" envDefault:"1048576"`
}

// LoadLimits reads Limits from the environment. Values are cached after
// the first successful load; failures fall back to the defaults.
func LoadLimits() Limits {
	var l Limits
	if err := config.Load(&l); err != nil {
		return Limits{MaxMultipartMemory: DefaultMaxMemory, MaxBodyBytes: 1 << 20}
	}
	return l
}
