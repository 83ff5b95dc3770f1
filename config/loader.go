package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu     sync.RWMutex
	loaded = make(map[string]any)
)

// Load parses environment variables into the provided struct based on
// `env` field tags. Each configuration type is parsed at most once per
// process; later calls for the same type receive the cached copy, so
// request-time callers pay only a map lookup.
//
// A .env file in the working directory is loaded once before the first
// parse; a missing file is not an error.
//
// Example:
//
//	type Limits struct {
//		MaxMultipartMemory int64 `env:"BINDER_MAX_MULTIPART_MEMORY" envDefault:"10485760"`
//		MaxBodyBytes       int64 `env:"BINDER_MAX_BODY_BYTES" envDefault:"1048576"`
//	}
//
//	var limits Limits
//	if err := config.Load(&limits); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	key := reflect.TypeOf((*T)(nil)).Elem().String()

	mu.RLock()
	cached, ok := loaded[key]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := loaded[key]; ok {
		// Another goroutine won the parse; keep its copy so every
		// caller observes the same values.
		*v = cached.(T)
		return nil
	}
	loaded[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
