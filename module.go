package bindkit

import (
	"io"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/bindkit/binder"
	"github.com/dmitrymomot/bindkit/logger"
	"github.com/dmitrymomot/bindkit/validator"
)

// DefaultLocator is the process-wide binder registry used by modules
// that do not supply their own. Custom binders registered here are
// visible to every module.
var DefaultLocator = binder.NewRegistry()

// Module ties a binder locator to one in-flight request. Request
// handlers create one per request and hand it to the typed bind
// functions. The module itself is read-only during binding; the only
// side effect of bind-and-validate is the validation result written
// through the context.
type Module struct {
	locator binder.Locator
	ctx     Context
	log     *slog.Logger
}

// ModuleOption configures a Module.
type ModuleOption func(*Module)

// WithLocator replaces the default binder locator.
func WithLocator(l binder.Locator) ModuleOption {
	return func(m *Module) {
		if l != nil {
			m.locator = l
		}
	}
}

// WithLogger attaches a logger; bind and validate emit Debug records.
func WithLogger(log *slog.Logger) ModuleOption {
	return func(m *Module) {
		if log != nil {
			m.log = log
		}
	}
}

// NewModule creates a Module for the given request context.
func NewModule(ctx Context, opts ...ModuleOption) *Module {
	m := &Module{
		locator: DefaultLocator,
		ctx:     ctx,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Context returns the per-request context the module binds against.
func (m *Module) Context() Context {
	return m.ctx
}

// Locator returns the module's binder locator.
func (m *Module) Locator() binder.Locator {
	return m.locator
}

// ValidationResult reads through to the context's validation-result
// slot, the single source of truth for the last validate call.
func (m *Module) ValidationResult() *ValidationResult {
	return m.ctx.ValidationResult()
}

// BindOption adjusts a single bind call.
type BindOption func(*bindSettings)

type bindSettings struct {
	cfg       binder.Config
	blacklist []string
}

// WithConfig supplies an explicit binding configuration. Without it the
// call uses binder.Default.
func WithConfig(cfg binder.Config) BindOption {
	return func(s *bindSettings) {
		s.cfg = cfg
	}
}

// Exclude blacklists fields by their Go field names. Names that match
// no field on the target type are ignored, so one call site can serve
// several model types.
func Exclude(names ...string) BindOption {
	return func(s *bindSettings) {
		s.blacklist = append(s.blacklist, names...)
	}
}

// ExcludeFields blacklists fields by typed reference instead of string:
//
//	bindkit.Bind[Person](m, bindkit.ExcludeFields(func(p *Person) []any {
//		return []any{&p.Age}
//	}))
//
// A reference that does not resolve to a field of T is a programmer
// error and panics at the call site.
func ExcludeFields[T any](sel func(*T) []any) BindOption {
	names := MustFieldNames(sel)
	return Exclude(names...)
}

// Bind constructs a new T populated from the request data available to
// the module. The returned instance is freshly allocated and owned by
// the caller.
func Bind[T any](m *Module, opts ...BindOption) (*T, error) {
	model := new(T)
	if err := bindModel(m, model, opts); err != nil {
		return nil, err
	}
	return model, nil
}

// BindTo binds into the caller-supplied instance and returns it with
// the same identity. The configuration's overwrite policy decides
// whether non-zero fields are replaced. A nil existing instance behaves
// like Bind.
func BindTo[T any](m *Module, existing *T, opts ...BindOption) (*T, error) {
	if existing == nil {
		existing = new(T)
	}
	if err := bindModel(m, existing, opts); err != nil {
		return nil, err
	}
	return existing, nil
}

// BindAndValidate performs exactly one bind followed by exactly one
// validate. The validation result is stored on the context; the bound
// model is returned even when it is invalid so callers can chain into
// further use and inspect the result afterward.
func BindAndValidate[T any](m *Module, opts ...BindOption) (*T, error) {
	model, err := Bind[T](m, opts...)
	if err != nil {
		return nil, err
	}
	m.Validate(model)
	return model, nil
}

// BindToAndValidate is BindAndValidate over a caller-supplied instance.
func BindToAndValidate[T any](m *Module, existing *T, opts ...BindOption) (*T, error) {
	model, err := BindTo(m, existing, opts...)
	if err != nil {
		return nil, err
	}
	m.Validate(model)
	return model, nil
}

// Validate runs the validator resolved for the model's type and stores
// the result on the context. Resolution order: a validator registered
// for the type, then the model's own Validate method. Models with
// neither are considered valid.
func (m *Module) Validate(model any) *ValidationResult {
	res := invokeValidator(model)
	m.ctx.SetValidationResult(res)
	m.log.DebugContext(m.ctx, "model validated",
		logger.Component("bindkit"),
		logger.Model(modelTypeName(model)),
		slog.Bool("valid", res.IsValid()),
		slog.Int("violations", len(res.Errors)),
	)
	return res
}

func bindModel[T any](m *Module, model *T, opts []BindOption) error {
	settings := bindSettings{cfg: binder.Default}
	for _, opt := range opts {
		opt(&settings)
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	r := m.ctx.Request()

	b, err := m.locator.Locate(t, r)
	if err != nil {
		m.log.DebugContext(m.ctx, "binder lookup failed",
			logger.Component("bindkit"),
			logger.Model(t.String()),
			logger.Error(err),
		)
		return err
	}

	if err := b.Bind(r, model, binder.Options{
		Config:    settings.cfg,
		Blacklist: settings.blacklist,
	}); err != nil {
		m.log.DebugContext(m.ctx, "bind failed",
			logger.Component("bindkit"),
			logger.Model(t.String()),
			logger.Error(err),
		)
		return err
	}

	m.log.DebugContext(m.ctx, "model bound",
		logger.Component("bindkit"),
		logger.Model(t.String()),
		slog.Int("excluded", len(settings.blacklist)),
	)
	return nil
}

func modelTypeName(model any) string {
	t := reflect.TypeOf(model)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}

// invokeValidator resolves and runs validation for the model. The model
// arrives as a pointer; registered validators receive the value.
func invokeValidator(model any) *ValidationResult {
	t := reflect.TypeOf(model)
	v := reflect.ValueOf(model)
	if t != nil && t.Kind() == reflect.Ptr && !v.IsNil() {
		t = t.Elem()
		v = v.Elem()
	}
	if t == nil {
		return &ValidationResult{}
	}

	if fn, ok := validator.For(t); ok {
		return newValidationResult(fn(v.Interface()))
	}
	if va, ok := model.(validator.Validatable); ok {
		return newValidationResult(va.Validate())
	}
	return &ValidationResult{}
}
