package cerialize

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/strcase"
)

// Mapper runs serialization against one registry with its own key
// transforms and default instantiation method. A Mapper is safe for
// concurrent use.
type Mapper struct {
	registry *metadata.Registry
	logger   *zap.Logger
	members  sync.Map // memberKey -> []int

	mu              sync.RWMutex
	serializeKeys   func(string) string
	deserializeKeys func(string) string
	method          metadata.InstantiationMethod
}

type Option func(*Mapper)

// WithRegistry makes the mapper read declarations from reg instead of the
// process-wide registry.
func WithRegistry(reg *metadata.Registry) Option {
	return func(m *Mapper) {
		if reg != nil {
			m.registry = reg
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithSerializeKeyTransform(fn func(string) string) Option {
	return func(m *Mapper) { m.serializeKeys = orNoOp(fn) }
}

func WithDeserializeKeyTransform(fn func(string) string) Option {
	return func(m *Mapper) { m.deserializeKeys = orNoOp(fn) }
}

func WithInstantiationMethod(method metadata.InstantiationMethod) Option {
	return func(m *Mapper) { m.method = method.Or(metadata.New) }
}

func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		registry:        metadata.DefaultRegistry(),
		logger:          zap.NewNop(),
		serializeKeys:   strcase.NoOp,
		deserializeKeys: strcase.NoOp,
		method:          metadata.New,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

var defaultMapper = NewMapper()

// Default returns the mapper used by the package-level functions. It reads
// metadata.DefaultRegistry().
func Default() *Mapper {
	return defaultMapper
}

func (m *Mapper) Registry() *metadata.Registry {
	return m.registry
}

func (m *Mapper) Logger() *zap.Logger {
	return m.logger
}

// SetSerializeKeyTransform installs the rename applied to member names that
// were not given an explicit wire key. nil resets it to the identity.
func (m *Mapper) SetSerializeKeyTransform(fn func(string) string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.serializeKeys = orNoOp(fn)
}

// SetDeserializeKeyTransform is SetSerializeKeyTransform for reading.
func (m *Mapper) SetDeserializeKeyTransform(fn func(string) string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deserializeKeys = orNoOp(fn)
}

// SetDefaultInstantiationMethod changes the method used when callers pass
// metadata.Default. Default or an invalid method resets it to New.
func (m *Mapper) SetDefaultInstantiationMethod(method metadata.InstantiationMethod) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.method = method.Or(metadata.New)
}

// DefaultInstantiationMethod returns the configured default method.
func (m *Mapper) DefaultInstantiationMethod() metadata.InstantiationMethod {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.method
}

// session snapshots the configuration for one top-level call.
func (m *Mapper) session(method metadata.InstantiationMethod) *session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &session{
		mapper:          m,
		reg:             m.registry,
		logger:          m.logger,
		serializeKeys:   m.serializeKeys,
		deserializeKeys: m.deserializeKeys,
		method:          method.Or(m.method),
	}
}

type memberKey struct {
	t    reflect.Type
	name string
}

func orNoOp(fn func(string) string) func(string) string {
	if fn == nil {
		return strcase.NoOp
	}

	return fn
}

// SetSerializeKeyTransform sets the serialize key transform of Default().
func SetSerializeKeyTransform(fn func(string) string) {
	defaultMapper.SetSerializeKeyTransform(fn)
}

// SetDeserializeKeyTransform sets the deserialize key transform of Default().
func SetDeserializeKeyTransform(fn func(string) string) {
	defaultMapper.SetDeserializeKeyTransform(fn)
}

// SetDefaultInstantiationMethod sets the default method of Default().
func SetDefaultInstantiationMethod(method metadata.InstantiationMethod) {
	defaultMapper.SetDefaultInstantiationMethod(method)
}
