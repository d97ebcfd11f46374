package metadata

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/weichx/cerialize/internal/common"
	"github.com/weichx/cerialize/node"
)

var (
	ErrNilType   = errors.New("type must not be nil")
	ErrNameTaken = errors.New("name is already registered for another type")
	ErrEmptyName = errors.New("name must not be empty")
)

type (
	// Constructor builds a fresh instance for the New instantiation method.
	// It returns a pointer to the type it is registered for.
	Constructor func() any
	// SerializedHook runs after a type was serialized. A non-nil result
	// replaces data.
	SerializedHook func(data map[string]any, instance any) (any, error)
	// DeserializedHook runs after a type was deserialized. A non-nil result
	// replaces instance.
	DeserializedHook func(data any, instance any, m InstantiationMethod) (any, error)
)

// Hooks are the lifecycle callbacks of a type.
type Hooks struct {
	OnSerialized   SerializedHook
	OnDeserialized DeserializedHook
}

func (h Hooks) IsZero() bool {
	return h.OnSerialized == nil && h.OnDeserialized == nil
}

type entry struct {
	descriptors []*Descriptor
	annotated   bool
	constructor Constructor
	hooks       Hooks
	name        string
}

// Registry maps types to their member descriptors. It is safe for
// concurrent use, although descriptors handed out by GetOrCreate must not be
// modified while other goroutines serialize the same type.
type Registry struct {
	mu         sync.RWMutex
	types      map[reflect.Type]*entry
	names      map[string]reflect.Type
	converters map[string]Converter
	logger     *zap.Logger
}

type Option func(*Registry)

// WithLogger sets the logger registrations are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		types:      make(map[reflect.Type]*entry),
		names:      make(map[string]reflect.Type),
		converters: make(map[string]Converter),
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func (r *Registry) Logger() *zap.Logger {
	return r.logger
}

// GetOrCreate returns the descriptor for member of t, appending a fresh one
// when t does not declare member yet.
func (r *Registry) GetOrCreate(t reflect.Type, member string) *Descriptor {
	var d *Descriptor

	r.Update(t, member, func(found *Descriptor) { d = found })

	return d
}

// Update runs fn on the descriptor for member of t under the write lock,
// creating the descriptor first when needed.
func (r *Registry) Update(t reflect.Type, member string, fn func(d *Descriptor)) {
	t = node.Base(t)
	if t == nil {
		panic(ErrNilType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entryLocked(t)
	e.annotated = true

	for _, d := range e.descriptors {
		if d.MemberName == member {
			fn(d)
			return
		}
	}

	d := &Descriptor{MemberName: member}
	e.descriptors = append(e.descriptors, d)

	r.logger.Debug("descriptor created",
		zap.Stringer("type", t),
		zap.String("member", member),
	)

	fn(d)
}

// Lookup returns the descriptors of t. ok is false when t was never
// annotated, in which case callers fall back to raw value handling.
func (r *Registry) Lookup(t reflect.Type) (descriptors []*Descriptor, ok bool) {
	t = node.Base(t)
	if t == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.types[t]
	if !exists || !e.annotated {
		return nil, false
	}

	return e.descriptors, true
}

// Descriptor returns the descriptor for member of t, if declared.
func (r *Registry) Descriptor(t reflect.Type, member string) (*Descriptor, bool) {
	list, _ := r.Lookup(t)
	for _, d := range list {
		if d.MemberName == member {
			return d, true
		}
	}

	return nil, false
}

// Inherit seeds child with a clone of every descriptor of parent whose
// member child does not declare yet. Hooks are copied when child has none.
// Later changes to parent are not propagated. Inheriting from itself is a
// no-op.
func (r *Registry) Inherit(parent, child reflect.Type) {
	parent, child = node.Base(parent), node.Base(child)
	if parent == nil || child == nil {
		panic(ErrNilType)
	}

	if parent == child {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ce := r.entryLocked(child)
	ce.annotated = true

	pe, exists := r.types[parent]
	if !exists {
		return
	}

	declared := make(map[string]struct{}, len(ce.descriptors))
	for _, d := range ce.descriptors {
		declared[d.MemberName] = struct{}{}
	}

	copied := 0
	for _, d := range pe.descriptors {
		if _, ok := declared[d.MemberName]; ok {
			continue
		}

		ce.descriptors = append(ce.descriptors, d.Clone())
		copied++
	}

	if ce.hooks.IsZero() {
		ce.hooks = pe.hooks
	}

	r.logger.Debug("metadata inherited",
		zap.Stringer("parent", parent),
		zap.Stringer("child", child),
		zap.Int("copied", copied),
	)
}

// SetConstructor registers the constructor used by the New method for t.
func (r *Registry) SetConstructor(t reflect.Type, ctor Constructor) {
	t = node.Base(t)
	if t == nil {
		panic(ErrNilType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entryLocked(t).constructor = ctor
}

func (r *Registry) Constructor(t reflect.Type) Constructor {
	t = node.Base(t)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.types[t]; ok {
		return e.constructor
	}

	return nil
}

// SetHooks replaces the lifecycle hooks of t.
func (r *Registry) SetHooks(t reflect.Type, hooks Hooks) {
	t = node.Base(t)
	if t == nil {
		panic(ErrNilType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entryLocked(t).hooks = hooks
}

func (r *Registry) Hooks(t reflect.Type) Hooks {
	t = node.Base(t)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.types[t]; ok {
		return e.hooks
	}

	return Hooks{}
}

// RegisterName binds name to t so struct tags and schema files can refer
// to it. Registering the same pair twice is allowed.
func (r *Registry) RegisterName(name string, t reflect.Type) error {
	t = node.Base(t)
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.names[name]; ok && existing != t {
		return fmt.Errorf("%w: %q is %s", ErrNameTaken, name, node.TypeString(existing))
	}

	r.names[name] = t
	r.entryLocked(t).name = name

	r.logger.Debug("type named", zap.String("name", name), zap.Stringer("type", t))

	return nil
}

func (r *Registry) TypeByName(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.names[name]

	return t, ok
}

// NameOf returns the registered name of t, or "" when it has none.
func (r *Registry) NameOf(t reflect.Type) string {
	t = node.Base(t)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.types[t]; ok {
		return e.name
	}

	return ""
}

// Names lists the registered type names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return common.SortedKeys(r.names)
}

// ConverterNames lists the registered converter names in order.
func (r *Registry) ConverterNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return common.SortedKeys(r.converters)
}

// RegisterConverter binds name to c for "using" references.
func (r *Registry) RegisterConverter(name string, c Converter) error {
	if name == "" {
		return ErrEmptyName
	}
	if c.IsZero() {
		return fmt.Errorf("%w: %q", ErrNotAConverter, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c.Name = name
	r.converters[name] = c

	r.logger.Debug("converter registered", zap.String("name", name), zap.Stringer("kind", c.Kind))

	return nil
}

func (r *Registry) ConverterByName(name string) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[name]

	return c, ok
}

// Types lists every annotated type, ordered by registered name and then by
// type string.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reflect.Type, 0, len(r.types))
	for t, e := range r.types {
		if e.annotated {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ni, nj := r.types[out[i]].name, r.types[out[j]].name
		if ni != nj {
			return ni < nj
		}
		return node.TypeString(out[i]) < node.TypeString(out[j])
	})

	return out
}

// Reset forgets every type, name and converter.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = make(map[reflect.Type]*entry)
	r.names = make(map[string]reflect.Type)
	r.converters = make(map[string]Converter)
}

func (r *Registry) entryLocked(t reflect.Type) *entry {
	e, ok := r.types[t]
	if !ok {
		e = &entry{}
		r.types[t] = e
	}

	return e
}
