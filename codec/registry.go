package codec

import (
	"sort"
	"sync"
)

// Registry manages the available codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // keyed by Name()
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

var defaultRegistry = NewRegistry()

// Register registers a codec in the default registry under its name
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec from the default registry by name
func Get(name string) (Codec, error) {
	return defaultRegistry.Get(name)
}

// Names returns the sorted names of all codecs in the default registry
func Names() []string {
	return defaultRegistry.Names()
}

// Register registers a codec under its name, replacing any previous codec
// with the same name
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[codec.Name()] = codec
}

// Get retrieves a codec by name
func (r *Registry) Get(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[name]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// Names returns the sorted names of all registered codecs
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
