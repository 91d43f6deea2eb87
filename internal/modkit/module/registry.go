package module

import "sync"

// process global registry used during bootstrap to hand port sets
// between modules by name

var (
	regMu sync.RWMutex
	reg   = map[string]any{}
)

// Register stores a port set under name, replacing any previous entry
func Register(name string, ports any) {
	regMu.Lock()
	defer regMu.Unlock()
	reg[name] = ports
}

// PortsAs looks up name and asserts the entry to T
func PortsAs[T any](name string) (T, bool) {
	regMu.RLock()
	v, ok := reg[name]
	regMu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry between tests
func Reset() {
	regMu.Lock()
	defer regMu.Unlock()
	reg = map[string]any{}
}
