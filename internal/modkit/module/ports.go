package module

import "reflect"

// PortSet marks values returned from Ports. Modules define their own
// concrete bundle types.
type PortSet = any

// PortsOf finds a T in m's port bundle: either the bundle itself
// implements T, or one of its exported struct fields does.
func PortsOf[T any](m Module) (T, bool) {
	var zero T

	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if direct, ok := bundle.(T); ok {
		return direct, true
	}

	rv := reflect.ValueOf(bundle)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if hit, ok := f.Interface().(T); ok {
			return hit, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf with a panic for required wiring
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: requested port not found on module " + m.Name())
	}
	return v
}
