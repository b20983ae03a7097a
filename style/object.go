package style

// Viewport carries the window dimensions a resolution pass converts
// viewport-relative units against. It is supplied fresh on every call.
type Viewport struct {
	Width  float64
	Height float64
}

// Object is an ordered mapping from style property name to raw value
// (number, plain string or placeholder string). It is created once per
// style evaluation, mutated in place during resolution and discarded after
// being handed to the renderer.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject creates an empty style object.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// Set stores a value, appending the key to the iteration order when unseen.
func (o *Object) Set(name string, v any) {
	if _, ok := o.vals[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.vals[name] = v
}

// Get returns the value stored under name.
func (o *Object) Get(name string) (any, bool) {
	v, ok := o.vals[name]
	return v, ok
}

// Delete removes a property and its place in the iteration order.
func (o *Object) Delete(name string) {
	if _, ok := o.vals[name]; !ok {
		return
	}
	delete(o.vals, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a snapshot of the current iteration order.
func (o *Object) Keys() []string {
	tmp := make([]string, len(o.keys))
	copy(tmp, o.keys)
	return tmp
}

// Len returns the number of properties.
func (o *Object) Len() int {
	return len(o.keys)
}

// Map returns the properties as a plain map in no particular order. Meant
// for serialization and tests.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, len(o.vals))
	for k, v := range o.vals {
		out[k] = v
	}
	return out
}

// truthy mirrors the loose presence check style values go through: nil,
// empty strings, zero numbers and false are all absent.
func truthy(v any) bool {
	switch vv := v.(type) {
	case nil:
		return false
	case string:
		return vv != ""
	case bool:
		return vv
	case float64:
		return vv != 0
	case float32:
		return vv != 0
	case int:
		return vv != 0
	case int64:
		return vv != 0
	default:
		return true
	}
}
