package routing

// Attribute keys used by the built-in predicates.
const (

	// PathVariablesKey stores the merged path variables of all matched
	// path templates, as a map[string]string.
	PathVariablesKey = "pathVariables"

	// MatchedPatternKey stores the effective path template of the
	// matched route, composed across nested routers, as a string.
	MatchedPatternKey = "matchedPattern"

	// ContextPatternKey stores the path template consumed by nested
	// routing so far, as a string. Path predicates compose it with
	// their own template when recording the matched pattern.
	ContextPatternKey = "contextPattern"
)

// Attributes is an ordered, mutable, string keyed map scoped to a single
// request. It is owned exclusively by the request it belongs to and must
// not be shared between concurrent requests.
type Attributes struct {
	keys   []string
	values map[string]any
}

// Snapshot is an immutable point-in-time copy of an Attributes instance.
type Snapshot struct {
	keys   []string
	values map[string]any
}

// NewAttributes creates an empty attribute map.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// Get returns the value stored for key.
func (a *Attributes) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Set stores a value for key. Re-setting an existing key keeps its
// original position in the iteration order.
func (a *Attributes) Set(key string, value any) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}

	a.values[key] = value
}

// Delete removes key and its value.
func (a *Attributes) Delete(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}

	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored keys.
func (a *Attributes) Len() int { return len(a.keys) }

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Range calls fn for each key/value pair in insertion order, until fn
// returns false.
func (a *Attributes) Range(fn func(key string, value any) bool) {
	for _, k := range a.keys {
		if !fn(k, a.values[k]) {
			return
		}
	}
}

func copyAttributes(keys []string, values map[string]any) ([]string, map[string]any) {
	ck := make([]string, len(keys))
	copy(ck, keys)

	cv := make(map[string]any, len(values))
	for k, v := range values {
		cv[k] = v
	}

	return ck, cv
}

// Snapshot takes a shallow copy of the current state. The returned value
// is not affected by later modifications and can be restored multiple
// times.
func (a *Attributes) Snapshot() Snapshot {
	keys, values := copyAttributes(a.keys, a.values)
	return Snapshot{keys: keys, values: values}
}

// Restore replaces the complete state with the one stored in the
// snapshot, discarding every write made since the snapshot was taken.
func (a *Attributes) Restore(s Snapshot) {
	a.keys, a.values = copyAttributes(s.keys, s.values)
	if a.values == nil {
		a.values = make(map[string]any)
	}
}

// PathVariables returns the path variables collected during matching, or
// nil when no path template was matched.
func PathVariables(a *Attributes) map[string]string {
	v, ok := a.Get(PathVariablesKey)
	if !ok {
		return nil
	}

	vars, _ := v.(map[string]string)
	return vars
}

// MergePathVariables merges vars into the collected path variables. Later
// captures of the same name overwrite earlier ones, implementing the
// innermost match wins rule.
func MergePathVariables(a *Attributes, vars map[string]string) {
	if len(vars) == 0 {
		return
	}

	existing := PathVariables(a)
	merged := make(map[string]string, len(existing)+len(vars))
	for k, v := range existing {
		merged[k] = v
	}

	for k, v := range vars {
		merged[k] = v
	}

	a.Set(PathVariablesKey, merged)
}

// MatchedPattern returns the matched path template recorded so far.
func MatchedPattern(a *Attributes) string {
	v, ok := a.Get(MatchedPatternKey)
	if !ok {
		return ""
	}

	s, _ := v.(string)
	return s
}

// SetMatchedPattern records the matched path template.
func SetMatchedPattern(a *Attributes, pattern string) {
	a.Set(MatchedPatternKey, pattern)
}

// ContextPattern returns the path template consumed by nested routing.
func ContextPattern(a *Attributes) string {
	v, ok := a.Get(ContextPatternKey)
	if !ok {
		return ""
	}

	s, _ := v.(string)
	return s
}

// SetContextPattern records the path template consumed by nested routing.
func SetContextPattern(a *Attributes, pattern string) {
	a.Set(ContextPatternKey, pattern)
}
