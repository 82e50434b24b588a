package logger

import (
	"fmt"
	"reflect"
)

// Context is an immutable, ordered mapping of string keys to arbitrary
// values. A key may be present without a value (a bare flag). Extending a
// Context never mutates it; duplicate keys take the newest value while
// keeping their original position. The zero value is the empty Context.
type Context struct {
	entries []contextEntry
}

type contextEntry struct {
	key      string
	value    any
	hasValue bool
}

// Extend returns a copy of c with key set to value.
func (c Context) Extend(key string, value any) Context {
	return c.extend(contextEntry{key: key, value: value, hasValue: true})
}

// ExtendFlag returns a copy of c with key present but valueless, rendered
// as the bare key.
func (c Context) ExtendFlag(key string) Context {
	return c.extend(contextEntry{key: key})
}

func (c Context) extend(e contextEntry) Context {
	out := make([]contextEntry, len(c.entries), len(c.entries)+1)
	copy(out, c.entries)
	for i := range out {
		if out[i].key == e.key {
			out[i] = e
			return Context{entries: out}
		}
	}
	return Context{entries: append(out, e)}
}

// Len returns the number of keys.
func (c Context) Len() int { return len(c.entries) }

// Render produces one token per key in insertion order: "key=value" using
// the value's default string form, or the bare key for flags.
func (c Context) Render() []string {
	if len(c.entries) == 0 {
		return nil
	}
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		if e.hasValue {
			out[i] = e.key + "=" + fmt.Sprint(e.value)
		} else {
			out[i] = e.key
		}
	}
	return out
}

// Equal reports structural equality: same keys, values, and order. A
// Context has no identity beyond its entries.
func (c Context) Equal(other Context) bool {
	if len(c.entries) != len(other.entries) {
		return false
	}
	for i, e := range c.entries {
		o := other.entries[i]
		if e.key != o.key || e.hasValue != o.hasValue {
			return false
		}
		if e.hasValue && !reflect.DeepEqual(e.value, o.value) {
			return false
		}
	}
	return true
}
