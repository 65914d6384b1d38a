// Package config holds the mutable session state of the calculator:
// the current output base plus, as in robpike.io/ivy's config
// package, a small set of named debug flags used only to gate
// optional CLI-boundary tracing. It is otherwise adapted directly
// from that package: a zero value with nil-safe getters, so a
// *Config can be passed around (including as a nil pointer in tests)
// without every caller checking for nil first.
package config

// Base identifies one of the three literal/output bases the
// calculator understands.
type Base int

const (
	Decimal Base = iota
	Binary
	Hex
)

func (b Base) String() string {
	switch b {
	case Decimal:
		return "dec"
	case Binary:
		return "bin"
	case Hex:
		return "hex"
	}
	return "?"
}

// Config is the calculator's session state. The zero value is ready
// to use and represents decimal output, the calculator's initial
// mode.
type Config struct {
	outputBase Base
	debug      map[string]bool
}

// OutputBase returns the current output base.
func (c *Config) OutputBase() Base {
	if c == nil {
		return Decimal
	}
	return c.outputBase
}

// SetOutputBase changes the output base. Mode changes never affect
// an expression already in progress; callers apply this only between
// lines, never mid-expression.
func (c *Config) SetOutputBase(b Base) {
	c.outputBase = b
}

// Debug reports whether the named debug flag is set.
func (c *Config) Debug(name string) bool {
	if c == nil {
		return false
	}
	return c.debug[name]
}

// SetDebug toggles a named debug flag.
func (c *Config) SetDebug(name string, on bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[name] = on
}
