package parser

import (
	"strconv"

	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
)

// Role is the meaning a configuration keyword row gives to its fill color.
type Role string

const (
	// RoleBreak marks a break in the waveform ('|').
	RoleBreak Role = "pw_break"
	// RoleDontCare marks a don't-care region.
	RoleDontCare Role = "pw_x"
	// RolePosedgeClock marks a positive edge clock ('p').
	RolePosedgeClock Role = "pw_pclk"
	// RoleNegedgeClock marks a negative edge clock.
	RoleNegedgeClock Role = "pw_nclk"
	// RoleIgnore marks cells that are not processed.
	RoleIgnore Role = "pw_ignore"
)

// Keywords lists the configuration keywords in their canonical order.
var Keywords = []Role{RoleBreak, RoleDontCare, RolePosedgeClock, RoleNegedgeClock, RoleIgnore}

// RoleForKeyword returns the role named by a configuration keyword.
// Matching is exact and case-sensitive.
func RoleForKeyword(s string) (Role, bool) {
	for _, r := range Keywords {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Marker returns the wave character emitted for a cell bound to the role.
// Only break and posedge clock have one; the other roles are inert.
func (r Role) Marker() (byte, bool) {
	switch r {
	case RoleBreak:
		return '|', true
	case RolePosedgeClock:
		return 'p', true
	}
	return 0, false
}

// ColorBindings maps fill color keys to configuration roles.
type ColorBindings struct {
	roles map[string]Role
	order []string
}

// NewColorBindings creates an empty binding table.
func NewColorBindings() *ColorBindings {
	return &ColorBindings{roles: make(map[string]Role)}
}

// Bind assigns a role to a color. The blank color is never bound and the first
// binding of a color wins. It reports whether the binding was recorded.
func (b *ColorBindings) Bind(color string, role Role) bool {
	if color == models.BlankColor {
		return false
	}
	if _, ok := b.roles[color]; ok {
		return false
	}
	b.roles[color] = role
	b.order = append(b.order, color)
	return true
}

// Lookup returns the role bound to a color.
func (b *ColorBindings) Lookup(color string) (Role, bool) {
	r, ok := b.roles[color]
	return r, ok
}

// Len returns the number of bound colors.
func (b *ColorBindings) Len() int {
	return len(b.order)
}

// Map returns a copy of the bindings.
func (b *ColorBindings) Map() map[string]Role {
	m := make(map[string]Role, len(b.roles))
	for k, v := range b.roles {
		m[k] = v
	}
	return m
}

// symbolBase and symbolCount define the symbol alphabet '2'..'9', which never
// collides with '0', '1', '.', '|', 'p', 'n' or 'x'.
const (
	symbolBase  = 2
	symbolCount = 8
)

// SymbolTable assigns display symbols to data colors in order of first appearance.
type SymbolTable struct {
	symbols map[string]string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]string)}
}

// Symbol returns the symbol for a color, assigning the next one on first use.
func (s *SymbolTable) Symbol(color string) string {
	if sym, ok := s.symbols[color]; ok {
		return sym
	}
	sym := strconv.Itoa(symbolBase + len(s.symbols)%symbolCount)
	s.symbols[color] = sym
	return sym
}

// Lookup returns the symbol already assigned to a color.
func (s *SymbolTable) Lookup(color string) (string, bool) {
	sym, ok := s.symbols[color]
	return sym, ok
}

// Len returns the number of assigned colors.
func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

// Map returns a copy of the color to symbol assignments.
func (s *SymbolTable) Map() map[string]string {
	m := make(map[string]string, len(s.symbols))
	for k, v := range s.symbols {
		m[k] = v
	}
	return m
}
