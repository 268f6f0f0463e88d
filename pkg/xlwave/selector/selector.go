// Package selector filters signals with boolean expressions such as
//
//	group == "bus" && name startsWith "addr"
//
// The expression sees the fields name, group, wave and data.
package selector

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
)

// Env is the evaluation environment of a selector expression.
type Env struct {
	Name  string        `expr:"name"`
	Group string        `expr:"group"`
	Wave  string        `expr:"wave"`
	Data  []interface{} `expr:"data"`
}

// Selector is a compiled signal filter.
type Selector struct {
	source  string
	program *vm.Program
}

// Compile parses a selector expression. The expression must evaluate to a bool.
func Compile(source string) (*Selector, error) {
	program, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", source, err)
	}
	return &Selector{source: source, program: program}, nil
}

// String returns the selector source.
func (s *Selector) String() string {
	return s.source
}

// Match reports whether a signal satisfies the selector.
func (s *Selector) Match(sig models.Signal) (bool, error) {
	out, err := expr.Run(s.program, Env{
		Name:  sig.Name,
		Group: sig.Group,
		Wave:  sig.Wave,
		Data:  sig.Data,
	})
	if err != nil {
		return false, fmt.Errorf("evaluate selector %q on %q: %w", s.source, sig.Name, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Filter returns the signals matching the selector, preserving order.
func (s *Selector) Filter(signals []models.Signal) ([]models.Signal, error) {
	result := make([]models.Signal, 0, len(signals))
	for _, sig := range signals {
		ok, err := s.Match(sig)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, sig)
		}
	}
	return result, nil
}
