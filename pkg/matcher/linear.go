package matcher

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// LinearMatcher implements Matcher using the standard library RE2 engine,
// which guarantees time linear in the input. The problematic pattern does
// not blow up here.
type LinearMatcher struct {
	pattern types.Pattern
	re      *regexp.Regexp
}

// NewLinear compiles pattern with regexp. DotAll maps to the (?s) flag.
func NewLinear(pattern types.Pattern) (*LinearMatcher, error) {
	expr := pattern.Expr
	if pattern.DotAll {
		expr = "(?s)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile pattern %q for %s", pattern.Expr, pattern.ID)
	}

	return &LinearMatcher{pattern: pattern, re: re}, nil
}

// Search finds the leftmost match of the pattern in input.
func (m *LinearMatcher) Search(input string) (bool, error) {
	return m.re.FindStringIndex(input) != nil, nil
}

// Engine returns types.EngineLinear.
func (m *LinearMatcher) Engine() types.Engine {
	return types.EngineLinear
}

// Close releases resources (no-op for regexp).
func (m *LinearMatcher) Close() error {
	return nil
}
