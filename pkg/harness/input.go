package harness

import (
	"strings"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// BuildInput repeats types.InputUnit multiplier times. The result is
// exactly 5*multiplier bytes; a non-positive multiplier yields "".
func BuildInput(multiplier int) string {
	if multiplier <= 0 {
		return ""
	}
	return strings.Repeat(types.InputUnit, multiplier)
}

// DefaultMultipliers returns 10^0 through 10^5 in increasing order.
func DefaultMultipliers() []int {
	multipliers := make([]int, 0, 6)
	for i, m := 0, 1; i < 6; i, m = i+1, m*10 {
		multipliers = append(multipliers, m)
	}
	return multipliers
}
