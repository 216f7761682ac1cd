package patch

import "fmt"

// GrowthPolicy decides what happens when a patch starts past the end of the sink.
type GrowthPolicy int

const (
	// GrowthReject fails with ErrOffsetOutOfRange.
	GrowthReject GrowthPolicy = iota
	// GrowthZeroFill writes anyway; the gap between the old end and the
	// offset reads back as zeros.
	GrowthZeroFill
)

// String returns the config spelling of the policy.
func (g GrowthPolicy) String() string {
	switch g {
	case GrowthReject:
		return "reject"
	case GrowthZeroFill:
		return "zero-fill"
	default:
		return fmt.Sprintf("GrowthPolicy(%d)", int(g))
	}
}

// ParseGrowthPolicy parses "reject" or "zero-fill".
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch s {
	case "reject", "":
		return GrowthReject, nil
	case "zero-fill":
		return GrowthZeroFill, nil
	default:
		return GrowthReject, fmt.Errorf("unknown growth policy %q, must be 'reject' or 'zero-fill'", s)
	}
}
