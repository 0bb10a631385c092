package check

import "fmt"

// Kind classifies a violation.
type Kind int

const (
	// StructuralViolation covers cell counts and cell types.
	StructuralViolation Kind = iota
	// ContentMismatch covers badge and header text that differs from expected.
	ContentMismatch
	// OutputPolicyViolation covers stderr output, missing execution counts,
	// file size and plotting calls.
	OutputPolicyViolation
)

func (k Kind) String() string {
	switch k {
	case StructuralViolation:
		return "structural"
	case ContentMismatch:
		return "content"
	case OutputPolicyViolation:
		return "output-policy"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Violation is one failed check for one file.
type Violation struct {
	File   string
	Check  string
	Kind   Kind
	Reason string
}

func (v Violation) Error() string {
	return v.Reason
}
