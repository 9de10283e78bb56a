package lorawan

import "errors"

// The four error kinds a caller of this package can observe. They are
// deliberately coarse: the package does not distinguish, say, a truncated
// MHDR from a truncated FHDR, both surface as ErrSize.
var (
	// ErrSize indicates a buffer was too short for the operation: decode
	// truncation or encode overflow.
	ErrSize = errors.New("lorawan: buffer size is invalid for this operation")

	// ErrFPort indicates a requested operation is inconsistent with the
	// frame's FPort value.
	ErrFPort = errors.New("lorawan: operation is inconsistent with FPort")

	// ErrPayload indicates a structural violation of the frame layout
	// invariants: an unknown MHDR, an illegal variant discriminant, or
	// FOpts and FPort-0 MAC commands both present in the same frame.
	ErrPayload = errors.New("lorawan: payload does not conform to the frame layout")

	// ErrMIC indicates the computed MIC does not match the MIC carried in
	// the frame.
	ErrMIC = errors.New("lorawan: MIC mismatch")
)
