package lorawan

// MType represents the message type carried in bits 5-7 of the MHDR.
type MType byte

// Major defines the major version of the frame, carried in bits 0-1 of
// the MHDR. The data-frame codec in this package accepts only LoRaWANR1;
// any other value is rejected with ErrPayload.
type Major byte

// Supported message types (MType). Only the four data-frame types and the
// two join types are meaningful to this package; MTypeRFU and Proprietary
// are recognized but never produced or accepted by EncodeUplink,
// EncodeDownlink, DecodeUplink or DecodeDownlink.
const (
	JoinRequest         MType = 0
	JoinAccept          MType = (1 << 5)
	UnconfirmedDataUp   MType = (1 << 6)
	UnconfirmedDataDown MType = (1 << 6) ^ (1 << 5)
	ConfirmedDataUp     MType = (1 << 7)
	ConfirmedDataDown   MType = (1 << 7) ^ (1 << 5)
	MTypeRFU            MType = (1 << 7) ^ (1 << 6)
	Proprietary         MType = (1 << 7) ^ (1 << 6) ^ (1 << 5)
)

// Supported major versions.
const (
	LoRaWANR1 Major = 0
	MajorRFU1 Major = (1 << 0)
	MajorRFU2 Major = (1 << 1)
	MajorRFU3 Major = (1 << 1) ^ (1 << 0)
)

// String implements fmt.Stringer.
func (t MType) String() string {
	switch t {
	case JoinRequest:
		return "JoinRequest"
	case JoinAccept:
		return "JoinAccept"
	case UnconfirmedDataUp:
		return "UnconfirmedDataUp"
	case UnconfirmedDataDown:
		return "UnconfirmedDataDown"
	case ConfirmedDataUp:
		return "ConfirmedDataUp"
	case ConfirmedDataDown:
		return "ConfirmedDataDown"
	case Proprietary:
		return "Proprietary"
	default:
		return "RFU"
	}
}

// MHDR represents the 1-byte MAC header field.
type MHDR byte

// NewMHDR returns a new MAC header for the given type and major version.
func NewMHDR(mtype MType, major Major) MHDR {
	return MHDR(byte(mtype) ^ byte(major))
}

// MType returns the message type.
func (h MHDR) MType() MType {
	var mask MType = (1 << 7) ^ (1 << 6) ^ (1 << 5)
	return MType(h) & mask
}

// Major returns the major version.
func (h MHDR) Major() Major {
	var mask Major = (1 << 1) ^ (1 << 0)
	return Major(h) & mask
}

// dataFrameDirection reports whether mt is one of the four data-frame
// MTypes this package's framer accepts, and if so whether it is an
// uplink. ok is false for join types, MTypeRFU and Proprietary.
func dataFrameDirection(mt MType) (uplink bool, confirmed bool, ok bool) {
	switch mt {
	case UnconfirmedDataUp:
		return true, false, true
	case ConfirmedDataUp:
		return true, true, true
	case UnconfirmedDataDown:
		return false, false, true
	case ConfirmedDataDown:
		return false, true, true
	default:
		return false, false, false
	}
}
