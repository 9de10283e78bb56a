package lorawan

// maxFOptsLen is the largest number of FOpts bytes FCtrl.FOptsLen can
// carry (the field is 4 bits wide).
const maxFOptsLen = 15

// FCtrl represents the 1-byte frame control field. Bit 6 is RFU: this
// package preserves it unchanged on decode (never masks it away) and
// always writes it as zero on encode, per the frame invariants.
//
//	bit:  7    6    5    4        3-0
//	     adr  rfu  ack  fpending  f_opts_len
type FCtrl byte

// NewFCtrl returns a new FCtrl. fPending is meaningful only for downlink
// frames; callers building an uplink FCtrl should pass false.
func NewFCtrl(adr, ack, fPending bool, fOptsLen uint8) (FCtrl, error) {
	var fc FCtrl
	if fOptsLen > maxFOptsLen {
		return fc, ErrSize
	}

	if adr {
		fc |= 1 << 7
	}
	if ack {
		fc |= 1 << 5
	}
	if fPending {
		fc |= 1 << 4
	}

	return fc | FCtrl(fOptsLen), nil
}

// ADR returns whether the adaptive data rate control bit is set.
func (c FCtrl) ADR() bool {
	return c&(1<<7) > 0
}

// ACK returns whether the acknowledgment bit is set.
func (c FCtrl) ACK() bool {
	return c&(1<<5) > 0
}

// FPending returns whether the network has more data pending. Only
// meaningful on downlink frames; MUST be 0 on uplink (I2-adjacent
// invariant enforced by the encoder, not by this accessor).
func (c FCtrl) FPending() bool {
	return c&(1<<4) > 0
}

// FOptsLen returns how many FOpts bytes the FHDR carries.
func (c FCtrl) FOptsLen() uint8 {
	const mask uint8 = (1 << 3) ^ (1 << 2) ^ (1 << 1) ^ (1 << 0)
	return uint8(c) & mask
}

// fhdrFixedLen is the length of the fixed portion of the FHDR (DevAddr +
// FCtrl + FCnt), not counting the variable-length FOpts tail.
const fhdrFixedLen = 7

// FHDR represents the parsed frame header: DevAddr ‖ FCtrl ‖ FCnt ‖ FOpts.
// FCnt here is the 16 least-significant bits transmitted on the wire; the
// full 32-bit session counter used by the cryptographic routines is
// supplied out of band by the caller.
type FHDR struct {
	DevAddr DevAddr
	FCtrl   FCtrl
	FCnt    uint16
	FOpts   []byte // length equals FCtrl.FOptsLen(), at most 15 bytes
}
