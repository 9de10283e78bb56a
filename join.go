package lorawan

// JoinNonce is the 3-byte nonce a join server includes in a join-accept.
type JoinNonce [3]byte

// JoinRequestView holds the fields of a parsed join-request frame,
// copied out of the buffer:
// MHDR(0x00) ‖ JoinEUI(8, LE) ‖ DevEUI(8, LE) ‖ DevNonce(2, LE). Key
// derivation and the join-request MIC are outside this package's scope;
// this type only exposes the layout.
type JoinRequestView struct {
	JoinEui  JoinEui
	DevEui   DevEui
	DevNonce DevNonce
}

const joinRequestLen = 1 + 8 + 8 + 2

// DecodeJoinRequest parses buf as a join-request frame.
func DecodeJoinRequest(buf []byte) (JoinRequestView, error) {
	var v JoinRequestView
	if len(buf) != joinRequestLen {
		return v, ErrSize
	}
	if MHDR(buf[0]) != NewMHDR(JoinRequest, LoRaWANR1) {
		return v, ErrPayload
	}
	copy(v.JoinEui[:], buf[1:9])
	copy(v.DevEui[:], buf[9:17])
	copy(v.DevNonce[:], buf[17:19])
	return v, nil
}

// EncodeJoinRequest writes a join-request frame to dst and returns the
// written prefix.
func EncodeJoinRequest(dst []byte, v JoinRequestView) ([]byte, error) {
	if len(dst) < joinRequestLen {
		return nil, ErrSize
	}
	buf := dst[:joinRequestLen]
	buf[0] = byte(NewMHDR(JoinRequest, LoRaWANR1))
	copy(buf[1:9], v.JoinEui[:])
	copy(buf[9:17], v.DevEui[:])
	copy(buf[17:19], v.DevNonce[:])
	return buf, nil
}

// joinAcceptFixedLen is the length of a join-accept carrying no CFList.
const joinAcceptFixedLen = 1 + 3 + 3 + 4 + 1 + 1
const cfListLen = 16

// JoinAcceptView holds the fields of a parsed join-accept frame; the
// fixed fields are copied out of the buffer and CFList borrows it:
// MHDR(0x20) ‖ JoinNonce(3) ‖ NetID(3) ‖ DevAddr(4) ‖ DLSettings(1) ‖
// RxDelay(1) ‖ CFList(0 or 16). As with JoinRequestView, the MIC and any
// encryption wrapping a join-accept on the wire are outside this
// package's scope; this type only exposes the layout of the plaintext.
type JoinAcceptView struct {
	JoinNonce  JoinNonce
	NetID      NetID
	DevAddr    DevAddr
	DLSettings DLSettings
	RxDelay    uint8
	CFList     []byte // 0 or 16 bytes
}

// DecodeJoinAccept parses buf as a join-accept frame.
func DecodeJoinAccept(buf []byte) (JoinAcceptView, error) {
	var v JoinAcceptView
	if len(buf) != joinAcceptFixedLen && len(buf) != joinAcceptFixedLen+cfListLen {
		return v, ErrSize
	}
	if MHDR(buf[0]) != NewMHDR(JoinAccept, LoRaWANR1) {
		return v, ErrPayload
	}

	copy(v.JoinNonce[:], buf[1:4])
	copy(v.NetID[:], buf[4:7])
	copy(v.DevAddr[:], buf[7:11])
	v.DLSettings = decodeDLSettings(buf[11])
	v.RxDelay = buf[12]
	if len(buf) == joinAcceptFixedLen+cfListLen {
		v.CFList = buf[joinAcceptFixedLen:]
	}
	return v, nil
}

// EncodeJoinAccept writes a join-accept frame to dst and returns the
// written prefix. v.CFList must be empty or exactly 16 bytes.
func EncodeJoinAccept(dst []byte, v JoinAcceptView) ([]byte, error) {
	if len(v.CFList) != 0 && len(v.CFList) != cfListLen {
		return nil, ErrSize
	}
	total := joinAcceptFixedLen + len(v.CFList)
	if len(dst) < total {
		return nil, ErrSize
	}
	buf := dst[:total]

	buf[0] = byte(NewMHDR(JoinAccept, LoRaWANR1))
	copy(buf[1:4], v.JoinNonce[:])
	copy(buf[4:7], v.NetID[:])
	copy(buf[7:11], v.DevAddr[:])
	buf[11] = v.DLSettings.encode()
	buf[12] = v.RxDelay
	copy(buf[joinAcceptFixedLen:], v.CFList)

	return buf, nil
}
