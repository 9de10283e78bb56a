package lorawan

import (
	"bytes"
	"encoding/binary"

	lwcrypto "github.com/loraframe/lorawan/crypto"
)

// Dir distinguishes uplink from downlink for the pseudo-header
// constructions in §4.4: the same four fields (Dir, DevAddr, FCntFull,
// a length/index byte) feed both the MIC and the payload keystream.
type Dir uint8

// The two frame directions.
const (
	DirUplink   Dir = 0
	DirDownlink Dir = 1
)

const (
	mhdrLen = 1
	micLen  = 4
	// minFrameLen is the smallest legal data frame: MHDR + fixed FHDR + MIC.
	minFrameLen = mhdrLen + fhdrFixedLen + micLen
)

// FrameFields is the set of caller-supplied values EncodeUplink and
// EncodeDownlink assemble into a frame. FCntFull is the full 32-bit
// session counter; only its low 16 bits are written to the wire.
type FrameFields struct {
	DevAddr  DevAddr
	ADR      bool
	ACK      bool
	FPending bool // downlink only; rejected on an uplink encode
	FCntFull uint32
	FOpts    []byte // at most 15 bytes
	FPort    *uint8 // nil means no FRMPayload at all
	Payload  []byte
}

// DataFrame is a decoded view over a data frame. It borrows the byte
// span it was decoded from for its FOpts and Payload slices: the
// underlying buffer must not be reused or re-decoded while a DataFrame
// derived from it is still in use.
type DataFrame struct {
	mhdr       MHDR
	devAddr    DevAddr
	fCtrl      FCtrl
	fCnt16     uint16
	fOpts      []byte
	fPort      *uint8
	frmPayload []byte
	mic        MIC
	uplink     bool
	confirmed  bool
}

// MHDR returns the frame's MAC header.
func (f DataFrame) MHDR() MHDR { return f.mhdr }

// DevAddr returns the frame's device address.
func (f DataFrame) DevAddr() DevAddr { return f.devAddr }

// FCtrl returns the frame's control byte.
func (f DataFrame) FCtrl() FCtrl { return f.fCtrl }

// FCnt returns the low 16 bits of the session counter as carried on the
// wire.
func (f DataFrame) FCnt() uint16 { return f.fCnt16 }

// FOpts returns the frame's FOpts bytes, if any.
func (f DataFrame) FOpts() []byte { return f.fOpts }

// FPort returns the frame's FPort and true, or false if the frame
// carries no FRMPayload at all.
func (f DataFrame) FPort() (uint8, bool) {
	if f.fPort == nil {
		return 0, false
	}
	return *f.fPort, true
}

// Payload returns the (already decrypted) FRMPayload body, excluding
// FPort.
func (f DataFrame) Payload() []byte { return f.frmPayload }

// MIC returns the frame's message integrity code.
func (f DataFrame) MIC() MIC { return f.mic }

// Uplink reports the frame's direction.
func (f DataFrame) Uplink() bool { return f.uplink }

// Confirmed reports whether the frame's MType requests an acknowledgment.
func (f DataFrame) Confirmed() bool { return f.confirmed }

// MACCommands returns a decoder over whichever slot holds this frame's
// MAC commands, per the tie-break in I2: FOpts when f_opts_len > 0,
// otherwise the FRMPayload body when FPort == 0. If neither applies the
// returned decoder yields nothing.
func (f DataFrame) MACCommands() MACCommandDecoder {
	if len(f.fOpts) > 0 {
		return NewMACCommandDecoder(f.fOpts, f.uplink)
	}
	if port, ok := f.FPort(); ok && port == 0 {
		return NewMACCommandDecoder(f.frmPayload, f.uplink)
	}
	return NewMACCommandDecoder(nil, f.uplink)
}

// EncodeUplink assembles an uplink data frame into dst and returns the
// written prefix. dst must be at least as long as the finished frame;
// ErrSize is returned otherwise.
func EncodeUplink(dst []byte, confirmed bool, f FrameFields, prov lwcrypto.Provider) ([]byte, error) {
	return encodeFrame(dst, true, confirmed, f, prov)
}

// EncodeDownlink assembles a downlink data frame into dst and returns
// the written prefix.
func EncodeDownlink(dst []byte, confirmed bool, f FrameFields, prov lwcrypto.Provider) ([]byte, error) {
	return encodeFrame(dst, false, confirmed, f, prov)
}

// DecodeUplink parses and authenticates an uplink data frame in buf,
// decrypting its FRMPayload in place on success. fCntFull is the full
// 32-bit session counter this frame is expected to carry the low 16
// bits of.
func DecodeUplink(buf []byte, fCntFull uint32, prov lwcrypto.Provider) (DataFrame, error) {
	return decodeFrame(buf, true, fCntFull, prov)
}

// DecodeDownlink parses and authenticates a downlink data frame in buf.
func DecodeDownlink(buf []byte, fCntFull uint32, prov lwcrypto.Provider) (DataFrame, error) {
	return decodeFrame(buf, false, fCntFull, prov)
}

func encodeFrame(dst []byte, uplink, confirmed bool, f FrameFields, prov lwcrypto.Provider) ([]byte, error) {
	if uplink && f.FPending {
		return nil, ErrPayload
	}
	if f.FPort == nil && len(f.Payload) > 0 {
		return nil, ErrPayload
	}
	if len(f.FOpts) > 0 && f.FPort != nil && *f.FPort == 0 {
		return nil, ErrPayload
	}

	fctrl, err := NewFCtrl(f.ADR, f.ACK, f.FPending, uint8(len(f.FOpts)))
	if err != nil {
		return nil, err
	}

	total := mhdrLen + fhdrFixedLen + len(f.FOpts)
	if f.FPort != nil {
		total += 1 + len(f.Payload)
	}
	total += micLen
	if len(dst) < total {
		return nil, ErrSize
	}
	buf := dst[:total]

	pos := 0
	buf[pos] = byte(NewMHDR(dataFrameMType(uplink, confirmed), LoRaWANR1))
	pos++
	copy(buf[pos:pos+4], f.DevAddr[:])
	pos += 4
	buf[pos] = byte(fctrl)
	pos++
	binary.LittleEndian.PutUint16(buf[pos:pos+2], uint16(f.FCntFull))
	pos += 2
	copy(buf[pos:pos+len(f.FOpts)], f.FOpts)
	pos += len(f.FOpts)

	dir := DirUplink
	if !uplink {
		dir = DirDownlink
	}

	var payloadSpan []byte
	if f.FPort != nil {
		buf[pos] = *f.FPort
		pos++
		n := copy(buf[pos:pos+len(f.Payload)], f.Payload)
		payloadSpan = buf[pos : pos+n]
		pos += n

		sel := lwcrypto.Network
		if *f.FPort != 0 {
			sel = lwcrypto.Application
		}
		if err := cryptXOR(prov, sel, dir, f.DevAddr, f.FCntFull, payloadSpan); err != nil {
			return nil, err
		}
	}

	mic, err := computeMIC(prov, dir, f.DevAddr, f.FCntFull, buf[:pos])
	if err != nil {
		return nil, err
	}
	copy(buf[pos:pos+micLen], mic[:])
	pos += micLen

	return buf[:pos], nil
}

func decodeFrame(buf []byte, uplink bool, fCntFull uint32, prov lwcrypto.Provider) (DataFrame, error) {
	var df DataFrame

	if len(buf) < minFrameLen {
		return df, ErrSize
	}

	mhdr := MHDR(buf[0])
	if mhdr.Major() != LoRaWANR1 {
		return df, ErrPayload
	}
	isUp, confirmed, ok := dataFrameDirection(mhdr.MType())
	if !ok || isUp != uplink {
		return df, ErrPayload
	}

	devAddr, err := viewDevAddr(buf[1:5])
	if err != nil {
		return df, err
	}

	fctrl := FCtrl(buf[5])
	if uplink && fctrl.FPending() {
		return df, ErrPayload
	}
	fOptsLen := int(fctrl.FOptsLen())

	const fixedHeaderLen = mhdrLen + fhdrFixedLen // mhdr + devaddr + fctrl + fcnt
	if len(buf) < fixedHeaderLen+fOptsLen+micLen {
		return df, ErrSize
	}

	fcnt16 := binary.LittleEndian.Uint16(buf[6:8])
	if fcnt16 != uint16(fCntFull) {
		return df, ErrPayload
	}

	fOpts := buf[fixedHeaderLen : fixedHeaderLen+fOptsLen]
	body := buf[fixedHeaderLen+fOptsLen : len(buf)-micLen]
	micBytes := buf[len(buf)-micLen:]

	var fPort *uint8
	var frmPayload []byte
	if len(body) > 0 {
		p := body[0]
		fPort = &p
		frmPayload = body[1:]
	}

	if fOptsLen > 0 && fPort != nil && *fPort == 0 {
		return df, ErrPayload
	}

	dir := DirUplink
	if !uplink {
		dir = DirDownlink
	}

	wantMIC, err := computeMIC(prov, dir, devAddr, fCntFull, buf[:len(buf)-micLen])
	if err != nil {
		return df, err
	}
	if !bytes.Equal(wantMIC[:], micBytes) {
		return df, ErrMIC
	}

	if fPort != nil {
		sel := lwcrypto.Network
		if *fPort != 0 {
			sel = lwcrypto.Application
		}
		if err := cryptXOR(prov, sel, dir, devAddr, fCntFull, frmPayload); err != nil {
			return df, err
		}
	}

	df = DataFrame{
		mhdr:       mhdr,
		devAddr:    devAddr,
		fCtrl:      fctrl,
		fCnt16:     fcnt16,
		fOpts:      fOpts,
		fPort:      fPort,
		frmPayload: frmPayload,
		uplink:     uplink,
		confirmed:  confirmed,
	}
	copy(df.mic[:], micBytes)
	return df, nil
}

func dataFrameMType(uplink, confirmed bool) MType {
	switch {
	case uplink && confirmed:
		return ConfirmedDataUp
	case uplink && !confirmed:
		return UnconfirmedDataUp
	case !uplink && confirmed:
		return ConfirmedDataDown
	default:
		return UnconfirmedDataDown
	}
}

// pseudoHeader builds the 16-byte B0/Ai scratch block shared by the MIC
// and the payload keystream (§4.4, §9): both reconstruct the same four
// fields — a leading tag byte, Dir, DevAddr and FCntFull — differing
// only in the tag and the trailing length/index byte.
func pseudoHeader(tag byte, dir Dir, devAddr DevAddr, fCntFull uint32, last byte) [16]byte {
	var b [16]byte
	b[0] = tag
	b[5] = byte(dir)
	copy(b[6:10], devAddr[:])
	binary.LittleEndian.PutUint32(b[10:14], fCntFull)
	b[15] = last
	return b
}

// computeMIC implements §4.4's MIC construction: CMAC(NwkSKey, B0 ‖ msg),
// low 4 bytes.
func computeMIC(prov lwcrypto.Provider, dir Dir, devAddr DevAddr, fCntFull uint32, msg []byte) (MIC, error) {
	var mic MIC
	if len(msg) > 0xFF {
		return mic, ErrSize
	}
	b0 := pseudoHeader(0x49, dir, devAddr, fCntFull, byte(len(msg)))
	tag, err := prov.CMAC(lwcrypto.Network, b0[:], msg)
	if err != nil {
		return mic, err
	}
	copy(mic[:], tag[:micLen])
	return mic, nil
}

// cryptXOR implements §4.4's counter-mode keystream: data is XORed in
// place, 16 bytes at a time, against AES-128(key, Ai) with a 1-based
// block index.
func cryptXOR(prov lwcrypto.Provider, sel lwcrypto.KeySelector, dir Dir, devAddr DevAddr, fCntFull uint32, data []byte) error {
	for i := 0; i*16 < len(data); i++ {
		a := pseudoHeader(0x01, dir, devAddr, fCntFull, byte(i+1))
		if err := prov.EncryptBlock(sel, &a); err != nil {
			return err
		}
		start := i * 16
		end := start + 16
		if end > len(data) {
			end = len(data)
		}
		for j := start; j < end; j++ {
			data[j] ^= a[j-start]
		}
	}
	return nil
}
