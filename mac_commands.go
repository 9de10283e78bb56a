package lorawan

import "encoding/binary"

// CID identifies a MAC command. The same CID byte is reused by a
// downlink command and its uplink counterpart (e.g. 0x02 is both
// LinkCheckAns and LinkCheckReq); which one applies depends on the
// direction the command is being decoded for.
type CID byte

// MAC command identifiers, as specified in spec §3.
const (
	CIDLinkCheck     CID = 0x02
	CIDLinkADR       CID = 0x03
	CIDDutyCycle     CID = 0x04
	CIDRXParamSetup  CID = 0x05
	CIDDevStatus     CID = 0x06
	CIDNewChannel    CID = 0x07
	CIDRXTimingSetup CID = 0x08
	CIDTxParamSetup  CID = 0x09
	CIDDlChannel     CID = 0x0A
	CIDDeviceTime    CID = 0x0D
)

// downlinkPayloadLen and uplinkPayloadLen give the fixed payload length,
// in bytes, of the command that shares the given CID in each direction.
// A CID absent from a table is not a valid command in that direction and
// terminates decoding (spec §4.3 step 4).
var downlinkPayloadLen = map[CID]int{
	CIDLinkCheck:     2,
	CIDLinkADR:       4,
	CIDDutyCycle:     1,
	CIDRXParamSetup:  4,
	CIDDevStatus:     0,
	CIDNewChannel:    5,
	CIDRXTimingSetup: 1,
	CIDTxParamSetup:  1,
	CIDDlChannel:     4,
	CIDDeviceTime:    5,
}

var uplinkPayloadLen = map[CID]int{
	CIDLinkCheck:     0,
	CIDLinkADR:       1,
	CIDDutyCycle:     0,
	CIDRXParamSetup:  1,
	CIDDevStatus:     2,
	CIDNewChannel:    1,
	CIDRXTimingSetup: 0,
	CIDTxParamSetup:  0,
	CIDDlChannel:     1,
	CIDDeviceTime:    0,
}

// maxMACCommandPayloadLen is the longest fixed payload among every
// command this package knows about, in either direction.
const maxMACCommandPayloadLen = 5

// MACCommand is a single decoded (or about-to-be-encoded) MAC command:
// a CID plus its fixed-length payload. It is a plain value — copying it
// copies the (small, stack-sized) payload bytes, never a pointer into
// the original frame buffer, so a MACCommand outlives the span it was
// decoded from.
type MACCommand struct {
	CID     CID
	payload [maxMACCommandPayloadLen]byte
	n       int
}

// Payload returns the command's raw payload bytes.
func (c MACCommand) Payload() []byte {
	return c.payload[:c.n]
}

func newMACCommand(cid CID, payload []byte) MACCommand {
	var c MACCommand
	c.CID = cid
	c.n = copy(c.payload[:], payload)
	return c
}

// EncodeMACCommands serializes cmds (CID ‖ payload for each) into dst and
// returns the written prefix. It fails with ErrSize if dst is too small.
// An empty cmds slice yields an empty (non-nil-safe) result.
func EncodeMACCommands(dst []byte, cmds []MACCommand) ([]byte, error) {
	pos := 0
	for _, c := range cmds {
		need := 1 + c.n
		if pos+need > len(dst) {
			return nil, ErrSize
		}
		dst[pos] = byte(c.CID)
		copy(dst[pos+1:pos+need], c.Payload())
		pos += need
	}
	return dst[:pos], nil
}

// MACCommandDecoder lazily decodes a sequence of MAC commands for one
// direction out of a borrowed byte span. It terminates without error on
// the first unknown CID or truncated payload, per spec §4.3 — this
// mirrors the link-layer specification's policy of ignoring malformed or
// unrecognized MAC commands rather than rejecting the whole frame.
type MACCommandDecoder struct {
	buf    []byte
	uplink bool
}

// NewMACCommandDecoder returns a decoder over buf for the given
// direction (uplink true decodes uplink commands, false decodes
// downlink commands).
func NewMACCommandDecoder(buf []byte, uplink bool) MACCommandDecoder {
	return MACCommandDecoder{buf: buf, uplink: uplink}
}

// Next returns the next command and true, or the zero value and false
// once the span is exhausted or a malformed/unknown command is hit. Once
// Next returns false, it continues to return false; call Remaining to
// recover whatever bytes were left unconsumed.
func (d *MACCommandDecoder) Next() (MACCommand, bool) {
	if len(d.buf) == 0 {
		return MACCommand{}, false
	}

	cid := CID(d.buf[0])
	lengths := d.lengths()
	payloadLen, known := lengths[cid]
	if !known || len(d.buf) < 1+payloadLen {
		return MACCommand{}, false
	}

	cmd := newMACCommand(cid, d.buf[1:1+payloadLen])
	d.buf = d.buf[1+payloadLen:]
	return cmd, true
}

// Remaining returns whatever bytes the decoder has not yet consumed,
// letting a strict caller detect a malformed trailing command.
func (d *MACCommandDecoder) Remaining() []byte {
	return d.buf
}

func (d *MACCommandDecoder) lengths() map[CID]int {
	if d.uplink {
		return uplinkPayloadLen
	}
	return downlinkPayloadLen
}

// ---- frequency helper (§6: three wire bytes -> Hz, multiple of 100) ----

// decodeFrequency reinterprets a 3-byte field, first transmitted byte
// most significant, as ((b[0]<<16)|(b[1]<<8)|b[2]) * 100 Hz.
func decodeFrequency(b []byte) uint32 {
	return (uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])) * 100
}

// encodeFrequency is the inverse of decodeFrequency; hz must be a
// multiple of 100 and fit in 24 bits once divided.
func encodeFrequency(dst []byte, hz uint32) error {
	if hz%100 != 0 {
		return ErrPayload
	}
	v := hz / 100
	if v >= 1<<24 {
		return ErrPayload
	}
	dst[0] = byte(v >> 16)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v)
	return nil
}

// ---- ChMask (shared by LinkADRReq) ----

// ChMask encodes the 16 usable uplink channels, bit 0 = channel 1.
type ChMask [16]bool

func (m ChMask) encode(dst []byte) {
	dst[0], dst[1] = 0, 0
	for i := uint8(0); i < 16; i++ {
		if m[i] {
			dst[i/8] |= 1 << (i % 8)
		}
	}
}

func decodeChMask(b []byte) ChMask {
	var m ChMask
	for i, v := range b {
		for j := uint8(0); j < 8; j++ {
			if v&(1<<j) > 0 {
				m[uint8(i)*8+j] = true
			}
		}
	}
	return m
}

// ---- LinkCheckReq / LinkCheckAns (CID 0x02) ----

// NewLinkCheckReq builds the (empty-payload) uplink LinkCheckReq command.
func NewLinkCheckReq() MACCommand {
	return newMACCommand(CIDLinkCheck, nil)
}

// LinkCheckAnsPayload carries the downlink LinkCheckAns payload. GwCnt
// is transmitted first, then Margin.
type LinkCheckAnsPayload struct {
	GwCnt  uint8
	Margin uint8
}

// NewLinkCheckAns builds a downlink LinkCheckAns command.
func NewLinkCheckAns(p LinkCheckAnsPayload) MACCommand {
	return newMACCommand(CIDLinkCheck, []byte{p.GwCnt, p.Margin})
}

// DecodeLinkCheckAns parses a LinkCheckAns payload previously obtained
// from MACCommand.Payload.
func DecodeLinkCheckAns(data []byte) (LinkCheckAnsPayload, error) {
	if len(data) != 2 {
		return LinkCheckAnsPayload{}, ErrSize
	}
	return LinkCheckAnsPayload{GwCnt: data[0], Margin: data[1]}, nil
}

// ---- LinkADRReq / LinkADRAns (CID 0x03) ----

// Redundancy is the LinkADRReq redundancy/channel-mask-control field.
type Redundancy struct {
	ChMaskCntl uint8 // 3 bits
	NbTrans    uint8 // 4 bits
}

func (r Redundancy) encode() byte {
	return (r.NbTrans & 0x0F) | ((r.ChMaskCntl & 0x07) << 4)
}

func decodeRedundancy(b byte) Redundancy {
	return Redundancy{
		NbTrans:    b & 0x0F,
		ChMaskCntl: (b >> 4) & 0x07,
	}
}

// LinkADRReqPayload carries the downlink LinkADRReq payload.
type LinkADRReqPayload struct {
	DataRate   uint8 // 4 bits
	TXPower    uint8 // 4 bits
	ChMask     ChMask
	Redundancy Redundancy
}

// NewLinkADRReq builds a downlink LinkADRReq command.
func NewLinkADRReq(p LinkADRReqPayload) MACCommand {
	var b [4]byte
	b[0] = (p.TXPower & 0x0F) | ((p.DataRate & 0x0F) << 4)
	p.ChMask.encode(b[1:3])
	b[3] = p.Redundancy.encode()
	return newMACCommand(CIDLinkADR, b[:])
}

// DecodeLinkADRReq parses a LinkADRReq payload.
func DecodeLinkADRReq(data []byte) (LinkADRReqPayload, error) {
	if len(data) != 4 {
		return LinkADRReqPayload{}, ErrSize
	}
	return LinkADRReqPayload{
		TXPower:    data[0] & 0x0F,
		DataRate:   (data[0] >> 4) & 0x0F,
		ChMask:     decodeChMask(data[1:3]),
		Redundancy: decodeRedundancy(data[3]),
	}, nil
}

// LinkADRAnsPayload carries the uplink LinkADRAns payload.
type LinkADRAnsPayload struct {
	ChMaskACK   bool
	DataRateACK bool
	PowerACK    bool
}

func (p LinkADRAnsPayload) encode() byte {
	var b byte
	if p.ChMaskACK {
		b |= 1 << 0
	}
	if p.DataRateACK {
		b |= 1 << 1
	}
	if p.PowerACK {
		b |= 1 << 2
	}
	return b
}

// NewLinkADRAns builds an uplink LinkADRAns command.
func NewLinkADRAns(p LinkADRAnsPayload) MACCommand {
	return newMACCommand(CIDLinkADR, []byte{p.encode()})
}

// DecodeLinkADRAns parses a LinkADRAns payload.
func DecodeLinkADRAns(data []byte) (LinkADRAnsPayload, error) {
	if len(data) != 1 {
		return LinkADRAnsPayload{}, ErrSize
	}
	b := data[0]
	return LinkADRAnsPayload{
		ChMaskACK:   b&(1<<0) > 0,
		DataRateACK: b&(1<<1) > 0,
		PowerACK:    b&(1<<2) > 0,
	}, nil
}

// ---- DutyCycleReq / DutyCycleAns (CID 0x04) ----

// DutyCycleReqPayload carries the downlink DutyCycleReq payload.
type DutyCycleReqPayload struct {
	MaxDCycle uint8 // 4 bits
}

// NewDutyCycleReq builds a downlink DutyCycleReq command.
func NewDutyCycleReq(p DutyCycleReqPayload) MACCommand {
	return newMACCommand(CIDDutyCycle, []byte{p.MaxDCycle & 0x0F})
}

// DecodeDutyCycleReq parses a DutyCycleReq payload.
func DecodeDutyCycleReq(data []byte) (DutyCycleReqPayload, error) {
	if len(data) != 1 {
		return DutyCycleReqPayload{}, ErrSize
	}
	return DutyCycleReqPayload{MaxDCycle: data[0] & 0x0F}, nil
}

// NewDutyCycleAns builds the (empty-payload) uplink DutyCycleAns command.
func NewDutyCycleAns() MACCommand {
	return newMACCommand(CIDDutyCycle, nil)
}

// ---- RXParamSetupReq / RXParamSetupAns (CID 0x05) ----

// DLSettings is the downlink-settings bitfield shared by RXParamSetupReq
// and the JoinAccept view.
type DLSettings struct {
	RX1DROffset uint8 // 3 bits
	RX2DataRate uint8 // 4 bits
	OptNeg      bool  // RFU in 1.0, repurposed in 1.1 join-accept
}

func (s DLSettings) encode() byte {
	b := s.RX2DataRate & 0x0F
	b |= (s.RX1DROffset & 0x07) << 4
	if s.OptNeg {
		b |= 1 << 7
	}
	return b
}

func decodeDLSettings(b byte) DLSettings {
	return DLSettings{
		RX2DataRate: b & 0x0F,
		RX1DROffset: (b >> 4) & 0x07,
		OptNeg:      b&(1<<7) != 0,
	}
}

// RXParamSetupReqPayload carries the downlink RXParamSetupReq payload.
type RXParamSetupReqPayload struct {
	Frequency   uint32 // Hz, multiple of 100
	DLSettings  DLSettings
}

// NewRXParamSetupReq builds a downlink RXParamSetupReq command.
func NewRXParamSetupReq(p RXParamSetupReqPayload) (MACCommand, error) {
	var b [4]byte
	b[0] = p.DLSettings.encode()
	if err := encodeFrequency(b[1:4], p.Frequency); err != nil {
		return MACCommand{}, err
	}
	return newMACCommand(CIDRXParamSetup, b[:]), nil
}

// DecodeRXParamSetupReq parses an RXParamSetupReq payload.
func DecodeRXParamSetupReq(data []byte) (RXParamSetupReqPayload, error) {
	if len(data) != 4 {
		return RXParamSetupReqPayload{}, ErrSize
	}
	return RXParamSetupReqPayload{
		DLSettings: decodeDLSettings(data[0]),
		Frequency:  decodeFrequency(data[1:4]),
	}, nil
}

// RXParamSetupAnsPayload carries the uplink RXParamSetupAns payload.
type RXParamSetupAnsPayload struct {
	ChannelACK     bool
	RX2DataRateACK bool
	RX1DROffsetACK bool
}

func (p RXParamSetupAnsPayload) encode() byte {
	var b byte
	if p.ChannelACK {
		b |= 1 << 0
	}
	if p.RX2DataRateACK {
		b |= 1 << 1
	}
	if p.RX1DROffsetACK {
		b |= 1 << 2
	}
	return b
}

// NewRXParamSetupAns builds an uplink RXParamSetupAns command.
func NewRXParamSetupAns(p RXParamSetupAnsPayload) MACCommand {
	return newMACCommand(CIDRXParamSetup, []byte{p.encode()})
}

// DecodeRXParamSetupAns parses an RXParamSetupAns payload.
func DecodeRXParamSetupAns(data []byte) (RXParamSetupAnsPayload, error) {
	if len(data) != 1 {
		return RXParamSetupAnsPayload{}, ErrSize
	}
	b := data[0]
	return RXParamSetupAnsPayload{
		ChannelACK:     b&(1<<0) > 0,
		RX2DataRateACK: b&(1<<1) > 0,
		RX1DROffsetACK: b&(1<<2) > 0,
	}, nil
}

// ---- DevStatusReq / DevStatusAns (CID 0x06) ----

// NewDevStatusReq builds the (empty-payload) downlink DevStatusReq command.
func NewDevStatusReq() MACCommand {
	return newMACCommand(CIDDevStatus, nil)
}

// DevStatusAnsPayload carries the uplink DevStatusAns payload. Margin is
// a signed 6-bit value in the range [-32, 31], transmitted before
// Battery.
type DevStatusAnsPayload struct {
	Margin  int8
	Battery uint8
}

// NewDevStatusAns builds an uplink DevStatusAns command.
func NewDevStatusAns(p DevStatusAnsPayload) (MACCommand, error) {
	if p.Margin < -32 || p.Margin > 31 {
		return MACCommand{}, ErrPayload
	}
	margin := uint8(p.Margin)
	if p.Margin < 0 {
		margin = uint8(64 + p.Margin)
	}
	return newMACCommand(CIDDevStatus, []byte{margin, p.Battery}), nil
}

// DecodeDevStatusAns parses a DevStatusAns payload.
func DecodeDevStatusAns(data []byte) (DevStatusAnsPayload, error) {
	if len(data) != 2 {
		return DevStatusAnsPayload{}, ErrSize
	}
	margin := int8(data[0])
	if data[0] > 31 {
		margin = int8(data[0]) - 64
	}
	return DevStatusAnsPayload{Margin: margin, Battery: data[1]}, nil
}

// ---- NewChannelReq / NewChannelAns (CID 0x07) ----

// NewChannelReqPayload carries the downlink NewChannelReq payload.
type NewChannelReqPayload struct {
	ChIndex uint8
	Freq    uint32 // Hz, multiple of 100
	MaxDR   uint8  // 4 bits
	MinDR   uint8  // 4 bits
}

// NewNewChannelReq builds a downlink NewChannelReq command.
func NewNewChannelReq(p NewChannelReqPayload) (MACCommand, error) {
	var b [5]byte
	b[0] = p.ChIndex
	if err := encodeFrequency(b[1:4], p.Freq); err != nil {
		return MACCommand{}, err
	}
	b[4] = (p.MinDR & 0x0F) | ((p.MaxDR & 0x0F) << 4)
	return newMACCommand(CIDNewChannel, b[:]), nil
}

// DecodeNewChannelReq parses a NewChannelReq payload.
func DecodeNewChannelReq(data []byte) (NewChannelReqPayload, error) {
	if len(data) != 5 {
		return NewChannelReqPayload{}, ErrSize
	}
	return NewChannelReqPayload{
		ChIndex: data[0],
		Freq:    decodeFrequency(data[1:4]),
		MinDR:   data[4] & 0x0F,
		MaxDR:   (data[4] >> 4) & 0x0F,
	}, nil
}

// NewChannelAnsPayload carries the uplink NewChannelAns payload.
type NewChannelAnsPayload struct {
	ChannelFrequencyOK bool
	DataRateRangeOK    bool
}

func (p NewChannelAnsPayload) encode() byte {
	var b byte
	if p.ChannelFrequencyOK {
		b |= 1 << 0
	}
	if p.DataRateRangeOK {
		b |= 1 << 1
	}
	return b
}

// NewNewChannelAns builds an uplink NewChannelAns command.
func NewNewChannelAns(p NewChannelAnsPayload) MACCommand {
	return newMACCommand(CIDNewChannel, []byte{p.encode()})
}

// DecodeNewChannelAns parses a NewChannelAns payload.
func DecodeNewChannelAns(data []byte) (NewChannelAnsPayload, error) {
	if len(data) != 1 {
		return NewChannelAnsPayload{}, ErrSize
	}
	b := data[0]
	return NewChannelAnsPayload{
		ChannelFrequencyOK: b&(1<<0) > 0,
		DataRateRangeOK:    b&(1<<1) > 0,
	}, nil
}

// ---- RXTimingSetupReq / RXTimingSetupAns (CID 0x08) ----

// RXTimingSetupReqPayload carries the downlink RXTimingSetupReq payload.
type RXTimingSetupReqPayload struct {
	Delay uint8 // 3 bits; 0 and 1 both mean 1s
}

// NewRXTimingSetupReq builds a downlink RXTimingSetupReq command.
func NewRXTimingSetupReq(p RXTimingSetupReqPayload) MACCommand {
	return newMACCommand(CIDRXTimingSetup, []byte{p.Delay & 0x07})
}

// DecodeRXTimingSetupReq parses an RXTimingSetupReq payload.
func DecodeRXTimingSetupReq(data []byte) (RXTimingSetupReqPayload, error) {
	if len(data) != 1 {
		return RXTimingSetupReqPayload{}, ErrSize
	}
	return RXTimingSetupReqPayload{Delay: data[0] & 0x07}, nil
}

// NewRXTimingSetupAns builds the (empty-payload) uplink RXTimingSetupAns command.
func NewRXTimingSetupAns() MACCommand {
	return newMACCommand(CIDRXTimingSetup, nil)
}

// ---- TxParamSetupReq / TxParamSetupAns (CID 0x09) ----

// maxEIRPTable is the index->dBm lookup used by TxParamSetupReq, per the
// LoRaWAN regional parameters table this command references.
var maxEIRPTable = [16]uint8{8, 10, 12, 13, 14, 16, 18, 20, 21, 24, 26, 27, 29, 30, 33, 36}

// DwellTime distinguishes the two dwell-time settings TxParamSetupReq
// can request.
type DwellTime uint8

// Possible dwell-time values.
const (
	DwellTimeNoLimit DwellTime = iota
	DwellTime400ms
)

// TxParamSetupReqPayload carries the downlink TxParamSetupReq payload.
type TxParamSetupReqPayload struct {
	DownlinkDwellTime DwellTime
	UplinkDwellTime   DwellTime
	MaxEIRP           uint8 // must be one of maxEIRPTable
}

// NewTxParamSetupReq builds a downlink TxParamSetupReq command.
func NewTxParamSetupReq(p TxParamSetupReqPayload) (MACCommand, error) {
	idx := -1
	for i, v := range maxEIRPTable {
		if v == p.MaxEIRP {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MACCommand{}, ErrPayload
	}
	b := uint8(idx)
	if p.UplinkDwellTime == DwellTime400ms {
		b |= 1 << 4
	}
	if p.DownlinkDwellTime == DwellTime400ms {
		b |= 1 << 5
	}
	return newMACCommand(CIDTxParamSetup, []byte{b}), nil
}

// DecodeTxParamSetupReq parses a TxParamSetupReq payload.
func DecodeTxParamSetupReq(data []byte) (TxParamSetupReqPayload, error) {
	if len(data) != 1 {
		return TxParamSetupReqPayload{}, ErrSize
	}
	b := data[0]
	p := TxParamSetupReqPayload{MaxEIRP: maxEIRPTable[b&0x0F]}
	if b&(1<<4) > 0 {
		p.UplinkDwellTime = DwellTime400ms
	}
	if b&(1<<5) > 0 {
		p.DownlinkDwellTime = DwellTime400ms
	}
	return p, nil
}

// NewTxParamSetupAns builds the (empty-payload) uplink TxParamSetupAns command.
func NewTxParamSetupAns() MACCommand {
	return newMACCommand(CIDTxParamSetup, nil)
}

// ---- DlChannelReq / DlChannelAns (CID 0x0A) ----

// DlChannelReqPayload carries the downlink DlChannelReq payload.
type DlChannelReqPayload struct {
	ChIndex uint8
	Freq    uint32 // Hz, multiple of 100
}

// NewDlChannelReq builds a downlink DlChannelReq command.
func NewDlChannelReq(p DlChannelReqPayload) (MACCommand, error) {
	var b [4]byte
	b[0] = p.ChIndex
	if err := encodeFrequency(b[1:4], p.Freq); err != nil {
		return MACCommand{}, err
	}
	return newMACCommand(CIDDlChannel, b[:]), nil
}

// DecodeDlChannelReq parses a DlChannelReq payload.
func DecodeDlChannelReq(data []byte) (DlChannelReqPayload, error) {
	if len(data) != 4 {
		return DlChannelReqPayload{}, ErrSize
	}
	return DlChannelReqPayload{
		ChIndex: data[0],
		Freq:    decodeFrequency(data[1:4]),
	}, nil
}

// DlChannelAnsPayload carries the uplink DlChannelAns payload.
type DlChannelAnsPayload struct {
	ChannelFrequencyOK    bool
	UplinkFrequencyExists bool
}

func (p DlChannelAnsPayload) encode() byte {
	var b byte
	if p.ChannelFrequencyOK {
		b |= 1 << 0
	}
	if p.UplinkFrequencyExists {
		b |= 1 << 1
	}
	return b
}

// NewDlChannelAns builds an uplink DlChannelAns command.
func NewDlChannelAns(p DlChannelAnsPayload) MACCommand {
	return newMACCommand(CIDDlChannel, []byte{p.encode()})
}

// DecodeDlChannelAns parses a DlChannelAns payload.
func DecodeDlChannelAns(data []byte) (DlChannelAnsPayload, error) {
	if len(data) != 1 {
		return DlChannelAnsPayload{}, ErrSize
	}
	b := data[0]
	return DlChannelAnsPayload{
		ChannelFrequencyOK:    b&(1<<0) > 0,
		UplinkFrequencyExists: b&(1<<1) > 0,
	}, nil
}

// ---- DeviceTimeReq / DeviceTimeAns (CID 0x0D) ----

// NewDeviceTimeReq builds the (empty-payload) uplink DeviceTimeReq command.
func NewDeviceTimeReq() MACCommand {
	return newMACCommand(CIDDeviceTime, nil)
}

// DeviceTimeAnsPayload carries the downlink DeviceTimeAns payload.
//
// Per spec §6/S9 the 4-byte seconds field is read big-endian here. This
// is a deliberate deviation from the real LoRaWAN DeviceTimeAns (and
// from this package's teacher), which read it little-endian; see
// DESIGN.md OQ-1.
type DeviceTimeAnsPayload struct {
	Seconds   uint32
	Fractions uint8 // 1/256ths of a second
}

// GPSEpochNanoseconds returns the time since the GPS epoch encoded by
// this payload, in nanoseconds (spec §6: seconds*1e9 + fractions*3906250).
func (p DeviceTimeAnsPayload) GPSEpochNanoseconds() uint64 {
	return uint64(p.Seconds)*1_000_000_000 + uint64(p.Fractions)*3_906_250
}

// NewDeviceTimeAns builds a downlink DeviceTimeAns command.
func NewDeviceTimeAns(p DeviceTimeAnsPayload) MACCommand {
	var b [5]byte
	binary.BigEndian.PutUint32(b[0:4], p.Seconds)
	b[4] = p.Fractions
	return newMACCommand(CIDDeviceTime, b[:])
}

// DecodeDeviceTimeAns parses a DeviceTimeAns payload.
func DecodeDeviceTimeAns(data []byte) (DeviceTimeAnsPayload, error) {
	if len(data) != 5 {
		return DeviceTimeAnsPayload{}, ErrSize
	}
	return DeviceTimeAnsPayload{
		Seconds:   binary.BigEndian.Uint32(data[0:4]),
		Fractions: data[4],
	}, nil
}
