// Package maccert implements the LoRaWAN certification test-harness
// command vocabulary (§1): a small, separate CID space carried on a
// dedicated FPort rather than interleaved with the FOpts/FPort-0 MAC
// commands in the parent package. Unlike the parent package's codec,
// certification commands are not packed several-to-a-buffer: a
// certification frame carries exactly one command, so DecodeDownlink
// parses the span as one command and returns a single result rather
// than iterating.
package maccert

import "github.com/loraframe/lorawan"

// CID identifies a certification command. This is a distinct space
// from lorawan.CID: the two spaces overlap in value, and a byte that
// means LinkCheckReq in the parent package's FOpts space means
// something else entirely on the certification FPort.
type CID uint8

// Certification command identifiers, downlink (TCL to DUT) direction
// except where noted. Values follow the discriminants literally given
// for PackageVersionAns (0x00), EchoPayloadAns (0x08), RxAppCntAns
// (0x09) and DutVersionsAns (0x7F); the remaining CIDs follow the same
// enum's declaration order.
const (
	CIDPackageVersion        CID = 0x00
	CIDDutReset              CID = 0x01
	CIDDutJoin               CID = 0x02
	CIDSwitchClass           CID = 0x03
	CIDAdrBitChange          CID = 0x04
	CIDRegionalDutyCycleCtrl CID = 0x05
	CIDTxPeriodicityChange   CID = 0x06
	CIDTxFramesCtrl          CID = 0x07
	CIDEchoPayload           CID = 0x08
	CIDRxAppCnt              CID = 0x09
	CIDRxAppCntReset         CID = 0x0A
	CIDLinkCheck             CID = 0x0B
	CIDDeviceTime            CID = 0x0C
	CIDPingSlotInfo          CID = 0x0D
	CIDTxCw                  CID = 0x0E
	CIDDutFPort224Disable    CID = 0x0F
	CIDDutVersions           CID = 0x7F
)

// DUT operating class, the payload of a SwitchClassReq.
type DUTClass uint8

const (
	ClassA DUTClass = 0
	ClassB DUTClass = 1
	ClassC DUTClass = 2
)

// TxFrameType is the payload of a TxFramesCtrlReq.
type TxFrameType uint8

const (
	TxFrameNoChange    TxFrameType = 0
	TxFrameUnconfirmed TxFrameType = 1
	TxFrameConfirmed   TxFrameType = 2
)

// DownlinkCommand is a decoded certification command sent to the DUT.
// Only the field matching CID is meaningful; the others are zero.
type DownlinkCommand struct {
	CID CID

	SwitchClass           DUTClass
	AdrBitChange          bool
	RegionalDutyCycleCtrl bool
	TxPeriodicityChange   uint8
	TxFramesCtrl          TxFrameType
	EchoPayload           []byte // borrows the input span
	RxAppCnt              uint16
	PingSlotInfo          uint8
}

// DecodeDownlink parses buf as a single certification command. buf must
// be at least 1 byte (the CID); commands that carry a payload require
// the matching additional bytes.
func DecodeDownlink(buf []byte) (DownlinkCommand, error) {
	var c DownlinkCommand
	if len(buf) == 0 {
		return c, lorawan.ErrSize
	}
	c.CID = CID(buf[0])
	rest := buf[1:]

	switch c.CID {
	case CIDPackageVersion, CIDDutReset, CIDDutJoin, CIDRxAppCntReset,
		CIDLinkCheck, CIDDeviceTime, CIDTxCw, CIDDutFPort224Disable,
		CIDDutVersions:
		return c, nil
	case CIDSwitchClass:
		if len(rest) < 1 {
			return c, lorawan.ErrSize
		}
		c.SwitchClass = DUTClass(rest[0])
	case CIDAdrBitChange:
		if len(rest) < 1 {
			return c, lorawan.ErrSize
		}
		c.AdrBitChange = rest[0] == 1
	case CIDRegionalDutyCycleCtrl:
		if len(rest) < 1 {
			return c, lorawan.ErrSize
		}
		c.RegionalDutyCycleCtrl = rest[0] == 1
	case CIDTxPeriodicityChange:
		if len(rest) < 1 {
			return c, lorawan.ErrSize
		}
		c.TxPeriodicityChange = rest[0]
	case CIDTxFramesCtrl:
		if len(rest) < 1 {
			return c, lorawan.ErrSize
		}
		c.TxFramesCtrl = TxFrameType(rest[0])
	case CIDEchoPayload:
		c.EchoPayload = rest
	case CIDRxAppCnt:
		if len(rest) < 2 {
			return c, lorawan.ErrSize
		}
		c.RxAppCnt = uint16(rest[0]) | uint16(rest[1])<<8
	case CIDPingSlotInfo:
		if len(rest) < 1 {
			return c, lorawan.ErrSize
		}
		c.PingSlotInfo = rest[0]
	default:
		return c, lorawan.ErrPayload
	}
	return c, nil
}

// PackageVersionAns is the uplink answer to PackageVersionReq.
type PackageVersionAns struct {
	PackageIdentifier uint8
	PackageVersion    uint8
}

// EncodePackageVersionAns writes the CID and payload to dst.
func EncodePackageVersionAns(dst []byte, ans PackageVersionAns) ([]byte, error) {
	if len(dst) < 3 {
		return nil, lorawan.ErrSize
	}
	buf := dst[:3]
	buf[0] = byte(CIDPackageVersion)
	buf[1] = ans.PackageIdentifier
	buf[2] = ans.PackageVersion
	return buf, nil
}

// DecodePackageVersionAns decodes buf (the payload only, CID stripped).
func DecodePackageVersionAns(buf []byte) (PackageVersionAns, error) {
	var ans PackageVersionAns
	if len(buf) != 2 {
		return ans, lorawan.ErrSize
	}
	ans.PackageIdentifier = buf[0]
	ans.PackageVersion = buf[1]
	return ans, nil
}

// EncodeEchoPayloadAns writes the CID followed by echoBytes (each byte
// of the original EchoPayloadReq payload incremented by one, per the
// certification protocol) to dst.
func EncodeEchoPayloadAns(dst []byte, echoBytes []byte) ([]byte, error) {
	if len(dst) < 1+len(echoBytes) {
		return nil, lorawan.ErrSize
	}
	buf := dst[:1+len(echoBytes)]
	buf[0] = byte(CIDEchoPayload)
	copy(buf[1:], echoBytes)
	return buf, nil
}

// IncrementEchoPayload returns req with each byte incremented by one,
// the transform EchoPayloadAns applies to an EchoPayloadReq payload.
func IncrementEchoPayload(dst, req []byte) []byte {
	n := copy(dst, req)
	for i := 0; i < n; i++ {
		dst[i]++
	}
	return dst[:n]
}
