package lorawan

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/loraframe/lorawan/crypto/soft"
)

func repeatKey(b byte) [16]byte {
	var k [16]byte
	for i := range k {
		k[i] = b
	}
	return k
}

func TestDecodeUplinkFHDR(t *testing.T) {
	Convey("Given the 18-byte uplink span from the worked example", t, func() {
		buf := []byte{
			0x40, 0x04, 0x03, 0x02, 0x01, 0x80, 0x01, 0x00,
			0x01, 0xA6, 0x94, 0x64, 0x26, 0x15, 0xD6, 0xC3,
			0xB5, 0x82,
		}
		prov := soft.New(repeatKey(0x02), repeatKey(0x01))

		Convey("When decoded as an uplink with full FCnt 1", func() {
			df, err := DecodeUplink(buf, 1, prov)

			Convey("Then it parses without error", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the FHDR fields match the wire bytes", func() {
				So(df.DevAddr(), ShouldResemble, DevAddr{0x04, 0x03, 0x02, 0x01})
				So(df.FCnt(), ShouldEqual, uint16(1))
				So(df.FCtrl().ADR(), ShouldBeTrue)
				So(df.FCtrl().ACK(), ShouldBeFalse)
				So(df.FCtrl().FPending(), ShouldBeFalse)
				So(df.FCtrl().FOptsLen(), ShouldEqual, uint8(0))
			})

			Convey("Then the MIC verifies and the payload decrypts to hello", func() {
				So(err, ShouldBeNil)
				So(df.Payload()[:5], ShouldResemble, []byte("hello"))
			})
		})
	})
}

func TestDecodeDownlinkConfirmed(t *testing.T) {
	Convey("Given the confirmed downlink span from the worked example", t, func() {
		buf := []byte{
			0xA0, 0x04, 0x03, 0x02, 0x01, 0x80, 0xFF, 0x2A,
			0x2A, 0x0A, 0xF1, 0xA3, 0x6A, 0x05, 0xD0, 0x12,
			0x5F, 0x88, 0x5D, 0x88, 0x1D, 0x49, 0xE1,
		}
		prov := soft.New(repeatKey(0x02), repeatKey(0x01))

		Convey("When decoded as a downlink with full FCnt 0x0012AFF", func() {
			df, err := DecodeDownlink(buf, 0x0012AFF, prov)

			Convey("Then it decodes as confirmed with the expected header fields", func() {
				So(err, ShouldBeNil)
				So(df.Confirmed(), ShouldBeTrue)
				So(df.DevAddr(), ShouldResemble, DevAddr{0x04, 0x03, 0x02, 0x01})
				So(df.FCnt(), ShouldEqual, uint16(0x2AFF))
				So(df.FCtrl().ADR(), ShouldBeTrue)
				So(df.FCtrl().ACK(), ShouldBeFalse)
				So(df.FCtrl().FPending(), ShouldBeFalse)
				So(df.FCtrl().FOptsLen(), ShouldEqual, uint8(0))
			})

			Convey("Then the decrypted payload begins with hello lora", func() {
				So(err, ShouldBeNil)
				So(df.Payload()[:10], ShouldResemble, []byte("hello lora"))
			})
		})
	})
}

func TestEncodeUplinkLiteral(t *testing.T) {
	Convey("Given the literal encode scenario", t, func() {
		prov := soft.New(repeatKey(0x01), repeatKey(0x00))
		port := uint8(4)
		fields := FrameFields{
			DevAddr:  DevAddr{0x00, 0x01, 0x02, 0x03},
			ADR:      true,
			ACK:      true,
			FCntFull: 5,
			FPort:    &port,
			Payload:  []byte{0x01, 0x02},
		}

		Convey("When encoded as a confirmed uplink", func() {
			var buf [32]byte
			out, err := EncodeUplink(buf[:], true, fields, prov)

			Convey("Then it produces the expected wire prefix and MIC length", func() {
				So(err, ShouldBeNil)
				So(out[:11], ShouldResemble, []byte{
					0x80, 0x00, 0x01, 0x02, 0x03, 0xA0, 0x05, 0x00,
					0x04, 0x01, 0x02,
				})
				So(len(out), ShouldEqual, 15)
			})

			Convey("Then decoding the result round-trips the frame", func() {
				df, derr := DecodeUplink(out, 5, prov)
				So(derr, ShouldBeNil)
				So(df.DevAddr(), ShouldResemble, fields.DevAddr)
				So(df.Payload(), ShouldResemble, fields.Payload)
			})
		})
	})
}

func TestDecodeUplinkRejectsTamperedMIC(t *testing.T) {
	Convey("Given a validly encoded uplink frame", t, func() {
		prov := soft.New(repeatKey(0x03), repeatKey(0x04))
		port := uint8(1)
		fields := FrameFields{
			DevAddr:  DevAddr{1, 2, 3, 4},
			FCntFull: 9,
			FPort:    &port,
			Payload:  []byte("x"),
		}
		var buf [32]byte
		out, err := EncodeUplink(buf[:], false, fields, prov)
		So(err, ShouldBeNil)

		Convey("When a MIC byte is flipped", func() {
			out[len(out)-1] ^= 0xFF

			Convey("Then decode fails with ErrMIC", func() {
				_, derr := DecodeUplink(out, 9, prov)
				So(derr, ShouldEqual, ErrMIC)
			})
		})

		Convey("When a non-MIC byte is flipped", func() {
			out[0] ^= 0xFF

			Convey("Then decode fails", func() {
				_, derr := DecodeUplink(out, 9, prov)
				So(derr, ShouldNotBeNil)
			})
		})
	})
}

func TestEncodeUplinkRejectsFPendingOnUplink(t *testing.T) {
	Convey("Given uplink fields with FPending set", t, func() {
		prov := soft.New(repeatKey(0), repeatKey(0))
		fields := FrameFields{FPending: true}

		Convey("When encoded as an uplink", func() {
			var buf [32]byte
			_, err := EncodeUplink(buf[:], false, fields, prov)

			Convey("Then it is rejected with ErrPayload", func() {
				So(err, ShouldEqual, ErrPayload)
			})
		})
	})
}

func TestEncodeUplinkRejectsShortDst(t *testing.T) {
	Convey("Given a destination buffer too small for the frame", t, func() {
		prov := soft.New(repeatKey(0), repeatKey(0))
		port := uint8(1)
		fields := FrameFields{FPort: &port, Payload: []byte("hello")}

		Convey("When encoded into a 4-byte buffer", func() {
			var buf [4]byte
			_, err := EncodeUplink(buf[:], false, fields, prov)

			Convey("Then it fails with ErrSize", func() {
				So(err, ShouldEqual, ErrSize)
			})
		})
	})
}

func TestDecodeRejectsShortSpan(t *testing.T) {
	Convey("Given a span shorter than the minimum frame length", t, func() {
		prov := soft.New(repeatKey(0), repeatKey(0))
		buf := make([]byte, 11)

		Convey("When decoded", func() {
			_, err := DecodeUplink(buf, 0, prov)

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestEncodeUplinkRejectsFOptsWithFPortZero(t *testing.T) {
	Convey("Given a frame with FOpts present and FPort also 0", t, func() {
		prov := soft.New(repeatKey(5), repeatKey(6))
		port := uint8(0)
		fields := FrameFields{
			DevAddr:  DevAddr{9, 9, 9, 9},
			FCntFull: 1,
			FOpts:    []byte{byte(CIDLinkCheck)},
			FPort:    &port,
			Payload:  nil,
		}

		Convey("Then encoding it is rejected as ambiguous", func() {
			var buf [32]byte
			_, err := EncodeUplink(buf[:], false, fields, prov)
			So(err, ShouldEqual, ErrPayload)
		})
	})
}
