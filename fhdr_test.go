package lorawan

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFCtrl(t *testing.T) {
	Convey("Given a set of FCtrl field combinations", t, func() {
		tests := []struct {
			Name     string
			ADR      bool
			ACK      bool
			FPending bool
			FOptsLen uint8
			Byte     FCtrl
		}{
			{Name: "all zero", Byte: 0},
			{Name: "adr only (S1, S4)", ADR: true, Byte: 0x80},
			{Name: "adr and ack (S5)", ADR: true, ACK: true, Byte: 0xA0},
			{Name: "f_opts_len in the low nibble", FOptsLen: 5, Byte: 5},
		}

		for _, tst := range tests {
			Convey("Then "+tst.Name+" round-trips through NewFCtrl", func() {
				fc, err := NewFCtrl(tst.ADR, tst.ACK, tst.FPending, tst.FOptsLen)
				So(err, ShouldBeNil)
				So(fc, ShouldEqual, tst.Byte)
				So(fc.ADR(), ShouldEqual, tst.ADR)
				So(fc.ACK(), ShouldEqual, tst.ACK)
				So(fc.FPending(), ShouldEqual, tst.FPending)
				So(fc.FOptsLen(), ShouldEqual, tst.FOptsLen)
			})
		}

		Convey("Then an FOptsLen above 15 is rejected", func() {
			_, err := NewFCtrl(false, false, false, 16)
			So(err, ShouldEqual, ErrSize)
		})

		Convey("Then bit 6 never surfaces through a named accessor", func() {
			fc := FCtrl(1 << 6)
			So(fc.ADR(), ShouldBeFalse)
			So(fc.ACK(), ShouldBeFalse)
			So(fc.FPending(), ShouldBeFalse)
			So(fc.FOptsLen(), ShouldEqual, 0)
		})
	})
}
