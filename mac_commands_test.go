package lorawan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeMACCommandsUplinkRoundtrip(t *testing.T) {
	assert := require.New(t)

	cmds := []MACCommand{
		NewLinkCheckReq(),
		NewLinkADRAns(LinkADRAnsPayload{ChMaskACK: true}),
	}

	var buf [16]byte
	out, err := EncodeMACCommands(buf[:], cmds)
	assert.NoError(err)
	assert.Equal([]byte{0x02, 0x03, 0x01}, out)
}

func TestMACCommandDecoderDownlink(t *testing.T) {
	assert := require.New(t)

	buf := []byte{0x02, 0x03, 0x04, 0x03, 0x21, 0x02, 0x03, 0x45}
	dec := NewMACCommandDecoder(buf, false)

	cmd, ok := dec.Next()
	assert.True(ok)
	assert.Equal(CIDLinkCheck, cmd.CID)
	ans, err := DecodeLinkCheckAns(cmd.Payload())
	assert.NoError(err)
	assert.Equal(LinkCheckAnsPayload{GwCnt: 3, Margin: 4}, ans)

	cmd, ok = dec.Next()
	assert.True(ok)
	assert.Equal(CIDLinkADR, cmd.CID)
	req, err := DecodeLinkADRReq(cmd.Payload())
	assert.NoError(err)
	assert.Equal(LinkADRReqPayload{
		DataRate: 2,
		TXPower:  1,
		ChMask:   decodeChMask([]byte{0x02, 0x03}),
		Redundancy: Redundancy{
			ChMaskCntl: 4,
			NbTrans:    5,
		},
	}, req)

	_, ok = dec.Next()
	assert.False(ok)
	assert.Empty(dec.Remaining())
}

func TestMACCommandDecoderEmptyInput(t *testing.T) {
	dec := NewMACCommandDecoder(nil, true)
	_, ok := dec.Next()
	require.False(t, ok)
}

func TestMACCommandDecoderTerminatesOnUnknownCID(t *testing.T) {
	assert := require.New(t)

	dec := NewMACCommandDecoder([]byte{0xFF, 0x01, 0x02}, true)
	_, ok := dec.Next()
	assert.False(ok)
	assert.Equal([]byte{0xFF, 0x01, 0x02}, dec.Remaining())
}

func TestMACCommandDecoderTerminatesOnTruncatedPayload(t *testing.T) {
	assert := require.New(t)

	// LinkADRReq (downlink, 0x03) needs 4 bytes, only 2 are present.
	dec := NewMACCommandDecoder([]byte{0x03, 0x01, 0x02}, false)
	_, ok := dec.Next()
	assert.False(ok)
}

func TestDecodeFrequency(t *testing.T) {
	assert := require.New(t)

	req, err := DecodeRXParamSetupReq([]byte{0x5C, 0x84, 0x76, 0x2A})
	assert.NoError(err)
	assert.Equal(uint32(868100200), req.Frequency)
	assert.Equal(uint8(5), req.DLSettings.RX1DROffset)
	assert.Equal(uint8(12), req.DLSettings.RX2DataRate)
}

func TestDeviceTimeAnsGPSEpoch(t *testing.T) {
	assert := require.New(t)

	ans, err := DecodeDeviceTimeAns([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	assert.NoError(err)
	assert.Equal(uint32(0x01020304), ans.Seconds)
	assert.Equal(uint8(5), ans.Fractions)
	assert.Equal(uint64(16909060019531250), ans.GPSEpochNanoseconds())
}

func TestDevStatusAnsNegativeMargin(t *testing.T) {
	assert := require.New(t)

	cmd, err := NewDevStatusAns(DevStatusAnsPayload{Margin: -10, Battery: 200})
	assert.NoError(err)

	decoded, err := DecodeDevStatusAns(cmd.Payload())
	assert.NoError(err)
	assert.Equal(int8(-10), decoded.Margin)
	assert.Equal(uint8(200), decoded.Battery)
}

func TestDevStatusAnsMarginOutOfRange(t *testing.T) {
	_, err := NewDevStatusAns(DevStatusAnsPayload{Margin: 32})
	require.Equal(t, ErrPayload, err)
}

func TestTxParamSetupReqUnknownEIRP(t *testing.T) {
	_, err := NewTxParamSetupReq(TxParamSetupReqPayload{MaxEIRP: 99})
	require.Equal(t, ErrPayload, err)
}

func TestEncodeMACCommandsOverflow(t *testing.T) {
	var tiny [1]byte
	_, err := EncodeMACCommands(tiny[:], []MACCommand{NewLinkCheckAns(LinkCheckAnsPayload{Margin: 1, GwCnt: 1})})
	require.Equal(t, ErrSize, err)
}
