package maccert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loraframe/lorawan"
)

func TestDecodeDownlinkNoPayloadCommands(t *testing.T) {
	assert := require.New(t)

	for _, cid := range []CID{CIDPackageVersion, CIDDutReset, CIDDutJoin, CIDRxAppCntReset,
		CIDLinkCheck, CIDDeviceTime, CIDTxCw, CIDDutFPort224Disable, CIDDutVersions} {
		c, err := DecodeDownlink([]byte{byte(cid)})
		assert.NoError(err)
		assert.Equal(cid, c.CID)
	}
}

func TestDecodeDownlinkSwitchClass(t *testing.T) {
	c, err := DecodeDownlink([]byte{byte(CIDSwitchClass), byte(ClassB)})
	require.NoError(t, err)
	require.Equal(t, ClassB, c.SwitchClass)
}

func TestDecodeDownlinkEchoPayload(t *testing.T) {
	c, err := DecodeDownlink([]byte{byte(CIDEchoPayload), 0x01, 0x02, 0x03})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, c.EchoPayload)
}

func TestDecodeDownlinkRxAppCnt(t *testing.T) {
	c, err := DecodeDownlink([]byte{byte(CIDRxAppCnt), 0x34, 0x12})
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), c.RxAppCnt)
}

func TestDecodeDownlinkTruncated(t *testing.T) {
	_, err := DecodeDownlink([]byte{byte(CIDSwitchClass)})
	require.Equal(t, lorawan.ErrSize, err)
}

func TestDecodeDownlinkEmpty(t *testing.T) {
	_, err := DecodeDownlink(nil)
	require.Equal(t, lorawan.ErrSize, err)
}

func TestDecodeDownlinkUnknownCID(t *testing.T) {
	_, err := DecodeDownlink([]byte{0x55})
	require.Equal(t, lorawan.ErrPayload, err)
}

func TestIncrementEchoPayload(t *testing.T) {
	var dst [3]byte
	out := IncrementEchoPayload(dst[:], []byte{0x01, 0x02, 0xFF})
	require.Equal(t, []byte{0x02, 0x03, 0x00}, out)
}

func TestEncodeDecodePackageVersionAns(t *testing.T) {
	assert := require.New(t)

	var buf [3]byte
	out, err := EncodePackageVersionAns(buf[:], PackageVersionAns{PackageIdentifier: 1, PackageVersion: 2})
	assert.NoError(err)
	assert.Equal([]byte{byte(CIDPackageVersion), 1, 2}, out)

	ans, err := DecodePackageVersionAns(out[1:])
	assert.NoError(err)
	assert.Equal(PackageVersionAns{PackageIdentifier: 1, PackageVersion: 2}, ans)
}

func TestEncodeEchoPayloadAns(t *testing.T) {
	var buf [4]byte
	out, err := EncodeEchoPayloadAns(buf[:], []byte{0x02, 0x03, 0x04})
	require.NoError(t, err)
	require.Equal(t, []byte{byte(CIDEchoPayload), 0x02, 0x03, 0x04}, out)
}
