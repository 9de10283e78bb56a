package soft

import (
	"testing"

	"github.com/stretchr/testify/require"

	lwcrypto "github.com/loraframe/lorawan/crypto"
)

func TestEncryptBlockChangesBlock(t *testing.T) {
	assert := require.New(t)

	var nwkSKey [16]byte
	for i := range nwkSKey {
		nwkSKey[i] = 0x02
	}
	var appSKey [16]byte
	for i := range appSKey {
		appSKey[i] = 0x01
	}
	p := New(nwkSKey, appSKey)

	var block [16]byte
	for i := range block {
		block[i] = byte(i)
	}
	want := block

	assert.NoError(p.EncryptBlock(lwcrypto.Network, &block))
	assert.NotEqual(want, block)
}

func TestEncryptBlockUnknownKeySelector(t *testing.T) {
	assert := require.New(t)

	p := New([16]byte{}, [16]byte{})
	var block [16]byte
	assert.Error(p.EncryptBlock(lwcrypto.KeySelector(99), &block))
}

func TestCMACDeterministic(t *testing.T) {
	assert := require.New(t)

	var nwkSKey [16]byte
	for i := range nwkSKey {
		nwkSKey[i] = 0x02
	}
	p := New(nwkSKey, [16]byte{})

	part1 := []byte{0x49, 0x00, 0x00}
	part2 := []byte{0x01, 0x02, 0x03, 0x04}

	tag1, err := p.CMAC(lwcrypto.Network, part1, part2)
	assert.NoError(err)

	tag2, err := p.CMAC(lwcrypto.Network, append(append([]byte{}, part1...), part2...))
	assert.NoError(err)

	assert.Equal(tag1, tag2)
}

func TestCMACUnknownKeySelector(t *testing.T) {
	assert := require.New(t)

	p := New([16]byte{}, [16]byte{})
	_, err := p.CMAC(lwcrypto.KeySelector(99), []byte{0x01})
	assert.Error(err)
}
