// Package soft implements the bundled software cryptographic backend:
// plain AES-128 block encryption from the standard library and AES-CMAC
// from github.com/jacobsa/crypto/cmac. It exists for development,
// testing, and devices without a hardware crypto element; it is wired
// in behind the same crypto.Provider interface any other backend would
// implement.
package soft

import (
	"crypto/aes"
	"errors"

	"github.com/jacobsa/crypto/cmac"

	lwcrypto "github.com/loraframe/lorawan/crypto"
)

var errUnknownKeySelector = errors.New("lorawan/crypto/soft: unknown key selector")

// Provider is a crypto.Provider backed by two plain AES-128 keys held in
// memory. The zero value is not usable; construct with New.
type Provider struct {
	nwkSKey [16]byte
	appSKey [16]byte
}

// New returns a Provider that uses nwkSKey for Network-selected
// operations and appSKey for Application-selected ones.
func New(nwkSKey, appSKey [16]byte) *Provider {
	return &Provider{nwkSKey: nwkSKey, appSKey: appSKey}
}

func (p *Provider) key(sel lwcrypto.KeySelector) ([]byte, error) {
	switch sel {
	case lwcrypto.Network:
		return p.nwkSKey[:], nil
	case lwcrypto.Application:
		return p.appSKey[:], nil
	default:
		return nil, errUnknownKeySelector
	}
}

// EncryptBlock implements crypto.Provider.
func (p *Provider) EncryptBlock(sel lwcrypto.KeySelector, block *[16]byte) error {
	key, err := p.key(sel)
	if err != nil {
		return err
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	c.Encrypt(block[:], block[:])
	return nil
}

// CMAC implements crypto.Provider.
func (p *Provider) CMAC(sel lwcrypto.KeySelector, parts ...[]byte) ([16]byte, error) {
	var tag [16]byte
	key, err := p.key(sel)
	if err != nil {
		return tag, err
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		return tag, err
	}

	mac := cmac.New(c)
	for _, part := range parts {
		if _, err := mac.Write(part); err != nil {
			return tag, err
		}
	}
	copy(tag[:], mac.Sum(nil))
	return tag, nil
}
