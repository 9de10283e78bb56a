package lorawan

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
)

// DevAddr is a 4-byte end-device address, stored and displayed in the
// order it appears on the wire. Unlike some LoRaWAN stacks this package
// never reverses DevAddr bytes for display: String shows exactly the
// four bytes EncodeUplink/EncodeDownlink write to the wire.
type DevAddr [4]byte

// String implements fmt.Stringer.
func (a DevAddr) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a DevAddr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *DevAddr) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	if len(b) != len(a) {
		return fmt.Errorf("lorawan: exactly %d bytes are expected", len(a))
	}
	copy(a[:], b)
	return nil
}

// viewDevAddr validates that span has exactly the length DevAddr expects
// and returns a copy of it as a DevAddr. It never allocates beyond the
// returned fixed-size value.
func viewDevAddr(span []byte) (DevAddr, error) {
	var a DevAddr
	if len(span) != len(a) {
		return a, ErrSize
	}
	copy(a[:], span)
	return a, nil
}

// DevEui is an 8-byte IEEE EUI-64 device identifier, wire order.
type DevEui [8]byte

// String implements fmt.Stringer.
func (e DevEui) String() string {
	return hex.EncodeToString(e[:])
}

// MarshalText implements encoding.TextMarshaler.
func (e DevEui) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *DevEui) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	if len(b) != len(e) {
		return fmt.Errorf("lorawan: exactly %d bytes are expected", len(e))
	}
	copy(e[:], b)
	return nil
}

// JoinEui is an 8-byte join-server identifier, wire order.
type JoinEui [8]byte

// String implements fmt.Stringer.
func (e JoinEui) String() string {
	return hex.EncodeToString(e[:])
}

// MarshalText implements encoding.TextMarshaler.
func (e JoinEui) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *JoinEui) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	if len(b) != len(e) {
		return fmt.Errorf("lorawan: exactly %d bytes are expected", len(e))
	}
	copy(e[:], b)
	return nil
}

// DevNonce is the 2-byte nonce a device includes in a join-request.
type DevNonce [2]byte

// String implements fmt.Stringer.
func (n DevNonce) String() string {
	return hex.EncodeToString(n[:])
}

// NwkSKey is the 16-byte network session key. It never appears on the
// wire: it is held by a crypto.Provider and used to compute and verify
// the MIC, and (when FPort==0) to encrypt/decrypt the FRMPayload.
type NwkSKey [16]byte

// String implements fmt.Stringer.
func (k NwkSKey) String() string {
	return hex.EncodeToString(k[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k NwkSKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *NwkSKey) UnmarshalText(text []byte) error {
	return unmarshalKeyText(k[:], text)
}

// Scan implements sql.Scanner so session keys can round-trip through a
// provisioning store without an intermediate byte-slice type.
func (k *NwkSKey) Scan(src interface{}) error {
	return scanKey(k[:], src)
}

// Value implements driver.Valuer.
func (k NwkSKey) Value() (driver.Value, error) {
	return k[:], nil
}

// AppSKey is the 16-byte application session key, used to encrypt and
// decrypt the FRMPayload when FPort != 0.
type AppSKey [16]byte

// String implements fmt.Stringer.
func (k AppSKey) String() string {
	return hex.EncodeToString(k[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k AppSKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AppSKey) UnmarshalText(text []byte) error {
	return unmarshalKeyText(k[:], text)
}

// Scan implements sql.Scanner.
func (k *AppSKey) Scan(src interface{}) error {
	return scanKey(k[:], src)
}

// Value implements driver.Valuer.
func (k AppSKey) Value() (driver.Value, error) {
	return k[:], nil
}

func unmarshalKeyText(dst []byte, text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return fmt.Errorf("lorawan: exactly %d bytes are expected", len(dst))
	}
	copy(dst, b)
	return nil
}

func scanKey(dst []byte, src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("lorawan: []byte type expected, got %T", src)
	}
	if len(b) != len(dst) {
		return fmt.Errorf("lorawan: %d bytes of data are expected", len(dst))
	}
	copy(dst, b)
	return nil
}

// MIC is the 4-byte message integrity code appended to every data frame.
type MIC [4]byte

// String implements fmt.Stringer.
func (m MIC) String() string {
	return hex.EncodeToString(m[:])
}

// MarshalText implements encoding.TextMarshaler.
func (m MIC) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// NetID is a 3-byte network identifier, carried in a JoinAccept frame.
type NetID [3]byte

// String implements fmt.Stringer.
func (n NetID) String() string {
	return hex.EncodeToString(n[:])
}

// MarshalText implements encoding.TextMarshaler.
func (n NetID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
