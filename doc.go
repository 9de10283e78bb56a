/*

Package lorawan implements the LoRaWAN PHY-layer frame format and its MAC
command vocabulary.

It covers three layered concerns: fixed-width byte-view primitives over
borrowed spans, a streaming codec for MAC commands piggybacked on FOpts or
carried as FPort-0 FRMPayload, and the PHY payload framer that ties frame
layout to the AES-128 counter-mode payload cipher and the AES-CMAC message
integrity code. All three must agree bit-for-bit on layout and endianness,
since the cryptographic routines consume fields at fixed offsets inside the
same buffer the framer writes.

Radio PHY modulation, regional channel plans, join-server key agreement and
any long-lived device/network-server state are not part of this package;
see the crypto sub-package for the cryptographic provider contract this
package depends on.

*/
package lorawan
