package ja3

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/tlsprint/ja3/tlscode"
)

// IsClientHello is a cheap sanity check that buf plausibly starts a
// TLS ClientHello record. The "science" behind the byte offsets:
// buf[0] == TLS Handshake, buf[5] == Client Hello, buf[1] and buf[9]
// == major version 3 of the record and hello versions.
func IsClientHello(buf []byte) error {
	if len(buf) < minPacketLength {
		return fmt.Errorf("packet appears to be truncated")
	}
	if !(buf[0] == recordTypeHandshake && buf[5] == handshakeTypeClientHello && buf[1] == 3 && buf[9] == 3) {
		return fmt.Errorf("does not look like a client hello")
	}
	return nil
}

// ProcessClientHello fills f from a raw TLS ClientHello record,
// producing the five JA3 sequences in the order the client sent them.
// GREASE ciphers, extensions and curves are filtered out.
func (f *Fingerprint) ProcessClientHello(buf []byte) error {
	if err := IsClientHello(buf); err != nil {
		return err
	}

	hello := cryptobyte.String(buf)

	var (
		recordType    uint8
		recordVersion uint16
		record        cryptobyte.String
	)
	if !hello.ReadUint8(&recordType) ||
		!hello.ReadUint16(&recordVersion) ||
		!hello.ReadUint16LengthPrefixed(&record) {
		return fmt.Errorf("could not read record header")
	}

	var (
		handshakeType uint8
		body          cryptobyte.String
	)
	if !record.ReadUint8(&handshakeType) || !record.ReadUint24LengthPrefixed(&body) {
		return fmt.Errorf("could not read handshake header")
	}

	var helloVersion uint16
	if !body.ReadUint16(&helloVersion) {
		return fmt.Errorf("could not read hello version")
	}
	f.Versions = []tlscode.Version{tlscode.Version(helloVersion)}

	if !body.Skip(helloRandomLength) {
		return fmt.Errorf("could not skip random")
	}

	var sessionID cryptobyte.String
	if !body.ReadUint8LengthPrefixed(&sessionID) {
		return fmt.Errorf("could not read session id")
	}

	var suites cryptobyte.String
	if !body.ReadUint16LengthPrefixed(&suites) {
		return fmt.Errorf("could not read ciphersuites")
	}
	for !suites.Empty() {
		var suite uint16
		if !suites.ReadUint16(&suite) {
			return fmt.Errorf("could not read ciphersuite")
		}
		if isGrease(suite) {
			continue
		}
		f.Ciphers = append(f.Ciphers, tlscode.CipherSuite(suite))
	}

	var compression cryptobyte.String
	if !body.ReadUint8LengthPrefixed(&compression) {
		return fmt.Errorf("could not read compression methods")
	}

	// No extension block at all is still a valid (if ancient) hello
	if body.Empty() {
		return nil
	}

	var extensionBlock cryptobyte.String
	if !body.ReadUint16LengthPrefixed(&extensionBlock) {
		return fmt.Errorf("could not read extension block")
	}
	return f.extensionBlockToList(extensionBlock)
}

// extensionBlockToList walks the extension block, appending each
// extension type in wire order and pulling the curve and point format
// lists out of their carrier extensions.
func (f *Fingerprint) extensionBlockToList(extBlock cryptobyte.String) error {
	for !extBlock.Empty() {
		var (
			extensionType uint16
			extContent    cryptobyte.String
		)
		if !extBlock.ReadUint16(&extensionType) || !extBlock.ReadUint16LengthPrefixed(&extContent) {
			return fmt.Errorf("could not read extension")
		}

		if isGrease(extensionType) {
			continue
		}
		f.Extensions = append(f.Extensions, tlscode.Extension(extensionType))

		switch tlscode.Extension(extensionType) {
		case tlscode.ExtSupportedGroups:
			var curveBlock cryptobyte.String
			if !extContent.ReadUint16LengthPrefixed(&curveBlock) {
				return fmt.Errorf("could not read elliptic curves extension")
			}
			for !curveBlock.Empty() {
				var curve uint16
				if !curveBlock.ReadUint16(&curve) {
					return fmt.Errorf("could not read elliptic curve")
				}
				if isGrease(curve) {
					continue
				}
				f.Curves = append(f.Curves, tlscode.Curve(curve))
			}

		case tlscode.ExtECPointFormats:
			var formatBlock cryptobyte.String
			if !extContent.ReadUint8LengthPrefixed(&formatBlock) {
				return fmt.Errorf("could not read ecPoint formats extension")
			}
			for !formatBlock.Empty() {
				var format uint8
				if !formatBlock.ReadUint8(&format) {
					return fmt.Errorf("could not read ecPoint format")
				}
				f.PointFormats = append(f.PointFormats, tlscode.PointFormat(format))
			}
		}
	}
	return nil
}
