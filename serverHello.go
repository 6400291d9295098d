package ja3

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/tlsprint/ja3/tlscode"
)

// IsServerHello is the ServerHello counterpart of IsClientHello.
func IsServerHello(buf []byte) error {
	if len(buf) < minPacketLength {
		return fmt.Errorf("packet appears to be truncated")
	}
	if !(buf[0] == recordTypeHandshake && buf[5] == handshakeTypeServerHello && buf[1] == 3 && buf[9] == 3) {
		return fmt.Errorf("does not look like a server hello")
	}
	return nil
}

// ProcessServerHello fills f from a raw TLS ServerHello record: the
// negotiated version, the single chosen cipher, and the extension
// types in the order the server sent them.
func (f *ServerFingerprint) ProcessServerHello(buf []byte) error {
	if err := IsServerHello(buf); err != nil {
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

	var suite uint16
	if !body.ReadUint16(&suite) {
		return fmt.Errorf("could not read ciphersuite")
	}
	f.Ciphers = []tlscode.CipherSuite{tlscode.CipherSuite(suite)}

	var compression uint8
	if !body.ReadUint8(&compression) {
		return fmt.Errorf("could not read compression method")
	}

	if body.Empty() {
		return nil
	}

	var extensionBlock cryptobyte.String
	if !body.ReadUint16LengthPrefixed(&extensionBlock) {
		return fmt.Errorf("could not read extension block")
	}
	for !extensionBlock.Empty() {
		var (
			extensionType uint16
			extContent    cryptobyte.String
		)
		if !extensionBlock.ReadUint16(&extensionType) || !extensionBlock.ReadUint16LengthPrefixed(&extContent) {
			return fmt.Errorf("could not read extension")
		}
		if isGrease(extensionType) {
			continue
		}
		f.Extensions = append(f.Extensions, tlscode.Extension(extensionType))
	}
	return nil
}
