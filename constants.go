package ja3

const (
	// Configuration Constants
	minPacketLength   = 45 // Theoretical minimum size of smallest TLS header (TLSv1.0)
	helloRandomLength = 32

	// TLS record framing
	recordTypeHandshake      = 22
	handshakeTypeClientHello = 1
	handshakeTypeServerHello = 2
)

// isGrease reports whether v is one of the sixteen RFC 8701 GREASE
// values (0x0a0a, 0x1a1a, ... 0xfafa). GREASE is randomized per
// connection, so keeping it would split one client into many
// fingerprints.
func isGrease(v uint16) bool {
	return v&0x0f0f == 0x0a0a && v>>8 == v&0xff
}
