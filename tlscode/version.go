// Package tlscode defines the open code spaces that appear in TLS
// handshake fingerprints: protocol versions, cipher suites, extension
// types, named groups and EC point formats.
//
// Every integer of the right width is a valid code. The named
// constants and String methods decorate well-known IANA assignments
// but never restrict the space: converting to and from the underlying
// integer is total in both directions.
package tlscode

import "fmt"

// Version is a TLS protocol version code.
type Version uint16

const (
	VersionSSL30 Version = 0x0300
	VersionTLS10 Version = 0x0301
	VersionTLS11 Version = 0x0302
	VersionTLS12 Version = 0x0303
	VersionTLS13 Version = 0x0304
)

var versionName = map[Version]string{
	VersionSSL30: "SSL 3.0",
	VersionTLS10: "TLS 1.0",
	VersionTLS11: "TLS 1.1",
	VersionTLS12: "TLS 1.2",
	VersionTLS13: "TLS 1.3",
}

func (v Version) String() string {
	if name, ok := versionName[v]; ok {
		return name
	}
	return fmt.Sprintf("version(0x%04x)", uint16(v))
}
