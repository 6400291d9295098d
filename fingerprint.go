// Package ja3 converts between the textual JA3/JA3S form of a TLS
// fingerprint and a structured record, and extracts such records from
// raw ClientHello/ServerHello bytes.
//
// The text form is the pre-hash fingerprint string: comma-separated
// fields of dash-separated decimal codes, five fields for the client
// side (protocol versions, cipher suites, extensions, elliptic curves,
// point formats) and three for the server side. Hashing the string is
// a separate step and not part of this package.
package ja3

import (
	"errors"
	"slices"
	"strings"

	"github.com/tlsprint/ja3/tlscode"
)

// ErrMalformed is returned when a fingerprint text cannot be parsed.
// It carries no detail about which field or token was at fault.
var ErrMalformed = errors.New("malformed fingerprint text")

// Fingerprint is a client-side (JA3) fingerprint record. Field order
// matches the text form and element order is negotiation order, so
// neither may be rearranged.
type Fingerprint struct {
	Versions     []tlscode.Version     `json:"versions"`
	Ciphers      []tlscode.CipherSuite `json:"ciphers"`
	Extensions   []tlscode.Extension   `json:"extensions"`
	Curves       []tlscode.Curve       `json:"curves"`
	PointFormats []tlscode.PointFormat `json:"point_formats"`
}

// ServerFingerprint is a server-side (JA3S) fingerprint record.
type ServerFingerprint struct {
	Versions   []tlscode.Version     `json:"versions"`
	Ciphers    []tlscode.CipherSuite `json:"ciphers"`
	Extensions []tlscode.Extension   `json:"extensions"`
}

// ParseFingerprint parses the five-field client fingerprint text.
// Missing trailing fields are empty sequences, not an error. Any token
// that is not a bare decimal integer of the field's width fails the
// whole parse with ErrMalformed.
func ParseFingerprint(text string) (Fingerprint, error) {
	fields := splitFields(text, 5)

	var (
		fp  Fingerprint
		err error
	)
	if fp.Versions, err = dashSplit[tlscode.Version](fields[0], 16); err != nil {
		return Fingerprint{}, err
	}
	if fp.Ciphers, err = dashSplit[tlscode.CipherSuite](fields[1], 16); err != nil {
		return Fingerprint{}, err
	}
	if fp.Extensions, err = dashSplit[tlscode.Extension](fields[2], 16); err != nil {
		return Fingerprint{}, err
	}
	if fp.Curves, err = dashSplit[tlscode.Curve](fields[3], 16); err != nil {
		return Fingerprint{}, err
	}
	if fp.PointFormats, err = dashSplit[tlscode.PointFormat](fields[4], 8); err != nil {
		return Fingerprint{}, err
	}
	return fp, nil
}

// ParseServerFingerprint parses the three-field server fingerprint
// text under the same rules as ParseFingerprint.
func ParseServerFingerprint(text string) (ServerFingerprint, error) {
	fields := splitFields(text, 3)

	var (
		fp  ServerFingerprint
		err error
	)
	if fp.Versions, err = dashSplit[tlscode.Version](fields[0], 16); err != nil {
		return ServerFingerprint{}, err
	}
	if fp.Ciphers, err = dashSplit[tlscode.CipherSuite](fields[1], 16); err != nil {
		return ServerFingerprint{}, err
	}
	if fp.Extensions, err = dashSplit[tlscode.Extension](fields[2], 16); err != nil {
		return ServerFingerprint{}, err
	}
	return fp, nil
}

// String renders the record back to the exact JA3 text it was parsed
// from: decimal codes dash-joined within a field, fields comma-joined
// in fixed order, empty sequences rendering as empty fields.
func (f Fingerprint) String() string {
	return strings.Join([]string{
		dashJoin(f.Versions),
		dashJoin(f.Ciphers),
		dashJoin(f.Extensions),
		dashJoin(f.Curves),
		dashJoin(f.PointFormats),
	}, ",")
}

// String renders the record back to its JA3S text.
func (f ServerFingerprint) String() string {
	return strings.Join([]string{
		dashJoin(f.Versions),
		dashJoin(f.Ciphers),
		dashJoin(f.Extensions),
	}, ",")
}

// Equal reports field-by-field, order-sensitive equality.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return slices.Equal(f.Versions, other.Versions) &&
		slices.Equal(f.Ciphers, other.Ciphers) &&
		slices.Equal(f.Extensions, other.Extensions) &&
		slices.Equal(f.Curves, other.Curves) &&
		slices.Equal(f.PointFormats, other.PointFormats)
}

// Equal reports field-by-field, order-sensitive equality.
func (f ServerFingerprint) Equal(other ServerFingerprint) bool {
	return slices.Equal(f.Versions, other.Versions) &&
		slices.Equal(f.Ciphers, other.Ciphers) &&
		slices.Equal(f.Extensions, other.Extensions)
}
