package ja3

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// DB is an in-memory lookup table from client fingerprint contents to
// a description of the client that produced them. Keys are murmur3-64
// hashes over the record sequences, which is an internal matter: it is
// not the well known MD5 digest of the fingerprint text.
type DB map[uint64]string

// Add registers a fingerprint under the given description. A later Add
// with matching contents overwrites the earlier description.
func (db DB) Add(fp Fingerprint, desc string) {
	db[hashFingerprint(fp)] = desc
}

// Lookup returns the description registered for a fingerprint with
// identical contents.
func (db DB) Lookup(fp Fingerprint) (string, bool) {
	desc, ok := db[hashFingerprint(fp)]
	return desc, ok
}

// hashFingerprint generates the hash of the FP, to be used as the
// lookup table key. Field contents are hashed in order with an odd
// sized separator so that codes cannot slide between fields.
func hashFingerprint(fp Fingerprint) uint64 {
	hasher := murmur3.New64()
	sep := []byte{0xff, 0xff, 0xff}
	buf := make([]byte, 2)

	for _, field := range [][]uint16{
		codesToUint16(fp.Versions),
		codesToUint16(fp.Ciphers),
		codesToUint16(fp.Extensions),
		codesToUint16(fp.Curves),
	} {
		for _, v := range field {
			binary.BigEndian.PutUint16(buf, v)
			hasher.Write(buf)
		}
		hasher.Write(sep)
	}
	for _, format := range fp.PointFormats {
		hasher.Write([]byte{byte(format)})
	}
	return hasher.Sum64()
}

func codesToUint16[T ~uint16](codes []T) []uint16 {
	out := make([]uint16, len(codes))
	for i, c := range codes {
		out[i] = uint16(c)
	}
	return out
}
