package tlscode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tlsprint/ja3/tlscode"
)

func TestKnownNames(t *testing.T) {
	assert.Equal(t, "TLS 1.2", tlscode.Version(771).String())
	assert.Equal(t, "TLS_AES_128_GCM_SHA256", tlscode.CipherSuite(4865).String())
	assert.Equal(t, "server_name", tlscode.Extension(0).String())
	assert.Equal(t, "renegotiation_info", tlscode.ExtRenegotiationInfo.String())
	assert.Equal(t, "x25519", tlscode.CurveX25519.String())
	assert.Equal(t, "uncompressed", tlscode.PointFormatUncompressed.String())
}

func TestUnknownCodesAreValid(t *testing.T) {
	// open code spaces: any in-range integer converts both ways
	assert.Equal(t, "version(0x1a1a)", tlscode.Version(0x1a1a).String())
	assert.Equal(t, "cipher(0xffff)", tlscode.CipherSuite(0xffff).String())
	assert.Equal(t, "extension(60000)", tlscode.Extension(60000).String())
	assert.Equal(t, "curve(9999)", tlscode.Curve(9999).String())
	assert.Equal(t, "point_format(200)", tlscode.PointFormat(200).String())

	assert.Equal(t, uint16(60000), uint16(tlscode.Extension(60000)))
	assert.Equal(t, uint8(200), uint8(tlscode.PointFormat(200)))
}
