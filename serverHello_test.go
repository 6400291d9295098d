package ja3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"

	"github.com/tlsprint/ja3"
	"github.com/tlsprint/ja3/tlscode"
)

func buildServerHello(t *testing.T, version uint16, suite uint16, extensions []testExtension) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddUint8(22)      // handshake record
	b.AddUint16(0x0303) // record version
	b.AddUint16LengthPrefixed(func(record *cryptobyte.Builder) {
		record.AddUint8(2) // server hello
		record.AddUint24LengthPrefixed(func(hello *cryptobyte.Builder) {
			hello.AddUint16(version)
			hello.AddBytes(make([]byte, 32)) // random
			hello.AddUint8LengthPrefixed(func(session *cryptobyte.Builder) {
				session.AddBytes(make([]byte, 32))
			})
			hello.AddUint16(suite)
			hello.AddUint8(0) // compression
			if extensions != nil {
				hello.AddUint16LengthPrefixed(func(extBlock *cryptobyte.Builder) {
					for _, ext := range extensions {
						extBlock.AddUint16(ext.extType)
						extBlock.AddUint16LengthPrefixed(func(content *cryptobyte.Builder) {
							content.AddBytes(ext.body)
						})
					}
				})
			}
		})
	})

	data, err := b.Bytes()
	require.NoError(t, err)
	return data
}

func TestProcessServerHello(t *testing.T) {
	hello := buildServerHello(t, 0x0303, 4865,
		[]testExtension{
			{extType: 43, body: []byte{0x03, 0x04}},
			{extType: 0x4a4a}, // GREASE, dropped
			{extType: 51, body: []byte{0x00, 0x1d, 0x00, 0x00}},
			{extType: 65281, body: []byte{0x00}},
		})

	var fp ja3.ServerFingerprint
	require.NoError(t, fp.ProcessServerHello(hello))

	assert.Equal(t, []tlscode.Version{771}, fp.Versions)
	assert.Equal(t, []tlscode.CipherSuite{4865}, fp.Ciphers)
	assert.Equal(t, []tlscode.Extension{43, 51, 65281}, fp.Extensions, "GREASE extension must be dropped")

	assert.Equal(t, "771,4865,43-51-65281", fp.String())
}

func TestProcessServerHelloNoExtensions(t *testing.T) {
	hello := buildServerHello(t, 0x0303, 49195, nil)

	var fp ja3.ServerFingerprint
	require.NoError(t, fp.ProcessServerHello(hello))

	assert.Equal(t, "771,49195,", fp.String())
}

func TestProcessServerHelloErrors(t *testing.T) {
	valid := buildServerHello(t, 0x0303, 4865,
		[]testExtension{{extType: 43, body: []byte{0x03, 0x04}}})

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty input", input: []byte{}},
		{name: "garbage", input: make([]byte, 64)},
		{name: "client hello type", input: buildClientHello(t, 0x0303, []uint16{4865}, nil)},
		{name: "truncated record", input: valid[:len(valid)-3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := &ja3.ServerFingerprint{}
			assert.Error(t, fp.ProcessServerHello(tt.input))
		})
	}
}

func TestServerHelloRoundTripsThroughCodec(t *testing.T) {
	hello := buildServerHello(t, 0x0303, 4866,
		[]testExtension{
			{extType: 43, body: []byte{0x03, 0x04}},
			{extType: 51, body: []byte{0x00, 0x1d, 0x00, 0x00}},
		})

	var fp ja3.ServerFingerprint
	require.NoError(t, fp.ProcessServerHello(hello))

	back, err := ja3.ParseServerFingerprint(fp.String())
	require.NoError(t, err)
	assert.True(t, back.Equal(fp))
}

func FuzzProcessServerHello(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		fp := &ja3.ServerFingerprint{}
		_ = fp.ProcessServerHello(data)
	})
}
