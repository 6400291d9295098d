package tlscode

import "fmt"

// Curve is a named group (formerly "elliptic curve") code.
type Curve uint16

const (
	CurveSecp256r1 Curve = 23
	CurveSecp384r1 Curve = 24
	CurveSecp521r1 Curve = 25
	CurveX25519    Curve = 29
	CurveX448      Curve = 30
	CurveFFDHE2048 Curve = 256
	CurveFFDHE3072 Curve = 257
)

var curveName = map[Curve]string{
	CurveSecp256r1: "secp256r1",
	CurveSecp384r1: "secp384r1",
	CurveSecp521r1: "secp521r1",
	CurveX25519:    "x25519",
	CurveX448:      "x448",
	CurveFFDHE2048: "ffdhe2048",
	CurveFFDHE3072: "ffdhe3072",
	4588:           "X25519MLKEM768",
}

func (c Curve) String() string {
	if name, ok := curveName[c]; ok {
		return name
	}
	return fmt.Sprintf("curve(%d)", uint16(c))
}
