package tlscode

import "fmt"

// PointFormat is an EC point format code. The only one of the five
// fingerprint code spaces that is 8 bits wide.
type PointFormat uint8

const (
	PointFormatUncompressed      PointFormat = 0
	PointFormatCompressedPrime   PointFormat = 1
	PointFormatCompressedCharTwo PointFormat = 2
)

var pointFormatName = map[PointFormat]string{
	PointFormatUncompressed:      "uncompressed",
	PointFormatCompressedPrime:   "ansiX962_compressed_prime",
	PointFormatCompressedCharTwo: "ansiX962_compressed_char2",
}

func (p PointFormat) String() string {
	if name, ok := pointFormatName[p]; ok {
		return name
	}
	return fmt.Sprintf("point_format(%d)", uint8(p))
}
