package ja3

import (
	"strconv"
	"strings"
)

// code covers the integer widths a fingerprint field can carry: 16-bit
// for versions, ciphers, extensions and curves, 8-bit for point
// formats.
type code interface {
	~uint8 | ~uint16
}

// splitFields cuts text into exactly arity comma-separated fields.
// Missing trailing fields come back empty; commas beyond the last
// split point stay embedded in the final field.
func splitFields(text string, arity int) []string {
	fields := strings.SplitN(text, ",", arity)
	for len(fields) < arity {
		fields = append(fields, "")
	}
	return fields
}

// dashSplit parses one dash-delimited field into codes of type T. An
// empty field is an empty sequence. Every token must be a bare base-10
// unsigned integer fitting in bits: no sign, no whitespace, no empty
// token from a doubled dash.
func dashSplit[T code](field string, bits int) ([]T, error) {
	if field == "" {
		return nil, nil
	}
	var out []T
	for _, token := range strings.Split(field, "-") {
		value, err := strconv.ParseUint(token, 10, bits)
		if err != nil {
			return nil, ErrMalformed
		}
		out = append(out, T(value))
	}
	return out, nil
}

// dashJoin converts a slice of codes into the dash delimited decimal
// string representation, the empty sequence rendering as "".
func dashJoin[T code](codes []T) string {
	var outSlice []string
	for _, c := range codes {
		outSlice = append(outSlice, strconv.FormatUint(uint64(c), 10))
	}
	return strings.Join(outSlice, "-")
}
