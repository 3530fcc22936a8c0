package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBase64 renders b with the standard base64 alphabet. When lineWidth is
// positive the output is wrapped with newlines every lineWidth characters.
func EncodeBase64(b []byte, lineWidth int) string {
	s := base64.StdEncoding.EncodeToString(b)
	if lineWidth <= 0 || len(s) <= lineWidth {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/lineWidth)
	for len(s) > lineWidth {
		sb.WriteString(s[:lineWidth])
		sb.WriteByte('\n')
		s = s[lineWidth:]
	}
	sb.WriteString(s)
	return sb.String()
}

// DecodeBase64 parses standard-alphabet base64 text, tolerating the line
// breaks EncodeBase64 inserts.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "\n", "")
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return out, nil
}
