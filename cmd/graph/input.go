package main

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// convertIfUtf16 decodes s when it looks like little-endian UTF-16 text,
// as written by some Windows editors. Other input is returned unchanged.
func convertIfUtf16(s string) string {
	if len(s) < 8 {
		return s
	}
	b := []byte(s)
	if b[1] == 0 && b[3] == 0 && b[5] == 0 && b[7] == 0 {
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().String(s)
		if err == nil {
			return decoded
		}
	}
	return s
}

// expressionLines splits a file into expressions. Blank lines and lines
// starting with # are skipped.
func expressionLines(data string) []string {
	data = strings.TrimPrefix(convertIfUtf16(data), "\ufeff")
	var out []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
