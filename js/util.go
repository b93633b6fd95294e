package js

import "strings"

var lineTerminatorReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeLineTerminators converts CRLF and CR to LF, as required for the raw value of template elements.
func normalizeLineTerminators(b []byte) string {
	return lineTerminatorReplacer.Replace(string(b))
}

// AsIdentifierName returns true if a valid ASCII identifier name is given.
func AsIdentifierName(b []byte) bool {
	if len(b) == 0 || 128 <= b[0] || !identifierStartTable[b[0]] {
		return false
	}

	i := 1
	for i < len(b) {
		if b[i] < 128 && identifierTable[b[i]] {
			i++
		} else {
			return false
		}
	}
	return true
}
