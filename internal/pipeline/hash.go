package pipeline

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/tidwall/pretty"
)

// HashDocument returns the hex SHA-256 of a JSON document with insignificant
// whitespace removed, so a re-indented feed keeps its hash.
func HashDocument(doc []byte) string {
	sum := sha256.Sum256(pretty.Ugly(doc))
	return hex.EncodeToString(sum[:])
}

// shortHash is the prefix of a document hash used in log lines.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
