// Package sign implements the MD5 checksum and MIC/MAC signing schemes used
// by a handful of HAFAS vendors to authenticate a request body.
package sign

import (
	"crypto/md5"
	"encoding/hex"
)

func md5Hex(parts ...[]byte) string {
	h := md5.New()
	for _, p := range parts {
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Checksum computes md5_hex(body + salt), used as the `checksum` query param.
func Checksum(body []byte, salt string) string {
	return md5Hex(body, []byte(salt))
}

// MicMac computes the double-MD5 mic/mac pair used as the `mic`/`mac` query
// params. salt is hex-decoded first when possible; vendors that supply a
// non-hex salt string get it folded in raw, matching upstream behavior.
func MicMac(body []byte, salt string) (mic, mac string) {
	mic = md5Hex(body)
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		saltBytes = []byte(salt)
	}
	mac = md5Hex([]byte(mic), saltBytes)
	return mic, mac
}
