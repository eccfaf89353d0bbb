package history

import (
	"encoding/base64"
	"encoding/json"
)

// EncodeToken converts a hand-off into an opaque, URL-safe token.
// The token is base64-encoded JSON:
//
//	{"noticeId":"42","page":2,"keyword":"exam"}
//	→ eyJub3RpY2VJZCI6IjQyIiwicGFnZSI6Miwia2V5d29yZCI6ImV4YW0ifQ==
func EncodeToken(h Handoff) (string, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeToken extracts a hand-off from a token produced by EncodeToken.
//
// Returns nil if the token is empty, invalid, or cannot be decoded, so a
// damaged token results in a fresh list rather than an error.
func DecodeToken(token string) *Handoff {
	if token == "" {
		return nil
	}

	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}

	var h Handoff
	if err := json.Unmarshal(decoded, &h); err != nil {
		return nil
	}

	return &h
}

// RestoreFromToken decodes token straight into a restore point.
// It returns nil when the token carries nothing usable.
func RestoreFromToken(token string) *RestorePoint {
	h := DecodeToken(token)
	if h == nil {
		return nil
	}
	return h.RestorePoint()
}
