package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// segmentParser only decodes base64url segments; signatures are never
// checked on the client.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// IsTokenExpired reports whether token must be treated as unusable at now.
//
// A token is expired when it is empty, is not three dot-separated segments,
// its payload segment is not a base64url JSON object, its exp claim is not a
// number, or exp*1000 is at or before now in Unix milliseconds. exp may be
// fractional. A payload without exp, or with exp null or 0, never expires.
func IsTokenExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return true
	}

	payload, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return true
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil || claims == nil {
		return true
	}

	exp, ok := expSeconds(claims["exp"])
	if !ok {
		return true
	}
	if exp == 0 {
		// missing, null or 0: no expiry.
		return false
	}

	return exp*1000 <= float64(now.UnixMilli())
}

// expSeconds reads exp as float seconds. Fractions and values beyond the
// int64 range are kept as is. A nil claim reads as 0.
func expSeconds(v any) (float64, bool) {
	switch exp := v.(type) {
	case nil:
		return 0, true
	case float64:
		return exp, true
	case json.Number:
		f, err := exp.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
