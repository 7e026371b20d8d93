package logging

import "strings"

// Redacted replaces the value of any sensitive key passed to a Logger.
const Redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"authorization": {},
	"token":         {},
	"access_token":  {},
	"accesstoken":   {},
	"password":      {},
}

// redact returns args with the values of sensitive keys masked. args is not
// modified; when nothing needs masking it is returned as is.
func redact(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		if _, hit := sensitiveKeys[strings.ToLower(key)]; !hit {
			continue
		}
		if out == nil {
			out = make([]any, len(args))
			copy(out, args)
		}
		out[i+1] = Redacted
	}
	if out == nil {
		return args
	}
	return out
}
