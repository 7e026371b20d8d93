package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
)

// decode unmarshals raw into a T. A nil body yields the zero value.
func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %v", client.ErrInvalidResponse, err)
	}
	return v, nil
}

// resourcePath joins escaped segments onto base: ("/news", "a/b") -> "/news/a%2Fb".
func resourcePath(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
