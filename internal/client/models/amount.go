package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a price or count that the API may send as a JSON number or as a
// numeric string (decimal columns come back as "120.00"). null, "" and
// unparsable strings decode to zero.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*a = 0
	case float64:
		*a = Amount(value)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(f)
	default:
		return fmt.Errorf("amount: unexpected json %s", string(b))
	}
	return nil
}

// String formats whole amounts without decimals and others with two.
func (a Amount) String() string {
	f := float64(a)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
