package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money is a price that some backends serialize as a JSON number and others
// as a numeric string. Both decode to the same float64.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*m = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("money: cannot parse %q: %w", str, err)
		}
		*m = Money(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// Order schema is not finalized; the dashboard only consumes id and
// totalPrice. Worker, Deadline and Expense are placeholders with identifiers
// only, their pages are still stubbed.
type Order struct {
	ID         int64 `json:"id"`
	TotalPrice Money `json:"totalPrice"`
}

type Worker struct {
	ID int64 `json:"id"`
}

type Deadline struct {
	ID int64 `json:"id"`
}

type Expense struct {
	ID int64 `json:"id"`
}
