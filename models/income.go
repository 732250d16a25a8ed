package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IncomeData holds the user-configurable income columns, keyed by column
// label. Amounts travel as decimal strings but older clients wrote raw JSON
// numbers, so leaves stay loosely typed and are coerced at aggregation time.
type IncomeData map[string]interface{}

func (d IncomeData) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

func (d *IncomeData) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		*d = IncomeData{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into IncomeData", src)
	}
}

type Income struct {
	ID    string     `json:"id"`
	Month string     `json:"month"`
	Name  string     `json:"name"`
	Data  IncomeData `json:"data"`
}

type CreateIncomeRequest struct {
	Month string     `json:"month" binding:"required"`
	Name  string     `json:"name"`
	Data  IncomeData `json:"data"`
}

// UpdateIncomeRequest is a partial patch; nil fields are left untouched.
type UpdateIncomeRequest struct {
	Month *string     `json:"month"`
	Name  *string     `json:"name"`
	Data  *IncomeData `json:"data"`
}
