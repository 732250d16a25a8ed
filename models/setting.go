package models

import "encoding/json"

// Setting is a generic key/value blob used for configuration that never grew
// its own table, such as the "moto" financing parameters or the user-defined
// income column labels.
type Setting struct {
	ID    string          `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type UpdateSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}
