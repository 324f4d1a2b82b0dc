package util

import (
	"bytes"
	"encoding/json"
	"io"
)

// StructToJSONReader marshals data into a reader usable as an HTTP request
// body in handler tests.
func StructToJSONReader(data interface{}) io.Reader {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return bytes.NewReader(jsonBytes)
}

// StructToJSON marshals data into a JSON string for request bodies and
// response assertions in tests.
func StructToJSON(data interface{}) string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(jsonBytes)
}
