package polestock

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// queryLanguage is JSONPath with gval's full expression language, for filters
// like "?(@.currentQty < 5)".
var queryLanguage = gval.Full(jsonpath.PlaceholderExtension())

// Query evaluates a JSONPath expression against the JSON document of s, as
// written by EncodeSnapshot, e.g. "$.locations[*].location".
//
// Wildcards and filters return a []any, plain paths return the value itself.
func Query(s *Snapshot, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot read snapshot document: %w", err)
	}
	jval, err := queryLanguage.Evaluate(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return jval, nil
}
