package classifier

import (
	"encoding/json"
	"fmt"

	"github.com/readerhub/libchat/pkg/models"
)

// ParseResult is the outcome of parsing a model reply. Degraded is set when
// the reply could not be used as-is; Reason then says why.
type ParseResult struct {
	Classified models.ClassifiedIntent
	Degraded   bool
	Reason     string
}

// ParseIntent extracts an intent and optional date from raw model output.
// It never fails: malformed output degrades to UNKNOWN with no date.
func ParseIntent(raw string) ParseResult {
	// Keys are matched exactly, unlike struct decoding.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return degraded(fmt.Sprintf("reply is not a JSON object: %v", err))
	}
	rawName, ok := obj["intent"]
	if !ok || string(rawName) == "null" {
		return degraded("reply has no intent field")
	}

	var name string
	if err := json.Unmarshal(rawName, &name); err != nil {
		return degraded(fmt.Sprintf("intent is not a string: %s", rawName))
	}

	intent, ok := models.ParseIntentName(name)
	if !ok {
		return degraded(fmt.Sprintf("intent %q is not recognized", name))
	}

	return ParseResult{Classified: models.ClassifiedIntent{Intent: intent, Date: parseDate(obj["date"])}}
}

// parseDate keeps a string date verbatim. Absence, null, "null" and
// non-string values all mean no date.
func parseDate(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	if s == "null" {
		return nil
	}
	return &s
}

func degraded(reason string) ParseResult {
	return ParseResult{
		Classified: models.UnknownIntent(),
		Degraded:   true,
		Reason:     reason,
	}
}
