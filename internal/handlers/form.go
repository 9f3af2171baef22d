package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Multipart form submissions carry structured fields as JSON-encoded strings,
// booleans as the literals "true"/"false" and numbers as decimal strings.
// Everything here converts those to typed values before anything touches the
// database; malformed input fails the whole request.

// formValue reports whether the field was present at all, so partial updates
// can tell "absent" apart from "empty".
func formValue(c *gin.Context, name string) (string, bool) {
	if vals, ok := c.GetPostFormArray(name); ok && len(vals) > 0 {
		return vals[0], true
	}
	return "", false
}

// jsonFormField unmarshals a JSON-encoded form field into dst. Returns
// whether the field was present; malformed JSON is a client error.
func jsonFormField(c *gin.Context, name string, dst interface{}) (bool, error) {
	raw, ok := formValue(c, name)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("invalid JSON in field %q", name)
	}
	return true, nil
}

func boolFormField(c *gin.Context, name string) (*bool, error) {
	raw, ok := formValue(c, name)
	if !ok {
		return nil, nil
	}
	switch strings.TrimSpace(raw) {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("invalid boolean in field %q", name)
	}
}

func intFormField(c *gin.Context, name string) (*int, error) {
	raw, ok := formValue(c, name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid number in field %q", name)
	}
	return &n, nil
}

// splitTags turns form tag values into a clean list. A single comma-joined
// string is split and trimmed; repeated fields pass through as-is.
func splitTags(vals []string) []string {
	if len(vals) == 1 && strings.Contains(vals[0], ",") {
		vals = strings.Split(vals[0], ",")
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
