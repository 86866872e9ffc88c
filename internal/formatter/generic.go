package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// generic renders data as an indented JSON block under the route id.
func generic(routeID string, data any) string {
	if data == nil {
		return "✅ " + routeID + ": thành công"
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Sprintf("✅ %s:\n%v", routeID, data)
	}
	return "✅ " + routeID + ":\n" + strings.TrimRight(buf.String(), "\n")
}
