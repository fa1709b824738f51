package dotcode

import (
	"strings"

	"github.com/a17hq/btviz/pkg/behaviour"
)

// tooltipPlaceholder substitutes for fields that are empty in the snapshot.
const tooltipPlaceholder = "<i>empty</i>"

// tooltipFields lists the displayed attributes in fixed order.
var tooltipFields = []string{"class_name", "type", "status", "message"}

// Tooltip builds the hover text for one behaviour. Each field renders as
// "<b>Field Name:</b> value<br>" with empty values degraded to a
// placeholder; the whole string is wrapped in double quotes for the DOT
// attribute grammar. Tooltip never fails.
func Tooltip(b behaviour.Behaviour) string {
	var sb strings.Builder
	sb.WriteString(`"`)

	for _, field := range tooltipFields {
		var value string
		switch field {
		case "class_name":
			value = b.ClassName
		case "type":
			value = b.Type.String()
		case "status":
			value = b.Status.String()
		case "message":
			value = b.Message
		}
		if value == "" {
			value = tooltipPlaceholder
		}

		sb.WriteString("<b>")
		sb.WriteString(fieldTitle(field))
		sb.WriteString(":</b> ")
		sb.WriteString(value)
		sb.WriteString("<br>")
	}

	sb.WriteString(`"`)
	return sb.String()
}

// fieldTitle turns an identifier like "class_name" into "Class Name".
func fieldTitle(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
