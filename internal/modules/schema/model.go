// README: Wizard section and field definitions.
package schema

// FieldType enumerates the input kinds a wizard field can render as.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeCheckbox FieldType = "checkbox"
	TypeFile     FieldType = "file"
	TypeRadio    FieldType = "radio"
)

// Option is one selectable choice of a radio field.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FieldDefinition describes one wizard input. Key is unique within its
// section; the answer namespace is global across sections.
type FieldDefinition struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Type      FieldType `json:"type"`
	Mandatory bool      `json:"mandatory"`
	Options   []Option  `json:"options,omitempty"`
}

// SectionDefinition is one wizard step with its ordered fields.
// AddressBacked marks sections whose completion derives from the address
// lists instead of the answers map.
type SectionDefinition struct {
	Key           string            `json:"key"`
	Label         string            `json:"label"`
	Fields        []FieldDefinition `json:"fields"`
	AddressBacked bool              `json:"addressBacked,omitempty"`
}

// Phase is a named presentation grouping of sections.
type Phase struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Sections []string `json:"sections"`
}
