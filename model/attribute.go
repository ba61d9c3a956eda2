// model/attribute.go
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldType is the closed set of value shapes an attribute can hold. Every
// downstream branch (validation, rendering, defaults) dispatches on this tag,
// so new tags must be added here and nowhere else.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeNumber     FieldType = "number"
	FieldTypeDate       FieldType = "date"
	FieldTypeBoolean    FieldType = "boolean"
	FieldTypeArray      FieldType = "array"
	FieldTypeSelect     FieldType = "select"
	FieldTypeURL        FieldType = "url"
	FieldTypeMixed      FieldType = "mixed"
	FieldTypeImageArray FieldType = "image_array"
)

// FieldTypes lists every valid tag in declaration order.
var FieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeNumber,
	FieldTypeDate,
	FieldTypeBoolean,
	FieldTypeArray,
	FieldTypeSelect,
	FieldTypeURL,
	FieldTypeMixed,
	FieldTypeImageArray,
}

func (ft FieldType) Valid() bool {
	for _, known := range FieldTypes {
		if ft == known {
			return true
		}
	}
	return false
}

// Kind is the base shape a FieldType validates as.
type Kind int

const (
	KindString Kind = iota
	KindSequence
	KindNumber
	KindDate
	KindAny
)

// BaseKind maps a field type onto its validation shape. Boolean and mixed
// values are unconstrained beyond presence; the registry rejects unknown tags
// before they can reach this switch.
func (ft FieldType) BaseKind() Kind {
	switch ft {
	case FieldTypeText, FieldTypeSelect, FieldTypeURL:
		return KindString
	case FieldTypeArray, FieldTypeImageArray:
		return KindSequence
	case FieldTypeNumber:
		return KindNumber
	case FieldTypeDate:
		return KindDate
	case FieldTypeBoolean, FieldTypeMixed:
		return KindAny
	}
	return KindAny
}

// GlobalListPrefix marks an option entry as an indirection into the global
// option dictionary, e.g. "global:countries".
const GlobalListPrefix = "global:"

// Option is one selectable choice, normalized to a value/label pair.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UnmarshalJSON accepts the three authoring shapes operators may submit:
// a bare string, a bare number, or a {value,label} record. Anything else is
// rejected before it can reach the option resolver.
func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Value, o.Label = s, s
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		formatted := strconv.FormatFloat(n, 'f', -1, 64)
		o.Value, o.Label = formatted, formatted
		return nil
	}
	var record struct {
		Value *string `json:"value"`
		Label *string `json:"label"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("option must be a string or a {value,label} record")
	}
	if record.Value == nil {
		return fmt.Errorf("option record is missing \"value\"")
	}
	o.Value = *record.Value
	if record.Label != nil {
		o.Label = *record.Label
	} else {
		o.Label = o.Value
	}
	return nil
}

// OptionList is the ordered option sequence declared on an attribute.
type OptionList []Option

// GlobalRef reports the global dictionary list this option list points at,
// when the list is the single-element indirection token.
func (ol OptionList) GlobalRef() (string, bool) {
	if len(ol) == 1 && strings.HasPrefix(ol[0].Value, GlobalListPrefix) {
		return strings.TrimPrefix(ol[0].Value, GlobalListPrefix), true
	}
	return "", false
}

// Attribute is a reusable field definition. The slug is the join key for
// every schema binding and every stored profile value, so it is write-once.
type Attribute struct {
	Slug           string     `json:"slug"`
	Name           string     `json:"name"`
	FieldType      FieldType  `json:"fieldType"`
	DefaultOptions OptionList `json:"defaultOptions"`
	Description    string     `json:"description,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
