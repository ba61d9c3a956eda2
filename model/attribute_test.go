// model/attribute_test.go
package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoutdesk/backoffice/model"
)

func TestOptionUnmarshalJSON(t *testing.T) {
	t.Run("BareString", func(t *testing.T) {
		var opt model.Option
		err := json.Unmarshal([]byte(`"Paris"`), &opt)

		assert.NoError(t, err)
		assert.Equal(t, "Paris", opt.Value)
		assert.Equal(t, "Paris", opt.Label)
	})

	t.Run("BareNumber", func(t *testing.T) {
		var opt model.Option
		err := json.Unmarshal([]byte(`42`), &opt)

		assert.NoError(t, err)
		assert.Equal(t, "42", opt.Value)
		assert.Equal(t, "42", opt.Label)
	})

	t.Run("ValueLabelRecord", func(t *testing.T) {
		var opt model.Option
		err := json.Unmarshal([]byte(`{"value":"fr","label":"France"}`), &opt)

		assert.NoError(t, err)
		assert.Equal(t, "fr", opt.Value)
		assert.Equal(t, "France", opt.Label)
	})

	t.Run("RecordWithoutLabel_LabelDefaultsToValue", func(t *testing.T) {
		var opt model.Option
		err := json.Unmarshal([]byte(`{"value":"fr"}`), &opt)

		assert.NoError(t, err)
		assert.Equal(t, "fr", opt.Value)
		assert.Equal(t, "fr", opt.Label)
	})

	t.Run("RecordWithoutValue_Rejected", func(t *testing.T) {
		var opt model.Option
		err := json.Unmarshal([]byte(`{"label":"France"}`), &opt)

		assert.Error(t, err)
	})

	t.Run("MalformedShape_Rejected", func(t *testing.T) {
		var opt model.Option
		err := json.Unmarshal([]byte(`[1,2,3]`), &opt)

		assert.Error(t, err)
	})

	t.Run("OptionListMixedShapes", func(t *testing.T) {
		var opts model.OptionList
		err := json.Unmarshal([]byte(`["Paris", 7, {"value":"x","label":"X"}]`), &opts)

		assert.NoError(t, err)
		assert.Len(t, opts, 3)
		assert.Equal(t, "Paris", opts[0].Value)
		assert.Equal(t, "7", opts[1].Value)
		assert.Equal(t, "X", opts[2].Label)
	})
}

func TestOptionListGlobalRef(t *testing.T) {
	t.Run("SingleSentinel", func(t *testing.T) {
		opts := model.OptionList{{Value: "global:countries", Label: "global:countries"}}

		name, ok := opts.GlobalRef()
		assert.True(t, ok)
		assert.Equal(t, "countries", name)
	})

	t.Run("SentinelNotAlone_NotARef", func(t *testing.T) {
		opts := model.OptionList{
			{Value: "global:countries", Label: "global:countries"},
			{Value: "Other", Label: "Other"},
		}

		_, ok := opts.GlobalRef()
		assert.False(t, ok)
	})

	t.Run("PlainOptions_NotARef", func(t *testing.T) {
		opts := model.OptionList{{Value: "a", Label: "A"}}

		_, ok := opts.GlobalRef()
		assert.False(t, ok)
	})
}

func TestFieldType(t *testing.T) {
	t.Run("ClosedTagSet", func(t *testing.T) {
		assert.True(t, model.FieldType("text").Valid())
		assert.True(t, model.FieldType("image_array").Valid())
		assert.False(t, model.FieldType("richtext").Valid())
		assert.False(t, model.FieldType("").Valid())
	})

	t.Run("BaseKinds", func(t *testing.T) {
		assert.Equal(t, model.KindString, model.FieldTypeText.BaseKind())
		assert.Equal(t, model.KindString, model.FieldTypeSelect.BaseKind())
		assert.Equal(t, model.KindString, model.FieldTypeURL.BaseKind())
		assert.Equal(t, model.KindSequence, model.FieldTypeArray.BaseKind())
		assert.Equal(t, model.KindSequence, model.FieldTypeImageArray.BaseKind())
		assert.Equal(t, model.KindNumber, model.FieldTypeNumber.BaseKind())
		assert.Equal(t, model.KindDate, model.FieldTypeDate.BaseKind())
		assert.Equal(t, model.KindAny, model.FieldTypeBoolean.BaseKind())
		assert.Equal(t, model.KindAny, model.FieldTypeMixed.BaseKind())
	})
}
