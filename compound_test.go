package hammock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/hammock"
	"github.com/syssam/hammock/schema/field"
)

func TestCompoundValidate(t *testing.T) {
	t.Parallel()

	c := hammock.NewCompound(hammock.Fields{
		"foo": field.Text(),
		"bar": field.TypeOf(0),
	})

	t.Run("Valid", func(t *testing.T) {
		out, err := c.ValidateRecord(map[string]any{"foo": "oof", "bar": 23}, true)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": "oof", "bar": 23}, out)
	})

	t.Run("NotAMap", func(t *testing.T) {
		_, err := c.Validate(5)
		require.Error(t, err)
		assert.True(t, hammock.IsValidation(err))
		// A non-record fails with a single error, not a compound one.
		assert.False(t, hammock.IsCompoundValidation(err))
	})

	t.Run("UndeclaredKeysDropped", func(t *testing.T) {
		out, err := c.ValidateRecord(map[string]any{"foo": "a", "goo": "b", "bar": 17}, true)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": "a", "bar": 17}, out)
	})

	t.Run("DefaultsSubstituted", func(t *testing.T) {
		cd := hammock.NewCompound(hammock.Fields{
			"foo": field.Text(),
			"bar": field.TypeOf(0).Default(8),
		})
		out, err := cd.ValidateRecord(map[string]any{"foo": "ice cream"}, true)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": "ice cream", "bar": 8}, out)
	})

	t.Run("UnsetOptionalOmitted", func(t *testing.T) {
		out, err := c.ValidateRecord(map[string]any{"bar": 1}, true)
		require.NoError(t, err)
		_, ok := out["foo"]
		assert.False(t, ok, "unset optional fields are omitted, not nil")
	})
}

// TestCompoundAggregation verifies that record validation is exhaustive: a
// record with N invalid fields produces exactly N entries.
func TestCompoundAggregation(t *testing.T) {
	t.Parallel()

	c := hammock.NewCompound(hammock.Fields{
		"name":   field.Text().Required(),
		"email":  field.Email().Required(),
		"age":    field.TypeOf(0),
		"active": field.Boolean(),
	})

	_, err := c.ValidateRecord(map[string]any{
		"email":  "not-an-email",
		"age":    "forty",
		"active": true,
	}, true)

	var cerr *hammock.CompoundValidationError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Errors, 3)
	assert.True(t, hammock.IsRequired(cerr.Errors["name"]))
	assert.True(t, hammock.IsValidation(cerr.Errors["email"]))
	assert.True(t, hammock.IsValidation(cerr.Errors["age"]))
	_, ok := cerr.Errors["active"]
	assert.False(t, ok)
}

func TestCompoundPartialValidation(t *testing.T) {
	t.Parallel()

	c := hammock.NewCompound(hammock.Fields{
		"title": field.Text().Required(),
		"body":  field.Text(),
	})

	t.Run("EnforceRequired", func(t *testing.T) {
		_, err := c.ValidateRecord(map[string]any{"body": "hello"}, true)
		var cerr *hammock.CompoundValidationError
		require.ErrorAs(t, err, &cerr)
		assert.True(t, hammock.IsRequired(cerr.Errors["title"]))
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		out, err := c.ValidateRecord(map[string]any{"body": "hello"}, false)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"body": "hello"}, out)
	})

	t.Run("PresentFieldsStillChecked", func(t *testing.T) {
		_, err := c.ValidateRecord(map[string]any{"title": 7}, false)
		var cerr *hammock.CompoundValidationError
		require.ErrorAs(t, err, &cerr)
		assert.Contains(t, cerr.Errors, "title")
	})

	t.Run("NilRecord", func(t *testing.T) {
		_, err := c.ValidateRecord(nil, true)
		var cerr *hammock.CompoundValidationError
		require.ErrorAs(t, err, &cerr)
		assert.Contains(t, cerr.Errors, "title")

		out, err := c.ValidateRecord(nil, false)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestCompoundNested(t *testing.T) {
	t.Parallel()

	address := hammock.NewCompound(hammock.Fields{
		"city": field.Text().Required(),
	})
	person := hammock.NewCompound(hammock.Fields{
		"name":    field.Text().Required(),
		"address": address,
	})

	t.Run("Valid", func(t *testing.T) {
		out, err := person.ValidateRecord(map[string]any{
			"name":    "Ann",
			"address": map[string]any{"city": "Lansing"},
		}, true)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"city": "Lansing"}, out["address"])
	})

	t.Run("NestedErrors", func(t *testing.T) {
		_, err := person.ValidateRecord(map[string]any{
			"name":    "Ann",
			"address": map[string]any{},
		}, true)
		var cerr *hammock.CompoundValidationError
		require.ErrorAs(t, err, &cerr)
		require.Contains(t, cerr.Errors, "address")

		var nested *hammock.CompoundValidationError
		require.ErrorAs(t, cerr.Errors["address"], &nested)
		assert.True(t, hammock.IsRequired(nested.Errors["city"]))
	})

	t.Run("AbsentOptionalCompound", func(t *testing.T) {
		out, err := person.ValidateRecord(map[string]any{"name": "Ann"}, true)
		require.NoError(t, err)
		_, ok := out["address"]
		assert.False(t, ok)
	})
}

// TestCompoundAbortsOnSchemaError verifies that non-validation errors are
// not aggregated: they abort the whole record immediately.
func TestCompoundAbortsOnSchemaError(t *testing.T) {
	t.Parallel()

	c := hammock.NewCompound(hammock.Fields{
		"author": hammock.One("Author"), // never bound by a model
		"title":  field.Text().Required(),
	})
	_, err := c.ValidateRecord(map[string]any{"author": "x"}, true)
	require.Error(t, err)
	assert.True(t, hammock.IsSchemaError(err))
	assert.False(t, hammock.IsCompoundValidation(err))
}
