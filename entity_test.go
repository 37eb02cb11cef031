package hammock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/hammock"
	"github.com/syssam/hammock/schema/field"
)

func TestEntityNaming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		label  string
		plural string
	}{
		{name: "Author", label: "author", plural: "authors"},
		{name: "Person", label: "person", plural: "people"},
		{name: "OrderItem", label: "order_item", plural: "order_items"},
		{name: "Category", label: "category", plural: "categories"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := hammock.NewEntity(tt.name, hammock.Fields{})
			assert.Equal(t, tt.name, e.Name())
			assert.Equal(t, tt.label, e.Label())
			assert.Equal(t, tt.plural, e.Plural())
		})
	}
}

func TestEntityValidate(t *testing.T) {
	t.Parallel()

	author := hammock.NewEntity("Author", hammock.Fields{
		"name":  field.Text().Required(),
		"email": field.Email(),
	})

	t.Run("Create", func(t *testing.T) {
		out, err := author.Validate(map[string]any{
			"name":  "Elisha",
			"email": "elisha@example.com",
		}, true)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"name":  "Elisha",
			"email": "elisha@example.com",
		}, out)
	})

	t.Run("CreateMissingRequired", func(t *testing.T) {
		_, err := author.Validate(map[string]any{"email": "elisha@example.com"}, true)
		var cerr *hammock.CompoundValidationError
		require.ErrorAs(t, err, &cerr)
		assert.True(t, hammock.IsRequired(cerr.Errors["name"]))
	})

	t.Run("Update", func(t *testing.T) {
		out, err := author.Validate(map[string]any{"email": "new@example.com"}, false)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"email": "new@example.com"}, out)
	})
}

func TestEntityReferences(t *testing.T) {
	t.Parallel()

	post := hammock.NewEntity("Post", hammock.Fields{
		"title":    field.Text().Required(),
		"author":   hammock.One("Author"),
		"comments": hammock.Many("Comment").Optional(),
	})

	refs := post.References()
	require.Len(t, refs, 2)
	assert.Contains(t, refs, "author")
	assert.Contains(t, refs, "comments")
	assert.Equal(t, "Author", refs["author"].TargetName())
	assert.Nil(t, refs["author"].Target())
	assert.True(t, refs["author"].IsRequired())
	assert.False(t, refs["comments"].IsRequired())

	// Plain fields are not references.
	assert.NotContains(t, refs, "title")
}

func TestEntityString(t *testing.T) {
	t.Parallel()

	plain := hammock.NewEntity("Author", hammock.Fields{"name": field.Text()})
	assert.Equal(t, "Entity(Author)", plain.String())

	linked := hammock.NewEntity("Post", hammock.Fields{
		"author": hammock.One("Author"),
		"tags":   hammock.Many("Tag").Optional(),
	})
	assert.Equal(t, "Entity(Post, refs: author, tags)", linked.String())
}

func TestDocument(t *testing.T) {
	t.Parallel()

	author := hammock.NewEntity("Author", hammock.Fields{
		"name": field.Text().Required(),
	})
	doc := hammock.NewDocument(author, map[string]any{"name": "Elisha"})
	assert.Equal(t, author, doc.Entity())
	assert.Equal(t, "Elisha", doc.Get("name"))
	assert.Nil(t, doc.Get("missing"))
	assert.Equal(t, map[string]any{"name": "Elisha"}, doc.Fields())
}
