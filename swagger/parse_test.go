package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDoc(t *testing.T) {
	t.Run("empty docstring", func(t *testing.T) {
		summary, anns := ParseDoc("")
		assert.Empty(t, summary)
		assert.Empty(t, anns)
	})

	t.Run("summary only", func(t *testing.T) {
		summary, anns := ParseDoc("Get a list of users.")
		assert.Equal(t, "Get a list of users.", summary)
		assert.Empty(t, anns)
	})

	t.Run("multi line summary keeps paragraphs", func(t *testing.T) {
		summary, anns := ParseDoc(`
			Get a user.

			Looks the user up by primary key.
		`)
		assert.Equal(t, "Get a user.\n\nLooks the user up by primary key.", summary)
		assert.Empty(t, anns)
	})

	t.Run("summary stops at first directive", func(t *testing.T) {
		summary, anns := ParseDoc(`
			Get a user.

			:param user_id: User ID
		`)
		assert.Equal(t, "Get a user.", summary)
		require.Len(t, anns, 1)
		assert.Equal(t, KindParam, anns[0].Kind)
		assert.Equal(t, "user_id", anns[0].Name)
		assert.Equal(t, "User ID", anns[0].Value)
	})

	t.Run("param type and required", func(t *testing.T) {
		_, anns := ParseDoc(`
			:param user_id: User ID
			:type user_id: int
			:required user_id
		`)
		require.Len(t, anns, 3)
		assert.Equal(t, Annotation{Kind: KindParam, Name: "user_id", Value: "User ID"}, anns[0])
		assert.Equal(t, Annotation{Kind: KindType, Name: "user_id", Value: "int"}, anns[1])
		assert.Equal(t, Annotation{Kind: KindRequired, Name: "user_id"}, anns[2])
	})

	t.Run("required ignores trailing text", func(t *testing.T) {
		_, anns := ParseDoc(":required user_id for lookups")
		require.Len(t, anns, 1)
		assert.Equal(t, KindRequired, anns[0].Kind)
		assert.Equal(t, "user_id", anns[0].Name)
	})

	t.Run("status codes", func(t *testing.T) {
		_, anns := ParseDoc(`
			:statuscode 200: The user
			:statuscode 404: No such user
		`)
		require.Len(t, anns, 2)
		assert.Equal(t, Annotation{Kind: KindStatusCode, Code: 200, Value: "The user"}, anns[0])
		assert.Equal(t, Annotation{Kind: KindStatusCode, Code: 404, Value: "No such user"}, anns[1])
	})

	t.Run("non numeric status code skipped", func(t *testing.T) {
		_, anns := ParseDoc(`
			:statuscode teapot: not a code
			:statuscode 200: OK
		`)
		require.Len(t, anns, 1)
		assert.Equal(t, 200, anns[0].Code)
	})

	t.Run("continuation lines joined with spaces", func(t *testing.T) {
		_, anns := ParseDoc(`
			:param q: search terms,
			    matched against name
			    and email
			:param page: page number
		`)
		require.Len(t, anns, 2)
		assert.Equal(t, "search terms, matched against name and email", anns[0].Value)
		assert.Equal(t, "page number", anns[1].Value)
	})

	t.Run("blank line does not close a field body", func(t *testing.T) {
		_, anns := ParseDoc(`
			:param q: search terms

			    and more detail
		`)
		require.Len(t, anns, 1)
		assert.Equal(t, "search terms and more detail", anns[0].Value)
	})

	t.Run("line at directive indentation closes the field body", func(t *testing.T) {
		_, anns := ParseDoc(`
			:param q: search terms
			not part of the description
		`)
		require.Len(t, anns, 1)
		assert.Equal(t, "search terms", anns[0].Value)
	})

	t.Run("unknown directives ignored with their continuation", func(t *testing.T) {
		_, anns := ParseDoc(`
			:query q: unsupported
			    continuation dropped too
			:param a: kept
		`)
		require.Len(t, anns, 1)
		assert.Equal(t, "a", anns[0].Name)
		assert.Equal(t, "kept", anns[0].Value)
	})

	t.Run("param without colon ignored", func(t *testing.T) {
		_, anns := ParseDoc(":param user_id")
		assert.Empty(t, anns)
	})

	t.Run("empty description allowed", func(t *testing.T) {
		_, anns := ParseDoc(":param ham:")
		require.Len(t, anns, 1)
		assert.Equal(t, "ham", anns[0].Name)
		assert.Empty(t, anns[0].Value)
	})

	t.Run("notes directive", func(t *testing.T) {
		_, anns := ParseDoc(`
			:notes Soft-deletes the user
			:notes and clears sessions
		`)
		require.Len(t, anns, 2)
		assert.Equal(t, Annotation{Kind: KindNotes, Value: "Soft-deletes the user"}, anns[0])
		assert.Equal(t, Annotation{Kind: KindNotes, Value: "and clears sessions"}, anns[1])
	})

	t.Run("default and paramtype directives", func(t *testing.T) {
		_, anns := ParseDoc(`
			:default page: 1
			:paramtype avatar: body
		`)
		require.Len(t, anns, 2)
		assert.Equal(t, Annotation{Kind: KindDefault, Name: "page", Value: "1"}, anns[0])
		assert.Equal(t, Annotation{Kind: KindParamType, Name: "avatar", Value: "body"}, anns[1])
	})

	t.Run("description may contain colons", func(t *testing.T) {
		_, anns := ParseDoc(":param when: format: RFC 3339")
		require.Len(t, anns, 1)
		assert.Equal(t, "when", anns[0].Name)
		assert.Equal(t, "format: RFC 3339", anns[0].Value)
	})

	t.Run("first line needs no indentation", func(t *testing.T) {
		summary, anns := ParseDoc("Summary line.\n    :param a: aye")
		assert.Equal(t, "Summary line.", summary)
		require.Len(t, anns, 1)
		assert.Equal(t, "a", anns[0].Name)
	})

	t.Run("windows line endings", func(t *testing.T) {
		summary, anns := ParseDoc("Summary.\r\n\r\n:param a: aye\r\n")
		assert.Equal(t, "Summary.", summary)
		require.Len(t, anns, 1)
		assert.Equal(t, "aye", anns[0].Value)
	})

	t.Run("free text after field list ignored", func(t *testing.T) {
		summary, anns := ParseDoc(`
			Summary.

			:param a: aye

			Trailing prose that belongs to no directive.
		`)
		assert.Equal(t, "Summary.", summary)
		require.Len(t, anns, 1)
		assert.Equal(t, "aye", anns[0].Value)
	})
}
