package chat

import (
	"strings"
	"testing"

	"bookexplorer/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []book.Book {
	return []book.Book{
		{ID: "b1", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Rating: 4.6, Year: 1965, Price: 12},
		{ID: "b2", Title: "Gone Girl", Author: "Gillian Flynn", Genre: "Mystery", Rating: 3.0, Year: 2014, Price: 10},
		{ID: "b3", Title: "The Silent Patient", Author: "Alex Michaelides", Genre: "Mystery", Rating: 4.5, Year: 2019, Price: 14},
		{ID: "b4", Title: "The Girl on the Train", Author: "Paula Hawkins", Genre: "Mystery", Rating: 4.8, Year: 2015, Price: 18},
		{ID: "b5", Title: "Becoming", Author: "Michelle Obama", Genre: "Non Fiction", Rating: 4.8, Year: 2018, Price: 11},
	}
}

func TestRespond_ViewDetails(t *testing.T) {
	books := fixture()

	t.Run("quoted title resolves", func(t *testing.T) {
		reply := Respond(`view details for "Dune"`, books)
		assert.Equal(t, RoleAssistant, reply.Role)
		require.NotNil(t, reply.Action)
		assert.Equal(t, ActionShowDetail, reply.Action.Kind)
		require.NotNil(t, reply.Action.Book)
		assert.Equal(t, "Dune", reply.Action.Book.Title)
	})

	t.Run("details-of phrasing", func(t *testing.T) {
		reply := Respond(`details about 'gone girl'`, books)
		require.NotNil(t, reply.Action)
		assert.Equal(t, ActionShowDetail, reply.Action.Kind)
		assert.Equal(t, "Gone Girl", reply.Action.Book.Title)
	})

	t.Run("show me phrasing", func(t *testing.T) {
		reply := Respond(`Show me "silent patient"`, books)
		require.NotNil(t, reply.Action)
		assert.Equal(t, ActionShowDetail, reply.Action.Kind)
		assert.Equal(t, "The Silent Patient", reply.Action.Book.Title)
	})

	t.Run("unquoted title resolves by substring", func(t *testing.T) {
		reply := Respond("view details for becoming", books)
		require.NotNil(t, reply.Action)
		assert.Equal(t, "Becoming", reply.Action.Book.Title)
	})

	t.Run("unknown title is a normal negative reply", func(t *testing.T) {
		reply := Respond(`view details for "Moby Dick"`, books)
		assert.Nil(t, reply.Action)
		assert.Contains(t, reply.Text, "couldn't find a book")
		assert.Contains(t, reply.Text, "moby dick")
	})
}

func TestRespond_RulePrecedence(t *testing.T) {
	books := fixture()

	t.Run("add book beats search keywords", func(t *testing.T) {
		reply := Respond("add book with details", books)
		require.NotNil(t, reply.Action)
		assert.Equal(t, ActionShowForm, reply.Action.Kind)
	})

	t.Run("add book beats search when both keywords present", func(t *testing.T) {
		reply := Respond("search for a new book", books)
		require.NotNil(t, reply.Action)
		assert.Equal(t, ActionShowForm, reply.Action.Kind)
	})

	t.Run("view details beats add book", func(t *testing.T) {
		reply := Respond(`view details for "new book"`, books)
		assert.Nil(t, reply.Action) // no such title, but the details rule handled it
		assert.Contains(t, reply.Text, "couldn't find a book")
	})

	t.Run("list beats recommend", func(t *testing.T) {
		reply := Respond("show all books you would recommend", books)
		require.NotNil(t, reply.Action)
		assert.Equal(t, ActionShowList, reply.Action.Kind)
	})
}

func TestRespond_AddBook(t *testing.T) {
	for _, input := range []string{"add book", "I want a NEW BOOK please"} {
		reply := Respond(input, fixture())
		require.NotNil(t, reply.Action, "input %q", input)
		assert.Equal(t, ActionShowForm, reply.Action.Kind)
		assert.Contains(t, reply.Text, "fill in the form")
	}
}

func TestRespond_ListBooks(t *testing.T) {
	books := fixture()
	for _, input := range []string{"show all books", "list books", "view books", "please let me see books"} {
		reply := Respond(input, books)
		require.NotNil(t, reply.Action, "input %q", input)
		assert.Equal(t, ActionShowList, reply.Action.Kind)
		assert.Len(t, reply.Action.Books, len(books))
		assert.Contains(t, reply.Text, "(5 total)")
	}
}

func TestRespond_Recommend(t *testing.T) {
	books := fixture()

	t.Run("top three by rating descending", func(t *testing.T) {
		reply := Respond("recommend mystery", books)
		assert.Contains(t, reply.Text, "Mystery Recommendations")
		// 4.8 then 4.5 then 3.0
		first := indexOf(t, reply.Text, "The Girl on the Train")
		second := indexOf(t, reply.Text, "The Silent Patient")
		third := indexOf(t, reply.Text, "Gone Girl")
		assert.Less(t, first, second)
		assert.Less(t, second, third)
		assert.Contains(t, reply.Text, "view details for")
	})

	t.Run("no books of that genre", func(t *testing.T) {
		reply := Respond("recommend romance", books)
		assert.Contains(t, reply.Text, "couldn't find any romance books")
		assert.Contains(t, reply.Text, "Add a new book")
	})

	t.Run("no genre keyword asks for one", func(t *testing.T) {
		reply := Respond("any suggestion?", books)
		assert.Contains(t, reply.Text, "What genre are you interested in?")
	})

	t.Run("empty catalog asks for a genre", func(t *testing.T) {
		reply := Respond("recommend mystery", nil)
		assert.Contains(t, reply.Text, "What genre are you interested in?")
	})
}

func TestRespond_Search(t *testing.T) {
	books := fixture()

	t.Run("strips search phrase and matches title", func(t *testing.T) {
		reply := Respond("search for dune", books)
		assert.Contains(t, reply.Text, "Search Results for \"dune\"")
		assert.Contains(t, reply.Text, "Dune")
		assert.Nil(t, reply.Action)
	})

	t.Run("matches author", func(t *testing.T) {
		reply := Respond("find book hawkins", books)
		assert.Contains(t, reply.Text, "The Girl on the Train")
	})

	t.Run("at most five results", func(t *testing.T) {
		var many []book.Book
		for i := 0; i < 8; i++ {
			many = append(many, book.Book{Title: "The Common Title", Author: "A"})
		}
		reply := Respond("search for common", many)
		assert.Equal(t, 5, strings.Count(reply.Text, "The Common Title"))
	})

	t.Run("no match offers to add", func(t *testing.T) {
		reply := Respond("search for zzzzz", books)
		assert.Contains(t, reply.Text, "couldn't find any books matching")
	})

	t.Run("empty query asks for one", func(t *testing.T) {
		reply := Respond("search for", books)
		assert.Contains(t, reply.Text, "What book are you looking for?")
	})
}

func TestRespond_Summarize(t *testing.T) {
	reply := Respond("summarize Dune for me", fixture())
	assert.Contains(t, reply.Text, "don't have summaries")
	assert.Nil(t, reply.Action)
}

func TestRespond_Help(t *testing.T) {
	reply := Respond("help", fixture())
	assert.Contains(t, reply.Text, "Finding books")
	assert.Contains(t, reply.Text, "Adding books")
}

func TestRespond_Count(t *testing.T) {
	reply := Respond("how many books do you have?", fixture())
	assert.Contains(t, reply.Text, "<strong>5</strong>")
}

func TestRespond_Fallback(t *testing.T) {
	reply := Respond("tell me a joke", fixture())
	assert.Contains(t, reply.Text, "I'm your book assistant!")
	assert.Nil(t, reply.Action)
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	idx := strings.Index(s, sub)
	require.GreaterOrEqual(t, idx, 0, "%q not found in reply", sub)
	return idx
}
