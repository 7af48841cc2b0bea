package chat

import (
	"fmt"
	"regexp"
	"strings"

	"bookexplorer/internal/book"
	"bookexplorer/internal/catalog"
)

// The intent matcher is an ordered rule list: the first matching rule
// wins and later rules are never tried. Matching is case-insensitive
// keyword and pattern checks; there is no language model behind it.

var (
	reDetailsQuoted = regexp.MustCompile(`view details for ["'](.+?)["']`)
	reDetailsOf     = regexp.MustCompile(`details (?:of|for|about) ["'](.+?)["']`)
	reShowMe        = regexp.MustCompile(`show me ["'](.+?)["']`)
	reDetailsBare   = regexp.MustCompile(`view details for (.+)`)

	// Strips the literal search phrases only; permutations like
	// "find books" pass through unchanged.
	reSearchPhrase = regexp.MustCompile(`search (for|books|about)|find book`)
)

var genreKeywords = []string{
	"fiction",
	"mystery",
	"thriller",
	"fantasy",
	"romance",
	"sci-fi",
	"non fiction",
	"history",
}

// Respond evaluates the user input against the rule list and returns
// the assistant entry. It is pure: the caller owns appending the user
// entry and the returned entry to the conversation log.
func Respond(input string, books []book.Book) Entry {
	msg := strings.ToLower(input)

	// Rule 1: view details for a titled book.
	if title, ok := extractTitle(msg); ok {
		return respondDetails(title, books)
	}

	// Rule 2: open the add-book form.
	if strings.Contains(msg, "add book") || strings.Contains(msg, "new book") {
		return Entry{
			Role:   RoleAssistant,
			Text:   "Please fill in the form below to add a new book:",
			Action: &Action{Kind: ActionShowForm},
		}
	}

	// Rule 3: list the whole catalog.
	if containsAny(msg, "show all books", "list books", "view books", "see books") {
		return Entry{
			Role:   RoleAssistant,
			Text:   fmt.Sprintf("Here are all the books (%d total):", len(books)),
			Action: &Action{Kind: ActionShowList, Books: books},
		}
	}

	// Rule 4: genre recommendations.
	if strings.Contains(msg, "recommend") || strings.Contains(msg, "suggestion") {
		return respondRecommend(msg, books)
	}

	// Rule 5: free-text search.
	if strings.Contains(msg, "search") || strings.Contains(msg, "find book") {
		return respondSearch(msg, books)
	}

	// Rule 6: summaries are not available.
	if strings.Contains(msg, "summarize") || strings.Contains(msg, "summary") {
		return Entry{
			Role: RoleAssistant,
			Text: "I don't have summaries for these books yet. Would you like to view the book details instead?",
		}
	}

	// Rule 7: help.
	if strings.Contains(msg, "help") {
		return Entry{
			Role: RoleAssistant,
			Text: "I can help with:<br><br>" +
				"🔍 <strong>Finding books</strong> - 'Recommend mystery books' or 'Search for [title/author]'<br>" +
				"📖 <strong>Book details</strong> - 'View details for [book title]'<br>" +
				"📋 <strong>Listing books</strong> - 'Show all books'<br>" +
				"➕ <strong>Adding books</strong> - 'Add a new book'<br>" +
				"📊 <strong>Book stats</strong> - 'How many books do you have?'",
		}
	}

	// Rule 8: catalog size.
	if strings.Contains(msg, "how many") {
		return Entry{
			Role: RoleAssistant,
			Text: fmt.Sprintf("There are currently <strong>%d</strong> books in the collection.", len(books)),
		}
	}

	// Fallback: capability hint.
	return Entry{
		Role: RoleAssistant,
		Text: "I'm your book assistant! Here's what you can ask me:<br><br>" +
			"• 'Recommend [genre] books'<br>" +
			"• 'Search for [title or author]'<br>" +
			"• 'View details for [book title]'<br>" +
			"• 'Show all books'<br>" +
			"• 'Add a new book'",
	}
}

// extractTitle pulls the candidate title out of a view-details request.
// The unquoted form is tried last so quoted titles keep their exact
// boundaries.
func extractTitle(msg string) (string, bool) {
	for _, re := range []*regexp.Regexp{reDetailsQuoted, reDetailsOf, reShowMe, reDetailsBare} {
		if m := re.FindStringSubmatch(msg); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func respondDetails(title string, books []book.Book) Entry {
	for i := range books {
		if strings.Contains(strings.ToLower(books[i].Title), title) {
			b := books[i]
			return Entry{
				Role:   RoleAssistant,
				Text:   fmt.Sprintf("Here are the details for %q:", b.Title),
				Action: &Action{Kind: ActionShowDetail, Book: &b},
			}
		}
	}
	return Entry{
		Role: RoleAssistant,
		Text: fmt.Sprintf("I couldn't find a book with the title %q. Please check the title and try again.", title),
	}
}

func respondRecommend(msg string, books []book.Book) Entry {
	var matchedGenre string
	for _, kw := range genreKeywords {
		if strings.Contains(msg, kw) {
			matchedGenre = kw
			break
		}
	}

	if matchedGenre == "" || len(books) == 0 {
		return Entry{
			Role: RoleAssistant,
			Text: "What genre are you interested in? (e.g., Mystery, Romance, Sci-Fi)",
		}
	}

	top := catalog.TopRated(books, matchedGenre, 3)
	if len(top) == 0 {
		return Entry{
			Role: RoleAssistant,
			Text: fmt.Sprintf(`I couldn't find any %s books. Would you like to add one? Just say "Add a new book".`, matchedGenre),
		}
	}

	lines := make([]string, 0, len(top))
	for _, b := range top {
		lines = append(lines, fmt.Sprintf(
			`• <span class="font-semibold">%q</span> by %s<br>⭐ %g | %d | $%g`,
			b.Title, b.Author, b.Rating, b.Year, b.Price,
		))
	}
	text := fmt.Sprintf("📚 <strong>%s Recommendations:</strong><br><br>", titleCase(matchedGenre)) +
		strings.Join(lines, "<br><br>") +
		`<br><br>Type "view details for '[book title]'" to see more information.`

	return Entry{Role: RoleAssistant, Text: text}
}

func respondSearch(msg string, books []book.Book) Entry {
	query := strings.TrimSpace(reSearchPhrase.ReplaceAllString(msg, ""))

	if query == "" || len(books) == 0 {
		return Entry{
			Role: RoleAssistant,
			Text: "What book are you looking for? Please provide a title or author name.",
		}
	}

	var results []book.Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) {
			results = append(results, b)
		}
	}

	if len(results) == 0 {
		return Entry{
			Role: RoleAssistant,
			Text: fmt.Sprintf("I couldn't find any books matching %q. Would you like to try another search term or add a new book?", query),
		}
	}

	if len(results) > 5 {
		results = results[:5]
	}
	lines := make([]string, 0, len(results))
	for _, b := range results {
		lines = append(lines, fmt.Sprintf(
			`• <span class="font-semibold">%q</span> by %s<br>⭐ %g | %s | %d`,
			b.Title, b.Author, b.Rating, b.Genre, b.Year,
		))
	}
	text := fmt.Sprintf("📚 <strong>Search Results for %q:</strong><br><br>", query) +
		strings.Join(lines, "<br><br>") +
		`<br><br>Type "view details for '[book title]'" to see more information.`

	return Entry{Role: RoleAssistant, Text: text}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
