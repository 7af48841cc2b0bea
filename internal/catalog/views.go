package catalog

import (
	"sort"
	"strings"

	"bookexplorer/internal/book"
)

// GenreAll is the sentinel genre filter that matches every book.
const GenreAll = "All"

// DistinctGenres returns GenreAll followed by every distinct non-empty
// genre in first-seen order.
func DistinctGenres(books []book.Book) []string {
	genres := []string{GenreAll}
	seen := make(map[string]bool)
	for _, b := range books {
		if b.Genre == "" || seen[b.Genre] {
			continue
		}
		seen[b.Genre] = true
		genres = append(genres, b.Genre)
	}
	return genres
}

// Filter returns the books whose title or author contains term
// (case-insensitive) and whose genre matches the filter. The GenreAll
// sentinel matches everything; any other filter is an exact,
// case-sensitive match. An empty term matches everything.
func Filter(books []book.Book, term, genre string) []book.Book {
	term = strings.ToLower(term)
	var out []book.Book
	for _, b := range books {
		matchesSearch := strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Author), term)
		matchesGenre := genre == GenreAll || b.Genre == genre
		if matchesSearch && matchesGenre {
			out = append(out, b)
		}
	}
	return out
}

// Paginate returns the slice [(page-1)*pageSize, page*pageSize) clipped
// to bounds, and the total page count (0 for an empty input).
func Paginate(books []book.Book, pageSize, page int) ([]book.Book, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(books) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > len(books) {
		start = len(books)
	}
	end := start + pageSize
	if end > len(books) {
		end = len(books)
	}
	return books[start:end], totalPages
}

// PageWindow returns the page numbers to offer as pagination controls:
// every page when there are five or fewer, otherwise a five-wide window
// around the current page clamped to [1, totalPages].
func PageWindow(totalPages, page int) []int {
	n := totalPages
	if n > 5 {
		n = 5
	}
	window := make([]int, 0, n)
	for i := 0; i < n; i++ {
		var pageNum int
		switch {
		case totalPages <= 5:
			pageNum = i + 1
		case page <= 3:
			pageNum = i + 1
		case page >= totalPages-2:
			pageNum = totalPages - 4 + i
		default:
			pageNum = page - 2 + i
		}
		window = append(window, pageNum)
	}
	return window
}

// TopRated returns up to limit books whose genre contains the given
// genre as a case-insensitive substring, best rated first. Ties keep
// their original relative order.
func TopRated(books []book.Book, genre string, limit int) []book.Book {
	genre = strings.ToLower(genre)
	var matching []book.Book
	for _, b := range books {
		if b.Genre != "" && strings.Contains(strings.ToLower(b.Genre), genre) {
			matching = append(matching, b)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Rating > matching[j].Rating
	})
	if len(matching) > limit {
		matching = matching[:limit]
	}
	return matching
}
