package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookexplorer/internal/book"
)

// TestBook is a mock book for testing
var TestBook = book.Book{
	ID:          "test-book-id-789",
	Title:       "Test Book Title",
	Author:      "Test Author",
	Genre:       "Fiction",
	Year:        2016,
	Price:       9.99,
	Rating:      4.5,
	ReviewCount: 120,
	CreatedAt:   time.Now(),
	UpdatedAt:   time.Now(),
}

// Books builds a small fixture catalog for testing.
func Books() []book.Book {
	return []book.Book{
		{ID: "b1", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Year: 1965, Price: 12, Rating: 4.6, ReviewCount: 8000},
		{ID: "b2", Title: "Gone Girl", Author: "Gillian Flynn", Genre: "Mystery", Year: 2014, Price: 10, Rating: 4.0, ReviewCount: 57271},
		{ID: "b3", Title: "The Silent Patient", Author: "Alex Michaelides", Genre: "Mystery", Year: 2019, Price: 14, Rating: 4.5, ReviewCount: 27536},
		{ID: "b4", Title: "Becoming", Author: "Michelle Obama", Genre: "Non Fiction", Year: 2018, Price: 11, Rating: 4.8, ReviewCount: 61133},
		{ID: "b5", Title: "The Girl on the Train", Author: "Paula Hawkins", Genre: "Mystery", Year: 2015, Price: 18, Rating: 4.8, ReviewCount: 79446},
	}
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
