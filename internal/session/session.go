package session

import (
	"context"
	"sync"

	"bookexplorer/internal/book"
	"bookexplorer/internal/catalog"
	"bookexplorer/internal/chat"

	"github.com/google/uuid"
)

// Session owns one catalog store and one conversation log. All sends
// within a session are serialized; sessions never share state.
type Session struct {
	ID string

	mu      sync.Mutex
	catalog *catalog.Store
	log     *chat.Log
}

// Send appends the verbatim user entry, resolves the assistant reply
// against the current catalog, appends it, and returns it.
func (s *Session) Send(input string) chat.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Append(chat.Entry{Role: chat.RoleUser, Text: input})
	reply := chat.Respond(input, s.catalog.Books())
	s.log.Append(reply)
	return reply
}

// AddBook appends a freshly created book to the session catalog.
func (s *Session) AddBook(b book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.Append(b)
}

// Entries returns the conversation so far.
func (s *Session) Entries() []chat.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Entries()
}

// Manager hands out sessions by id, creating them on demand. A new
// session loads the catalog from the repository exactly once; if that
// load fails no session is created.
type Manager struct {
	repo book.Repository

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(repo book.Repository) *Manager {
	return &Manager{
		repo:     repo,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session with the given id, creating it when unknown.
// An empty id always creates a fresh session with a generated id.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		m.mu.RLock()
		s, ok := m.sessions[id]
		m.mu.RUnlock()
		if ok {
			return s, nil
		}
	} else {
		id = uuid.New().String()
	}

	books, err := m.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	store := catalog.NewStore()
	store.ReplaceAll(books)
	s := &Session{
		ID:      id,
		catalog: store,
		log:     chat.NewLog(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		// Lost a creation race; the first session wins.
		return existing, nil
	}
	m.sessions[id] = s
	return s, nil
}

// Lookup returns an existing session without creating one.
func (m *Manager) Lookup(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Append adds a created book to the given session's catalog, if the
// session exists. Used by the create flow so the chat view sees new
// books without refetching.
func (m *Manager) Append(id string, b book.Book) {
	if s, ok := m.Lookup(id); ok {
		s.AddBook(b)
	}
}
