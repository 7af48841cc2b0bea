package chat

import (
	"bookexplorer/internal/book"
)

// Role identifies the author of a conversation entry.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ActionKind tags the structured payload attached to an entry.
type ActionKind string

const (
	ActionShowForm   ActionKind = "show_form"
	ActionShowList   ActionKind = "show_list"
	ActionShowDetail ActionKind = "show_detail"
)

// Action is the structured payload the rendering layer displays
// alongside an assistant reply. Exactly one variant is populated,
// selected by Kind.
type Action struct {
	Kind  ActionKind  `json:"kind"`
	Books []book.Book `json:"books,omitempty"`
	Book  *book.Book  `json:"book,omitempty"`
}

// Entry is one chat turn. Text may carry HTML and is rendered verbatim
// downstream; callers are trusted.
type Entry struct {
	Role   Role    `json:"role"`
	Text   string  `json:"text"`
	Action *Action `json:"action,omitempty"`
}

// Greeting is the system entry every new conversation starts with.
const Greeting = "I'm your AI Book Assistant. How can I help you today?"

// Log is an append-only ordered sequence of conversation entries.
// Sessions are short-lived, so there is no capacity bound.
type Log struct {
	entries []Entry
}

// NewLog creates a log seeded with the system greeting.
func NewLog() *Log {
	return &Log{entries: []Entry{{Role: RoleSystem, Text: Greeting}}}
}

// Append adds an entry to the end. Entries are never mutated after
// being appended.
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns the ordered entries. Callers must not mutate them.
func (l *Log) Entries() []Entry {
	return l.entries
}
