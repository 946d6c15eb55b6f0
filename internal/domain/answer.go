package domain

import "time"

// AnswerSection is one dataset produced while answering a question: a named
// table with a caption, generic enough to hold analytics reports and ad hoc
// query results alike.
type AnswerSection struct {
	Name    string   `json:"name"`
	Caption string   `json:"caption,omitempty"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ResultSet holds the raw output of an ad hoc query: column names in query
// order and row values as scanned.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Answer is the full response to one question, persisted to the chat log.
type Answer struct {
	ID           string          `json:"id"`
	Question     string          `json:"question"`
	Focus        Focus           `json:"focus"`
	Intent       Intent          `json:"intent"`
	Brand        string          `json:"brand,omitempty"`
	ItemCode     string          `json:"item_code,omitempty"`
	YearFrom     int             `json:"year_from"`
	YearTo       int             `json:"year_to"`
	Summary      string          `json:"summary,omitempty"`
	Sections     []AnswerSection `json:"sections"`
	Narrative    string          `json:"narrative,omitempty"`
	GeneratedSQL string          `json:"generated_sql,omitempty"`
	DurationMs   int64           `json:"duration_ms"`
	CreatedAt    time.Time       `json:"created_at"`
}
