// Package dataset loads a dataset export from disk and exposes it both as raw
// parsed JSON values (for schema inference and querying) and as typed records
// (for the analysis reports).
package dataset

import "strings"

// Record is one user's slice of the export.
type Record struct {
	UserID           string         `json:"userId"`
	User             Profile        `json:"user"`
	Matches          map[string]int `json:"matches"`
	MessagesReceived map[string]int `json:"messagesReceived"`
	MessagesSent     map[string]int `json:"messagesSent"`
	SwipeLikes       map[string]int `json:"swipeLikes"`
	SwipePasses      map[string]int `json:"swipePasses"`
	AppOpens         map[string]int `json:"appOpens"`
	Conversations    []Conversation `json:"conversations"`
}

// Profile holds the user's own profile fields.
type Profile struct {
	BirthDate  string `json:"birthDate"`
	CreateDate string `json:"createDate"`
	Gender     string `json:"gender"`
	Education  string `json:"education"`
	CityName   string `json:"cityName"`
	Country    string `json:"country"`
	Instagram  bool   `json:"instagram"`
	Spotify    bool   `json:"spotify"`
}

// Conversation is a message thread with one match.
type Conversation struct {
	MatchID  string    `json:"matchId"`
	Messages []Message `json:"messages"`
}

// Message is a single message within a conversation. From is "You" for
// outbound messages.
type Message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Message  string `json:"message"`
	SentDate string `json:"sentDate"`
}

// Text returns the message body with the HTML entities the export leaves
// behind replaced.
func (m Message) Text() string {
	return strings.ReplaceAll(m.Message, "&rsquo;", "'")
}

// Outbound reports whether the message was sent by the record's user.
func (m Message) Outbound() bool {
	return m.From == "You"
}

// SumCounter totals a date-keyed counter map.
func SumCounter(counter map[string]int) int {
	total := 0
	for _, n := range counter {
		total += n
	}
	return total
}
