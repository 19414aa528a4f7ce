// Package report implements dataset-wide analysis reports over typed export
// records: repeated outbound messages and per-user popularity metrics.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/timf34/TinderDataAdventures/internal/dataset"
)

// RepeatedMessage is one outbound message a user sent to more than one match.
type RepeatedMessage struct {
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	Length    int    `json:"length"`
	TimesUsed int    `json:"times_used"`
}

// MessagesOptions controls the repeated-messages report.
type MessagesOptions struct {
	MinLength int // drop messages shorter than this many characters
	TopN      int // cap the result set; <= 0 means no cap
}

// RepeatedMessages finds messages each user copy-pasted across conversations.
// Results are sorted by times used, then length, both descending; ties break
// on user ID and message text so output is reproducible.
func RepeatedMessages(records []dataset.Record, opts MessagesOptions) []RepeatedMessage {
	var rows []RepeatedMessage

	for _, rec := range records {
		userID := rec.UserID
		if userID == "" {
			userID = "unknown"
		}

		counts := make(map[string]int)
		for _, conv := range rec.Conversations {
			for _, msg := range conv.Messages {
				if !msg.Outbound() {
					continue
				}
				text := msg.Text()
				if text == "" {
					continue
				}
				counts[text]++
			}
		}

		for text, count := range counts {
			if count < 2 || len(text) < opts.MinLength {
				continue
			}
			rows = append(rows, RepeatedMessage{
				UserID:    userID,
				Message:   text,
				Length:    len(text),
				TimesUsed: count,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TimesUsed != rows[j].TimesUsed {
			return rows[i].TimesUsed > rows[j].TimesUsed
		}
		if rows[i].Length != rows[j].Length {
			return rows[i].Length > rows[j].Length
		}
		if rows[i].UserID != rows[j].UserID {
			return rows[i].UserID < rows[j].UserID
		}
		return rows[i].Message < rows[j].Message
	})

	if opts.TopN > 0 && len(rows) > opts.TopN {
		rows = rows[:opts.TopN]
	}
	return rows
}

// WriteMessagesCSV writes the report as CSV with a header row.
func WriteMessagesCSV(w io.Writer, rows []RepeatedMessage) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"user_id", "message", "length", "times_used"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.UserID,
			row.Message,
			fmt.Sprintf("%d", row.Length),
			fmt.Sprintf("%d", row.TimesUsed),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
