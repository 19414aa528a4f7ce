package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/timf34/TinderDataAdventures/internal/dataset"
)

// UserStats aggregates one user's activity totals.
type UserStats struct {
	UserID                string  `json:"user_id"`
	Age                   int     `json:"age"`
	Gender                string  `json:"gender"`
	Education             string  `json:"education"`
	City                  string  `json:"city"`
	Country               string  `json:"country"`
	HasInstagram          bool    `json:"has_instagram"`
	HasSpotify            bool    `json:"has_spotify"`
	AccountAgeDays        int     `json:"account_age_days"`
	TotalMatches          int     `json:"total_matches"`
	TotalMessagesReceived int     `json:"total_messages_received"`
	TotalMessagesSent     int     `json:"total_messages_sent"`
	TotalLikesGiven       int     `json:"total_likes_given"`
	TotalPassesGiven      int     `json:"total_passes_given"`
	TotalConversations    int     `json:"total_conversations"`
	MatchRate             float64 `json:"match_rate"` // matches per like given
}

// PopularityOptions controls the popularity report.
type PopularityOptions struct {
	Workers int       // concurrent record aggregators; <= 0 picks a default
	Now     time.Time // reference time for ages; zero means time.Now
}

const defaultPopularityWorkers = 8

// Popularity computes per-user stats across all records with a bounded worker
// pool, sorted by total matches descending.
func Popularity(ctx context.Context, records []dataset.Record, opts PopularityOptions) ([]UserStats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultPopularityWorkers
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	stats := make([]UserStats, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats[i] = aggregateRecord(rec, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalMatches != stats[j].TotalMatches {
			return stats[i].TotalMatches > stats[j].TotalMatches
		}
		return stats[i].UserID < stats[j].UserID
	})
	return stats, nil
}

func aggregateRecord(rec dataset.Record, now time.Time) UserStats {
	s := UserStats{
		UserID:                rec.UserID,
		Age:                   yearsSince(rec.User.BirthDate, now),
		Gender:                rec.User.Gender,
		Education:             rec.User.Education,
		City:                  rec.User.CityName,
		Country:               rec.User.Country,
		HasInstagram:          rec.User.Instagram,
		HasSpotify:            rec.User.Spotify,
		AccountAgeDays:        daysSince(rec.User.CreateDate, now),
		TotalMatches:          dataset.SumCounter(rec.Matches),
		TotalMessagesReceived: dataset.SumCounter(rec.MessagesReceived),
		TotalMessagesSent:     dataset.SumCounter(rec.MessagesSent),
		TotalLikesGiven:       dataset.SumCounter(rec.SwipeLikes),
		TotalPassesGiven:      dataset.SumCounter(rec.SwipePasses),
		TotalConversations:    len(rec.Conversations),
	}
	if s.UserID == "" {
		s.UserID = "unknown"
	}
	if s.TotalLikesGiven > 0 {
		s.MatchRate = float64(s.TotalMatches) / float64(s.TotalLikesGiven)
	}
	return s
}

// dateLayouts covers the timestamp spellings seen in export profile fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

func parseProfileDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func yearsSince(s string, now time.Time) int {
	ts, ok := parseProfileDate(s)
	if !ok || ts.After(now) {
		return 0
	}
	years := now.Year() - ts.Year()
	if now.YearDay() < ts.YearDay() {
		years--
	}
	return years
}

func daysSince(s string, now time.Time) int {
	ts, ok := parseProfileDate(s)
	if !ok || ts.After(now) {
		return 0
	}
	return int(now.Sub(ts).Hours() / 24)
}

// WritePopularityCSV writes the stats as CSV with a header row.
func WritePopularityCSV(w io.Writer, stats []UserStats) error {
	cw := csv.NewWriter(w)
	header := []string{
		"user_id", "age", "gender", "education", "city", "country",
		"has_instagram", "has_spotify", "account_age_days",
		"total_matches", "total_messages_received", "total_messages_sent",
		"total_likes_given", "total_passes_given", "total_conversations", "match_rate",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range stats {
		row := []string{
			s.UserID,
			strconv.Itoa(s.Age),
			s.Gender,
			s.Education,
			s.City,
			s.Country,
			strconv.FormatBool(s.HasInstagram),
			strconv.FormatBool(s.HasSpotify),
			strconv.Itoa(s.AccountAgeDays),
			strconv.Itoa(s.TotalMatches),
			strconv.Itoa(s.TotalMessagesReceived),
			strconv.Itoa(s.TotalMessagesSent),
			strconv.Itoa(s.TotalLikesGiven),
			strconv.Itoa(s.TotalPassesGiven),
			strconv.Itoa(s.TotalConversations),
			strconv.FormatFloat(s.MatchRate, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
