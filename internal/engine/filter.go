package engine

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/models"
)

// AllMonths is the month selection meaning the whole dataset window
const AllMonths = "All"

// DateRange bounds posts by date, inclusive on both ends
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Filter selects a subset of posts. Month is a calendar month name or
// AllMonths; Range is optional.
type Filter struct {
	Month string
	Range *DateRange
}

// NormalizeInstagram converts raw Instagram records into tagged posts.
// Records with missing or unparseable timestamps are dropped, not
// erred; counters come through zero-defaulted by decoding.
func (e *Engine) NormalizeInstagram(brand string, raw []models.InstagramPost) []models.Post {
	posts := make([]models.Post, 0, len(raw))
	for _, r := range raw {
		date, ok := parseInstagramTime(r.Timestamp)
		if !ok {
			e.logger.Debug("Dropping Instagram post with unparseable timestamp",
				zap.String("brand", brand),
				zap.String("id", r.ID),
				zap.String("timestamp", r.Timestamp))
			continue
		}

		b := r.Brand
		if b == "" {
			b = brand
		}

		posts = append(posts, models.Post{
			Platform:  models.PlatformInstagram,
			ID:        r.ID,
			Brand:     b,
			Text:      r.Caption,
			Date:      date,
			Likes:     zeroFloor(r.LikesCount),
			Comments:  zeroFloor(r.CommentsCount),
			Views:     zeroFloor(r.VideoViewCount),
			MediaType: r.MediaType,
			Hashtags:  append([]string(nil), r.Hashtags...),
			URL:       r.URL,
		})
	}
	return posts
}

// NormalizeTikTok converts raw TikTok records into tagged posts.
// CreateTime arrives either as Unix seconds or as a date string.
func (e *Engine) NormalizeTikTok(brand string, raw []models.TikTokPost) []models.Post {
	posts := make([]models.Post, 0, len(raw))
	for _, r := range raw {
		date, ok := parseTikTokTime(r.CreateTime)
		if !ok {
			e.logger.Debug("Dropping TikTok post with unparseable createTime",
				zap.String("brand", brand),
				zap.String("id", r.ID))
			continue
		}

		b := r.Brand
		if b == "" {
			b = brand
		}

		tags := make([]string, 0, len(r.Hashtags))
		for _, h := range r.Hashtags {
			tags = append(tags, h.Name)
		}

		posts = append(posts, models.Post{
			Platform: models.PlatformTikTok,
			ID:       r.ID,
			Brand:    b,
			Text:     r.Text,
			Date:     date,
			Likes:    zeroFloor(r.DiggCount),
			Comments: zeroFloor(r.CommentCount),
			Shares:   zeroFloor(r.ShareCount),
			Collects: zeroFloor(r.CollectCount),
			Views:    zeroFloor(r.PlayCount),
			Hashtags: tags,
			URL:      r.URL,
		})
	}
	return posts
}

// FilterPosts returns the subset of posts matching the filter, in
// input order. A post must satisfy both the month selection and the
// date range. Pure: the input slice is never modified.
func (e *Engine) FilterPosts(posts []models.Post, f Filter) []models.Post {
	months := e.monthSet(f.Month)

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Date.IsZero() {
			continue
		}
		if _, ok := months[p.Date.Month().String()]; !ok {
			continue
		}
		if f.Range != nil && !f.Range.Contains(p.Date) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// monthSet expands the month selection. "All" is not all time: it is
// the fixed window the datasets were exported for.
func (e *Engine) monthSet(month string) map[string]struct{} {
	set := make(map[string]struct{}, len(e.opts.Months))
	if month == "" || month == AllMonths {
		for _, m := range e.opts.Months {
			set[m] = struct{}{}
		}
		return set
	}
	set[month] = struct{}{}
	return set
}

// instagramTimeLayouts are tried in order for the ISO-like export field
var instagramTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseInstagramTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instagramTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseTikTokTime(raw json.RawMessage) (time.Time, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return time.Time{}, false
	}

	// Numeric: Unix seconds, x1000 to milliseconds
	var secs int64
	if err := json.Unmarshal(raw, &secs); err == nil {
		if secs <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(secs * 1000).UTC(), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)

	// Numeric string: same Unix-seconds handling
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(n * 1000).UTC(), true
	}

	for _, layout := range instagramTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// zeroFloor maps negative counters (absent fields decoded weirdly or
// upstream glitches) to zero so they never reach arithmetic.
func zeroFloor(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
