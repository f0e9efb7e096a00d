package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brandpulse/brandpulse/internal/models"
)

func testEngine() *Engine {
	return New(DefaultOptions())
}

func TestParseInstagramTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "RFC3339", input: "2024-03-15T10:30:00Z", ok: true},
		{name: "RFC3339 with millis", input: "2024-03-15T10:30:00.000Z", ok: true},
		{name: "no zone", input: "2024-03-15T10:30:00", ok: true},
		{name: "date only", input: "2024-03-15", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "whitespace", input: "   ", ok: false},
		{name: "garbage", input: "not-a-date", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := parseInstagramTime(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseInstagramTime(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && ts.Month() != time.March {
				t.Errorf("parseInstagramTime(%q) month = %v, want March", tt.input, ts.Month())
			}
		})
	}
}

func TestParseTikTokTime(t *testing.T) {
	// 2024-03-15T10:30:00Z
	const unixSecs = 1710498600

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "unix seconds numeric", input: "1710498600", ok: true},
		{name: "unix seconds string", input: `"1710498600"`, ok: true},
		{name: "date string", input: `"2024-03-15T10:30:00Z"`, ok: true},
		{name: "zero numeric", input: "0", ok: false},
		{name: "negative numeric", input: "-5", ok: false},
		{name: "null", input: "null", ok: false},
		{name: "missing", input: "", ok: false},
		{name: "garbage string", input: `"whenever"`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := parseTikTokTime(json.RawMessage(tt.input))
			if ok != tt.ok {
				t.Fatalf("parseTikTokTime(%s) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && ts.Unix() != unixSecs {
				t.Errorf("parseTikTokTime(%s) = %v, want unix %d", tt.input, ts, unixSecs)
			}
		})
	}
}

func TestNormalizeInstagramDropsUnparseable(t *testing.T) {
	e := testEngine()
	raw := []models.InstagramPost{
		{ID: "a", Timestamp: "2024-02-01T00:00:00Z", LikesCount: 5},
		{ID: "b", Timestamp: "garbage"},
		{ID: "c", Timestamp: ""},
		{ID: "d", Timestamp: "2024-03-01T00:00:00Z", LikesCount: -3},
	}

	posts := e.NormalizeInstagram("nordstrom", raw)
	if len(posts) != 2 {
		t.Fatalf("Expected 2 normalized posts, got %d", len(posts))
	}
	if posts[0].ID != "a" || posts[1].ID != "d" {
		t.Errorf("Order not preserved: %v, %v", posts[0].ID, posts[1].ID)
	}
	if posts[0].Brand != "nordstrom" {
		t.Errorf("Expected brand fallback, got %q", posts[0].Brand)
	}
	// negative counters never reach arithmetic
	if posts[1].Likes != 0 {
		t.Errorf("Expected negative likes floored to 0, got %d", posts[1].Likes)
	}
}

func TestNormalizeTikTokHashtagShape(t *testing.T) {
	e := testEngine()
	raw := []models.TikTokPost{
		{
			ID:         "t1",
			CreateTime: json.RawMessage("1710498600"),
			DiggCount:  10,
			Hashtags:   []models.TikTokHashtag{{Name: "Sale"}, {Name: "spring"}},
		},
	}

	posts := e.NormalizeTikTok("macys", raw)
	if len(posts) != 1 {
		t.Fatalf("Expected 1 normalized post, got %d", len(posts))
	}
	if len(posts[0].Hashtags) != 2 || posts[0].Hashtags[0] != "Sale" {
		t.Errorf("Hashtags not unwrapped: %v", posts[0].Hashtags)
	}
	if posts[0].Platform != models.PlatformTikTok {
		t.Errorf("Expected tiktok platform tag, got %q", posts[0].Platform)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return ts
}

func TestFilterPosts(t *testing.T) {
	e := testEngine()

	posts := []models.Post{
		{ID: "jan", Platform: models.PlatformInstagram, Date: mustDate(t, "2024-01-10T00:00:00Z")},
		{ID: "feb", Platform: models.PlatformInstagram, Date: mustDate(t, "2024-02-10T00:00:00Z")},
		{ID: "mar", Platform: models.PlatformInstagram, Date: mustDate(t, "2024-03-10T00:00:00Z")},
		{ID: "may", Platform: models.PlatformInstagram, Date: mustDate(t, "2024-05-10T00:00:00Z")},
		{ID: "jun", Platform: models.PlatformInstagram, Date: mustDate(t, "2024-06-10T00:00:00Z")},
		{ID: "zero", Platform: models.PlatformInstagram},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "All is the fixed window, not all time",
			filter: Filter{Month: AllMonths},
			want:   []string{"feb", "mar", "may"},
		},
		{
			name:   "empty month behaves like All",
			filter: Filter{},
			want:   []string{"feb", "mar", "may"},
		},
		{
			name:   "single month",
			filter: Filter{Month: "March"},
			want:   []string{"mar"},
		},
		{
			name: "month and range both apply",
			filter: Filter{
				Month: AllMonths,
				Range: &DateRange{
					Start: mustDate(t, "2024-03-01T00:00:00Z"),
					End:   mustDate(t, "2024-04-30T23:59:59Z"),
				},
			},
			want: []string{"mar"},
		},
		{
			name: "range is inclusive",
			filter: Filter{
				Month: "February",
				Range: &DateRange{
					Start: mustDate(t, "2024-02-10T00:00:00Z"),
					End:   mustDate(t, "2024-02-10T00:00:00Z"),
				},
			},
			want: []string{"feb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FilterPosts(posts, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterPosts() returned %d posts, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("FilterPosts()[%d] = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}

	// input must not be mutated
	if posts[0].ID != "jan" || len(posts) != 6 {
		t.Error("FilterPosts() mutated its input")
	}
}

func TestFilterPostsIdempotent(t *testing.T) {
	e := testEngine()
	posts := []models.Post{
		{ID: "feb", Platform: models.PlatformInstagram, Date: mustDate(t, "2024-02-10T00:00:00Z")},
		{ID: "mar", Platform: models.PlatformInstagram, Date: mustDate(t, "2024-03-10T00:00:00Z")},
	}

	first := e.FilterPosts(posts, Filter{Month: AllMonths})
	second := e.FilterPosts(posts, Filter{Month: AllMonths})

	if len(first) != len(second) {
		t.Fatalf("Repeat run gave %d posts vs %d", len(second), len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("Repeat run diverged at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}
