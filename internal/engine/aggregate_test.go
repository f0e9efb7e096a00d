package engine

import (
	"math"
	"testing"
	"time"

	"github.com/brandpulse/brandpulse/internal/models"
)

func scored(id string, post models.Post, rate, sentiment float64, label models.SentimentLabel) models.ScoredPost {
	post.ID = id
	return models.ScoredPost{
		Post:           post,
		EngagementRate: rate,
		SentimentScore: sentiment,
		SentimentLabel: label,
	}
}

func TestSummarize(t *testing.T) {
	posts := []models.ScoredPost{
		scored("a", igPost(models.MediaVideo, 100, 50, 3000), 5.0, 2.0, models.SentimentPositive),
		scored("b", igPost(models.MediaImage, 20, 5, 0), 25, -2.0, models.SentimentNegative),
		scored("c", igPost(models.MediaImage, 30, 5, 0), 35, 0, models.SentimentNeutral),
	}

	s := Summarize("nordstrom", models.PlatformInstagram, posts)

	if s.PostCount != 3 {
		t.Fatalf("PostCount = %d, want 3", s.PostCount)
	}
	if s.TotalLikes != 150 || s.TotalComments != 60 || s.TotalViews != 3000 {
		t.Errorf("Totals = %d/%d/%d, want 150/60/3000", s.TotalLikes, s.TotalComments, s.TotalViews)
	}
	if math.Abs(s.AvgLikes-50.0) > 1e-9 {
		t.Errorf("AvgLikes = %v, want 50", s.AvgLikes)
	}
	// cohort rate over video posts only: (100+50)/3000 x 100
	if math.Abs(s.EngagementRate-5.0) > 1e-9 {
		t.Errorf("EngagementRate = %v, want 5.0", s.EngagementRate)
	}
	if s.PositiveCount != 1 || s.NeutralCount != 1 || s.NegativeCount != 1 {
		t.Errorf("Sentiment counts = %d/%d/%d, want 1/1/1",
			s.PositiveCount, s.NeutralCount, s.NegativeCount)
	}
	if s.AvgSentiment != 0 {
		t.Errorf("AvgSentiment = %v, want 0", s.AvgSentiment)
	}
}

func TestSummarizeEmptyCohort(t *testing.T) {
	s := Summarize("macys", models.PlatformTikTok, nil)

	if s.PostCount != 0 {
		t.Fatalf("PostCount = %d, want 0", s.PostCount)
	}
	// zero posts must mean zero averages, never NaN
	for name, v := range map[string]float64{
		"AvgLikes":       s.AvgLikes,
		"AvgComments":    s.AvgComments,
		"AvgViews":       s.AvgViews,
		"AvgSentiment":   s.AvgSentiment,
		"EngagementRate": s.EngagementRate,
	} {
		if math.IsNaN(v) || v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
}

func TestTopNStableTies(t *testing.T) {
	posts := []models.ScoredPost{
		scored("first", ttPost(100, 0, 0, 0, 1000), 0, 0, models.SentimentNeutral),
		scored("second", ttPost(100, 0, 0, 0, 1000), 0, 0, models.SentimentNeutral),
		scored("third", ttPost(200, 0, 0, 0, 1000), 0, 0, models.SentimentNeutral),
		scored("fourth", ttPost(100, 0, 0, 0, 1000), 0, 0, models.SentimentNeutral),
	}

	top := TopN(posts, MetricLikes, 5)
	wantOrder := []string{"third", "first", "second", "fourth"}
	if len(top) != 4 {
		t.Fatalf("TopN returned %d posts, want 4", len(top))
	}
	for i, id := range wantOrder {
		if top[i].ID != id {
			t.Errorf("TopN[%d] = %q, want %q (ties keep input order)", i, top[i].ID, id)
		}
	}

	// input order untouched
	if posts[0].ID != "first" || posts[2].ID != "third" {
		t.Error("TopN mutated its input slice")
	}
}

func TestTopNTruncation(t *testing.T) {
	posts := []models.ScoredPost{
		scored("a", ttPost(1, 0, 0, 0, 10), 0, 0, models.SentimentNeutral),
		scored("b", ttPost(3, 0, 0, 0, 10), 0, 0, models.SentimentNeutral),
		scored("c", ttPost(2, 0, 0, 0, 10), 0, 0, models.SentimentNeutral),
	}

	top := TopN(posts, MetricLikes, 2)
	if len(top) != 2 || top[0].ID != "b" || top[1].ID != "c" {
		t.Errorf("TopN(2) = %v, want [b c]", ids(top))
	}

	if got := TopN(posts, MetricLikes, 0); len(got) != 0 {
		t.Errorf("TopN(0) returned %d posts", len(got))
	}
	if got := TopN(nil, MetricLikes, 5); len(got) != 0 {
		t.Errorf("TopN(nil) returned %d posts", len(got))
	}
}

func TestTopNByEngagement(t *testing.T) {
	posts := []models.ScoredPost{
		scored("low", ttPost(0, 0, 0, 0, 0), 1.5, 0, models.SentimentNeutral),
		scored("high", ttPost(0, 0, 0, 0, 0), 9.5, 0, models.SentimentNeutral),
	}

	top := TopN(posts, MetricEngagement, 1)
	if len(top) != 1 || top[0].ID != "high" {
		t.Errorf("TopN by engagement = %v, want [high]", ids(top))
	}
}

func TestParseMetric(t *testing.T) {
	for _, valid := range []string{"likes", "comments", "shares", "views", "engagement"} {
		if _, err := ParseMetric(valid); err != nil {
			t.Errorf("ParseMetric(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseMetric("reach"); err == nil {
		t.Error("ParseMetric(\"reach\") should error")
	}
}

func TestMonthlyTrend(t *testing.T) {
	e := testEngine()

	mk := func(month time.Month, sentiment float64) models.ScoredPost {
		return models.ScoredPost{
			Post: models.Post{
				Platform: models.PlatformInstagram,
				Date:     time.Date(2024, month, 10, 0, 0, 0, 0, time.UTC),
			},
			SentimentScore: sentiment,
		}
	}

	tests := []struct {
		name  string
		posts []models.ScoredPost
		want  string
	}{
		{
			name: "improving",
			posts: []models.ScoredPost{
				mk(time.February, -1), mk(time.February, -1),
				mk(time.May, 2), mk(time.May, 2),
			},
			want: models.TrendImproving,
		},
		{
			name: "declining",
			posts: []models.ScoredPost{
				mk(time.February, 3),
				mk(time.May, 0),
			},
			want: models.TrendDeclining,
		},
		{
			name: "stable within the dead band",
			posts: []models.ScoredPost{
				mk(time.February, 1),
				mk(time.May, 1.5),
			},
			want: models.TrendStable,
		},
		{
			name:  "single month is stable",
			posts: []models.ScoredPost{mk(time.March, 4)},
			want:  models.TrendStable,
		},
		{
			name:  "no posts is stable",
			posts: nil,
			want:  models.TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.MonthlyTrend("nordstrom", models.PlatformInstagram, tt.posts)
			if got.Trend != tt.want {
				t.Errorf("Trend = %q, want %q (points %+v)", got.Trend, tt.want, got.Points)
			}
		})
	}
}

func TestMonthlyTrendChronologicalOrder(t *testing.T) {
	e := testEngine()

	// posts arrive out of month order; points come back Jan..Dec
	posts := []models.ScoredPost{
		{Post: models.Post{Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)}, SentimentScore: 1},
		{Post: models.Post{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)}, SentimentScore: 2},
		{Post: models.Post{Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}, SentimentScore: 3},
	}

	got := e.MonthlyTrend("saks", models.PlatformInstagram, posts)
	wantMonths := []string{"February", "March", "May"}
	if len(got.Points) != 3 {
		t.Fatalf("Points = %d, want 3", len(got.Points))
	}
	for i, m := range wantMonths {
		if got.Points[i].Month != m {
			t.Errorf("Points[%d].Month = %q, want %q", i, got.Points[i].Month, m)
		}
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "#Sale", want: "sale"},
		{input: "sale", want: "sale"},
		{input: "SALE", want: "sale"},
		{input: "  #SpringStyle  ", want: "springstyle"},
		{input: "#", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.input); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHashtagTally(t *testing.T) {
	posts := []models.Post{
		{Hashtags: []string{"#Sale", "spring", "#style"}},
		{Hashtags: []string{"sale", "SALE", "#Spring"}},
		{Hashtags: []string{"#ootd", ""}},
	}

	got := HashtagTally(posts, 10)
	if len(got) != 4 {
		t.Fatalf("Tally has %d entries, want 4: %v", len(got), got)
	}
	if got[0].Tag != "sale" || got[0].Count != 3 {
		t.Errorf("Top tag = %+v, want sale x3", got[0])
	}
	if got[1].Tag != "spring" || got[1].Count != 2 {
		t.Errorf("Second tag = %+v, want spring x2", got[1])
	}
	// style and ootd tie at 1; first-seen order wins
	if got[2].Tag != "style" || got[3].Tag != "ootd" {
		t.Errorf("Tie order = %q, %q, want style then ootd", got[2].Tag, got[3].Tag)
	}
}

func TestHashtagTallyTopK(t *testing.T) {
	posts := []models.Post{
		{Hashtags: []string{"a", "a", "b", "c", "d", "e", "f"}},
	}

	if got := HashtagTally(posts, 5); len(got) != 5 {
		t.Errorf("Tally(k=5) has %d entries, want 5", len(got))
	}
	if got := HashtagTally(posts, 0); len(got) != 0 {
		t.Errorf("Tally(k=0) has %d entries, want 0", len(got))
	}
	if got := HashtagTally(nil, 5); len(got) != 0 {
		t.Errorf("Tally(nil) has %d entries, want 0", len(got))
	}
}

func ids(posts []models.ScoredPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
