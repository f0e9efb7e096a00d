package dataset

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/engine"
	"github.com/brandpulse/brandpulse/internal/models"
	"github.com/brandpulse/brandpulse/pkg/logging"
	"github.com/brandpulse/brandpulse/pkg/telemetry"
)

// BrandData is one brand's normalized posts for both platforms
type BrandData struct {
	Brand     string
	Instagram []models.Post
	TikTok    []models.Post
}

// Snapshot is a complete, immutable load of every brand's datasets.
// Consumers read it without copying; nothing writes to it after Load
// returns.
type Snapshot struct {
	Brands   []string
	Data     map[string]BrandData
	LoadedAt time.Time
}

// Posts returns a brand's normalized posts for one platform. Unknown
// brands degrade to an empty set, matching failed loads.
func (s *Snapshot) Posts(brand string, platform models.Platform) []models.Post {
	d, ok := s.Data[brand]
	if !ok {
		return nil
	}
	switch platform {
	case models.PlatformInstagram:
		return d.Instagram
	case models.PlatformTikTok:
		return d.TikTok
	default:
		return nil
	}
}

// Loader materializes snapshots from a source
type Loader struct {
	source Source
	engine *engine.Engine
	brands []string
	logger *zap.Logger
}

// NewLoader creates a loader for the fixed brand set
func NewLoader(source Source, eng *engine.Engine, brands []string) *Loader {
	return &Loader{
		source: source,
		engine: eng,
		brands: brands,
		logger: logging.GetLogger().With(zap.String("component", "loader")),
	}
}

// Load fetches every brand's datasets concurrently and joins them in
// brand order. A failed fetch degrades to an empty post set for that
// brand and platform; it never aborts the other fetches. This is why
// the join is a plain WaitGroup and not a cancel-on-error group.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	ctx, span := telemetry.StartSpan(ctx, "dataset.load")
	defer span.End()

	results := make([]BrandData, len(l.brands))

	var wg sync.WaitGroup
	for i, brand := range l.brands {
		wg.Add(1)
		go func(i int, brand string) {
			defer wg.Done()
			results[i] = l.loadBrand(ctx, brand)
		}(i, brand)
	}
	wg.Wait()

	data := make(map[string]BrandData, len(results))
	for _, r := range results {
		data[r.Brand] = r
	}

	snap := &Snapshot{
		Brands:   append([]string(nil), l.brands...),
		Data:     data,
		LoadedAt: time.Now().UTC(),
	}

	l.logger.Info("Datasets loaded",
		zap.Int("brands", len(snap.Brands)),
		zap.Int("instagram_posts", countPosts(snap, models.PlatformInstagram)),
		zap.Int("tiktok_posts", countPosts(snap, models.PlatformTikTok)))

	return snap
}

// loadBrand fetches and normalizes both platforms for one brand.
// Each platform fails independently.
func (l *Loader) loadBrand(ctx context.Context, brand string) BrandData {
	d := BrandData{Brand: brand}

	ig, err := l.source.FetchInstagram(ctx, brand)
	if err != nil {
		l.logger.Warn("Instagram dataset unavailable, using empty set",
			zap.String("brand", brand), zap.Error(err))
	} else {
		d.Instagram = l.engine.NormalizeInstagram(brand, ig)
	}

	tt, err := l.source.FetchTikTok(ctx, brand)
	if err != nil {
		l.logger.Warn("TikTok dataset unavailable, using empty set",
			zap.String("brand", brand), zap.Error(err))
	} else {
		d.TikTok = l.engine.NormalizeTikTok(brand, tt)
	}

	return d
}

func countPosts(s *Snapshot, platform models.Platform) int {
	n := 0
	for _, brand := range s.Brands {
		n += len(s.Posts(brand, platform))
	}
	return n
}
