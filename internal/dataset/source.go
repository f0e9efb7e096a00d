package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/models"
	"github.com/brandpulse/brandpulse/pkg/config"
	"github.com/brandpulse/brandpulse/pkg/logging"
	"github.com/brandpulse/brandpulse/pkg/telemetry"
)

// Source fetches one brand's exported dataset for one platform. The
// engine trusts the decoded field types but handles missing fields;
// sources only move bytes and decode.
type Source interface {
	FetchInstagram(ctx context.Context, brand string) ([]models.InstagramPost, error)
	FetchTikTok(ctx context.Context, brand string) ([]models.TikTokPost, error)
}

// exportName is the naming convention of the export files
func exportName(platform models.Platform, brand string) string {
	return fmt.Sprintf("%s_%s.json", platform, brand)
}

// decodeRecords decodes an export array one record at a time. A record
// that does not decode, such as a counter exported as a string, is
// logged and skipped so the rest of the export survives. Only a
// malformed top-level array fails the whole fetch.
func decodeRecords[T any](logger *zap.Logger, name string, data []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode export %s: %w", name, err)
	}

	records := make([]T, 0, len(raw))
	for i, rec := range raw {
		var v T
		if err := json.Unmarshal(rec, &v); err != nil {
			logger.Warn("Skipping undecodable record",
				zap.String("export", name),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		records = append(records, v)
	}
	return records, nil
}

// FileSource reads exports from a local directory
type FileSource struct {
	dir    string
	logger *zap.Logger
}

// NewFileSource creates a source over a local export directory
func NewFileSource(dir string) *FileSource {
	return &FileSource{
		dir:    dir,
		logger: logging.GetLogger().With(zap.String("component", "file-source")),
	}
}

// FetchInstagram reads one brand's Instagram export
func (s *FileSource) FetchInstagram(ctx context.Context, brand string) ([]models.InstagramPost, error) {
	_, span := telemetry.StartSpan(ctx, "dataset.file.fetch_instagram")
	defer span.End()

	name := exportName(models.PlatformInstagram, brand)
	data, err := s.readFile(name)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.InstagramPost](s.logger, name, data)
}

// FetchTikTok reads one brand's TikTok export
func (s *FileSource) FetchTikTok(ctx context.Context, brand string) ([]models.TikTokPost, error) {
	_, span := telemetry.StartSpan(ctx, "dataset.file.fetch_tiktok")
	defer span.End()

	name := exportName(models.PlatformTikTok, brand)
	data, err := s.readFile(name)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.TikTokPost](s.logger, name, data)
}

func (s *FileSource) readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", name, err)
	}
	return data, nil
}

// HTTPSource fetches exports from a static base URL, the way the
// dashboard front-end originally fetched them.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPSource creates a source over an HTTP export location
func NewHTTPSource(cfg *config.DataConfig) (*HTTPSource, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("data_base_url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid data_base_url: %w", err)
	}

	timeout := cfg.FetchTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	logger := logging.GetLogger().With(zap.String("component", "http-source"))
	logger.Info("HTTP export source initialized", zap.String("base_url", cfg.BaseURL))

	return &HTTPSource{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// FetchInstagram fetches one brand's Instagram export
func (s *HTTPSource) FetchInstagram(ctx context.Context, brand string) ([]models.InstagramPost, error) {
	ctx, span := telemetry.StartSpan(ctx, "dataset.http.fetch_instagram")
	defer span.End()

	name := exportName(models.PlatformInstagram, brand)
	data, err := s.getBody(ctx, name)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.InstagramPost](s.logger, name, data)
}

// FetchTikTok fetches one brand's TikTok export
func (s *HTTPSource) FetchTikTok(ctx context.Context, brand string) ([]models.TikTokPost, error) {
	ctx, span := telemetry.StartSpan(ctx, "dataset.http.fetch_tiktok")
	defer span.End()

	name := exportName(models.PlatformTikTok, brand)
	data, err := s.getBody(ctx, name)
	if err != nil {
		return nil, err
	}
	return decodeRecords[models.TikTokPost](s.logger, name, data)
}

func (s *HTTPSource) getBody(ctx context.Context, name string) ([]byte, error) {
	u := s.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching export %s", resp.StatusCode, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", name, err)
	}
	return body, nil
}

// NewSource picks the configured source kind
func NewSource(cfg *config.DataConfig) (Source, error) {
	if cfg.BaseURL != "" {
		return NewHTTPSource(cfg)
	}
	if cfg.Dir != "" {
		return NewFileSource(cfg.Dir), nil
	}
	return nil, fmt.Errorf("no dataset source configured")
}
