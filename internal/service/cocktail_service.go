package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/curriculum-api/pkg/config"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

// CocktailService proxies the external cocktail catalogue. Upstream
// responses are forwarded verbatim; a single blocking call per request, no
// retries. Responses are cached in redis when a client is configured.
type CocktailService struct {
	client *http.Client
	cache  *redis.Client
	cfg    config.CocktailConfig
	logger *zap.Logger
}

// NewCocktailService creates a new cocktail proxy service. cache may be nil.
func NewCocktailService(cache *redis.Client, cfg config.CocktailConfig, logger *zap.Logger) *CocktailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CocktailService{
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

// Search lists cocktails by name.
func (s *CocktailService) Search(ctx context.Context, name string) (json.RawMessage, error) {
	return s.fetch(ctx, "search.php", "s", name)
}

// Lookup returns the detail of a single cocktail.
func (s *CocktailService) Lookup(ctx context.Context, id string) (json.RawMessage, error) {
	return s.fetch(ctx, "lookup.php", "i", id)
}

// ByLetter lists cocktails whose name starts with the given letter.
func (s *CocktailService) ByLetter(ctx context.Context, letter string) (json.RawMessage, error) {
	if len(letter) != 1 || !unicode.IsLetter(rune(letter[0])) {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "letter must be a single alphabet character (a-z)")
	}
	return s.fetch(ctx, "search.php", "f", strings.ToLower(letter))
}

func (s *CocktailService) fetch(ctx context.Context, endpoint, param, value string) (json.RawMessage, error) {
	target := fmt.Sprintf("%s/%s/%s?%s", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.APIKey, endpoint, url.Values{param: {value}}.Encode())
	cacheKey := "cocktail:" + endpoint + "?" + param + "=" + value

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			return json.RawMessage(cached), nil
		} else if err != redis.Nil {
			s.logger.Warn("cocktail cache read failed", zap.Error(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch cocktail data")
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch cocktail data")
	}
	defer res.Body.Close() //nolint:errcheck

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, appErrors.New(appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch cocktail data")
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch cocktail data")
	}

	if s.cache != nil {
		ttl := s.cfg.CacheTTL
		if ttl <= 0 {
			ttl = 10 * time.Minute
		}
		if err := s.cache.Set(ctx, cacheKey, body, ttl).Err(); err != nil {
			s.logger.Warn("cocktail cache write failed", zap.Error(err))
		}
	}

	return json.RawMessage(body), nil
}
