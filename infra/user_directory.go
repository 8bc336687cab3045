package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tnqbao/gau-recipe-service/config"
	"github.com/tnqbao/gau-recipe-service/entity"

	"context"
)

const directoryCacheTTL = 10 * time.Minute

// UserDirectoryService resolves usernames against the user directory
// service. Successful lookups are cached in Redis; the roster tolerates a
// stale username, so the TTL is generous.
type UserDirectoryService struct {
	UserDirectoryServiceURL string
	PrivateKey              string
	cache                   *RedisClient
}

func InitUserDirectoryService(cfg *config.EnvConfig, cache *RedisClient) *UserDirectoryService {
	serviceURL := cfg.ExternalService.UserDirectoryServiceURL
	if serviceURL == "" {
		panic("User directory service URL is not configured")
	}

	return &UserDirectoryService{
		UserDirectoryServiceURL: serviceURL,
		PrivateKey:              cfg.PrivateKey,
		cache:                   cache,
	}
}

func (s *UserDirectoryService) FindByUsername(ctx context.Context, username string) (*entity.DirectoryUser, error) {
	if username == "" {
		return nil, entity.ErrUserNotFound
	}

	cacheKey := "directory:username:" + username
	if s.cache != nil {
		var cached entity.DirectoryUser
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	lookupURL := fmt.Sprintf("%s/api/v1/users/lookup?username=%s",
		s.UserDirectoryServiceURL, url.QueryEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Private-Key", s.PrivateKey)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, entity.ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("user directory returned %d: %s", resp.StatusCode, string(raw))
	}

	var user entity.DirectoryUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if user.Username == "" {
		user.Username = username
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, user, directoryCacheTTL)
	}

	return &user, nil
}

// Invalidate drops a cached username resolution.
func (s *UserDirectoryService) Invalidate(ctx context.Context, username string) error {
	if s.cache == nil {
		return nil
	}
	err := s.cache.Delete(ctx, "directory:username:"+username)
	if err != nil && !errors.Is(err, ErrCacheMiss) {
		return err
	}
	return nil
}
