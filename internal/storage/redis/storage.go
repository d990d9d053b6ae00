package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	pipe.SAdd(ctx, usersIndexKey(), string(user.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	userIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(userIDStr))
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.client.SMembers(ctx, usersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.User{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(model.UserID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // index entry for a concurrently deleted user
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue // skip invalid data
		}
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	// Need the stored user to clear the username index
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, userKey(id))
	pipe.Del(ctx, usernameIndexKey(user.Username))
	pipe.SRem(ctx, usersIndexKey(), string(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) CountUsersByRole(ctx context.Context, role model.Role) (int, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, user := range users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// Result operations

func (s *Storage) SaveResult(ctx context.Context, result *model.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	rKey := resultKey(result.ID)

	// Pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, rKey, data, 0)
	pipe.SAdd(ctx, resultsForUserIndexKey(result.UserID), rKey)
	pipe.SAdd(ctx, resultsIndexKey(), rKey)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ResultsForUser(ctx context.Context, userID model.UserID) ([]*model.GameResult, error) {
	keys, err := s.client.SMembers(ctx, resultsForUserIndexKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	results, err := s.fetchResults(ctx, keys)
	if err != nil {
		return nil, err
	}

	// Most recent first
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results, nil
}

func (s *Storage) AllResults(ctx context.Context) ([]*model.GameResult, error) {
	keys, err := s.client.SMembers(ctx, resultsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	return s.fetchResults(ctx, keys)
}

func (s *Storage) DeleteResultsForUser(ctx context.Context, userID model.UserID) error {
	indexKey := resultsForUserIndexKey(userID)

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, resultsIndexKey(), key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) CountResults(ctx context.Context) (int, error) {
	count, err := s.client.SCard(ctx, resultsIndexKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// fetchResults loads and unmarshals the results behind the given keys
func (s *Storage) fetchResults(ctx context.Context, keys []string) ([]*model.GameResult, error) {
	if len(keys) == 0 {
		return []*model.GameResult{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.GameResult, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var result model.GameResult
		if err := json.Unmarshal([]byte(val.(string)), &result); err != nil {
			continue // skip invalid data
		}
		results = append(results, &result)
	}

	return results, nil
}
