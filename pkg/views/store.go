package views

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/holyfit/holyfit-api/pkg/cache"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "holyfit:view"

// commitScript stores a result only when its sequence number is not older than
// the latest dispatched one.
// KEYS[1] sequence counter, KEYS[2] state; ARGV[1] seq, ARGV[2] state JSON, ARGV[3] ttl in ms
var commitScript = redis.NewScript(`
local latest = tonumber(redis.call('GET', KEYS[1]) or '0')
local seq = tonumber(ARGV[1])
if seq < latest then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// resetScript bumps the sequence counter and stores an empty record resolved at it.
// KEYS[1] sequence counter, KEYS[2] state; ARGV[1] updated_at JSON, ARGV[2] ttl in ms
var resetScript = redis.NewScript(`
local seq = redis.call('INCR', KEYS[1])
redis.call('PEXPIRE', KEYS[1], ARGV[2])
redis.call('SET', KEYS[2], '{"resolved_seq":' .. seq .. ',"updated_at":' .. ARGV[1] .. '}', 'PX', ARGV[2])
return seq
`)

// record is the committed part of a view as stored in Redis
type record struct {
	ResolvedSeq int64                       `json:"resolved_seq"`
	Selector    *models.GenerateViewRequest `json:"selector,omitempty"`
	Diet        *models.DietPlanResult      `json:"diet,omitempty"`
	Workout     *models.WorkoutResult       `json:"workout,omitempty"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// Store keeps per-session view state in Redis
type Store struct {
	cache *cache.Client
	ttl   time.Duration
}

// NewStore creates a Store whose keys expire after ttl
func NewStore(c *cache.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{cache: c, ttl: ttl}
}

func seqKey(sessionID string, view models.ViewKind) string {
	return fmt.Sprintf("%s:%s:%s:seq", keyPrefix, sessionID, view)
}

func stateKey(sessionID string, view models.ViewKind) string {
	return fmt.Sprintf("%s:%s:%s:state", keyPrefix, sessionID, view)
}

// Next reserves the next sequence number of a view
func (s *Store) Next(ctx context.Context, sessionID string, view models.ViewKind) (int64, error) {
	key := seqKey(sessionID, view)

	pipe := s.cache.Redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to reserve sequence: %w", err)
	}
	return incr.Val(), nil
}

// Commit stores rec unless a newer request was dispatched. It reports whether rec was kept.
func (s *Store) Commit(ctx context.Context, sessionID string, view models.ViewKind, rec *record) (bool, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("failed to encode view state: %w", err)
	}

	keys := []string{seqKey(sessionID, view), stateKey(sessionID, view)}
	kept, err := commitScript.Run(ctx, s.cache.Redis, keys, rec.ResolvedSeq, data, s.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to commit view state: %w", err)
	}
	return kept == 1, nil
}

// Load returns the latest dispatched sequence number and the committed record, if any
func (s *Store) Load(ctx context.Context, sessionID string, view models.ViewKind) (int64, *record, error) {
	latest, err := s.cache.Redis.Get(ctx, seqKey(sessionID, view)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, nil, fmt.Errorf("failed to read sequence: %w", err)
	}

	var rec record
	err = s.cache.GetJSON(ctx, stateKey(sessionID, view), &rec)
	if errors.Is(err, cache.ErrMiss) {
		return latest, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return latest, &rec, nil
}

// Clear forgets the committed result of every view of a session. The sequence
// counter is advanced rather than deleted, so results of requests dispatched
// before the reset stay older than anything dispatched after it.
func (s *Store) Clear(ctx context.Context, sessionID string) (int, error) {
	now, err := json.Marshal(time.Now().UTC())
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, view := range []models.ViewKind{models.ViewDiet, models.ViewWorkout} {
		keys := []string{seqKey(sessionID, view), stateKey(sessionID, view)}
		if err := resetScript.Run(ctx, s.cache.Redis, keys, string(now), s.ttl.Milliseconds()).Err(); err != nil {
			return cleared, fmt.Errorf("failed to reset %s view: %w", view, err)
		}
		cleared++
	}
	return cleared, nil
}
