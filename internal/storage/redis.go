package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "queens:scores:"
	redisBoardsKey = "queens:boards"
	redisSeqPrefix = "queens:seq:"
)

// RedisStore keeps scores in one sorted set per board size, scored by
// elapsed seconds. Members are "<seq>|<created-millis>|<run-id>", where seq
// comes from a per-board INCR counter, so equal times order by insertion.
type RedisStore struct {
	rdb  *redis.Client
	keep int
	now  func() time.Time
}

var _ ScoreStore = (*RedisStore)(nil)

// OpenRedis connects to the server named by a redis:// URL and verifies it
// responds.
func OpenRedis(ctx context.Context, url string, keep int) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis URL: %w", err)
	}
	store := NewRedisStore(opts, keep)
	if err := store.rdb.Ping(ctx).Err(); err != nil {
		store.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}
	return store, nil
}

// NewRedisStore creates a store from connection options without dialing.
func NewRedisStore(opts *redis.Options, keep int) *RedisStore {
	return &RedisStore{
		rdb:  redis.NewClient(opts),
		keep: normalizeKeep(keep),
		now:  time.Now,
	}
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// AddScore adds the run and trims the board's set to the fastest runs in
// one MULTI/EXEC.
func (s *RedisStore) AddScore(ctx context.Context, boardSize int, elapsedSeconds int64) (ScoreEntry, error) {
	if elapsedSeconds < 0 {
		return ScoreEntry{}, ErrNegativeElapsed
	}

	entry := ScoreEntry{
		ID:             uuid.NewString(),
		BoardSize:      boardSize,
		ElapsedSeconds: elapsedSeconds,
		CreatedAt:      s.now().UTC().Truncate(time.Millisecond),
	}
	key := boardKey(boardSize)

	seq, err := s.rdb.Incr(ctx, redisSeqPrefix+strconv.Itoa(boardSize)).Result()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}
	member := encodeMember(seq, entry)

	var rank *redis.IntCmd
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(elapsedSeconds), Member: member})
		pipe.ZRemRangeByRank(ctx, key, int64(s.keep), -1)
		pipe.SAdd(ctx, redisBoardsKey, boardSize)
		rank = pipe.ZRank(ctx, key, member)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if r, err := rank.Result(); err == nil {
		entry.Rank = int(r) + 1
	}
	return entry, nil
}

// Scores returns the kept runs for boardSize, fastest first.
func (s *RedisStore) Scores(ctx context.Context, boardSize int) ([]ScoreEntry, error) {
	zs, err := s.rdb.ZRangeWithScores(ctx, boardKey(boardSize), 0, int64(s.keep)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		e, err := decodeMember(member)
		if err != nil {
			return nil, err
		}
		e.BoardSize = boardSize
		e.ElapsedSeconds = int64(z.Score)
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	return entries, nil
}

// BoardSizes lists board sizes with at least one run.
func (s *RedisStore) BoardSizes(ctx context.Context) ([]int, error) {
	members, err := s.rdb.SMembers(ctx, redisBoardsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query board sizes: %w", err)
	}

	sizes := make([]int, 0, len(members))
	for _, m := range members {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes, nil
}

// ClearScores deletes all runs for boardSize.
func (s *RedisStore) ClearScores(ctx context.Context, boardSize int) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, boardKey(boardSize))
		pipe.SRem(ctx, redisBoardsKey, boardSize)
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

func boardKey(boardSize int) string {
	return redisKeyPrefix + strconv.Itoa(boardSize)
}

// encodeMember zero-pads the sequence number so lexicographic member order,
// which Redis uses for equal scores, matches insertion order.
func encodeMember(seq int64, e ScoreEntry) string {
	return fmt.Sprintf("%019d|%d|%s", seq, e.CreatedAt.UnixMilli(), e.ID)
}

func decodeMember(m string) (ScoreEntry, error) {
	parts := strings.SplitN(m, "|", 3)
	if len(parts) != 3 {
		return ScoreEntry{}, fmt.Errorf("storage: malformed score member %q", m)
	}
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: malformed score member %q: %w", m, err)
	}
	return ScoreEntry{ID: parts[2], CreatedAt: time.UnixMilli(ms).UTC()}, nil
}
