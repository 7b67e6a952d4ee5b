package redis_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/config"
	redisRepo "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories/redis"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "checkout_attempts:client-1"

func testRateConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RateConfig.MaxAttempts = 2
	cfg.RateConfig.WindowSize = time.Minute

	return cfg
}

// anyArgs sidesteps exact matching for the commands whose arguments embed
// time.Now().
func anyArgs(expected, actual []interface{}) error {
	return nil
}

func TestCheckRateLimit(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Under The Limit", func(t *testing.T) {
		// Arrange
		db, mock := redismock.NewClientMock()
		cfg := testRateConfig()
		repo := redisRepo.NewRedisRepoWithClient(db, cfg)

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(testKey, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(testKey, redis.Z{}).SetVal(1)
		mock.ExpectZCard(testKey).SetVal(1)
		mock.ExpectExpire(testKey, time.Minute).SetVal(true)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckRateLimit(ctx, "client-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, remaining)
		assert.Equal(t, 0, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Blocked - Window Is Full", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cfg := testRateConfig()
		repo := redisRepo.NewRedisRepoWithClient(db, cfg)

		oldest := time.Now().Unix() - 30

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(testKey, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(testKey, redis.Z{}).SetVal(1)
		mock.ExpectZCard(testKey).SetVal(2)
		mock.ExpectExpire(testKey, time.Minute).SetVal(true)
		mock.ExpectZRange(testKey, 0, 0).SetVal([]string{strconv.FormatInt(oldest, 10)})

		allowed, remaining, retryAfter, err := repo.CheckRateLimit(ctx, "client-1")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.InDelta(t, 30, retryAfter, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error Propagates", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cfg := testRateConfig()
		repo := redisRepo.NewRedisRepoWithClient(db, cfg)

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(testKey, "0", "0").
			SetErr(errors.New("connection refused"))

		allowed, _, _, err := repo.CheckRateLimit(ctx, "client-1")

		require.Error(t, err)
		assert.False(t, allowed)
	})
}
