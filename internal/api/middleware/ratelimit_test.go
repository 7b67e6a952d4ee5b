package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/config"
	redisRepo "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories/redis"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/testutils"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// httptest.NewRequest stamps every request with this peer address.
const limiterKey = "checkout_attempts:192.0.2.1"

func anyArgs(expected, actual []interface{}) error {
	return nil
}

func setupRateLimitTest() (redismock.ClientMock, *redisRepo.RedisRepo) {
	db, mock := redismock.NewClientMock()

	cfg := &config.Config{}
	cfg.RateConfig.MaxAttempts = 2
	cfg.RateConfig.WindowSize = time.Minute

	return mock, redisRepo.NewRedisRepoWithClient(db, cfg)
}

func TestRateLimit(t *testing.T) {
	t.Run("Allowed Request Reaches The Handler", func(t *testing.T) {
		// Arrange
		mock, repo := setupRateLimitTest()

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(limiterKey, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(limiterKey, redis.Z{}).SetVal(1)
		mock.ExpectZCard(limiterKey).SetVal(1)
		mock.ExpectExpire(limiterKey, time.Minute).SetVal(true)

		called := false
		handler := middleware.RateLimit(repo, func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusCreated)
		})

		req := testutils.CreateTestRequest("POST", "/api/v1/checkout", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler(recorder, req)

		// Assert
		assert.True(t, called)
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Blocked Request Gets 429 And Retry-After", func(t *testing.T) {
		mock, repo := setupRateLimitTest()

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(limiterKey, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(limiterKey, redis.Z{}).SetVal(1)
		mock.ExpectZCard(limiterKey).SetVal(2)
		mock.ExpectExpire(limiterKey, time.Minute).SetVal(true)
		mock.CustomMatch(anyArgs).ExpectZRange(limiterKey, 0, 0).
			SetVal([]string{"0"})

		called := false
		handler := middleware.RateLimit(repo, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		req := testutils.CreateTestRequest("POST", "/api/v1/checkout", nil, nil)
		recorder := httptest.NewRecorder()

		handler(recorder, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
		assert.NotEmpty(t, recorder.Header().Get("Retry-After"))
	})

	t.Run("Redis Outage Fails Open", func(t *testing.T) {
		mock, repo := setupRateLimitTest()

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(limiterKey, "0", "0").
			SetErr(errors.New("connection refused"))

		called := false
		handler := middleware.RateLimit(repo, func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusCreated)
		})

		req := testutils.CreateTestRequest("POST", "/api/v1/checkout", nil, nil)
		recorder := httptest.NewRecorder()

		handler(recorder, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}
