package cache

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisTestEnv names the Redis server used by the integration tests below.
const redisTestEnv = "HALLWAY_TEST_REDIS_ADDR"

func newTestRedisCache(t *testing.T) (*RedisCache, *redis.Client) {
	t.Helper()
	addr := os.Getenv(redisTestEnv)
	if addr == "" {
		t.Skipf("%s not set", redisTestEnv)
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis at %s not reachable: %v", addr, err)
	}
	c := NewRedisCacheFromClient(client)
	t.Cleanup(func() { _ = c.Close() })
	return c, client
}

func TestRedisCache(t *testing.T) {
	c, client := newTestRedisCache(t)
	ctx := context.Background()
	key := "hallway:test:" + t.Name() + ":" + time.Now().Format(time.RFC3339Nano)
	t.Cleanup(func() { client.Del(context.Background(), key) })

	if data, hit, err := c.Get(ctx, key); err != nil || hit || data != nil {
		t.Fatalf("Get(missing) = %q, %v, %v, want a clean miss", data, hit, err)
	}

	if err := c.Set(ctx, key, []byte("itinerary"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "itinerary" {
		t.Errorf("Get() = %q, %v, %v, want itinerary hit", data, hit, err)
	}
	if ttl := client.TTL(ctx, key).Val(); ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v, want within (0, 1m]", ttl)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Errorf("Get after Delete = %v, %v, want miss", hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
}

// Connection failures are errors, never misses.
func TestRedisCache_Unreachable(t *testing.T) {
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
	defer c.Close()
	ctx := context.Background()

	_, hit, err := c.Get(ctx, "k")
	if err == nil || hit {
		t.Fatalf("Get() = %v, %v, want an error", hit, err)
	}
	if !strings.HasPrefix(err.Error(), "redis get:") {
		t.Errorf("Get() error = %q, want redis get prefix", err)
	}
	if err := c.Set(ctx, "k", []byte("x"), time.Minute); err == nil || !strings.HasPrefix(err.Error(), "redis set:") {
		t.Errorf("Set() error = %v, want redis set error", err)
	}
	if err := c.Delete(ctx, "k"); err == nil || !strings.HasPrefix(err.Error(), "redis del:") {
		t.Errorf("Delete() error = %v, want redis del error", err)
	}
}
