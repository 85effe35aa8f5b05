// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// defaultLocalMaxBytes is the default cache size (32MB)
const defaultLocalMaxBytes = 32 * 1024 * 1024

// LocalCache is an in-process ICache backed by fastcache.
// Expiration is checked lazily on read.
type LocalCache struct {
	cache *fastcache.Cache
	mu    sync.RWMutex
	ttls  map[string]time.Time
	now   func() time.Time
}

// NewLocalCache creates a LocalCache with the given capacity in bytes
func NewLocalCache(maxBytes int) *LocalCache {
	if maxBytes <= 0 {
		maxBytes = defaultLocalMaxBytes
	}
	return &LocalCache{
		cache: fastcache.New(maxBytes),
		ttls:  make(map[string]time.Time),
		now:   time.Now,
	}
}

// expiredLocked reports whether key has expired and evicts it if so. Caller holds mu.
func (lc *LocalCache) expiredLocked(key string) bool {
	exp, ok := lc.ttls[key]
	if !ok || lc.now().Before(exp) {
		return false
	}
	delete(lc.ttls, key)
	lc.cache.Del([]byte(key))
	return true
}

func (lc *LocalCache) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.expiredLocked(key) {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	value, ok := lc.cache.HasGet(nil, []byte(key))
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(value))
	return cmd
}

func (lc *LocalCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		encoded, err := sonic.Marshal(v)
		if err != nil {
			cmd.SetErr(err)
			return cmd
		}
		data = encoded
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.cache.Set([]byte(key), data)
	if expiration > 0 {
		lc.ttls[key] = lc.now().Add(expiration)
	} else {
		delete(lc.ttls, key)
	}
	cmd.SetVal("OK")
	return cmd
}

func (lc *LocalCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "del")

	lc.mu.Lock()
	defer lc.mu.Unlock()

	var count int64
	for _, key := range keys {
		if lc.cache.Has([]byte(key)) {
			count++
		}
		lc.cache.Del([]byte(key))
		delete(lc.ttls, key)
	}
	cmd.SetVal(count)
	return cmd
}

func (lc *LocalCache) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "exists")

	lc.mu.Lock()
	defer lc.mu.Unlock()

	var count int64
	for _, key := range keys {
		if lc.expiredLocked(key) {
			continue
		}
		if lc.cache.Has([]byte(key)) {
			count++
		}
	}
	cmd.SetVal(count)
	return cmd
}

func (lc *LocalCache) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx, "expire", key)

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.expiredLocked(key) || !lc.cache.Has([]byte(key)) {
		cmd.SetVal(false)
		return cmd
	}
	lc.ttls[key] = lc.now().Add(expiration)
	cmd.SetVal(true)
	return cmd
}
