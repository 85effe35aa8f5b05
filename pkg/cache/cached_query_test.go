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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCache is a simple mock implementation of ICache for testing
type mockCache struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewStringCmd(ctx, "get", key)
	val, ok := m.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (m *mockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value.(string)
	m.ttls[key] = expiration
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	cmd.SetVal("OK")
	return cmd
}

func (m *mockCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := int64(0)
	for _, key := range keys {
		if _, ok := m.data[key]; ok {
			delete(m.data, key)
			count++
		}
	}
	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(count)
	return cmd
}

func (m *mockCache) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := int64(0)
	for _, key := range keys {
		if _, ok := m.data[key]; ok {
			count++
		}
	}
	cmd := redis.NewIntCmd(ctx, "exists")
	cmd.SetVal(count)
	return cmd
}

func (m *mockCache) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx, "expire", key, expiration)
	cmd.SetVal(true)
	return cmd
}

type TestData struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func testKey(params ...any) string {
	return "test:" + params[0].(string)
}

func TestCachedQuery_Get_CacheHit(t *testing.T) {
	mc := newMockCache()
	ctx := context.Background()
	mc.Set(ctx, "test:1", `{"id":1,"name":"test"}`, time.Hour)

	queryFunc := func(ctx context.Context, params ...any) (TestData, error) {
		t.Error("queryFunc should not be called on cache hit")
		return TestData{}, nil
	}

	cq := NewCachedQuery(mc, testKey, queryFunc, WithLogPrefix[TestData]("[Test]"))
	result, err := cq.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, TestData{ID: 1, Name: "test"}, result)
}

func TestCachedQuery_Get_CacheMiss(t *testing.T) {
	mc := newMockCache()
	ctx := context.Background()

	calls := 0
	queryFunc := func(ctx context.Context, params ...any) (TestData, error) {
		calls++
		return TestData{ID: 2, Name: params[0].(string)}, nil
	}

	cq := NewCachedQuery(mc, testKey, queryFunc, WithTTL[TestData](time.Minute))

	result, err := cq.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, TestData{ID: 2, Name: "2"}, result)

	_, err = cq.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second read should be served from cache")
	assert.Equal(t, time.Minute, mc.ttls["test:2"])
}

func TestCachedQuery_Get_QueryError(t *testing.T) {
	mc := newMockCache()
	boom := errors.New("boom")
	cq := NewCachedQuery(mc, testKey, func(ctx context.Context, params ...any) (TestData, error) {
		return TestData{}, boom
	})

	_, err := cq.Get(context.Background(), "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, mc.data)
}

func TestCachedQuery_Invalidate(t *testing.T) {
	mc := newMockCache()
	ctx := context.Background()
	calls := 0
	cq := NewCachedQuery(mc, testKey, func(ctx context.Context, params ...any) (TestData, error) {
		calls++
		return TestData{ID: calls}, nil
	})

	first, err := cq.Get(ctx, "4")
	require.NoError(t, err)
	require.NoError(t, cq.Invalidate(ctx, "4"))

	second, err := cq.Get(ctx, "4")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, calls)
}

func TestCachedQuery_NilCache(t *testing.T) {
	calls := 0
	cq := NewCachedQuery[TestData](nil, testKey, func(ctx context.Context, params ...any) (TestData, error) {
		calls++
		return TestData{ID: 5}, nil
	})

	ctx := context.Background()
	_, _ = cq.Get(ctx, "5")
	_, _ = cq.Get(ctx, "5")
	assert.Equal(t, 2, calls)
	assert.NoError(t, cq.Invalidate(ctx, "5"))
}
