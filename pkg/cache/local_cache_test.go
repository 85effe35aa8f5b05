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
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCache_GetSetDel(t *testing.T) {
	lc := NewLocalCache(0)
	ctx := context.Background()

	_, err := lc.Get(ctx, "missing").Result()
	assert.ErrorIs(t, err, redis.Nil)

	require.NoError(t, lc.Set(ctx, "k", "v", 0).Err())
	val, err := lc.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", val)
	assert.Equal(t, int64(1), lc.Exists(ctx, "k", "missing").Val())

	assert.Equal(t, int64(1), lc.Del(ctx, "k", "missing").Val())
	_, err = lc.Get(ctx, "k").Result()
	assert.ErrorIs(t, err, redis.Nil)
}

func TestLocalCache_Expiration(t *testing.T) {
	lc := NewLocalCache(0)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lc.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, lc.Set(ctx, "k", "v", time.Minute).Err())
	assert.Equal(t, int64(1), lc.Exists(ctx, "k").Val())

	now = now.Add(2 * time.Minute)
	_, err := lc.Get(ctx, "k").Result()
	assert.ErrorIs(t, err, redis.Nil)
	assert.Equal(t, int64(0), lc.Exists(ctx, "k").Val())
	assert.False(t, lc.Expire(ctx, "k", time.Minute).Val())
}

func TestLocalCache_SetStruct(t *testing.T) {
	lc := NewLocalCache(0)
	ctx := context.Background()

	require.NoError(t, lc.Set(ctx, "s", TestData{ID: 7, Name: "x"}, 0).Err())
	val, err := lc.Get(ctx, "s").Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"x"}`, val)
}

func TestRedis_SetDefaults(t *testing.T) {
	r := Redis{}
	r.SetDefaults()
	assert.Equal(t, ModeLocal, r.Mode)
	assert.Equal(t, defaultLocalMaxBytes, r.LocalMaxBytes)
	assert.Equal(t, time.Duration(5), r.DialTimeout)
}
