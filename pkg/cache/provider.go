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
	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

// ProviderSet 提供缓存相关的依赖
var ProviderSet = wire.NewSet(ProvideICache)

// ProvideICache returns a redis backed cache, or a local fastcache when mode is local
func ProvideICache(conf Redis) (ICache, func(), error) {
	if conf.Mode == ModeLocal {
		log.Infow("cache mode is local", "maxBytes", conf.LocalMaxBytes)
		return NewLocalCache(conf.LocalMaxBytes), func() {}, nil
	}
	client, err := NewRedis(conf)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Errorw("close redis failed", "error", err)
		}
	}
	return NewRedisCache(client), cleanup, nil
}
