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

package database

import (
	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"gorm.io/gorm"
)

// ProviderSet provides database-related dependencies
var ProviderSet = wire.NewSet(ProvideGormDB)

// ProvideGormDB opens the relational source, or returns a nil handle when type is memory.
func ProvideGormDB(conf Database) (*gorm.DB, func(), error) {
	if conf.Type == TypeMemory {
		log.Warnw("database type is memory, records will not survive a restart")
		return nil, func() {}, nil
	}
	db, err := NewDatabase(conf)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := Close(db); err != nil {
			log.Errorw("close database failed", "error", err)
		}
	}
	return db, cleanup, nil
}
