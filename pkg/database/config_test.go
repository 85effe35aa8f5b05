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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatabase_SetDefaults(t *testing.T) {
	d := Database{Type: "POSTGRES"}
	d.SetDefaults()

	assert.Equal(t, TypePostgres, d.Type)
	assert.Equal(t, "5432", d.Postgres.Port)
	assert.Equal(t, "disable", d.Postgres.SSLMode)
	assert.Equal(t, "3306", d.MySQL.Port)
	assert.Equal(t, 20, d.MaxOpenConns)

	empty := Database{}
	empty.SetDefaults()
	assert.Equal(t, TypeMemory, empty.Type)
}

func TestDatabase_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Database
		wantErr bool
	}{
		{name: "memory", cfg: Database{Type: TypeMemory}},
		{name: "mysql complete", cfg: Database{Type: TypeMySQL, MySQL: SourceConfig{Host: "h", User: "u", DBName: "d"}}},
		{name: "mysql missing host", cfg: Database{Type: TypeMySQL, MySQL: SourceConfig{User: "u", DBName: "d"}}, wantErr: true},
		{name: "postgres missing db", cfg: Database{Type: TypePostgres, Postgres: SourceConfig{Host: "h", User: "u"}}, wantErr: true},
		{name: "unknown", cfg: Database{Type: "sqlite"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildDSN(t *testing.T) {
	src := SourceConfig{Host: "db", Port: "5432", User: "app", Password: "pw", DBName: "mentorship", SSLMode: "disable"}
	assert.Equal(t, "host=db user=app password=pw dbname=mentorship port=5432 sslmode=disable", buildPostgresDSN(src))

	src.Port = "3306"
	assert.Equal(t, "app:pw@tcp(db:3306)/mentorship?charset=utf8mb4&parseTime=True&loc=Local", buildMySQLDSN(src))
}

func TestConnDurations(t *testing.T) {
	assert.Equal(t, 300*time.Second, GetConnMaxLifetime(0))
	assert.Equal(t, 10*time.Second, GetConnMaxLifetime(10))
	assert.Equal(t, 60*time.Second, GetConnMaxIdleTime(-1))
}
