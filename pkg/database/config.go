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
	"fmt"
	"strings"
	"time"
)

const (
	TypeMySQL    = "mysql"
	TypePostgres = "postgres"
	// TypeMemory keeps every record in process; nothing is opened by this package.
	TypeMemory = "memory"

	dataTablePrefix = "t_"
)

// SourceConfig represents a single data source
type SourceConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"` // postgres only
}

// Database represents the database configuration with common settings and data sources
type Database struct {
	Type         string       `mapstructure:"type"`
	OutPut       bool         `mapstructure:"output"`
	MaxOpenConns int          `mapstructure:"maxOpenConns"`
	MaxIdleConns int          `mapstructure:"maxIdleConns"`
	MaxLifetime  int          `mapstructure:"maxLifeTime"`
	MaxIdleTime  int          `mapstructure:"maxIdleTime"`
	AutoMigrate  bool         `mapstructure:"autoMigrate"`
	MySQL        SourceConfig `mapstructure:"mysql"`
	Postgres     SourceConfig `mapstructure:"postgres"`
}

// SetDefaults fills zero values with sane defaults
func (d *Database) SetDefaults() {
	if d.Type == "" {
		d.Type = TypeMemory
	}
	d.Type = strings.ToLower(d.Type)
	if d.MaxOpenConns == 0 {
		d.MaxOpenConns = 20
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = 5
	}
	if d.MySQL.Port == "" {
		d.MySQL.Port = "3306"
	}
	if d.Postgres.Port == "" {
		d.Postgres.Port = "5432"
	}
	if d.Postgres.SSLMode == "" {
		d.Postgres.SSLMode = "disable"
	}
}

// Validate checks that the selected data source is complete
func (d *Database) Validate() error {
	var src SourceConfig
	switch d.Type {
	case TypeMemory:
		return nil
	case TypeMySQL:
		src = d.MySQL
	case TypePostgres:
		src = d.Postgres
	default:
		return fmt.Errorf("unsupported database type: %s", d.Type)
	}
	if src.Host == "" || src.User == "" || src.DBName == "" {
		return fmt.Errorf("incomplete %s source config: host, user, and dbname are required", d.Type)
	}
	return nil
}

// GetConnMaxLifetime returns ConnMaxLifetime as time.Duration from common config
func GetConnMaxLifetime(maxLifetime int) time.Duration {
	if maxLifetime > 0 {
		return time.Duration(maxLifetime) * time.Second
	}
	return 300 * time.Second
}

// GetConnMaxIdleTime returns ConnMaxIdleTime as time.Duration from common config
func GetConnMaxIdleTime(maxIdleTime int) time.Duration {
	if maxIdleTime > 0 {
		return time.Duration(maxIdleTime) * time.Second
	}
	return 60 * time.Second
}

func buildMySQLDSN(c SourceConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

func buildPostgresDSN(c SourceConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode)
}
