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

package log

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetDefaults(t *testing.T) {
	conf := SetDefaults()

	if conf.Output != "stdout" {
		t.Errorf("expected output to be stdout, got %s", conf.Output)
	}
	if conf.Level != "INFO" {
		t.Errorf("expected level to be INFO, got %s", conf.Level)
	}
	if conf.KeepDays != 7 {
		t.Errorf("expected KeepDays to be 7, got %d", conf.KeepDays)
	}
}

func TestConf_Validate(t *testing.T) {
	tests := []struct {
		name    string
		conf    *Conf
		wantErr bool
	}{
		{name: "stdout", conf: &Conf{Output: "stdout", Level: "INFO"}},
		{name: "file", conf: &Conf{Output: "file", Path: "/tmp/logs", RotateSize: 1, RotateNum: 1, KeepDays: 1}},
		{name: "file without path", conf: &Conf{Output: "file"}, wantErr: true},
		{name: "file with auto-correction", conf: &Conf{Output: "file", Path: "/tmp/logs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.conf.Output == "file" {
				if tt.conf.RotateSize <= 0 || tt.conf.RotateNum <= 0 || tt.conf.KeepDays <= 0 {
					t.Errorf("rotation options should be auto-corrected, got %+v", tt.conf)
				}
			}
		})
	}
}

func TestNewLog_File(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLog(&Conf{
		Output:   "file",
		Path:     tmpDir,
		Filename: "test.log",
		Level:    "INFO",
	})
	if err != nil {
		t.Fatalf("NewLog() error = %v", err)
	}

	logger.Info("test message")
	_ = logger.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "test.log")); os.IsNotExist(err) {
		t.Errorf("log file should exist in %s", tmpDir)
	}
}

func TestGlobalHelpers(t *testing.T) {
	if err := Init(&Conf{Output: "stdout", Level: "DEBUG"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Infow("info", "k", "v")
	Debugw("debug", "k", "v")
	Warnw("warn", "k", "v")
	Errorw("error", "k", "v")

	if GetLogger() == nil {
		t.Fatal("global logger should be initialized")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"Error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
