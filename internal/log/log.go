// Copyright 2025 Microsoft Corporation
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
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return l
}

func toLogrus(l Level) logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

// ParseLevel maps the --log-level flag values to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn", "":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	return WarningLevel, fmt.Errorf("%q is not a valid log level", s)
}

func SetLevel(l Level) {
	std.SetLevel(toLogrus(l))
}

func SetWriter(w io.Writer) {
	std.SetOutput(w)
}

func Writer() io.Writer {
	return std.Out
}

func IsDebugLevel() bool {
	return std.IsLevelEnabled(logrus.DebugLevel)
}

func Debug(args ...any) {
	std.Debug(args...)
}

func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

func Debugln(args ...any) {
	std.Debugln(args...)
}

func Info(args ...any) {
	std.Info(args...)
}

func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

func Infoln(args ...any) {
	std.Infoln(args...)
}

func Warning(args ...any) {
	std.Warning(args...)
}

func Warningf(format string, args ...any) {
	std.Warningf(format, args...)
}

func Warningln(args ...any) {
	std.Warningln(args...)
}

func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}
