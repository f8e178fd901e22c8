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

package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/Azure/aks-cli-plugin-preview/internal/config"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	cacheFilename        = "telemetry"
	rotatedCacheFilename = cacheFilename + ".1"
	dirPermissions       = 0700
	filePermissions      = 0600
	defaultMaxCacheSize  = 500_000
)

// tracker records one event per command run. Events are cached as JSON
// lines; once the cache reaches maxCacheSize it is rotated and only the
// previous generation is kept.
type tracker struct {
	fs           afero.Fs
	maxCacheSize int64
	cacheDir     string
	startTime    time.Time
	cmd          *cobra.Command
	args         []string
}

func newTracker(cmd *cobra.Command, args []string) (*tracker, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return &tracker{
		fs:           afero.NewOsFs(),
		maxCacheSize: defaultMaxCacheSize,
		cacheDir:     filepath.Join(dir, config.ToolName),
		startTime:    time.Now(),
		cmd:          cmd,
		args:         args,
	}, nil
}

func (t *tracker) cachePath() string {
	return filepath.Join(t.cacheDir, cacheFilename)
}

func (t *tracker) trackCommand(data TrackOptions, extra ...EventOpt) error {
	opts := []EventOpt{
		withCommandPath(t.cmd),
		withFlags(t.cmd),
		withArgsCount(t.args),
		withEventType(),
		withVersion(),
		withOS(),
		withHostName(),
		withCloud(config.CloudName()),
		withDuration(t.startTime),
		withError(data.Err),
		withSignal(data.Signal),
	}
	event := newEvent(append(opts, extra...)...)
	log.Debugf("telemetry: %s %v\n", event.Source, event.Properties)
	return t.record(event)
}

// events returns what is currently cached, oldest first.
func (t *tracker) events() ([]Event, error) {
	f, err := t.fs.Open(t.cachePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, scanner.Err()
}

func (t *tracker) record(event Event) error {
	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := t.fs.MkdirAll(t.cacheDir, dirPermissions); err != nil {
		return err
	}
	if err := t.rotateIfFull(); err != nil {
		return err
	}
	f, err := t.fs.OpenFile(t.cachePath(), os.O_APPEND|os.O_WRONLY|os.O_CREATE, filePermissions)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(line, '\n'))
	return err
}

func (t *tracker) rotateIfFull() error {
	info, err := t.fs.Stat(t.cachePath())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < t.maxCacheSize {
		return nil
	}
	log.Debugf("telemetry: rotating cache of %d bytes\n", info.Size())
	return t.fs.Rename(t.cachePath(), filepath.Join(t.cacheDir, rotatedCacheFilename))
}
