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
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/Azure/aks-cli-plugin-preview/internal/config"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	resultSuccess  = "SUCCESS"
	resultError    = "ERROR"
	resultCanceled = "CANCELED"
)

type Event struct {
	Timestamp  time.Time      `json:"timestamp"`
	Source     string         `json:"source"`
	Properties map[string]any `json:"properties"`
}

// EventOpt sets properties on an event before it is cached.
type EventOpt func(Event)

func newEvent(opts ...EventOpt) Event {
	event := Event{
		Timestamp:  time.Now(),
		Source:     config.ToolName,
		Properties: map[string]any{"result": resultSuccess},
	}
	for _, o := range opts {
		o(event)
	}
	return event
}

func withCommandPath(cmd *cobra.Command) EventOpt {
	return func(event Event) {
		path := strings.TrimSpace(cmd.CommandPath())
		event.Properties["command"] = strings.ReplaceAll(path, " ", "-")
		if alias := cmd.CalledAs(); alias != "" && alias != cmd.Name() {
			event.Properties["alias"] = alias
		}
	}
}

func withEventType() EventOpt {
	return func(event Event) {
		event.Properties["eventType"] = "plugin"
	}
}

// withFlags records the names of the flags set on the command line. Values
// carry resource names and are never recorded.
func withFlags(cmd *cobra.Command) EventOpt {
	return func(event Event) {
		var names []string
		cmd.Flags().Visit(func(f *pflag.Flag) {
			names = append(names, f.Name)
		})
		if len(names) > 0 {
			event.Properties["flags"] = names
		}
	}
}

func withArgsCount(args []string) EventOpt {
	return func(event Event) {
		event.Properties["args"] = len(args)
	}
}

func withVersion() EventOpt {
	return func(event Event) {
		event.Properties["version"] = version.Version
		event.Properties["git_commit"] = version.GitCommit
	}
}

func withOS() EventOpt {
	return func(event Event) {
		event.Properties["os"] = runtime.GOOS
		event.Properties["arch"] = runtime.GOARCH
	}
}

func withHostName() EventOpt {
	return func(event Event) {
		event.Properties["hostname"] = config.HostName
	}
}

func withDuration(start time.Time) EventOpt {
	return func(event Event) {
		event.Properties["duration"] = time.Since(start).Milliseconds()
	}
}

func withCloud(name string) EventOpt {
	return func(event Event) {
		if name != "" {
			event.Properties["cloud"] = name
		}
	}
}

// withError records ARM failures by code only; their messages can contain
// resource ids.
func withError(err error) EventOpt {
	return func(event Event) {
		if err == nil {
			return
		}
		event.Properties["result"] = resultError
		var remote *store.RemoteError
		if !errors.As(err, &remote) {
			event.Properties["error"] = err.Error()
			return
		}
		event.Properties["error_code"] = remote.Code
		event.Properties["status_code"] = remote.StatusCode
	}
}

func withSignal(sig string) EventOpt {
	return func(event Event) {
		if sig != "" {
			event.Properties["result"] = resultCanceled
			event.Properties["signal"] = sig
		}
	}
}

// WithAddons records the add-on names a command acted on.
func WithAddons(list string) EventOpt {
	return func(event Event) {
		if list != "" {
			event.Properties["addons"] = list
		}
	}
}
