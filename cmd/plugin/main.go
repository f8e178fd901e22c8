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

package main

import (
	"context"
	"os"

	"github.com/Azure/aks-cli-plugin-preview/internal/cli/aks"
	"github.com/Azure/aks-cli-plugin-preview/internal/telemetry"
	"github.com/spf13/cobra"
)

func main() {
	cmd := aks.Builder()

	completionOption := &cobra.CompletionOptions{
		DisableDefaultCmd:   true,
		DisableNoDescFlag:   true,
		DisableDescriptions: true,
		HiddenDefaultCmd:    true,
	}
	rootCmd := &cobra.Command{
		DisableFlagParsing: true,
		DisableAutoGenTag:  true,
		DisableSuggestions: true,
		CompletionOptions:  *completionOption,
		SilenceUsage:       true,
	}
	rootCmd.AddCommand(cmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if telemetry.StartedTrackingCommand() {
			telemetry.FinishTrackingCommand(telemetry.TrackOptions{Err: err})
		}
		os.Exit(1)
	}
}
