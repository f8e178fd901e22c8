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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/config"
	"github.com/Azure/aks-cli-plugin-preview/internal/validate"
	"github.com/PaesslerAG/jsonpath"
	"github.com/gosuri/uitable"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat  = "json"
	yamlFormat  = "yaml"
	tableFormat = "table"
)

var (
	outputFormats        = []string{jsonFormat, yamlFormat, tableFormat}
	errTableNotSupported = errors.New("table output is not supported by this command, use json or yaml")
	tableMaxColumnWidth  = uint(80)
)

// TableRenderer fills t with the rows of a table rendition.
type TableRenderer func(t *uitable.Table)

type OutputOpts struct {
	Output    string
	Query     string
	OutWriter io.Writer
}

// ConfigOutput returns the output format from the flag, the profile or the default.
func (opts *OutputOpts) ConfigOutput() string {
	if opts.Output != "" {
		return strings.ToLower(opts.Output)
	}
	if o := config.Output(); o != "" {
		return strings.ToLower(o)
	}
	return jsonFormat
}

func (opts *OutputOpts) ValidateOutput() error {
	return validate.FlagInSlice(opts.ConfigOutput(), "output", outputFormats)
}

func (opts *OutputOpts) writer() io.Writer {
	if opts.OutWriter == nil {
		return os.Stdout
	}
	return opts.OutWriter
}

// Print writes v in the configured format. A --query is applied to the JSON
// document of v before printing.
func (opts *OutputOpts) Print(v any, table TableRenderer) error {
	if opts.Query != "" {
		return opts.printQuery(v)
	}
	switch opts.ConfigOutput() {
	case yamlFormat:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = opts.writer().Write(out)
		return err
	case tableFormat:
		if table == nil {
			return errTableNotSupported
		}
		t := uitable.New()
		t.MaxColWidth = tableMaxColumnWidth
		t.Wrap = true
		table(t)
		_, err := fmt.Fprintln(opts.writer(), t)
		return err
	default:
		return opts.printJSON(v)
	}
}

// Printf writes a plain message, used for commands without a result document.
func (opts *OutputOpts) Printf(format string, a ...any) error {
	_, err := fmt.Fprintf(opts.writer(), format, a...)
	return err
}

func (opts *OutputOpts) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(opts.writer(), string(out))
	return err
}

func (opts *OutputOpts) printQuery(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	result, err := jsonpath.Get(opts.Query, doc)
	if err != nil {
		return fmt.Errorf("invalid --query %q: %w", opts.Query, err)
	}

	switch r := result.(type) {
	case string:
		_, err = fmt.Fprintln(opts.writer(), r)
		return err
	case bool, float64, nil:
		_, err = fmt.Fprintln(opts.writer(), r)
		return err
	}
	if opts.ConfigOutput() == yamlFormat {
		out, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = opts.writer().Write(out)
		return err
	}
	return opts.printJSON(result)
}
