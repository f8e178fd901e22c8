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

//go:build unit

package cli

import (
	"bytes"
	"testing"

	"github.com/gosuri/uitable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name    string         `json:"name"`
	Enabled bool           `json:"enabled"`
	Config  map[string]any `json:"config"`
}

var doc = testDoc{Name: "monitoring", Enabled: true, Config: map[string]any{"useAADAuth": "true"}}

func TestOutputOptsPrint(t *testing.T) {
	tests := map[string]struct {
		output string
		query  string
		want   string
	}{
		"json": {
			output: "json",
			want:   "{\n  \"name\": \"monitoring\",\n  \"enabled\": true,\n  \"config\": {\n    \"useAADAuth\": \"true\"\n  }\n}\n",
		},
		"yaml": {
			output: "yaml",
			want:   "config:\n  useAADAuth: \"true\"\nenabled: true\nname: monitoring\n",
		},
		"query scalar": {
			output: "json",
			query:  "$.name",
			want:   "monitoring\n",
		},
		"query bool": {
			output: "json",
			query:  "$.enabled",
			want:   "true\n",
		},
		"query object": {
			output: "json",
			query:  "$.config",
			want:   "{\n  \"useAADAuth\": \"true\"\n}\n",
		},
		"query object yaml": {
			output: "yaml",
			query:  "$.config",
			want:   "useAADAuth: \"true\"\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			opts := &OutputOpts{Output: tt.output, Query: tt.query, OutWriter: buf}
			require.NoError(t, opts.Print(doc, nil))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestOutputOptsPrintTable(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &OutputOpts{Output: "table", OutWriter: buf}
	require.NoError(t, opts.Print(doc, func(table *uitable.Table) {
		table.AddRow("NAME", "ENABLED")
		table.AddRow(doc.Name, doc.Enabled)
	}))
	assert.Contains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "monitoring")

	require.ErrorIs(t, opts.Print(doc, nil), errTableNotSupported)
}

func TestOutputOptsInvalidQuery(t *testing.T) {
	opts := &OutputOpts{Query: "$.[", OutWriter: new(bytes.Buffer)}
	require.Error(t, opts.Print(doc, nil))
}

func TestOutputOptsValidateOutput(t *testing.T) {
	require.NoError(t, (&OutputOpts{Output: "TABLE"}).ValidateOutput())
	require.Error(t, (&OutputOpts{Output: "xml"}).ValidateOutput())
}
