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

package nodepool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/mocks"
	"github.com/go-test/deep"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool = PoolOpts{ResourceGroup: "rg", ClusterName: "cluster", Name: "user"}

func TestBuilder(t *testing.T) {
	cmd := Builder()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
		assert.NotNil(t, c.Flags().Lookup(flag.ResourceGroup), c.Name())
		assert.NotNil(t, c.Flags().Lookup(flag.ClusterName), c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "show", "scale", "delete", "operation-abort"}, names)
}

func TestListOpts_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockAgentPoolLister(ctrl)
	pools := []model.AgentPoolProfile{
		{Name: "system", Count: 1, Mode: "System"},
		{Name: "user", Count: 3, Mode: "User"},
	}
	lister.EXPECT().AgentPools(gomock.Any(), "rg", "cluster").Return(pools, nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &ListOpts{
		OutputOpts: cli.OutputOpts{Output: "table", OutWriter: buf},
		PoolOpts:   PoolOpts{ResourceGroup: "rg", ClusterName: "cluster"},
		store:      lister,
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.Contains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "system")
	assert.Contains(t, buf.String(), "user")
}

func TestShowOpts_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	describer := mocks.NewMockAgentPoolDescriber(ctrl)
	describer.EXPECT().AgentPool(gomock.Any(), "rg", "cluster", "user").
		Return(&model.AgentPoolProfile{Name: "user", Count: 3}, nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &ShowOpts{
		OutputOpts: cli.OutputOpts{Query: "$.count", OutWriter: buf},
		PoolOpts:   testPool,
		store:      describer,
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.Equal(t, "3\n", buf.String())
}

type mockScaleStore struct {
	*mocks.MockAgentPoolDescriber
	*mocks.MockAgentPoolScaler
}

func TestScaleOpts_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := &mockScaleStore{
		MockAgentPoolDescriber: mocks.NewMockAgentPoolDescriber(ctrl),
		MockAgentPoolScaler:    mocks.NewMockAgentPoolScaler(ctrl),
	}
	op := mocks.NewMockAgentPoolOperation(ctrl)
	scaled := &model.AgentPoolProfile{Name: "user", Count: 5}

	s.MockAgentPoolDescriber.EXPECT().AgentPool(gomock.Any(), "rg", "cluster", "user").
		Return(&model.AgentPoolProfile{Name: "user", Count: 3}, nil).Times(1)
	s.MockAgentPoolScaler.EXPECT().BeginScaleAgentPool(gomock.Any(), "rg", "cluster", "user", int32(5)).Return(op, nil).Times(1)
	op.EXPECT().Wait(gomock.Any()).Return(scaled, nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &ScaleOpts{
		OutputOpts: cli.OutputOpts{OutWriter: buf},
		PoolOpts:   testPool,
		nodeCount:  5,
		store:      s,
	}
	require.NoError(t, opts.Run(context.Background()))

	var got model.AgentPoolProfile
	require.NoError(t, jsonDecode(buf, &got))
	if diff := deep.Equal(*scaled, got); diff != nil {
		t.Error(diff)
	}
}

func TestScaleOpts_RunAutoscalerEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := &mockScaleStore{
		MockAgentPoolDescriber: mocks.NewMockAgentPoolDescriber(ctrl),
		MockAgentPoolScaler:    mocks.NewMockAgentPoolScaler(ctrl),
	}
	s.MockAgentPoolDescriber.EXPECT().AgentPool(gomock.Any(), "rg", "cluster", "user").
		Return(&model.AgentPoolProfile{Name: "user", Count: 3, EnableAutoScaling: true}, nil).Times(1)

	opts := &ScaleOpts{PoolOpts: testPool, nodeCount: 5, store: s}
	require.ErrorIs(t, opts.Run(context.Background()), ErrAutoscalerEnabled)
}

func TestScaleOpts_RunNoWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := &mockScaleStore{
		MockAgentPoolDescriber: mocks.NewMockAgentPoolDescriber(ctrl),
		MockAgentPoolScaler:    mocks.NewMockAgentPoolScaler(ctrl),
	}
	op := mocks.NewMockAgentPoolOperation(ctrl)
	s.MockAgentPoolDescriber.EXPECT().AgentPool(gomock.Any(), "rg", "cluster", "user").
		Return(&model.AgentPoolProfile{Name: "user", Count: 3}, nil).Times(1)
	s.MockAgentPoolScaler.EXPECT().BeginScaleAgentPool(gomock.Any(), "rg", "cluster", "user", int32(0)).Return(op, nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &ScaleOpts{OutputOpts: cli.OutputOpts{OutWriter: buf}, PoolOpts: testPool, noWait: true, store: s}
	require.NoError(t, opts.Run(context.Background()))
	assert.Equal(t, "Scaling of node pool 'user' started.\n", buf.String())
}

func TestDeleteOpts_Run(t *testing.T) {
	tests := map[string]struct {
		force   bool
		answer  string
		noWait  bool
		deleted bool
		waitErr error
		want    string
	}{
		"confirmed":      {answer: "y\n", deleted: true, want: "Node pool 'user' deleted.\n"},
		"forced no wait": {force: true, noWait: true, deleted: true, want: "Deletion of node pool 'user' started.\n"},
		"declined":       {answer: "\n"},
		"wait failure":   {force: true, deleted: true, waitErr: errors.New("conflict")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			deleter := mocks.NewMockAgentPoolDeleter(ctrl)
			op := mocks.NewMockOperation(ctrl)
			if tt.deleted {
				deleter.EXPECT().BeginDeleteAgentPool(gomock.Any(), "rg", "cluster", "user").Return(op, nil).Times(1)
				if !tt.noWait {
					op.EXPECT().Wait(gomock.Any()).Return(tt.waitErr).Times(1)
				}
			}

			buf := new(bytes.Buffer)
			prompt := new(bytes.Buffer)
			opts := &DeleteOpts{
				OutputOpts:  cli.OutputOpts{OutWriter: buf},
				ConfirmOpts: cli.ConfirmOpts{Force: tt.force, In: strings.NewReader(tt.answer), Out: prompt},
				PoolOpts:    testPool,
				noWait:      tt.noWait,
				store:       deleter,
			}
			err := opts.Run(context.Background())
			if tt.waitErr != nil {
				require.ErrorIs(t, err, tt.waitErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
			if !tt.force {
				assert.Contains(t, prompt.String(), "delete node pool 'user' of managed cluster 'cluster'")
			}
		})
	}
}

func jsonDecode(buf *bytes.Buffer, v any) error {
	return json.NewDecoder(buf).Decode(v)
}

type mockOperationAbortStore struct {
	*mocks.MockAgentPoolLister
	*mocks.MockAgentPoolOperationAborter
}

func TestOperationAbortOpts_Run(t *testing.T) {
	pools := []model.AgentPoolProfile{{Name: "system"}, {Name: "userPool"}}
	tests := map[string]struct {
		name    string
		noWait  bool
		aborted string
		wantErr string
		want    string
	}{
		"exact name":   {name: "userPool", aborted: "userPool", want: "Latest operation on node pool 'userPool' aborted.\n"},
		"cased name":   {name: "USERPOOL", aborted: "userPool", want: "Latest operation on node pool 'userPool' aborted.\n"},
		"no wait":      {name: "system", noWait: true, aborted: "system", want: "Abort of the latest operation on node pool 'system' started.\n"},
		"missing pool": {name: "gpu", wantErr: "node pool gpu doesn't exist"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := &mockOperationAbortStore{
				MockAgentPoolLister:           mocks.NewMockAgentPoolLister(ctrl),
				MockAgentPoolOperationAborter: mocks.NewMockAgentPoolOperationAborter(ctrl),
			}
			op := mocks.NewMockOperation(ctrl)
			s.MockAgentPoolLister.EXPECT().AgentPools(gomock.Any(), "rg", "cluster").Return(pools, nil).Times(1)
			if tt.aborted != "" {
				s.MockAgentPoolOperationAborter.EXPECT().BeginAbortAgentPoolOperation(gomock.Any(), "rg", "cluster", tt.aborted).Return(op, nil).Times(1)
				if !tt.noWait {
					op.EXPECT().Wait(gomock.Any()).Return(nil).Times(1)
				}
			}

			buf := new(bytes.Buffer)
			opts := &OperationAbortOpts{
				OutputOpts: cli.OutputOpts{OutWriter: buf},
				PoolOpts:   PoolOpts{ResourceGroup: "rg", ClusterName: "cluster", Name: tt.name},
				noWait:     tt.noWait,
				store:      s,
			}
			err := opts.Run(context.Background())
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
