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

package store

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/require"
)

type staticCredential struct{}

func (staticCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

type stubResponse struct {
	status int
	body   string
}

// stubTransport answers ARM requests by matching the request path.
type stubTransport struct {
	responses map[string]stubResponse
	requests  []*http.Request
	bodies    []string
}

func (t *stubTransport) Do(req *http.Request) (*http.Response, error) {
	t.requests = append(t.requests, req)
	var body []byte
	if req.Body != nil {
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			return nil, err
		}
	}
	t.bodies = append(t.bodies, string(body))
	for suffix, r := range t.responses {
		if strings.HasSuffix(strings.ToLower(req.URL.Path), strings.ToLower(suffix)) {
			return &http.Response{
				StatusCode: r.status,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(strings.NewReader(r.body)),
				Request:    req,
			}, nil
		}
	}
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"error":{"code":"ResourceNotFound","message":"not found"}}`)),
		Request:    req,
	}, nil
}

func newStubStore(t *testing.T, responses map[string]stubResponse) (*Store, *stubTransport) {
	t.Helper()
	transport := &stubTransport{responses: responses}
	s, err := New(
		WithSubscription("00000000-0000-0000-0000-000000000001"),
		WithCloud(AzureCloud),
		WithCredential(staticCredential{}),
		WithTransport(transport),
		WithPollFrequency(time.Millisecond),
	)
	require.NoError(t, err)
	return s, transport
}
