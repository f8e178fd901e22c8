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

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v2"
)

//go:generate mockgen -destination=../mocks/mock_network.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/store SubnetDescriber,ApplicationGatewayDescriber

type SubnetDescriber interface {
	Subnet(ctx context.Context, subnetID string) (*model.Subnet, error)
}

type ApplicationGatewayDescriber interface {
	ApplicationGateway(ctx context.Context, gatewayID string) (*model.ApplicationGateway, error)
}

// Subnet reads a subnet by resource id. The subnet may live in another
// subscription than the store's.
func (s *Store) Subnet(ctx context.Context, subnetID string) (*model.Subnet, error) {
	id, err := arm.ParseResourceID(subnetID)
	if err != nil {
		return nil, fmt.Errorf("invalid subnet id %q: %w", subnetID, err)
	}
	if id.Parent == nil || !strings.EqualFold(id.ResourceType.Type, "virtualNetworks/subnets") {
		return nil, fmt.Errorf("%q is not a subnet id", subnetID)
	}
	client, err := armnetwork.NewSubnetsClient(id.SubscriptionID, s.credential, s.clientOptions)
	if err != nil {
		return nil, err
	}
	resp, err := client.Get(ctx, id.ResourceGroupName, id.Parent.Name, id.Name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	out := &model.Subnet{
		ID:             str(resp.ID),
		Name:           str(resp.Name),
		VirtualNetwork: id.Parent.String(),
	}
	if resp.Properties != nil {
		out.AddressPrefix = str(resp.Properties.AddressPrefix)
	}
	return out, nil
}

func (s *Store) ApplicationGateway(ctx context.Context, gatewayID string) (*model.ApplicationGateway, error) {
	id, err := arm.ParseResourceID(gatewayID)
	if err != nil {
		return nil, fmt.Errorf("invalid application gateway id %q: %w", gatewayID, err)
	}
	client, err := armnetwork.NewApplicationGatewaysClient(id.SubscriptionID, s.credential, s.clientOptions)
	if err != nil {
		return nil, err
	}
	resp, err := client.Get(ctx, id.ResourceGroupName, id.Name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return &model.ApplicationGateway{
		ID:            str(resp.ID),
		Name:          str(resp.Name),
		ResourceGroup: id.ResourceGroupName,
		Location:      str(resp.Location),
	}, nil
}
