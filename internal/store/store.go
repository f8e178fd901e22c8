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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/aks-cli-plugin-preview/internal/config"
	"github.com/Azure/aks-cli-plugin-preview/internal/version"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

const (
	AzureCloud        = "AzureCloud"
	AzureChinaCloud   = "AzureChinaCloud"
	AzureUSGovernment = "AzureUSGovernment"

	DefaultPollFrequency = 10 * time.Second
)

var errMissingSubscription = errors.New("a subscription ID is required, set it with --subscription or the AZURE_SUBSCRIPTION_ID environment variable")

// Store wraps the ARM clients used by the plugin. All clients share one
// credential and target a single subscription.
type Store struct {
	subscriptionID string
	tenantID       string
	cloudName      string
	credential     azcore.TokenCredential
	clientOptions  *arm.ClientOptions
	pollFrequency  time.Duration
	transport      policy.Transporter

	managedClusters           *armcontainerservice.ManagedClustersClient
	agentPools                *armcontainerservice.AgentPoolsClient
	trustedAccessRoles        *armcontainerservice.TrustedAccessRolesClient
	trustedAccessRoleBindings *armcontainerservice.TrustedAccessRoleBindingsClient
	roleAssignments           *armauthorization.RoleAssignmentsClient
	roleDefinitions           *armauthorization.RoleDefinitionsClient
	workspaces                *armoperationalinsights.WorkspacesClient
	resourceGroups            *armresources.ResourceGroupsClient
}

type Option func(s *Store) error

func WithSubscription(id string) Option {
	return func(s *Store) error {
		s.subscriptionID = id
		return nil
	}
}

func WithTenant(id string) Option {
	return func(s *Store) error {
		s.tenantID = id
		return nil
	}
}

// WithCloud selects the sovereign cloud by its Azure CLI name.
func WithCloud(name string) Option {
	return func(s *Store) error {
		if name == "" {
			return nil
		}
		if _, err := cloudConfiguration(name); err != nil {
			return err
		}
		s.cloudName = name
		return nil
	}
}

// WithCredential overrides the default credential chain.
func WithCredential(cred azcore.TokenCredential) Option {
	return func(s *Store) error {
		s.credential = cred
		return nil
	}
}

// WithTransport sends every ARM request through t.
func WithTransport(t policy.Transporter) Option {
	return func(s *Store) error {
		s.transport = t
		return nil
	}
}

func WithPollFrequency(d time.Duration) Option {
	return func(s *Store) error {
		s.pollFrequency = d
		return nil
	}
}

// New returns a Store for the configured subscription. Options not supplied
// fall back to the CLI profile.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		subscriptionID: config.SubscriptionID(),
		tenantID:       config.TenantID(),
		cloudName:      AzureCloud,
		pollFrequency:  DefaultPollFrequency,
	}
	if name := config.CloudName(); name != "" {
		s.cloudName = name
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.subscriptionID == "" {
		return nil, errMissingSubscription
	}

	cloudConfig, err := cloudConfiguration(s.cloudName)
	if err != nil {
		return nil, err
	}
	s.clientOptions = &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud:     cloudConfig,
			Transport: s.transport,
			Telemetry: policy.TelemetryOptions{
				ApplicationID: "aks-preview/" + version.Version,
			},
		},
	}

	if s.credential == nil {
		s.credential, err = azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
			ClientOptions: s.clientOptions.ClientOptions,
			TenantID:      s.tenantID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load Azure credentials: %w", err)
		}
	}

	if err := s.initClients(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) initClients() error {
	containerService, err := armcontainerservice.NewClientFactory(s.subscriptionID, s.credential, s.clientOptions)
	if err != nil {
		return err
	}
	s.managedClusters = containerService.NewManagedClustersClient()
	s.agentPools = containerService.NewAgentPoolsClient()
	s.trustedAccessRoles = containerService.NewTrustedAccessRolesClient()
	s.trustedAccessRoleBindings = containerService.NewTrustedAccessRoleBindingsClient()

	authorization, err := armauthorization.NewClientFactory(s.subscriptionID, s.credential, s.clientOptions)
	if err != nil {
		return err
	}
	s.roleAssignments = authorization.NewRoleAssignmentsClient()
	s.roleDefinitions = authorization.NewRoleDefinitionsClient()

	if s.workspaces, err = armoperationalinsights.NewWorkspacesClient(s.subscriptionID, s.credential, s.clientOptions); err != nil {
		return err
	}
	if s.resourceGroups, err = armresources.NewResourceGroupsClient(s.subscriptionID, s.credential, s.clientOptions); err != nil {
		return err
	}
	return nil
}

func (s *Store) SubscriptionID() string {
	return s.subscriptionID
}

func (s *Store) CloudName() string {
	return s.cloudName
}

func cloudConfiguration(name string) (cloud.Configuration, error) {
	switch strings.ToLower(name) {
	case "", strings.ToLower(AzureCloud):
		return cloud.AzurePublic, nil
	case strings.ToLower(AzureChinaCloud):
		return cloud.AzureChina, nil
	case strings.ToLower(AzureUSGovernment):
		return cloud.AzureGovernment, nil
	}
	return cloud.Configuration{}, fmt.Errorf("unsupported cloud %q", name)
}
