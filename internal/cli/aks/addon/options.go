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

package addon

import (
	"errors"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/Azure/aks-cli-plugin-preview/internal/validate"
	"github.com/spf13/cobra"
)

const (
	applicationGatewayType = "Microsoft.Network/applicationGateways"
	subnetType             = "Microsoft.Network/virtualNetworks/subnets"
	dnsZoneType            = "Microsoft.Network/dnsZones"
)

var errConflictingSecretRotation = errors.New("--enable-secret-rotation and --disable-secret-rotation can't be used together")

func addOptionFlags(cmd *cobra.Command, o *addons.Options) {
	cmd.Flags().StringVar(&o.WorkspaceResourceID, flag.WorkspaceResourceID, "", usage.WorkspaceResourceID)
	cmd.Flags().BoolVar(&o.EnableMSIAuthForMonitoring, flag.EnableMSIAuthForMonitoring, false, usage.EnableMSIAuthForMonitoring)
	cmd.Flags().StringVarP(&o.SubnetName, flag.SubnetName, flag.SubnetNameShort, "", usage.SubnetName)
	cmd.Flags().StringVar(&o.AppGatewayName, flag.AppGatewayName, "", usage.AppGatewayName)
	cmd.Flags().StringVar(&o.AppGatewaySubnetPrefix, flag.AppGatewaySubnetPrefix, "", usage.AppGatewaySubnetPrefix)
	cmd.Flags().StringVar(&o.AppGatewaySubnetCIDR, flag.AppGatewaySubnetCIDR, "", usage.AppGatewaySubnetCIDR)
	cmd.Flags().StringVar(&o.AppGatewayID, flag.AppGatewayID, "", usage.AppGatewayID)
	cmd.Flags().StringVar(&o.AppGatewaySubnetID, flag.AppGatewaySubnetID, "", usage.AppGatewaySubnetID)
	cmd.Flags().StringVar(&o.AppGatewayWatchNamespace, flag.AppGatewayWatchNamespace, "", usage.AppGatewayWatchNamespace)
	cmd.Flags().BoolVar(&o.EnableSGXQuoteHelper, flag.EnableSGXQuoteHelper, false, usage.EnableSGXQuoteHelper)
	cmd.Flags().BoolVar(&o.EnableSecretRotation, flag.EnableSecretRotation, false, usage.EnableSecretRotation)
	cmd.Flags().BoolVar(&o.DisableSecretRotation, flag.DisableSecretRotation, false, usage.DisableSecretRotation)
	cmd.Flags().StringVar(&o.RotationPollInterval, flag.RotationPollInterval, "", usage.RotationPollInterval)
	cmd.Flags().StringVar(&o.DNSZoneResourceID, flag.DNSZoneResourceID, "", usage.DNSZoneResourceID)

	cmd.MarkFlagsMutuallyExclusive(flag.EnableSecretRotation, flag.DisableSecretRotation)
	_ = cmd.Flags().MarkDeprecated(flag.AppGatewaySubnetPrefix, "use --"+flag.AppGatewaySubnetCIDR)
}

// validateOptions checks the shape of the supplied values. Existence of the
// referenced resources is checked by the add-on manager.
func validateOptions(o addons.Options) error {
	if o.EnableSecretRotation && o.DisableSecretRotation {
		return errConflictingSecretRotation
	}
	checks := []func() error{
		func() error { return validate.OptionalResourceID(o.WorkspaceResourceID) },
		func() error { return validate.ResourceIDOfType(o.AppGatewayID, applicationGatewayType) },
		func() error { return validate.ResourceIDOfType(o.AppGatewaySubnetID, subnetType) },
		func() error { return validate.ResourceIDOfType(o.DNSZoneResourceID, dnsZoneType) },
		func() error { return validate.CIDR(o.AppGatewaySubnetCIDR) },
		func() error { return validate.CIDR(o.AppGatewaySubnetPrefix) },
		func() error { return validate.Duration(o.RotationPollInterval) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
