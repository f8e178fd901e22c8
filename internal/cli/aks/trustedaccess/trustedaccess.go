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

package trustedaccess

import (
	"errors"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

var errNoRoles = errors.New("at least one role is required")

func Builder() *cobra.Command {
	const use = "trustedaccess"
	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage trusted access between Azure resources and a managed cluster.",
	}

	cmd.AddCommand(
		RoleBuilder(),
		RoleBindingBuilder(),
	)
	return cmd
}

func RoleBuilder() *cobra.Command {
	const use = "role"
	cmd := &cobra.Command{
		Use:   use,
		Short: "Show the roles available for trusted access.",
	}

	cmd.AddCommand(RoleListBuilder())
	return cmd
}

func RoleBindingBuilder() *cobra.Command {
	const use = "rolebinding"
	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage the trusted access role bindings of a managed cluster.",
	}

	cmd.AddCommand(
		ListBuilder(),
		ShowBuilder(),
		CreateBuilder(),
		UpdateBuilder(),
		DeleteBuilder(),
	)
	return cmd
}

// BindingOpts identify a trusted access role binding.
type BindingOpts struct {
	ResourceGroup string
	ClusterName   string
	Name          string
}

func (opts *BindingOpts) addFlags(cmd *cobra.Command, withName bool) {
	cmd.Flags().StringVarP(&opts.ResourceGroup, flag.ResourceGroup, flag.ResourceGroupShort, "", usage.ResourceGroup)
	cmd.Flags().StringVar(&opts.ClusterName, flag.ClusterName, "", usage.Name)
	_ = cmd.MarkFlagRequired(flag.ResourceGroup)
	_ = cmd.MarkFlagRequired(flag.ClusterName)
	if withName {
		cmd.Flags().StringVarP(&opts.Name, flag.Name, flag.NameShort, "", usage.RoleBindingName)
		_ = cmd.MarkFlagRequired(flag.Name)
	}
}

// parseRoles splits a comma-separated role list, dropping blanks.
func parseRoles(s string) ([]string, error) {
	var roles []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		return nil, errNoRoles
	}
	return roles, nil
}
