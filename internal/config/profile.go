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

package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	DefaultProfile            = "default" // DefaultProfile default
	ToolName                  = "aks-preview"
	EnvPrefix                 = "AKS"
	configName                = "config"
	configType                = "toml"
	configPermissions         = 0600
	subscriptionID            = "subscription_id"
	tenantID                  = "tenant_id"
	cloudName                 = "cloud_name"
	output                    = "output"
	telemetryEnabled          = "telemetry_enabled"
	ContainerizedHostNameEnv  = "AKS_PREVIEW_IS_CONTAINERIZED"
	GitHubActionsHostNameEnv  = "GITHUB_ACTIONS"
	AzurePipelinesHostNameEnv = "TF_BUILD"
	NativeHostName            = "native"
	DockerContainerHostName   = "container"
	GitHubActionsHostName     = "all_github_actions"
	AzurePipelinesHostName    = "azure_pipelines"
)

var (
	HostName       = detectHostName(os.Getenv)
	UserAgent      = fmt.Sprintf("%s/%s (%s;%s;%s)", ToolName, version.Version, runtime.GOOS, runtime.GOARCH, HostName)
	defaultProfile = newProfile()
)

// fallbackEnvs are read when the AKS_ prefixed variable is not set.
var fallbackEnvs = map[string][]string{
	subscriptionID: {"AKS_SUBSCRIPTION_ID", "AZURE_SUBSCRIPTION_ID"},
	tenantID:       {"AKS_TENANT_ID", "AZURE_TENANT_ID"},
	cloudName:      {"AKS_CLOUD_NAME", "AZURE_CLOUD_NAME"},
}

type Profile struct {
	name      string
	configDir string
	fs        afero.Fs
	err       error
}

// IsTrue reports whether s is a boolean true or a yes answer.
func IsTrue(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	}
	v, _ := strconv.ParseBool(s)
	return v
}

func Default() *Profile {
	return defaultProfile
}

// New returns a profile reading its configuration file from configDir on fs.
func New(name, configDir string, fs afero.Fs) *Profile {
	return &Profile{name: name, configDir: configDir, fs: fs}
}

// hostEnvironments identify where the plugin runs, in the order they are
// reported.
var hostEnvironments = []struct {
	env  string
	name string
}{
	{AzurePipelinesHostNameEnv, AzurePipelinesHostName},
	{GitHubActionsHostNameEnv, GitHubActionsHostName},
	{ContainerizedHostNameEnv, DockerContainerHostName},
}

func detectHostName(getenv func(string) string) string {
	var found []string
	for _, h := range hostEnvironments {
		if IsTrue(getenv(h.env)) {
			found = append(found, h.name)
		}
	}
	if len(found) == 0 {
		return NativeHostName
	}
	return strings.Join(found, "|")
}

func newProfile() *Profile {
	configDir, err := CLIConfigHome()
	return &Profile{
		name:      DefaultProfile,
		configDir: configDir,
		fs:        afero.NewOsFs(),
		err:       err,
	}
}

// Load reads the configuration file, if any, and binds the environment.
// A missing file is not an error.
func Load() error { return Default().Load() }
func (p *Profile) Load() error {
	if p.err != nil {
		return p.err
	}
	viper.SetFs(p.fs)
	viper.SetConfigName(configName)
	viper.SetConfigType(configType)
	viper.SetConfigPermissions(configPermissions)
	viper.AddConfigPath(p.configDir)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for key, envs := range fallbackEnvs {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("could not read %s: %w", p.Filename(), err)
	}
	return nil
}

// Filename is the path of the configuration file.
func Filename() string { return Default().Filename() }
func (p *Profile) Filename() string {
	return path.Join(p.configDir, configName+"."+configType)
}

func Name() string { return Default().Name() }
func (p *Profile) Name() string {
	return p.name
}

func SetGlobal(name string, value any) { viper.Set(name, value) }
func (*Profile) SetGlobal(name string, value any) {
	SetGlobal(name, value)
}

// Get returns the global value of name when set, the profile value otherwise.
func Get(name string) any { return Default().Get(name) }
func (p *Profile) Get(name string) any {
	if viper.IsSet(name) && viper.Get(name) != "" {
		return viper.Get(name)
	}
	settings := viper.GetStringMap(p.Name())
	return settings[name]
}

func GetString(name string) string { return Default().GetString(name) }
func (p *Profile) GetString(name string) string {
	switch v := p.Get(name).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// SubscriptionID get configured subscription.
func SubscriptionID() string { return Default().SubscriptionID() }
func (p *Profile) SubscriptionID() string {
	return p.GetString(subscriptionID)
}

// TenantID get configured tenant.
func TenantID() string { return Default().TenantID() }
func (p *Profile) TenantID() string {
	return p.GetString(tenantID)
}

// CloudName get configured Azure cloud.
func CloudName() string { return Default().CloudName() }
func (p *Profile) CloudName() string {
	return p.GetString(cloudName)
}

// Output get configured output format.
func Output() string { return Default().Output() }
func (p *Profile) Output() string {
	return p.GetString(output)
}

// TelemetryEnabled reports whether usage events are recorded. Enabled unless
// explicitly turned off.
func TelemetryEnabled() bool { return Default().TelemetryEnabled() }
func (p *Profile) TelemetryEnabled() bool {
	switch v := p.Get(telemetryEnabled).(type) {
	case nil:
		return true
	case bool:
		return v
	case string:
		return v == "" || IsTrue(v)
	default:
		return true
	}
}

// CLIConfigHome retrieves configHome path.
func CLIConfigHome() (string, error) {
	home, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return path.Join(home, ToolName), nil
}
