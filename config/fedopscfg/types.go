// Package fedopscfg defines the configuration schema (structs) for fedops.yml.
// This package is intended for YAML -> struct deserialization; loading and
// validation helpers live alongside in this package.
package fedopscfg

// Root is the root structure of fedops.yml.
type Root struct {
	Version  string   `yaml:"version"`
	Provider Provider `yaml:"provider"`
	Plan     Plan     `yaml:"plan"`
}

// Provider represents cloud provider configuration.
type Provider struct {
	Name     string            `yaml:"name"`     // provider name
	Driver   string            `yaml:"driver"`   // e.g., "azure"
	Settings map[string]string `yaml:"settings"` // driver-specific settings
}

// Plan represents the provisioning sequence.
type Plan struct {
	Name          string `yaml:"name"`
	ResourceGroup string `yaml:"resource_group"` // default resource group for all steps
	Location      string `yaml:"location"`
	Steps         []Step `yaml:"steps"`
}

// Step represents a single provisioning step. Steps execute in listed order.
type Step struct {
	Name          string            `yaml:"name"`
	Kind          string            `yaml:"kind"`                     // resource_group | vm | firewall_rule | workspace
	ResourceGroup string            `yaml:"resource_group,omitempty"` // overrides the plan default
	Location      string            `yaml:"location,omitempty"`
	Params        map[string]string `yaml:"params,omitempty"`
}
