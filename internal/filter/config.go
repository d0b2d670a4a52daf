package filter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configFile is the YAML shape of a policy file. Omitted lists inherit the
// defaults; set a list to an explicit empty array to disable the rule.
type configFile struct {
	SpecialBases      []string `yaml:"special_bases"`
	SpecialInterfaces []string `yaml:"special_interfaces"`
	FrameworkPrefixes []string `yaml:"framework_prefixes"`
}

// LoadFile loads and parses a YAML policy file from the given path.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Policy, filling omitted fields from
// DefaultPolicy.
func Parse(data []byte) (*Policy, error) {
	var cf configFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}

	policy := DefaultPolicy()

	if cf.SpecialBases != nil {
		policy.SpecialBases = cf.SpecialBases
	}

	if cf.SpecialInterfaces != nil {
		policy.SpecialInterfaces = cf.SpecialInterfaces
	}

	if cf.FrameworkPrefixes != nil {
		policy.FrameworkPrefixes = cf.FrameworkPrefixes
	}

	return policy, nil
}
