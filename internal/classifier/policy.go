package classifier

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy controls which tags count as noise and which message sources count as
// agent replies. The agent filter is toggled independently of the source list.
type Policy struct {
	SystemTags       []string `yaml:"system_tags"`
	AgentSourceTypes []string `yaml:"agent_source_types"`
	AgentSourcesOnly bool     `yaml:"agent_sources_only"`
}

func DefaultPolicy() Policy {
	return Policy{
		SystemTags:       []string{"auto-close", "spam", "ai-draft", "ai-reviewed"},
		AgentSourceTypes: []string{"agent", "email"},
		AgentSourcesOnly: false,
	}
}

// LoadPolicy overlays the YAML file at path onto base. Keys missing from the
// file keep their base values.
func LoadPolicy(path string, base Policy) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("reading classifier policy: %w", err)
	}
	return ParsePolicy(data, base)
}

func ParsePolicy(data []byte, base Policy) (Policy, error) {
	policy := base
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return Policy{}, fmt.Errorf("parsing classifier policy: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}
	return policy, nil
}

func (p Policy) Validate() error {
	if p.AgentSourcesOnly && len(p.AgentSourceTypes) == 0 {
		return fmt.Errorf("agent_sources_only requires at least one agent_source_types entry")
	}
	for _, t := range p.AgentSourceTypes {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("agent_source_types entries must not be blank")
		}
	}
	return nil
}
