package vault

import (
	"gopkg.in/yaml.v3"
)

// kubeconfigHeader is the part of a kubeconfig kubecm displays.
type kubeconfigHeader struct {
	CurrentContext string `yaml:"current-context"`
	Contexts       []struct {
		Name string `yaml:"name"`
	} `yaml:"contexts"`
}

// CurrentContext returns the current-context of the slot's kubeconfig and
// the number of contexts it defines. Unparseable files report no context.
func (s *Store) CurrentContext(slot string) (string, int) {
	data, err := s.ReadFile(s.SlotConfigPath(slot))
	if err != nil {
		return "", 0
	}
	var header kubeconfigHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return "", 0
	}
	return header.CurrentContext, len(header.Contexts)
}
