package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

// CruftConfig is the content of a .cruft.json file.
type CruftConfig struct {
	Template  string         `json:"template"`
	Commit    string         `json:"commit"`
	Checkout  string         `json:"checkout,omitempty"`
	Context   map[string]any `json:"context"`
	Directory string         `json:"directory,omitempty"`
}

func ParseCruftConfig(data []byte) (*CruftConfig, error) {
	var cfg CruftConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidCruftConfig, "failed to decode .cruft.json",
			goerr.V("error", err.Error()),
		)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (x *CruftConfig) Validate() error {
	if x.Template == "" {
		return goerr.Wrap(types.ErrInvalidCruftConfig, "template is empty")
	}
	if x.Commit == "" {
		return goerr.Wrap(types.ErrInvalidCruftConfig, "commit is empty")
	}
	return nil
}

// TemplateBranch returns the template branch the project tracks.
func (x *CruftConfig) TemplateBranch() types.BranchName {
	if x.Checkout == "" {
		return types.DefaultTemplateBranch
	}
	return types.BranchName(x.Checkout)
}

// Maintainer looks up the given cookiecutter variables in order and returns the first string
// value found. An empty string means the project has no maintainer.
func (x *CruftConfig) Maintainer(fields []types.MaintainerField) string {
	cookiecutter, ok := x.Context["cookiecutter"].(map[string]any)
	if !ok {
		return ""
	}

	for _, field := range fields {
		if v, ok := cookiecutter[string(field)].(string); ok {
			return v
		}
	}
	return ""
}
