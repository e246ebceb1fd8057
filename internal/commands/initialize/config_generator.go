package initialize

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/tagfind/internal/config"
	"github.com/indaco/tagfind/internal/tui"
)

var configHeader = `# tagfind configuration file
#
# manifest:         per-directory taglib manifest name
# components-dir:   conventional tags directory checked in every ancestor
# exclude-dirs:     directories skipped during the walk (relative to this file)
# exclude-packages: dependencies whose taglibs are never loaded
# log-level:        debug, info, warn or error
# theme:            prompt theme (` + strings.Join(tui.ThemeNames(), ", ") + `)
`

// GenerateConfigWithComments renders cfg as YAML preceded by a header
// describing every field.
func GenerateConfigWithComments(cfg *config.Config) ([]byte, error) {
	body, err := yaml.MarshalWithOptions(cfg, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(configHeader)
	sb.WriteString("\n")
	sb.Write(body)
	return []byte(sb.String()), nil
}

// commentedMarshaler plugs GenerateConfigWithComments into config.ConfigSaver.
type commentedMarshaler struct{}

func (m *commentedMarshaler) Marshal(v any) ([]byte, error) {
	cfg, ok := v.(*config.Config)
	if !ok {
		return nil, fmt.Errorf("unexpected config type %T", v)
	}
	return GenerateConfigWithComments(cfg)
}
