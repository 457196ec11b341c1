// Package brokers holds the embedded catalog of compared brokers.
package brokers

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/optionsbroker/vergleich/internal/services/site/platform/errors"
	"gopkg.in/yaml.v3"
)

//go:embed brokers.yaml
var embeddedCatalog []byte

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Broker is one compared broker.
type Broker struct {
	Slug      string              `yaml:"slug"`
	Name      string              `yaml:"name"`
	Website   string              `yaml:"website"`
	Regulator string              `yaml:"regulator"`
	Country   string              `yaml:"country"`
	Featured  bool                `yaml:"featured"`
	Partner   bool                `yaml:"partner"`
	Markets   []string            `yaml:"markets"`
	Features  map[string][]string `yaml:"features"`
}

// FeaturesFor returns the highlights for locale, falling back to English.
func (b Broker) FeaturesFor(locale string) []string {
	if features, ok := b.Features[locale]; ok && len(features) > 0 {
		return features
	}
	return b.Features["en"]
}

// MarketsLabel joins the supported options markets for display.
func (b Broker) MarketsLabel() string {
	return strings.Join(b.Markets, ", ")
}

// Catalog is an ordered, read-only set of brokers.
type Catalog struct {
	brokers []Broker
	bySlug  map[string]int
}

type catalogFile struct {
	Brokers []Broker `yaml:"brokers"`
}

// Load parses a YAML broker catalog.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse broker catalog: %w", err)
	}
	if len(file.Brokers) == 0 {
		return nil, fmt.Errorf("broker catalog is empty")
	}
	catalog := &Catalog{bySlug: make(map[string]int, len(file.Brokers))}
	for i, broker := range file.Brokers {
		broker.Slug = strings.TrimSpace(broker.Slug)
		broker.Name = strings.TrimSpace(broker.Name)
		broker.Website = strings.TrimSpace(broker.Website)
		if !slugPattern.MatchString(broker.Slug) {
			return nil, fmt.Errorf("broker %d: invalid slug %q", i, broker.Slug)
		}
		if broker.Name == "" {
			return nil, fmt.Errorf("broker %s: name is required", broker.Slug)
		}
		if !strings.HasPrefix(broker.Website, "https://") {
			return nil, fmt.Errorf("broker %s: website must be an https URL", broker.Slug)
		}
		if _, exists := catalog.bySlug[broker.Slug]; exists {
			return nil, fmt.Errorf("broker %s: duplicate slug", broker.Slug)
		}
		catalog.bySlug[broker.Slug] = len(catalog.brokers)
		catalog.brokers = append(catalog.brokers, broker)
	}
	return catalog, nil
}

// LoadEmbedded parses the broker catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Load(embeddedCatalog)
}

// All returns every broker in catalog order.
func (c *Catalog) All() []Broker {
	if c == nil {
		return nil
	}
	out := make([]Broker, len(c.brokers))
	copy(out, c.brokers)
	return out
}

// Featured returns the brokers promoted on the home page.
func (c *Catalog) Featured() []Broker {
	var out []Broker
	for _, broker := range c.All() {
		if broker.Featured {
			out = append(out, broker)
		}
	}
	return out
}

// BySlug returns the broker for slug or a not-found error.
func (c *Catalog) BySlug(slug string) (Broker, error) {
	if c != nil {
		if idx, ok := c.bySlug[strings.TrimSpace(slug)]; ok {
			return c.brokers[idx], nil
		}
	}
	return Broker{}, apperrors.EK(apperrors.KindNotFound, "errors.broker.not_found", fmt.Sprintf("broker %q not found", slug))
}
