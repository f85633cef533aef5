package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pizzaa/pizza-store/internal/models"
)

// seedEntry carries the descriptive fields of a pizza in the YAML seed file;
// ids are assigned on load in file order.
type seedEntry struct {
	Name     string   `yaml:"name"`
	Size     string   `yaml:"size"`
	Price    float64  `yaml:"price"`
	Toppings []string `yaml:"toppings"`
}

// LoadSeedFile reads a YAML list of pizzas used to initialize an empty store
// at startup. Entries are validated with the same rules as the add endpoint.
func LoadSeedFile(path string) (models.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	m := make(models.Menu, 0, len(entries))
	for _, e := range entries {
		p := models.Pizza{
			Name:     e.Name,
			Size:     e.Size,
			Price:    e.Price,
			Toppings: e.Toppings,
		}
		if p.Toppings == nil {
			p.Toppings = []string{}
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %q: %w", e.Name, err)
		}
		m, _ = Add(m, p)
	}
	return m, nil
}
