package market

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Instrument is a static catalog entry. The catalog is read-only configuration
// loaded once at startup and never mutated at runtime.
type Instrument struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	Exchange string `yaml:"exchange" json:"exchange"`
	Name     string `yaml:"name" json:"name"`
	Sector   string `yaml:"sector,omitempty" json:"sector,omitempty"`
}

// Key returns the batched-lookup key for this instrument.
func (i Instrument) Key() string {
	return i.Exchange + "_" + i.Symbol
}

// Catalog holds the curated instrument lists served without upstream calls.
type Catalog struct {
	PopularStocks []Instrument `yaml:"popular_stocks"`
	MajorIndices  []Instrument `yaml:"major_indices"`
}

// LoadCatalog parses the embedded instrument catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("failed to parse instrument catalog: %w", err)
	}
	if len(c.PopularStocks) == 0 || len(c.MajorIndices) == 0 {
		return nil, fmt.Errorf("instrument catalog is incomplete")
	}
	return &c, nil
}

// Keys returns the batched-lookup keys for a list of instruments.
func Keys(instruments []Instrument) []string {
	keys := make([]string, 0, len(instruments))
	for _, inst := range instruments {
		keys = append(keys, inst.Key())
	}
	return keys
}

// Sectors returns the distinct sectors present in the stock catalog, sorted.
func (c *Catalog) Sectors() []string {
	seen := make(map[string]struct{})
	for _, inst := range c.PopularStocks {
		if inst.Sector != "" {
			seen[inst.Sector] = struct{}{}
		}
	}

	sectors := make([]string, 0, len(seen))
	for sector := range seen {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)
	return sectors
}

// Search finds catalog stocks whose symbol or name contains the query,
// optionally restricted to one sector. Queries shorter than two characters
// match nothing, mirroring the front-end contract.
func (c *Catalog) Search(query, sector string) []Instrument {
	results := []Instrument{}
	query = strings.ToUpper(strings.TrimSpace(query))
	if len(query) < 2 {
		return results
	}

	for _, inst := range c.PopularStocks {
		if sector != "" && !strings.EqualFold(inst.Sector, sector) {
			continue
		}
		if strings.Contains(inst.Symbol, query) || strings.Contains(strings.ToUpper(inst.Name), query) {
			results = append(results, inst)
		}
	}
	return results
}

// FilterBySector returns catalog stocks in the given sector.
func (c *Catalog) FilterBySector(sector string) []Instrument {
	results := []Instrument{}
	for _, inst := range c.PopularStocks {
		if strings.EqualFold(inst.Sector, sector) {
			results = append(results, inst)
		}
	}
	return results
}
