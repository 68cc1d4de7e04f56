package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ytget/font-sync/internal/model"
)

// Source kinds
const (
	SourceBuiltin = ""
	HTTPPrefix    = "http://"
	HTTPSPrefix   = "https://"
)

// DefaultMetadataURL is the public Google Fonts family metadata endpoint
const DefaultMetadataURL = "https://fonts.google.com/metadata/fonts"

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in catalog
func Default() []model.FontFamily {
	families, err := decodeYAML(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is malformed: %v", err))
	}
	return families
}

// Load resolves source into a catalog: the built-in catalog for an empty
// source, the metadata endpoint for http(s) URLs, and a local file otherwise.
func Load(ctx context.Context, client *http.Client, source string) ([]model.FontFamily, error) {
	switch {
	case strings.TrimSpace(source) == SourceBuiltin:
		return Default(), nil
	case strings.HasPrefix(source, HTTPPrefix), strings.HasPrefix(source, HTTPSPrefix):
		return Fetch(ctx, client, source)
	default:
		return LoadFile(source)
	}
}

// LoadFile reads a catalog file. Files ending in .json are decoded as JSON,
// everything else as YAML.
func LoadFile(path string) ([]model.FontFamily, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var families []model.FontFamily
	if strings.EqualFold(filepath.Ext(path), ".json") {
		families, err = decodeJSON(data)
	} else {
		families, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return families, nil
}

func decodeYAML(data []byte) ([]model.FontFamily, error) {
	var families []model.FontFamily
	if err := yaml.Unmarshal(data, &families); err != nil {
		return nil, err
	}
	return normalize(families)
}

func decodeJSON(data []byte) ([]model.FontFamily, error) {
	var families []model.FontFamily
	if err := json.Unmarshal(data, &families); err != nil {
		return nil, err
	}
	return normalize(families)
}

// normalize maps category display names to ids and rejects unnamed records
func normalize(families []model.FontFamily) ([]model.FontFamily, error) {
	for i := range families {
		f := &families[i]
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return nil, fmt.Errorf("record %d has no family name", i)
		}
		f.Category = normalizeCategory(string(f.Category))
	}
	return families, nil
}

func normalizeCategory(name string) model.Category {
	return model.Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-"))
}

// xssiPrefix guards the Google Fonts metadata response
var xssiPrefix = []byte(")]}'")

// metadataResponse mirrors the subset of the metadata document we read
type metadataResponse struct {
	FamilyMetadataList []familyMetadata `json:"familyMetadataList"`
}

type familyMetadata struct {
	Family   string                   `json:"family"`
	Category string                   `json:"category"`
	Subsets  []string                 `json:"subsets"`
	Fonts    map[string]styleMetadata `json:"fonts"`
	styleMetadata
}

type styleMetadata struct {
	Thickness *float64 `json:"thickness"`
	Slant     *float64 `json:"slant"`
	Width     *float64 `json:"width"`
}

// regularStyle is the style key whose metrics describe the family
const regularStyle = "400"

// Fetch downloads and parses the Google Fonts metadata document
func Fetch(ctx context.Context, client *http.Client, url string) ([]model.FontFamily, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch catalog: unexpected status %s", resp.Status)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseMetadata(buf.Bytes())
}

// ParseMetadata decodes a Google Fonts metadata document. Thickness, slant
// and width come from the family itself when present, otherwise from its
// regular style.
func ParseMetadata(data []byte) ([]model.FontFamily, error) {
	data = bytes.TrimPrefix(bytes.TrimSpace(data), xssiPrefix)

	var doc metadataResponse
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog metadata: %w", err)
	}

	families := make([]model.FontFamily, 0, len(doc.FamilyMetadataList))
	for _, m := range doc.FamilyMetadataList {
		metrics := m.styleMetadata
		if regular, ok := m.Fonts[regularStyle]; ok {
			metrics = mergeMetrics(metrics, regular)
		}

		families = append(families, model.FontFamily{
			Name:       m.Family,
			Category:   normalizeCategory(m.Category),
			Subsets:    m.Subsets,
			StyleCount: len(m.Fonts),
			Thickness:  scaleValue(metrics.Thickness),
			Slant:      scaleValue(metrics.Slant),
			Width:      scaleValue(metrics.Width),
		})
	}
	return normalize(families)
}

func mergeMetrics(family, style styleMetadata) styleMetadata {
	if family.Thickness == nil {
		family.Thickness = style.Thickness
	}
	if family.Slant == nil {
		family.Slant = style.Slant
	}
	if family.Width == nil {
		family.Width = style.Width
	}
	return family
}

// scaleValue rounds a metric onto the 1-10 scale; missing values become 0
func scaleValue(v *float64) int {
	if v == nil {
		return 0
	}
	n := int(*v + 0.5)
	if n < model.MinAttribute {
		return 0
	}
	if n > model.MaxAttribute {
		return model.MaxAttribute
	}
	return n
}
