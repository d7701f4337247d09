// Package catalog reads seed catalogs: YAML files listing products to upload
// in bulk.
//
//	products:
//	  - name: Slim Fit Shirt
//	    brand: Acme
//	    price: 799.5
//	    ...
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"storefront/internal/model"
	"storefront/internal/validation"

	"gopkg.in/yaml.v3"
)

var ErrEmptyCatalog = errors.New("catalog has no products")

// Parse decodes a catalog and checks every entry against the upload rules.
// Nothing is returned unless every entry is valid.
func Parse(r io.Reader, v *validation.Validator) ([]model.CreateProductRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var loose struct {
		Products []map[string]any `yaml:"products"`
	}
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(loose.Products) == 0 {
		return nil, ErrEmptyCatalog
	}

	var problems []string
	for i, entry := range loose.Products {
		for _, violation := range v.Validate(entry, validation.ProductRules) {
			problems = append(problems, fmt.Sprintf("product %d: %s", i+1, violation.Message))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid catalog:\n  %s", strings.Join(problems, "\n  "))
	}

	// Entries go through the same JSON decoding as uploads, so quoted numbers
	// such as price: "999" are accepted in both places.
	products := make([]model.CreateProductRequest, 0, len(loose.Products))
	for i, entry := range loose.Products {
		b, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
		var req model.CreateProductRequest
		if err := json.Unmarshal(b, &req); err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
		products = append(products, req)
	}
	return products, nil
}

// LoadFile parses the catalog at path
func LoadFile(path string, v *validation.Validator) ([]model.CreateProductRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f, v)
}
