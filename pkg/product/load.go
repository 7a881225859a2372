package product

import (
	"os"

	"github.com/BurntSushi/toml"

	"foliopress/pkg/errors"
)

// productFile is the on-disk TOML shape: a list of [[product]] tables.
type productFile struct {
	Products []Product `toml:"product"`
}

// LoadTOML reads a product list from a TOML file into a collection.
func LoadTOML(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read products %s", path)
	}

	var f productFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse products %s", path)
	}

	for i, p := range f.Products {
		if p.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "product %d in %s has no name", i+1, path)
		}
	}
	return NewCollection(f.Products...), nil
}
