package errors

import (
	"testing"
)

func TestValidateCatalogName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Spring Catalog", false},
		{"valid with dash", "spring-2026", false},
		{"valid unicode", "Catálogo de primavera", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalogName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCatalogName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGrid(t *testing.T) {
	tests := []struct {
		name    string
		cols    int
		rows    int
		padding float64
		spacing float64
		wantErr bool
	}{
		{"valid 2x2", 2, 2, 20, 10, false},
		{"valid 1x1", 1, 1, 0, 0, false},
		{"valid max", 12, 12, 4, 2, false},

		{"zero cols", 0, 2, 20, 10, true},
		{"zero rows", 2, 0, 20, 10, true},
		{"negative cols", -1, 2, 20, 10, true},
		{"too many cols", 13, 2, 20, 10, true},
		{"too many rows", 2, 13, 20, 10, true},
		{"negative padding", 2, 2, -1, 10, true},
		{"negative spacing", 2, 2, 20, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGrid(tt.cols, tt.rows, tt.padding, tt.spacing)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGrid(%d, %d, %g, %g) error = %v, wantErr %v",
					tt.cols, tt.rows, tt.padding, tt.spacing, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTemplateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "classic-grid", false},
		{"valid with digits", "grid-3x2", false},
		{"valid with underscore", "hero_page", false},

		{"empty", "", true},
		{"uppercase", "Classic", true},
		{"with path", "path/to/template", true},
		{"with dot", "grid.toml", true},
		{"with space", "classic grid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
