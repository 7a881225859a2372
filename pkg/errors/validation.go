package errors

import "unicode"

// ValidateCatalogName validates a catalog display name before it reaches
// persistence. The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateCatalogName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCatalog, "catalog name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidCatalog, "catalog name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCatalog, "catalog name contains invalid control characters")
		}
	}

	return nil
}

// ValidateGrid validates a slot-grid specification before layout.
// A grid must have at least one column and one row, and its padding and
// spacing must be non-negative. Oversized grids are rejected: beyond
// 12×12 the slots degenerate below any usable size on a catalog page.
func ValidateGrid(cols, rows int, padding, spacing float64) error {
	if cols < 1 || rows < 1 {
		return New(ErrCodeInvalidTemplate, "grid must have at least 1 column and 1 row, got %dx%d", cols, rows)
	}

	const maxAxis = 12
	if cols > maxAxis || rows > maxAxis {
		return New(ErrCodeInvalidTemplate, "grid too large (max %dx%d), got %dx%d", maxAxis, maxAxis, cols, rows)
	}

	if padding < 0 {
		return New(ErrCodeInvalidTemplate, "padding must be non-negative, got %g", padding)
	}

	if spacing < 0 {
		return New(ErrCodeInvalidTemplate, "spacing must be non-negative, got %g", spacing)
	}

	return nil
}

// ValidateTemplateName validates a template identifier used for lookup in
// the template catalog. It must be a simple name, not a path.
func ValidateTemplateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTemplate, "template name cannot be empty")
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return New(ErrCodeInvalidTemplate, "template name %q may only contain lowercase letters, digits, '-' and '_'", name)
		}
	}

	return nil
}
