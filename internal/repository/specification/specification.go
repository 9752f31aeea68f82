package specification

import "gorm.io/gorm"

// Specification is a composable query predicate applied by the repositories.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
