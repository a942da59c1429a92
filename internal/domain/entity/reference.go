package entity

import "github.com/google/uuid"

// Region is a catalog reference grouping cuisines geographically.
type Region struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// Ingredient is a catalog reference describing a single ingredient. Only
// active ingredients are exposed to clients.
type Ingredient struct {
	ID       uuid.UUID
	Name     string
	Category string
	IsActive bool
}

// ReferenceItem is a simple named catalog entry. Health conditions,
// allergies, dietary preferences and fitness goals all share this shape.
type ReferenceItem struct {
	ID          uuid.UUID
	Name        string
	Description string
}
