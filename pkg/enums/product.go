package enums

import "fmt"

// ProductCategory represents the canonical produce categories in the catalog.
type ProductCategory string

const (
	ProductCategoryVegetable ProductCategory = "vegetable"
	ProductCategoryLeafy     ProductCategory = "leafy"
	ProductCategoryFruit     ProductCategory = "fruit"
	ProductCategoryExotic    ProductCategory = "exotic"
	ProductCategoryHerb      ProductCategory = "herb"
	ProductCategoryStaple    ProductCategory = "staple"
)

var validProductCategories = []ProductCategory{
	ProductCategoryVegetable,
	ProductCategoryLeafy,
	ProductCategoryFruit,
	ProductCategoryExotic,
	ProductCategoryHerb,
	ProductCategoryStaple,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductUnit defines the unit a product is priced by.
type ProductUnit string

const (
	ProductUnitKg    ProductUnit = "kg"
	ProductUnitGram  ProductUnit = "gram"
	ProductUnitPiece ProductUnit = "piece"
	ProductUnitBunch ProductUnit = "bunch"
	ProductUnitDozen ProductUnit = "dozen"
	ProductUnitPack  ProductUnit = "pack"
)

var validProductUnits = []ProductUnit{
	ProductUnitKg,
	ProductUnitGram,
	ProductUnitPiece,
	ProductUnitBunch,
	ProductUnitDozen,
	ProductUnitPack,
}

// String implements fmt.Stringer.
func (u ProductUnit) String() string {
	return string(u)
}

// IsValid reports whether the value matches a known ProductUnit.
func (u ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseProductUnit converts raw input into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}
