package domain

// CategoryIcon is a closed set of icon identifiers. Icons are dispatched
// through an explicit lookup table with a defined fallback, never through
// free-form string keys.
type CategoryIcon string

const (
	IconFood          CategoryIcon = "FOOD"
	IconTransport     CategoryIcon = "TRANSPORT"
	IconShopping      CategoryIcon = "SHOPPING"
	IconBills         CategoryIcon = "BILLS"
	IconHealth        CategoryIcon = "HEALTH"
	IconEntertainment CategoryIcon = "ENTERTAINMENT"
	IconSalary        CategoryIcon = "SALARY"
	IconOther         CategoryIcon = "OTHER"
)

var iconLabels = map[CategoryIcon]string{
	IconFood:          "Food & Drink",
	IconTransport:     "Transport",
	IconShopping:      "Shopping",
	IconBills:         "Bills & Utilities",
	IconHealth:        "Health",
	IconEntertainment: "Entertainment",
	IconSalary:        "Salary",
	IconOther:         "Other",
}

// Label returns the display label for the icon, falling back to the label of
// IconOther for any unknown variant.
func (i CategoryIcon) Label() string {
	if label, ok := iconLabels[i]; ok {
		return label
	}
	return iconLabels[IconOther]
}

// Valid reports whether the icon is one of the known variants.
func (i CategoryIcon) Valid() bool {
	_, ok := iconLabels[i]
	return ok
}

// Category groups transactions for budgeting and reporting.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	Name       string       `json:"name"`
	Icon       CategoryIcon `json:"icon"`
	AuditFields
}

// FallbackCategoryName is rendered when a transaction references a category
// that no longer exists. Deleting a category does not cascade.
const FallbackCategoryName = "Unclassified"
