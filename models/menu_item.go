package models

// MenuItemCollection is the document collection holding menu items
const MenuItemCollection = "menuitem"

// MenuItem represents a purchasable canteen entry
type MenuItem struct {
	Name        string   `json:"name" bson:"name" validate:"required"`
	Category    string   `json:"category" bson:"category" validate:"required"` // e.g. Beverages, Fast Food
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Description *string  `json:"description" bson:"description"`
	ImageURL    *string  `json:"image_url" bson:"image_url"`
	IsAvailable bool     `json:"is_available" bson:"is_available"`
}

// NewMenuItem returns a MenuItem carrying the schema defaults.
// Decoding a request body into it keeps the defaults for absent fields.
func NewMenuItem() MenuItem {
	return MenuItem{IsAvailable: true}
}
