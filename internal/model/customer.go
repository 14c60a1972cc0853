package model

import "time"

// ShopType classifies customer shop
type ShopType string

const (
	// ShopTypeGrowshop is a growshop
	ShopTypeGrowshop ShopType = "growshop"
	// ShopTypeGardenCenter is a garden center
	ShopTypeGardenCenter ShopType = "garden_center"
	// ShopTypeNursery is a nursery
	ShopTypeNursery ShopType = "nursery"
	// ShopTypeHydroponicsStore is a hydroponics store
	ShopTypeHydroponicsStore ShopType = "hydroponics_store"
	// ShopTypeOther is any other kind of shop
	ShopTypeOther ShopType = "other"
)

// CustomerStatusActive marks customer as visible for reps
const CustomerStatusActive = "active"

// CustomerStatusInactive hides customer from reps
const CustomerStatusInactive = "inactive"

// Customer is a physical shop record visited by sales representatives
type Customer struct {
	ID            string    `json:"id"`
	ShopName      string    `json:"shop_name"`
	ShopType      ShopType  `json:"shop_type"`
	ShopAddress   *string   `json:"shop_address"`
	Zipcode       *string   `json:"zipcode"`
	City          *string   `json:"city"`
	County        *string   `json:"county"`
	Region        *string   `json:"region"`
	ContactPerson *string   `json:"contact_person"`
	ContactPhone  *string   `json:"contact_phone"`
	ContactEmail  *string   `json:"contact_email"`
	JobTitle      *string   `json:"job_title"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
