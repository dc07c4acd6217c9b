package dto

// ToyRequest is the payload of a toy submission.
type ToyRequest struct {
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Price       *Price    `json:"price" validate:"required,gte=0"`
	Quantity    *Quantity `json:"quantity" validate:"required,gte=0"`
	Description string    `json:"description"`
	Image       string    `json:"image1"`
	SellerUID   string    `json:"sellerUid" validate:"required"`
}

// ToyPutRequest carries the full replacement field set of a toy. Every field
// must be present; image1 and description may be empty strings.
type ToyPutRequest struct {
	ID          string    `param:"toyId" json:"-"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Price       *Price    `json:"price" validate:"required,gte=0"`
	Quantity    *Quantity `json:"quantity" validate:"required,gte=0"`
	Description *string   `json:"description" validate:"required"`
	Image       *string   `json:"image1" validate:"required"`
}
