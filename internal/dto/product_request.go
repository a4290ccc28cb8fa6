package dto

type SizeRequest struct {
	Size     string `json:"size" validate:"required,notblank"`
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
}

type ProductRequest struct {
	Name  string        `json:"name" validate:"required,notblank"`
	Price *float64      `json:"price" validate:"required,gte=0"`
	Sizes []SizeRequest `json:"sizes" validate:"required,unique=Size,dive"`
}
