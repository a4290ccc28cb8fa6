package dto

type OrderItem struct {
	ProductID string `json:"productId" validate:"required,mongodb"`
	Qty       int    `json:"qty" validate:"gt=0"`
}

type OrderRequest struct {
	UserID string      `json:"userId" validate:"required,notblank"`
	Items  []OrderItem `json:"items" validate:"required,min=1,dive"`
}
