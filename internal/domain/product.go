package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Size struct {
	Size     string `bson:"size" json:"size"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Sizes []Size             `bson:"sizes" json:"sizes"`
}

// ProductFilter narrows a product listing. Empty fields match everything.
type ProductFilter struct {
	Name string
	Size string
}
