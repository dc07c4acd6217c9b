package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Toy struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    Quantity           `bson:"quantity" json:"quantity"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image1" json:"image1"`
	SellerUID   string             `bson:"sellerUid" json:"sellerUid"`
}
