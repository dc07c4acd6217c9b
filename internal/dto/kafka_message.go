package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	EventToyCreated = "toy_created"
	EventToyUpdated = "toy_updated"
	EventToyDeleted = "toy_deleted"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// ToyUpdated is the payload of a toy_updated event: the replaced fields only.
type ToyUpdated struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Price       float64            `json:"price"`
	Quantity    int64              `json:"quantity"`
	Description string             `json:"description"`
	Image       string             `json:"image1"`
}

type ToyDeleted struct {
	ID primitive.ObjectID `json:"_id"`
}
