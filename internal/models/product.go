package models

type Product struct {
	ID          string   `json:"id" bson:"_id"`
	Name        string   `json:"name" bson:"name" validate:"required"`
	Slug        string   `json:"slug" bson:"slug"`
	Category    string   `json:"category" bson:"category" validate:"required"`
	Price       float64  `json:"price" bson:"price" validate:"gte=0"`
	Currency    string   `json:"currency" bson:"currency"`
	Description string   `json:"description" bson:"description"`
	Images      []string `json:"images" bson:"images"`
	Featured    bool     `json:"featured" bson:"featured"`
	Stock       int      `json:"stock" bson:"stock"`
}
