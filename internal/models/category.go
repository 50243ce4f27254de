package models

// StoreCategory is a curated collection shown on the storefront. The admin
// replaces the full list in one write; Order controls display position.
type StoreCategory struct {
	ID            string   `json:"id" bson:"_id"`
	NameAr        string   `json:"nameAr" bson:"name_ar"`
	NameEn        string   `json:"nameEn" bson:"name_en"`
	DescriptionAr string   `json:"descriptionAr,omitempty" bson:"description_ar,omitempty"`
	DescriptionEn string   `json:"descriptionEn,omitempty" bson:"description_en,omitempty"`
	Image         string   `json:"image" bson:"image"`
	ProductIDs    []string `json:"productIds" bson:"product_ids"`
	Order         int      `json:"order" bson:"order"`
}
