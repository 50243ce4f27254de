package models

// StoreSettings holds the storefront content sections. Hero and Theme are
// free-form documents edited by the admin UI; the API merges them section by
// section without schema validation.
type StoreSettings struct {
	Hero  map[string]interface{} `json:"hero" bson:"hero"`
	Theme map[string]interface{} `json:"theme" bson:"theme"`
}

// PaymentSettings configures which payment methods checkout offers and their
// display details. These are inert configuration records; no gateway is
// called.
type PaymentSettings struct {
	Paypal PaypalConfig `json:"paypal" bson:"paypal"`
	Stripe StripeConfig `json:"stripe" bson:"stripe"`
	COD    CODConfig    `json:"cod" bson:"cod"`
	Bank   BankConfig   `json:"bank" bson:"bank"`
}

type PaypalConfig struct {
	Enabled  bool   `json:"enabled" bson:"enabled"`
	ClientID string `json:"clientId,omitempty" bson:"client_id,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
}

type StripeConfig struct {
	Enabled        bool   `json:"enabled" bson:"enabled"`
	PublishableKey string `json:"publishableKey,omitempty" bson:"publishable_key,omitempty"`
	SecretKey      string `json:"secretKey,omitempty" bson:"secret_key,omitempty"`
}

type CODConfig struct {
	Enabled bool   `json:"enabled" bson:"enabled"`
	Note    string `json:"note,omitempty" bson:"note,omitempty"`
}

type BankConfig struct {
	Enabled      bool   `json:"enabled" bson:"enabled"`
	AccountName  string `json:"accountName,omitempty" bson:"account_name,omitempty"`
	IBAN         string `json:"iban,omitempty" bson:"iban,omitempty"`
	Instructions string `json:"instructions,omitempty" bson:"instructions,omitempty"`
}

// PaymentMethods checkout accepts. Matches the methods the settings above
// can enable.
const (
	PaymentMethodPaypal = "paypal"
	PaymentMethodCard   = "card"
	PaymentMethodCOD    = "cod"
	PaymentMethodBank   = "bank"
)
