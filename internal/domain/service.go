package domain

// Category groups catalog entries for display.
type Category string

const (
	CategoryPremiumWash    Category = "Premium Wash"
	CategoryMonthlyPackage Category = "Monthly Package"
	CategoryAnnualPackage  Category = "Annual Package"
	CategoryCustomService  Category = "Custom Service"
)

// ServiceDefinition is one bookable entry of the catalog. Prices are in AED.
type ServiceDefinition struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Duration string   `json:"duration"`
	Category Category `json:"category"`
	Features []string `json:"features"`
	Savings  *float64 `json:"savings,omitempty"`
}

// BusinessInfo is the static business metadata shown on the site and in emails.
type BusinessInfo struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	Customers  string `json:"customers"`
	Rating     string `json:"rating"`
	Coverage   string `json:"coverage"`
	Hours      string `json:"hours"`
}
