package catalog

import "github.com/macmobile/carwash/internal/domain"

func savings(v float64) *float64 { return &v }

// Default returns the catalog the business currently sells.
func Default() *Catalog {
	return New([]Group{
		{
			Key:  "premium_wash",
			Name: "Premium Wash",
			Services: []domain.ServiceDefinition{
				{
					Code: "silver", Name: "Silver Shine", Price: 65, Duration: "45 mins",
					Category: domain.CategoryPremiumWash,
					Features: []string{
						"Professional exterior wash",
						"Premium foam treatment",
						"Tire cleaning & shine",
						"Window cleaning",
						"Basic interior vacuum",
					},
				},
				{
					Code: "gold", Name: "Gold Wash", Price: 75, Duration: "60 mins",
					Category: domain.CategoryPremiumWash,
					Features: []string{
						"Complete exterior and interior cleaning",
						"Dashboard conditioning",
						"Tire cleaning & shine",
						"Window cleaning inside & out",
						"Vacuum cleaning",
					},
				},
				{
					Code: "platinum", Name: "Platinum Elite", Price: 135, Duration: "90 mins",
					Category: domain.CategoryPremiumWash,
					Features: []string{
						"Complete premium service",
						"Ceramic coating application",
						"Paint protection",
						"Headlight restoration",
						"Undercarriage wash",
						"Premium wax finish",
					},
				},
			},
		},
		{
			Key:  "monthly_packages",
			Name: "Monthly Packages",
			Services: []domain.ServiceDefinition{
				{
					Code: "green-monthly", Name: "Green Package", Price: 180, Duration: "4 washes",
					Category: domain.CategoryMonthlyPackage, Savings: savings(40),
					Features: []string{
						"Regular monthly car wash service",
						"4 washes per month",
						"Basic exterior cleaning",
						"Interior vacuum",
					},
				},
				{
					Code: "blue-monthly", Name: "Blue Package", Price: 240, Duration: "4 washes",
					Category: domain.CategoryMonthlyPackage, Savings: savings(60),
					Features: []string{
						"Premium monthly car wash with detailing",
						"4 washes per month",
						"Complete exterior & interior",
						"Dashboard conditioning",
						"Tire shine",
					},
				},
				{
					Code: "premium-monthly", Name: "Premium Monthly", Price: 320, Duration: "4 washes",
					Category: domain.CategoryMonthlyPackage, Savings: savings(60),
					Features: []string{
						"Premium monthly service",
						"4 washes per month",
						"Complete detailing",
						"Leather treatment",
						"Engine bay cleaning",
					},
				},
			},
		},
		{
			Key:  "yearly_packages",
			Name: "Annual Packages",
			Services: []domain.ServiceDefinition{
				{
					Code: "eco-annual", Name: "Eco Annual Plan", Price: 2200, Duration: "48 washes",
					Category: domain.CategoryAnnualPackage, Savings: savings(920),
					Features: []string{
						"48 washes per year",
						"30% discount",
						"Silver Shine service",
						"Priority booking",
					},
				},
				{
					Code: "premium-annual", Name: "Premium Annual Plan", Price: 3200, Duration: "48 washes",
					Category: domain.CategoryAnnualPackage, Savings: savings(1360),
					Features: []string{
						"48 washes per year",
						"30% discount",
						"Gold Luxury service",
						"Priority booking",
						"Free upgrades",
					},
				},
			},
		},
	})
}
