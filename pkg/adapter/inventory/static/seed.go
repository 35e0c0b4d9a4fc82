package static

import "github.com/momeni/autorent/pkg/core/model"

const unsplash = "https://images.unsplash.com/"

// Seed returns a fresh copy of the default catalog. It is served by
// the static inventory source and is inserted by the `db init` command.
func Seed() []model.Vehicle {
	return []model.Vehicle{
		{
			ID:           "1",
			Brand:        "Toyota",
			Model:        "Camry",
			Year:         2023,
			Seats:        5,
			Transmission: model.TransmissionAutomatic,
			FuelType:     model.FuelTypePetrol,
			PricePerDay:  1500,
			Available:    true,
			ImageURL:     unsplash + "photo-1621007947382-bb3c3994e3fb",
			AdditionalImages: []string{
				unsplash + "photo-1614200179396-2bdb77ebf81b",
				unsplash + "photo-1618843479313-40f8afb4b4d8",
				unsplash + "photo-1542282088-72c9c27ed0cd",
			},
			Features: []string{
				"Climate control", "Leather interior", "Navigation",
				"Parking sensors",
			},
			Rating:      4.8,
			Description: "Reliable and comfortable sedan for business and leisure.",
		},
		{
			ID:           "2",
			Brand:        "BMW",
			Model:        "X5",
			Year:         2022,
			Seats:        5,
			Transmission: model.TransmissionAutomatic,
			FuelType:     model.FuelTypeDiesel,
			PricePerDay:  3200,
			Available:    true,
			ImageURL:     unsplash + "photo-1556189250-72ba954cfc2b",
			AdditionalImages: []string{
				unsplash + "photo-1556189258-0d8b1e0a2c97",
				unsplash + "photo-1635241610248-ef944c0e9fe3",
				unsplash + "photo-1580273916550-e323be2ae537",
			},
			Features: []string{
				"Panoramic roof", "Heated seats", "Adaptive cruise control",
				"Premium audio",
			},
			Rating:      4.9,
			Description: "Sporty premium crossover with a powerful engine.",
		},
		{
			ID:           "3",
			Brand:        "Volkswagen",
			Model:        "Golf",
			Year:         2021,
			Seats:        5,
			Transmission: model.TransmissionManual,
			FuelType:     model.FuelTypePetrol,
			PricePerDay:  1200,
			Available:    true,
			ImageURL:     unsplash + "photo-1541899481282-d53bffe3c35d",
			AdditionalImages: []string{
				unsplash + "photo-1596563950733-e7ecb5dfce4a",
				unsplash + "photo-1556155092-490a1ba16284",
				unsplash + "photo-1635409921234-a0e70e39f2bb",
			},
			Features: []string{
				"Air conditioning", "Bluetooth", "LED headlights",
				"Rear parking sensors",
			},
			Rating:      4.5,
			Description: "Compact and agile hatchback with low fuel consumption.",
		},
		{
			ID:           "4",
			Brand:        "Tesla",
			Model:        "Model 3",
			Year:         2023,
			Seats:        5,
			Transmission: model.TransmissionAutomatic,
			FuelType:     model.FuelTypeElectric,
			PricePerDay:  2800,
			Available:    true,
			ImageURL:     unsplash + "photo-1560958089-b8a1929cea89",
			AdditionalImages: []string{
				unsplash + "photo-1554744512-d6c603f27c54",
				unsplash + "photo-1594502184342-2e111aafd46f",
				unsplash + "photo-1532974297617-c0f05fe48bff",
			},
			Features: []string{
				"Autopilot", "Panoramic roof", "Touchscreen display",
				"Fast charging",
			},
			Rating:      4.9,
			Description: "Electric sedan with a long range.",
		},
		{
			ID:           "5",
			Brand:        "Mercedes-Benz",
			Model:        "E-Class",
			Year:         2022,
			Seats:        5,
			Transmission: model.TransmissionAutomatic,
			FuelType:     model.FuelTypeHybrid,
			PricePerDay:  3000,
			Available:    false,
			ImageURL:     unsplash + "photo-1549399542-7e3f8b79c341",
			AdditionalImages: []string{
				unsplash + "photo-1618843479313-40f8afb4b4d8",
				unsplash + "photo-1542362567-b07e54358753",
				unsplash + "photo-1603584173870-7f23fdae1b7a",
			},
			Features: []string{
				"Massage seats", "Premium audio", "Adaptive suspension",
				"Head-up display",
			},
			Rating:      4.7,
			Description: "Executive sedan with a luxurious interior.",
		},
	}
}
