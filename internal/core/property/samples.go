package property

import "time"

// Samples returns the built-in records installed when no snapshot can be
// restored.
func Samples() []Property {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}
	return []Property{
		{
			ID:          "1",
			Name:        "Modern Downtown Apartment",
			Type:        TypeApartment,
			Price:       350000,
			Location:    "New York, NY",
			Description: "Beautiful modern apartment in the heart of downtown with stunning city views and premium amenities.",
			CreatedAt:   day(2024, time.January, 15),
			UpdatedAt:   day(2024, time.January, 15),
		},
		{
			ID:          "2",
			Name:        "Suburban Family House",
			Type:        TypeHouse,
			Price:       750000,
			Location:    "Los Angeles, CA",
			Description: "Spacious 4-bedroom family home with large backyard, perfect for families with children.",
			CreatedAt:   day(2024, time.January, 10),
			UpdatedAt:   day(2024, time.January, 10),
		},
		{
			ID:          "3",
			Name:        "Luxury Waterfront Condo",
			Type:        TypeCondo,
			Price:       1200000,
			Location:    "Miami, FL",
			Description: "Exclusive waterfront condominium with panoramic ocean views and world-class amenities.",
			CreatedAt:   day(2024, time.January, 5),
			UpdatedAt:   day(2024, time.January, 5),
		},
	}
}
