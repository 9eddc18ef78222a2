package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-formatter/models"
	"property-formatter/vocab"
)

func extract(lines ...string) *models.PropertyRecord {
	return NewExtractor(vocab.Default()).Extract(lines)
}

func TestExtractRentalListing(t *testing.T) {
	r := extract(
		"Rental",
		"Kharadi",
		"Near EON IT Park, Lane 5",
		"2 BHK Flat",
		"Semi Furnished",
		"Carpet area 950 sqft",
		"Floor (5 of 12)",
		"East facing, 1 Covered Parking",
		"5 years old",
		"Rent 25K",
		"Deposit 50K",
		"Family only",
		"Owner Ramesh Patil 9876543210",
	)

	want := &models.PropertyRecord{
		PropertyType:      models.TypeRental,
		OwnerName:         "Ramesh Patil",
		OwnerContact:      "9876543210",
		Area:              "Kharadi",
		Address:           "Near EON IT Park, Lane 5",
		SubPropertyType:   "2 BHK",
		Size:              "950 sq.ft",
		FurnishingStatus:  "Semi-Furnished",
		Availability:      models.NotAvailable,
		Floor:             "5 of 12 floors",
		TenantPreference:  "Family Only",
		AdditionalDetails: "East facing",
		Age:               "5 years old",
		RentOrSellPrice:   "25000",
		Deposit:           "50000",
	}
	assert.Equal(t, want, r)
}

func TestExtractResaleIgnoresSecondPrice(t *testing.T) {
	r := extract(
		"Resale",
		"Baner",
		"Near Balewadi High Street",
		"3 BHK",
		"Ready to move",
		"Price 1.2 Cr",
		"Negotiable 1.1 Cr",
		"Contact 9123456780",
	)

	assert.Equal(t, models.TypeResale, r.PropertyType)
	assert.Equal(t, "Baner", r.Area)
	assert.Equal(t, "Near Balewadi High Street", r.Address)
	assert.Equal(t, "3 BHK", r.SubPropertyType)
	assert.Equal(t, "Ready to move", r.Availability)
	assert.Equal(t, "12000000", r.RentOrSellPrice)
	assert.Equal(t, models.NotAvailable, r.Deposit)
	assert.Equal(t, "9123456780", r.OwnerContact)
	assert.Equal(t, models.NotAvailable, r.OwnerName)
	assert.Equal(t, models.NotAvailable, r.FurnishingStatus)
}

func TestExtractPrices(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantPrice   string
		wantDeposit string
	}{
		{
			name:        "rupees",
			lines:       []string{"Rental", "Rent 25000 Rs", "Deposit 50000 Rs"},
			wantPrice:   "25000",
			wantDeposit: "50000",
		},
		{
			name:        "amounts without a unit are not prices",
			lines:       []string{"Rental", "Rent 25000", "Deposit 50000"},
			wantPrice:   models.NotAvailable,
			wantDeposit: models.NotAvailable,
		},
		{
			name:        "lakhs",
			lines:       []string{"Resale", "Price 85 Lacs"},
			wantPrice:   "8500000",
			wantDeposit: models.NotAvailable,
		},
		{
			name:        "short lakh",
			lines:       []string{"Rental", "Rent 1.5L"},
			wantPrice:   "150000",
			wantDeposit: models.NotAvailable,
		},
		{
			name:        "spaced crore",
			lines:       []string{"Resale", "Expected 1.25 C r"},
			wantPrice:   "12500000",
			wantDeposit: models.NotAvailable,
		},
		{
			name:        "deposit locks further prices",
			lines:       []string{"Rental", "Rent 20K", "Deposit 40K", "Maintenance 2K"},
			wantPrice:   "20000",
			wantDeposit: "40000",
		},
		{
			name:        "unclassified second price is not a deposit",
			lines:       []string{"Rent 20K", "Deposit 40K"},
			wantPrice:   "20000",
			wantDeposit: models.NotAvailable,
		},
		{
			name:        "months deposit after one price",
			lines:       []string{"Rental", "Rent 12K", "3 Month deposit"},
			wantPrice:   "12000",
			wantDeposit: "3 Month",
		},
		{
			name:        "months deposit ignored for resale",
			lines:       []string{"Resale", "Price 90 Lac", "3 Month"},
			wantPrice:   "9000000",
			wantDeposit: models.NotAvailable,
		},
		{
			name:        "no price",
			lines:       []string{"Rental", "2 BHK"},
			wantPrice:   models.NotAvailable,
			wantDeposit: models.NotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := extract(tt.lines...)
			assert.Equal(t, tt.wantPrice, r.RentOrSellPrice)
			assert.Equal(t, tt.wantDeposit, r.Deposit)
		})
	}
}

func TestExtractPriceNotListed(t *testing.T) {
	r := extract(
		"Rental",
		"Wakad",
		"2 BHK",
		"Rent on request",
		"2 Month",
		"Bachelors (Men Only)",
	)
	assert.Equal(t, "Rent on request", r.RentOrSellPrice)
	assert.Equal(t, "2 Month", r.Deposit)
	assert.Equal(t, "Bachelors (Men Only)", r.TenantPreference)
	assert.Equal(t, "Wakad", r.Area)
	assert.Equal(t, models.NotAvailable, r.Address)

	// a numeric price always beats a price-on-request phrase
	r = extract("Resale", "Price 1 Cr", "Price on call")
	assert.Equal(t, "10000000", r.RentOrSellPrice)

	r = extract("Resale", "PRICE ON REQUEST", "2 Month")
	assert.Equal(t, "PRICE ON REQUEST", r.RentOrSellPrice)
	assert.Equal(t, models.NotAvailable, r.Deposit)
}

func TestExtractAreaConsumesAddressLines(t *testing.T) {
	r := extract("Rental", "Kharadi", "Rent 25K", "Near Zensar", "2 BHK", "Rent 30K")

	assert.Equal(t, "Kharadi", r.Area)
	assert.Equal(t, "Rent 25K, Near Zensar", r.Address)
	assert.Equal(t, "30000", r.RentOrSellPrice)
}

func TestExtractFuzzyArea(t *testing.T) {
	r := extract("Rental", "Kharad", "2 BHK")
	assert.Equal(t, "Kharadi", r.Area)

	r = extract("Rental", "Mumbai Central", "2 BHK")
	assert.Equal(t, models.OtherArea, r.Area)
	assert.Equal(t, models.NotAvailable, r.Address)
}

func TestExtractFirstAreaWins(t *testing.T) {
	r := extract("Rental", "Wakad", "2 BHK", "Baner")
	assert.Equal(t, "Wakad", r.Area)
}

func TestExtractFirstContactWins(t *testing.T) {
	r := extract("Rental", "Ph 9876543210", "Alt 9123456780")
	assert.Equal(t, "9876543210", r.OwnerContact)
}

func TestExtractLastLineWins(t *testing.T) {
	r := extract(
		"Resale",
		"Carpet area 800 sqft",
		"Built up area: 1000 sqft",
		"Floor 3rd out of 7",
		"2 to 3 years old",
		"No Parking",
	)
	assert.Equal(t, "1000 sq.ft", r.Size)
	assert.Equal(t, "3rd of 7 floors", r.Floor)
	assert.Equal(t, "2 to 3 years old", r.Age)
	assert.Equal(t, "No Parking", r.AdditionalDetails)
}

func TestExtractSubPropertyType(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"2bhk", "2 BHK"},
		{"1rk", "1 Rk"},
		{"2.5 bhk", "2.5 BHK"},
		{"3 - BHK", "3 BHK"},
		{"7 BHK", "7 BHK"},
	}
	for _, tt := range tests {
		r := extract("Rental", tt.line)
		assert.Equal(t, tt.want, r.SubPropertyType, "line %q", tt.line)
	}
}

func TestExtractFurnishingFallsBackToWholeMessage(t *testing.T) {
	// the only furnishing mention sits in the address and is never scanned
	r := extract("Rental", "Kharadi", "Fully furnished flat", "2 BHK")
	assert.Equal(t, "Fully furnished flat", r.Address)
	assert.Equal(t, "Furnished", r.FurnishingStatus)

	r = extract("Rental", "unfurnished")
	assert.Equal(t, "Unfurnished", r.FurnishingStatus)
}

func TestExtractOwner(t *testing.T) {
	r := extract("Resale", "Owner Suresh Kale", "9876543210")
	assert.Equal(t, "Suresh Kale", r.OwnerName)
	assert.Equal(t, "9876543210", r.OwnerContact)

	r = extract("Resale", "Owner 9876543210")
	assert.Equal(t, models.NotAvailable, r.OwnerName)
}

func TestExtractPropertyCodeScope(t *testing.T) {
	r := extract("Rental", "Property Code: R-12", "Available now", "Family")
	assert.Equal(t, models.NotAvailable, r.Availability)
	assert.Equal(t, models.NotAvailable, r.TenantPreference)

	r = extract("Rental", "Available now", "Family", "Property Code: R-12")
	assert.Equal(t, "Available now", r.Availability)
	assert.Equal(t, "Family Only", r.TenantPreference)

	r = extract("Property Code: 7", "Immediate")
	assert.Equal(t, "Immediate", r.Availability)
}

func TestExtractEmptyMessage(t *testing.T) {
	r := extract()
	require.NotNil(t, r)
	assert.Equal(t, models.NewPropertyRecord(), r)
}
