package models

import "fmt"

// Sentinel values written when a field cannot be determined.
const (
	NotAvailable = "N/A"
	OtherArea    = "Other"
)

// Property type values derived from the "Resale"/"Rental" keywords.
const (
	TypeResale = "Res_resale"
	TypeRental = "Res_rental"
)

// Meridiem is the am/pm half of a 12-hour clock reading.
type Meridiem string

const (
	AM Meridiem = "am"
	PM Meridiem = "pm"
)

// Timestamp is a chat timestamp reduced to day/month and a 12-hour clock.
// The year is never kept and day/month are not range checked.
type Timestamp struct {
	Day      int
	Month    int
	Hour12   int
	Minute   int
	Meridiem Meridiem
}

// String renders the canonical "[D/M, h:mm am]" form.
func (t Timestamp) String() string {
	return fmt.Sprintf("[%d/%d, %d:%02d %s]", t.Day, t.Month, t.Hour12, t.Minute, t.Meridiem)
}

// Message is one chat message cut out of a raw export: the timestamp marker
// that introduced it (empty for leading text) and its trimmed, non-empty
// content lines.
type Message struct {
	Header string
	Lines  []string
}

// PropertyRecord is the fixed 15-field listing schema. Every field is a
// string; missing values hold NotAvailable (Area holds OtherArea).
type PropertyRecord struct {
	PropertyType      string `json:"property_type"`
	OwnerName         string `json:"owner_name"`
	OwnerContact      string `json:"owner_contact"`
	Area              string `json:"area"`
	Address           string `json:"address"`
	SubPropertyType   string `json:"sub_property_type"`
	Size              string `json:"size"`
	FurnishingStatus  string `json:"furnishing_status"`
	Availability      string `json:"availability"`
	Floor             string `json:"floor"`
	TenantPreference  string `json:"tenant_preference"`
	AdditionalDetails string `json:"additional_details"`
	Age               string `json:"age"`
	RentOrSellPrice   string `json:"rent_or_sell_price"`
	Deposit           string `json:"deposit"`
}

// NewPropertyRecord returns a record with every field set to its sentinel.
func NewPropertyRecord() *PropertyRecord {
	return &PropertyRecord{
		PropertyType:      NotAvailable,
		OwnerName:         NotAvailable,
		OwnerContact:      NotAvailable,
		Area:              OtherArea,
		Address:           NotAvailable,
		SubPropertyType:   NotAvailable,
		Size:              NotAvailable,
		FurnishingStatus:  NotAvailable,
		Availability:      NotAvailable,
		Floor:             NotAvailable,
		TenantPreference:  NotAvailable,
		AdditionalDetails: NotAvailable,
		Age:               NotAvailable,
		RentOrSellPrice:   NotAvailable,
		Deposit:           NotAvailable,
	}
}

// Field is a single named value of a record.
type Field struct {
	Name  string
	Value string
}

// FieldNames lists the record fields in display order.
var FieldNames = []string{
	"property_type",
	"owner_name",
	"owner_contact",
	"area",
	"address",
	"sub_property_type",
	"size",
	"furnishing_status",
	"availability",
	"floor",
	"tenant_preference",
	"additional_details",
	"age",
	"rent_or_sell_price",
	"deposit",
}

// Fields returns the record's values paired with their names, in display order.
func (r *PropertyRecord) Fields() []Field {
	values := []string{
		r.PropertyType,
		r.OwnerName,
		r.OwnerContact,
		r.Area,
		r.Address,
		r.SubPropertyType,
		r.Size,
		r.FurnishingStatus,
		r.Availability,
		r.Floor,
		r.TenantPreference,
		r.AdditionalDetails,
		r.Age,
		r.RentOrSellPrice,
		r.Deposit,
	}
	out := make([]Field, len(values))
	for i, v := range values {
		out[i] = Field{Name: FieldNames[i], Value: v}
	}
	return out
}

// Get returns the value of the named field.
func (r *PropertyRecord) Get(name string) (string, bool) {
	for _, f := range r.Fields() {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// IsRental reports whether the record was classified as a rental listing.
func (r *PropertyRecord) IsRental() bool {
	return r.PropertyType == TypeRental
}

// FormattedOutput pairs a record with its rendered text block.
type FormattedOutput struct {
	Text string          `json:"text"`
	Data *PropertyRecord `json:"data"`
}

// PriceStats summarizes the numeric prices of one listing type.
type PriceStats struct {
	Count   int
	Average float64
	Min     float64
	Max     float64
	Highest *PropertyRecord
}

// InsightReport holds summary statistics over one formatting run. Monthly
// rents and sale prices are kept apart; unclassified entries feed neither.
type InsightReport struct {
	TotalEntries     int
	Rentals          int
	Resales          int
	Unclassified     int
	PriceOnRequest   int
	Rent             PriceStats
	Sale             PriceStats
	EntriesByArea    map[string]int
	EntriesBySubType map[string]int
}
