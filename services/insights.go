package services

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"property-formatter/models"
	"property-formatter/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(outputs []models.FormattedOutput) *models.InsightReport {
	report := &models.InsightReport{
		EntriesByArea:    make(map[string]int),
		EntriesBySubType: make(map[string]int),
	}

	if len(outputs) == 0 {
		return report
	}

	report.TotalEntries = len(outputs)

	var rentTotal, saleTotal float64
	for _, o := range outputs {
		r := o.Data
		var stats *models.PriceStats
		var total *float64
		switch r.PropertyType {
		case models.TypeRental:
			report.Rentals++
			stats, total = &report.Rent, &rentTotal
		case models.TypeResale:
			report.Resales++
			stats, total = &report.Sale, &saleTotal
		default:
			report.Unclassified++
		}
		report.EntriesByArea[r.Area]++
		if r.SubPropertyType != models.NotAvailable {
			report.EntriesBySubType[r.SubPropertyType]++
		}

		if r.RentOrSellPrice == models.NotAvailable {
			continue
		}
		price, err := strconv.ParseFloat(r.RentOrSellPrice, 64)
		if err != nil {
			// "Price on call" and friends
			report.PriceOnRequest++
			continue
		}
		if stats == nil {
			continue
		}
		addPrice(stats, r, price)
		*total += price
	}

	if report.Rent.Count > 0 {
		report.Rent.Average = round2(rentTotal / float64(report.Rent.Count))
	}
	if report.Sale.Count > 0 {
		report.Sale.Average = round2(saleTotal / float64(report.Sale.Count))
	}

	s.logger.Debug("[insights] %d entries, %d rents, %d sale prices, %d on request",
		report.TotalEntries, report.Rent.Count, report.Sale.Count, report.PriceOnRequest)
	return report
}

func addPrice(stats *models.PriceStats, r *models.PropertyRecord, price float64) {
	if stats.Count == 0 || price < stats.Min {
		stats.Min = price
	}
	if stats.Count == 0 || price > stats.Max {
		stats.Max = price
		stats.Highest = r
	}
	stats.Count++
}

func (s *InsightService) Print(w io.Writer, r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n%s\n", sep)
	fmt.Fprintf(w, "  PROPERTY FORMATTING SUMMARY\n")
	fmt.Fprintf(w, "%s\n\n", sep)

	fmt.Fprintf(w, "  Overview\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Property entries : %d\n", r.TotalEntries)
	fmt.Fprintf(w, "  Rentals          : %d\n", r.Rentals)
	fmt.Fprintf(w, "  Resales          : %d\n", r.Resales)
	fmt.Fprintf(w, "  Unclassified     : %d\n", r.Unclassified)
	if r.PriceOnRequest > 0 {
		fmt.Fprintf(w, "  Price on request : %d\n", r.PriceOnRequest)
	}
	fmt.Fprintln(w)

	printPrices(w, "Monthly Rent (INR)", thin, r.Rent)
	printPrices(w, "Sale Price (INR)", thin, r.Sale)

	printCounts(w, "Entries by Area", thin, r.EntriesByArea)
	printCounts(w, "Entries by Configuration", thin, r.EntriesBySubType)

	fmt.Fprintf(w, "%s\n\n", sep)
}

func printPrices(w io.Writer, title, thin string, p models.PriceStats) {
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "  %s\n", thin)
	if p.Count == 0 {
		fmt.Fprintf(w, "  No numeric prices found\n\n")
		return
	}
	fmt.Fprintf(w, "  Average : %.2f\n", p.Average)
	fmt.Fprintf(w, "  Minimum : %.2f\n", p.Min)
	fmt.Fprintf(w, "  Maximum : %.2f\n", p.Max)
	if p.Highest != nil {
		fmt.Fprintf(w, "  Highest : %s, %s\n", p.Highest.SubPropertyType, p.Highest.Area)
		fmt.Fprintf(w, "  Address : %s\n", truncate(p.Highest.Address, 44))
	}
	fmt.Fprintln(w)
}

// printCounts lists a count map sorted by count descending, then by name.
func printCounts(w io.Writer, title, thin string, counts map[string]int) {
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "  %s\n", thin)
	if len(counts) == 0 {
		fmt.Fprintf(w, "  No data\n\n")
		return
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	for _, e := range entries {
		bar := strings.Repeat("█", e.count)
		fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(e.name, 28), bar, e.count)
	}
	fmt.Fprintln(w)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// truncate shortens s to at most max runes, ending in "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
