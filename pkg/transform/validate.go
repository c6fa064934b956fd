package transform

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/is24"
)

// Violation describes one field that failed validation.
type Violation struct {
	Field  string
	Reason string
}

// Result is the outcome of validating one transformed record. An invalid
// record is dropped from the output feed; the run continues.
type Result struct {
	Violations []Violation
}

func (r Result) Valid() bool { return len(r.Violations) == 0 }

// Fields lists the failing field names, for log lines.
func (r Result) Fields() []string {
	fields := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		fields[i] = v.Field
	}
	return fields
}

// Validate checks that a transformed record carries every field its
// real-estate type requires, that numeric fields parse, and that text fields
// contain no characters illegal in XML.
func Validate(rec *is24.RealEstate) Result {
	var res Result
	missing := func(field string) {
		res.Violations = append(res.Violations, Violation{Field: field, Reason: "required field missing"})
	}

	if strings.TrimSpace(rec.ExternalID) == "" {
		missing("externalId")
	}
	if strings.TrimSpace(rec.Title) == "" {
		missing("title")
	}
	if rec.Value == nil {
		missing("price.value")
	}

	switch rec.Type {
	case is24.TypeHouseBuy:
		if rec.LivingSpace == nil {
			missing("livingSpace")
		}
		if rec.PlotArea == nil {
			missing("plotArea")
		}
	case is24.TypeApartmentBuy:
		if rec.LivingSpace == nil {
			missing("livingSpace")
		}
	case is24.TypeLivingBuySite:
		if rec.PlotArea == nil {
			missing("plotArea")
		}
		if rec.CommercializationType == "" {
			missing("commercializationType")
		}
	case is24.TypeTradeSite:
		if rec.PlotArea == nil {
			missing("plotArea")
		}
		if rec.CommercializationType == "" {
			missing("commercializationType")
		}
		if rec.UtilizationTradeSite == "" {
			missing("utilizationTradeSite")
		}
	default:
		res.Violations = append(res.Violations, Violation{
			Field:  "type",
			Reason: "unknown real-estate type " + strconv.Quote(rec.Type),
		})
	}

	checkNumeric(&res, "numberOfBedRooms", rec.NumberOfBedRooms)
	checkNumeric(&res, "numberOfBathRooms", rec.NumberOfBathRooms)

	checkText(&res, "title", rec.Title)
	checkText(&res, "descriptionNote", rec.DescriptionNote)
	checkText(&res, "furnishingNote", rec.FurnishingNote)
	checkText(&res, "locationNote", rec.LocationNote)
	checkText(&res, "otherNote", rec.OtherNote)

	return res
}

func checkNumeric(res *Result, field, value string) {
	if value == "" {
		return
	}
	if _, err := strconv.Atoi(value); err != nil {
		res.Violations = append(res.Violations, Violation{Field: field, Reason: "not a number: " + strconv.Quote(value)})
	}
}

// checkText rejects characters that cannot appear in an XML 1.0 document,
// even escaped or inside CDATA.
func checkText(res *Result, field, value string) {
	if value == "" {
		return
	}
	if !utf8.ValidString(value) {
		res.Violations = append(res.Violations, Violation{Field: field, Reason: "invalid UTF-8"})
		return
	}
	for _, r := range value {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			res.Violations = append(res.Violations, Violation{Field: field, Reason: "contains XML-illegal control character"})
			return
		}
	}
}
