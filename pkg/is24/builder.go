package is24

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Namespaces of the ImmoScout24 offer schema.
const (
	nsRealestates = "http://rest.immobilienscout24.de/schema/offer/realestates/1.0"
	nsCommon      = "http://rest.immobilienscout24.de/schema/common/1.0"
	nsXlink       = "http://www.w3.org/1999/xlink"
)

// nsAttrs declares the schema namespaces on an element. Left empty when the
// enclosing feed document already declares them.
type nsAttrs struct {
	Realestates string `xml:"xmlns:realestates,attr,omitempty"`
	Common      string `xml:"xmlns:common,attr,omitempty"`
	Xlink       string `xml:"xmlns:xlink,attr,omitempty"`
}

func standaloneNS() nsAttrs {
	return nsAttrs{Realestates: nsRealestates, Common: nsCommon, Xlink: nsXlink}
}

// note wraps free text so it serializes as CDATA, which the target schema
// expects for the description fields.
type note struct {
	Text string `xml:",cdata"`
}

func newNote(s string) *note {
	if s == "" {
		return nil
	}
	return &note{Text: s}
}

type internationalCountryRegion struct {
	Country string `xml:"country"`
	Region  string `xml:"region"`
}

type wgs84Coordinate struct {
	Latitude  float64 `xml:"latitude"`
	Longitude float64 `xml:"longitude"`
}

type address struct {
	Street        string                     `xml:"street,omitempty"`
	HouseNumber   string                     `xml:"houseNumber,omitempty"`
	Postcode      string                     `xml:"postcode,omitempty"`
	City          string                     `xml:"city,omitempty"`
	International internationalCountryRegion `xml:"internationalCountryRegion"`
	Coordinate    *wgs84Coordinate           `xml:"wgs84Coordinate,omitempty"`
}

type price struct {
	Value         string `xml:"value"`
	Currency      string `xml:"currency"`
	MarketingType string `xml:"marketingType"`
}

type courtageInfo struct {
	HasCourtage string `xml:"hasCourtage"`
	Courtage    string `xml:"courtage,omitempty"`
}

// commonElements is the leading block shared by every real-estate type.
type commonElements struct {
	ExternalID      string  `xml:"externalId"`
	Title           string  `xml:"title"`
	Address         address `xml:"address"`
	DescriptionNote *note   `xml:"descriptionNote,omitempty"`
	FurnishingNote  *note   `xml:"furnishingNote,omitempty"`
	LocationNote    *note   `xml:"locationNote,omitempty"`
	OtherNote       *note   `xml:"otherNote,omitempty"`
	ShowAddress     bool    `xml:"showAddress"`
}

type houseBuyElement struct {
	XMLName xml.Name `xml:"realestates:houseBuy"`
	nsAttrs
	commonElements
	BuildingType      string       `xml:"buildingType"`
	NumberOfBedRooms  string       `xml:"numberOfBedRooms,omitempty"`
	NumberOfBathRooms string       `xml:"numberOfBathRooms,omitempty"`
	Price             price        `xml:"price"`
	LivingSpace       string       `xml:"livingSpace"`
	PlotArea          string       `xml:"plotArea"`
	NumberOfRooms     int          `xml:"numberOfRooms"`
	Courtage          courtageInfo `xml:"courtage"`
}

type apartmentBuyElement struct {
	XMLName xml.Name `xml:"realestates:apartmentBuy"`
	nsAttrs
	commonElements
	ApartmentType     string       `xml:"apartmentType"`
	NumberOfBedRooms  string       `xml:"numberOfBedRooms,omitempty"`
	NumberOfBathRooms string       `xml:"numberOfBathRooms,omitempty"`
	Price             price        `xml:"price"`
	LivingSpace       string       `xml:"livingSpace"`
	NumberOfRooms     int          `xml:"numberOfRooms"`
	Courtage          courtageInfo `xml:"courtage"`
}

type livingBuySiteElement struct {
	XMLName xml.Name `xml:"realestates:livingBuySite"`
	nsAttrs
	commonElements
	CommercializationType string       `xml:"commercializationType"`
	Price                 price        `xml:"price"`
	PlotArea              string       `xml:"plotArea"`
	Courtage              courtageInfo `xml:"courtage"`
}

type tradeSiteElement struct {
	XMLName xml.Name `xml:"realestates:tradeSite"`
	nsAttrs
	commonElements
	CommercializationType string       `xml:"commercializationType"`
	UtilizationTradeSite  string       `xml:"utilizationTradeSite"`
	Price                 price        `xml:"price"`
	PlotArea              string       `xml:"plotArea"`
	Courtage              courtageInfo `xml:"courtage"`
}

// BuildElement shapes one validated record into the typed XML element of its
// real-estate type. standalone declares the namespaces on the element itself,
// for documents that hold a single record.
func BuildElement(rec *RealEstate, standalone bool) (any, error) {
	var ns nsAttrs
	if standalone {
		ns = standaloneNS()
	}

	common := commonElements{
		ExternalID:      rec.ExternalID,
		Title:           rec.Title,
		Address:         buildAddress(rec),
		DescriptionNote: newNote(rec.DescriptionNote),
		FurnishingNote:  newNote(rec.FurnishingNote),
		LocationNote:    newNote(rec.LocationNote),
		OtherNote:       newNote(rec.OtherNote),
		ShowAddress:     rec.ShowAddress,
	}

	switch rec.Type {
	case TypeHouseBuy:
		return &houseBuyElement{
			nsAttrs:           ns,
			commonElements:    common,
			BuildingType:      defaultString(rec.BuildingType, "NO_INFORMATION"),
			NumberOfBedRooms:  rec.NumberOfBedRooms,
			NumberOfBathRooms: rec.NumberOfBathRooms,
			Price:             buildPrice(rec),
			LivingSpace:       formatArea(rec.LivingSpace),
			PlotArea:          formatArea(rec.PlotArea),
			NumberOfRooms:     rec.NumberOfRooms,
			Courtage:          courtageInfo{HasCourtage: rec.HasCourtage},
		}, nil
	case TypeApartmentBuy:
		return &apartmentBuyElement{
			nsAttrs:           ns,
			commonElements:    common,
			ApartmentType:     defaultString(rec.ApartmentType, "NO_INFORMATION"),
			NumberOfBedRooms:  rec.NumberOfBedRooms,
			NumberOfBathRooms: rec.NumberOfBathRooms,
			Price:             buildPrice(rec),
			LivingSpace:       formatArea(rec.LivingSpace),
			NumberOfRooms:     rec.NumberOfRooms,
			Courtage:          courtageInfo{HasCourtage: rec.HasCourtage},
		}, nil
	case TypeLivingBuySite:
		return &livingBuySiteElement{
			nsAttrs:               ns,
			commonElements:        common,
			CommercializationType: defaultString(rec.CommercializationType, "BUY"),
			Price:                 buildPrice(rec),
			PlotArea:              formatArea(rec.PlotArea),
			Courtage:              courtageInfo{HasCourtage: rec.HasCourtage},
		}, nil
	case TypeTradeSite:
		return &tradeSiteElement{
			nsAttrs:               ns,
			commonElements:        common,
			CommercializationType: defaultString(rec.CommercializationType, "BUY"),
			UtilizationTradeSite:  defaultString(rec.UtilizationTradeSite, "LEISURE"),
			Price:                 buildPrice(rec),
			PlotArea:              formatArea(rec.PlotArea),
			Courtage:              courtageInfo{HasCourtage: rec.HasCourtage, Courtage: rec.Courtage},
		}, nil
	default:
		return nil, fmt.Errorf("no builder for real-estate type %q", rec.Type)
	}
}

func buildAddress(rec *RealEstate) address {
	addr := address{
		Street:      rec.Street,
		HouseNumber: defaultString(rec.HouseNumber, "0"),
		Postcode:    rec.Postcode,
		City:        rec.City,
		International: internationalCountryRegion{
			Country: defaultString(rec.Country, "ESP"),
			Region:  defaultString(rec.Region, "Unknown"),
		},
	}
	if rec.Latitude != nil && rec.Longitude != nil {
		addr.Coordinate = &wgs84Coordinate{Latitude: *rec.Latitude, Longitude: *rec.Longitude}
	}
	return addr
}

func buildPrice(rec *RealEstate) price {
	var value string
	if rec.Value != nil {
		value = strconv.FormatFloat(*rec.Value, 'f', -1, 64)
	}
	return price{
		Value:         value,
		Currency:      defaultString(rec.Currency, "EUR"),
		MarketingType: defaultString(rec.MarketingType, "PURCHASE"),
	}
}

func formatArea(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
