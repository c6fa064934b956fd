package kyero

import "encoding/xml"

// Feed is the root of a Kyero V3 feed document.
type Feed struct {
	XMLName    xml.Name   `xml:"root"`
	Kyero      Meta       `xml:"kyero"`
	Properties []Property `xml:"property"`
}

// Meta carries the feed header block.
type Meta struct {
	FeedVersion string `xml:"feed_version"`
}

// Property is one listing as published in the source feed. Fields the feed
// may omit stay as zero values; numeric fields are kept as strings so a
// missing element is distinguishable from zero during transformation.
type Property struct {
	ID       string `xml:"id"`
	Ref      string `xml:"ref"`
	Date     string `xml:"date"`
	Type     string `xml:"type"`
	Town     string `xml:"town"`
	Province string `xml:"province"`
	Postcode string `xml:"postcode"`
	Country  string `xml:"country"`

	Price    string `xml:"price"`
	Currency string `xml:"currency"`
	Beds     string `xml:"beds"`
	Baths    string `xml:"baths"`

	Location      *Location      `xml:"location"`
	SurfaceArea   *SurfaceArea   `xml:"surface_area"`
	Desc          *Description   `xml:"desc"`
	Courtage      *Courtage      `xml:"courtage"`
	APISearchData *APISearchData `xml:"api_search_data"`

	ShowAddress string `xml:"show_address"`
	HouseNumber string `xml:"house_number"`
	GroupNumber string `xml:"group_number"`

	FurnishingNote string `xml:"furnishing_note"`
	LocationNote   string `xml:"location_note"`
	OtherNote      string `xml:"other_note"`

	CommercializationType  string `xml:"commercialization_type"`
	UtilizationTradeSite   string `xml:"utilization_trade_site"`
	Tenancy                string `xml:"tenancy"`
	MinDivisible           string `xml:"min_divisible"`
	FreeFrom               string `xml:"free_from"`
	ShortTermConstructible string `xml:"short_term_constructible"`
	BuildingPermission     string `xml:"building_permission"`
	Demolition             string `xml:"demolition"`
	SiteDevelopmentType    string `xml:"site_development_type"`
	SiteConstructibleType  string `xml:"site_constructible_type"`
	Grz                    string `xml:"grz"`
	Gfz                    string `xml:"gfz"`
	LeaseInterval          string `xml:"lease_interval"`

	MarketingType     string `xml:"marketing_type"`
	PriceIntervalType string `xml:"price_interval_type"`

	Images Images `xml:"images"`
}

type Location struct {
	Latitude  string `xml:"latitude"`
	Longitude string `xml:"longitude"`
}

// SurfaceArea holds the square-meter figures of a listing.
type SurfaceArea struct {
	Built string `xml:"built"`
	Plot  string `xml:"plot"`
	Total string `xml:"total"`
	Net   string `xml:"net"`
}

// Description is the localized listing text. Only the English variant is
// used for the target feed.
type Description struct {
	En string `xml:"en"`
	Es string `xml:"es"`
	De string `xml:"de"`
}

type Courtage struct {
	HasCourtage  string `xml:"has_courtage"`
	Courtage     string `xml:"courtage"`
	CourtageNote string `xml:"courtage_note"`
}

type APISearchData struct {
	SearchField1 string `xml:"search_field1"`
	SearchField2 string `xml:"search_field2"`
	SearchField3 string `xml:"search_field3"`
}

// Images is the ordered photo list of one property.
type Images struct {
	Image []Image `xml:"image"`
}

// Image is a single photo reference. The id attribute is the stable key the
// image store derives local filenames from.
type Image struct {
	ID  string `xml:"id,attr"`
	URL string `xml:"url"`
}
