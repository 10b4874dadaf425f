// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package charts

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// mapFeatureNames holds the world map's own feature names where they differ
// from the CLDR English region name. Popups and map series data must use the
// feature name or the country will not be matched.
var mapFeatureNames = map[string]string{
	"ATF": "French Southern and Antarctic Lands",
	"BHS": "The Bahamas",
	"BIH": "Bosnia and Herz.",
	"CAF": "Central African Rep.",
	"CIV": "Côte d'Ivoire",
	"COD": "Dem. Rep. Congo",
	"COG": "Congo",
	"CZE": "Czech Rep.",
	"DOM": "Dominican Rep.",
	"ESH": "W. Sahara",
	"FLK": "Falkland Is.",
	"GNQ": "Eq. Guinea",
	"KOR": "Korea",
	"LAO": "Lao PDR",
	"MKD": "Macedonia",
	"MMR": "Myanmar",
	"PRK": "Dem. Rep. Korea",
	"PSE": "West Bank",
	"SLB": "Solomon Is.",
	"SSD": "S. Sudan",
	"SWZ": "Swaziland",
	"TLS": "East Timor",
	"TTO": "Trinidad and Tobago",
	"TUR": "Turkey",
}

var regionNamer = display.English.Regions()

// CountryName returns the map display name for an ISO 3166-1 code (alpha-2,
// alpha-3 or numeric). Unknown codes are returned unchanged.
func CountryName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name, ok := mapFeatureNames[region.ISO3()]; ok {
		return name
	}
	if name := regionNamer.Name(region); name != "" {
		return name
	}
	return code
}

// ISO3 normalizes an ISO 3166-1 code to alpha-3. ok is false for codes that
// do not name a country.
func ISO3(code string) (iso3 string, ok bool) {
	region, err := language.ParseRegion(strings.TrimSpace(code))
	if err != nil || !region.IsCountry() {
		return "", false
	}
	iso3 = region.ISO3()
	return iso3, iso3 != "ZZZ"
}
