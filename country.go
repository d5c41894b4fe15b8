package phonenumber

import (
	"fmt"

	"golang.org/x/text/language"
)

// Region is a CLDR region identifier, uppercase two letters for countries
// plus the special "001" for non-geographical entities.
type Region string

// Regions with bundled metadata.
const (
	AR Region = "AR"
	AU Region = "AU"
	BE Region = "BE"
	BR Region = "BR"
	CA Region = "CA"
	CN Region = "CN"
	CO Region = "CO"
	DE Region = "DE"
	ES Region = "ES"
	FR Region = "FR"
	GB Region = "GB"
	IN Region = "IN"
	IT Region = "IT"
	JP Region = "JP"
	KY Region = "KY"
	MX Region = "MX"
	NZ Region = "NZ"
	US Region = "US"
)

// RegionNonGeographic identifies non-geographical entities such as universal
// toll free numbers.
const RegionNonGeographic Region = "001"

// UnknownRegion is returned when a number's region cannot be determined.
const UnknownRegion Region = "ZZ"

// ParseRegion canonicalizes a region identifier. It accepts anything the
// CLDR region parser does, lowercase included, plus the non-geographical
// "001".
func ParseRegion(s string) (Region, error) {
	if s == string(RegionNonGeographic) {
		return RegionNonGeographic, nil
	}

	r, err := language.ParseRegion(s)
	if err != nil {
		return "", fmt.Errorf("phonenumber: invalid region %q: %w", s, err)
	}
	return Region(r.String()), nil
}

func (r Region) String() string {
	return string(r)
}
