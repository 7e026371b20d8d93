package checkout

import "github.com/dmitrijs2005/gownshop/internal/client/client"

// City is a delivery zone with a flat delivery cost in shekels.
type City struct {
	Code         string
	DeliveryCost float64
	labels       map[client.Locale]string
}

// Label returns the zone's display name in l, falling back to Arabic.
func (c City) Label(l client.Locale) string {
	if s, ok := c.labels[l]; ok {
		return s
	}
	return c.labels[client.LocaleArabic]
}

var Cities = []City{
	{Code: "inside48", DeliveryCost: 70, labels: map[client.Locale]string{
		client.LocaleArabic:  "الداخل ٤٨",
		client.LocaleEnglish: "Inside 48",
	}},
	{Code: "westbank", DeliveryCost: 20, labels: map[client.Locale]string{
		client.LocaleArabic:  "الضفة الغربية",
		client.LocaleEnglish: "West Bank",
	}},
	{Code: "jerusalem", DeliveryCost: 30, labels: map[client.Locale]string{
		client.LocaleArabic:  "القدس",
		client.LocaleEnglish: "Jerusalem",
	}},
}

func CityByCode(code string) (City, bool) {
	for _, c := range Cities {
		if c.Code == code {
			return c, true
		}
	}
	return City{}, false
}
