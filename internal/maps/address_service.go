// README: Address lookup for the address-entry search box via Google Geocoding.
package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Candidate is a simplified geocoding result ready to prefill the manual
// address fields.
type Candidate struct {
	Formatted string `json:"formatted"`
	Line1     string `json:"line1"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// AddressService handles interactions with the Google Geocoding API.
type AddressService struct {
	client *maps.Client
}

// NewAddressService creates a new AddressService with the given API key.
func NewAddressService(apiKey string) (*AddressService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &AddressService{client: client}, nil
}

// Search geocodes a free-text address query and returns up to limit
// candidates with their components split out.
func (s *AddressService) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	resp, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}

	var results []Candidate
	for _, r := range resp {
		c := Candidate{Formatted: r.FormattedAddress}
		var streetNumber, route string
		for _, comp := range r.AddressComponents {
			for _, t := range comp.Types {
				switch t {
				case "street_number":
					streetNumber = comp.LongName
				case "route":
					route = comp.LongName
				case "locality", "postal_town":
					c.City = comp.LongName
				case "postal_code":
					c.Zip = comp.LongName
				case "country":
					c.Country = comp.LongName
				}
			}
		}
		c.Line1 = strings.TrimSpace(streetNumber + " " + route)
		if c.Line1 == "" {
			c.Line1 = r.FormattedAddress
		}
		results = append(results, c)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}
