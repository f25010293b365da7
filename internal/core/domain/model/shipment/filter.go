package shipment

import "strings"

// Matches reports whether s matches the search term. The term is compared
// case-insensitively as a substring of the tracking number, the sender and
// receiver names, the shipment id and the status. An empty term
// matches every shipment.
func Matches(s Shipment, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}

	for _, field := range []string{
		s.TrackingNumber,
		s.Sender.Name,
		s.Receiver.Name,
		s.ID,
		string(s.Status),
		s.Status.Label(),
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Filter returns the shipments matching term, preserving their order.
func Filter(shipments []Shipment, term string) []Shipment {
	filtered := make([]Shipment, 0, len(shipments))
	for _, s := range shipments {
		if Matches(s, term) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
