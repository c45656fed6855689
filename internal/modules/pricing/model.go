// README: Pricing rules: minimum rental length and fixed-price add-ons.
package pricing

const (
	// MinRentalDays is the shortest booking the business accepts.
	MinRentalDays = 3

	// Flat add-on charges, independent of rental length.
	AddOnPortaPotti      = 60
	AddOnCleaningService = 75
)

type AddOns struct {
	PortaPotti      bool `json:"porta_potti"`
	CleaningService bool `json:"cleaning_service"`
}

func (a AddOns) total() int64 {
	var sum int64
	if a.PortaPotti {
		sum += AddOnPortaPotti
	}
	if a.CleaningService {
		sum += AddOnCleaningService
	}
	return sum
}
