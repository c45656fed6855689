// README: Truck aggregate: a rentable camper with a daily rate.
package fleet

type Truck struct {
	ID          int64  `json:"id"`
	License     string `json:"license"`
	PricePerDay int64  `json:"price_per_day"`
	Level       string `json:"level"`
	Image       string `json:"image"`
}
