package catalog

// Canonical category labels.
const (
	CategoryDistanceDriver = "Distance Driver"
	CategoryFairwayDriver  = "Fairway Driver"
	CategoryMidrange       = "Midrange"
	CategoryPutter         = "Putter"
	CategoryApproach       = "Approach"
)

var categoryMap = map[string]string{
	"Distance Drivers":  CategoryDistanceDriver,
	"Distance Driver":   CategoryDistanceDriver,
	"Hybrid Drivers":    CategoryFairwayDriver,
	"Fairway Drivers":   CategoryFairwayDriver,
	"Control Drivers":   CategoryFairwayDriver,
	"Midranges":         CategoryMidrange,
	"Mid-Range":         CategoryMidrange,
	"Midrange Discs":    CategoryMidrange,
	"Putters":           CategoryPutter,
	"Putt & Approach":   CategoryPutter,
	"Putt and Approach": CategoryPutter,
	"Approach Discs":    CategoryApproach,
}

// ParseCategory maps a raw category label to its canonical form. Labels
// missing from the table are returned unchanged.
func ParseCategory(category string) string {
	if mapped, ok := categoryMap[category]; ok {
		return mapped
	}
	return category
}
