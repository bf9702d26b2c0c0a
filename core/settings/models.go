package settings

// Setting is one key/value pair of the flat settings bag. The
// category tags the pair for form grouping; the backend itself sees
// one flat collection.
type Setting struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

// Categories are a UI grouping only.
const (
	CategoryGeneral       = "general"
	CategoryEmail         = "email"
	CategoryNotifications = "notifications"
	CategorySecurity      = "security"
	CategoryDatabase      = "database"
)

var AllCategories = []string{
	CategoryGeneral,
	CategoryEmail,
	CategoryNotifications,
	CategorySecurity,
	CategoryDatabase,
}

// Bag groups the flat settings collection by category for rendering:
// category -> key -> value.
type Bag map[string]map[string]string

func newBag(items []Setting) Bag {
	bag := make(Bag)
	for _, s := range items {
		if bag[s.Category] == nil {
			bag[s.Category] = make(map[string]string)
		}
		bag[s.Category][s.Key] = s.Value
	}
	return bag
}
