package model

// Category is a furniture category.
type Category string

const (
	CategorySink      Category = "sink"
	CategoryIsland    Category = "island"
	CategoryWardrobe  Category = "wardrobe"
	CategoryFridge    Category = "fridge"
	CategoryShoeRack  Category = "shoerack"
	CategoryVanity    Category = "vanity"
	CategoryStorage   Category = "storage"
	CategoryWarehouse Category = "warehouse"
	CategoryDoor      Category = "door"
	CategoryCustom    Category = "custom"
)

// CategoryRule holds per-category layout rules.
type CategoryRule struct {
	Name                 string  `json:"name" toml:"name" yaml:"name"`
	DefaultDepth         float64 `json:"default_depth" toml:"default_depth" yaml:"default_depth"`
	UpperSinglePerModule bool    `json:"upper_single_per_module" toml:"upper_single_per_module" yaml:"upper_single_per_module"` // One door per upper module, no pairing
}

// DefaultCategoryRules returns the built-in rule table.
func DefaultCategoryRules() map[Category]CategoryRule {
	return map[Category]CategoryRule{
		CategorySink:      {Name: "Sink", DefaultDepth: 600},
		CategoryIsland:    {Name: "Island", DefaultDepth: 800},
		CategoryWardrobe:  {Name: "Wardrobe", DefaultDepth: 650},
		CategoryFridge:    {Name: "Fridge", DefaultDepth: 700, UpperSinglePerModule: true},
		CategoryShoeRack:  {Name: "Shoe rack", DefaultDepth: 350},
		CategoryVanity:    {Name: "Vanity", DefaultDepth: 500},
		CategoryStorage:   {Name: "Storage", DefaultDepth: 400},
		CategoryWarehouse: {Name: "Warehouse", DefaultDepth: 450},
		CategoryDoor:      {Name: "Door replacement", DefaultDepth: 18},
		CategoryCustom:    {Name: "Custom", DefaultDepth: 0},
	}
}
