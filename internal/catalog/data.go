package catalog

import "github.com/piwi3910/CabinetFit/internal/model"

// group is a named product family within a brand.
type group struct {
	Name    string
	Entries []model.CatalogEntry
}

// brand is a manufacturer and its product families, in display order.
type brand struct {
	Key    string
	Name   string
	Groups []group
}

func fitMax(id, name string, w, h, d float64, units ...model.Unit) model.CatalogEntry {
	return model.CatalogEntry{ID: id, Name: name, Type: model.ApplianceBuiltIn, Line: "fitmax",
		Width: w, Height: h, Depth: d, SideGap: 4, BetweenGap: 8, Units: units}
}

func lgBuiltIn(id, name string, w float64, units ...model.Unit) model.CatalogEntry {
	return model.CatalogEntry{ID: id, Name: name, Type: model.ApplianceBuiltIn, Line: "builtin",
		Width: w, Height: 1860, Depth: 698, SideGap: 22, BetweenGap: 11, Units: units}
}

func lgFree(id, name string, h float64, unit string) model.CatalogEntry {
	return model.CatalogEntry{ID: id, Name: name, Type: model.ApplianceFreestanding, Line: "freestanding",
		Width: 913, Height: h, Depth: 738, SideGap: 50, Units: []model.Unit{{Name: unit, Width: 913}}}
}

func bespoke(id, name string, w float64, units ...model.Unit) model.CatalogEntry {
	return model.CatalogEntry{ID: id, Name: name, Type: model.ApplianceBuiltIn, Line: "bespoke",
		Width: w, Height: 1853, Depth: 688, SideGap: 12, BetweenGap: 7, Units: units}
}

func infinite(id, name string, w float64, units ...model.Unit) model.CatalogEntry {
	return model.CatalogEntry{ID: id, Name: name, Type: model.ApplianceBuiltIn, Line: "infinite",
		Width: w, Height: 1855, Depth: 688, SideGap: 5, BetweenGap: 10, Units: units}
}

func u(name string, w float64) model.Unit {
	return model.Unit{Name: name, Width: w}
}

// builtinBrands is the refrigerator catalog shipped with the binary.
var builtinBrands = []brand{
	{
		Key:  "LG",
		Name: "LG",
		Groups: []group{
			{Name: "Standalone (Fit&Max)", Entries: []model.CatalogEntry{
				fitMax("lg_300l", "Standalone 300L", 595, 1780, 680, u("300L", 595)),
				fitMax("lg_400l", "Standalone 400L", 595, 1850, 680, u("400L", 595)),
				fitMax("lg_500l", "Standalone 500L", 700, 1850, 730, u("500L", 700)),
				fitMax("lg_600l", "Standalone 600L", 700, 1920, 730, u("600L", 700)),
			}},
			{Name: "Set (Fit&Max)", Entries: []model.CatalogEntry{
				fitMax("lg_set_1d1d", "1-door + 1-door", 1198, 1850, 680, u("1-door", 595), u("1-door", 595)),
				fitMax("lg_set_500_300", "500 + 300", 1303, 1850, 730, u("500L", 700), u("300L", 595)),
				fitMax("lg_set_500_400", "500 + 400", 1303, 1850, 730, u("500L", 700), u("400L", 595)),
				fitMax("lg_set_600_300", "600 + 300", 1303, 1920, 730, u("600L", 700), u("300L", 595)),
				fitMax("lg_set_600_400", "600 + 400", 1303, 1920, 730, u("600L", 700), u("400L", 595)),
			}},
			{Name: "Built-in", Entries: []model.CatalogEntry{
				lgBuiltIn("lg_builtin_fridge_1d", "Refrigerator + 1-door", 1568, u("Refrigerator", 897), u("1-door", 649)),
				lgBuiltIn("lg_builtin_kimchi_1d", "Kimchi + 1-door", 1309, u("Kimchi", 649), u("1-door", 649)),
				lgBuiltIn("lg_builtin_fridge_kimchi", "Refrigerator + Kimchi", 1612, u("Refrigerator", 897), u("Kimchi", 649)),
			}},
			{Name: "Freestanding", Entries: []model.CatalogEntry{
				lgFree("lg_free_600_side", "Side-by-side 600", 1790, "Side-by-side 600"),
				lgFree("lg_free_800_side", "Side-by-side 800", 1820, "Side-by-side 800"),
			}},
		},
	},
	{
		Key:  "Samsung",
		Name: "Samsung",
		Groups: []group{
			{Name: "Bespoke Refrigerator", Entries: []model.CatalogEntry{
				bespoke("ss_bespoke_1d", "1-door Kitchen Fit", 595, u("1-door", 595)),
				bespoke("ss_bespoke_2d", "2-door Kitchen Fit", 595, u("2-door", 595)),
				bespoke("ss_bespoke_4d", "4-door Kitchen Fit", 912, u("4-door", 912)),
			}},
			{Name: "Bespoke Kimchi Plus", Entries: []model.CatalogEntry{
				bespoke("ss_kimchi_1d", "1-door Kitchen Fit", 595, u("Kimchi 1-door", 595)),
				bespoke("ss_kimchi_3d", "3-door Kitchen Fit", 695, u("Kimchi 3-door", 695)),
				bespoke("ss_kimchi_4d", "4-door Kitchen Fit", 912, u("Kimchi 4-door", 912)),
			}},
			{Name: "Bespoke Kitchen Fit Set", Entries: []model.CatalogEntry{
				bespoke("ss_kf_2d1d", "2-door + 1-door", 1197, u("2-door", 595), u("1-door", 595)),
				bespoke("ss_kf_4d1d", "4-door + 1-door", 1514, u("4-door", 912), u("1-door", 595)),
				bespoke("ss_kf_4d3d", "4-door + 3-door", 1614, u("4-door", 912), u("3-door", 695)),
			}},
			{Name: "Infinite Line", Entries: []model.CatalogEntry{
				infinite("ss_inf_1d", "1-door Kitchen Fit", 595, u("1-door", 595)),
				infinite("ss_inf_4d", "4-door Kitchen Fit", 912, u("4-door", 912)),
				infinite("ss_inf_4d4d", "4-door + 4-door", 1834, u("4-door", 912), u("4-door", 912)),
			}},
		},
	},
}
