package model

// SampleDocument returns the document shown when no items file exists yet
func SampleDocument() *Document {
	return &Document{
		Panels: []Panel{
			{Label: "AI data panel", Value: "ai-data"},
			{Label: "Analysis panel", Value: "analysis"},
			{Label: "Report panel", Value: "reports"},
		},
		Items: []Item{
			{ID: "1", Name: "Stock board", Icon: IconGrid, Order: 0},
			{ID: "2", Name: "Tags", Icon: IconStar, Order: 1},
			{ID: "2-1", Name: "Free dashboard", Icon: IconGrid, ParentID: "2", Order: 0},
			{ID: "2-2", Name: "General checks", Icon: IconGrid, ParentID: "2", Order: 1},
			{ID: "3", Name: "Tags 2", Icon: IconTag, IconColor: "#9c27b0", Order: 2},
			{ID: "3-1", Name: "New entries", Icon: IconGrid, ParentID: "3", Order: 0},
			{ID: "3-2", Name: "Regression repro", Icon: IconGrid, ParentID: "3", Order: 1},
			{ID: "4", Name: "Regional charts", Icon: IconGrid, Order: 3},
			{ID: "5", Name: "FACTSHEET", Icon: IconGrid, Order: 4},
			{ID: "6", Name: "Panel copy test", Icon: IconStar, Order: 5},
			{ID: "7", Name: "New", Icon: IconAlert, IconColor: "#ff9800", Order: 6},
			{ID: "8", Name: "Shared with user 005", Icon: IconUser, IconColor: "#9c27b0", Order: 7},
			{ID: "9", Name: "遥かなる未来、AIと人間が織りなす壮大な叙事詩", Icon: IconUser, IconColor: "#9c27b0", Order: 8},
			{ID: "10", Name: "Endo test", Icon: IconUser, IconColor: "#9c27b0", Order: 9},
			{ID: "11", Name: "Test (for testing)", Icon: IconGrid, Order: 10},
			{ID: "11-1", Name: "Dashboard", Icon: IconGrid, ParentID: "11", Order: 0},
			{ID: "11-2", Name: "Fact check", Icon: IconGrid, ParentID: "11", Order: 1},
			{ID: "11-3", Name: "Dashboard", Icon: IconGrid, ParentID: "11-2", Order: 0},
			{ID: "11-4", Name: "Fact check", Icon: IconGrid, ParentID: "11-2", Order: 1},
		},
	}
}
