package model

// Stats summarizes the local data set.
type Stats struct {
	TotalItems     int            `json:"total_items"`
	LostItems      int            `json:"lost_items"`
	FoundItems     int            `json:"found_items"`
	ByCategory     map[string]int `json:"by_category"`
	RecentSearches int            `json:"recent_searches"`
	Favorites      int            `json:"favorites"`
}
