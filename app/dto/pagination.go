package dto

// PageLinks holds the navigation links of a paginated response. A nil
// link renders as JSON null.
type PageLinks struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// Page is the pagination envelope for collection responses.
type Page struct {
	Links   PageLinks   `json:"links"`
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}
