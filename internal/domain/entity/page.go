package entity

// PageSize is the fixed server-side page size of list endpoints.
const PageSize = 10

// Page is the envelope of paginated list endpoints.
type Page[T any] struct {
	Results     []T `json:"results"`
	Count       int `json:"count"`
	CurrentPage int `json:"current_page"`
}

// TotalPages returns ceil(count / pageSize); a non-positive pageSize falls back to PageSize.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	if count <= 0 {
		return 0
	}

	return (count + pageSize - 1) / pageSize
}
