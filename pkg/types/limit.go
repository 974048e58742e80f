package types

// Limit used for pagination
type Limit struct {
	Size     uint64 `schema:"size"`
	Page     uint64 `schema:"page"`
	RetCount bool   `schema:"ret_count"`
}

func DefaultLimit() Limit {
	return Limit{
		Size:     1000,
		Page:     1,
		RetCount: false,
	}
}
