package types

// Version represent the deployed version of the service
type Version struct {
	Version string `json:"version"`
}
