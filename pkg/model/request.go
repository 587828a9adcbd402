package model

// LoadRequest asks the service to import a CSV file; over HTTP the path is
// relative to the data directory.
type LoadRequest struct {
	Path string `json:"path" validate:"required,max=4096"`
}
