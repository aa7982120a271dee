package queries

// GetVisDataSetQuery asks for the whole graph in the editor's data set form
type GetVisDataSetQuery struct{}

// Validate validates the query
func (q GetVisDataSetQuery) Validate() error {
	return nil
}

// GetGraphvizQuery asks for the whole graph as DOT text
type GetGraphvizQuery struct{}

// Validate validates the query
func (q GetGraphvizQuery) Validate() error {
	return nil
}

// GetAppNameQuery asks for the name shown in the editor's title
type GetAppNameQuery struct{}

// Validate validates the query
func (q GetAppNameQuery) Validate() error {
	return nil
}

// AppNameResult is the answer to GetAppNameQuery
type AppNameResult struct {
	Name string `json:"Name"`
}
