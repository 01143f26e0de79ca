package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/track-server/internal/service"
)

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []string `json:"categories" doc:"Every category in display order"`
	Default    string   `json:"default" doc:"Category preselected for new tracks"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct{}

func NewListCategoriesHandler() *ListCategoriesHandler {
	return &ListCategoriesHandler{}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(_ context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories := service.AllCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return &ListCategoriesOutput{Body: ListCategoriesResponseBody{
		Categories: names,
		Default:    service.CategoryPersonal.String(),
	}}, nil
}
