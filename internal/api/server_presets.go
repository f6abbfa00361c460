package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

type presetOutput struct {
	Body *entity.GroupPreset
}

func registerPresetHandlers(api huma.API, deps Deps) {
	type listPresetsOutput struct {
		Body struct {
			Presets []*entity.GroupPreset `json:"presets"`
		}
	}
	huma.Register(api, huma.Operation{OperationID: "list-presets", Method: http.MethodGet, Path: "/api/v1/presets", Summary: "List saved group presets", Tags: []string{"Presets"}},
		func(ctx context.Context, input *struct{}) (*listPresetsOutput, error) {
			presets, err := deps.Presets.List(ctx)
			if err != nil {
				return nil, mapErr(err)
			}
			out := &listPresetsOutput{}
			out.Body.Presets = presets
			return out, nil
		})

	type presetNameInput struct {
		Name string `path:"name"`
	}

	huma.Register(api, huma.Operation{OperationID: "get-preset", Method: http.MethodGet, Path: "/api/v1/presets/{name}", Summary: "Get a group preset", Tags: []string{"Presets"}},
		func(ctx context.Context, input *presetNameInput) (*presetOutput, error) {
			preset, err := deps.Presets.Get(ctx, input.Name)
			if err != nil {
				return nil, mapErr(err)
			}
			return &presetOutput{Body: preset}, nil
		})

	huma.Register(api, huma.Operation{OperationID: "save-preset", Method: http.MethodPut, Path: "/api/v1/presets/{name}", Summary: "Create or replace a group preset", Tags: []string{"Presets"}},
		func(ctx context.Context, input *struct {
			presetNameInput
			Body struct {
				Title string `json:"title"`
				Color string `json:"color" required:"true"`
			}
		}) (*presetOutput, error) {
			color, err := entity.ParseGroupColor(input.Body.Color)
			if err != nil {
				return nil, mapErr(err)
			}
			preset := &entity.GroupPreset{Name: input.Name, Title: input.Body.Title, Color: color}
			if err := deps.Presets.Save(ctx, preset); err != nil {
				return nil, mapErr(err)
			}
			return &presetOutput{Body: preset}, nil
		})

	huma.Register(api, huma.Operation{OperationID: "delete-preset", Method: http.MethodDelete, Path: "/api/v1/presets/{name}", Summary: "Delete a group preset", Tags: []string{"Presets"}, DefaultStatus: http.StatusNoContent},
		func(ctx context.Context, input *presetNameInput) (*struct{}, error) {
			if err := deps.Presets.Delete(ctx, input.Name); err != nil {
				return nil, mapErr(err)
			}
			return nil, nil
		})
}
