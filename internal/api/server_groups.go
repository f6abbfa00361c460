package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/logging"
)

type groupIDInput struct {
	ID int64 `path:"id"`
}

type groupOutput struct {
	Body *entity.NativeGroup
}

func registerGroupHandlers(api huma.API, deps Deps) {
	// withGroup resolves the path group against a fresh snapshot.
	withGroup := func(ctx context.Context, id int64, fn func(context.Context, *entity.NativeGroup) error) (*groupOutput, error) {
		ctx = logging.WithGroupID(ctx, id)
		group, err := deps.Snapshots.FindGroup(ctx, entity.GroupID(id))
		if err != nil {
			return nil, mapErr(err)
		}
		if err := fn(ctx, group); err != nil {
			return nil, mapErr(err)
		}
		return &groupOutput{Body: group}, nil
	}

	huma.Register(api, huma.Operation{OperationID: "set-group-collapsed", Method: http.MethodPut, Path: "/api/v1/groups/{id}/collapsed", Summary: "Collapse or expand a group", Tags: []string{"Groups"}},
		func(ctx context.Context, input *struct {
			groupIDInput
			Body struct {
				Collapsed bool `json:"collapsed"`
			}
		}) (*groupOutput, error) {
			return withGroup(ctx, input.ID, func(ctx context.Context, group *entity.NativeGroup) error {
				return deps.Groups.SetCollapsed(ctx, group, input.Body.Collapsed)
			})
		})

	huma.Register(api, huma.Operation{OperationID: "rename-group", Method: http.MethodPut, Path: "/api/v1/groups/{id}/title", Summary: "Rename a group", Tags: []string{"Groups"}},
		func(ctx context.Context, input *struct {
			groupIDInput
			Body struct {
				Title string `json:"title" doc:"Empty clears the title"`
			}
		}) (*groupOutput, error) {
			return withGroup(ctx, input.ID, func(ctx context.Context, group *entity.NativeGroup) error {
				return deps.Groups.Rename(ctx, group, input.Body.Title)
			})
		})

	huma.Register(api, huma.Operation{OperationID: "recolor-group", Method: http.MethodPut, Path: "/api/v1/groups/{id}/color", Summary: "Change a group's color", Tags: []string{"Groups"}},
		func(ctx context.Context, input *struct {
			groupIDInput
			Body struct {
				Color string `json:"color" required:"true"`
			}
		}) (*groupOutput, error) {
			color, err := entity.ParseGroupColor(input.Body.Color)
			if err != nil {
				return nil, mapErr(err)
			}
			return withGroup(ctx, input.ID, func(ctx context.Context, group *entity.NativeGroup) error {
				return deps.Groups.Recolor(ctx, group, color)
			})
		})

	huma.Register(api, huma.Operation{OperationID: "apply-group-preset", Method: http.MethodPost, Path: "/api/v1/groups/{id}/preset/{name}", Summary: "Apply a saved preset to a group", Tags: []string{"Groups", "Presets"}},
		func(ctx context.Context, input *struct {
			groupIDInput
			Name string `path:"name"`
		}) (*groupOutput, error) {
			return withGroup(ctx, input.ID, func(ctx context.Context, group *entity.NativeGroup) error {
				return deps.Presets.ApplyToGroup(ctx, group, input.Name)
			})
		})

	type createGroupOutput struct {
		Body struct {
			GroupID int64 `json:"group_id"`
		}
	}
	huma.Register(api, huma.Operation{OperationID: "create-group", Method: http.MethodPost, Path: "/api/v1/groups", Summary: "Group tabs into a new native group", Tags: []string{"Groups"}, DefaultStatus: http.StatusCreated},
		func(ctx context.Context, input *struct {
			Body struct {
				TabIDs []int64 `json:"tab_ids" required:"true" minItems:"1"`
				Title  string  `json:"title,omitempty"`
				Color  string  `json:"color,omitempty"`
			}
		}) (*createGroupOutput, error) {
			color := deps.DefaultColor
			if input.Body.Color != "" {
				parsed, err := entity.ParseGroupColor(input.Body.Color)
				if err != nil {
					return nil, mapErr(err)
				}
				color = parsed
			}
			title := input.Body.Title
			if title == "" {
				title = deps.DefaultTitle
			}
			ids := make([]entity.TabID, 0, len(input.Body.TabIDs))
			for _, id := range input.Body.TabIDs {
				ids = append(ids, entity.TabID(id))
			}

			groupID, err := deps.Groups.CreateGroup(ctx, ids, title, color)
			if err != nil {
				return nil, mapErr(err)
			}
			out := &createGroupOutput{}
			out.Body.GroupID = int64(groupID)
			return out, nil
		})
}
