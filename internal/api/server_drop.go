package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/logging"
)

type dropInput struct {
	Body struct {
		TabID         int64  `json:"tab_id" required:"true"`
		SourceGroupID int64  `json:"source_group_id" required:"true" doc:"-1 for ungrouped"`
		TargetGroupID int64  `json:"target_group_id" required:"true" doc:"-1 for ungrouped"`
		TargetIndex   *int   `json:"target_index,omitempty" doc:"Position in the target bucket; omit for a container drop"`
		Side          string `json:"side,omitempty" enum:"before,after" default:"before"`
	}
}

type dropOutput struct {
	Body *usecase.DropResult
}

func registerDropHandlers(api huma.API, deps Deps) {
	huma.Register(api, huma.Operation{OperationID: "drop-tab", Method: http.MethodPost, Path: "/api/v1/drop", Summary: "Apply a tab drop", Tags: []string{"Reorder"}},
		func(ctx context.Context, input *dropInput) (*dropOutput, error) {
			side, err := entity.ParseInsertionSide(input.Body.Side)
			if err != nil {
				return nil, huma.Error400BadRequest(err.Error())
			}
			targetIndex := entity.NoTargetIndex
			if input.Body.TargetIndex != nil {
				targetIndex = *input.Body.TargetIndex
			}
			drag := entity.DragContext{
				Tab:           &entity.Tab{ID: entity.TabID(input.Body.TabID), GroupID: entity.GroupID(input.Body.SourceGroupID)},
				SourceGroupID: entity.GroupID(input.Body.SourceGroupID),
				TargetGroupID: entity.GroupID(input.Body.TargetGroupID),
				TargetIndex:   targetIndex,
				Side:          side,
			}
			ctx = logging.WithTabID(ctx, input.Body.TabID)

			result, err := deps.Drops.TryDrop(ctx, drag)
			if err != nil {
				return nil, mapErr(err)
			}
			return &dropOutput{Body: result}, nil
		})
}
