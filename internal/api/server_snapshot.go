package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

type healthOutput struct {
	Body struct {
		Status       string `json:"status"`
		ReorderState string `json:"reorder_state"`
		DropBusy     bool   `json:"drop_busy"`
	}
}

func registerHealthHandlers(api huma.API, deps Deps) {
	huma.Register(api, huma.Operation{OperationID: "health", Method: http.MethodGet, Path: "/health", Summary: "Health check", Tags: []string{"Health"}},
		func(ctx context.Context, input *struct{}) (*healthOutput, error) {
			out := &healthOutput{}
			out.Body.Status = "ok"
			out.Body.ReorderState = deps.Reorder.State().String()
			out.Body.DropBusy = deps.Drops.Busy()
			return out, nil
		})
}

func registerSnapshotHandlers(api huma.API, deps Deps) {
	type domainSnapshotOutput struct {
		Body struct {
			Domains []*entity.DomainGroup `json:"domains"`
		}
	}
	huma.Register(api, huma.Operation{OperationID: "snapshot-domains", Method: http.MethodGet, Path: "/api/v1/snapshot/domains", Summary: "Group current window tabs by domain", Tags: []string{"Snapshot"}},
		func(ctx context.Context, input *struct{}) (*domainSnapshotOutput, error) {
			domains, err := deps.Snapshots.BuildDomainSnapshot(ctx)
			if err != nil {
				return nil, mapErr(err)
			}
			out := &domainSnapshotOutput{}
			out.Body.Domains = domains
			return out, nil
		})

	type groupSnapshotOutput struct {
		Body *entity.CustomSnapshot
	}
	huma.Register(api, huma.Operation{OperationID: "snapshot-groups", Method: http.MethodGet, Path: "/api/v1/snapshot/groups", Summary: "List native groups with their tabs", Tags: []string{"Snapshot"}},
		func(ctx context.Context, input *struct{}) (*groupSnapshotOutput, error) {
			snapshot, err := deps.Snapshots.BuildCustomSnapshot(ctx)
			if err != nil {
				return nil, mapErr(err)
			}
			return &groupSnapshotOutput{Body: snapshot}, nil
		})
}
