package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spina95/time-blocking/pkg/regroup"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCreateTaskTool(srv, svc)
	registerListTasksTool(srv, svc)
	registerPlaceTaskTool(srv, svc)
	registerCompleteTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerUpdateDurationTool(srv, svc)
	registerMoveTaskTool(srv, svc)
	registerListProjectsTool(srv, svc)
	registerCreateProjectTool(srv, svc)
	registerSelectProjectTool(srv, svc)
	registerListEventsTool(srv, svc)
}

func registerCreateTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_task",
		mcp.WithDescription("Create a new task, optionally placing it on the calendar."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title."),
		),
		mcp.WithNumber("duration",
			mcp.Description("Duration in fractional hours; defaults when omitted."),
		),
		mcp.WithString("priority",
			mcp.Description("Task priority."),
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithString("deadline",
			mcp.Description("Optional RFC3339 deadline."),
		),
		mcp.WithString("category",
			mcp.Description("Category used to group the task in the list."),
		),
		mcp.WithString("recurrence",
			mcp.Description("Recurrence rule; daily expands 30 occurrences, weekly and monthly 12."),
			mcp.Enum("none", "daily", "weekly", "monthly"),
		),
		mcp.WithString("start",
			mcp.Description("Optional RFC3339 start; placing the task creates calendar blocks."),
		),
		mcp.WithString("end",
			mcp.Description("Optional RFC3339 end for the placed block."),
		),
		mcp.WithBoolean("all_day",
			mcp.Description("Place the task as an all-day block."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title      string  `json:"title"`
			Duration   float64 `json:"duration"`
			Priority   string  `json:"priority"`
			Deadline   string  `json:"deadline"`
			Category   string  `json:"category"`
			Recurrence string  `json:"recurrence"`
			Start      string  `json:"start"`
			End        string  `json:"end"`
			AllDay     bool    `json:"all_day"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		opts := CreateTaskOptions{
			Title:      args.Title,
			Duration:   args.Duration,
			Priority:   args.Priority,
			Category:   args.Category,
			Recurrence: args.Recurrence,
			AllDay:     args.AllDay,
		}

		if strings.TrimSpace(args.Deadline) != "" {
			when, err := time.Parse(time.RFC3339, args.Deadline)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid deadline: %v", err)), nil
			}
			opts.Deadline = &when
		}
		if strings.TrimSpace(args.Start) != "" {
			when, err := time.Parse(time.RFC3339, args.Start)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid start: %v", err)), nil
			}
			opts.Start = &when
		}
		if strings.TrimSpace(args.End) != "" {
			when, err := time.Parse(time.RFC3339, args.End)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid end: %v", err)), nil
			}
			opts.End = &when
		}

		dto, err := svc.CreateTask(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List tasks grouped by category."),
		mcp.WithBoolean("all",
			mcp.Description("Include tasks from every project, not just the selected one."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groups, err := svc.ListTasks(ctx, request.GetBool("all", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"groups": groups,
			"count":  len(groups),
		})
	})
}

func registerPlaceTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"place_task",
		mcp.WithDescription("Drop an existing task onto the calendar. Recurring tasks expand into their full series."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Task identifier to place."),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("RFC3339 start of the block."),
		),
		mcp.WithString("end",
			mcp.Description("Optional RFC3339 end; omitted, the task's own duration sizes the block."),
		),
		mcp.WithBoolean("all_day",
			mcp.Description("Place as an all-day block."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		startRaw, err := request.RequireString("start")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		start, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid start: %v", err)), nil
		}

		var end *time.Time
		if raw := request.GetString("end", ""); raw != "" {
			when, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid end: %v", err)), nil
			}
			end = &when
		}

		events, err := svc.PlaceTask(ctx, int64(id), start, end, request.GetBool("all_day", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"events": events,
			"count":  len(events),
		})
	})
}

func registerCompleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"complete_task",
		mcp.WithDescription("Set the completion state of a task and its linked calendar blocks."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
		mcp.WithBoolean("done",
			mcp.Description("Completion state to apply; defaults to true."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.CompleteTask(ctx, int64(id), request.GetBool("done", true))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task and every calendar block scheduled from it."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Task identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteTask(ctx, int64(id)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": id})
	})
}

func registerUpdateDurationTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_duration",
		mcp.WithDescription("Change a task's duration; the first linked block keeps its start and adopts the new span."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
		mcp.WithNumber("hours",
			mcp.Required(),
			mcp.Description("New duration in fractional hours."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		hours, err := request.RequireFloat("hours")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.UpdateDuration(ctx, int64(id), hours)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Move a task within the grouped list; crossing categories regroups it."),
		mcp.WithString("from_category",
			mcp.Required(),
			mcp.Description("Category the task is currently shown under."),
		),
		mcp.WithNumber("from_index",
			mcp.Required(),
			mcp.Description("Position of the task within its category."),
		),
		mcp.WithString("to_category",
			mcp.Required(),
			mcp.Description("Destination category."),
		),
		mcp.WithNumber("to_index",
			mcp.Required(),
			mcp.Description("Destination position within the category."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fromCat, err := request.RequireString("from_category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		fromIdx, err := request.RequireInt("from_index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		toCat, err := request.RequireString("to_category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		toIdx, err := request.RequireInt("to_index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		groups, err := svc.MoveTask(ctx,
			regroup.Position{Category: fromCat, Index: fromIdx},
			regroup.Position{Category: toCat, Index: toIdx},
		)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"groups": groups})
	})
}

func registerListProjectsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_projects",
		mcp.WithDescription("List every project, flagging the selected one."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projects, err := svc.ListProjects(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"projects": projects,
			"count":    len(projects),
		})
	})
}

func registerCreateProjectTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_project",
		mcp.WithDescription("Create a project with an icon and a hex color."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name."),
		),
		mcp.WithString("icon",
			mcp.Required(),
			mcp.Description("Icon name from the project icon catalog."),
		),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Hex color like #1677ff."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		icon, err := request.RequireString("icon")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		color, err := request.RequireString("color")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.CreateProject(ctx, name, icon, color)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSelectProjectTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_project",
		mcp.WithDescription("Switch the active project; task listings follow it."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Project identifier to select."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.SelectProject(ctx, int64(id)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		projects, err := svc.ListProjects(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"projects": projects})
	})
}

func registerListEventsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_events",
		mcp.WithDescription("List every scheduled calendar block."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		events, err := svc.ListEvents(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"events": events,
			"count":  len(events),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
