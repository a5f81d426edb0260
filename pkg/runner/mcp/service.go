// Package mcp exposes the planner over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/regroup"
	"github.com/spina95/time-blocking/pkg/store"
	"github.com/spina95/time-blocking/pkg/task"
)

// Service coordinates planner-backed operations shared by the MCP server.
type Service struct {
	Planner *planner.Planner
}

// NewService builds a service wrapper over the provided planner.
func NewService(p *planner.Planner) *Service {
	return &Service{Planner: p}
}

// CreateTaskOptions captures the parameters used to create a new task.
type CreateTaskOptions struct {
	Title      string
	Duration   float64
	Priority   string
	Deadline   *time.Time
	Category   string
	Recurrence string

	Start  *time.Time
	End    *time.Time
	AllDay bool
}

// TodoDTO is a transport-friendly projection of a todo.
type TodoDTO struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	DurationHours float64 `json:"durationHours"`
	Priority      string  `json:"priority"`
	Completed     bool    `json:"completed"`
	Deadline      string  `json:"deadline,omitempty"`
	Category      string  `json:"category"`
	Recurrence    string  `json:"recurrence,omitempty"`
	ProjectID     int64   `json:"projectId"`
}

// EventDTO is a transport-friendly projection of a calendar event.
type EventDTO struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end,omitempty"`
	AllDay          bool   `json:"allDay,omitempty"`
	TodoID          int64  `json:"todoId,omitempty"`
	Completed       bool   `json:"completed"`
	RecurrenceIndex *int   `json:"recurrenceIndex,omitempty"`
}

// ProjectDTO is a transport-friendly projection of a project.
type ProjectDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Selected bool   `json:"selected"`
}

// GroupDTO is one category of the grouped task list.
type GroupDTO struct {
	Category string    `json:"category"`
	Tasks    []TodoDTO `json:"tasks"`
}

// CreateTask stores a new task, optionally placing it on the calendar.
func (s *Service) CreateTask(ctx context.Context, opts CreateTaskOptions) (*TodoDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}

	priority, err := parsePriority(opts.Priority)
	if err != nil {
		return nil, err
	}
	recurrence, err := parseRecurrence(opts.Recurrence)
	if err != nil {
		return nil, err
	}

	var placement *store.Placement
	if opts.Start != nil {
		end := opts.Start.Add(time.Hour)
		if opts.End != nil {
			end = *opts.End
		}
		placement = &store.Placement{Start: *opts.Start, End: end, AllDay: opts.AllDay}
	}

	created, err := s.Planner.Todos().CreateWithPlacement(store.TodoInput{
		Title:      opts.Title,
		Duration:   opts.Duration,
		Priority:   priority,
		Deadline:   opts.Deadline,
		Category:   opts.Category,
		Recurrence: recurrence,
	}, placement)
	if err != nil {
		return nil, err
	}

	dto := toTodoDTO(created)
	return &dto, nil
}

// ListTasks returns the grouped task list for the selected project, or for
// every project when all is set.
func (s *Service) ListTasks(ctx context.Context, all bool) ([]GroupDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}

	todos := s.Planner.Todos().ForSelectedProject()
	if all {
		todos = s.Planner.Todos().Todos()
	}

	groups := regroup.ByCategory(todos)
	out := make([]GroupDTO, 0, len(groups))
	for _, g := range groups {
		dto := GroupDTO{Category: g.Category, Tasks: make([]TodoDTO, 0, len(g.Todos))}
		for _, t := range g.Todos {
			dto.Tasks = append(dto.Tasks, toTodoDTO(t))
		}
		out = append(out, dto)
	}
	return out, nil
}

// PlaceTask drops an existing task onto the calendar and returns the blocks
// it produced.
func (s *Service) PlaceTask(ctx context.Context, id int64, start time.Time, end *time.Time, allDay bool) ([]EventDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}

	t, ok := s.Planner.Todos().Get(id)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, store.ErrNotFound)
	}

	s.Planner.ExternalItemDropped(calendar.ExternalDrop{
		TodoID: t.ID,
		Title:  t.Title,
		Start:  start,
		End:    end,
		AllDay: allDay,
	})

	return toEventDTOs(s.Planner.Events().ByTodo(t.ID)), nil
}

// CompleteTask sets the completion state of a task and its linked blocks.
func (s *Service) CompleteTask(ctx context.Context, id int64, done bool) (*TodoDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}
	if err := s.Planner.Todos().UpdateCompletion(id, done); err != nil {
		return nil, err
	}
	t, ok := s.Planner.Todos().Get(id)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, store.ErrNotFound)
	}
	dto := toTodoDTO(t)
	return &dto, nil
}

// DeleteTask removes a task and every block scheduled from it.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if s.Planner == nil {
		return errors.New("planner is not configured")
	}
	return s.Planner.Todos().Delete(id)
}

// UpdateDuration changes a task's duration; the first linked block keeps its
// start and adopts the new exact span.
func (s *Service) UpdateDuration(ctx context.Context, id int64, hours float64) (*TodoDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}
	if err := s.Planner.Todos().UpdateDuration(id, hours); err != nil {
		return nil, err
	}
	t, ok := s.Planner.Todos().Get(id)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, store.ErrNotFound)
	}
	dto := toTodoDTO(t)
	return &dto, nil
}

// MoveTask regroups a task within the grouped list.
func (s *Service) MoveTask(ctx context.Context, from, to regroup.Position) ([]GroupDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}
	if err := s.Planner.MoveTodo(from, to); err != nil {
		return nil, err
	}
	return s.ListTasks(ctx, false)
}

// ListProjects returns every project, flagging the selected one.
func (s *Service) ListProjects(ctx context.Context) ([]ProjectDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}
	selected := s.Planner.Projects().SelectedID()
	projects := s.Planner.Projects().Projects()
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectDTO{
			ID:       p.ID,
			Name:     p.Name,
			Icon:     p.Icon,
			Color:    p.Color,
			Selected: p.ID == selected,
		})
	}
	return out, nil
}

// CreateProject adds a project to the catalog.
func (s *Service) CreateProject(ctx context.Context, name, icon, color string) (*ProjectDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}
	p, err := s.Planner.Projects().Add(name, icon, color)
	if err != nil {
		return nil, err
	}
	dto := ProjectDTO{ID: p.ID, Name: p.Name, Icon: p.Icon, Color: p.Color}
	return &dto, nil
}

// SelectProject switches the active project.
func (s *Service) SelectProject(ctx context.Context, id int64) error {
	if s.Planner == nil {
		return errors.New("planner is not configured")
	}
	return s.Planner.Projects().Select(id)
}

// ListEvents returns every scheduled block.
func (s *Service) ListEvents(ctx context.Context) ([]EventDTO, error) {
	if s.Planner == nil {
		return nil, errors.New("planner is not configured")
	}
	return toEventDTOs(s.Planner.Events().Events()), nil
}

func toTodoDTO(t task.Todo) TodoDTO {
	dto := TodoDTO{
		ID:            t.ID,
		Title:         t.Title,
		DurationHours: t.Duration,
		Priority:      string(t.Priority),
		Completed:     t.Completed,
		Category:      t.CategoryOrDefault(),
		ProjectID:     t.ProjectID,
	}
	if t.Deadline != nil {
		dto.Deadline = t.Deadline.Format(time.RFC3339)
	}
	if t.Recurring() {
		dto.Recurrence = string(t.Recurrence)
	}
	return dto
}

func toEventDTOs(events []calendar.Event) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dto := EventDTO{
			ID:              e.ID,
			Title:           e.Title,
			Start:           e.Start.Format(time.RFC3339),
			AllDay:          e.AllDay,
			TodoID:          e.Props.TodoID,
			Completed:       e.Props.Completed,
			RecurrenceIndex: e.Props.RecurrenceIndex,
		}
		if e.End != nil {
			dto.End = e.End.Format(time.RFC3339)
		}
		out = append(out, dto)
	}
	return out
}

func parsePriority(input string) (task.Priority, error) {
	if input == "" {
		return task.PriorityMedium, nil
	}
	return task.ParsePriority(input)
}

func parseRecurrence(input string) (task.Recurrence, error) {
	if input == "" {
		return task.RecurrenceNone, nil
	}
	return task.ParseRecurrence(input)
}
