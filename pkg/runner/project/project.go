// Package project provides the runner for listing, creating, and selecting
// projects.
package project

import (
	"context"
	"errors"

	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
	modelproject "github.com/spina95/time-blocking/pkg/project"
)

type Project struct {
	List      bool
	ListIcons bool
	Select    int64

	Name  string
	Icon  string
	Color string

	Planner *planner.Planner
}

func (n *Project) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not manage projects, no planner")
	}

	pp := printers.PrettyPrint{}

	if n.ListIcons {
		pp.NewLine()
		pp.Icons(modelproject.AvailableIcons())
		return nil
	}

	if n.Select != 0 {
		if err := n.Planner.Projects().Select(n.Select); err != nil {
			return err
		}
	}

	if n.Name != "" {
		if _, err := n.Planner.Projects().Add(n.Name, n.Icon, n.Color); err != nil {
			return err
		}
	}

	pp.NewLine()
	pp.Title("Projects")
	pp.Projects(n.Planner.Projects().SelectedID(), n.Planner.Projects().Projects()...)

	return nil
}
