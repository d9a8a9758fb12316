package menu

import (
	"context"
	"fmt"

	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

type menuSource interface {
	SidebarMenu(ctx context.Context) ([]upstream.SidebarItem, error)
}

// Service serves the navigation tree for the register UI.
type Service interface {
	// Sidebar returns the menu for the current operator. A platform
	// failure yields an empty menu rather than an error so the register
	// shell still loads.
	Sidebar(ctx context.Context) []upstream.SidebarItem
}

type service struct {
	source menuSource
	logg   *logger.Logger
}

// NewService builds the menu service.
func NewService(source menuSource, logg *logger.Logger) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("menu source required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{source: source, logg: logg}, nil
}

func (s *service) Sidebar(ctx context.Context) []upstream.SidebarItem {
	items, err := s.source.SidebarMenu(ctx)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "sidebar menu unavailable, serving empty menu")
		return []upstream.SidebarItem{}
	}
	if items == nil {
		items = []upstream.SidebarItem{}
	}
	return items
}
