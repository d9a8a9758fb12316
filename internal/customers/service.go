package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/paypointhq/pos-register/pkg/upstream"
)

type directorySource interface {
	ListCustomers(ctx context.Context, page int) (*upstream.CustomerPage, error)
}

// Service exposes the platform customer directory to the register.
type Service interface {
	Page(ctx context.Context, page int, search string) (*upstream.CustomerPage, error)
}

type service struct {
	source directorySource
}

// NewService builds the customer directory service.
func NewService(source directorySource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("directory source required")
	}
	return &service{source: source}, nil
}

// Page returns one page of customers. The search filter is applied on the
// page the platform returned, matching name, email, and phone.
func (s *service) Page(ctx context.Context, page int, search string) (*upstream.CustomerPage, error) {
	result, err := s.source.ListCustomers(ctx, page)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return result, nil
	}
	matched := make([]upstream.Customer, 0, len(result.Data))
	for _, c := range result.Data {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(c.Phone, needle) {
			matched = append(matched, c)
		}
	}
	filtered := *result
	filtered.Data = matched
	return &filtered, nil
}
