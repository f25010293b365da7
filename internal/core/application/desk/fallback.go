package desk

import (
	"context"
	"fmt"
	"strings"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"
)

// FallbackPolicy decides which upstream failures move the fetch chain on to
// its next strategy.
type FallbackPolicy string

const (
	// FallbackOnAnyError falls back on every failure.
	FallbackOnAnyError FallbackPolicy = "any"
	// FallbackOnAuthorization falls back only on upstream 401 and 403 answers.
	FallbackOnAuthorization FallbackPolicy = "authorization"
)

// ParseFallbackPolicy reads a policy name. The empty string selects FallbackOnAnyError.
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch p := FallbackPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return FallbackOnAnyError, nil
	case FallbackOnAnyError, FallbackOnAuthorization:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("fallbackPolicy", fmt.Errorf("%q is not a valid policy", s))
	}
}

func (p FallbackPolicy) allows(err error) bool {
	if p == FallbackOnAuthorization {
		return errs.IsAuthorization(err)
	}
	return true
}

type fetchStrategy struct {
	name  string
	fetch func(ctx context.Context) ([]shipment.Shipment, error)
}

// strategiesFor returns the fetch chain of a role, most privileged first.
func strategiesFor(user principal.User, packages ports.PackageService, pageSize int) []fetchStrategy {
	mine := fetchStrategy{
		name: "my-packages",
		fetch: func(ctx context.Context) ([]shipment.Shipment, error) {
			return packages.GetMyPackages(ctx)
		},
	}
	if !user.IsAdmin() {
		return []fetchStrategy{mine}
	}

	all := fetchStrategy{
		name: "all-packages",
		fetch: func(ctx context.Context) ([]shipment.Shipment, error) {
			page, err := packages.GetAllPackages(ctx, pageSize)
			if err != nil {
				return nil, err
			}
			return page.Content, nil
		},
	}
	return []fetchStrategy{all, mine}
}
