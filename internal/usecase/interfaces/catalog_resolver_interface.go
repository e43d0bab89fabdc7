package interfaces

import (
	"context"
	"errors"

	"claimscope/internal/domain/entities"
)

var ErrCatalogItemNotFound = errors.New("catalog item not found")

// ICatalogResolver looks up the regional unit price of a repair code.
//
// A carrier specific price wins over the regional default. Unknown codes fail with
// ErrCatalogItemNotFound.
type ICatalogResolver interface {
	ResolvePrice(ctx context.Context, code, regionID string, carrierProfileID *string) (entities.CatalogPrice, error)
}
