// Package catalog fetches the raw equipment catalogs from their
// upstream source and converts them into domain catalogs.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/SoerenD/equipment-calculator-web/internal/clients/catalog Client

import (
	"context"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// Client fetches a fresh set of the five equipment catalogs. Returned
// catalogs always carry the sentinel item first in every slot.
type Client interface {
	FetchCatalogs(ctx context.Context) (*equipment.Catalogs, error)
}
