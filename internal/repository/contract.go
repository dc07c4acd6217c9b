package repository

import (
	"context"

	"github.com/alimikegami/toy-town/internal/domain"
	"github.com/alimikegami/toy-town/internal/dto"
	pkgdto "github.com/alimikegami/toy-town/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SortNone       = 0
	SortAscending  = 1
	SortDescending = -1
)

type ToyRepository interface {
	AddToy(ctx context.Context, data domain.Toy) (id primitive.ObjectID, err error)
	GetToys(ctx context.Context, filter pkgdto.Filter) (data []domain.Toy, err error)
	SearchToys(ctx context.Context, fragment string) (data []domain.Toy, err error)
	// GetToyByID returns nil without an error when no toy has the identifier.
	GetToyByID(ctx context.Context, id string) (toy *domain.Toy, err error)
	GetToysBySeller(ctx context.Context, sellerUID string, sortDirection int) (data []domain.Toy, err error)
	GetToysByCategory(ctx context.Context, category string, filter pkgdto.Filter) (data []domain.Toy, err error)
	PutToy(ctx context.Context, id string, data domain.Toy) (result dto.PutToyResponse, err error)
	DeleteToy(ctx context.Context, id string) (result dto.DeleteToyResponse, err error)
}

type BlogRepository interface {
	GetBlogs(ctx context.Context) (data []domain.Blog, err error)
}
