package service

import (
	"context"

	"github.com/alimikegami/toy-town/internal/domain"
	"github.com/alimikegami/toy-town/internal/dto"
	pkgdto "github.com/alimikegami/toy-town/pkg/dto"
)

type ToyService interface {
	AddToy(ctx context.Context, data dto.ToyRequest) (result dto.InsertToyResponse, err error)
	GetToys(ctx context.Context, filter pkgdto.Filter) (data []domain.Toy, err error)
	SearchToys(ctx context.Context, fragment string) (data []domain.Toy, err error)
	GetToyByID(ctx context.Context, id string) (toy *domain.Toy, err error)
	GetToysBySeller(ctx context.Context, sellerUID string, filter pkgdto.Filter) (data []domain.Toy, err error)
	GetToysByCategory(ctx context.Context, category string, filter pkgdto.Filter) (data []domain.Toy, err error)
	PutToy(ctx context.Context, data dto.ToyPutRequest) (result dto.PutToyResponse, err error)
	DeleteToy(ctx context.Context, id string) (result dto.DeleteToyResponse, err error)
}

type BlogService interface {
	GetBlogs(ctx context.Context) (data []domain.Blog, err error)
}

// EventPublisher delivers toy events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}
