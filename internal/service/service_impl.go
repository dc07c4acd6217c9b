package service

import (
	"context"
	"strings"

	"github.com/alimikegami/toy-town/config"
	"github.com/alimikegami/toy-town/internal/domain"
	"github.com/alimikegami/toy-town/internal/dto"
	"github.com/alimikegami/toy-town/internal/repository"
	pkgdto "github.com/alimikegami/toy-town/pkg/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	sortByAscending  = "ascending"
	sortByDescending = "descending"
)

type ToyServiceImpl struct {
	repo      repository.ToyRepository
	config    config.CatalogConfig
	publisher EventPublisher
}

func CreateToyService(repo repository.ToyRepository, config config.CatalogConfig, publisher EventPublisher) ToyService {
	return &ToyServiceImpl{repo: repo, config: config, publisher: publisher}
}

func (s *ToyServiceImpl) AddToy(ctx context.Context, data dto.ToyRequest) (result dto.InsertToyResponse, err error) {
	toy := domain.Toy{
		Name:        data.Name,
		Category:    data.Category,
		Price:       priceValue(data.Price),
		Quantity:    quantityValue(data.Quantity),
		Description: data.Description,
		Image:       data.Image,
		SellerUID:   data.SellerUID,
	}

	id, err := s.repo.AddToy(ctx, toy)
	if err != nil {
		return
	}

	toy.ID = id
	s.publish(ctx, id, dto.KafkaMessage{EventType: dto.EventToyCreated, Data: toy})

	return dto.InsertToyResponse{Acknowledged: true, InsertedID: id}, nil
}

func (s *ToyServiceImpl) GetToys(ctx context.Context, filter pkgdto.Filter) (data []domain.Toy, err error) {
	filter.Limit = s.pageLimit(filter.Limit, s.config.ToysPageLimit)

	return s.repo.GetToys(ctx, filter)
}

func (s *ToyServiceImpl) SearchToys(ctx context.Context, fragment string) (data []domain.Toy, err error) {
	return s.repo.SearchToys(ctx, fragment)
}

func (s *ToyServiceImpl) GetToyByID(ctx context.Context, id string) (toy *domain.Toy, err error) {
	return s.repo.GetToyByID(ctx, id)
}

func (s *ToyServiceImpl) GetToysBySeller(ctx context.Context, sellerUID string, filter pkgdto.Filter) (data []domain.Toy, err error) {
	return s.repo.GetToysBySeller(ctx, sellerUID, sortDirection(filter.SortBy))
}

// GetToysByCategory caps the result at CATEGORY_LIMIT unless the caller asks
// for another limit. A zero category limit means no cap.
func (s *ToyServiceImpl) GetToysByCategory(ctx context.Context, category string, filter pkgdto.Filter) (data []domain.Toy, err error) {
	filter.Limit = s.pageLimit(filter.Limit, s.config.CategoryLimit)
	filter.Page = 0

	return s.repo.GetToysByCategory(ctx, category, filter)
}

func (s *ToyServiceImpl) PutToy(ctx context.Context, data dto.ToyPutRequest) (result dto.PutToyResponse, err error) {
	toy := domain.Toy{
		Name:        data.Name,
		Category:    data.Category,
		Price:       priceValue(data.Price),
		Quantity:    quantityValue(data.Quantity),
		Description: stringValue(data.Description),
		Image:       stringValue(data.Image),
	}

	result, err = s.repo.PutToy(ctx, data.ID, toy)
	if err != nil {
		return
	}

	// the repository already accepted the identifier
	id, _ := primitive.ObjectIDFromHex(data.ID)
	s.publish(ctx, id, dto.KafkaMessage{
		EventType: dto.EventToyUpdated,
		Data: dto.ToyUpdated{
			ID:          id,
			Name:        toy.Name,
			Category:    toy.Category,
			Price:       toy.Price,
			Quantity:    int64(toy.Quantity),
			Description: toy.Description,
			Image:       toy.Image,
		},
	})

	return result, nil
}

func (s *ToyServiceImpl) DeleteToy(ctx context.Context, id string) (result dto.DeleteToyResponse, err error) {
	result, err = s.repo.DeleteToy(ctx, id)
	if err != nil {
		return
	}

	if result.DeletedCount > 0 {
		toyID, _ := primitive.ObjectIDFromHex(id)
		s.publish(ctx, toyID, dto.KafkaMessage{EventType: dto.EventToyDeleted, Data: dto.ToyDeleted{ID: toyID}})
	}

	return result, nil
}

// publish never fails the caller: the write it reports is already committed.
func (s *ToyServiceImpl) publish(ctx context.Context, id primitive.ObjectID, msg dto.KafkaMessage) {
	if err := s.publisher.Publish(ctx, id.Hex(), msg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publish").Str("event_type", msg.EventType).Str("id", id.Hex()).Msg("Failed to publish toy event")
	}
}

// pageLimit resolves a requested limit against a fallback and MAX_PAGE_LIMIT.
// Zero means unbounded.
func (s *ToyServiceImpl) pageLimit(requested int, fallback int) int {
	limit := requested
	if limit <= 0 {
		limit = fallback
	}

	if s.config.MaxPageLimit > 0 && limit > s.config.MaxPageLimit {
		limit = s.config.MaxPageLimit
	}

	if limit < 0 {
		return 0
	}
	return limit
}

func sortDirection(sortBy string) int {
	switch strings.ToLower(sortBy) {
	case sortByAscending:
		return repository.SortAscending
	case sortByDescending:
		return repository.SortDescending
	default:
		return repository.SortNone
	}
}

func priceValue(p *dto.Price) float64 {
	if p == nil {
		return 0
	}
	return float64(*p)
}

func quantityValue(q *dto.Quantity) domain.Quantity {
	if q == nil {
		return 0
	}
	return domain.Quantity(*q)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type BlogServiceImpl struct {
	repo repository.BlogRepository
}

func CreateBlogService(repo repository.BlogRepository) BlogService {
	return &BlogServiceImpl{repo: repo}
}

func (s *BlogServiceImpl) GetBlogs(ctx context.Context) (data []domain.Blog, err error) {
	return s.repo.GetBlogs(ctx)
}
