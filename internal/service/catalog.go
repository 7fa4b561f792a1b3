package service

import (
	"errors"

	"github.com/lib/pq"

	"restomanage/internal/domain"
)

var (
	ErrNameRequired = errors.New("name is required")

	// Returned when a catalog row is still referenced by order items.
	ErrDishInUse   = errors.New("dish is referenced by existing orders")
	ErrClientInUse = errors.New("client is referenced by existing orders")
)

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

type DishService struct {
	repo DishRepository
}

func NewDishService(repo DishRepository) *DishService {
	return &DishService{repo: repo}
}

func (s *DishService) Create(dish *domain.Dish) error {
	if dish.Name == "" {
		return ErrNameRequired
	}
	return s.repo.CreateDish(dish)
}

func (s *DishService) List(filter domain.DishFilter) ([]domain.Dish, error) {
	filter.Limit = clampLimit(filter.Limit, 50, 200)
	filter.Offset = clampOffset(filter.Offset)
	return s.repo.ListDishes(filter)
}

func (s *DishService) Get(id int) (*domain.Dish, error) {
	return s.repo.GetDish(id)
}

func (s *DishService) Patch(id int, patch domain.DishPatch) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		dish.Name = *patch.Name
	}
	if patch.Price != nil {
		dish.Price = *patch.Price
	}
	if patch.Calories != nil {
		dish.Calories = patch.Calories
	}
	if patch.PortionGrams != nil {
		dish.PortionGrams = patch.PortionGrams
	}
	if patch.Category != nil {
		dish.Category = patch.Category
	}
	if patch.Meta != nil {
		dish.Meta = patch.Meta
	}
	if err := s.repo.UpdateDish(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) Delete(id int) error {
	rows, err := s.repo.DeleteDish(id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrDishInUse
		}
		return err
	}
	if rows == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

var _ DishServiceInterface = (*DishService)(nil)

type ClientService struct {
	repo ClientRepository
}

func NewClientService(repo ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(client *domain.Client) error {
	if client.FullName == "" {
		return ErrNameRequired
	}
	return s.repo.CreateClient(client)
}

func (s *ClientService) List(filter domain.ClientFilter) ([]domain.Client, error) {
	filter.Limit = clampLimit(filter.Limit, 50, 200)
	filter.Offset = clampOffset(filter.Offset)
	return s.repo.ListClients(filter)
}

func (s *ClientService) Get(id int) (*domain.Client, error) {
	return s.repo.GetClient(id)
}

func (s *ClientService) Patch(id int, patch domain.ClientPatch) (*domain.Client, error) {
	client, err := s.repo.GetClient(id)
	if err != nil {
		return nil, err
	}
	if patch.FullName != nil {
		client.FullName = *patch.FullName
	}
	if patch.Age != nil {
		client.Age = patch.Age
	}
	if patch.WeightKg != nil {
		client.WeightKg = patch.WeightKg
	}
	if patch.Organization != nil {
		client.Organization = patch.Organization
	}
	if patch.Preferences != nil {
		client.Preferences = patch.Preferences
	}
	if err := s.repo.UpdateClient(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(id int) error {
	rows, err := s.repo.DeleteClient(id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrClientInUse
		}
		return err
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

var _ ClientServiceInterface = (*ClientService)(nil)
