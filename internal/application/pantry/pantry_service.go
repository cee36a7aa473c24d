package pantry

import (
	"context"

	"github.com/vibecoders/backend/internal/domain/pantry"
)

// PantryService handles per-user pantry items under upsert-by-key
// semantics
type PantryService struct {
	itemRepo pantry.PantryItemRepository
}

// NewPantryService creates a new PantryService
func NewPantryService(itemRepo pantry.PantryItemRepository) *PantryService {
	return &PantryService{itemRepo: itemRepo}
}

// List returns a user's pantry items ordered by name
func (s *PantryService) List(ctx context.Context, userID string) ([]PantryItemResponse, error) {
	items, err := s.itemRepo.FindByUser(ctx, normalizeUser(userID))
	if err != nil {
		return nil, err
	}

	responses := make([]PantryItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToPantryItemResponse(&items[i]))
	}
	return responses, nil
}

// Save upserts one pantry item by its (user, name) key and returns the
// resulting row
func (s *PantryService) Save(ctx context.Context, req SavePantryItemRequest) (*PantryItemResponse, error) {
	item, err := pantry.NewPantryItem(req.UserID, req.Name, req.Quantity, req.Price, req.Unit)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	response := ToPantryItemResponse(item)
	return &response, nil
}

// SaveBatch upserts items one by one in request order. Elements commit
// independently; on failure the already-saved items stay saved and the
// first failing element's error is returned along with them.
func (s *PantryService) SaveBatch(ctx context.Context, req SavePantryItemsBatchRequest) ([]PantryItemResponse, error) {
	saved := make([]PantryItemResponse, 0, len(req.Items))
	for _, itemReq := range req.Items {
		resp, err := s.Save(ctx, itemReq)
		if err != nil {
			return saved, err
		}
		saved = append(saved, *resp)
	}
	return saved, nil
}

// Delete removes one pantry item by its (user, name) key
func (s *PantryService) Delete(ctx context.Context, userID, name string) error {
	return s.itemRepo.DeleteByUserAndName(ctx, normalizeUser(userID), name)
}
