package pantry

import (
	"context"

	"github.com/vibecoders/backend/internal/domain/pantry"
	"github.com/vibecoders/backend/internal/domain/shared"
	"github.com/vibecoders/backend/internal/infrastructure/telemetry"
)

// PurchasedService handles the shopping tracker's purchased marks
type PurchasedService struct {
	itemRepo pantry.PurchasedItemRepository
}

// NewPurchasedService creates a new PurchasedService
func NewPurchasedService(itemRepo pantry.PurchasedItemRepository) *PurchasedService {
	return &PurchasedService{itemRepo: itemRepo}
}

// List returns a user's purchased marks for one tab
func (s *PurchasedService) List(ctx context.Context, userID, tabKey string) ([]PurchasedItemResponse, error) {
	if !pantry.ValidTab(tabKey) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown tab key")
	}

	items, err := s.itemRepo.FindByUserAndTab(ctx, normalizeUser(userID), tabKey)
	if err != nil {
		return nil, err
	}

	responses := make([]PurchasedItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToPurchasedItemResponse(&items[i]))
	}
	return responses, nil
}

// Save upserts one purchased mark by its (user, item, tab) key and
// returns the resulting row
func (s *PurchasedService) Save(ctx context.Context, req SavePurchasedItemRequest) (*PurchasedItemResponse, error) {
	item, err := pantry.NewPurchasedItem(req.UserID, req.ItemName, req.TabKey, req.Purchased)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	response := ToPurchasedItemResponse(item)
	return &response, nil
}

// SaveBatch upserts marks one by one in request order, non-atomically;
// earlier elements stay saved when a later one fails
func (s *PurchasedService) SaveBatch(ctx context.Context, req SavePurchasedItemsBatchRequest) ([]PurchasedItemResponse, error) {
	saved := make([]PurchasedItemResponse, 0, len(req.Items))
	for _, itemReq := range req.Items {
		resp, err := s.Save(ctx, itemReq)
		if err != nil {
			return saved, err
		}
		saved = append(saved, *resp)
	}
	return saved, nil
}

// Delete removes one mark by its (user, item, tab) key
func (s *PurchasedService) Delete(ctx context.Context, userID, itemName, tabKey string) error {
	if !pantry.ValidTab(tabKey) {
		return shared.NewDomainError("INVALID_INPUT", "Unknown tab key")
	}
	return s.itemRepo.DeleteByKey(ctx, normalizeUser(userID), itemName, tabKey)
}

// Clear removes all of a user's marks, optionally narrowed to one tab.
// Clearing nothing is not an error.
func (s *PurchasedService) Clear(ctx context.Context, userID, tabKey string) (*ClearPurchasedResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "purchased", "clear",
		telemetry.WithAttribute(telemetry.SpanAttrUserID, userID),
		telemetry.WithAttribute(telemetry.SpanAttrTabKey, tabKey))
	defer span.End()

	user := normalizeUser(userID)

	if tabKey == "" {
		deleted, err := s.itemRepo.DeleteByUser(ctx, user)
		if err != nil {
			return nil, err
		}
		return &ClearPurchasedResponse{Deleted: deleted}, nil
	}

	if !pantry.ValidTab(tabKey) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown tab key")
	}

	deleted, err := s.itemRepo.DeleteByUserAndTab(ctx, user, tabKey)
	if err != nil {
		return nil, err
	}
	return &ClearPurchasedResponse{Deleted: deleted}, nil
}
