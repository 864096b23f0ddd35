package item

import (
	"strings"
	"time"

	bookingRepo "shareit/database/repository/booking"
	commentRepo "shareit/database/repository/comment"
	itemRepo "shareit/database/repository/item"
	requestRepo "shareit/database/repository/request"
	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/utils"

	"go.uber.org/zap"
)

// DefaultItemService is the default implementation of ItemService.
type DefaultItemService struct {
	Items    itemRepo.ItemRepository
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Comments commentRepo.CommentRepository
	Requests requestRepo.RequestRepository
	Cache    *SearchCache
}

// Create lists a new item for the owner.
func (s *DefaultItemService) Create(ownerID int64, in models.ItemCreate) (*models.Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, utils.InvalidInput("name required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, utils.InvalidInput("description required")
	}
	if in.Available == nil {
		return nil, utils.InvalidInput("available required")
	}

	owner, err := s.Users.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.NotFound("owner not found")
	}

	if in.RequestID != 0 {
		req, err := s.Requests.GetByID(in.RequestID)
		if err != nil {
			return nil, err
		}
		if req == nil {
			return nil, utils.NotFound("item request not found")
		}
	}

	item := &models.Item{
		Name:        in.Name,
		Description: in.Description,
		Available:   in.Available,
		OwnerID:     ownerID,
		RequestID:   in.RequestID,
	}
	if err := s.Items.Create(item); err != nil {
		return nil, err
	}
	s.Cache.Invalidate()

	utils.GetLogger().Info("item created", zap.Int64("itemId", item.ID), zap.Int64("ownerId", ownerID))
	return item, nil
}

// Update patches an item; only its owner may do so.
func (s *DefaultItemService) Update(ownerID, itemID int64, patch models.ItemUpdate) (*models.Item, error) {
	item, err := s.Items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.NotFound("item not found")
	}
	if item.OwnerID != ownerID {
		return nil, utils.NotFound("only owner can update item")
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = patch.Available
	}

	if err := s.Items.Update(item); err != nil {
		return nil, err
	}
	s.Cache.Invalidate()
	return item, nil
}

// GetByID returns the item with its comments. Booking summaries are only
// attached on the owner listing, never on a single lookup.
func (s *DefaultItemService) GetByID(requesterID, itemID int64) (*models.ItemView, error) {
	item, err := s.Items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.NotFound("item not found")
	}

	comments, err := s.Comments.FindByItem(itemID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return &models.ItemView{Item: *item, Comments: comments}, nil
}

// Delete removes an item; only its owner may do so.
func (s *DefaultItemService) Delete(ownerID, itemID int64) error {
	item, err := s.Items.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return utils.NotFound("item not found")
	}
	if item.OwnerID != ownerID {
		return utils.Forbidden("only owner can delete item")
	}
	if err := s.Items.Delete(itemID); err != nil {
		return err
	}
	s.Cache.Invalidate()
	return nil
}

// Search returns available items matching text, served from the cache when
// possible. Blank text short-circuits to an empty result.
func (s *DefaultItemService) Search(requesterID int64, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}

	if cached, ok := s.Cache.Get(text); ok {
		return cached, nil
	}

	items, err := s.Items.Search(text)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	s.Cache.Put(text, items)
	return items, nil
}

// ListByOwner assembles the owner projection: a page of items, each with
// the most recent started approved booking, the next upcoming approved
// booking, and all comments. Now is sampled once for the whole page.
func (s *DefaultItemService) ListByOwner(ownerID int64, from, size int) ([]models.ItemOwnerView, error) {
	if size <= 0 {
		return []models.ItemOwnerView{}, nil
	}

	items, err := s.Items.ListByOwner(ownerID, from, size)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []models.ItemOwnerView{}, nil
	}

	itemIDs := make([]int64, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
	}

	now := time.Now()
	last, err := s.Bookings.FindLastByItemIDs(itemIDs, now)
	if err != nil {
		return nil, err
	}
	next, err := s.Bookings.FindNextByItemIDs(itemIDs, now)
	if err != nil {
		return nil, err
	}
	comments, err := s.Comments.FindByItems(itemIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.ItemOwnerView, 0, len(items))
	for _, it := range items {
		view := models.ItemOwnerView{Item: it, Comments: []models.Comment{}}
		if lb, ok := last[it.ID]; ok {
			short := lb.Short()
			view.LastBooking = &short
		}
		if nb, ok := next[it.ID]; ok {
			short := nb.Short()
			view.NextBooking = &short
		}
		if cs, ok := comments[it.ID]; ok {
			view.Comments = cs
		}
		out = append(out, view)
	}
	return out, nil
}

// AddComment gates commenting on having completed an approved booking for
// the item before now.
func (s *DefaultItemService) AddComment(userID, itemID int64, in models.CommentCreate) (*models.Comment, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, utils.InvalidInput("comment text required")
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFound("user not found")
	}

	item, err := s.Items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.NotFound("item not found")
	}

	now := time.Now()
	allowed, err := s.Bookings.ExistsCompletedBooking(userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, utils.Forbidden("user has not completed a booking for this item")
	}

	comment := &models.Comment{
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: user.Name,
		Text:       strings.TrimSpace(in.Text),
		Created:    now,
	}
	if err := s.Comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
