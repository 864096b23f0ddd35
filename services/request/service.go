package request

import (
	"strings"
	"time"

	itemRepo "shareit/database/repository/item"
	requestRepo "shareit/database/repository/request"
	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/utils"
)

// DefaultRequestService is the default implementation of RequestService.
type DefaultRequestService struct {
	Requests requestRepo.RequestRepository
	Users    userRepo.UserRepository
	Items    itemRepo.ItemRepository
}

// Create posts a new item request for the caller.
func (s *DefaultRequestService) Create(userID int64, in models.RequestCreate) (*models.ItemRequest, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, utils.InvalidInput("description required")
	}

	exists, err := s.Users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("user not found")
	}

	req := &models.ItemRequest{
		Description: in.Description,
		RequestorID: userID,
		Created:     time.Now(),
	}
	if err := s.Requests.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetByID returns one request with the items answering it.
func (s *DefaultRequestService) GetByID(userID, requestID int64) (*models.RequestView, error) {
	exists, err := s.Users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("user not found")
	}

	req, err := s.Requests.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, utils.NotFound("request not found")
	}

	views, err := s.attachItems([]models.ItemRequest{*req})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// GetOwn returns the caller's requests with answers.
func (s *DefaultRequestService) GetOwn(userID int64) ([]models.RequestView, error) {
	exists, err := s.Users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("user not found")
	}

	reqs, err := s.Requests.FindByRequestor(userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(reqs)
}

// GetAllOthers pages other users' requests with answers. A non-positive
// size yields an empty page.
func (s *DefaultRequestService) GetAllOthers(userID int64, from, size int) ([]models.RequestView, error) {
	if size <= 0 {
		return []models.RequestView{}, nil
	}
	exists, err := s.Users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("user not found")
	}

	reqs, err := s.Requests.FindByOtherRequestors(userID, from, size)
	if err != nil {
		return nil, err
	}
	return s.attachItems(reqs)
}

// attachItems batches the answering items for a set of requests.
func (s *DefaultRequestService) attachItems(reqs []models.ItemRequest) ([]models.RequestView, error) {
	views := make([]models.RequestView, 0, len(reqs))
	if len(reqs) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID)
	}
	items, err := s.Items.FindByRequestIDs(ids)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]models.RequestAnswer)
	for _, it := range items {
		grouped[it.RequestID] = append(grouped[it.RequestID], models.RequestAnswer{
			ItemID:  it.ID,
			Name:    it.Name,
			OwnerID: it.OwnerID,
		})
	}

	for _, r := range reqs {
		answers := grouped[r.ID]
		if answers == nil {
			answers = []models.RequestAnswer{}
		}
		views = append(views, models.RequestView{ItemRequest: r, Items: answers})
	}
	return views, nil
}
