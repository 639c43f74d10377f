package services

import (
	"context"
	"lifehub/models"
)

type ContactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (cs *ContactService) List(ctx context.Context, userID int64) ([]models.Contact, error) {
	return cs.repo.GetContacts(ctx, userID)
}

func (cs *ContactService) Get(ctx context.Context, userID, contactID int64) (*models.Contact, error) {
	return fetch(ctx, cs.repo.GetContact, contactID, userID)
}

func (cs *ContactService) Create(ctx context.Context, userID int64, req models.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Birthday: utc(req.Birthday),
		Notes:    req.Notes,
		Category: req.Category,
	}
	if err := cs.repo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (cs *ContactService) Update(ctx context.Context, userID, contactID int64, req models.UpdateContactRequest) (*models.Contact, error) {
	contact, err := fetch(ctx, cs.repo.GetContact, contactID, userID)
	if err != nil {
		return nil, err
	}

	set(&contact.Name, req.Name)
	set(&contact.Email, req.Email)
	set(&contact.Phone, req.Phone)
	set(&contact.Notes, req.Notes)
	set(&contact.Category, req.Category)
	if req.Birthday != nil {
		contact.Birthday = utc(req.Birthday)
	}

	if err := cs.repo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (cs *ContactService) Delete(ctx context.Context, userID, contactID int64) error {
	return remove(ctx, cs.repo.GetContact, cs.repo.DeleteContact, contactID, userID)
}
