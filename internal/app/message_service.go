package app

import (
	"errors"
	"strings"

	"mural-api/internal/model"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageStore is the slice of the message repository the service needs.
type MessageStore interface {
	Create(msg *model.Message) error
	GetByID(id uint) (*model.Message, error)
	Update(msg *model.Message) error
	Delete(id uint) error
	ListDesc() ([]model.Message, error)
}

type MessageService struct {
	messages MessageStore
}

type CreateMessageInput struct {
	Title     string
	Text      string
	Timestamp string
}

type UpdateMessageInput struct {
	Title string
	Text  string
}

func NewMessageService(messages MessageStore) *MessageService {
	return &MessageService{messages: messages}
}

func (s *MessageService) Create(input CreateMessageInput) (*model.Message, error) {
	title := strings.TrimSpace(input.Title)
	text := strings.TrimSpace(input.Text)
	timestamp := strings.TrimSpace(input.Timestamp)
	if title == "" || text == "" || timestamp == "" {
		return nil, ErrInvalidInput
	}

	msg := &model.Message{
		Title:     title,
		Text:      text,
		Timestamp: timestamp,
	}
	if err := s.messages.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Update checks existence before validating fields, so an absent id is
// reported as not-found even when the payload is also incomplete.
func (s *MessageService) Update(id uint, input UpdateMessageInput) (*model.Message, error) {
	msg, err := s.messages.GetByID(id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}

	title := strings.TrimSpace(input.Title)
	text := strings.TrimSpace(input.Text)
	if title == "" || text == "" {
		return nil, ErrInvalidInput
	}

	msg.Title = title
	msg.Text = text
	if err := s.messages.Update(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) Delete(id uint) error {
	msg, err := s.messages.GetByID(id)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}
	return s.messages.Delete(id)
}

func (s *MessageService) List() ([]model.Message, error) {
	return s.messages.ListDesc()
}
