package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mural-api/internal/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(msg *model.Message) error {
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("create message failed: %w", err)
	}
	return nil
}

func (r *MessageRepository) GetByID(id uint) (*model.Message, error) {
	var msg model.Message
	if err := r.db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query message by id failed: %w", err)
	}
	return &msg, nil
}

func (r *MessageRepository) Update(msg *model.Message) error {
	if err := r.db.Save(msg).Error; err != nil {
		return fmt.Errorf("update message failed: %w", err)
	}
	return nil
}

func (r *MessageRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Message{}, id).Error; err != nil {
		return fmt.Errorf("delete message failed: %w", err)
	}
	return nil
}

// ListDesc returns every message, newest id first.
func (r *MessageRepository) ListDesc() ([]model.Message, error) {
	var msgs []model.Message
	if err := r.db.Order("id DESC").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("list messages failed: %w", err)
	}
	return msgs, nil
}
