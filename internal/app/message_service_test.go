package app

import (
	"errors"
	"sort"
	"testing"

	"mural-api/internal/model"
)

type memMessageStore struct {
	msgs   map[uint]*model.Message
	nextID uint
}

func newMemMessageStore() *memMessageStore {
	return &memMessageStore{msgs: map[uint]*model.Message{}, nextID: 1}
}

func (s *memMessageStore) Create(msg *model.Message) error {
	msg.ID = s.nextID
	s.nextID++
	copied := *msg
	s.msgs[msg.ID] = &copied
	return nil
}

func (s *memMessageStore) GetByID(id uint) (*model.Message, error) {
	msg, ok := s.msgs[id]
	if !ok {
		return nil, nil
	}
	copied := *msg
	return &copied, nil
}

func (s *memMessageStore) Update(msg *model.Message) error {
	copied := *msg
	s.msgs[msg.ID] = &copied
	return nil
}

func (s *memMessageStore) Delete(id uint) error {
	delete(s.msgs, id)
	return nil
}

func (s *memMessageStore) ListDesc() ([]model.Message, error) {
	out := make([]model.Message, 0, len(s.msgs))
	for _, msg := range s.msgs {
		out = append(out, *msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func TestCreateMessage(t *testing.T) {
	t.Parallel()

	svc := NewMessageService(newMemMessageStore())
	msg, err := svc.Create(CreateMessageInput{Title: "Aviso", Text: "Reunião às 14h", Timestamp: "2024-06-01 10:00"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("created message has no id")
	}
	if msg.Timestamp != "2024-06-01 10:00" {
		t.Fatalf("timestamp rewritten: %q", msg.Timestamp)
	}
}

func TestCreateMessageMissingFields(t *testing.T) {
	t.Parallel()

	store := newMemMessageStore()
	svc := NewMessageService(store)
	cases := []CreateMessageInput{
		{Title: "", Text: "t", Timestamp: "ts"},
		{Title: "t", Text: "", Timestamp: "ts"},
		{Title: "t", Text: "t", Timestamp: ""},
	}
	for _, input := range cases {
		if _, err := svc.Create(input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Create(%+v) = %v, want ErrInvalidInput", input, err)
		}
	}
	if len(store.msgs) != 0 {
		t.Fatalf("%d records persisted after rejected creates", len(store.msgs))
	}
}

func TestUpdateMessage(t *testing.T) {
	t.Parallel()

	svc := NewMessageService(newMemMessageStore())
	msg, err := svc.Create(CreateMessageInput{Title: "old", Text: "old", Timestamp: "ts"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(msg.ID, UpdateMessageInput{Title: "new title", Text: "new text"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "new title" || updated.Text != "new text" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Timestamp != "ts" {
		t.Fatalf("update touched the caller timestamp: %q", updated.Timestamp)
	}
}

func TestUpdateMessageNotFound(t *testing.T) {
	t.Parallel()

	svc := NewMessageService(newMemMessageStore())
	// Not-found wins even when the payload is also invalid.
	if _, err := svc.Update(99, UpdateMessageInput{}); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("Update = %v, want ErrMessageNotFound", err)
	}
}

func TestUpdateMessageMissingFields(t *testing.T) {
	t.Parallel()

	svc := NewMessageService(newMemMessageStore())
	msg, err := svc.Create(CreateMessageInput{Title: "t", Text: "t", Timestamp: "ts"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Update(msg.ID, UpdateMessageInput{Title: "", Text: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Update = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteMessage(t *testing.T) {
	t.Parallel()

	svc := NewMessageService(newMemMessageStore())
	msg, err := svc.Create(CreateMessageInput{Title: "t", Text: "t", Timestamp: "ts"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(msg.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for _, m := range list {
		if m.ID == msg.ID {
			t.Fatal("deleted message still listed")
		}
	}

	if err := svc.Delete(msg.ID); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("second Delete = %v, want ErrMessageNotFound", err)
	}
}

func TestListMessagesDescending(t *testing.T) {
	t.Parallel()

	svc := NewMessageService(newMemMessageStore())
	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(CreateMessageInput{Title: title, Text: "t", Timestamp: "ts"}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID <= list[i].ID {
			t.Fatalf("listing not strictly id-descending: %d then %d", list[i-1].ID, list[i].ID)
		}
	}
	if list[0].Title != "third" {
		t.Fatalf("newest message first, got %q", list[0].Title)
	}
}
