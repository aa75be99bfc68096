package model

import (
	"strings"
	"time"
)

// DueDateLayout is the wire and storage format of due dates.
const DueDateLayout = "2006-01-02"

// ScratchItem is a pending to-do item that is not part of any saved list.
type ScratchItem struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	DueDate string `json:"due_date,omitempty"`
}

// ListItem is a to-do item inside a saved list.
type ListItem struct {
	ID      int64  `json:"id"`
	ListID  int64  `json:"list_id"`
	Text    string `json:"text"`
	DueDate string `json:"due_date,omitempty"`
}

// ItemInput is validated item content, ready to be stored.
type ItemInput struct {
	Text    string
	DueDate string
}

// ValidateItem trims the inputs, requires text and checks the optional due date.
func ValidateItem(text, dueDate string) (ItemInput, error) {
	text = strings.TrimSpace(text)
	dueDate = strings.TrimSpace(dueDate)

	if text == "" {
		return ItemInput{}, invalid("task text is required")
	}
	if dueDate != "" {
		if _, err := time.Parse(DueDateLayout, dueDate); err != nil {
			return ItemInput{}, invalid("due date must be YYYY-MM-DD")
		}
	}
	return ItemInput{Text: text, DueDate: dueDate}, nil
}
