package model

import "time"

// ListDateLayout is the human-readable date a saved list is labelled with.
const ListDateLayout = "January 02, 2006"

// List is a saved, dated to-do list owned by one account.
type List struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"owner_id"`
	Date      string     `json:"date"`
	CreatedAt time.Time  `json:"created_at"`
	Items     []ListItem `json:"items"`
}

// ListDate formats t as a list label.
func ListDate(t time.Time) string {
	return t.Format(ListDateLayout)
}

// OwnedBy reports whether the identity owns the list.
func (l *List) OwnedBy(id *Identity) bool {
	return id != nil && l.OwnerID == id.AccountID
}
