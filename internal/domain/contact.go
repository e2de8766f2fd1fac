package domain

import "time"

type ContactStatus string

const (
	ContactUnread  ContactStatus = "unread"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

var ContactStatuses = []ContactStatus{
	ContactUnread,
	ContactRead,
	ContactReplied,
}

func IsValidContactStatus(s string) bool {
	for _, st := range ContactStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

type ContactMessage struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
