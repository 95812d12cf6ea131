package datasets

import (
	"strconv"

	"github.com/five82/orgmine/internal/tableview"
)

// UserStatus is the account state of a showcase user.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusPending  UserStatus = "pending"
)

// ShowcaseUser is a row of the built-in sample table.
type ShowcaseUser struct {
	ID        int
	Name      string
	Email     string
	Role      string
	Status    UserStatus
	CreatedAt string // YYYY-MM-DD
}

// SampleUsers returns the sample rows shown on the tables page.
func SampleUsers() []ShowcaseUser {
	return []ShowcaseUser{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin", Status: StatusActive, CreatedAt: "2024-01-15"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "User", Status: StatusActive, CreatedAt: "2024-01-20"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "Editor", Status: StatusPending, CreatedAt: "2024-02-01"},
		{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: "User", Status: StatusInactive, CreatedAt: "2024-02-10"},
		{ID: 5, Name: "Charlie Wilson", Email: "charlie@example.com", Role: "Admin", Status: StatusActive, CreatedAt: "2024-02-15"},
		{ID: 6, Name: "Diana Lee", Email: "diana@example.com", Role: "Editor", Status: StatusActive, CreatedAt: "2024-02-20"},
		{ID: 7, Name: "Eve Martinez", Email: "eve@example.com", Role: "User", Status: StatusPending, CreatedAt: "2024-03-01"},
		{ID: 8, Name: "Frank Garcia", Email: "frank@example.com", Role: "User", Status: StatusActive, CreatedAt: "2024-03-05"},
		{ID: 9, Name: "Grace Taylor", Email: "grace@example.com", Role: "Editor", Status: StatusInactive, CreatedAt: "2024-03-10"},
		{ID: 10, Name: "Henry Anderson", Email: "henry@example.com", Role: "Admin", Status: StatusActive, CreatedAt: "2024-03-15"},
	}
}

// ShowcaseTable searches name and email and sorts every column. Titles are
// catalogue keys.
var ShowcaseTable = tableview.Table[ShowcaseUser]{
	Key: func(u ShowcaseUser) string { return strconv.Itoa(u.ID) },
	Columns: []tableview.Column[ShowcaseUser]{
		{Key: "id", Title: "col.id", Number: func(u ShowcaseUser) float64 { return float64(u.ID) }},
		{Key: "name", Title: "col.name", Text: func(u ShowcaseUser) string { return u.Name }, Searchable: true},
		{Key: "email", Title: "col.email", Text: func(u ShowcaseUser) string { return u.Email }, Searchable: true},
		{Key: "role", Title: "col.role", Text: func(u ShowcaseUser) string { return u.Role }},
		{Key: "status", Title: "col.status", Text: func(u ShowcaseUser) string { return string(u.Status) }},
		{Key: "createdAt", Title: "col.createdAt", Text: func(u ShowcaseUser) string { return u.CreatedAt }},
	},
}

// ShowcaseDefaultSort is the column the sample table starts sorted by.
const ShowcaseDefaultSort = "id"
