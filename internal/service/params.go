package service

import "blog_service/internal/repository"

// UserUpdate names every recognized profile field for a user update.
// A nil field means "leave unchanged"; a non-nil field replaces the column.
type UserUpdate struct {
	Username    *string
	Email       *string
	Picture     *string
	Description *string
	Firstname   *string
	Surname     *string
}

// fieldUpdates flattens the present fields into column updates, in a fixed order.
func (u UserUpdate) fieldUpdates() []repository.FieldUpdate {
	out := make([]repository.FieldUpdate, 0, 6)
	add := func(column string, v *string) {
		if v != nil {
			out = append(out, repository.FieldUpdate{Column: column, Value: *v})
		}
	}
	add("username", u.Username)
	add("email", u.Email)
	add("picture", u.Picture)
	add("description", u.Description)
	add("firstname", u.Firstname)
	add("surname", u.Surname)
	return out
}
