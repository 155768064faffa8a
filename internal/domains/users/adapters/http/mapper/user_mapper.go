package mapper

import userdomain "github.com/stockroom/stockroom-api/internal/domains/users/domain"

// User represents the transport-level user payload. Password is accepted on
// the way in only; responses never carry credentials.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Active    bool   `json:"active"`
}

// ToDomainUser converts a transport user to its domain counterpart.
func ToDomainUser(model User) (*userdomain.User, error) {
	user, err := userdomain.NewUser(model.ID, model.Username, model.Password)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(model.FirstName, model.LastName, model.Email, model.Phone); err != nil {
		return nil, err
	}
	if !model.Active {
		user.Deactivate()
	}
	return user, nil
}

// FromDomainUser converts a domain user into a transport representation.
// The password hash is deliberately omitted.
func FromDomainUser(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Active:    user.Active,
	}
}

// FromDomainUsers converts a slice of domain users to transport representation.
func FromDomainUsers(users []*userdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}

// ToDomainUsers converts transport users into the domain representation.
func ToDomainUsers(users []User) ([]*userdomain.User, error) {
	result := make([]*userdomain.User, 0, len(users))
	for _, user := range users {
		mapped, err := ToDomainUser(user)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}
