package http

import "user-api/internal/domain"

// Each endpoint answers with its own view of a user. GET /users/:id leaves
// out the id and PUT echoes the stored password; clients depend on both.

type UserListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserProfile struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserMessage struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

type UpdatedUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func toListItem(user domain.User) UserListItem {
	return UserListItem{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toProfile(user domain.User) UserProfile {
	return UserProfile{
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toMessage(user domain.User, message string) UserMessage {
	return UserMessage{
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Message:  message,
	}
}

func toUpdated(user domain.User) UpdatedUser {
	return UpdatedUser{
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
	}
}
