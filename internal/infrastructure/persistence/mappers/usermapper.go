package mappers

import (
	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/models"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
)

// UserMapper converts between account entities and user rows
type UserMapper interface {
	ToDomain(model *models.UserModel) *user.Account
	ToModel(account *user.Account) *models.UserModel
}

type userMapper struct{}

// NewUserMapper creates a new UserMapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToDomain(model *models.UserModel) *user.Account {
	if model == nil {
		return nil
	}
	return user.ReconstructAccount(
		model.ID,
		model.Username,
		model.Name,
		authorization.ParseUserRole(model.Role),
		model.Locale,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapper) ToModel(account *user.Account) *models.UserModel {
	if account == nil {
		return nil
	}
	return &models.UserModel{
		ID:        account.ID(),
		Username:  account.Username(),
		Name:      account.Name(),
		Role:      account.Role().String(),
		Locale:    account.Locale(),
		CreatedAt: account.CreatedAt(),
		UpdatedAt: account.UpdatedAt(),
	}
}
