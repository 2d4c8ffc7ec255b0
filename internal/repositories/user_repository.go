package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"gorm.io/gorm"
)

// UserRepository provides access to registered users
type UserRepository interface {
	CrudRepository[models.User, uint]
	// FindByUsername retrieves a user by its unique username
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

type userRepository struct {
	*gormRepository[models.User, uint]
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		gormRepository: newGormRepository[models.User, uint](db, "id"),
	}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: username %s", ErrNotFound, username)
		}
		return models.User{}, err
	}
	return user, nil
}
