package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/terralote-api/internal/application/auth"
	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios (capacidad ManageUsers). La contraseña de
// cada usuario nuevo sale del esquema demo (parte local + sufijo) y se guarda
// como hash bcrypt. El rol es inmutable una vez creado.
type UserUseCase struct {
	repo           repository.UserRepository
	passwordSuffix string
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, passwordSuffix string) *UserUseCase {
	return &UserUseCase{repo: repo, passwordSuffix: passwordSuffix}
}

// Create valida y crea un usuario. Retorna ErrInvalidInput por rol o email
// inválidos y ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(auth.DerivedPassword(in.Email, uc.passwordSuffix)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Role == entity.RoleComercial {
		user.AssignedProjectIDs = in.AssignedProjectIDs
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(user)
	return &out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(user)
	return &out, nil
}

// Update edición parcial. No toca email, rol ni hash.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.AssignedProjectIDs != nil {
		if user.Role != entity.RoleComercial {
			return nil, domain.ErrInvalidInput
		}
		user.AssignedProjectIDs = *in.AssignedProjectIDs
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(user)
	return &out, nil
}

// List lista todos los usuarios, opcionalmente filtrados por rol.
func (uc *UserUseCase) List(role string) (*dto.UserListResponse, error) {
	var (
		users []*entity.User
		err   error
	)
	if role != "" {
		if !entity.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
		users, err = uc.repo.ListByRole(role)
	} else {
		users, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
