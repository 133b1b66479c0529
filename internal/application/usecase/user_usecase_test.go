package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
)

func userRequest(email, role string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    email,
		Password: "secreto-123",
		Name:     "Usuario de Prueba",
		Role:     role,
	}
}

// El password se guarda hasheado con bcrypt y nunca sale en la respuesta.
func TestUserCreate_PasswordHasheado(t *testing.T) {
	repo := memory.NewUserRepository()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(userRequest("ana@vetpharm.com", "Staff"))
	require.NoError(t, err)
	assert.Equal(t, "active", out.Status)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto-123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto-123")))
}

// Email duplicado y rol desconocido rechazan la creación.
func TestUserCreate_Invalidos(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())

	_, err := uc.Create(userRequest("ana@vetpharm.com", "Staff"))
	require.NoError(t, err)

	_, err = uc.Create(userRequest("ana@vetpharm.com", "Vet"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Create(userRequest("otro@vetpharm.com", "Gerente"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El último Admin activo no puede degradarse, desactivarse ni eliminarse.
func TestUser_UltimoAdminProtegido(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())

	admin, err := uc.Create(userRequest("admin@vetpharm.com", "Admin"))
	require.NoError(t, err)

	_, err = uc.Update(admin.ID, dto.UpdateUserRequest{Role: "Staff"})
	assert.ErrorIs(t, err, domain.ErrLastAdmin)

	_, err = uc.Update(admin.ID, dto.UpdateUserRequest{Status: "inactive"})
	assert.ErrorIs(t, err, domain.ErrLastAdmin)

	err = uc.Delete(admin.ID)
	assert.ErrorIs(t, err, domain.ErrLastAdmin)

	// con un segundo Admin la operación sí procede
	_, err = uc.Create(userRequest("admin2@vetpharm.com", "Admin"))
	require.NoError(t, err)

	out, err := uc.Update(admin.ID, dto.UpdateUserRequest{Role: "Staff"})
	require.NoError(t, err)
	assert.Equal(t, "Staff", out.Role)
}

// Cambios parciales: solo los campos enviados se tocan.
func TestUserUpdate_Parcial(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())
	created, err := uc.Create(userRequest("ana@vetpharm.com", "Staff"))
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateUserRequest{Name: "Ana Morales"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Morales", out.Name)
	assert.Equal(t, "Staff", out.Role)
	assert.Equal(t, created.Email, out.Email)
}

// Usuario inexistente: Update devuelve nil sin error, Delete un sentinel.
func TestUser_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())

	out, err := uc.Update("no-existe", dto.UpdateUserRequest{Name: "X"})
	assert.NoError(t, err)
	assert.Nil(t, out)

	err = uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
