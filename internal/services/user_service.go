package services

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserService mengelola akun admin/operator/penumpang. Deleting a user does
// not check buses/schedules that reference it as operator.
type UserService struct {
	Repo      repositories.UserRepository
	RequestID string

	// Hasher is swappable for tests; defaults to bcrypt.
	Hasher func(plain string) (string, error)
}

type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
	Type     string `json:"type"`
}

func (s UserService) hash(plain string) (string, error) {
	if s.Hasher != nil {
		return s.Hasher(plain)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (s UserService) List() ([]models.User, error) {
	list, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data user", Err: err}
	}
	return list, nil
}

// Add validates first, then checks for a duplicate email before the password
// hash is ever computed.
func (s UserService) Add(in UserInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Password = strings.TrimSpace(in.Password)

	if fields := missingFields(map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
	}); len(fields) > 0 {
		return 0, domain.ValidationError{Field: strings.Join(fields, ", "), Msg: "wajib diisi"}
	}
	if !isValidEmail(in.Email) {
		return 0, domain.ValidationError{Field: "email", Msg: "format tidak valid"}
	}

	userType := domain.UserPassenger
	if strings.TrimSpace(in.Type) != "" {
		parsed, ok := domain.ParseUserType(in.Type)
		if !ok {
			return 0, domain.ValidationError{Field: "type", Msg: "nilai tidak dikenal: " + in.Type}
		}
		userType = parsed
	}

	exists, err := s.Repo.EmailExists(in.Email)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal cek email", Err: err}
	}
	if exists {
		return 0, domain.ConflictError{Resource: "user", Msg: "email sudah terdaftar"}
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}

	id, err := s.Repo.Create(models.User{
		Name:  in.Name,
		Email: in.Email,
		Phone: strings.TrimSpace(in.Phone),
		Type:  userType,
	}, hash)
	if err != nil {
		// race with a concurrent insert; unique index decides
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "user", Msg: "email sudah terdaftar"}
		}
		return 0, domain.InternalError{Msg: "gagal menyimpan user", Err: err}
	}

	utils.LogEvent(s.RequestID, "user", "create", "id="+strconv.FormatInt(id, 10))
	return id, nil
}

// Delete rejects self-deletion; otherwise removal is unconditional.
func (s UserService) Delete(id int64, actor domain.RequestContext) error {
	if id == int64(actor.UserID) {
		return domain.IntegrityError{Resource: "user", Msg: "tidak bisa menghapus akun sendiri"}
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "user"}
		}
		return domain.InternalError{Msg: "gagal hapus user", Err: err}
	}

	utils.LogEvent(s.RequestID, "user", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
