package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/helper/utils"
	"github.com/InternHub/internhub-backend/internal/interfaces"
	"github.com/InternHub/internhub-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	// Auth
	Register(input dto.RegisterRequest) error
	Login(input dto.UserLogin) (*domain.User, error)
	VerifyEmail(token string) error
	ForgotPassword(email string) error
	SetPassword(input dto.SetPasswordRequest) error

	// Profile
	GetProfile(userID uint) (*dto.UserProfileResponse, error)
	GetStudentProfile(userID uint) (*domain.StudentProfile, error)
	UpsertStudentProfile(userID uint, input dto.StudentProfileInput) (*domain.StudentProfile, error)
	GetRecruiterProfile(userID uint) (*domain.RecruiterProfile, error)
	UpsertRecruiterProfile(userID uint, input dto.RecruiterProfileInput) (*domain.RecruiterProfile, error)

	// Role guards
	IsAdmin(userID uint) (bool, error)
	IsStudent(userID uint) (bool, error)
	IsRecruiter(userID uint) (bool, error)
}

type userService struct {
	repo          repository.UserRepository
	roleRepo      repository.RoleRepository
	userRoleRepo  repository.UserRoleRepository
	studentRepo   repository.StudentProfileRepository
	recruiterRepo repository.RecruiterProfileRepository

	auth     helper.Auth
	producer interfaces.ProducerHandler
}

func NewUserService(
	repo repository.UserRepository,
	roleRepo repository.RoleRepository,
	userRoleRepo repository.UserRoleRepository,
	studentRepo repository.StudentProfileRepository,
	recruiterRepo repository.RecruiterProfileRepository,
	auth helper.Auth,
	producer interfaces.ProducerHandler,
) UserService {
	return &userService{
		repo:          repo,
		roleRepo:      roleRepo,
		userRoleRepo:  userRoleRepo,
		studentRepo:   studentRepo,
		recruiterRepo: recruiterRepo,
		auth:          auth,
		producer:      producer,
	}
}

// AUTH

func (u *userService) Register(input dto.RegisterRequest) error {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	displayName := strings.TrimSpace(input.DisplayName)
	role := strings.TrimSpace(strings.ToUpper(input.Role))

	if email == "" || strings.TrimSpace(input.Password) == "" || displayName == "" {
		return fmt.Errorf("%w: email, password and display_name are required", ErrValidation)
	}
	// ADMIN is never self-assignable
	if role != domain.RoleStudent && role != domain.RoleRecruiter {
		return fmt.Errorf("%w: role must be STUDENT or RECRUITER", ErrValidation)
	}
	if len(input.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	existing, err := u.repo.FindUserByEmail(email)
	if err == nil && existing != nil && existing.ID != 0 {
		return fmt.Errorf("%w: email already exists", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	newUser := &domain.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		DisplayName:  displayName,
		Phone:        input.Phone,
		Status:       domain.UserStatusActive,
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		return err
	}

	// role is fixed from here on
	roleObj, err := u.roleRepo.FindByCode(role)
	if err != nil {
		return err
	}
	if err := u.userRoleRepo.AssignRole(usr.ID, roleObj.ID); err != nil {
		return err
	}

	plainToken, err := utils.RandomToken(32)
	if err != nil {
		return errors.New("failed to generate verification token")
	}
	exp := time.Now().Add(24 * time.Hour)

	usr.VerificationToken = utils.Sha256Hex(plainToken)
	usr.VerificationTokenExpiresAt = &exp

	if err := u.repo.SaveUser(usr); err != nil {
		return err
	}

	publishEvent(u.producer, dto.EventVerifyEmail, dto.VerifyEmailEvent{
		UserID:    usr.ID,
		Email:     usr.Email,
		Token:     plainToken,
		ExpiresAt: exp.Format(time.RFC3339),
	})

	return nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	if user.EmailVerifiedAt == nil {
		return nil, fmt.Errorf("%w: please verify email", ErrUnauthorized)
	}
	if user.Status != domain.UserStatusActive {
		return nil, fmt.Errorf("%w: account is not active", ErrUnauthorized)
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	return user, nil
}

func (u *userService) VerifyEmail(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrValidation)
	}

	hash := utils.Sha256Hex(token)
	user, err := u.repo.FindUserByVerificationTokenHash(hash)
	if err != nil || user == nil {
		return fmt.Errorf("%w: invalid token", ErrValidation)
	}

	if user.VerificationTokenExpiresAt == nil || time.Now().After(*user.VerificationTokenExpiresAt) {
		return fmt.Errorf("%w: token expired", ErrValidation)
	}

	now := time.Now()
	user.EmailVerifiedAt = &now
	user.VerificationToken = ""
	user.VerificationTokenExpiresAt = nil
	return u.repo.SaveUser(user)
}

func (u *userService) ForgotPassword(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	plain, err := utils.RandomToken(32)
	if err != nil {
		return errors.New("failed to generate reset token")
	}

	exp := time.Now().Add(30 * time.Minute)
	user.ResetTokenHash = utils.Sha256Hex(plain)
	user.ResetTokenExpiresAt = &exp
	if err := u.repo.SaveUser(user); err != nil {
		return err
	}

	publishEvent(u.producer, dto.EventResetPassword, dto.VerifyEmailEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     plain,
		ExpiresAt: exp.Format(time.RFC3339),
	})

	return nil
}

func (u *userService) SetPassword(input dto.SetPasswordRequest) error {
	token := strings.TrimSpace(input.Token)
	newPassword := strings.TrimSpace(input.NewPassword)

	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and new_password are required", ErrValidation)
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	hash := utils.Sha256Hex(token)
	user, err := u.repo.FindUserByResetTokenHash(hash)
	if err != nil || user == nil {
		return fmt.Errorf("%w: invalid or expired token", ErrValidation)
	}
	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return fmt.Errorf("%w: invalid or expired token", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	user.PasswordHash = string(hashedPassword)
	user.ResetTokenHash = ""
	user.ResetTokenExpiresAt = nil

	return u.repo.SaveUser(user)
}

// PROFILE

func (u *userService) GetProfile(userID uint) (*dto.UserProfileResponse, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}

	role, err := u.roleRepo.GetRoleCodeByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Phone:       user.Phone,
		Role:        role,
		Status:      user.Status,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (u *userService) GetStudentProfile(userID uint) (*domain.StudentProfile, error) {
	profile, err := u.studentRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student profile", ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

func (u *userService) UpsertStudentProfile(userID uint, input dto.StudentProfileInput) (*domain.StudentProfile, error) {
	fullName := strings.TrimSpace(input.FullName)
	university := strings.TrimSpace(input.University)
	degree := strings.TrimSpace(input.Degree)

	if fullName == "" || university == "" || degree == "" {
		return nil, fmt.Errorf("%w: full_name, university and degree are required", ErrValidation)
	}
	if input.GraduationYear < 2000 {
		return nil, fmt.Errorf("%w: graduation_year is invalid", ErrValidation)
	}

	profile := &domain.StudentProfile{
		UserID:         userID,
		FullName:       fullName,
		University:     university,
		Degree:         degree,
		Branch:         strings.TrimSpace(input.Branch),
		GraduationYear: input.GraduationYear,
		Skills:         input.Skills,
		Bio:            strings.TrimSpace(input.Bio),
		LinkedinURL:    input.LinkedinURL,
		GithubURL:      input.GithubURL,
		ResumeURL:      input.ResumeURL,
	}
	profile.ProfileCompleted = fullName != "" && university != "" && degree != "" && len(input.Skills) > 0

	if err := u.studentRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *userService) GetRecruiterProfile(userID uint) (*domain.RecruiterProfile, error) {
	profile, err := u.recruiterRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recruiter profile", ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

// UpsertRecruiterProfile touches descriptive fields only. is_verified and
// account_status belong to the admin workflow.
func (u *userService) UpsertRecruiterProfile(userID uint, input dto.RecruiterProfileInput) (*domain.RecruiterProfile, error) {
	companyName := strings.TrimSpace(input.CompanyName)
	contactName := strings.TrimSpace(input.ContactName)
	contactEmail := strings.TrimSpace(strings.ToLower(input.ContactEmail))

	if companyName == "" || contactName == "" || contactEmail == "" {
		return nil, fmt.Errorf("%w: company_name, contact_name and contact_email are required", ErrValidation)
	}

	profile := &domain.RecruiterProfile{
		UserID:       userID,
		CompanyName:  companyName,
		ContactName:  contactName,
		ContactEmail: contactEmail,
		Website:      input.Website,
		Description:  input.Description,
		LogoURL:      input.LogoURL,
	}

	if err := u.recruiterRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ROLE GUARDS

func (u *userService) IsAdmin(userID uint) (bool, error) {
	return u.hasRole(userID, domain.RoleAdmin)
}

func (u *userService) IsStudent(userID uint) (bool, error) {
	return u.hasRole(userID, domain.RoleStudent)
}

func (u *userService) IsRecruiter(userID uint) (bool, error) {
	return u.hasRole(userID, domain.RoleRecruiter)
}

func (u *userService) hasRole(userID uint, code string) (bool, error) {
	if userID == 0 {
		return false, ErrUnauthorized
	}
	return u.userRoleRepo.UserHasRole(userID, code)
}

