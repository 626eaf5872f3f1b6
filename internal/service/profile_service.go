package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProfileValidation  = errors.New("profile validation failed")
	ErrUnknownFitnessGoal = errors.New("unknown fitness goal")
)

// ProfileUpdate is the edit-profile form. Measurements are metric whatever
// unit system is chosen for display.
type ProfileUpdate struct {
	FirstName     string               `json:"firstName" validate:"required,max=100"`
	LastName      string               `json:"lastName" validate:"max=100"`
	Age           int                  `json:"age" validate:"omitempty,min=13,max=120"`
	Gender        domain.Gender        `json:"gender" validate:"omitempty,oneof=male female other"`
	HeightCm      float64              `json:"heightCm" validate:"omitempty,gt=0,lte=300"`
	WeightKg      float64              `json:"weightKg" validate:"omitempty,gt=0,lte=500"`
	UnitSystem    domain.UnitSystem    `json:"unitSystem" validate:"omitempty,oneof=metric imperial"`
	FitnessLevel  domain.FitnessLevel  `json:"fitnessLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
	ActivityLevel domain.ActivityLevel `json:"activityLevel" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	FitnessGoals  []string             `json:"fitnessGoals" validate:"omitempty,unique,dive,oneof=weight_loss muscle_gain endurance strength flexibility general_fitness"`
}

// ProfileView is the profile page: account names, the stored profile and the
// measurements rendered in the chosen unit system.
type ProfileView struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	domain.Profile
	Height      string `json:"height,omitempty"`
	Weight      string `json:"weight,omitempty"`
	ActiveGoals int    `json:"activeGoals"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, input ProfileUpdate) (*ProfileView, error)
	ToggleFitnessGoal(ctx context.Context, userID primitive.ObjectID, goalID string) (*ProfileView, error)
}

type profileService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileView, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newProfileView(user), nil
}

// UpdateProfile replaces names and profile as a whole. Unset optional fields
// are cleared and an empty unit system means metric.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input ProfileUpdate) (*ProfileView, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileValidation, err)
	}
	if isNotFinite(input.HeightCm) || isNotFinite(input.WeightKg) {
		return nil, fmt.Errorf("%w: measurements must be finite", ErrProfileValidation)
	}
	if input.UnitSystem == "" {
		input.UnitSystem = domain.UnitSystemMetric
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Profile = domain.Profile{
		Age:           input.Age,
		Gender:        input.Gender,
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		UnitSystem:    input.UnitSystem,
		FitnessLevel:  input.FitnessLevel,
		ActivityLevel: input.ActivityLevel,
		FitnessGoals:  append([]string{}, input.FitnessGoals...),
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	log.Infof("profile of %s updated", user.DisplayName())
	return newProfileView(user), nil
}

// ToggleFitnessGoal selects or deselects one of the fixed profile goals.
func (s *profileService) ToggleFitnessGoal(ctx context.Context, userID primitive.ObjectID, goalID string) (*ProfileView, error) {
	if !domain.IsFitnessGoal(goalID) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFitnessGoal, goalID)
	}
	user, err := s.userRepo.ToggleFitnessGoal(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return newProfileView(user), nil
}

func (s *profileService) getUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func newProfileView(user *domain.User) *ProfileView {
	profile := user.Profile
	if profile.UnitSystem == "" {
		profile.UnitSystem = domain.UnitSystemMetric
	}
	if profile.FitnessGoals == nil {
		profile.FitnessGoals = []string{}
	}
	return &ProfileView{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		DisplayName: user.DisplayName(),
		Profile:     profile,
		Height:      domain.FormatHeight(profile.HeightCm, profile.UnitSystem),
		Weight:      domain.FormatWeight(profile.WeightKg, profile.UnitSystem),
		ActiveGoals: len(profile.FitnessGoals),
	}
}

func isNotFinite(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}
