package services

import (
	"context"
	"errors"
	"time"

	"movie-discovery-backend/data_access"
	"movie-discovery-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userStore data_access.UserStore
	jwtSecret string
}

func NewAuthService(userStore data_access.UserStore, jwtSecret string) *AuthService {
	return &AuthService{
		userStore: userStore,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthData, error) {
	existingUser, _ := s.userStore.FindByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}
	existingUser, _ = s.userStore.FindByUsername(ctx, req.Username)
	if existingUser != nil {
		return nil, errors.New("username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
		Favorites: []models.CollectionEntry{},
		Watchlist: []models.CollectionEntry{},
		Reviews:   []models.Review{},
	}

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthData{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthData, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil || user == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthData{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

// CurrentUser resolves the authenticated user record for GET /auth/me.
func (s *AuthService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userStore.FindByID(ctx, userID)
}

func (s *AuthService) signToken(userID primitive.ObjectID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.Hex(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}
