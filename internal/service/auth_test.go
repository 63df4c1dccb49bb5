package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/velofab/pallet-service/config"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/mocks"
	"github.com/velofab/pallet-service/internal/service"
)

// testAuthConfig returns a config.AuthConfig for testing.
func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:     "your-secret-key-change-in-production",
		JWTRefreshSecret: "your-refresh-secret-key-change-in-production",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepositoryInterface)
		expectedError error
		validateToken bool
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(mockRepo *mocks.MockUserRepositoryInterface) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				user := &model.User{
					ID:       primitive.NewObjectID(),
					Email:    "test@example.com",
					Password: string(hashedPassword),
					Name:     "Test User",
					Role:     model.RoleOperator,
					Active:   true,
				}
				mockRepo.On("FindByEmailForAuth", mock.Anything, "test@example.com").Return(user, nil)
			},
			expectedError: nil,
			validateToken: true,
		},
		{
			name:     "user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMocks: func(mockRepo *mocks.MockUserRepositoryInterface) {
				mockRepo.On("FindByEmailForAuth", mock.Anything, "notfound@example.com").Return(nil, nil)
			},
			expectedError: service.ErrInvalidCredentials,
			validateToken: false,
		},
		{
			name:     "user inactive",
			email:    "inactive@example.com",
			password: "password123",
			setupMocks: func(mockRepo *mocks.MockUserRepositoryInterface) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				user := &model.User{
					ID:       primitive.NewObjectID(),
					Email:    "inactive@example.com",
					Password: string(hashedPassword),
					Name:     "Inactive User",
					Active:   false,
				}
				mockRepo.On("FindByEmailForAuth", mock.Anything, "inactive@example.com").Return(user, nil)
			},
			expectedError: service.ErrInvalidCredentials,
			validateToken: false,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(mockRepo *mocks.MockUserRepositoryInterface) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				user := &model.User{
					ID:       primitive.NewObjectID(),
					Email:    "test@example.com",
					Password: string(hashedPassword),
					Name:     "Test User",
					Active:   true,
				}
				mockRepo.On("FindByEmailForAuth", mock.Anything, "test@example.com").Return(user, nil)
			},
			expectedError: service.ErrInvalidCredentials,
			validateToken: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.MockUserRepositoryInterface)
			tt.setupMocks(mockUserRepo)

			authService := service.NewAuthService(mockUserRepo, testAuthConfig())

			tokenPair, user, err := authService.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, tokenPair)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, tokenPair)
				assert.NotNil(t, user)
				assert.NotEmpty(t, tokenPair.AccessToken)
				assert.NotEmpty(t, tokenPair.RefreshToken)
				assert.Equal(t, tt.email, user.Email)

				token, err := jwt.Parse(tokenPair.AccessToken, func(token *jwt.Token) (interface{}, error) {
					return []byte("your-secret-key-change-in-production"), nil
				})
				assert.NoError(t, err)
				assert.True(t, token.Valid)
			}

			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		username      string
		password      string
		nameField     string
		setupMocks    func(*mocks.MockUserRepositoryInterface)
		expectedError error
	}{
		{
			name:      "successful registration",
			email:     "new@example.com",
			username:  "newuser",
			password:  "password123",
			nameField: "New User",
			setupMocks: func(mockUserRepo *mocks.MockUserRepositoryInterface) {
				mockUserRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
				mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Run(func(args mock.Arguments) {
					user, _ := args.Get(1).(*model.User)
					if user != nil {
						user.ID = primitive.NewObjectID()
						// New accounts start as operators
						assert.Equal(t, model.RoleOperator, user.Role)
						assert.True(t, user.Active)
					}
				})
			},
			expectedError: nil,
		},
		{
			name:      "user already exists by email",
			email:     "existing@example.com",
			username:  "newuser",
			password:  "password123",
			nameField: "Existing User",
			setupMocks: func(mockUserRepo *mocks.MockUserRepositoryInterface) {
				existingUser := &model.User{
					ID:    primitive.NewObjectID(),
					Email: "existing@example.com",
				}
				mockUserRepo.On("FindByEmail", mock.Anything, "existing@example.com").Return(existingUser, nil)
			},
			expectedError: service.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.MockUserRepositoryInterface)
			tt.setupMocks(mockUserRepo)

			authService := service.NewAuthService(mockUserRepo, testAuthConfig())

			tokenPair, user, err := authService.Register(context.Background(), tt.email, tt.username, tt.password, tt.nameField)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, tokenPair)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, tokenPair)
				assert.NotNil(t, user)
				assert.NotEmpty(t, tokenPair.AccessToken)
				assert.NotEmpty(t, tokenPair.RefreshToken)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.nameField, user.Name)
			}

			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	cfg := testAuthConfig()

	makeUser := func() *model.User {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		return &model.User{
			ID:       primitive.NewObjectID(),
			Email:    "test@example.com",
			Username: "testuser",
			Password: string(hashedPassword),
			Name:     "Test User",
			Role:     model.RoleOperator,
			Active:   true,
		}
	}

	t.Run("successful refresh", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		user := makeUser()
		mockUserRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)
		mockUserRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		authService := service.NewAuthService(mockUserRepo, cfg)

		tokenPair, _, err := authService.Login(context.Background(), user.Email, "password123")
		assert.NoError(t, err)

		refreshed, err := authService.RefreshToken(context.Background(), tokenPair.RefreshToken)
		assert.NoError(t, err)
		assert.NotNil(t, refreshed)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEmpty(t, refreshed.RefreshToken)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		authService := service.NewAuthService(mockUserRepo, cfg)

		tokenPair, err := authService.RefreshToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, tokenPair)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		// The pair is signed with separate secrets, so an access token must
		// not be usable against the refresh endpoint.
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		user := makeUser()
		mockUserRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)

		authService := service.NewAuthService(mockUserRepo, cfg)

		tokenPair, _, err := authService.Login(context.Background(), user.Email, "password123")
		assert.NoError(t, err)

		refreshed, err := authService.RefreshToken(context.Background(), tokenPair.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, refreshed)
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		user := makeUser()
		mockUserRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)

		authService := service.NewAuthService(mockUserRepo, cfg)

		tokenPair, _, err := authService.Login(context.Background(), user.Email, "password123")
		assert.NoError(t, err)

		inactive := *user
		inactive.Active = false
		mockUserRepo.On("FindByID", mock.Anything, user.ID).Return(&inactive, nil)

		refreshed, err := authService.RefreshToken(context.Background(), tokenPair.RefreshToken)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Nil(t, refreshed)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := testAuthConfig()

	t.Run("valid token", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user := &model.User{
			ID:       primitive.NewObjectID(),
			Email:    "test@example.com",
			Password: string(hashedPassword),
			Name:     "Test User",
			Role:     model.RoleAdmin,
			Active:   true,
		}
		mockUserRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)

		authService := service.NewAuthService(mockUserRepo, cfg)

		tokenPair, _, err := authService.Login(context.Background(), user.Email, "password123")
		assert.NoError(t, err)

		claims, err := authService.ValidateToken(context.Background(), tokenPair.AccessToken)
		assert.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})

	t.Run("invalid token format", func(t *testing.T) {
		authService := service.NewAuthService(new(mocks.MockUserRepositoryInterface), cfg)

		claims, err := authService.ValidateToken(context.Background(), "invalid")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		shortCfg := cfg
		shortCfg.AccessTokenTTL = -time.Minute

		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user := &model.User{
			ID:       primitive.NewObjectID(),
			Email:    "test@example.com",
			Password: string(hashedPassword),
			Active:   true,
		}
		mockUserRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)

		authService := service.NewAuthService(mockUserRepo, shortCfg)

		tokenPair, _, err := authService.Login(context.Background(), user.Email, "password123")
		assert.NoError(t, err)

		claims, err := authService.ValidateToken(context.Background(), tokenPair.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("token signed with wrong secret", func(t *testing.T) {
		otherCfg := cfg
		otherCfg.JWTSecretKey = "a-completely-different-secret"

		mockUserRepo := new(mocks.MockUserRepositoryInterface)
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user := &model.User{
			ID:       primitive.NewObjectID(),
			Email:    "test@example.com",
			Password: string(hashedPassword),
			Active:   true,
		}
		mockUserRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)

		otherService := service.NewAuthService(mockUserRepo, otherCfg)
		tokenPair, _, err := otherService.Login(context.Background(), user.Email, "password123")
		assert.NoError(t, err)

		authService := service.NewAuthService(new(mocks.MockUserRepositoryInterface), cfg)
		claims, err := authService.ValidateToken(context.Background(), tokenPair.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
