package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	svc := New(repo, hashService, jwtService)
	return svc, repo, hashService, jwtService
}

func TestService_Register(t *testing.T) {
	svc, repo, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "New login registers",
			mockSetup: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hash", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1, Login: "alice", PasswordHash: "hash"}, nil)
			},
		},
		{
			name: "Taken login",
			mockSetup: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 1, Login: "alice"}, nil)
			},
			wantErr: ErrLoginTaken,
		},
		{
			name: "Hashing failure",
			mockSetup: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("", errors.New("some error"))
			},
			wantErr: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := svc.Register(ctx, "alice", "secret")
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, user.ID)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	svc, repo, hashService, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Valid credentials", func(t *testing.T) {
		repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 1, Login: "alice", PasswordHash: "hash"}, nil)
		hashService.EXPECT().ComparePassword("hash", "secret").Return(true)

		user, err := svc.Authenticate(ctx, "alice", "secret")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 1, Login: "alice", PasswordHash: "hash"}, nil)
		hashService.EXPECT().ComparePassword("hash", "wrong").Return(false)

		user, err := svc.Authenticate(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("Unknown login", func(t *testing.T) {
		repo.EXPECT().FindByLogin(gomock.Any(), "bob").Return(nil, nil)

		user, err := svc.Authenticate(ctx, "bob", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}

func TestService_GenerateToken(t *testing.T) {
	svc, _, _, jwtService := NewMock(t)

	t.Run("Issues a token", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)

		token, err := svc.GenerateToken(1)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Signing failure", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("some error"))

		token, err := svc.GenerateToken(1)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
