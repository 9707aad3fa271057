package service_test

import (
	"context"
	"testing"
	"time"

	"tireshop/internal/entity"
	"tireshop/internal/service"
	mock_service "tireshop/internal/service/mock"
	"tireshop/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()
	password := "correct-horse-battery-staple"

	testCases := []struct {
		desc     string
		password string
		mocks    func(
			adminRepo *mock_service.MockAdminRepository,
			tokens *mock_service.MockTokenIssuer,
			hash string,
		)
		wantErr error
	}{
		{
			desc:     "Success",
			password: password,
			mocks: func(
				adminRepo *mock_service.MockAdminRepository,
				tokens *mock_service.MockTokenIssuer,
				hash string,
			) {
				adminRepo.EXPECT().GetByUsername(ctx, "admin").
					Return(&entity.Admin{
						ID:           1,
						Username:     "admin",
						PasswordHash: hash,
					}, nil).Times(1)

				tokens.EXPECT().Issue("admin", "ADMIN").
					Return("signed-token", nil).Times(1)
				tokens.EXPECT().TTL().Return(time.Hour).Times(1)
			},
			wantErr: nil,
		},
		{
			desc:     "UnknownUsername",
			password: password,
			mocks: func(
				adminRepo *mock_service.MockAdminRepository,
				tokens *mock_service.MockTokenIssuer,
				hash string,
			) {
				adminRepo.EXPECT().GetByUsername(ctx, "admin").
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			wantErr: entity.ErrInvalidCredentials,
		},
		{
			desc:     "WrongPassword",
			password: "not-the-password",
			mocks: func(
				adminRepo *mock_service.MockAdminRepository,
				tokens *mock_service.MockTokenIssuer,
				hash string,
			) {
				adminRepo.EXPECT().GetByUsername(ctx, "admin").
					Return(&entity.Admin{
						ID:           1,
						Username:     "admin",
						PasswordHash: hash,
					}, nil).Times(1)
			},
			wantErr: entity.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			adminRepo := mock_service.NewMockAdminRepository(ctrl)
			tokens := mock_service.NewMockTokenIssuer(ctrl)

			hash := hashPassword(t, password)
			tc.mocks(adminRepo, tokens, hash)

			svc := service.NewAdminService(adminRepo, tokens, logger.NewNop())
			token, expiresIn, err := svc.Login(ctx, "admin", tc.password)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, token)
				assert.Zero(t, expiresIn)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed-token", token)
			assert.Equal(t, int64(3600), expiresIn)
		})
	}
}

func TestAdminService_Login_TrimsUsername(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	adminRepo := mock_service.NewMockAdminRepository(ctrl)
	tokens := mock_service.NewMockTokenIssuer(ctrl)

	adminRepo.EXPECT().GetByUsername(ctx, "admin").
		Return(nil, entity.ErrDataNotFound).Times(1)

	svc := service.NewAdminService(adminRepo, tokens, logger.NewNop())
	_, _, err := svc.Login(ctx, "  admin  ", "whatever")

	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestAdminService_Seed(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc     string
		username string
		password string
		mocks    func(adminRepo *mock_service.MockAdminRepository)
		wantErr  bool
	}{
		{
			desc:     "CreatesAccount",
			username: "admin",
			password: "seed-password",
			mocks: func(adminRepo *mock_service.MockAdminRepository) {
				adminRepo.EXPECT().GetByUsername(ctx, "admin").
					Return(nil, entity.ErrDataNotFound).Times(1)
				adminRepo.EXPECT().Create(ctx, "admin", gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						username, passwordHash string,
					) (*entity.Admin, error) {
						err := bcrypt.CompareHashAndPassword(
							[]byte(passwordHash), []byte("seed-password"))
						require.NoError(t, err)
						return &entity.Admin{ID: 1, Username: username}, nil
					}).Times(1)
			},
		},
		{
			desc:     "SkipsWhenNoCredentials",
			username: "",
			password: "",
			mocks:    func(adminRepo *mock_service.MockAdminRepository) {},
		},
		{
			desc:     "SkipsWhenAlreadySeeded",
			username: "admin",
			password: "seed-password",
			mocks: func(adminRepo *mock_service.MockAdminRepository) {
				adminRepo.EXPECT().GetByUsername(ctx, "admin").
					Return(&entity.Admin{ID: 1, Username: "admin"}, nil).Times(1)
			},
		},
		{
			desc:     "ToleratesConcurrentSeed",
			username: "admin",
			password: "seed-password",
			mocks: func(adminRepo *mock_service.MockAdminRepository) {
				adminRepo.EXPECT().GetByUsername(ctx, "admin").
					Return(nil, entity.ErrDataNotFound).Times(1)
				adminRepo.EXPECT().Create(ctx, "admin", gomock.Any()).
					Return(nil, entity.ErrConflictingData).Times(1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			adminRepo := mock_service.NewMockAdminRepository(ctrl)
			tokens := mock_service.NewMockTokenIssuer(ctrl)

			tc.mocks(adminRepo)

			svc := service.NewAdminService(adminRepo, tokens, logger.NewNop())
			err := svc.Seed(ctx, tc.username, tc.password)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
