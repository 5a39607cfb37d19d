package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medical-history-service/internal/converter"
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
	"medical-history-service/internal/domain/repository"
	"medical-history-service/internal/service"
	"medical-history-service/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrUserNotFound          = errors.New("user not found")
	ErrRoleNotFound          = errors.New("role not found")
	ErrAccountDisabled       = errors.New("account is disabled")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
	IsTokenValid(ctx context.Context, userID uint, tokenID string, tokenType jwt.TokenType) (bool, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	roleName := req.Role
	if roleName == "" {
		roleName = entity.RolePatient
	}
	role, err := u.roleRepo.FindByName(tx, roleName)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		RoleID:    role.ID,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		IsActive:  &active,
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}
	user.Role = *role

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", fmt.Sprint(user.ID), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Username, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Username, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, user.ID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, "user", fmt.Sprint(user.ID), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes both tokens. Token IDs are globally unique, so a pattern
// scan finds the owning keys without knowing the user ID.
func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if err := u.deleteTokensByPattern(ctx, fmt.Sprintf("access_token:*:%s", accessTokenID)); err != nil {
		return err
	}
	return u.deleteTokensByPattern(ctx, fmt.Sprintf("refresh_token:*:%s", refreshTokenID))
}

func (u *authUsecase) deleteTokensByPattern(ctx context.Context, pattern string) error {
	keys, err := u.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get token keys: %+v", err)
		return err
	}
	if len(keys) > 0 {
		if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
			u.log.Warnf("Failed to delete tokens: %+v", err)
			return err
		}
	}
	return nil
}

// RefreshToken rotates the refresh token: the presented one is consumed and
// a fresh pair is issued, so a replayed refresh token fails as revoked.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%d:%s", claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.UserID, claims.Username, claims.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.UserID, claims.Username, claims.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, claims.UserID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// IsTokenValid reports whether the token is still registered in Redis; a
// missing key means the token was revoked or expired.
func (u *authUsecase) IsTokenValid(ctx context.Context, userID uint, tokenID string, tokenType jwt.TokenType) (bool, error) {
	var key string
	if tokenType == jwt.AccessToken {
		key = fmt.Sprintf("access_token:%d:%s", userID, tokenID)
	} else {
		key = fmt.Sprintf("refresh_token:%d:%s", userID, tokenID)
	}

	exists, err := u.redisClient.Exists(ctx, key).Result()
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}

	return exists > 0, nil
}

func (u *authUsecase) storeTokens(ctx context.Context, userID uint, accessTokenID, refreshTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%d:%s", userID, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%d:%s", userID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return err
	}
	return nil
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation
// naming the given constraint. Other drivers report the violated column in
// the error text instead.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") && strings.Contains(msg, strings.ToLower(constraintName))
}

// isForeignKeyError checks for a PostgreSQL foreign key violation naming the
// given constraint. Drivers that do not name the constraint match on the
// generic violation text.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY")
}
