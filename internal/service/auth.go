package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/types"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const verificationTokenTTL = 24 * time.Hour

var (
	hasLetter  = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*()]`)
)

// AuthService handles registration, login and JWT issuance. Email
// verification tokens live in redis with a TTL rather than in the database.
type AuthService struct {
	db        *gorm.DB
	redis     *redis.Client
	email     EmailSender
	jwtSecret string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, redisClient *redis.Client, email EmailSender, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		redis:     redisClient,
		email:     email,
		jwtSecret: jwtSecret,
	}
}

// ValidatePassword enforces the account password policy: at least 8
// characters with at least one letter, one digit and one of !@#$%^&*().
func ValidatePassword(password string) error {
	switch {
	case len(password) < 8:
		return NewValidationError("password", "password must be at least 8 characters")
	case !hasLetter.MatchString(password):
		return NewValidationError("password", "password must contain at least one letter")
	case !hasDigit.MatchString(password):
		return NewValidationError("password", "password must contain at least one digit")
	case !hasSpecial.MatchString(password):
		return NewValidationError("password", "password must contain at least one special character (!@#$%^&*())")
	}
	return nil
}

// Register creates a user and mails a verification link. The verification
// token is random, stored in redis keyed by token, and expires after 24h.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, NewValidationError("email", "email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			// Both unique indexes land here; re-check which one did so a
			// concurrent duplicate email is attributed to the right field.
			var count int64
			if err := s.db.WithContext(ctx).Model(&models.User{}).
				Where("email = ?", req.Email).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, NewValidationError("email", "email is already registered")
			}
			return nil, NewValidationError("username", "username is already taken")
		}
		return nil, err
	}

	if s.redis != nil {
		token := uuid.NewString()
		if err := s.redis.Set(ctx, verificationKey(token), user.ID.String(), verificationTokenTTL).Err(); err != nil {
			return nil, err
		}
		if s.email != nil {
			if err := s.email.SendVerificationEmail(user.Email, user.Username, token); err != nil {
				// Registration stands even when the mail fails; the user can
				// request a fresh token.
				return &user, nil
			}
		}
	}

	return &user, nil
}

// VerifyEmail redeems a verification token. Tokens are single use.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if s.redis == nil {
		return ErrNotFound
	}
	userIDStr, err := s.redis.GetDel(ctx, verificationKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return err
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("email_verified", true).Error
}

// Login checks credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(&user)
}

// GenerateToken signs a 24h HS256 token for the user
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and validates a token string
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userIDStr, ok := claims["user_id"].(string)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return nil, err
		}
		username, _ := claims["username"].(string)
		return &types.TokenClaims{
			UserID:   userID,
			Username: username,
		}, nil
	}

	return nil, errors.New("invalid token")
}

// UserStats are the per-user activity totals shown on the profile.
type UserStats struct {
	Articles  int64 `json:"total_articles"`
	Comments  int64 `json:"total_comments"`
	Likes     int64 `json:"total_like_articles"`
	Bookmarks int64 `json:"total_bookmark_articles"`
}

// Me returns the current user with their activity totals, computed from the
// relation sets at read time.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, *UserStats, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var stats UserStats
	if err := s.db.WithContext(ctx).Model(&models.Article{}).Where("user_id = ?", userID).Count(&stats.Articles).Error; err != nil {
		return nil, nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Comment{}).Where("user_id = ?", userID).Count(&stats.Comments).Error; err != nil {
		return nil, nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.ArticleLike{}).Where("user_id = ?", userID).Count(&stats.Likes).Error; err != nil {
		return nil, nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.ArticleBookmark{}).Where("user_id = ?", userID).Count(&stats.Bookmarks).Error; err != nil {
		return nil, nil, err
	}
	return &user, &stats, nil
}

func verificationKey(token string) string {
	return "email_verification:" + token
}
