package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/auth"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
)

// AuthService authenticates dashboard operators against a JSON roster
// file and mints session tokens.
type AuthService struct {
	operators map[string]*domain.Operator // keyed by lowercase email
	tokens    *auth.TokenService
	logger    *slog.Logger
}

// NewAuthService loads the operator roster and wires the token service.
func NewAuthService(operatorsFile string, tokens *auth.TokenService, logger *slog.Logger) (*AuthService, error) {
	operators, err := loadOperators(operatorsFile)
	if err != nil {
		return nil, err
	}
	if len(operators) == 0 {
		logger.Warn("operator roster is empty; dashboard login is disabled", "file", operatorsFile)
	}
	return &AuthService{
		operators: operators,
		tokens:    tokens,
		logger:    logger,
	}, nil
}

// LoginResult carries the minted session token and the operator's
// public profile.
type LoginResult struct {
	AccessToken string        `json:"access_token"`
	Operator    OperatorInfo  `json:"operator"`
	Region      domain.Region `json:"region"`
}

// OperatorInfo is the operator profile returned to the dashboard.
type OperatorInfo struct {
	Email       string      `json:"email"`
	DisplayName string      `json:"display_name"`
	Role        domain.Role `json:"role"`
}

// Login verifies credentials and returns a session token. The error is
// deliberately identical for unknown emails and wrong passwords.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	op, ok := s.operators[strings.ToLower(strings.TrimSpace(email))]
	if !ok || !auth.VerifyPassword(op.PasswordHash, password) {
		return nil, errors.InvalidCredentials("invalid email or password")
	}

	token, err := s.tokens.GenerateAccessToken(op)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to generate access token")
	}

	s.logger.Info("operator logged in", "email", op.Email, "role", op.Role)
	return &LoginResult{
		AccessToken: token,
		Operator: OperatorInfo{
			Email:       op.Email,
			DisplayName: op.DisplayName,
			Role:        op.Role,
		},
		Region: op.Region,
	}, nil
}

// loadOperators reads the operator roster JSON: an array of operators
// with pre-hashed passwords. A missing file yields an empty roster.
func loadOperators(path string) (map[string]*domain.Operator, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- roster path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*domain.Operator{}, nil
		}
		return nil, errors.Wrapf(err, errors.CodeInternal, "failed to read operator roster %s", path)
	}

	var list []domain.Operator
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrapf(err, errors.CodeInternal, "failed to parse operator roster %s", path)
	}

	operators := make(map[string]*domain.Operator, len(list))
	for i := range list {
		op := &list[i]
		if !op.Role.Valid() {
			return nil, errors.Internalf("operator %s has invalid role %q", op.Email, op.Role)
		}
		operators[strings.ToLower(op.Email)] = op
	}
	return operators, nil
}
