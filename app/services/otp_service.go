package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"goshop/app/models"
	"goshop/app/repositories"
)

var (
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrNoCode          = errors.New("no code was requested for this phone")
	ErrCodeMismatch    = errors.New("code does not match")
	ErrCodeExpired     = errors.New("code has expired")
	ErrTooManyAttempts = errors.New("too many failed attempts")
)

const (
	DefaultOTPTTL         = 2 * time.Minute
	DefaultOTPMaxAttempts = 5
)

// OTPService issues and verifies one-time login codes. A phone has at
// most one live code; requesting again overwrites it. Codes expire after
// the configured TTL and die after too many wrong guesses.
type OTPService struct {
	otpRepo     repositories.OtpRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
	sms         SMSSender
	ttl         time.Duration
	maxAttempts int
	now         func() time.Time
}

func NewOTPService(otpRepo repositories.OtpRepositoryImpl, userRepo repositories.UserRepositoryImpl, sms SMSSender, ttl time.Duration, maxAttempts int) *OTPService {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultOTPMaxAttempts
	}
	return &OTPService{
		otpRepo:     otpRepo,
		userRepo:    userRepo,
		sms:         sms,
		ttl:         ttl,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// ValidatePhone accepts 11-digit numbers with the 09 prefix.
func ValidatePhone(phone string) error {
	if len(phone) != 11 || phone[0] != '0' || phone[1] != '9' {
		return ErrInvalidPhone
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}

// Request stores a fresh 6-digit code for the phone and hands delivery
// to the SMS collaborator.
func (s *OTPService) Request(ctx context.Context, phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	if err := s.otpRepo.Upsert(ctx, phone, code); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}
	return s.sms.Send(ctx, phone, fmt.Sprintf("Your verification code is %d", code))
}

// Verify checks the submitted code. On a match the user is fetched or
// created by phone and the code record is deleted; a code is single use.
// The bool reports whether the account was created on this login.
func (s *OTPService) Verify(ctx context.Context, phone string, code int) (*models.User, bool, error) {
	otp, err := s.otpRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, false, err
	}
	if otp == nil {
		return nil, false, ErrNoCode
	}

	if s.now().Sub(otp.CreatedAt) > s.ttl {
		_ = s.otpRepo.DeleteByPhone(ctx, phone)
		return nil, false, ErrCodeExpired
	}
	if otp.Attempts >= s.maxAttempts {
		_ = s.otpRepo.DeleteByPhone(ctx, phone)
		return nil, false, ErrTooManyAttempts
	}
	if otp.Code != code {
		if err := s.otpRepo.IncrementAttempts(ctx, phone); err != nil {
			return nil, false, err
		}
		return nil, false, ErrCodeMismatch
	}

	user, created, err := s.userRepo.GetOrCreateByPhone(ctx, phone)
	if err != nil {
		return nil, false, err
	}
	if err := s.otpRepo.DeleteByPhone(ctx, phone); err != nil {
		return nil, false, err
	}
	return user, created, nil
}

// generateCode draws a 6-digit code from a cryptographically secure
// source, in the range 100000-999999.
func generateCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}
