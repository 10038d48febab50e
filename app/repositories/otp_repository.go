package repositories

import (
	"context"

	"goshop/app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OtpRepositoryImpl interface {
	Upsert(ctx context.Context, phone string, code int) error
	FindByPhone(ctx context.Context, phone string) (*models.OtpCode, error)
	IncrementAttempts(ctx context.Context, phone string) error
	DeleteByPhone(ctx context.Context, phone string) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepositoryImpl {
	return &otpRepository{db}
}

// Upsert stores the live code for a phone number. An existing code for
// the same phone is overwritten and its attempt counter reset, so there
// is always at most one live code per phone.
func (r *otpRepository) Upsert(ctx context.Context, phone string, code int) error {
	otp := models.OtpCode{
		ID:       uuid.New().String(),
		Phone:    phone,
		Code:     code,
		Attempts: 0,
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "attempts", "created_at", "updated_at"}),
		}).Create(&otp).Error
	})
}

func (r *otpRepository) FindByPhone(ctx context.Context, phone string) (*models.OtpCode, error) {
	var otp models.OtpCode
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&otp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) IncrementAttempts(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).
		Model(&models.OtpCode{}).
		Where("phone = ?", phone).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}

func (r *otpRepository) DeleteByPhone(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).Delete(&models.OtpCode{}, "phone = ?", phone).Error
}
