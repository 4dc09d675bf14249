package seed

import (
	"context"
	"errors"
	"os"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/app/services"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/helpers"
	"github.com/selimd/admitflow/internal/pkg/logger"
)

// defaultCriteria are the sample program criteria created on first start.
var defaultCriteria = []models.EligibilityCriteria{
	{
		Program:          "Computer Science",
		MinGPA:           3.0,
		RequiredSubjects: "Mathematics, Physics",
		Capacity:         120,
	},
	{
		Program:          "Nursing",
		MinGPA:           2.8,
		RequiredSubjects: "Biology, Chemistry",
		Capacity:         80,
	},
	{
		Program:                "Engineering",
		MinGPA:                 3.2,
		RequiredSubjects:       "Mathematics, Physics, Chemistry",
		AdditionalRequirements: "Entrance examination",
		Capacity:               100,
	},
}

// CreateDefaultData seeds the default admin account and sample eligibility
// criteria. Idempotent: existing records are left untouched.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, authService *services.AuthService) error {
	if err := seedAdminAccount(ctx, authService); err != nil {
		return err
	}
	return seedCriteria(ctx, repos)
}

func seedAdminAccount(ctx context.Context, authService *services.AuthService) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@admitflow.dev"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-on-first-login"
	}

	account, err := authService.CreateStaffAccount(ctx, email, password, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return err
	}

	logger.Info().Str("email", account.Email).Msg("Default admin account created")
	return nil
}

func seedCriteria(ctx context.Context, repos *repositories.Repositories) error {
	count, err := repos.Criteria.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sample := range defaultCriteria {
		criteria := sample
		criteria.ID = helpers.GenerateID("CRIT")
		if err := repos.Criteria.Create(ctx, &criteria); err != nil {
			return err
		}
	}

	logger.Info().Int("programs", len(defaultCriteria)).Msg("Sample eligibility criteria created")
	return nil
}
