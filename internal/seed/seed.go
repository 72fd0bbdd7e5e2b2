package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/profilytics/backend/internal/app/models"
	appRepos "github.com/profilytics/backend/internal/app/repositories"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/auth"
)

// CreateDemoData seeds a pair of demo accounts with sample content so a fresh
// install has something to browse. All inserts are idempotent: existing rows
// are left untouched.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating demo data...")
	var finalErr error

	recruiterID, err := ensureUser(ctx, repos, "recruiter@profilytics.app", "demo-pass-1", "Dana Recruiter")
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	memberID, err := ensureUser(ctx, repos, "dev@profilytics.app", "demo-pass-2", "Devin Developer")
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if recruiterID > 0 {
		salary := "90k-120k"
		employment := "Full-time"
		job := &appModels.Job{
			Title:          "Backend Engineer",
			Company:        "ProfiLytics",
			Location:       "Remote",
			Description:    "Build and operate Go services.",
			SalaryRange:    &salary,
			EmploymentType: &employment,
			RecruiterID:    recruiterID,
			ExpiresAt:      time.Now().Add(30 * 24 * time.Hour),
		}
		if jobs, errGet := repos.JobRepository.GetAllJobs(ctx); errGet != nil {
			finalErr = errors.Join(finalErr, errGet)
		} else if len(jobs) == 0 {
			if _, errCreate := repos.JobRepository.CreateJob(ctx, job); errCreate != nil {
				lgr.Error().Err(errCreate).Msg("Error creating demo job")
				finalErr = errors.Join(finalErr, errCreate)
			}
		}

		community := &appModels.Community{
			Name:          "Go Builders",
			Description:   "A community for Go backend developers.",
			CommunityType: appModels.CommunityTypePublic,
			CreatorID:     recruiterID,
		}
		if communities, errGet := repos.CommunityRepository.GetAllCommunities(ctx); errGet != nil {
			finalErr = errors.Join(finalErr, errGet)
		} else if len(communities) == 0 {
			communityID, errCreate := repos.CommunityRepository.CreateCommunity(ctx, community)
			if errCreate != nil {
				lgr.Error().Err(errCreate).Msg("Error creating demo community")
				finalErr = errors.Join(finalErr, errCreate)
			} else if memberID > 0 {
				if _, errJoin := repos.CommunityMemberRepository.CreateMember(ctx, communityID, memberID); errJoin != nil && !errors.Is(errJoin, apperrors.ErrAlreadyRequested) {
					finalErr = errors.Join(finalErr, errJoin)
				} else if errApprove := repos.CommunityMemberRepository.ApproveMember(ctx, communityID, memberID); errApprove != nil {
					finalErr = errors.Join(finalErr, errApprove)
				}
			}
		}
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Demo data seeding finished with errors")
		return finalErr
	}

	lgr.Info().Msg("Demo data check complete.")
	return nil
}

// ensureUser creates a user with a profile unless the email is taken, and
// returns the user's ID either way.
func ensureUser(ctx context.Context, repos *appRepos.Repositories, email, password, fullName string) (int64, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &appModels.User{Email: email, Password: hashed}
	err = repos.UserRepository.CreateUserWithProfile(ctx, user, fullName)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return 0, err
	}

	existing, err := repos.UserRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return existing.ID, nil
}
