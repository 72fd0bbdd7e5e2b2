package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profilytics/backend/internal/app/models"
	"github.com/profilytics/backend/internal/pkg/apperrors"
	"github.com/profilytics/backend/internal/pkg/dberrors"
	"github.com/profilytics/backend/internal/pkg/helpers"
	"github.com/profilytics/backend/internal/pkg/logger"
)

// ProfileDetailRepository handles education, experience and skill database
// operations for profiles
type ProfileDetailRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileDetailRepository creates a new ProfileDetailRepository
func NewProfileDetailRepository(db *pgxpool.Pool) *ProfileDetailRepository {
	return &ProfileDetailRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateEducation inserts an education entry for a profile
func (r *ProfileDetailRepository) CreateEducation(ctx context.Context, education *models.Education) (int64, error) {
	querySql, args, err := r.sb.Insert("education").
		Columns("profile_id", "school", "degree", "field", "start_date", "end_date", "description").
		Values(
			education.ProfileID, education.School, education.Degree, education.Field,
			education.StartDate, education.EndDate, helpers.GetNullString(education.Description),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create education SQL")
		return 0, fmt.Errorf("failed to build create education query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&education.ID, &education.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("profileID", education.ProfileID).Msg("Error executing create education query")
		return 0, fmt.Errorf("error inserting education: %w", err)
	}

	return education.ID, nil
}

// GetEducationForProfile retrieves a profile's education entries, most recent
// start date first
func (r *ProfileDetailRepository) GetEducationForProfile(ctx context.Context, profileID int64) ([]models.Education, error) {
	querySql, args, err := r.sb.Select("id", "profile_id", "school", "degree", "field",
		"start_date", "end_date", "description", "created_at").
		From("education").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get education SQL")
		return nil, fmt.Errorf("failed to build get education query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get education query")
		return nil, fmt.Errorf("failed to query education: %w", err)
	}
	defer rows.Close()

	entries := []models.Education{}
	for rows.Next() {
		var entry models.Education
		var endDate sql.NullTime
		var description sql.NullString
		if err := rows.Scan(&entry.ID, &entry.ProfileID, &entry.School, &entry.Degree, &entry.Field,
			&entry.StartDate, &endDate, &description, &entry.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning education row")
			return nil, fmt.Errorf("failed to scan education row: %w", err)
		}
		if endDate.Valid {
			entry.EndDate = &endDate.Time
		}
		if description.Valid {
			entry.Description = &description.String
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating education rows: %w", err)
	}

	return entries, nil
}

// DeleteEducation removes an education entry. Only the owning profile's id
// matches.
func (r *ProfileDetailRepository) DeleteEducation(ctx context.Context, id, profileID int64) error {
	querySql, args, err := r.sb.Delete("education").
		Where(squirrel.Eq{"id": id, "profile_id": profileID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete education SQL")
		return fmt.Errorf("failed to build delete education query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("educationID", id).Msg("Error executing delete education query")
		return fmt.Errorf("error deleting education: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEducationNotFound
	}

	return nil
}

// CreateExperience inserts a work experience entry for a profile
func (r *ProfileDetailRepository) CreateExperience(ctx context.Context, experience *models.Experience) (int64, error) {
	querySql, args, err := r.sb.Insert("experiences").
		Columns("profile_id", "title", "company", "location", "start_date", "end_date", "description").
		Values(
			experience.ProfileID, experience.Title, experience.Company,
			helpers.GetNullString(experience.Location),
			experience.StartDate, experience.EndDate, helpers.GetNullString(experience.Description),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create experience SQL")
		return 0, fmt.Errorf("failed to build create experience query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&experience.ID, &experience.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("profileID", experience.ProfileID).Msg("Error executing create experience query")
		return 0, fmt.Errorf("error inserting experience: %w", err)
	}

	return experience.ID, nil
}

// GetExperiencesForProfile retrieves a profile's experience entries, most
// recent start date first
func (r *ProfileDetailRepository) GetExperiencesForProfile(ctx context.Context, profileID int64) ([]models.Experience, error) {
	querySql, args, err := r.sb.Select("id", "profile_id", "title", "company", "location",
		"start_date", "end_date", "description", "created_at").
		From("experiences").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get experiences SQL")
		return nil, fmt.Errorf("failed to build get experiences query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get experiences query")
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}
	defer rows.Close()

	entries := []models.Experience{}
	for rows.Next() {
		var entry models.Experience
		var location, description sql.NullString
		var endDate sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.ProfileID, &entry.Title, &entry.Company, &location,
			&entry.StartDate, &endDate, &description, &entry.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning experience row")
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		if location.Valid {
			entry.Location = &location.String
		}
		if endDate.Valid {
			entry.EndDate = &endDate.Time
		}
		if description.Valid {
			entry.Description = &description.String
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating experience rows: %w", err)
	}

	return entries, nil
}

// DeleteExperience removes an experience entry. Only the owning profile's id
// matches.
func (r *ProfileDetailRepository) DeleteExperience(ctx context.Context, id, profileID int64) error {
	querySql, args, err := r.sb.Delete("experiences").
		Where(squirrel.Eq{"id": id, "profile_id": profileID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete experience SQL")
		return fmt.Errorf("failed to build delete experience query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("experienceID", id).Msg("Error executing delete experience query")
		return fmt.Errorf("error deleting experience: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExperienceNotFound
	}

	return nil
}

// GetSkillByName retrieves a skill by its exact name
func (r *ProfileDetailRepository) GetSkillByName(ctx context.Context, name string) (*models.Skill, error) {
	querySql, args, err := r.sb.Select("id", "name").
		From("skills").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get skill by name SQL")
		return nil, fmt.Errorf("failed to build get skill query: %w", err)
	}

	var skill models.Skill
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&skill.ID, &skill.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSkillNotFound
		}
		logger.Error().Err(err).Str("name", name).Msg("Error scanning skill row")
		return nil, fmt.Errorf("error querying skill %q: %w", name, err)
	}

	return &skill, nil
}

// CreateSkill inserts a skill name. When a concurrent insert wins the unique
// race the existing row is returned instead.
func (r *ProfileDetailRepository) CreateSkill(ctx context.Context, name string) (*models.Skill, error) {
	querySql, args, err := r.sb.Insert("skills").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create skill SQL")
		return nil, fmt.Errorf("failed to build create skill query: %w", err)
	}

	skill := models.Skill{Name: name}
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&skill.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return r.GetSkillByName(ctx, name)
		}
		logger.Error().Err(err).Str("name", name).Msg("Error executing create skill query")
		return nil, fmt.Errorf("error inserting skill: %w", err)
	}

	return &skill, nil
}

// LinkSkillToProfile attaches a skill to a profile. Linking an already
// attached skill is a no-op.
func (r *ProfileDetailRepository) LinkSkillToProfile(ctx context.Context, profileID, skillID int64) error {
	querySql, args, err := r.sb.Insert("profile_skills").
		Columns("profile_id", "skill_id").
		Values(profileID, skillID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building link skill SQL")
		return fmt.Errorf("failed to build link skill query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSkillNotFound
		}
		logger.Error().Err(err).Int64("profileID", profileID).Int64("skillID", skillID).Msg("Error executing link skill query")
		return fmt.Errorf("error linking skill: %w", err)
	}

	return nil
}

// UnlinkSkillFromProfile detaches a skill from a profile
func (r *ProfileDetailRepository) UnlinkSkillFromProfile(ctx context.Context, profileID, skillID int64) error {
	querySql, args, err := r.sb.Delete("profile_skills").
		Where(squirrel.Eq{"profile_id": profileID, "skill_id": skillID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building unlink skill SQL")
		return fmt.Errorf("failed to build unlink skill query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("profileID", profileID).Int64("skillID", skillID).Msg("Error executing unlink skill query")
		return fmt.Errorf("error unlinking skill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSkillNotFound
	}

	return nil
}

// GetSkillsForProfile retrieves a profile's skills with names joined,
// alphabetical
func (r *ProfileDetailRepository) GetSkillsForProfile(ctx context.Context, profileID int64) ([]models.ProfileSkill, error) {
	querySql, args, err := r.sb.Select("ps.skill_id", "s.name", "ps.endorsement_count").
		From("profile_skills ps").
		Join("skills s ON s.id = ps.skill_id").
		Where(squirrel.Eq{"ps.profile_id": profileID}).
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile skills SQL")
		return nil, fmt.Errorf("failed to build get profile skills query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get profile skills query")
		return nil, fmt.Errorf("failed to query profile skills: %w", err)
	}
	defer rows.Close()

	skills := []models.ProfileSkill{}
	for rows.Next() {
		var skill models.ProfileSkill
		if err := rows.Scan(&skill.SkillID, &skill.Name, &skill.EndorsementCount); err != nil {
			logger.Error().Err(err).Msg("Error scanning profile skill row")
			return nil, fmt.Errorf("failed to scan profile skill row: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile skill rows: %w", err)
	}

	return skills, nil
}
