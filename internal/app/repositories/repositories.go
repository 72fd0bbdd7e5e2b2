package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            *UserRepository
	ProfileRepository         *ProfileRepository
	ProfileDetailRepository   *ProfileDetailRepository
	TokenRepository           *TokenRepository
	JobRepository             *JobRepository
	TechEventRepository       *TechEventRepository
	HackathonRepository       *HackathonRepository
	ResourceRepository        *ResourceRepository
	CommunityRepository       *CommunityRepository
	CommunityMemberRepository *CommunityMemberRepository
	ConnectionRepository      *ConnectionRepository
	MessageRepository         *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db),
		ProfileRepository:         NewProfileRepository(db),
		ProfileDetailRepository:   NewProfileDetailRepository(db),
		TokenRepository:           NewTokenRepository(db),
		JobRepository:             NewJobRepository(db),
		TechEventRepository:       NewTechEventRepository(db),
		HackathonRepository:       NewHackathonRepository(db),
		ResourceRepository:        NewResourceRepository(db),
		CommunityRepository:       NewCommunityRepository(db),
		CommunityMemberRepository: NewCommunityMemberRepository(db),
		ConnectionRepository:      NewConnectionRepository(db),
		MessageRepository:         NewMessageRepository(db),
	}
}
