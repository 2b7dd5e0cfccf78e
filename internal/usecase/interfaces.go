package usecase

import (
	"context"

	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/infra/queue"
)

type MemberRepositoryInterface interface {
	Create(ctx context.Context, m *entity.Member) error
	FindByID(ctx context.Context, id string) (*entity.Member, error)
	FindByMemberID(ctx context.Context, memberID string) (*entity.Member, error)
	FindAll(ctx context.Context) ([]*entity.Member, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

type RetreatRepositoryInterface interface {
	Create(ctx context.Context, r *entity.RetreatRegistration) error
	FindByMemberID(ctx context.Context, memberID string) (*entity.RetreatRegistration, error)
	FindAll(ctx context.Context) ([]*entity.RetreatRegistration, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type AnnouncementRepositoryInterface interface {
	Create(ctx context.Context, a *entity.Announcement) error
	FindRecent(ctx context.Context, limit int) ([]*entity.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type QueueProducerInterface interface {
	PublishWelcome(ctx context.Context, payload queue.WelcomePayload) error
}

type EmailService interface {
	SendWelcome(to, name, memberID, cardLink string) error
}

// PostalLookup resolve município a partir de país + código postal.
// Falha devolve string vazia, nunca erro: é só enriquecimento de formulário.
type PostalLookup interface {
	Municipality(ctx context.Context, country, postalCode string) string
}
