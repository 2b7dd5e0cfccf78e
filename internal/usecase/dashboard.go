package usecase

import (
	"context"
	"time"

	"github.com/adbonpastor/church-api/internal/entity"
)

type DashboardStats struct {
	TotalMembers        int                    `json:"total_members"`
	RetreatSignups      int                    `json:"retreat_signups"`
	PendingPayments     int                    `json:"pending_payments"`
	AgeDistribution     []AgeBucket            `json:"age_distribution"`
	PaymentStatus       map[string]int         `json:"payment_status"`
	RecentAnnouncements []*entity.Announcement `json:"recent_announcements"`
}

type DashboardUseCase struct {
	MemberRepo       MemberRepositoryInterface
	RetreatRepo      RetreatRepositoryInterface
	AnnouncementRepo AnnouncementRepositoryInterface
}

func NewDashboardUseCase(
	memberRepo MemberRepositoryInterface,
	retreatRepo RetreatRepositoryInterface,
	announcementRepo AnnouncementRepositoryInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		MemberRepo:       memberRepo,
		RetreatRepo:      retreatRepo,
		AnnouncementRepo: announcementRepo,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context) (*DashboardStats, error) {
	members, err := uc.MemberRepo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load members: " + err.Error()}
	}

	statusCounts, err := uc.RetreatRepo.CountByStatus(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load retreat stats: " + err.Error()}
	}

	signups := 0
	for _, n := range statusCounts {
		signups += n
	}

	announcements, err := uc.AnnouncementRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load announcements: " + err.Error()}
	}

	return &DashboardStats{
		TotalMembers:        len(members),
		RetreatSignups:      signups,
		PendingPayments:     statusCounts[entity.PaymentStatusPending],
		AgeDistribution:     AgeDistribution(members, time.Now()),
		PaymentStatus:       statusCounts,
		RecentAnnouncements: announcements,
	}, nil
}
