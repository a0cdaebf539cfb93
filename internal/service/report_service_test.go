package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forumflow/internal/auth"
	"forumflow/internal/models"
)

func TestApplyActionStatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		action         string
		expectedStatus string
	}{
		{"resolve moves to resolved", ActionResolve, models.ReportResolved},
		{"warn moves to action_taken", ActionWarn, models.ReportActionTaken},
		{"delete moves to action_taken", ActionDelete, models.ReportActionTaken},
		{"ban moves to action_taken", ActionBan, models.ReportActionTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockReportRepository)
			repo.On("ApplyAction", mock.Anything, "rep1",
				mock.MatchedBy(func(a models.ReportAction) bool {
					return a.Type == tt.action && !a.At.IsZero()
				}), tt.expectedStatus).
				Return(&models.Report{Status: tt.expectedStatus}, nil)

			svc := NewReportService(repo)

			report, err := svc.ApplyAction(context.Background(), "rep1", tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, report.Status)

			repo.AssertExpectations(t)
		})
	}
}

func TestApplyActionInvalid(t *testing.T) {
	repo := new(MockReportRepository)
	svc := NewReportService(repo)

	_, err := svc.ApplyAction(context.Background(), "rep1", "shadowban")
	assert.ErrorIs(t, err, ErrInvalidAction)

	repo.AssertNotCalled(t, "ApplyAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReportUsesVerifiedIdentity(t *testing.T) {
	repo := new(MockReportRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Report) bool {
		return r.ReporterUID == "uid1" &&
			r.ReporterEmail == "reporter@example.com" &&
			r.ReportedUserUID == "uid2" &&
			r.Reason == "spam"
	})).Return("rep1", nil)

	svc := NewReportService(repo)

	id, err := svc.CreateReport(context.Background(),
		auth.Identity{UID: "uid1", Email: "reporter@example.com"},
		CreateReportRequest{
			ReportedUserUID:   "uid2",
			ReportedUserEmail: "bad@example.com",
			ContentID:         "post9",
			Reason:            "spam",
		})
	require.NoError(t, err)
	assert.Equal(t, "rep1", id)

	repo.AssertExpectations(t)
}
