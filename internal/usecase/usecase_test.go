package usecase_test

import (
	"context"
	"testing"

	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/internal/scheduling"
	"go-interview-scheduler/internal/usecase"
	"go-interview-scheduler/pkg/apperror"
	"go-interview-scheduler/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Skill, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

type MockSpecialistRepo struct {
	mock.Mock
}

func (m *MockSpecialistRepo) Create(ctx context.Context, sp *domain.Specialist, skillIDs []string) error {
	return m.Called(ctx, sp, skillIDs).Error(0)
}

func (m *MockSpecialistRepo) GetByID(ctx context.Context, id string) (*domain.Specialist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Specialist), args.Error(1)
}

func (m *MockSpecialistRepo) Fetch(ctx context.Context) ([]domain.Specialist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Specialist), args.Error(1)
}

func (m *MockSpecialistRepo) Update(ctx context.Context, sp *domain.Specialist, skillIDs []string) error {
	return m.Called(ctx, sp, skillIDs).Error(0)
}

func (m *MockSpecialistRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Schedule(ctx context.Context, iv *domain.Interview, skillIDs []string) error {
	return m.Called(ctx, iv, skillIDs).Error(0)
}

func (m *MockInterviewRepo) Transfer(ctx context.Context, interviewID, newSpecialistID string) error {
	return m.Called(ctx, interviewID, newSpecialistID).Error(0)
}

func (m *MockInterviewRepo) FetchBySpecialist(ctx context.Context, specialistID string) ([]domain.Interview, error) {
	args := m.Called(ctx, specialistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestCreateSkill(t *testing.T) {
	t.Run("Should reject blank names", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo))
		_, err := uc.CreateSkill(context.Background(), "   ")
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Should generate an id and persist", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.ID != "" && s.Name == "Go"
		})).Return(nil)

		uc := usecase.NewSkillUsecase(mockRepo)
		skill, err := uc.CreateSkill(context.Background(), " Go ")
		require.NoError(t, err)
		assert.Equal(t, "Go", skill.Name)
		assert.NotEmpty(t, skill.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should map duplicate names to a 400", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateSkill)

		uc := usecase.NewSkillUsecase(mockRepo)
		_, err := uc.CreateSkill(context.Background(), "Go")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestCreateSpecialistValidation(t *testing.T) {
	uc := usecase.NewSpecialistUsecase(new(MockSpecialistRepo), newValidate())

	t.Run("Should reject a malformed availability window", func(t *testing.T) {
		_, err := uc.CreateSpecialist(context.Background(), &domain.Specialist{
			FullName:      "Olga Petrova",
			AvailableFrom: "not-a-time",
			AvailableTo:   "17:00",
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Available from")
	})

	t.Run("Should reject a window that ends before it starts", func(t *testing.T) {
		_, err := uc.CreateSpecialist(context.Background(), &domain.Specialist{
			FullName:      "Olga Petrova",
			AvailableFrom: "17:00",
			AvailableTo:   "09:00",
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AvailableFrom cannot be later than AvailableTo")
	})

	t.Run("Should normalize HH:MM input and deduplicate skills", func(t *testing.T) {
		mockRepo := new(MockSpecialistRepo)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(sp *domain.Specialist) bool {
			return sp.AvailableFrom == "09:00:00" && sp.AvailableTo == "17:00:00"
		}), []string{"a", "b"}).Return(nil)
		mockRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Specialist{ID: "x"}, nil)

		uc := usecase.NewSpecialistUsecase(mockRepo, newValidate())
		_, err := uc.CreateSpecialist(context.Background(), &domain.Specialist{
			FullName:      "Olga Petrova",
			AvailableFrom: "09:00",
			AvailableTo:   "17:00",
		}, []string{"a", "b", "a"})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateSpecialistRevalidation(t *testing.T) {
	mockRepo := new(MockSpecialistRepo)
	mockRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(&domain.RevalidationError{
		InterviewID:   "iv-1",
		CandidateName: "Ivan Sidorov",
		InterviewTime: "10:00:00",
		Decision:      scheduling.Decision{Code: scheduling.CodeOutOfAvailabilityWindow},
	})

	uc := usecase.NewSpecialistUsecase(mockRepo, newValidate())
	err := uc.UpdateSpecialist(context.Background(), &domain.Specialist{
		ID:            "sp-1",
		FullName:      "Olga Petrova",
		AvailableFrom: "11:00",
		AvailableTo:   "17:00",
	}, nil)

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Ivan Sidorov")
	assert.Contains(t, appErr.Message, "outside the new availability window")
}

func TestScheduleInterview(t *testing.T) {
	t.Run("Should apply the default duration", func(t *testing.T) {
		mockIvRepo := new(MockInterviewRepo)
		mockSkillRepo := new(MockSkillRepo)
		mockIvRepo.On("Schedule", mock.Anything, mock.MatchedBy(func(iv *domain.Interview) bool {
			return iv.DurationMinutes == 60 && iv.InterviewTime == "10:00:00" && iv.ID != ""
		}), mock.Anything).Return(nil)
		mockSkillRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]domain.Skill{}, nil)

		uc := usecase.NewInterviewUsecase(mockIvRepo, mockSkillRepo, newValidate(), 60)
		iv, err := uc.ScheduleInterview(context.Background(), &domain.Interview{
			SpecialistID:  "3e0a2a1e-5b7f-4c42-9f51-2f24a1a0b111",
			CandidateName: "Ivan Sidorov",
			InterviewTime: "10:00",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 60, iv.DurationMinutes)
		mockIvRepo.AssertExpectations(t)
	})

	t.Run("Should reject nonpositive durations", func(t *testing.T) {
		uc := usecase.NewInterviewUsecase(new(MockInterviewRepo), new(MockSkillRepo), newValidate(), 60)
		_, err := uc.ScheduleInterview(context.Background(), &domain.Interview{
			SpecialistID:    "3e0a2a1e-5b7f-4c42-9f51-2f24a1a0b111",
			CandidateName:   "Ivan Sidorov",
			InterviewTime:   "10:00",
			DurationMinutes: -30,
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Duration")
	})

	t.Run("Should surface a missing specialist as 404", func(t *testing.T) {
		mockIvRepo := new(MockInterviewRepo)
		mockIvRepo.On("Schedule", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrSpecialistNotFound)

		uc := usecase.NewInterviewUsecase(mockIvRepo, new(MockSkillRepo), newValidate(), 60)
		_, err := uc.ScheduleInterview(context.Background(), &domain.Interview{
			SpecialistID:  "3e0a2a1e-5b7f-4c42-9f51-2f24a1a0b111",
			CandidateName: "Ivan Sidorov",
			InterviewTime: "10:00",
		}, nil)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Specialist not found", appErr.Message)
	})

	t.Run("Should translate validator rejections to the classic messages", func(t *testing.T) {
		cases := []struct {
			name     string
			decision scheduling.Decision
			message  string
		}{
			{
				"availability",
				scheduling.Decision{Code: scheduling.CodeOutOfAvailabilityWindow},
				"Specialist is not available at this time",
			},
			{
				"conflict",
				scheduling.Decision{Code: scheduling.CodeTimeSlotConflict},
				"Time slot overlaps with existing interview",
			},
			{
				"skills",
				scheduling.Decision{Code: scheduling.CodeInsufficientSkillMatch, MatchPercentage: 60},
				"Skill match is only 60% (minimum 80% required)",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockIvRepo := new(MockInterviewRepo)
				mockIvRepo.On("Schedule", mock.Anything, mock.Anything, mock.Anything).
					Return(&scheduling.RejectionError{Decision: tc.decision})

				uc := usecase.NewInterviewUsecase(mockIvRepo, new(MockSkillRepo), newValidate(), 60)
				_, err := uc.ScheduleInterview(context.Background(), &domain.Interview{
					SpecialistID:  "3e0a2a1e-5b7f-4c42-9f51-2f24a1a0b111",
					CandidateName: "Ivan Sidorov",
					InterviewTime: "10:00",
				}, nil)
				require.Error(t, err)
				appErr, ok := err.(*apperror.AppError)
				require.True(t, ok)
				assert.Equal(t, 400, appErr.Code)
				assert.Equal(t, tc.message, appErr.Message)
			})
		}
	})
}

func TestTransferInterview(t *testing.T) {
	t.Run("Should use the transfer wording for rejections", func(t *testing.T) {
		mockIvRepo := new(MockInterviewRepo)
		mockIvRepo.On("Transfer", mock.Anything, "iv-1", "sp-2").
			Return(&scheduling.RejectionError{Decision: scheduling.Decision{Code: scheduling.CodeTimeSlotConflict}})

		uc := usecase.NewInterviewUsecase(mockIvRepo, new(MockSkillRepo), newValidate(), 60)
		err := uc.TransferInterview(context.Background(), "iv-1", "sp-2")
		require.Error(t, err)
		assert.Equal(t, "Time slot overlaps with existing interview for new specialist", err.Error())
	})

	t.Run("Should report the missing target specialist", func(t *testing.T) {
		mockIvRepo := new(MockInterviewRepo)
		mockIvRepo.On("Transfer", mock.Anything, "iv-1", "sp-2").Return(domain.ErrSpecialistNotFound)

		uc := usecase.NewInterviewUsecase(mockIvRepo, new(MockSkillRepo), newValidate(), 60)
		err := uc.TransferInterview(context.Background(), "iv-1", "sp-2")
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "New specialist not found", appErr.Message)
	})

	t.Run("Should succeed when the repository accepts the move", func(t *testing.T) {
		mockIvRepo := new(MockInterviewRepo)
		mockIvRepo.On("Transfer", mock.Anything, "iv-1", "sp-2").Return(nil)

		uc := usecase.NewInterviewUsecase(mockIvRepo, new(MockSkillRepo), newValidate(), 60)
		require.NoError(t, uc.TransferInterview(context.Background(), "iv-1", "sp-2"))
		mockIvRepo.AssertExpectations(t)
	})
}
