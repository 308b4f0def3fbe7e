package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobforge-backend/internal/domain"
	"jobforge-backend/internal/llm"
	"jobforge-backend/internal/usecase"
	"jobforge-backend/pkg/storage"
)

func testFileStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), "resumes")
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string { return &s }

func TestResumeOwnershipGate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), nil)

	t.Run("MissingResumeIs404", func(t *testing.T) {
		mockRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Get(ctx, "user1", "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})

	t.Run("OtherUsersResumeIs404", func(t *testing.T) {
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{ID: "r1", UserID: "user2"}, nil).Once()

		_, err := uc.Get(ctx, "user1", "r1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})

	t.Run("CrossOwnerDeleteLeavesRow", func(t *testing.T) {
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{ID: "r1", UserID: "user2"}, nil).Once()

		err := uc.Delete(ctx, "user1", "r1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestResumeUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstResumeBecomesPrimary", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), nil)
		mockRepo.On("CountByUserID", ctx, "user1").Return(int64(0), nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil).Run(func(args mock.Arguments) {
			resume := args.Get(1).(*domain.Resume)
			assert.True(t, resume.IsPrimary)
			require.NotNil(t, resume.RawText)
			assert.Equal(t, "plain resume text", *resume.RawText)
		})

		resume, err := uc.Upload(ctx, "user1", "My Resume", "cv.txt", "text/plain", []byte("plain resume text"))

		require.NoError(t, err)
		assert.True(t, resume.IsPrimary)
		require.NotNil(t, resume.FileURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("SecondResumeIsNotPrimary", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), nil)
		mockRepo.On("CountByUserID", ctx, "user1").Return(int64(1), nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil)

		resume, err := uc.Upload(ctx, "user1", "Second", "cv.txt", "text/plain", []byte("text"))

		require.NoError(t, err)
		assert.False(t, resume.IsPrimary)
	})

	t.Run("EmptyFileIs400", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), nil)

		_, err := uc.Upload(ctx, "user1", "Empty", "cv.txt", "text/plain", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnsupportedExtensionIs400", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), nil)

		_, err := uc.Upload(ctx, "user1", "Bad", "cv.exe", "application/octet-stream", []byte("x"))

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
	})

	t.Run("TitleDefaultsToFileName", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), nil)
		mockRepo.On("CountByUserID", ctx, "user1").Return(int64(0), nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil)

		resume, err := uc.Upload(ctx, "user1", "", "john-cv.txt", "text/plain", []byte("text"))

		require.NoError(t, err)
		assert.Equal(t, "john-cv", resume.Title)
	})
}

func TestResumeSetPrimary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), nil)

	owned := &domain.Resume{ID: "r1", UserID: "user1"}
	mockRepo.On("GetByID", ctx, "r1").Return(owned, nil)
	mockRepo.On("SetPrimary", ctx, "user1", "r1").Return(nil)

	resume, err := uc.SetPrimary(ctx, "user1", "r1")

	require.NoError(t, err)
	assert.Equal(t, "r1", resume.ID)
	mockRepo.AssertCalled(t, "SetPrimary", ctx, "user1", "r1")
}

func TestResumeAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("NoExtractedTextIs400", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockLLM := new(MockLLMClient)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), mockLLM)
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{ID: "r1", UserID: "user1"}, nil)

		_, err := uc.Analyze(ctx, "user1", "r1", &domain.ResumeAnalysisRequest{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
		mockLLM.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TransportFailureIs502", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockLLM := new(MockLLMClient)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), mockLLM)
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{ID: "r1", UserID: "user1", RawText: strPtr("resume body")}, nil)
		mockLLM.On("Complete", ctx, mock.Anything, true, float32(0.2)).Return(nil, errors.New("connection refused"))

		_, err := uc.Analyze(ctx, "user1", "r1", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, appErrorCode(t, err))
	})

	t.Run("InvalidReplyIs502", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockLLM := new(MockLLMClient)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), mockLLM)
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{ID: "r1", UserID: "user1", RawText: strPtr("resume body")}, nil)
		mockLLM.On("Complete", ctx, mock.Anything, true, float32(0.2)).Return(&llm.Result{Content: `{"ats_score": 300}`}, nil)

		_, err := uc.Analyze(ctx, "user1", "r1", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, appErrorCode(t, err))
		mockRepo.AssertNotCalled(t, "SaveAnalysis", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ValidReplyPersisted", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockLLM := new(MockLLMClient)
		uc := usecase.NewResumeUsecase(mockRepo, testFileStore(t), mockLLM)
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{ID: "r1", UserID: "user1", RawText: strPtr("resume body")}, nil)
		mockLLM.On("Complete", ctx, mock.Anything, true, float32(0.2)).Return(&llm.Result{
			Content: `{"ats_score": 85, "keyword_match_score": 70, "strengths": ["clear"], "weaknesses": [], "suggestions": [], "missing_keywords": ["sql"]}`,
		}, nil)
		mockRepo.On("SaveAnalysis", ctx, "r1", mock.AnythingOfType("*domain.ResumeAnalysis")).Return(nil).Run(func(args mock.Arguments) {
			analysis := args.Get(2).(*domain.ResumeAnalysis)
			assert.Equal(t, 85.0, analysis.ATSScore)
			assert.Equal(t, []string{"sql"}, analysis.MissingKeywords)
		})

		_, err := uc.Analyze(ctx, "user1", "r1", nil)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
