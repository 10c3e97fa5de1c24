package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"phishguard/internal/domain/scan"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, fb *Feedback) (int, error) {
	args := m.Called(ctx, fb)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetByScanID(ctx context.Context, scanID int) (*Feedback, error) {
	args := m.Called(ctx, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Feedback), args.Error(1)
}

// MockScanRepository mocks the scan.Repository used for existence checks
type MockScanRepository struct {
	mock.Mock
}

func (m *MockScanRepository) Create(ctx context.Context, sc *scan.Scan) (int, error) {
	args := m.Called(ctx, sc)
	return args.Int(0), args.Error(1)
}

func (m *MockScanRepository) Get(ctx context.Context, id int) (*scan.Scan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scan.Scan), args.Error(1)
}

func (m *MockScanRepository) List(ctx context.Context, limit, offset int) ([]scan.Scan, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]scan.Scan), args.Error(1)
}

func (m *MockScanRepository) ListByType(ctx context.Context, typ scan.ScanType, limit int) ([]scan.Scan, error) {
	args := m.Called(ctx, typ, limit)
	return args.Get(0).([]scan.Scan), args.Error(1)
}

func (m *MockScanRepository) Stats(ctx context.Context) (scan.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(scan.Stats), args.Error(1)
}

func TestService_Submit(t *testing.T) {
	mockRepo := new(MockRepository)
	mockScans := new(MockScanRepository)
	service := NewService(mockRepo, mockScans, slog.Default())

	mockScans.On("Get", mock.Anything, 1).Return(&scan.Scan{ID: 1}, nil)

	comment := "verdict matched reality"
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(fb *Feedback) bool {
		return fb.ScanID == 1 && fb.IsCorrect && fb.Comment == &comment && !fb.CreatedAt.IsZero()
	})).Return(11, nil)

	fb, err := service.Submit(context.Background(), 1, true, &comment)
	assert.NoError(t, err)
	assert.Equal(t, 11, fb.ID)
	assert.Equal(t, 1, fb.ScanID)
	assert.True(t, fb.IsCorrect)

	mockRepo.AssertExpectations(t)
	mockScans.AssertExpectations(t)
}

func TestService_Submit_ScanNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockScans := new(MockScanRepository)
	service := NewService(mockRepo, mockScans, slog.Default())

	mockScans.On("Get", mock.Anything, 99).Return(nil, scan.ErrNotFound)

	_, err := service.Submit(context.Background(), 99, true, nil)
	assert.ErrorIs(t, err, scan.ErrNotFound)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockScans.AssertExpectations(t)
}

func TestService_Submit_AlreadyExists(t *testing.T) {
	mockRepo := new(MockRepository)
	mockScans := new(MockScanRepository)
	service := NewService(mockRepo, mockScans, slog.Default())

	mockScans.On("Get", mock.Anything, 1).Return(&scan.Scan{ID: 1}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(0, ErrAlreadyExists)

	_, err := service.Submit(context.Background(), 1, false, nil)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	mockRepo.AssertExpectations(t)
	mockScans.AssertExpectations(t)
}

func TestService_Submit_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockScans := new(MockScanRepository)
	service := NewService(mockRepo, mockScans, slog.Default())

	mockScans.On("Get", mock.Anything, 1).Return(&scan.Scan{ID: 1}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(0, errors.New("database error"))

	_, err := service.Submit(context.Background(), 1, true, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_GetByScanID(t *testing.T) {
	mockRepo := new(MockRepository)
	mockScans := new(MockScanRepository)
	service := NewService(mockRepo, mockScans, slog.Default())

	stored := &Feedback{ID: 2, ScanID: 1, IsCorrect: false}
	mockRepo.On("GetByScanID", mock.Anything, 1).Return(stored, nil)

	got, err := service.GetByScanID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, stored, got)

	mockRepo.AssertExpectations(t)
}

func TestService_GetByScanID_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockScans := new(MockScanRepository)
	service := NewService(mockRepo, mockScans, slog.Default())

	mockRepo.On("GetByScanID", mock.Anything, 5).Return(nil, ErrNotFound)

	_, err := service.GetByScanID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}
