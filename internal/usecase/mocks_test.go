package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/novaclaw/agency-api/internal/entity"
	"github.com/novaclaw/agency-api/internal/infra/integration/anthropic"
	"github.com/novaclaw/agency-api/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindRecentUnconverted(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockAgentLogRepository
type MockAgentLogRepository struct {
	mock.Mock
}

func (m *MockAgentLogRepository) Append(ctx context.Context, entry *entity.AgentLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAgentLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.AgentLogEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AgentLogEntry), args.Error(1)
}

// MockContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) CountByStatusSince(ctx context.Context, sinceHours int) (map[string]int, error) {
	args := m.Called(ctx, sinceHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyNewLead(lead *entity.Lead, revisit bool) error {
	args := m.Called(lead, revisit)
	return args.Error(0)
}

// MockLeadEventProducer
type MockLeadEventProducer struct {
	mock.Mock
}

func (m *MockLeadEventProducer) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockChatCompleter
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) CreateMessage(ctx context.Context, input anthropic.CreateMessageInput) (*anthropic.MessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageOutput), args.Error(1)
}
