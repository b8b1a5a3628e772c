package maturity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/metrics"
	"github.com/GlebRadaev/goinvest/internal/service/ledgerservice"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 999, time.UTC)

func NewMock(t *testing.T, interval time.Duration) (*Service, *MockRepo, *MockSettler) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	settler := NewMockSettler(ctrl)

	service := New(repo, settler, interval, 50, 2)
	service.now = func() time.Time { return fixedNow }
	return service, repo, settler
}

func matured(id int64) domain.Investment {
	return domain.Investment{
		ID:           id,
		UserID:       id * 10,
		Amount:       decimal.NewFromInt(1000),
		CurrentValue: decimal.NewFromInt(1000),
		Status:       domain.InvestmentActive,
	}
}

func TestService_ProcessMatured(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(repo *MockRepo, settler *MockSettler)
		expectedSettled int
		expectErr       bool
	}{
		{
			name: "Every matured investment settled",
			prepareMock: func(repo *MockRepo, settler *MockSettler) {
				repo.EXPECT().FindMatured(gomock.Any(), fixedNow.Truncate(time.Second), 50).Return([]domain.Investment{matured(1), matured(2)}, nil)
				settler.EXPECT().Settle(gomock.Any(), matured(1)).Return(nil)
				settler.EXPECT().Settle(gomock.Any(), matured(2)).Return(nil)
			},
			expectedSettled: 2,
		},
		{
			name: "Already settled and failing investments are not counted",
			prepareMock: func(repo *MockRepo, settler *MockSettler) {
				repo.EXPECT().FindMatured(gomock.Any(), gomock.Any(), 50).Return([]domain.Investment{matured(1), matured(2), matured(3)}, nil)
				settler.EXPECT().Settle(gomock.Any(), matured(1)).Return(nil)
				settler.EXPECT().Settle(gomock.Any(), matured(2)).Return(ledgerservice.ErrAlreadySettled)
				settler.EXPECT().Settle(gomock.Any(), matured(3)).Return(errors.New("database error"))
			},
			expectedSettled: 1,
		},
		{
			name: "Nothing matured",
			prepareMock: func(repo *MockRepo, settler *MockSettler) {
				repo.EXPECT().FindMatured(gomock.Any(), gomock.Any(), 50).Return(nil, nil)
			},
		},
		{
			name: "Fetch failure",
			prepareMock: func(repo *MockRepo, settler *MockSettler) {
				repo.EXPECT().FindMatured(gomock.Any(), gomock.Any(), 50).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, settler := NewMock(t, time.Minute)
			defer service.workerPool.Close()
			tt.prepareMock(repo, settler)

			settled, err := service.ProcessMatured(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedSettled, settled)
		})
	}
}

func TestService_ProcessMatured_SkipsInFlight(t *testing.T) {
	service, repo, settler := NewMock(t, time.Minute)
	defer service.workerPool.Close()

	service.inFlight.Store(int64(1), struct{}{})
	repo.EXPECT().FindMatured(gomock.Any(), gomock.Any(), 50).Return([]domain.Investment{matured(1), matured(2)}, nil)
	settler.EXPECT().Settle(gomock.Any(), matured(2)).Return(nil)

	settled, err := service.ProcessMatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, settled)

	_, stillFlying := service.inFlight.Load(int64(2))
	assert.False(t, stillFlying)
}

func TestService_ProcessMatured_Metrics(t *testing.T) {
	service, repo, settler := NewMock(t, time.Minute)
	defer service.workerPool.Close()

	before := testutil.ToFloat64(metrics.MaturityRuns.WithLabelValues("skipped"))
	repo.EXPECT().FindMatured(gomock.Any(), gomock.Any(), 50).Return([]domain.Investment{matured(7)}, nil)
	settler.EXPECT().Settle(gomock.Any(), matured(7)).Return(ledgerservice.ErrAlreadySettled)

	_, err := service.ProcessMatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.MaturityRuns.WithLabelValues("skipped")))
}

func TestService_Start(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		service, _, _ := NewMock(t, 0)
		defer service.workerPool.Close()

		service.Start(context.Background())
		select {
		case <-service.Done():
		case <-time.After(time.Second):
			t.Fatal("disabled worker did not report done")
		}
	})

	t.Run("Ticks until canceled", func(t *testing.T) {
		service, repo, _ := NewMock(t, 10*time.Millisecond)
		ticked := make(chan struct{}, 1)
		repo.EXPECT().FindMatured(gomock.Any(), gomock.Any(), 50).DoAndReturn(func(context.Context, time.Time, int) ([]domain.Investment, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return nil, nil
		}).MinTimes(1)

		ctx, cancel := context.WithCancel(context.Background())
		service.Start(ctx)

		select {
		case <-ticked:
		case <-time.After(time.Second):
			t.Fatal("worker never ticked")
		}
		cancel()

		select {
		case <-service.Done():
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})
}
