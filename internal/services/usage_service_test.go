package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/mocks"
	"github.com/linguabill/lingua-api/internal/services"
	"github.com/linguabill/lingua-api/internal/store"
)

func TestUsageService_RecordConsumption(t *testing.T) {
	subID := bson.NewObjectID()

	subscription := func() *store.Subscription {
		return &store.Subscription{
			ID: subID,
			UsagePeriods: []store.UsagePeriod{
				{PeriodNumber: 1, UnitsAllocated: 1000, UnitsUsed: 900, UnitsRemaining: 100, PromotionalUnits: 50},
			},
		}
	}

	tests := []struct {
		name          string
		periodNumber  int
		unitsConsumed int64
		promotional   bool
		setupMocks    func(subs *mocks.MockSubscriptionStore)
		wantErr       error
		check         func(t *testing.T, period *store.UsagePeriod)
	}{
		{
			name:          "regular consumption updates counters",
			periodNumber:  1,
			unitsConsumed: 50,
			setupMocks: func(subs *mocks.MockSubscriptionStore) {
				subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(subscription(), nil)
				subs.EXPECT().UpdateUsagePeriod(gomock.Any(), subID, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, period *store.UsagePeriod) {
				assert.Equal(t, int64(950), period.UnitsUsed)
				assert.Equal(t, int64(50), period.UnitsRemaining)
				assert.Equal(t, period.UnitsAllocated-period.UnitsUsed, period.UnitsRemaining)
				assert.False(t, period.LastUpdated.IsZero())
			},
		},
		{
			name:          "overage drives units_remaining negative",
			periodNumber:  1,
			unitsConsumed: 200,
			setupMocks: func(subs *mocks.MockSubscriptionStore) {
				subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(subscription(), nil)
				subs.EXPECT().UpdateUsagePeriod(gomock.Any(), subID, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, period *store.UsagePeriod) {
				assert.Equal(t, int64(1100), period.UnitsUsed)
				assert.Equal(t, int64(-100), period.UnitsRemaining)
			},
		},
		{
			name:          "promotional consumption leaves units_used alone",
			periodNumber:  1,
			unitsConsumed: 30,
			promotional:   true,
			setupMocks: func(subs *mocks.MockSubscriptionStore) {
				subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(subscription(), nil)
				subs.EXPECT().UpdateUsagePeriod(gomock.Any(), subID, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, period *store.UsagePeriod) {
				assert.Equal(t, int64(20), period.PromotionalUnits)
				assert.Equal(t, int64(900), period.UnitsUsed)
				assert.Equal(t, int64(100), period.UnitsRemaining)
			},
		},
		{
			name:          "promotional underflow fails without writing",
			periodNumber:  1,
			unitsConsumed: 51,
			promotional:   true,
			setupMocks: func(subs *mocks.MockSubscriptionStore) {
				subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(subscription(), nil)
			},
			wantErr: services.ErrInsufficientPromotionalUnits,
		},
		{
			name:          "unknown period number",
			periodNumber:  7,
			unitsConsumed: 10,
			setupMocks: func(subs *mocks.MockSubscriptionStore) {
				subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(subscription(), nil)
			},
			wantErr: services.ErrUsagePeriodNotFound,
		},
		{
			name:          "subscription not found",
			periodNumber:  1,
			unitsConsumed: 10,
			setupMocks: func(subs *mocks.MockSubscriptionStore) {
				subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(nil, store.ErrNotFound)
			},
			wantErr: services.ErrSubscriptionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			subs := mocks.NewMockSubscriptionStore(ctrl)
			tt.setupMocks(subs)

			service := services.NewUsageService(subs, zap.NewNop())
			period, err := service.RecordConsumption(context.Background(), subID,
				tt.periodNumber, tt.unitsConsumed, tt.promotional)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, period)
				return
			}

			assert.NoError(t, err)
			tt.check(t, period)
		})
	}
}

func TestUsageService_RecordConsumption_StoreErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := bson.NewObjectID()
	subs := mocks.NewMockSubscriptionStore(ctrl)
	subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(&store.Subscription{
		ID:           subID,
		UsagePeriods: []store.UsagePeriod{{PeriodNumber: 1, UnitsAllocated: 100}},
	}, nil)
	subs.EXPECT().UpdateUsagePeriod(gomock.Any(), subID, gomock.Any()).
		Return(errors.New("write conflict"))

	service := services.NewUsageService(subs, zap.NewNop())
	_, err := service.RecordConsumption(context.Background(), subID, 1, 10, false)

	assert.ErrorContains(t, err, "failed to update usage period")
}

func TestUsageService_AppendUsagePeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := bson.NewObjectID()
	subs := mocks.NewMockSubscriptionStore(ctrl)
	subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(&store.Subscription{ID: subID}, nil)
	subs.EXPECT().AppendUsagePeriod(gomock.Any(), subID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, period store.UsagePeriod) error {
			assert.Equal(t, int64(1000), period.UnitsRemaining)
			return nil
		})

	service := services.NewUsageService(subs, zap.NewNop())
	period, err := service.AppendUsagePeriod(context.Background(), subID, store.UsagePeriod{
		PeriodNumber:   2,
		UnitsAllocated: 1000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), period.UnitsRemaining)
}
