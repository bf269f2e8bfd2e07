package stats_service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bazaar-go-admin/model/market_model"

	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	snap       *Snapshot
	orderErr   error
	fetchCalls int
}

func (f *fakeStore) FetchOrders(ctx context.Context) ([]market_model.Order, error) {
	f.fetchCalls++
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.snap.Orders, nil
}

func (f *fakeStore) FetchProducts(ctx context.Context) ([]market_model.Product, error) {
	return f.snap.Products, nil
}

func (f *fakeStore) FetchVendors(ctx context.Context) ([]market_model.Vendor, error) {
	return f.snap.Vendors, nil
}

func TestSummaryCacheKey(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC)
	epoch := at.Unix() / 60

	assert.Equal(t,
		fmt.Sprintf("dashboard:summary:global:%d", epoch),
		summaryCacheKey(GlobalScope(), at))
	assert.Equal(t,
		fmt.Sprintf("dashboard:summary:vendor:v1:%d", epoch),
		summaryCacheKey(VendorScope("v1"), at))
	assert.Equal(t,
		fmt.Sprintf("dashboard:summary:none:%d", epoch),
		summaryCacheKey(EmptyScope(), at))

	// 不同可见域在同一纪元内互不串键
	assert.NotEqual(t,
		summaryCacheKey(VendorScope("v1"), at),
		summaryCacheKey(VendorScope("v2"), at))

	// 跨纪元键必然变化
	assert.NotEqual(t,
		summaryCacheKey(GlobalScope(), at),
		summaryCacheKey(GlobalScope(), at.Add(time.Minute)))
}

func TestGetSummaryComputes(t *testing.T) {
	store := &fakeStore{snap: aggFixture()}
	svc := NewDashboardService(store, nil)

	summary, err := svc.GetSummary(context.Background(), GlobalScope())

	assert.NoError(t, err)
	assert.Equal(t, 70.0, summary.TotalRevenue)
	assert.Equal(t, 1, store.fetchCalls)
}

func TestGetSummaryStoreFailure(t *testing.T) {
	store := &fakeStore{snap: &Snapshot{}, orderErr: errors.New("boom")}
	svc := NewDashboardService(store, nil)

	summary, err := svc.GetSummary(context.Background(), GlobalScope())

	assert.Nil(t, summary, "快照失败不降级为部分结果")
	assert.ErrorContains(t, err, "boom")
}

func TestFetchSnapshotPropagatesError(t *testing.T) {
	store := &fakeStore{snap: &Snapshot{}, orderErr: errors.New("read failed")}

	snap, err := FetchSnapshot(context.Background(), store)

	assert.Nil(t, snap)
	assert.ErrorContains(t, err, "read failed")
}

func TestFetchSnapshotAll(t *testing.T) {
	store := &fakeStore{snap: aggFixture()}

	snap, err := FetchSnapshot(context.Background(), store)

	assert.NoError(t, err)
	assert.Len(t, snap.Orders, 4)
	assert.Len(t, snap.Products, 3)
	assert.Len(t, snap.Vendors, 1)
}
