package payment

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/selection"
)

type fakeGateway struct {
	err     error
	amounts []int64
}

func (gw *fakeGateway) CreateIntent(_ context.Context, amount int64, _ string) (string, error) {
	if gw.err != nil {
		return "", gw.err
	}
	gw.amounts = append(gw.amounts, amount)
	return "secret", nil
}

type fakeRepo struct {
	err  error
	recs []Record
}

func (repo *fakeRepo) CreatePayment(_ context.Context, rec Record) (core.InsertResult, error) {
	if repo.err != nil {
		return core.InsertResult{}, repo.err
	}
	repo.recs = append(repo.recs, rec)
	return core.InsertResult{InsertedID: "aaaaaaaaaaaaaaaaaaaaaaaa"}, nil
}

func (repo *fakeRepo) QueryAllPayments(_ context.Context) ([]Record, error) {
	return repo.recs, nil
}

type fakeSelRepo struct {
	selection.Repository

	err     error
	deleted [][]string
}

func (repo *fakeSelRepo) DeleteEntriesByID(_ context.Context, ids []string) (core.DeleteResult, error) {
	if repo.err != nil {
		return core.DeleteResult{}, repo.err
	}
	repo.deleted = append(repo.deleted, ids)
	return core.DeleteResult{DeletedCount: int64(len(ids))}, nil
}

func newTestService(repo Repository, selRepo selection.Repository, gw core.PaymentGateway, mailSvc core.EmailService) *Service {
	conf := &core.Config{FrontendBaseURL: "http://localhost:3000"}
	return NewService(conf, repo, selRepo, gw, nil, mailSvc)
}

func TestService_CreateIntent(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		wantAmount int64
	}{
		{"Whole dollars", 100, 10000},
		{"Fractional", 49.99, 4999},
		{"Rounds to nearest cent", 19.999, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(fakeGateway)
			svc := newTestService(nil, nil, gw, nil)

			secret, err := svc.CreateIntent(context.Background(), tt.price)
			if err != nil {
				t.Fatal(err)
			}
			if secret != "secret" {
				t.Errorf("secret = %q; want %q", secret, "secret")
			}
			if len(gw.amounts) != 1 || gw.amounts[0] != tt.wantAmount {
				t.Errorf("amounts = %v; want [%d]", gw.amounts, tt.wantAmount)
			}
		})
	}
}

func TestService_CreateIntent_gatewayError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("card network down")}
	svc := newTestService(nil, nil, gw, nil)

	_, err := svc.CreateIntent(context.Background(), 10)
	if errors.Cause(err) != ErrProcessor {
		t.Errorf("cause = %v; want %v", errors.Cause(err), ErrProcessor)
	}
}

func TestService_Record(t *testing.T) {
	repo := new(fakeRepo)
	selRepo := new(fakeSelRepo)
	svc := newTestService(repo, selRepo, nil, nil)

	np := NewPayment{
		Email:       "kid@x.com",
		Amount:      49.99,
		SelectItems: []string{"id1", "id2"},
	}
	res, err := svc.Record(context.Background(), np)
	if err != nil {
		t.Fatal(err)
	}
	if res.InsertResult.InsertedID == "" {
		t.Error("insertedId is empty")
	}
	if res.DeleteResult.DeletedCount != 2 {
		t.Errorf("deletedCount = %d; want 2", res.DeleteResult.DeletedCount)
	}

	if len(repo.recs) != 1 {
		t.Fatalf("stored records = %d; want 1", len(repo.recs))
	}
	if repo.recs[0].Date.IsZero() {
		t.Error("record date not set")
	}
	if len(selRepo.deleted) != 1 || len(selRepo.deleted[0]) != 2 {
		t.Errorf("cleared selections = %v; want one call with 2 ids", selRepo.deleted)
	}
}

func TestService_Record_insertFailureSkipsClear(t *testing.T) {
	repo := &fakeRepo{err: errors.New("store down")}
	selRepo := new(fakeSelRepo)
	svc := newTestService(repo, selRepo, nil, nil)

	_, err := svc.Record(context.Background(), NewPayment{Email: "kid@x.com", SelectItems: []string{"id1"}})
	if err == nil {
		t.Fatal("want error")
	}
	if core.IsShutdown(err) {
		t.Error("nothing committed, store is still consistent")
	}
	if len(selRepo.deleted) != 0 {
		t.Errorf("selections cleared despite failed insert: %v", selRepo.deleted)
	}
}

// A committed record with uncleared selections leaves the store inconsistent
// and must surface as a shutdown error.
func TestService_Record_clearFailureIsShutdown(t *testing.T) {
	repo := new(fakeRepo)
	selRepo := &fakeSelRepo{err: errors.New("store down")}
	svc := newTestService(repo, selRepo, nil, nil)

	res, err := svc.Record(context.Background(), NewPayment{Email: "kid@x.com", SelectItems: []string{"id1"}})
	if err == nil {
		t.Fatal("want error")
	}
	if !core.IsShutdown(err) {
		t.Errorf("IsShutdown(%v) = false; want true", err)
	}
	if res.InsertResult.InsertedID == "" {
		t.Error("record should have committed before the failure")
	}
}
