package handlers_test

import (
	"AuctionHouse/internal/auction"
	"AuctionHouse/internal/config"
	"AuctionHouse/internal/events"
	"AuctionHouse/internal/handlers"
	"AuctionHouse/internal/middleware"
	"AuctionHouse/internal/model"
	"AuctionHouse/internal/repo"
	"AuctionHouse/internal/service"
	"AuctionHouse/internal/store"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

// персистер-заглушка: движку в хендлерных тестах достаточно памяти
type okPersister struct{ err error }

func (p *okPersister) Save(context.Context, *model.Item) error { return p.err }

var _ auction.Persister = (*okPersister)(nil)

const testMaxBid = 1_000_000

// newTestRouter собирает полный роутер с реальным движком поверх моков репозиториев.
func newTestRouter(t *testing.T, ur repo.UserRepository) (http.Handler, *config.Config, *store.ItemStore) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", MaxBidAmount: testMaxBid}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	s := store.NewItemStore()
	engine := auction.NewEngine(s, &okPersister{}, userSvc, events.NopPublisher{}, logger, cfg.MaxBidAmount)
	queries := auction.NewQueries(s)

	h := handlers.NewHandler(userSvc, engine, queries, logger, cfg)
	return h.Router, cfg, s
}

func addAuth(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any, userID int64, secret string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		addAuth(t, req, userID, secret)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func mkItemPayload(amount uint32) model.CreateItem {
	return model.CreateItem{
		Title:       "antique lamp",
		Description: "brass, 1920s",
		IsActive:    true,
		StartTime:   "2026-01-01T00:00:00Z",
		EndTime:     "2099-01-01T00:00:00Z",
		Currency:    "USD",
		Amount:      amount,
	}
}
