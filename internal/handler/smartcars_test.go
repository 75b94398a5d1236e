package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/myacars/myacars/internal/model"
	"github.com/myacars/myacars/internal/protocol"
	"github.com/myacars/myacars/internal/repository"
)

type stubSessions struct{ created []string }

func (s *stubSessions) Create(_ context.Context, token string) (*model.Session, error) {
	s.created = append(s.created, token)
	return &model.Session{ID: 1, SessionID: token}, nil
}

func (s *stubSessions) FindByToken(context.Context, string) (*model.Session, error) {
	return nil, repository.ErrSessionNotFound
}

func (s *stubSessions) Renew(context.Context, string, string) (*model.Session, error) {
	return nil, repository.ErrSessionNotFound
}

func newTestHandler(sessions protocol.SessionStore) *Smartcars {
	d := protocol.NewDispatcher(protocol.Config{
		AirlineICAO: "AAA",
		FirstName:   "Airline",
		LastName:    "Pilot",
		RankLevel:   "captain",
		RankString:  "Captain",
		UserID:      "userid",
		Password:    "password",
		Version:     "test",
	}, sessions, nil, nil, nil, nil, nil, nil)
	return NewSmartcars(d, false)
}

func TestHandleGetQuery(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/smartcars/?action=searchflights", nil)
	rec := httptest.NewRecorder()
	if err := h.Handle(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "NONE" {
		t.Errorf("body = %q, want NONE", rec.Body.String())
	}
}

func TestHandlePostForm(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{}
	h := newTestHandler(sessions)

	body := strings.NewReader("password=password")
	req := httptest.NewRequest(http.MethodPost, "/smartcars/?action=manuallogin&userid=userid&sessionid=tok", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	if err := h.Handle(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := "1,AAA,0001,tok,Airline,Pilot,,captain,Captain"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
	if len(sessions.created) != 1 || sessions.created[0] != "tok" {
		t.Errorf("created sessions = %v, want [tok]", sessions.created)
	}
}

func TestHandleHandshake(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/smartcars/", nil)
	rec := httptest.NewRecorder()
	if err := h.Handle(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := "Script OK, Frame Version: myACARS/test, Interface Version: myACARS/test"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}
