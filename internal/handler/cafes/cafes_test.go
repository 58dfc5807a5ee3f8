package cafes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cafe-map/internal/middleware"
	"cafe-map/internal/model"
	"cafe-map/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type realValidator struct{ v *validator.Validate }

func (r realValidator) Validate(i any) error { return r.v.Struct(i) }

// stubService 記錄呼叫參數
type stubService struct {
	listFn   func() ([]model.Cafe, error)
	createFn func(ownerID int, in service.CreateCafeInput) (*model.Cafe, error)
	updateFn func(requesterID, cafeID int, in service.UpdateCafeInput) (*model.Cafe, error)
	deleteFn func(requesterID, cafeID int) error
	calls    int
}

func (s *stubService) List(context.Context) ([]model.Cafe, error) {
	s.calls++
	return s.listFn()
}

func (s *stubService) Create(_ context.Context, ownerID int, in service.CreateCafeInput) (*model.Cafe, error) {
	s.calls++
	return s.createFn(ownerID, in)
}

func (s *stubService) Update(_ context.Context, requesterID, cafeID int, in service.UpdateCafeInput) (*model.Cafe, error) {
	s.calls++
	return s.updateFn(requesterID, cafeID, in)
}

func (s *stubService) Delete(_ context.Context, requesterID, cafeID int) error {
	s.calls++
	return s.deleteFn(requesterID, cafeID)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = realValidator{v: validator.New()}
	return e
}

// newCtx 建立帶 :id 參數與登入身分的 context；userID 為 0 表示未登入
func newCtx(e *echo.Echo, method, id, body string, userID int) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/api/cafes/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetPath("/api/cafes/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	if userID != 0 {
		c.Set(middleware.ContextUserKey, &service.Claims{UserID: userID, Email: "u@x.com"})
	}
	return c, rec
}

func sampleCafe(id, owner int) *model.Cafe {
	return &model.Cafe{ID: id, Title: "T", Address: "Addr", Latitude: 1, Longitude: 2,
		AuthorID: owner, Author: model.Author{ID: owner}}
}

func TestListHandler(t *testing.T) {
	e := newEcho()

	t.Run("empty list is []", func(t *testing.T) {
		svc := &stubService{listFn: func() ([]model.Cafe, error) { return []model.Cafe{}, nil }}
		c, rec := newCtx(e, http.MethodGet, "", "", 0)
		require.NoError(t, ListHandler(svc)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("public with author summary", func(t *testing.T) {
		svc := &stubService{listFn: func() ([]model.Cafe, error) { return []model.Cafe{*sampleCafe(1, 3)}, nil }}
		c, rec := newCtx(e, http.MethodGet, "", "", 0)
		require.NoError(t, ListHandler(svc)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"author":{"id":3,"name":null}`)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{listFn: func() ([]model.Cafe, error) { return nil, errors.New("db") }}
		c, rec := newCtx(e, http.MethodGet, "", "", 0)
		require.NoError(t, ListHandler(svc)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateHandler(t *testing.T) {
	e := newEcho()

	t.Run("unauthenticated", func(t *testing.T) {
		svc := &stubService{}
		c, rec := newCtx(e, http.MethodPost, "", `{"title":"T"}`, 0)
		require.NoError(t, CreateHandler(svc)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Zero(t, svc.calls)
	})

	for name, body := range map[string]string{
		"missing title":     `{"address":"A","latitude":1,"longitude":2}`,
		"missing address":   `{"title":"T","latitude":1,"longitude":2}`,
		"missing latitude":  `{"title":"T","address":"A","longitude":2}`,
		"missing longitude": `{"title":"T","address":"A","latitude":1}`,
		"latitude as text":  `{"title":"T","address":"A","latitude":"x","longitude":2}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := &stubService{}
			c, rec := newCtx(e, http.MethodPost, "", body, 1)
			require.NoError(t, CreateHandler(svc)(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), msgCreateRequired)
			require.Zero(t, svc.calls)
		})
	}

	t.Run("zero coordinates accepted", func(t *testing.T) {
		var got service.CreateCafeInput
		var owner int
		svc := &stubService{createFn: func(ownerID int, in service.CreateCafeInput) (*model.Cafe, error) {
			owner, got = ownerID, in
			c := sampleCafe(10, ownerID)
			c.Latitude, c.Longitude = *in.Latitude, *in.Longitude
			return c, nil
		}}
		c, rec := newCtx(e, http.MethodPost, "", `{"title":"T","address":"A","latitude":0,"longitude":0,"imageUrl":"http://i"}`, 7)
		require.NoError(t, CreateHandler(svc)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 7, owner)
		require.Equal(t, "http://i", *got.ImageURL)
		require.Contains(t, rec.Body.String(), `"authorId":7`)
	})

	t.Run("internal", func(t *testing.T) {
		svc := &stubService{createFn: func(int, service.CreateCafeInput) (*model.Cafe, error) {
			return nil, errors.New("fk violation")
		}}
		c, rec := newCtx(e, http.MethodPost, "", `{"title":"T","address":"A","latitude":1,"longitude":2}`, 7)
		require.NoError(t, CreateHandler(svc)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUpdateHandler(t *testing.T) {
	e := newEcho()
	body := `{"title":"T2","address":"Addr","description":""}`

	t.Run("unauthenticated", func(t *testing.T) {
		svc := &stubService{}
		c, rec := newCtx(e, http.MethodPut, "1", body, 0)
		require.NoError(t, UpdateHandler(svc)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		svc := &stubService{}
		c, rec := newCtx(e, http.MethodPut, "abc", body, 1)
		require.NoError(t, UpdateHandler(svc)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), msgInvalidID)
		require.Zero(t, svc.calls)
	})

	t.Run("missing title", func(t *testing.T) {
		svc := &stubService{}
		c, rec := newCtx(e, http.MethodPut, "1", `{"address":"A"}`, 1)
		require.NoError(t, UpdateHandler(svc)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), msgUpdateRequired)
	})

	statuses := map[error]int{
		service.ErrNotFound:          http.StatusNotFound,
		service.ErrForbidden:         http.StatusForbidden,
		service.ErrValidation:        http.StatusBadRequest,
		errors.New("deadlock found"): http.StatusInternalServerError,
	}
	for svcErr, code := range statuses {
		t.Run(svcErr.Error(), func(t *testing.T) {
			svc := &stubService{updateFn: func(int, int, service.UpdateCafeInput) (*model.Cafe, error) {
				return nil, svcErr
			}}
			c, rec := newCtx(e, http.MethodPut, "1", body, 2)
			require.NoError(t, UpdateHandler(svc)(c))
			require.Equal(t, code, rec.Code)
		})
	}

	t.Run("ok", func(t *testing.T) {
		var gotReq, gotID int
		var gotIn service.UpdateCafeInput
		svc := &stubService{updateFn: func(requesterID, cafeID int, in service.UpdateCafeInput) (*model.Cafe, error) {
			gotReq, gotID, gotIn = requesterID, cafeID, in
			c := sampleCafe(cafeID, requesterID)
			c.Title = in.Title
			return c, nil
		}}
		c, rec := newCtx(e, http.MethodPut, "12", body, 2)
		require.NoError(t, UpdateHandler(svc)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 2, gotReq)
		require.Equal(t, 12, gotID)
		require.Equal(t, "T2", gotIn.Title)
		require.Equal(t, "Addr", gotIn.Address)
		require.Contains(t, rec.Body.String(), `"title":"T2"`)
		require.Contains(t, rec.Body.String(), `"latitude":1`)
	})
}

func TestDeleteHandler(t *testing.T) {
	e := newEcho()

	t.Run("bad id", func(t *testing.T) {
		for _, id := range []string{"x", "0", "-3"} {
			c, rec := newCtx(e, http.MethodDelete, id, "", 1)
			require.NoError(t, DeleteHandler(&stubService{})(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		c, rec := newCtx(e, http.MethodDelete, "1", "", 0)
		require.NoError(t, DeleteHandler(&stubService{})(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubService{deleteFn: func(int, int) error { return service.ErrNotFound }}
		c, rec := newCtx(e, http.MethodDelete, "1", "", 1)
		require.NoError(t, DeleteHandler(svc)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), msgNotFound)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := &stubService{deleteFn: func(int, int) error { return service.ErrForbidden }}
		c, rec := newCtx(e, http.MethodDelete, "1", "", 2)
		require.NoError(t, DeleteHandler(svc)(c))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), msgForbidDelete)
	})

	t.Run("no content", func(t *testing.T) {
		var gotReq, gotID int
		svc := &stubService{deleteFn: func(requesterID, cafeID int) error {
			gotReq, gotID = requesterID, cafeID
			return nil
		}}
		c, rec := newCtx(e, http.MethodDelete, "5", "", 1)
		require.NoError(t, DeleteHandler(svc)(c))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Empty(t, rec.Body.String())
		require.Equal(t, 1, gotReq)
		require.Equal(t, 5, gotID)
	})
}
