package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"motohub/internal/model"
	"motohub/internal/service"
)

// fakeListingService records whether the upload path was reached.
type fakeListingService struct {
	attachCalled bool
}

func (f *fakeListingService) List(ctx context.Context) ([]model.Listing, error) {
	return nil, nil
}

func (f *fakeListingService) Create(ctx context.Context, input service.ListingInput) (*model.Listing, error) {
	return &model.Listing{}, nil
}

func (f *fakeListingService) Update(ctx context.Context, id uuid.UUID, input service.ListingInput) (*model.Listing, error) {
	return &model.Listing{}, nil
}

func (f *fakeListingService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeListingService) AttachImages(ctx context.Context, listingID uuid.UUID, files []*multipart.FileHeader, baseURL string) ([]model.Image, error) {
	f.attachCalled = true
	return []model.Image{}, nil
}

var _ service.ListingService = (*fakeListingService)(nil)

func TestListingHandler_AttachImages_NoFiles(t *testing.T) {
	tests := []struct {
		name      string
		buildBody func(t *testing.T) (*bytes.Buffer, string)
	}{
		{
			name: "form without an images field",
			buildBody: func(t *testing.T) (*bytes.Buffer, string) {
				var buf bytes.Buffer
				w := multipart.NewWriter(&buf)
				assert.NoError(t, w.WriteField("note", "no files here"))
				assert.NoError(t, w.Close())
				return &buf, w.FormDataContentType()
			},
		},
		{
			name: "body that is not a multipart form",
			buildBody: func(t *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(`{"images":[]}`), echo.MIMEApplicationJSON
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeListingService{}
			h := NewListingHandler(svc)

			body, contentType := tt.buildBody(t)
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/motorcycles/:id/images", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(uuid.New().String())

			assert.NoError(t, h.AttachImages(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, svc.attachCalled, "service must not be reached without files")
		})
	}
}

func TestListingHandler_AttachImages_BadID(t *testing.T) {
	svc := &fakeListingService{}
	h := NewListingHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/motorcycles/:id/images", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, h.AttachImages(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, svc.attachCalled)
}
