package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/codemates/website/internal/domain/model"
	"github.com/codemates/website/internal/mocks"
	"github.com/codemates/website/internal/service"
)

func newContactHandlers(repo *mocks.MockInquiryRepository) *ContactHandlers {
	return &ContactHandlers{
		Svc: service.NewInquiryService(service.InquiryServiceOptions{Repo: repo}),
	}
}

func postContact(t *testing.T, h *ContactHandlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.Submit(rec, req)
	return rec
}

func TestContactHandlers_Submit(t *testing.T) {
	t.Run("valid contact submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInquiryRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *model.CreateInquiryRequest) (*model.Inquiry, error) {
				assert.Equal(t, "Jordan", req.Name)
				assert.False(t, req.IsQuoteRequest)
				return &model.Inquiry{
					ID:     "inq-1",
					Name:   req.Name,
					Email:  req.Email,
					Status: model.InquiryStatusNew,
				}, nil
			},
		).Times(1)

		rec := postContact(t, newContactHandlers(repo), `{
			"name": "Jordan",
			"email": "jordan@example.com",
			"projectType": "Web Application",
			"message": "We need a new site."
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeJSONBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "inq-1", body["id"])
	})

	t.Run("valid quote request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInquiryRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *model.CreateInquiryRequest) (*model.Inquiry, error) {
				assert.True(t, req.IsQuoteRequest)
				require.NotNil(t, req.Company)
				assert.Equal(t, "Acme", *req.Company)
				return &model.Inquiry{ID: "inq-2", IsQuoteRequest: true, Status: model.InquiryStatusNew}, nil
			},
		).Times(1)

		rec := postContact(t, newContactHandlers(repo), `{
			"name": "Jordan",
			"email": "jordan@example.com",
			"projectType": "Mobile App",
			"isQuoteRequest": true,
			"company": "Acme",
			"budget": "$25k",
			"timeline": "2 months",
			"description": "Build an app."
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("contact submission without a message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInquiryRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		rec := postContact(t, newContactHandlers(repo), `{
			"name": "Jordan",
			"email": "jordan@example.com",
			"projectType": "Web Application"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeJSONBody(t, rec)["error"], "message is required")
	})

	t.Run("quote request missing detail fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInquiryRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		rec := postContact(t, newContactHandlers(repo), `{
			"name": "Jordan",
			"email": "jordan@example.com",
			"projectType": "Mobile App",
			"isQuoteRequest": true,
			"message": "not enough for a quote"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInquiryRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		rec := postContact(t, newContactHandlers(repo), `{
			"name": "Jordan",
			"email": "not-an-email",
			"projectType": "Web Application",
			"message": "hello"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInquiryRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		rec := postContact(t, newContactHandlers(repo), `{broken`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeJSONBody(t, rec)["error"])
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInquiryRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		rec := postContact(t, newContactHandlers(repo), `{
			"name": "Jordan",
			"email": "jordan@example.com",
			"projectType": "Web Application",
			"message": "hello"
		}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to submit inquiry", decodeJSONBody(t, rec)["error"])
	})
}
