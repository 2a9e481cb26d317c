package alerts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pricesense/backend/models"
)

// --- Mock Repository ---

type MockAlertRepo struct {
	Alerts  []models.Alert
	ListErr error
}

func (m *MockAlertRepo) GetAllAlerts() ([]models.Alert, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Alerts, nil
}

// --- Tests: GET /alerts ---

func TestHandleGetAll(t *testing.T) {
	msg := "New lowest price detected: 15.00"

	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockAlertRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple alerts",
			mockRepoSetup: func() *MockAlertRepo {
				return &MockAlertRepo{
					Alerts: []models.Alert{
						{
							ID:          2,
							ProductID:   1,
							Price:       decimal.NewFromFloat(15.00),
							TriggeredAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
							Message:     &msg,
						},
						{
							ID:          1,
							ProductID:   1,
							Price:       decimal.NewFromFloat(17.00),
							TriggeredAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
						},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []AlertResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				// Repo ordering (newest first) is passed through untouched.
				assert.Equal(t, uint(2), resp[0].ID)
				assert.Equal(t, 15.00, resp[0].Price)
				assert.Equal(t, msg, *resp[0].Message)
				assert.Nil(t, resp[1].Message)
			},
		},
		{
			name: "Success with empty list",
			mockRepoSetup: func() *MockAlertRepo {
				return &MockAlertRepo{Alerts: []models.Alert{}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []AlertResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 0)
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockAlertRepo {
				return &MockAlertRepo{ListErr: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "failed to fetch alerts", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()
			handler := NewAlertsHandler(mockRepo)
			req := httptest.NewRequest("GET", "/alerts", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}
