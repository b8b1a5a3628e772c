package social

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestPublicHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "Active links",
			prepareMock: func() {
				service.EXPECT().Public(gomock.Any()).Return(map[string]string{"telegram": "https://t.me/invest"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"telegram": "https://t.me/invest"},
		},
		{
			name: "No links",
			prepareMock: func() {
				service.EXPECT().Public(gomock.Any()).Return(map[string]string{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{},
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().Public(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Public(w, httptest.NewRequest(http.MethodGet, "/api/social-links", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
