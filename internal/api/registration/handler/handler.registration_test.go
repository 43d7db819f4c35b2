// Package registrationhdl - Test endpoint đăng ký và tra cứu qua fiber app.Test.
package registrationhdl

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registrationsvc "github.com/Angelaliii/SA2/internal/api/registration/service"
	registrationstore "github.com/Angelaliii/SA2/internal/api/registration/store"
	"github.com/Angelaliii/SA2/internal/common"
)

func newTestApp(t *testing.T) (*fiber.App, *registrationstore.MemoryDocumentStore, *registrationstore.MemoryObjectStore) {
	t.Helper()

	docs := registrationstore.NewMemoryDocumentStore()
	objects := registrationstore.NewMemoryObjectStore()
	service := registrationsvc.NewRegistrationService(docs, objects, t.TempDir())
	handler := NewRegistrationHandler(service)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/register/club", handler.HandleRegisterClub)
	api.Post("/register/company", handler.HandleRegisterCompany)
	api.Get("/club-status", handler.HandleClubStatus)
	api.Get("/company-status", handler.HandleCompanyStatus)

	return app, docs, objects
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for field, filename := range files {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("file-content"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func validClubFields() map[string]string {
	return map[string]string{
		"clubName":     "Robotics Club",
		"schoolName":   "FJU",
		"clubType":     "academic",
		"contactName":  "Nguyen Van A",
		"contactPhone": "0901234567",
		"email":        "robotics@example.edu",
	}
}

func validCompanyFields() map[string]string {
	return map[string]string{
		"companyName":  "Cong ty TNHH ABC",
		"businessId":   "12345678",
		"industryType": "software",
		"contactName":  "Tran Thi B",
		"contactPhone": "0907654321",
		"email":        "hr@abc.example.com",
	}
}

func TestRegisterClubThenLookupStatus(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(multipartRequest(t, "/api/register/club", validClubFields(), map[string]string{"logo": "logo.png"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "club registration submitted successfully", body["message"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	clubID, ok := data["clubId"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^CLUB\d{8}[0-9A-F]{6}$`, clubID)
	assert.Equal(t, "pending", data["status"])

	// Tra cứu lại trạng thái bằng id vừa nhận
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/club-status?id="+clubID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data, ok = body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, clubID, data["clubId"])
	assert.Equal(t, "pending", data["status"])
}

func TestRegisterCompany_Success(t *testing.T) {
	app, docs, _ := newTestApp(t)

	resp, err := app.Test(multipartRequest(t, "/api/register/company", validCompanyFields(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "company registration submitted successfully", body["message"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	companyID, ok := data["companyId"].(string)
	require.True(t, ok)

	_, stored := docs.Raw("companies", companyID)
	assert.True(t, stored)
}

func TestRegisterCompany_ValidationError(t *testing.T) {
	app, _, _ := newTestApp(t)

	fields := validCompanyFields()
	fields["businessId"] = "1234"

	resp, err := app.Test(multipartRequest(t, "/api/register/company", fields, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, common.MsgValidationError, body["message"])

	details, ok := body["error"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "invalid business ID: must be 8 digits")
}

func TestRegisterClub_StoreNotReady(t *testing.T) {
	app, docs, _ := newTestApp(t)
	docs.NotReady = true

	resp, err := app.Test(multipartRequest(t, "/api/register/club", validClubFields(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, common.MsgStoreNotReady, body["message"])
	assert.Equal(t, common.MsgStoreNotReadyHint, body["error"])
}

func TestClubStatus_MissingID(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/club-status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "missing id parameter", body["message"])
}

func TestCompanyStatus_NotFound(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/company-status?id=COMP20260829FFFFFF", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "registration record not found", body["message"])
}
