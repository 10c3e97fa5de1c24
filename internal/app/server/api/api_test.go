package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"phishguard/internal/infrastructure/storage/memory"
)

type analyzeEnvelope struct {
	ScanID       int      `json:"scanId"`
	Verdict      string   `json:"verdict"`
	Confidence   int      `json:"confidence"`
	Details      []string `json:"details"`
	AnalysisTime float64  `json:"analysisTime"`
}

type scanEnvelope struct {
	ID         int      `json:"id"`
	Type       string   `json:"type"`
	Target     string   `json:"target"`
	Verdict    string   `json:"verdict"`
	Confidence int      `json:"confidence"`
	Details    []string `json:"details"`
	CreatedAt  string   `json:"createdAt"`
}

type statsEnvelope struct {
	TotalScans      int `json:"totalScans"`
	SafeCount       int `json:"safeCount"`
	PhishingCount   int `json:"phishingCount"`
	SuspiciousCount int `json:"suspiciousCount"`
}

type errorEnvelope struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	storage := memory.New()
	log := slog.Default()

	mux := New(Repositories{
		Scans:    memory.NewScanRepository(storage, log),
		Feedback: memory.NewFeedbackRepository(storage, log),
		Users:    memory.NewUserRepository(storage, log),
	}, log)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func getStats(t *testing.T, srv *httptest.Server) statsEnvelope {
	t.Helper()

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return decodeBody[statsEnvelope](t, resp)
}

func uploadScreenshot(t *testing.T, srv *httptest.Server, filename, contentType string, data []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/analyze/screenshot", mw.FormDataContentType(), &buf)
	require.NoError(t, err)

	return resp
}

func TestAPI_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "OK", body["status"])
}

func TestAPI_AnalyzeURL_RoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/analyze/url", map[string]string{"url": "example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[analyzeEnvelope](t, resp)
	assert.Equal(t, 1, result.ScanID)
	assert.Equal(t, "safe", result.Verdict)
	assert.Equal(t, 90, result.Confidence)
	assert.Equal(t, []string{"Valid domain structure", "No suspicious URL patterns detected"}, result.Details)
	assert.Greater(t, result.AnalysisTime, 0.0)

	// сохраненный скан совпадает с ответом анализа
	getResp, err := http.Get(fmt.Sprintf("%s/api/scans/%d", srv.URL, result.ScanID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	stored := decodeBody[scanEnvelope](t, getResp)
	assert.Equal(t, result.ScanID, stored.ID)
	assert.Equal(t, "url", stored.Type)
	assert.Equal(t, "example.com", stored.Target)
	assert.Equal(t, result.Verdict, stored.Verdict)
	assert.Equal(t, result.Confidence, stored.Confidence)
	assert.Equal(t, result.Details, stored.Details)
	assert.NotEmpty(t, stored.CreatedAt)
}

func TestAPI_AnalyzeURL_Missing(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/analyze/url", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[errorEnvelope](t, resp)
	assert.Equal(t, "URL is required", body.Message)

	stats := getStats(t, srv)
	assert.Equal(t, 0, stats.TotalScans)
}

func TestAPI_AnalyzeURL_PhishingVerdict(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/analyze/url", map[string]string{
		"url": "http://192.168.1.1/wp-content/secure//verify",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[analyzeEnvelope](t, resp)
	assert.Equal(t, "phishing", result.Verdict)
	assert.Equal(t, 98, result.Confidence)
	assert.Contains(t, result.Details, "Domain uses IP address instead of domain name")
}

func TestAPI_GetScan_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/scans/12345")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[errorEnvelope](t, resp)
	assert.Equal(t, "Scan not found", body.Message)
}

func TestAPI_ScanHistoryAndStats(t *testing.T) {
	srv := newTestServer(t)

	urls := []string{"example.com", "bit.ly/3xyz", "http://192.168.1.1/wp-content/secure//verify"}
	for _, u := range urls {
		resp := postJSON(t, srv, "/api/analyze/url", map[string]string{"url": u})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	listResp, err := http.Get(srv.URL + "/api/scans")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	scans := decodeBody[[]scanEnvelope](t, listResp)
	require.Len(t, scans, 3)
	// свежие первыми
	assert.Equal(t, 3, scans[0].ID)
	assert.Equal(t, 1, scans[2].ID)

	limited, err := http.Get(srv.URL + "/api/scans?limit=2")
	require.NoError(t, err)
	page := decodeBody[[]scanEnvelope](t, limited)
	assert.Len(t, page, 2)

	stats := getStats(t, srv)
	assert.Equal(t, 3, stats.TotalScans)
	assert.Equal(t, 1, stats.SafeCount)
	assert.Equal(t, 1, stats.SuspiciousCount)
	assert.Equal(t, 1, stats.PhishingCount)
	assert.Equal(t, stats.TotalScans, stats.SafeCount+stats.PhishingCount+stats.SuspiciousCount)
}

func TestAPI_ScanHistory_TypeFilter(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/analyze/url", map[string]string{"url": "example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	shot := uploadScreenshot(t, srv, "page.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	require.Equal(t, http.StatusOK, shot.StatusCode)
	shot.Body.Close()

	listResp, err := http.Get(srv.URL + "/api/scans?type=screenshot")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	scans := decodeBody[[]scanEnvelope](t, listResp)
	require.Len(t, scans, 1)
	assert.Equal(t, "screenshot", scans[0].Type)
	assert.Equal(t, "page.png", scans[0].Target)
}

func TestAPI_AnalyzeScreenshot(t *testing.T) {
	srv := newTestServer(t)

	resp := uploadScreenshot(t, srv, "login-page.png", "image/png", []byte("fake png bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[analyzeEnvelope](t, resp)
	assert.Equal(t, 1, result.ScanID)
	assert.Contains(t, []string{"safe", "suspicious", "phishing"}, result.Verdict)
	assert.GreaterOrEqual(t, result.Confidence, 0)
	assert.LessOrEqual(t, result.Confidence, 100)
	assert.NotEmpty(t, result.Details)
	assert.Greater(t, result.AnalysisTime, 0.0)
}

func TestAPI_AnalyzeScreenshot_NotAnImage(t *testing.T) {
	srv := newTestServer(t)

	resp := uploadScreenshot(t, srv, "notes.txt", "text/plain", []byte("just text"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[errorEnvelope](t, resp)
	assert.Equal(t, "Only image files are allowed", body.Message)

	// отклоненная загрузка не попадает в историю
	stats := getStats(t, srv)
	assert.Equal(t, 0, stats.TotalScans)
}

func TestAPI_AnalyzeScreenshot_MissingFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("comment", "no file here"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/analyze/screenshot", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[errorEnvelope](t, resp)
	assert.Equal(t, "Image file is required", body.Message)
}

func TestAPI_Feedback(t *testing.T) {
	srv := newTestServer(t)

	analyzed := postJSON(t, srv, "/api/analyze/url", map[string]string{"url": "example.com"})
	require.Equal(t, http.StatusOK, analyzed.StatusCode)
	scanID := decodeBody[analyzeEnvelope](t, analyzed).ScanID

	resp := postJSON(t, srv, "/api/feedback", map[string]any{
		"scanId":    scanID,
		"isCorrect": true,
		"comment":   "verdict matched",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fb := decodeBody[map[string]any](t, resp)
	assert.Equal(t, float64(scanID), fb["scanId"])
	assert.Equal(t, true, fb["isCorrect"])
	assert.Equal(t, "verdict matched", fb["comment"])

	// повторный отзыв на тот же скан отклоняется
	dup := postJSON(t, srv, "/api/feedback", map[string]any{
		"scanId":    scanID,
		"isCorrect": false,
	})
	require.Equal(t, http.StatusBadRequest, dup.StatusCode)

	body := decodeBody[errorEnvelope](t, dup)
	assert.Equal(t, "Feedback already submitted for this scan", body.Message)

	// отзыв читается обратно по скану
	getResp, err := http.Get(fmt.Sprintf("%s/api/scans/%d/feedback", srv.URL, scanID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	stored := decodeBody[map[string]any](t, getResp)
	assert.Equal(t, float64(scanID), stored["scanId"])
	assert.Equal(t, true, stored["isCorrect"])
}

func TestAPI_GetFeedback_NotFound(t *testing.T) {
	srv := newTestServer(t)

	analyzed := postJSON(t, srv, "/api/analyze/url", map[string]string{"url": "example.com"})
	require.Equal(t, http.StatusOK, analyzed.StatusCode)
	scanID := decodeBody[analyzeEnvelope](t, analyzed).ScanID

	resp, err := http.Get(fmt.Sprintf("%s/api/scans/%d/feedback", srv.URL, scanID))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[errorEnvelope](t, resp)
	assert.Equal(t, "Feedback not found", body.Message)
}

func TestAPI_Feedback_UnknownScan(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/feedback", map[string]any{
		"scanId":    777,
		"isCorrect": true,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[errorEnvelope](t, resp)
	assert.Equal(t, "Scan not found", body.Message)
}

func TestAPI_RegisterUser(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/user/register", map[string]string{
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, float64(1), body["userId"])
	assert.Equal(t, "Ok", body["status"])

	dup := postJSON(t, srv, "/api/user/register", map[string]string{
		"username": "alice",
		"password": "password456",
	})
	require.Equal(t, http.StatusBadRequest, dup.StatusCode)

	errBody := decodeBody[errorEnvelope](t, dup)
	assert.Equal(t, "Username already taken", errBody.Message)
}

func TestAPI_RegisterUser_SchemaValidation(t *testing.T) {
	srv := newTestServer(t)

	// слишком короткие значения режутся схемой еще до сервиса
	resp := postJSON(t, srv, "/api/user/register", map[string]string{
		"username": "ab",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "message"))
}
