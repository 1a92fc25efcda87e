package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/island-booking/internal/booking"
	"github.com/example/island-booking/internal/calendar"
	"github.com/example/island-booking/internal/memstore"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var today = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

func day(offset int) string {
	return calendar.Format(today.AddDate(0, 0, offset))
}

func newTestServer() *httptest.Server {
	ledger := memstore.New()
	policy := booking.Policy{MinDaysAhead: 1, MaxConsecutiveDays: 3, MaxDaysAhead: 30}
	svc := booking.NewService(ledger, policy, fixedClock{t: today})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return httptest.NewServer(New(svc, logger).Routes())
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var m errorMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m.Message
}

func createReservation(t *testing.T, base string) confirmedReservationResponse {
	t.Helper()
	resp := postJSON(t, base+"/reservations", map[string]string{
		"email":     "a@b.com",
		"fullName":  "Jo",
		"startDate": day(1),
		"endDate":   day(2),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cr confirmedReservationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cr))
	return cr
}

func TestCreateReservationHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	cr := createReservation(t, ts.URL)
	assert.NotEmpty(t, cr.ID)
	assert.Equal(t, "a@b.com", cr.Email)
	assert.Equal(t, day(1), cr.StartDate)
	assert.Equal(t, day(2), cr.EndDate)
}

func TestCreateMissingFieldHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/reservations", map[string]string{
		"email":     "a@b.com",
		"startDate": day(1),
		"endDate":   day(2),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Field 'fullName' is undefined", decodeMessage(t, resp))
}

func TestCreateOverlapHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	createReservation(t, ts.URL)
	resp := postJSON(t, ts.URL+"/reservations", map[string]string{
		"email":     "c@d.com",
		"fullName":  "Sam",
		"startDate": day(1),
		"endDate":   day(2),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unable to create reservation, dates overlap with existing reservation", decodeMessage(t, resp))
}

func TestCreatePolicyViolationHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/reservations", map[string]string{
		"email":     "a@b.com",
		"fullName":  "Jo",
		"startDate": day(0),
		"endDate":   day(1),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Start date has to be at least 1 day(s) ahead of arrival", decodeMessage(t, resp))
}

func TestGetReservationHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	cr := createReservation(t, ts.URL)

	resp, err := http.Get(ts.URL + "/reservations/" + cr.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/reservations/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListReservationsHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	createReservation(t, ts.URL)

	resp, err := http.Get(ts.URL + "/reservations?email=a@b.com")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []confirmedReservationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 1)

	resp, err = http.Get(ts.URL + "/reservations")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Field 'email' is undefined", decodeMessage(t, resp))
}

func TestUpdateReservationHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	cr := createReservation(t, ts.URL)

	resp := doJSON(t, http.MethodPatch, ts.URL+"/reservations/"+cr.ID, map[string]string{
		"startDate": day(1),
		"endDate":   day(4),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You can't book more than 3 day(s) at a time", decodeMessage(t, resp))

	resp = doJSON(t, http.MethodPatch, ts.URL+"/reservations/"+cr.ID, map[string]string{
		"startDate": day(1),
		"endDate":   day(3),
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodPatch, ts.URL+"/reservations/nope", map[string]string{
		"startDate": day(1),
		"endDate":   day(3),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteReservationHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	cr := createReservation(t, ts.URL)

	resp := doJSON(t, http.MethodDelete, ts.URL+"/reservations/"+cr.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The orchestrator's existence guard makes the second delete a 404.
	resp = doJSON(t, http.MethodDelete, ts.URL+"/reservations/"+cr.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVacancyHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	cr := createReservation(t, ts.URL)
	resp := doJSON(t, http.MethodPatch, ts.URL+"/reservations/"+cr.ID, map[string]string{
		"startDate": day(1),
		"endDate":   day(3),
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err := http.Get(ts.URL + "/vacancy")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dates []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dates))

	open := make(map[string]bool)
	for _, d := range dates {
		open[d] = true
	}
	assert.True(t, open[day(0)])
	assert.False(t, open[day(1)], "start day occupied")
	assert.False(t, open[day(3)], "checkout day withheld")
	assert.True(t, open[day(4)])
}

func TestVacancyExplicitWindowHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	url := fmt.Sprintf("%s/vacancy?startDate=%s&endDate=%s", ts.URL, day(10), day(12))
	resp, err := http.Get(url)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dates []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dates))
	assert.Equal(t, []string{day(10), day(11), day(12)}, dates)
}

func TestVacancyBadDateHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/vacancy?startDate=tomorrow")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStorageFailureIs503(t *testing.T) {
	svc := booking.NewService(downLedger{}, booking.Policy{MinDaysAhead: 1, MaxConsecutiveDays: 3, MaxDaysAhead: 30}, fixedClock{t: today})
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ts := httptest.NewServer(New(svc, logger).Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/vacancy")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body, "storage detail must not leak")
}
