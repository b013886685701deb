package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, opts...)
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestCredentialAttachment_Authenticated(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, `{"success":true,"message":"","data":{"id":1}}`)
	}, WithCredentialSource(func() string { return "T1" }))

	_, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer T1", gotAuth)
}

func TestCredentialAttachment_Anonymous(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, `{"success":true,"message":"","data":{"id":1}}`)
	}, WithCredentialSource(func() string { return "" }))

	_, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestCredentialSource_ReadAtCallTime(t *testing.T) {
	var gotAuth string
	token := ""
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, `{"success":true,"message":"","data":{"id":1}}`)
	}, WithCredentialSource(func() string { return token }))

	_, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	token = "T2"
	_, err = c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer T2", gotAuth)
}

func TestAuthorizationFailure_CallbackRunsBeforeReturn(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		hookCalled := false
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, status, `{"success":false,"message":"token expired","data":null}`)
		}, WithAuthorizationFailureHandler(func() { hookCalled = true }))

		_, err := c.GetProfile(context.Background())
		require.ErrorIs(t, err, ErrUnauthorized)
		// The error has surfaced, so the session teardown must already
		// have been issued.
		assert.True(t, hookCalled, "status %d", status)
	}
}

func TestValidationError_CarriesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, `{"success":false,"message":"insufficient balance","data":null}`)
	})

	_, err := c.Withdraw(context.Background(), models.CashRequest{AccountID: 1, Amount: decimal.NewFromInt(100)})
	require.Error(t, err)
	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestServerError_MapsToUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusServiceUnavailable, `{"success":false,"message":"","data":null}`)
	})

	_, err := c.ListAccounts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTransportError_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := New(srv.URL, time.Second)
	_, err := c.ListAccounts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLogin_DecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		writeEnvelope(w, http.StatusOK,
			`{"success":true,"message":"ok","data":{"token":"T1","type":"Bearer","user":{"id":1,"role":"USER","firstName":"Ann"}}}`)
	})

	res, err := c.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "T1", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, int64(1), res.User.ID)
	assert.Equal(t, models.RoleUser, res.User.Role)
	assert.Equal(t, "Ann", res.User.FirstName)
}

func TestMalformedEnvelope_FailsFast(t *testing.T) {
	t.Run("success=false on 2xx", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, `{"success":false,"message":"odd","data":null}`)
		})
		_, err := c.ListAccounts(context.Background())
		require.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("undecodable body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, `<html>surprise</html>`)
		})
		_, err := c.ListAccounts(context.Background())
		require.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("data of the wrong shape", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, `{"success":true,"message":"","data":"not an account list"}`)
		})
		_, err := c.ListAccounts(context.Background())
		require.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestListTransactions_QueryAndPageDecoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "7", q.Get("accountId"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("size"))
		writeEnvelope(w, http.StatusOK,
			`{"success":true,"message":"","data":{"content":[{"id":5,"amount":"12.30","isCredit":true}],"page":2,"size":10,"totalPages":3,"totalElements":25}}`)
	})

	page, err := c.ListTransactions(context.Background(), 7, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Content, 1)
	assert.True(t, page.Content[0].IsCredit)
	assert.True(t, page.Content[0].Amount.Equal(decimal.RequireFromString("12.30")))
}

func TestTransfer_FillsReference(t *testing.T) {
	var got models.TransferRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, http.StatusOK, `{"success":true,"message":"","data":{"id":9}}`)
	})

	_, err := c.Transfer(context.Background(), models.TransferRequest{
		FromAccountID: 1, ToAccountID: 2, Amount: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Reference, "a missing reference must be generated client-side")
}
