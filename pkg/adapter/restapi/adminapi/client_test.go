package adminapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/adapter/kv/memkv"
	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

var _ repo.AdminAPI = (*Client)(nil)

type ClientTestSuite struct {
	suite.Suite

	ctx    context.Context
	mux    *http.ServeMux
	srv    *httptest.Server
	tokens *memkv.Store
	c      *Client
	auth   []string
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (cts *ClientTestSuite) SetupTest() {
	cts.ctx = context.Background()
	cts.mux = http.NewServeMux()
	cts.auth = nil
	cts.srv = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			cts.auth = append(cts.auth, r.Header.Get("Authorization"))
			cts.mux.ServeHTTP(w, r)
		},
	))
	cts.tokens = memkv.New()
	var err error
	cts.c, err = New(cts.srv.URL+"/api/", cts.tokens)
	cts.Require().NoError(err)
}

func (cts *ClientTestSuite) TearDownTest() {
	cts.srv.Close()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (cts *ClientTestSuite) TestLoginStoresTokenAndAuthorizes() {
	cts.mux.HandleFunc("POST /api/admin/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var cred model.Credentials
		cts.Require().NoError(json.NewDecoder(r.Body).Decode(&cred))
		cts.Equal("admin@example.com", cred.Email)
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "t0k3n",
			"user":  map[string]any{"id": "u1", "name": "Admin", "role": "admin"},
		})
	})
	cts.mux.HandleFunc("GET /api/admin/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": "u1", "email": "admin@example.com"})
	})

	s, err := cts.c.Login(cts.ctx, model.Credentials{
		Email: "admin@example.com", Password: "secret",
	})
	cts.Require().NoError(err)
	cts.Equal("t0k3n", s.Token)
	cts.Equal(model.RoleAdmin, s.User.Role)
	tok, found, err := cts.tokens.Get(cts.ctx, TokenKey)
	cts.Require().NoError(err)
	cts.True(found)
	cts.Equal("t0k3n", tok)

	u, err := cts.c.CurrentUser(cts.ctx)
	cts.Require().NoError(err)
	cts.Equal("u1", u.ID)
	cts.Equal([]string{"", "Bearer t0k3n"}, cts.auth)

	cts.Require().NoError(cts.c.Logout(cts.ctx))
	_, err = cts.c.CurrentUser(cts.ctx)
	cts.Require().NoError(err)
	cts.Equal("", cts.auth[2], "no token after logout")
}

func (cts *ClientTestSuite) TestErrorMessages() {
	cts.mux.HandleFunc("GET /api/admin/cars/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Car not found"})
	})
	cts.mux.HandleFunc("GET /api/admin/cars/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "<html>oops</html>")
	})

	_, err := cts.c.Car(cts.ctx, "missing")
	ce := &cerr.Error{}
	cts.Require().True(errors.As(err, &ce))
	cts.Equal(http.StatusNotFound, ce.HTTPStatusCode)
	ae := &APIError{}
	cts.Require().True(errors.As(err, &ae))
	cts.Equal("Car not found", ae.Message)

	_, err = cts.c.Car(cts.ctx, "broken")
	cts.Require().True(errors.As(err, &ce))
	cts.Equal(http.StatusBadGateway, ce.HTTPStatusCode)
	cts.Require().True(errors.As(err, &ae))
	cts.Equal("API error: 500 Internal Server Error", ae.Message)
	cts.Equal(http.StatusInternalServerError, ae.StatusCode)
}

func (cts *ClientTestSuite) TestListCarsQuery() {
	cts.mux.HandleFunc("GET /api/admin/cars", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		cts.Equal("2", q.Get("page"))
		cts.Equal("10", q.Get("limit"))
		cts.Equal("BMW", q.Get("brand"))
		cts.Equal("available", q.Get("status"))
		cts.False(q.Has("sort"))
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{{
				"id": "c1", "brand": "BMW", "model": "X5", "year": 2022,
				"transmission": "automatic", "fuelType": "diesel",
				"pricePerDay": 3200, "status": "available",
				"features": []string{"Heated seats"}, "rating": 4.9,
			}},
			"total": 11, "page": 2, "totalPages": 2,
		})
	})
	p, err := cts.c.ListCars(cts.ctx, model.CarQuery{
		Page: 2, Limit: 10, Brand: "BMW", Status: model.CarAvailable,
	})
	cts.Require().NoError(err)
	cts.Equal(11, p.Total)
	cts.Require().Len(p.Data, 1)
	cts.Equal(model.FuelTypeDiesel, p.Data[0].FuelType)
	cts.Equal(model.TransmissionAutomatic, p.Data[0].Transmission)
}

func (cts *ClientTestSuite) TestBookingUnions() {
	cts.mux.HandleFunc("GET /api/admin/bookings", func(w http.ResponseWriter, r *http.Request) {
		cts.Equal("-createdAt", r.URL.Query().Get("sort"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{
				"id": "b1", "car": "c1", "customer": "u1",
				"startDate": "2025-06-01", "endDate": "2025-06-04",
				"status": "pending", "paymentStatus": "pending",
			},
			{
				"id":       "b2",
				"car":      map[string]any{"id": "c2", "brand": "Tesla", "model": "Model 3"},
				"customer": map[string]any{"id": "u2", "name": "Ann"},
				"status":   "active", "paymentStatus": "paid",
			},
		})
	})
	bs, err := cts.c.RecentBookings(cts.ctx, 5)
	cts.Require().NoError(err)
	cts.Require().Len(bs, 2)
	cts.Equal("c1", bs[0].CarID)
	cts.Nil(bs[0].Car)
	cts.Equal("u1", bs[0].CustomerID)
	cts.Equal("c2", bs[1].CarID)
	cts.Require().NotNil(bs[1].Car)
	cts.Equal("Tesla", bs[1].Car.Brand)
	cts.Equal("Ann", bs[1].Customer.Name)
}

func (cts *ClientTestSuite) TestCreateBookingSendsIDs() {
	cts.mux.HandleFunc("POST /api/admin/bookings", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		cts.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		cts.Equal("c1", body["car"])
		cts.Equal("card", body["paymentMethod"])
		body["id"] = "b9"
		writeJSON(w, http.StatusCreated, body)
	})
	b, err := cts.c.CreateBooking(cts.ctx, &model.Booking{
		CarID:         "c1",
		StartDate:     "2025-06-01",
		EndDate:       "2025-06-03",
		TotalPrice:    3000,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
		PaymentMethod: model.PayByCard,
	})
	cts.Require().NoError(err)
	cts.Equal("b9", b.ID)
	cts.Equal("c1", b.CarID)
}

func (cts *ClientTestSuite) TestDeleteWithEmptyBody() {
	cts.mux.HandleFunc("DELETE /api/admin/cars/c1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	cts.NoError(cts.c.DeleteCar(cts.ctx, "c1"))
}

func (cts *ClientTestSuite) TestNewRejectsBadURL() {
	_, err := New("ftp://example.com", cts.tokens)
	cts.Error(err)
	_, err = New("http://example.com", cts.tokens, WithTimeout(0))
	cts.Error(err)
}
