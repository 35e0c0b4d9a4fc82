package adminapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/core/model"
)

// wireBooking is the booking representation of the API, where car and
// customer are either IDs or expanded objects.
type wireBooking struct {
	ID            string              `json:"id,omitempty"`
	Car           json.RawMessage     `json:"car"`
	Customer      json.RawMessage     `json:"customer,omitempty"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	TotalPrice    float64             `json:"totalPrice"`
	Status        model.BookingStatus `json:"status"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time          `json:"updatedAt,omitempty"`
}

func (wb *wireBooking) toModel() (*model.Booking, error) {
	b := &model.Booking{
		ID:            wb.ID,
		StartDate:     wb.StartDate,
		EndDate:       wb.EndDate,
		TotalPrice:    wb.TotalPrice,
		Status:        wb.Status,
		PaymentStatus: wb.PaymentStatus,
		PaymentMethod: wb.PaymentMethod,
		Notes:         wb.Notes,
		CreatedAt:     wb.CreatedAt,
		UpdatedAt:     wb.UpdatedAt,
	}
	car := &model.AdminCar{}
	id, expanded, err := idOrObject(wb.Car, car)
	if err != nil {
		return nil, fmt.Errorf("booking %q car: %w", wb.ID, err)
	}
	b.CarID = id
	if expanded {
		b.Car, b.CarID = car, car.ID
	}
	cust := &model.User{}
	id, expanded, err = idOrObject(wb.Customer, cust)
	if err != nil {
		return nil, fmt.Errorf("booking %q customer: %w", wb.ID, err)
	}
	b.CustomerID = id
	if expanded {
		b.Customer, b.CustomerID = cust, cust.ID
	}
	return b, nil
}

// idOrObject decodes raw as an ID string, or as an object into obj.
// The expanded result is true in the latter case.
func idOrObject(raw json.RawMessage, obj any) (id string, expanded bool, err error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return "", false, nil
	case raw[0] == '"':
		err = json.Unmarshal(raw, &id)
		return id, false, err
	default:
		return "", true, json.Unmarshal(raw, obj)
	}
}

func toWire(b *model.Booking) (*wireBooking, error) {
	wb := &wireBooking{
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		PaymentMethod: b.PaymentMethod,
		Notes:         b.Notes,
	}
	var err error
	if wb.Car, err = json.Marshal(b.CarID); err != nil {
		return nil, err
	}
	if b.CustomerID != "" {
		if wb.Customer, err = json.Marshal(b.CustomerID); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func (c *Client) ListBookings(ctx context.Context, q model.BookingQuery) (*model.Page[model.Booking], error) {
	v := pageQuery(q.Page, q.Limit, q.Sort)
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	wp := &model.Page[wireBooking]{}
	err := c.do(ctx, request{
		method: http.MethodGet, path: "/bookings", query: v,
	}, wp)
	if err != nil {
		return nil, err
	}
	bs, err := toModels(wp.Data)
	if err != nil {
		return nil, err
	}
	return &model.Page[model.Booking]{
		Data:       bs,
		Total:      wp.Total,
		Page:       wp.Page,
		PageSize:   wp.PageSize,
		TotalPages: wp.TotalPages,
	}, nil
}

func (c *Client) Booking(ctx context.Context, id string) (*model.Booking, error) {
	wb := &wireBooking{}
	err := c.do(ctx, request{
		method: http.MethodGet, path: "/bookings" + escape(id),
	}, wb)
	if err != nil {
		return nil, err
	}
	return wb.toModel()
}

func (c *Client) CreateBooking(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	body, err := toWire(b)
	if err != nil {
		return nil, fmt.Errorf("marshalling booking: %w", err)
	}
	wb := &wireBooking{}
	err = c.do(ctx, request{
		method: http.MethodPost, path: "/bookings", body: body,
	}, wb)
	if err != nil {
		return nil, err
	}
	return wb.toModel()
}

func (c *Client) UpdateBooking(ctx context.Context, id string, p *model.BookingPatch) (*model.Booking, error) {
	wb := &wireBooking{}
	err := c.do(ctx, request{
		method: http.MethodPatch, path: "/bookings" + escape(id), body: p,
	}, wb)
	if err != nil {
		return nil, err
	}
	return wb.toModel()
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method: http.MethodDelete, path: "/bookings" + escape(id),
	}, nil)
}

// RecentBookings lists the limit most recently created bookings. The
// server may answer with either a plain array or a paged object.
func (c *Client) RecentBookings(ctx context.Context, limit int) ([]model.Booking, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/bookings",
		query:  pageQuery(0, limit, "-createdAt"),
	}, &raw)
	if err != nil {
		return nil, err
	}
	var wbs []wireBooking
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		err = json.Unmarshal(raw, &wbs)
	} else if len(raw) > 0 {
		wp := &model.Page[wireBooking]{}
		err = json.Unmarshal(raw, wp)
		wbs = wp.Data
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshalling recent bookings: %w", err)
	}
	return toModels(wbs)
}

func toModels(wbs []wireBooking) ([]model.Booking, error) {
	bs := make([]model.Booking, 0, len(wbs))
	for i := range wbs {
		b, err := wbs[i].toModel()
		if err != nil {
			return nil, err
		}
		bs = append(bs, *b)
	}
	return bs, nil
}
