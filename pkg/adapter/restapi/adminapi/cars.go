package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/momeni/autorent/pkg/core/model"
)

func (c *Client) ListCars(ctx context.Context, q model.CarQuery) (*model.Page[model.AdminCar], error) {
	v := pageQuery(q.Page, q.Limit, q.Sort)
	if q.Brand != "" {
		v.Set("brand", q.Brand)
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	p := &model.Page[model.AdminCar]{}
	err := c.do(ctx, request{
		method: http.MethodGet, path: "/cars", query: v,
	}, p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) Car(ctx context.Context, id string) (*model.AdminCar, error) {
	ac := &model.AdminCar{}
	err := c.do(ctx, request{
		method: http.MethodGet, path: "/cars" + escape(id),
	}, ac)
	if err != nil {
		return nil, err
	}
	return ac, nil
}

func (c *Client) CreateCar(ctx context.Context, car *model.AdminCar) (*model.AdminCar, error) {
	body := *car
	body.ID = ""
	ac := &model.AdminCar{}
	err := c.do(ctx, request{
		method: http.MethodPost, path: "/cars", body: &body,
	}, ac)
	if err != nil {
		return nil, err
	}
	return ac, nil
}

func (c *Client) UpdateCar(ctx context.Context, id string, p *model.CarPatch) (*model.AdminCar, error) {
	ac := &model.AdminCar{}
	err := c.do(ctx, request{
		method: http.MethodPatch, path: "/cars" + escape(id), body: p,
	}, ac)
	if err != nil {
		return nil, err
	}
	return ac, nil
}

func (c *Client) DeleteCar(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method: http.MethodDelete, path: "/cars" + escape(id),
	}, nil)
}

func (c *Client) PopularCars(ctx context.Context, limit int) ([]model.PopularCar, error) {
	var pcs []model.PopularCar
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/cars/popular",
		query:  pageQuery(0, limit, ""),
	}, &pcs)
	if err != nil {
		return nil, fmt.Errorf("popular cars: %w", err)
	}
	return pcs, nil
}
