package api

import (
	"context"
	"fmt"

	"github.com/Vancheszz/Registry/internal/models"
)

// Patients — карточки пациентов; search передаётся API как есть.
func (c *Client) Patients(ctx context.Context, token, search string) ([]models.Patient, error) {
	r := c.req(ctx, token)
	if search != "" {
		r.SetQueryParam("search", search)
	}
	var patients []models.Patient
	resp, err := r.SetResult(&patients).Get("/api/patients/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *Client) Patient(ctx context.Context, token string, id int) (*models.Patient, error) {
	var patient models.Patient
	resp, err := c.req(ctx, token).
		SetResult(&patient).
		Get(fmt.Sprintf("/api/patients/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) CreatePatient(ctx context.Context, token string, patient models.CreatePatient) (*models.Patient, error) {
	var created models.Patient
	resp, err := c.req(ctx, token).
		SetBody(patient).
		SetResult(&created).
		Post("/api/patients/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePatient(ctx context.Context, token string, id int, patient models.CreatePatient) (*models.Patient, error) {
	var updated models.Patient
	resp, err := c.req(ctx, token).
		SetBody(patient).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/patients/%d", id))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePatient(ctx context.Context, token string, id int) error {
	resp, err := c.req(ctx, token).
		Delete(fmt.Sprintf("/api/patients/%d", id))
	return check(resp, err)
}
