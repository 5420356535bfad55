package services

import (
	"context"
	"time"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/models"
	"rentezi-backend/internal/timeutil"
)

type PaymentService struct {
	Repo        PaymentStore
	Assignments AssignmentStore
}

func NewPaymentService(repo PaymentStore, assignments AssignmentStore) *PaymentService {
	return &PaymentService{Repo: repo, Assignments: assignments}
}

// Create records a rent payment against an assignment. Payments are recorded
// as facts: the amount is not reconciled against the rent due, and the record
// is created already marked paid with the payment date stamped.
func (s *PaymentService) Create(ctx context.Context, actor authz.Actor, req *models.CreatePaymentRequest) (*models.Payment, error) {
	assignment, err := s.Assignments.Get(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionCreatePayment, authz.Resource{TenantID: assignment.TenantID}); err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, apperr.Validation("amount must be positive")
	}
	if _, err := time.Parse(timeutil.MonthLayout, req.ForMonth); err != nil {
		return nil, apperr.Validation("for_month must be YYYY-MM")
	}

	now := timeutil.Now()
	payment := &models.Payment{
		AssignmentID:   req.AssignmentID,
		TenantID:       assignment.TenantID,
		Amount:         req.Amount,
		ForMonth:       req.ForMonth,
		ForYear:        req.ForYear,
		Status:         models.PaymentPaid,
		PaymentDate:    &now,
		MpesaReference: req.MpesaReference,
		Notes:          req.Notes,
	}
	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdateStatus overwrites a payment's status. Transition order is not
// validated. Moving to paid stamps the payment date only when it was never
// set, so re-confirming a paid payment keeps the original date.
func (s *PaymentService) UpdateStatus(ctx context.Context, actor authz.Actor, id int, status string) (*models.Payment, error) {
	if err := authz.Decide(actor, authz.ActionUpdatePayment, authz.Resource{}); err != nil {
		return nil, err
	}
	if !models.ValidPaymentStatus(status) {
		return nil, apperr.Validation("invalid payment status %q", status)
	}

	payment, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var stamp *time.Time
	if status == models.PaymentPaid && payment.PaymentDate == nil {
		now := timeutil.Now()
		stamp = &now
	}
	if err := s.Repo.UpdateStatus(ctx, id, status, stamp); err != nil {
		return nil, err
	}

	payment.Status = status
	if stamp != nil {
		payment.PaymentDate = stamp
	}
	return payment, nil
}

// GetView returns one payment with its display fields
func (s *PaymentService) GetView(ctx context.Context, actor authz.Actor, id int) (*models.Payment, error) {
	payment, err := s.Repo.GetView(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionViewReceipt, authz.Resource{TenantID: payment.TenantID}); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListForTenant returns the actor's own payments
func (s *PaymentService) ListForTenant(ctx context.Context, actor authz.Actor) ([]*models.Payment, error) {
	if err := authz.Decide(actor, authz.ActionViewOwnPayments, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByTenant(ctx, actor.ID)
}

// ListForLandlord returns payments on assignments in the actor's properties
func (s *PaymentService) ListForLandlord(ctx context.Context, actor authz.Actor) ([]*models.Payment, error) {
	if err := authz.Decide(actor, authz.ActionViewRentRoll, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByLandlord(ctx, actor.ID)
}
