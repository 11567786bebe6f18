// Package registration turns enquiries into registered drivers and agents.
//
// A registration runs its steps in order: validate, resolve the category,
// resolve the owner, insert the agent, attach documents, advance the enquiry.
// Each step commits on its own. When a step after the agent insert fails the
// agent row stays, the error is returned together with a Result carrying the
// new agent id, and the enquiry can be reconciled with ConfirmConversion.
package registration

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"vtpartner/internal/apperr"
	"vtpartner/internal/logger"
	"vtpartner/internal/metrics"
	"vtpartner/internal/models"
	"vtpartner/internal/store"
	"vtpartner/internal/validate"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Result describes what a registration wrote. AgentID is set as soon as the
// agent row exists, including when a later step failed.
type Result struct {
	AgentID  uint
	OwnerID  *uint
	Category models.Category
}

// Existence is the outcome of an existence check.
type Existence struct {
	Exists  bool
	AgentID uint
}

// Register creates the agent described by req and marks its enquiry converted.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (Result, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"enquiry_id":  req.EnquiryID.Int64,
		"category_id": req.CategoryID.Int64,
	})

	d, err := s.validateRegistration(req)
	if err != nil {
		metrics.Registrations.WithLabelValues(categoryLabel(req.CategoryID), metrics.OutcomeRejected).Inc()
		log.WithError(err).Info("registration rejected")
		return Result{}, err
	}
	label := d.Category.String()
	log = log.WithField("category", label)
	res := Result{Category: d.Category}

	agent := req.build(d.Category, models.AgentStatusPending)
	if va, ok := agent.(models.VehicleAgent); ok && req.OwnerInput.Present() {
		ownerID, err := s.ResolveOwner(ctx, req.OwnerInput)
		if err != nil {
			metrics.Registrations.WithLabelValues(label, metrics.OutcomeFailed).Inc()
			log.WithError(err).Error("owner resolution failed")
			return res, err
		}
		res.OwnerID = &ownerID
		va.Vehicle().OwnerID = &ownerID
	}

	id, err := s.store.CreateAgent(ctx, agent)
	if err != nil {
		metrics.Registrations.WithLabelValues(label, metrics.OutcomeFailed).Inc()
		log.WithError(err).Error("agent insert failed")
		if errors.Is(err, store.ErrNoIdentifier) {
			return res, apperr.RegistrationIncomplete(err)
		}
		return res, apperr.Internal("Failed to register driver", err)
	}
	res.AgentID = id
	log = log.WithField("agent_id", id)
	log.Info("agent created")

	for i, doc := range req.Documents {
		if err := s.store.AttachDocument(ctx, d.Category, id, doc); err != nil {
			metrics.Registrations.WithLabelValues(label, metrics.OutcomeDocumentsFailed).Inc()
			log.WithError(err).WithField("document_index", i).Error("document attach failed after agent insert")
			return res, apperr.Internal("Driver registered but a document could not be saved", err)
		}
	}

	if err := s.store.MarkEnquiryConverted(ctx, req.EnquiryID.Int64); err != nil {
		metrics.Registrations.WithLabelValues(label, metrics.OutcomeEnquiryNotAdvanced).Inc()
		log.WithError(err).Error("enquiry status update failed after agent insert")
		return res, apperr.Internal("Driver registered but enquiry status could not be updated", err)
	}
	metrics.EnquiryConversions.WithLabelValues("registration").Inc()
	metrics.Registrations.WithLabelValues(label, metrics.OutcomeCreated).Inc()
	log.Info("registration complete")

	return res, nil
}

// validateRegistration runs every check that must pass before the first write.
// Missing fields, including the category-conditional and document ones, are
// reported together; an unknown category is reported once nothing is missing.
func (s *Service) validateRegistration(req RegisterRequest) (models.Dispatch, error) {
	if err := validate.Struct(req); err != nil {
		return models.Dispatch{}, err
	}
	return models.Resolve(req.CategoryID.Int64)
}

// CheckDriverExistence looks for a driver of the request's category with the
// request's phone. A match also marks the enquiry converted: the dashboard
// treats a matched phone as the registration outcome for that enquiry.
func (s *Service) CheckDriverExistence(ctx context.Context, req CheckRequest) (Existence, error) {
	if err := validate.Struct(req); err != nil {
		return Existence{}, err
	}
	d, err := models.Resolve(req.CategoryID.Int64)
	if err != nil {
		return Existence{}, err
	}
	return s.checkExistence(ctx, req, func(ctx context.Context) (uint, error) {
		return s.store.FindAgentByPhone(ctx, d.Category, req.MobileNo)
	})
}

// CheckHandymanExistence is CheckDriverExistence for handymen, matched by phone
// and the handyman's category id.
func (s *Service) CheckHandymanExistence(ctx context.Context, req CheckRequest) (Existence, error) {
	if err := validate.Struct(req); err != nil {
		return Existence{}, err
	}
	return s.checkExistence(ctx, req, func(ctx context.Context) (uint, error) {
		return s.store.FindHandymanByPhone(ctx, req.MobileNo, req.CategoryID.Int64)
	})
}

func (s *Service) checkExistence(ctx context.Context, req CheckRequest, find func(context.Context) (uint, error)) (Existence, error) {
	log := logger.FromContext(ctx).WithField("enquiry_id", req.EnquiryID.Int64)

	id, err := find(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return Existence{}, nil
	}
	if err != nil {
		return Existence{}, apperr.Internal("Failed to check existence", err)
	}

	if err := s.store.MarkEnquiryConverted(ctx, req.EnquiryID.Int64); err != nil {
		log.WithError(err).WithField("agent_id", id).Error("enquiry status update failed after existence match")
		return Existence{Exists: true, AgentID: id}, apperr.Internal("Driver exists but enquiry status could not be updated", err)
	}
	metrics.EnquiryConversions.WithLabelValues("existence_check").Inc()
	log.WithField("agent_id", id).Info("existing agent matched, enquiry converted")

	return Existence{Exists: true, AgentID: id}, nil
}

// ConfirmConversion marks an enquiry converted. It never moves an enquiry
// backwards and is safe to repeat.
func (s *Service) ConfirmConversion(ctx context.Context, enquiryID validate.NullInt) error {
	if !enquiryID.Valid {
		return apperr.MissingFields([]string{"enquiry_id"})
	}
	err := s.store.MarkEnquiryConverted(ctx, enquiryID.Int64)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return apperr.Internal("Failed to update enquiry status", err)
	}
	metrics.EnquiryConversions.WithLabelValues("confirm").Inc()
	logger.FromContext(ctx).WithField("enquiry_id", enquiryID.Int64).Info("enquiry conversion confirmed")
	return nil
}

// EditDriver updates a vehicle-category driver by driver_id.
func (s *Service) EditDriver(ctx context.Context, req EditDriverRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.edit(ctx, req.DriverID, req.AgentFields, models.Category.OwnsVehicle)
}

// EditHandyman updates a handyman by handyman_id.
func (s *Service) EditHandyman(ctx context.Context, req EditHandymanRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.edit(ctx, req.HandymanID, req.AgentFields, func(c models.Category) bool {
		return c == models.CategoryHandyman
	})
}

// edit replaces the agent's editable columns with f. Callers validate first.
func (s *Service) edit(ctx context.Context, id validate.NullInt, f AgentFields, accepts func(models.Category) bool) error {
	d, err := models.Resolve(f.CategoryID.Int64)
	if err != nil {
		return err
	}
	if !accepts(d.Category) {
		return apperr.InvalidCategory(f.CategoryID.Int64)
	}

	agent := f.build(d.Category, models.AgentStatusPending)
	agent.SetAgentID(uint(id.Int64))
	if va, ok := agent.(models.VehicleAgent); ok && f.OwnerInput.Present() {
		ownerID, err := s.upsertOwner(ctx, f.OwnerInput)
		if err != nil {
			return err
		}
		va.Vehicle().OwnerID = &ownerID
	}

	err = s.store.UpdateAgent(ctx, agent)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return apperr.Internal("Failed to update driver details", err)
	}
	logger.FromContext(ctx).WithFields(logrus.Fields{
		"category": d.Category.String(),
		"agent_id": id.Int64,
	}).Info("agent details updated")
	return nil
}

func categoryLabel(id validate.NullInt) string {
	if !id.Valid {
		return "missing"
	}
	return models.Category(id.Int64).String()
}
