package handlers

import (
	"github.com/dpackchain/package_tracking_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the binding validators used by the
// shipment DTOs. Must be called once before the routes are registered.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	// statuscode: the field must be one of the defined shipment status codes.
	return v.RegisterValidation("statuscode", func(fl validator.FieldLevel) bool {
		return domain.ShipmentStatus(fl.Field().Int()).IsValid()
	})
}
