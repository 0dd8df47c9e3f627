package httpserver

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shopmart-backend/internal/domain"
)

// registerValidations adds the closed enum sets to gin's binding validator so
// bad status and reason strings are rejected at bind time.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		return domain.ValidOrderStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("paymentstatus", func(fl validator.FieldLevel) bool {
		return domain.ValidPaymentStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("shipmentstatus", func(fl validator.FieldLevel) bool {
		return domain.ValidShipmentStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("movementreason", func(fl validator.FieldLevel) bool {
		return domain.ValidMovementReason(fl.Field().String())
	})
}
